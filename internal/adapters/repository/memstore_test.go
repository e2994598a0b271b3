package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/repute/internal/adapters/repository"
	"github.com/okian/repute/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemStore(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)
		created := date(2025, time.July, 18)

		Convey("When resolving an unknown name", func() {
			p, err := store.GetOrCreate(ctx, "Trupti", catalog.RoleCommon, created)

			Convey("Then a participant should be created", func() {
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "Trupti")
				So(p.Class, ShouldEqual, catalog.RoleCommon)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And resolving it again should return the same instance", func() {
				again, err := store.GetOrCreate(ctx, "Trupti", catalog.RoleCommon, created)
				So(err, ShouldBeNil)
				So(again, ShouldEqual, p)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And resolving it with an empty class should match", func() {
				again, err := store.GetOrCreate(ctx, "Trupti", "", created)
				So(err, ShouldBeNil)
				So(again, ShouldEqual, p)
			})

			Convey("And resolving it under a different class should fail", func() {
				_, err := store.GetOrCreate(ctx, "Trupti", catalog.RoleAdvertiser, created)
				So(errors.Is(err, repository.ErrRoleMismatch), ShouldBeTrue)

				// The original participant is untouched.
				got, gerr := store.Get(ctx, "Trupti")
				So(gerr, ShouldBeNil)
				So(got.Class, ShouldEqual, catalog.RoleCommon)
			})
		})

		Convey("When looking up a missing participant directly", func() {
			_, err := store.Get(ctx, "Nobody")

			Convey("Then it should fail with ErrNotFound", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When several participants are registered", func() {
			for _, name := range []string{"Trupti", "Sai", "Kavita"} {
				_, err := store.GetOrCreate(ctx, name, catalog.RoleCommon, created)
				So(err, ShouldBeNil)
			}

			Convey("Then Names should preserve registration order", func() {
				So(store.Names(ctx), ShouldResemble, []string{"Trupti", "Sai", "Kavita"})
			})
		})
	})
}

func TestMemStoreTopN(t *testing.T) {
	Convey("Given a registry with scored participants", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(ctx)
		created := date(2025, time.July, 18)

		scores := map[string]float64{
			"Trupti": 42.0,
			"Sai":    61.5,
			"Kavita": 61.5,
			"Sravan": 10.0,
		}
		for _, name := range []string{"Trupti", "Sai", "Kavita", "Sravan"} {
			p, err := store.GetOrCreate(ctx, name, catalog.RoleCommon, created)
			So(err, ShouldBeNil)
			p.Score = scores[name]
		}

		Convey("When asking for the top three", func() {
			entries, err := store.TopN(ctx, 3)

			Convey("Then ordering should be score desc, name asc", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Name, ShouldEqual, "Kavita")
				So(entries[1].Name, ShouldEqual, "Sai")
				So(entries[2].Name, ShouldEqual, "Trupti")
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[2].Rank, ShouldEqual, 3)
			})
		})

		Convey("When asking for more entries than exist", func() {
			entries, err := store.TopN(ctx, 50)

			Convey("Then all participants should be returned", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 4)
			})
		})

		Convey("When asking for a non-positive limit", func() {
			_, err := store.TopN(ctx, 0)

			Convey("Then it should fail with ErrInvalidLimit", func() {
				So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
			})
		})
	})
}
