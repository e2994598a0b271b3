package model_test

import (
	"testing"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParticipant(t *testing.T) {
	Convey("Given a freshly created participant", t, func() {
		cat := catalog.Default()
		created := date(2025, time.January, 1)
		p := model.NewParticipant("Trupti", catalog.RoleCommon, created)

		Convey("Then its identity should be fixed and its state empty", func() {
			So(p.Name, ShouldEqual, "Trupti")
			So(p.Class, ShouldEqual, catalog.RoleCommon)
			So(p.CreatedAt, ShouldEqual, created)
			So(p.History, ShouldBeEmpty)
			So(p.Tier, ShouldBeNil)
			So(p.LastEventAt.IsZero(), ShouldBeTrue)
		})

		Convey("When adding records out of date order", func() {
			later := date(2025, time.July, 20)
			earlier := date(2025, time.July, 18)

			r1, err := model.NewRecord(cat, "LOGIN", later, model.RoleActor, 0)
			So(err, ShouldBeNil)
			r2, err := model.NewRecord(cat, "LOGIN", earlier, model.RoleActor, 0)
			So(err, ShouldBeNil)

			p.AddRecord(r1)
			p.AddRecord(r2)

			Convey("Then history should keep insertion order", func() {
				So(len(p.History), ShouldEqual, 2)
				So(p.History[0].Date, ShouldEqual, later)
				So(p.History[1].Date, ShouldEqual, earlier)
			})

			Convey("And LastEventAt should only move forward", func() {
				So(p.LastEventAt, ShouldEqual, later)
			})
		})

		Convey("When adding a record dated equal to the last event", func() {
			day := date(2025, time.July, 18)
			r1, _ := model.NewRecord(cat, "LOGIN", day, model.RoleActor, 0)
			r2, _ := model.NewRecord(cat, "SENT_MESSAGE", day, model.RoleActor, 0)
			p.AddRecord(r1)
			p.AddRecord(r2)

			Convey("Then LastEventAt should stay put", func() {
				So(p.LastEventAt, ShouldEqual, day)
			})
		})

		Convey("When pruning history at a cutoff", func() {
			for _, d := range []time.Time{
				date(2025, time.June, 1),
				date(2025, time.June, 30),
				date(2025, time.July, 1),
				date(2025, time.July, 18),
			} {
				r, err := model.NewRecord(cat, "LOGIN", d, model.RoleActor, 0)
				So(err, ShouldBeNil)
				p.AddRecord(r)
			}

			removed := p.PruneBefore(date(2025, time.July, 1))

			Convey("Then records before the cutoff should be gone for good", func() {
				So(removed, ShouldEqual, 2)
				So(len(p.History), ShouldEqual, 2)
				So(p.History[0].Date, ShouldEqual, date(2025, time.July, 1))
			})

			Convey("And pruning again should remove nothing", func() {
				So(p.PruneBefore(date(2025, time.July, 1)), ShouldEqual, 0)
				So(len(p.History), ShouldEqual, 2)
			})
		})
	})
}
