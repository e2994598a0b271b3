package model_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRecord(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		cat := catalog.Default()
		day0 := date(2025, time.July, 18)

		Convey("When creating a record for a known event type", func() {
			rec, err := model.NewRecord(cat, "LOGIN", day0, model.RoleActor, 0)

			Convey("Then it should carry its identity and parameters", func() {
				So(err, ShouldBeNil)
				So(rec.ID, ShouldNotBeEmpty)
				So(rec.Type, ShouldEqual, "LOGIN")
				So(rec.Role, ShouldEqual, model.RoleActor)
				So(rec.Params().Weight, ShouldEqual, 0.5)
			})
		})

		Convey("When creating a record for an unknown event type", func() {
			_, err := model.NewRecord(cat, "NOT_A_THING", day0, model.RoleActor, 0)

			Convey("Then it should fail with the catalog sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, catalog.ErrUnknownEventType), ShouldBeTrue)
			})
		})

		Convey("Then record IDs should be unique", func() {
			a, err := model.NewRecord(cat, "LOGIN", day0, model.RoleActor, 0)
			So(err, ShouldBeNil)
			b, err := model.NewRecord(cat, "LOGIN", day0, model.RoleActor, 0)
			So(err, ShouldBeNil)
			So(a.ID, ShouldNotEqual, b.ID)
		})
	})
}

func TestEffectiveScore(t *testing.T) {
	Convey("Given records built from the default catalog", t, func() {
		cat := catalog.Default()
		day0 := date(2025, time.July, 18)

		Convey("When a decaying event ages ten days", func() {
			// AD_LIKED carries base weight 1.0 and decay 0.03; use a
			// custom type to pin the documented 0.95^10 example.
			custom := catalog.New(map[string]catalog.EventType{
				"PROMO": {Weight: 1.0, Decay: 0.05, AllowedFor: []catalog.Role{catalog.RoleCommon}},
			})
			rec, err := model.NewRecord(custom, "PROMO", day0, model.RoleActor, 0)
			So(err, ShouldBeNil)

			Convey("Then the score should follow base*(1-r)^days", func() {
				got := rec.EffectiveScore(day0.AddDate(0, 0, 10))
				So(got, ShouldAlmostEqual, math.Pow(0.95, 10), 1e-12)
				So(got, ShouldAlmostEqual, 0.5987, 1e-4)
			})

			Convey("And the score should strictly decrease with age", func() {
				prev := rec.EffectiveScore(day0)
				for days := 1; days <= 5; days++ {
					cur := rec.EffectiveScore(day0.AddDate(0, 0, days))
					So(cur, ShouldBeLessThan, prev)
					prev = cur
				}
			})
		})

		Convey("When the event type never decays", func() {
			rec, err := model.NewRecord(cat, "VERIFIED_PROFILE", day0, model.RoleActor, 0)
			So(err, ShouldBeNil)

			Convey("Then the score should be constant in elapsed days", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, 10.0)
				So(rec.EffectiveScore(day0.AddDate(0, 0, 365)), ShouldEqual, 10.0)
			})
		})

		Convey("When a record is dated after the as-of date", func() {
			rec, err := model.NewRecord(cat, "LOGIN", day0.AddDate(0, 0, 5), model.RoleActor, 0)
			So(err, ShouldBeNil)

			Convey("Then negative age should clamp to zero, not amplify", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, 0.5)
			})
		})

		Convey("When scoring the target side of a dual-party event", func() {
			rec, err := model.NewRecord(cat, "AD_LIKED", day0, model.RoleTarget, 0)
			So(err, ShouldBeNil)

			Convey("Then the target weight should be used", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, 2.0)
			})
		})

		Convey("When scoring a target record of a type without target weight", func() {
			rec, err := model.NewRecord(cat, "LOGIN", day0, model.RoleTarget, 0)
			So(err, ShouldBeNil)

			Convey("Then it should contribute zero", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, 0.0)
			})
		})

		Convey("When a delayed event has a delay factor", func() {
			rec, err := model.NewRecord(cat, "AD_LIKED", day0, model.RoleActor, 4)
			So(err, ShouldBeNil)

			Convey("Then the delay penalty should apply on day zero", func() {
				So(rec.EffectiveScore(day0), ShouldAlmostEqual, math.Pow(0.97, 4), 1e-12)
			})

			Convey("And decay and delay penalties should compose", func() {
				got := rec.EffectiveScore(day0.AddDate(0, 0, 3))
				want := math.Pow(0.97, 3) * math.Pow(0.97, 4)
				So(got, ShouldAlmostEqual, want, 1e-12)
			})
		})

		Convey("When a delayed event type declares no delay factor", func() {
			rec, err := model.NewRecord(cat, "FOLLOWED_USER", day0, model.RoleActor, 30)
			So(err, ShouldBeNil)

			Convey("Then the delay should be ignored", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, 0.7)
			})
		})

		Convey("When the event is a penalty", func() {
			rec, err := model.NewRecord(cat, "AD_REPORTED", day0, model.RoleActor, 0)
			So(err, ShouldBeNil)

			Convey("Then the contribution should stay negative", func() {
				So(rec.EffectiveScore(day0), ShouldEqual, -6.0)
				So(rec.EffectiveScore(day0.AddDate(0, 0, 90)), ShouldEqual, -6.0)
			})
		})
	})
}

func TestDaysBetween(t *testing.T) {
	Convey("Given two dates", t, func() {
		a := date(2025, time.July, 18)

		Convey("Then whole-day differences should be exact", func() {
			So(model.DaysBetween(a, a), ShouldEqual, 0)
			So(model.DaysBetween(a, a.AddDate(0, 0, 35)), ShouldEqual, 35)
			So(model.DaysBetween(a.AddDate(0, 0, 10), a), ShouldEqual, -10)
		})
	})
}
