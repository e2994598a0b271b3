package metrics_test

import (
	"testing"

	"github.com/okian/repute/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

		Convey("Then it should be created without panicking", func() {
			So(m, ShouldNotBeNil)
		})

		Convey("Then all metric families should be registered", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			for _, want := range []string{
				"repute_scoring_events_submitted_total",
				"repute_scoring_events_rejected_total",
				"repute_scoring_submit_errors_total",
				"repute_scoring_recomputes_total",
				"repute_scoring_final_score",
				"repute_scoring_time_advances_total",
				"repute_scoring_participants",
			} {
				So(names[want], ShouldBeTrue)
			}
		})
	})

	Convey("Given custom namespace options", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithNamespace("marketplace"),
			metrics.WithSubsystem("trust"),
			metrics.WithScoreBuckets([]float64{25, 50, 75, 100}),
		)

		Convey("Then metric names should use them", func() {
			So(m, ShouldNotBeNil)
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			found := false
			for _, f := range families {
				if f.GetName() == "marketplace_trust_final_score" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("Then the record helpers should not panic", func() {
			So(func() {
				metrics.RecordEventSubmitted()
				metrics.RecordEventRejected()
				metrics.RecordSubmitError()
				metrics.RecordRecompute(42.0)
				metrics.UpdateRecordsPruned(3)
				metrics.UpdateTierSize("New", 2)
				metrics.RecordTimeAdvance()
				metrics.UpdateSimulatedDay(1752796800)
				metrics.UpdateParticipants(4)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry should be exposed", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})
	})
}
