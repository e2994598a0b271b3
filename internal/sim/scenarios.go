package sim

import (
	"context"
	"time"

	"github.com/okian/repute/internal/domain/catalog"
	"github.com/okian/repute/internal/domain/dispatch"
)

// scenario is one narrated step of the demo.
type scenario struct {
	title string
	run   func(ctx context.Context, r *Runner) error
}

// scenarios returns the scripted demo sequence: instant and delayed
// scoring, dual-party propagation, and window decay.
func scenarios() []scenario {
	return []scenario{
		{
			title: "Trupti logs in and likes Sai's ad.",
			run: func(ctx context.Context, r *Runner) error {
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Trupti", ActorClass: catalog.RoleCommon, EventType: "LOGIN",
				}); err != nil {
					return err
				}
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Sai", ActorClass: catalog.RoleAdvertiser, EventType: "LOGIN",
				}); err != nil {
					return err
				}
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Trupti", ActorClass: catalog.RoleCommon, EventType: "AD_LIKED",
					Target: "Sai", TargetClass: catalog.RoleAdvertiser,
				}); err != nil {
					return err
				}
				return r.report(ctx, "Trupti", "Sai")
			},
		},
		{
			title: "Kavita (advertiser) posts an ad and gets a like.",
			run: func(ctx context.Context, r *Runner) error {
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Kavita", ActorClass: catalog.RoleAdvertiser, EventType: "AD_POSTED_PAI",
					ActorCreatedAt: time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
				}); err != nil {
					return err
				}
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Sravan", ActorClass: catalog.RoleCommon, EventType: "AD_LIKED",
					Target: "Kavita", TargetClass: catalog.RoleAdvertiser,
				}); err != nil {
					return err
				}
				return r.report(ctx, "Kavita", "Sravan")
			},
		},
		{
			title: "Sravan comments and follows Kavita.",
			run: func(ctx context.Context, r *Runner) error {
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Sravan", ActorClass: catalog.RoleCommon, EventType: "POSITIVE_COMMENT",
					Target: "Kavita", TargetClass: catalog.RoleAdvertiser,
				}); err != nil {
					return err
				}
				if _, err := r.svc.Submit(ctx, dispatch.Submission{
					Actor: "Sravan", ActorClass: catalog.RoleCommon, EventType: "FOLLOWED_USER",
					Target: "Kavita", TargetClass: catalog.RoleAdvertiser,
				}); err != nil {
					return err
				}
				return r.report(ctx, "Kavita", "Sravan")
			},
		},
		{
			title: "Advance 35 days: how do scores decay?",
			run: func(ctx context.Context, r *Runner) error {
				if err := r.svc.AdvanceTime(ctx, 35); err != nil {
					return err
				}
				return r.report(ctx, "Sravan", "Kavita", "Sai", "Trupti")
			},
		},
		{
			title: "Final standings.",
			run: func(ctx context.Context, r *Runner) error {
				entries, err := r.svc.TopN(ctx, r.svc.Count(ctx))
				if err != nil {
					return err
				}
				writeRanking(r.out, entries)
				return nil
			},
		},
	}
}
