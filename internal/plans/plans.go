// Package plans holds subscription limits and trial gating rules.
package plans

import (
	"errors"
	"math"
	"time"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
)

const (
	Trial   = "trial"
	Starter = "starter"
	Pro     = "pro"
	Scale   = "scale"
)

type Resource string

const (
	Webhooks   Resource = "webhooks"
	AdAccounts Resource = "ad_accounts"
)

// Unlimited marks a resource without a cap.
const Unlimited = -1

var (
	ErrTrialExpired = errors.New("trial period has ended")
	ErrLimitReached = errors.New("plan limit reached")
	ErrUnknownPlan  = errors.New("unknown plan")
)

type Limits struct {
	Webhooks   int `json:"webhooks"`
	AdAccounts int `json:"ad_accounts"`
}

var limits = map[string]Limits{
	Trial:   {Webhooks: 1, AdAccounts: 1},
	Starter: {Webhooks: 3, AdAccounts: 2},
	Pro:     {Webhooks: 10, AdAccounts: 5},
	Scale:   {Webhooks: Unlimited, AdAccounts: Unlimited},
}

func LimitsFor(plan string) (Limits, error) {
	l, ok := limits[plan]
	if !ok {
		return Limits{}, ErrUnknownPlan
	}
	return l, nil
}

func (l Limits) of(r Resource) int {
	switch r {
	case Webhooks:
		return l.Webhooks
	case AdAccounts:
		return l.AdAccounts
	}
	return 0
}

// CheckAccess blocks trial users once trial_ends_at has passed. Paid plans are
// never blocked here.
func CheckAccess(p *domain.Profile, now time.Time) error {
	if p == nil {
		return ErrUnknownPlan
	}
	if _, ok := limits[p.Plan]; !ok {
		return ErrUnknownPlan
	}
	if p.Plan == Trial && !now.Before(p.TrialEndsAt) {
		return ErrTrialExpired
	}
	return nil
}

// CheckLimit reports whether one more resource may be created when current
// already exist.
func CheckLimit(plan string, r Resource, current int) error {
	l, err := LimitsFor(plan)
	if err != nil {
		return err
	}
	capacity := l.of(r)
	if capacity == Unlimited {
		return nil
	}
	if current >= capacity {
		return ErrLimitReached
	}
	return nil
}

// TrialDaysLeft rounds up partial days; zero once the trial is over or the
// plan is not a trial.
func TrialDaysLeft(p *domain.Profile, now time.Time) int {
	if p == nil || p.Plan != Trial {
		return 0
	}
	left := p.TrialEndsAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours() / 24))
}

// Gate combines CheckAccess and CheckLimit for creating one more r.
func Gate(p *domain.Profile, r Resource, current int, now time.Time) error {
	if err := CheckAccess(p, now); err != nil {
		return err
	}
	return CheckLimit(p.Plan, r, current)
}
