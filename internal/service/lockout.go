package service

import (
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
)

// lockoutPolicy maps a count of consecutive failures to a cooldown. Tiers
// are sorted by threshold ascending.
type lockoutPolicy struct {
	tiers []config.LockoutTier
}

// cooldown returns the cooldown of the highest tier reached by failures, or
// zero when no tier is reached.
func (p lockoutPolicy) cooldown(failures int) time.Duration {
	var d time.Duration
	for _, tier := range p.tiers {
		if failures >= tier.Threshold {
			d = tier.Cooldown
		}
	}
	return d
}
