package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// LockoutTier applies Cooldown once the number of consecutive failed
// verifications reaches Threshold.
type LockoutTier struct {
	Threshold int
	Cooldown  time.Duration
}

// LockoutTiers parses [Vault.LockoutPolicy]. The policy is a comma separated
// list of threshold:cooldown pairs, e.g. "5:30s,10:5m,20:30m". Tiers are
// returned sorted by threshold. An empty policy disables lockout.
func (v Vault) LockoutTiers() ([]LockoutTier, error) {
	policy := strings.TrimSpace(v.LockoutPolicy)
	if policy == "" {
		return nil, nil
	}

	parts := strings.Split(policy, ",")
	tiers := make([]LockoutTier, 0, len(parts))
	for _, part := range parts {
		threshold, cooldown, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: tier %q must be threshold:cooldown", ErrInvalidVaultConfigs, part)
		}

		n, err := strconv.Atoi(threshold)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: invalid threshold %q", ErrInvalidVaultConfigs, threshold)
		}

		d, err := time.ParseDuration(cooldown)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: invalid cooldown %q", ErrInvalidVaultConfigs, cooldown)
		}

		tiers = append(tiers, LockoutTier{Threshold: n, Cooldown: d})
	}

	slices.SortFunc(tiers, func(a, b LockoutTier) int { return a.Threshold - b.Threshold })
	return tiers, nil
}
