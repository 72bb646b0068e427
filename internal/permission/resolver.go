package permission

import (
	"fmt"

	"go.uber.org/zap"
)

type Resolver struct {
	logger *zap.SugaredLogger
	tiers  *Tiers
}

func NewResolver(logger *zap.SugaredLogger, tiers *Tiers) *Resolver {
	return &Resolver{
		logger: logger,
		tiers:  tiers,
	}
}

func (r *Resolver) Tiers() *Tiers {
	return r.tiers
}

// Resolve returns the highest tier whose check passes for s.
func (r *Resolver) Resolve(s Subject) Tier {
	for _, tier := range r.tiers.sorted {
		ok, err := tier.Check(s)
		if err != nil {
			r.logger.Debugw("permission check failed", "tier", tier.Name, "userId", s.AuthorID(), "error", err)
			continue
		}
		if ok {
			return tier
		}
	}

	return r.tiers.Lowest()
}

// Authorized reports whether resolved ranks at least as high as the tier named required.
func (r *Resolver) Authorized(resolved Tier, required string) (bool, error) {
	level, ok := r.tiers.Level(required)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownTier, required)
	}

	return resolved.Level >= level, nil
}
