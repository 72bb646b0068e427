package permission

import (
	"errors"
	"fmt"
	"sort"

	"locus-bot/internal/settings"
)

var ErrUnknownTier = errors.New("unknown permission tier")

// Subject is what tier predicates are evaluated against.
type Subject interface {
	AuthorID() string
	GuildOwnerID() (string, error)
	HasRoleNamed(name string) (bool, error)
	Setting(key settings.Key) string
}

// Predicate reports whether a subject qualifies for a tier. An error counts as false.
type Predicate func(s Subject) (bool, error)

type Tier struct {
	Level int
	Name  string
	Check Predicate
}

// Tiers is an immutable tier list sorted by descending level.
type Tiers struct {
	sorted []Tier
	levels map[string]int
}

// NewTiers validates and sorts the given tiers. Names and levels must be unique.
// The lowest tier is the fallback and should always qualify.
func NewTiers(tiers ...Tier) (*Tiers, error) {
	if len(tiers) == 0 {
		return nil, errors.New("at least one permission tier is required")
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level > sorted[j].Level
	})

	levels := make(map[string]int, len(sorted))
	seenLevels := make(map[int]string, len(sorted))
	for _, tier := range sorted {
		if tier.Check == nil {
			return nil, fmt.Errorf("tier %q has no check", tier.Name)
		}
		if _, ok := levels[tier.Name]; ok {
			return nil, fmt.Errorf("duplicate tier name %q", tier.Name)
		}
		if other, ok := seenLevels[tier.Level]; ok {
			return nil, fmt.Errorf("tiers %q and %q share level %d", other, tier.Name, tier.Level)
		}
		levels[tier.Name] = tier.Level
		seenLevels[tier.Level] = tier.Name
	}

	return &Tiers{sorted: sorted, levels: levels}, nil
}

// Level returns the level of the tier named name.
func (t *Tiers) Level(name string) (int, bool) {
	level, ok := t.levels[name]
	return level, ok
}

// All returns the tiers in descending level order.
func (t *Tiers) All() []Tier {
	out := make([]Tier, len(t.sorted))
	copy(out, t.sorted)
	return out
}

func (t *Tiers) Lowest() Tier {
	return t.sorted[len(t.sorted)-1]
}

// Always is the fallback predicate.
func Always(Subject) (bool, error) {
	return true, nil
}
