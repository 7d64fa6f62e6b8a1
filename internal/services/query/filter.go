// Package query composes player filters and orders and pages the results.
package query

import (
	"strings"
	"time"

	"github.com/mcoot/gameplayers/internal/model"
)

// Predicate reports whether a player matches a filter
type Predicate func(p model.Player) bool

// Criteria holds the optional filter dimensions of a player listing.
// A nil field imposes no constraint.
type Criteria struct {
	Name       *string // substring, case-sensitive
	Title      *string // substring, case-sensitive
	Race       *model.Race
	Profession *model.Profession
	After      *time.Time // inclusive lower bound on birthday
	Before     *time.Time // inclusive upper bound on birthday
	Banned     *bool

	MinExperience *int
	MaxExperience *int
	MinLevel      *int
	MaxLevel      *int
}

// All matches every player
func All(model.Player) bool { return true }

// Compose builds the conjunction of every criterion that is set
func Compose(c Criteria) Predicate {
	return And(
		NameContains(c.Name),
		TitleContains(c.Title),
		RaceIs(c.Race),
		ProfessionIs(c.Profession),
		BirthdayBetween(c.After, c.Before),
		BannedIs(c.Banned),
		ExperienceBetween(c.MinExperience, c.MaxExperience),
		LevelBetween(c.MinLevel, c.MaxLevel),
	)
}

// And combines predicates with logical AND. Nil predicates are skipped and
// an empty combination matches everything.
func And(preds ...Predicate) Predicate {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return All
	}
	return func(p model.Player) bool {
		for _, pred := range active {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Apply returns the players matching pred, preserving input order
func Apply(players []model.Player, pred Predicate) []model.Player {
	if pred == nil {
		pred = All
	}
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// NameContains matches names containing sub. Returns nil when sub is nil.
func NameContains(sub *string) Predicate {
	if sub == nil {
		return nil
	}
	s := *sub
	return func(p model.Player) bool { return strings.Contains(p.Name, s) }
}

// TitleContains matches titles containing sub. Returns nil when sub is nil.
func TitleContains(sub *string) Predicate {
	if sub == nil {
		return nil
	}
	s := *sub
	return func(p model.Player) bool { return strings.Contains(p.Title, s) }
}

// RaceIs matches an exact race. Returns nil when race is nil.
func RaceIs(race *model.Race) Predicate {
	if race == nil {
		return nil
	}
	r := *race
	return func(p model.Player) bool { return p.Race == r }
}

// ProfessionIs matches an exact profession. Returns nil when profession is nil.
func ProfessionIs(profession *model.Profession) Predicate {
	if profession == nil {
		return nil
	}
	pr := *profession
	return func(p model.Player) bool { return p.Profession == pr }
}

// BirthdayBetween matches birthdays within the inclusive range.
// Either bound may be nil for an open-ended range.
func BirthdayBetween(after, before *time.Time) Predicate {
	if after == nil && before == nil {
		return nil
	}
	return func(p model.Player) bool {
		if after != nil && p.Birthday.Before(*after) {
			return false
		}
		if before != nil && p.Birthday.After(*before) {
			return false
		}
		return true
	}
}

// BannedIs matches an exact banned flag. Returns nil when banned is nil.
func BannedIs(banned *bool) Predicate {
	if banned == nil {
		return nil
	}
	b := *banned
	return func(p model.Player) bool { return p.Banned == b }
}

// ExperienceBetween matches experience within the inclusive range
func ExperienceBetween(minXP, maxXP *int) Predicate {
	return intBetween(minXP, maxXP, func(p model.Player) int { return p.Experience })
}

// LevelBetween matches level within the inclusive range
func LevelBetween(minLevel, maxLevel *int) Predicate {
	return intBetween(minLevel, maxLevel, func(p model.Player) int { return p.Level })
}

func intBetween(lo, hi *int, field func(model.Player) int) Predicate {
	if lo == nil && hi == nil {
		return nil
	}
	return func(p model.Player) bool {
		v := field(p)
		if lo != nil && v < *lo {
			return false
		}
		if hi != nil && v > *hi {
			return false
		}
		return true
	}
}
