package query

import (
	"cmp"
	"slices"

	"github.com/mcoot/gameplayers/internal/model"
)

// Sort orders players ascending by the given field, in place.
// Equal keys keep their input order. OrderNone leaves the slice untouched.
func Sort(players []model.Player, order model.PlayerOrder) []model.Player {
	compare := comparator(order)
	if compare == nil {
		return players
	}
	slices.SortStableFunc(players, compare)
	return players
}

func comparator(order model.PlayerOrder) func(a, b model.Player) int {
	switch order {
	case model.OrderID:
		return func(a, b model.Player) int { return cmp.Compare(a.ID, b.ID) }
	case model.OrderLevel:
		return func(a, b model.Player) int { return cmp.Compare(a.Level, b.Level) }
	case model.OrderExperience:
		return func(a, b model.Player) int { return cmp.Compare(a.Experience, b.Experience) }
	case model.OrderBirthday:
		return func(a, b model.Player) int { return a.Birthday.Compare(b.Birthday) }
	default:
		return nil
	}
}
