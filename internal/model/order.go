package model

import "strings"

// PlayerOrder selects the field a player listing is sorted by
type PlayerOrder string

const (
	OrderNone       PlayerOrder = ""
	OrderID         PlayerOrder = "ID"
	OrderLevel      PlayerOrder = "LEVEL"
	OrderExperience PlayerOrder = "EXPERIENCE"
	OrderBirthday   PlayerOrder = "BIRTHDAY"
)

// IsValid returns true for a known order, including OrderNone
func (o PlayerOrder) IsValid() bool {
	switch o {
	case OrderNone, OrderID, OrderLevel, OrderExperience, OrderBirthday:
		return true
	}
	return false
}

// ParsePlayerOrder converts a case-insensitive name into a PlayerOrder
func ParsePlayerOrder(s string) (PlayerOrder, bool) {
	o := PlayerOrder(strings.ToUpper(strings.TrimSpace(s)))
	return o, o.IsValid()
}
