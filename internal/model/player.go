package model

import "time"

// PlayerID uniquely identifies a stored player. Zero means "not yet saved".
type PlayerID int64

// Player represents a game character record
type Player struct {
	ID         PlayerID
	Name       string
	Title      string
	Race       Race
	Profession Profession
	Birthday   time.Time
	Banned     bool

	// Progression, derived from Experience
	Experience               int
	Level                    int
	ExperienceUntilNextLevel int
}

// PlayerInput carries caller-supplied player fields.
// A nil field is absent: on create it fails validation, on update it is left untouched.
type PlayerInput struct {
	Name       *string
	Title      *string
	Race       *Race
	Profession *Profession
	Birthday   *time.Time
	Experience *int
	Banned     *bool
}

// IsEmpty reports whether no field is present
func (in PlayerInput) IsEmpty() bool {
	return in.Name == nil && in.Title == nil && in.Race == nil && in.Profession == nil &&
		in.Birthday == nil && in.Experience == nil && in.Banned == nil
}
