package request

import (
	"strings"
	"time"

	"github.com/mcoot/gameplayers/internal/model"
)

// PlayerRequest is the body of create and update calls.
// Absent JSON fields stay nil; birthday is Unix milliseconds.
type PlayerRequest struct {
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Race       *string `json:"race"`
	Profession *string `json:"profession"`
	Birthday   *int64  `json:"birthday"`
	Experience *int    `json:"experience"`
	Banned     *bool   `json:"banned"`
}

// ToInput converts the body into a model.PlayerInput.
// Enum names are upper-cased; unknown values are left for validation to reject.
func (r *PlayerRequest) ToInput() *model.PlayerInput {
	if r == nil {
		return nil
	}

	in := &model.PlayerInput{
		Name:       r.Name,
		Title:      r.Title,
		Experience: r.Experience,
		Banned:     r.Banned,
	}
	if r.Race != nil {
		race := model.Race(strings.ToUpper(strings.TrimSpace(*r.Race)))
		in.Race = &race
	}
	if r.Profession != nil {
		profession := model.Profession(strings.ToUpper(strings.TrimSpace(*r.Profession)))
		in.Profession = &profession
	}
	if r.Birthday != nil {
		birthday := time.UnixMilli(*r.Birthday).UTC()
		in.Birthday = &birthday
	}
	return in
}
