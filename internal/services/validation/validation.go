// Package validation holds the field-level rules every player mutation must pass.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mcoot/gameplayers/internal/model"
)

// Player field limits
const (
	MaxNameLength  = 12
	MaxTitleLength = 30
	MaxExperience  = 10_000_000
	MinBirthYear   = 2000
	MaxBirthYear   = 3000 // exclusive
)

var validate = validator.New()

var (
	nameRule       = fmt.Sprintf("required,max=%d", MaxNameLength)
	titleRule      = fmt.Sprintf("required,max=%d", MaxTitleLength)
	experienceRule = fmt.Sprintf("gte=0,lte=%d", MaxExperience)
)

// ValidateName checks a name is non-empty and at most MaxNameLength characters
func ValidateName(name string) error {
	return checkVar("name", name, nameRule)
}

// ValidateTitle checks a title is non-empty and at most MaxTitleLength characters
func ValidateTitle(title string) error {
	return checkVar("title", title, titleRule)
}

// ValidateExperience checks experience is within [0, MaxExperience]
func ValidateExperience(experience int) error {
	return checkVar("experience", experience, experienceRule)
}

// ValidateRace checks race is set and known
func ValidateRace(race model.Race) error {
	if race == "" {
		return model.NewFieldError("race", "is required")
	}
	if !race.IsValid() {
		return model.NewFieldError("race", fmt.Sprintf("unknown race %q", race))
	}
	return nil
}

// ValidateProfession checks profession is set and known
func ValidateProfession(profession model.Profession) error {
	if profession == "" {
		return model.NewFieldError("profession", "is required")
	}
	if !profession.IsValid() {
		return model.NewFieldError("profession", fmt.Sprintf("unknown profession %q", profession))
	}
	return nil
}

// ValidateBirthday checks the birthday year (UTC) is within [MinBirthYear, MaxBirthYear)
func ValidateBirthday(birthday time.Time) error {
	if birthday.IsZero() {
		return model.NewFieldError("birthday", "is required")
	}
	year := birthday.UTC().Year()
	if year < MinBirthYear || year >= MaxBirthYear {
		return model.NewFieldError("birthday",
			fmt.Sprintf("year must be in [%d, %d), got %d", MinBirthYear, MaxBirthYear, year))
	}
	return nil
}

// ValidateID checks a player id is positive
func ValidateID(id model.PlayerID) error {
	if id <= 0 {
		return model.NewFieldError("id", "must be a positive integer")
	}
	return nil
}

// ValidatePlayer runs every field check over a full player input.
// Absent fields fail as required; the first failure is returned.
func ValidatePlayer(in *model.PlayerInput) error {
	if in == nil {
		return model.ErrInvalidPlayer
	}
	if in.Name == nil {
		return model.NewFieldError("name", "is required")
	}
	if in.Title == nil {
		return model.NewFieldError("title", "is required")
	}
	if in.Race == nil {
		return model.NewFieldError("race", "is required")
	}
	if in.Profession == nil {
		return model.NewFieldError("profession", "is required")
	}
	if in.Birthday == nil {
		return model.NewFieldError("birthday", "is required")
	}
	if in.Experience == nil {
		return model.NewFieldError("experience", "is required")
	}
	return ValidatePatch(*in)
}

// ValidatePatch checks only the fields present in the input
func ValidatePatch(in model.PlayerInput) error {
	if in.Name != nil {
		if err := ValidateName(*in.Name); err != nil {
			return err
		}
	}
	if in.Title != nil {
		if err := ValidateTitle(*in.Title); err != nil {
			return err
		}
	}
	if in.Race != nil {
		if err := ValidateRace(*in.Race); err != nil {
			return err
		}
	}
	if in.Profession != nil {
		if err := ValidateProfession(*in.Profession); err != nil {
			return err
		}
	}
	if in.Birthday != nil {
		if err := ValidateBirthday(*in.Birthday); err != nil {
			return err
		}
	}
	if in.Experience != nil {
		if err := ValidateExperience(*in.Experience); err != nil {
			return err
		}
	}
	return nil
}

// checkVar runs a validator rule and converts the failure into a FieldError
func checkVar(field string, value any, rule string) error {
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return model.NewFieldError(field, err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return model.NewFieldError(field, "is required")
	case "max":
		return model.NewFieldError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "gte":
		return model.NewFieldError(field, fmt.Sprintf("must be at least %s", fe.Param()))
	case "lte":
		return model.NewFieldError(field, fmt.Sprintf("must be at most %s", fe.Param()))
	default:
		return model.NewFieldError(field, fmt.Sprintf("failed %q rule", fe.Tag()))
	}
}
