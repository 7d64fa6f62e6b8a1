package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameplayers/internal/model"
)

type ValidationSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ValidationSuite) validInput() *model.PlayerInput {
	return &model.PlayerInput{
		Name:       ptr("Ash"),
		Title:      ptr("Novice"),
		Race:       ptr(model.RaceHuman),
		Profession: ptr(model.ProfessionWarrior),
		Birthday:   ptr(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)),
		Experience: ptr(100),
	}
}

func (s *ValidationSuite) assertFieldError(err error, field string) {
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrInvalidField)
	var fe *model.FieldError
	s.Require().ErrorAs(err, &fe)
	s.Equal(field, fe.Field)
}

// Name / title

func (s *ValidationSuite) TestNameBounds() {
	s.NoError(ValidateName("A"))
	s.NoError(ValidateName(strings.Repeat("n", MaxNameLength)))
	s.assertFieldError(ValidateName(""), "name")
	s.assertFieldError(ValidateName(strings.Repeat("n", MaxNameLength+1)), "name")
}

func (s *ValidationSuite) TestNameCountsCharactersNotBytes() {
	s.NoError(ValidateName(strings.Repeat("é", MaxNameLength)))
}

func (s *ValidationSuite) TestTitleBounds() {
	s.NoError(ValidateTitle(strings.Repeat("t", MaxTitleLength)))
	s.assertFieldError(ValidateTitle(""), "title")
	s.assertFieldError(ValidateTitle(strings.Repeat("t", MaxTitleLength+1)), "title")
}

// Experience

func (s *ValidationSuite) TestExperienceBounds() {
	s.NoError(ValidateExperience(0))
	s.NoError(ValidateExperience(MaxExperience))
	s.assertFieldError(ValidateExperience(-1), "experience")
	s.assertFieldError(ValidateExperience(MaxExperience+1), "experience")
}

// Enumerations

func (s *ValidationSuite) TestRace() {
	for _, r := range model.Races {
		s.NoError(ValidateRace(r))
	}
	s.assertFieldError(ValidateRace(""), "race")
	s.assertFieldError(ValidateRace("DRAGON"), "race")
}

func (s *ValidationSuite) TestProfession() {
	for _, p := range model.Professions {
		s.NoError(ValidateProfession(p))
	}
	s.assertFieldError(ValidateProfession(""), "profession")
	s.assertFieldError(ValidateProfession("BARD"), "profession")
}

// Birthday

func (s *ValidationSuite) TestBirthdayYearRange() {
	s.NoError(ValidateBirthday(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.NoError(ValidateBirthday(time.Date(2999, 12, 31, 23, 59, 59, 0, time.UTC)))
	s.assertFieldError(ValidateBirthday(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)), "birthday")
	s.assertFieldError(ValidateBirthday(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)), "birthday")
	s.assertFieldError(ValidateBirthday(time.Time{}), "birthday")
}

func (s *ValidationSuite) TestBirthdayUsesUTCYear() {
	// 2000-01-01T00:30 in UTC+1 is still 1999 in UTC
	zone := time.FixedZone("UTC+1", 3600)
	s.assertFieldError(ValidateBirthday(time.Date(2000, 1, 1, 0, 30, 0, 0, zone)), "birthday")
}

// ID

func (s *ValidationSuite) TestID() {
	s.NoError(ValidateID(1))
	s.assertFieldError(ValidateID(0), "id")
	s.assertFieldError(ValidateID(-5), "id")
}

// Aggregate

func (s *ValidationSuite) TestValidatePlayerAcceptsValidInput() {
	s.NoError(ValidatePlayer(s.validInput()))
}

func (s *ValidationSuite) TestValidatePlayerNil() {
	s.ErrorIs(ValidatePlayer(nil), model.ErrInvalidPlayer)
}

func (s *ValidationSuite) TestValidatePlayerRequiresEveryField() {
	cases := map[string]func(in *model.PlayerInput){
		"name":       func(in *model.PlayerInput) { in.Name = nil },
		"title":      func(in *model.PlayerInput) { in.Title = nil },
		"race":       func(in *model.PlayerInput) { in.Race = nil },
		"profession": func(in *model.PlayerInput) { in.Profession = nil },
		"birthday":   func(in *model.PlayerInput) { in.Birthday = nil },
		"experience": func(in *model.PlayerInput) { in.Experience = nil },
	}
	for field, clear := range cases {
		in := s.validInput()
		clear(in)
		s.assertFieldError(ValidatePlayer(in), field)
	}
}

func (s *ValidationSuite) TestValidatePlayerBannedOptional() {
	in := s.validInput()
	in.Banned = nil
	s.NoError(ValidatePlayer(in))
}

func (s *ValidationSuite) TestValidatePlayerRejectsOutOfRangeExperience() {
	in := s.validInput()
	in.Experience = ptr(10_000_001)
	s.assertFieldError(ValidatePlayer(in), "experience")
}

func (s *ValidationSuite) TestValidatePatchOnlyChecksPresentFields() {
	s.NoError(ValidatePatch(model.PlayerInput{}))
	s.NoError(ValidatePatch(model.PlayerInput{Experience: ptr(5000)}))
	s.assertFieldError(ValidatePatch(model.PlayerInput{Title: ptr("")}), "title")
}

func (s *ValidationSuite) TestValidatePatchReportsFirstFailure() {
	err := ValidatePatch(model.PlayerInput{Name: ptr(""), Experience: ptr(-1)})
	s.assertFieldError(err, "name")
}
