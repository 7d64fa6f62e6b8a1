package request

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/services/player"
	"github.com/mcoot/gameplayers/internal/services/query"
)

// listQuery mirrors the raw query parameters of the list and count endpoints
type listQuery struct {
	Name          string `query:"name"`
	Title         string `query:"title"`
	Race          string `query:"race" validate:"omitempty,race"`
	Profession    string `query:"profession" validate:"omitempty,profession"`
	After         string `query:"after" validate:"omitempty,int64"`
	Before        string `query:"before" validate:"omitempty,int64"`
	Banned        string `query:"banned" validate:"omitempty,boolean"`
	MinExperience string `query:"minExperience" validate:"omitempty,int64"`
	MaxExperience string `query:"maxExperience" validate:"omitempty,int64"`
	MinLevel      string `query:"minLevel" validate:"omitempty,int64"`
	MaxLevel      string `query:"maxLevel" validate:"omitempty,int64"`
	Order         string `query:"order" validate:"omitempty,player_order"`
	PageNumber    string `query:"pageNumber" validate:"omitempty,int64"`
	PageSize      string `query:"pageSize" validate:"omitempty,int64"`
}

var queryValidator = newQueryValidator()

func newQueryValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("query")
	})
	_ = v.RegisterValidation("int64", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil
	})
	_ = v.RegisterValidation("race", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseRace(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("profession", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseProfession(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("player_order", func(fl validator.FieldLevel) bool {
		_, ok := model.ParsePlayerOrder(fl.Field().String())
		return ok
	})
	return v
}

// ParseCriteria decodes the filter parameters shared by list and count
func ParseCriteria(values url.Values) (query.Criteria, error) {
	q, err := decodeListQuery(values)
	if err != nil {
		return query.Criteria{}, err
	}
	return q.criteria(), nil
}

// ParseListQuery decodes filters, order and paging. Missing order and paging take the listing defaults.
func ParseListQuery(values url.Values) (player.ListParams, error) {
	q, err := decodeListQuery(values)
	if err != nil {
		return player.ListParams{}, err
	}

	params := player.DefaultListParams()
	params.Criteria = q.criteria()
	if q.Order != "" {
		params.Order, _ = model.ParsePlayerOrder(q.Order)
	}
	if q.PageNumber != "" {
		params.PageNumber = atoi(q.PageNumber)
	}
	if q.PageSize != "" {
		params.PageSize = atoi(q.PageSize)
	}
	return params, nil
}

func decodeListQuery(values url.Values) (*listQuery, error) {
	q := &listQuery{
		Name:          values.Get("name"),
		Title:         values.Get("title"),
		Race:          strings.TrimSpace(values.Get("race")),
		Profession:    strings.TrimSpace(values.Get("profession")),
		After:         strings.TrimSpace(values.Get("after")),
		Before:        strings.TrimSpace(values.Get("before")),
		Banned:        strings.TrimSpace(values.Get("banned")),
		MinExperience: strings.TrimSpace(values.Get("minExperience")),
		MaxExperience: strings.TrimSpace(values.Get("maxExperience")),
		MinLevel:      strings.TrimSpace(values.Get("minLevel")),
		MaxLevel:      strings.TrimSpace(values.Get("maxLevel")),
		Order:         strings.TrimSpace(values.Get("order")),
		PageNumber:    strings.TrimSpace(values.Get("pageNumber")),
		PageSize:      strings.TrimSpace(values.Get("pageSize")),
	}

	if err := queryValidator.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, model.NewFieldError(fe.Field(), "invalid value "+strconv.Quote(fe.Value().(string)))
		}
		return nil, err
	}
	return q, nil
}

func (q *listQuery) criteria() query.Criteria {
	var c query.Criteria
	if q.Name != "" {
		c.Name = &q.Name
	}
	if q.Title != "" {
		c.Title = &q.Title
	}
	if q.Race != "" {
		race, _ := model.ParseRace(q.Race)
		c.Race = &race
	}
	if q.Profession != "" {
		profession, _ := model.ParseProfession(q.Profession)
		c.Profession = &profession
	}
	c.After = millisPtr(q.After)
	c.Before = millisPtr(q.Before)
	if q.Banned != "" {
		banned, _ := strconv.ParseBool(q.Banned)
		c.Banned = &banned
	}
	c.MinExperience = intPtr(q.MinExperience)
	c.MaxExperience = intPtr(q.MaxExperience)
	c.MinLevel = intPtr(q.MinLevel)
	c.MaxLevel = intPtr(q.MaxLevel)
	return c
}

// atoi parses a value already checked by the int64 rule
func atoi(s string) int {
	n, _ := strconv.ParseInt(s, 10, 64)
	return int(n)
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	n := atoi(s)
	return &n
}

func millisPtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	ms, _ := strconv.ParseInt(s, 10, 64)
	t := time.UnixMilli(ms).UTC()
	return &t
}
