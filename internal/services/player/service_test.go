package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameplayers/internal/metrics"
	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/services/query"
	"github.com/mcoot/gameplayers/internal/storage/memory"
	gtestutil "github.com/mcoot/gameplayers/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	metrics *metrics.Recorder
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.metrics = metrics.NewRecorder()
	s.service = NewService(s.store, gtestutil.NopLogger(), s.metrics)
	s.ctx = context.Background()
}

func ptr[T any](v T) *T {
	return &v
}

func validInput(name string, xp int) *model.PlayerInput {
	return &model.PlayerInput{
		Name:       ptr(name),
		Title:      ptr("Novice"),
		Race:       ptr(model.RaceHuman),
		Profession: ptr(model.ProfessionWarrior),
		Birthday:   ptr(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)),
		Experience: ptr(xp),
	}
}

func (s *ServiceSuite) create(name string, xp int, banned bool) *model.Player {
	in := validInput(name, xp)
	in.Banned = ptr(banned)
	p, err := s.service.Create(s.ctx, in)
	s.Require().NoError(err)
	return p
}

func (s *ServiceSuite) requireFieldError(err error, field string) {
	s.Require().ErrorIs(err, model.ErrInvalidField)
	var fe *model.FieldError
	s.Require().ErrorAs(err, &fe)
	s.Equal(field, fe.Field)
}

// Create tests

func (s *ServiceSuite) TestCreateDerivesProgressionAndDefaultsBanned() {
	p, err := s.service.Create(s.ctx, validInput("Ash", 100))
	s.Require().NoError(err)

	s.Equal(model.PlayerID(1), p.ID)
	s.Equal(1, p.Level)
	s.Equal(200, p.ExperienceUntilNextLevel)
	s.False(p.Banned)

	stored, err := s.store.GetPlayer(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(*p, *stored)
}

func (s *ServiceSuite) TestCreateAtZeroExperience() {
	p, err := s.service.Create(s.ctx, validInput("Ash", 0))
	s.Require().NoError(err)
	s.Equal(0, p.Level)
	s.Equal(100, p.ExperienceUntilNextLevel)
}

func (s *ServiceSuite) TestCreateKeepsExplicitBanned() {
	p := s.create("Ash", 10, true)
	s.True(p.Banned)
}

func (s *ServiceSuite) TestCreateRejectsExperienceAboveMax() {
	_, err := s.service.Create(s.ctx, validInput("Ash", 10_000_001))
	s.requireFieldError(err, "experience")

	all, err := s.store.QueryPlayers(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *ServiceSuite) TestCreateRejectsNilInput() {
	_, err := s.service.Create(s.ctx, nil)
	s.ErrorIs(err, model.ErrInvalidPlayer)
}

func (s *ServiceSuite) TestCreateRejectsMissingField() {
	in := validInput("Ash", 10)
	in.Race = nil

	_, err := s.service.Create(s.ctx, in)
	s.requireFieldError(err, "race")
}

func (s *ServiceSuite) TestCreateRecordsMetrics() {
	_, _ = s.service.Create(s.ctx, validInput("Ash", 10))
	_, _ = s.service.Create(s.ctx, validInput("", 10))

	series, err := testutil.GatherAndCount(s.metrics.Registry(), "gameplayers_player_operations_total")
	s.Require().NoError(err)
	s.Equal(2, series)
}

// Get tests

func (s *ServiceSuite) TestGet() {
	created := s.create("Ash", 10, false)

	got, err := s.service.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*created, *got)
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, 404)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestGetRejectsNonPositiveID() {
	_, err := s.service.Get(s.ctx, 0)
	s.requireFieldError(err, "id")
}

// Update tests

func (s *ServiceSuite) TestUpdateExperienceOnly() {
	created := s.create("Ash", 100, false)

	updated, err := s.service.Update(s.ctx, created.ID, model.PlayerInput{Experience: ptr(5000)})
	s.Require().NoError(err)

	s.Equal(5000, updated.Experience)
	s.Equal(9, updated.Level)
	s.Equal(500, updated.ExperienceUntilNextLevel)
	s.Equal(created.Name, updated.Name)
	s.Equal(created.Title, updated.Title)
	s.Equal(created.Race, updated.Race)
	s.Equal(created.Profession, updated.Profession)
	s.Equal(created.Birthday, updated.Birthday)
	s.Equal(created.Banned, updated.Banned)

	stored, err := s.store.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*updated, *stored)
}

func (s *ServiceSuite) TestUpdateEmptyPatchKeepsPlayer() {
	created := s.create("Ash", 100, true)

	updated, err := s.service.Update(s.ctx, created.ID, model.PlayerInput{})
	s.Require().NoError(err)
	s.Equal(*created, *updated)
}

func (s *ServiceSuite) TestUpdateIsAllOrNothing() {
	created := s.create("Ash", 100, false)

	_, err := s.service.Update(s.ctx, created.ID, model.PlayerInput{
		Name:       ptr("Misty"),
		Experience: ptr(-1),
	})
	s.requireFieldError(err, "experience")

	stored, err := s.store.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Ash", stored.Name)
	s.Equal(100, stored.Experience)
}

func (s *ServiceSuite) TestUpdateNotFound() {
	_, err := s.service.Update(s.ctx, 7, model.PlayerInput{Name: ptr("Misty")})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdateCanUnban() {
	created := s.create("Ash", 100, true)

	updated, err := s.service.Update(s.ctx, created.ID, model.PlayerInput{Banned: ptr(false)})
	s.Require().NoError(err)
	s.False(updated.Banned)
}

// Delete tests

func (s *ServiceSuite) TestDeleteReturnsSnapshot() {
	created := s.create("Ash", 100, false)

	deleted, err := s.service.Delete(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*created, *deleted)

	_, err = s.service.Get(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteNotFound() {
	_, err := s.service.Delete(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// List and count tests

func (s *ServiceSuite) seedLevels() map[string]*model.Player {
	return map[string]*model.Player{
		"L4":        s.create("L4", 1000, false),
		"L5":        s.create("L5", 1500, false),
		"L10":       s.create("L10", 5500, false),
		"L11":       s.create("L11", 6600, false),
		"L7-banned": s.create("L7", 3000, true),
	}
}

func (s *ServiceSuite) TestListLevelRangeAndBanned() {
	seeded := s.seedLevels()

	params := ListParams{
		Criteria: query.Criteria{
			MinLevel: ptr(5),
			MaxLevel: ptr(10),
			Banned:   ptr(false),
		},
		Order:    model.OrderLevel,
		PageSize: 10,
	}
	players, err := s.service.List(s.ctx, params)
	s.Require().NoError(err)

	s.Require().Len(players, 2)
	s.Equal(seeded["L5"].ID, players[0].ID)
	s.Equal(seeded["L10"].ID, players[1].ID)

	count, err := s.service.Count(s.ctx, params.Criteria)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *ServiceSuite) TestListDefaultsToFirstPageOfThree() {
	s.seedLevels()

	players, err := s.service.List(s.ctx, DefaultListParams())
	s.Require().NoError(err)

	s.Require().Len(players, 3)
	s.Equal(model.PlayerID(1), players[0].ID)
	s.Equal(model.PlayerID(3), players[2].ID)
}

func (s *ServiceSuite) TestListPagesReconstructFullSet() {
	for i := 0; i < 7; i++ {
		s.create("P", (7-i)*100, false)
	}

	var seen []model.PlayerID
	for page := 0; page < 3; page++ {
		players, err := s.service.List(s.ctx, ListParams{
			Order:      model.OrderExperience,
			PageNumber: page,
			PageSize:   3,
		})
		s.Require().NoError(err)
		for _, p := range players {
			seen = append(seen, p.ID)
		}
	}

	s.Equal([]model.PlayerID{7, 6, 5, 4, 3, 2, 1}, seen)
}

func (s *ServiceSuite) TestListPastLastPageIsEmpty() {
	s.seedLevels()

	players, err := s.service.List(s.ctx, ListParams{Order: model.OrderID, PageNumber: 5, PageSize: 3})
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *ServiceSuite) TestListHugePageNumberIsEmpty() {
	s.seedLevels()

	for _, page := range []int{1<<61 + 1, 1 << 62} {
		players, err := s.service.List(s.ctx, ListParams{Order: model.OrderID, PageNumber: page, PageSize: 4})
		s.Require().NoError(err, "page %d", page)
		s.NotNil(players)
		s.Empty(players, "page %d", page)
	}
}

func (s *ServiceSuite) TestListRejectsNegativePaging() {
	_, err := s.service.List(s.ctx, ListParams{PageNumber: -1, PageSize: 3})
	s.requireFieldError(err, "pageNumber")

	_, err = s.service.List(s.ctx, ListParams{PageNumber: 0, PageSize: -3})
	s.requireFieldError(err, "pageSize")
}

func (s *ServiceSuite) TestListRejectsUnknownOrder() {
	_, err := s.service.List(s.ctx, ListParams{Order: "NAME", PageSize: 3})
	s.requireFieldError(err, "order")
}

func (s *ServiceSuite) TestCountIgnoresPaging() {
	s.seedLevels()

	count, err := s.service.Count(s.ctx, query.Criteria{})
	s.Require().NoError(err)
	s.Equal(5, count)
}

// Store failure tests

type failingStore struct {
	memory.Storage
	err error
}

func (f *failingStore) SavePlayer(context.Context, *model.Player) error {
	return f.err
}

func (f *failingStore) QueryPlayers(context.Context, func(model.Player) bool) ([]model.Player, error) {
	return nil, f.err
}

func (s *ServiceSuite) TestStoreErrorsPassThrough() {
	storeErr := errors.New("connection refused")
	svc := NewService(&failingStore{err: storeErr}, gtestutil.NopLogger(), nil)

	_, err := svc.Create(s.ctx, validInput("Ash", 10))
	s.ErrorIs(err, storeErr)

	_, err = svc.List(s.ctx, DefaultListParams())
	s.ErrorIs(err, storeErr)

	_, err = svc.Count(s.ctx, query.Criteria{})
	s.ErrorIs(err, storeErr)
}
