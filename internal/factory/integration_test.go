package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/services/player"
	"github.com/mcoot/gameplayers/internal/services/query"
	redisstorage "github.com/mcoot/gameplayers/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func ptr[T any](v T) *T {
	return &v
}

func input(name string, race model.Race, xp int) *model.PlayerInput {
	return &model.PlayerInput{
		Name:       ptr(name),
		Title:      ptr("Wanderer"),
		Race:       ptr(race),
		Profession: ptr(model.ProfessionRogue),
		Birthday:   ptr(time.Date(2015, 2, 3, 0, 0, 0, 0, time.UTC)),
		Experience: ptr(xp),
	}
}

// Test: player lifecycle from creation through listing, update and deletion
func (s *IntegrationSuite) TestPlayerLifecycle() {
	svc := s.app.PlayerService

	// Step 1: Create three players
	elf, err := svc.Create(s.ctx, input("Legolas", model.RaceElf, 3000))
	s.Require().NoError(err)
	dwarf, err := svc.Create(s.ctx, input("Gimli", model.RaceDwarf, 500))
	s.Require().NoError(err)
	_, err = svc.Create(s.ctx, input("Elrond", model.RaceElf, 9000))
	s.Require().NoError(err)

	// Step 2: Filter elves ordered by experience
	params := player.DefaultListParams()
	params.Criteria.Race = ptr(model.RaceElf)
	params.Order = model.OrderExperience
	elves, err := svc.List(s.ctx, params)
	s.Require().NoError(err)
	s.Require().Len(elves, 2)
	s.Equal("Legolas", elves[0].Name)

	// Step 3: Promote the dwarf past the elves
	updated, err := svc.Update(s.ctx, dwarf.ID, model.PlayerInput{Experience: ptr(20000)})
	s.Require().NoError(err)
	s.Greater(updated.Level, elf.Level)

	params = player.DefaultListParams()
	params.Order = model.OrderLevel
	byLevel, err := svc.List(s.ctx, params)
	s.Require().NoError(err)
	s.Equal(dwarf.ID, byLevel[2].ID)

	// Step 4: Delete and count
	_, err = svc.Delete(s.ctx, elf.ID)
	s.Require().NoError(err)

	count, err := svc.Count(s.ctx, query.Criteria{Race: ptr(model.RaceElf)})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *IntegrationSuite) TestTestAppSharesMemoryStore() {
	created, err := s.app.PlayerService.Create(s.ctx, input("Bilbo", model.RaceHobbit, 0))
	s.Require().NoError(err)

	stored, err := s.app.Memory.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Bilbo", stored.Name)
	s.NotNil(s.app.Metrics)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Equal(t, StorageTypeMemory, app.StorageType)
	assert.Nil(t, app.Metrics)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewRequiresBackendSettings(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)

	_, err = New(Config{StorageType: StorageTypeSQLite})
	assert.Error(t, err)
}

func TestNewWithSQLite(t *testing.T) {
	app, err := New(Config{
		StorageType:    StorageTypeSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "players.db"),
		MetricsEnabled: true,
	})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	created, err := app.PlayerService.Create(context.Background(), input("Samwise", model.RaceHobbit, 150))
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID(1), created.ID)
	assert.NotNil(t, app.Metrics)
}

func TestNewWithRedis(t *testing.T) {
	mini := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	created, err := app.PlayerService.Create(context.Background(), input("Aragorn", model.RaceHuman, 150))
	require.NoError(t, err)

	got, err := app.PlayerService.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", got.Name)
}
