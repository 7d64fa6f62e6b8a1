// Package player orchestrates validation, progression and querying over a PlayerStore.
package player

import (
	"context"
	"log/slog"

	"github.com/mcoot/gameplayers/internal/metrics"
	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/services/progression"
	"github.com/mcoot/gameplayers/internal/services/query"
	"github.com/mcoot/gameplayers/internal/services/validation"
	"github.com/mcoot/gameplayers/internal/storage"
)

const (
	// DefaultPageNumber is the page returned when none is requested
	DefaultPageNumber = 0
	// DefaultPageSize is the page size used when none is requested
	DefaultPageSize = 3
	// DefaultOrder is the listing order used when none is requested
	DefaultOrder = model.OrderID
)

// Operation names used for logging and metrics
const (
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
	OpCount  = "count"
)

// ListParams selects, orders and pages a player listing
type ListParams struct {
	Criteria   query.Criteria
	Order      model.PlayerOrder
	PageNumber int
	PageSize   int
}

// DefaultListParams returns params with the default order and paging and no criteria
func DefaultListParams() ListParams {
	return ListParams{
		Order:      DefaultOrder,
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
	}
}

// Service handles player operations
type Service struct {
	store   storage.PlayerStore
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewService creates a new player service. recorder may be nil.
func NewService(store storage.PlayerStore, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// Create validates a full player input, derives its progression and stores it
func (s *Service) Create(ctx context.Context, in *model.PlayerInput) (p *model.Player, err error) {
	defer func() { s.metrics.RecordOperation(OpCreate, err) }()

	if err := validation.ValidatePlayer(in); err != nil {
		return nil, err
	}

	player := &model.Player{
		Name:       *in.Name,
		Title:      *in.Title,
		Race:       *in.Race,
		Profession: *in.Profession,
		Birthday:   *in.Birthday,
		Experience: *in.Experience,
	}
	if in.Banned != nil {
		player.Banned = *in.Banned
	}
	applyProgression(player)

	if err := s.store.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", player.Name),
		slog.Int("level", player.Level),
	)
	return player, nil
}

// Get returns the player with the given id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (p *model.Player, err error) {
	defer func() { s.metrics.RecordOperation(OpGet, err) }()

	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}
	return s.store.GetPlayer(ctx, id)
}

// Update applies the present fields of patch to an existing player.
// The whole patch is validated before anything is applied.
func (s *Service) Update(ctx context.Context, id model.PlayerID, patch model.PlayerInput) (p *model.Player, err error) {
	defer func() { s.metrics.RecordOperation(OpUpdate, err) }()

	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}

	player, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidatePatch(patch); err != nil {
		return nil, err
	}

	applyPatch(player, patch)
	applyProgression(player)

	if err := s.store.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.Int64("player_id", int64(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player updated",
		slog.Int64("player_id", int64(player.ID)),
		slog.Int("level", player.Level),
	)
	return player, nil
}

// Delete removes a player and returns its last stored state
func (s *Service) Delete(ctx context.Context, id model.PlayerID) (p *model.Player, err error) {
	defer func() { s.metrics.RecordOperation(OpDelete, err) }()

	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}

	player, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeletePlayer(ctx, id); err != nil {
		s.logger.Error("failed to delete player",
			slog.Int64("player_id", int64(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player deleted", slog.Int64("player_id", int64(id)))
	return player, nil
}

// List returns one page of the players matching params.Criteria, sorted by params.Order
func (s *Service) List(ctx context.Context, params ListParams) (players []model.Player, err error) {
	defer func() { s.metrics.RecordOperation(OpList, err) }()

	if err := validatePaging(params); err != nil {
		return nil, err
	}

	matched, err := s.store.QueryPlayers(ctx, query.Compose(params.Criteria))
	if err != nil {
		return nil, err
	}

	page := query.Paginate(query.Sort(matched, params.Order), params.PageNumber, params.PageSize)
	s.metrics.RecordListed(len(page))
	return page, nil
}

// Count returns how many players match the criteria, ignoring paging
func (s *Service) Count(ctx context.Context, criteria query.Criteria) (n int, err error) {
	defer func() { s.metrics.RecordOperation(OpCount, err) }()

	matched, err := s.store.QueryPlayers(ctx, query.Compose(criteria))
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

func validatePaging(params ListParams) error {
	if params.PageNumber < 0 {
		return model.NewFieldError("pageNumber", "must not be negative")
	}
	if params.PageSize < 0 {
		return model.NewFieldError("pageSize", "must not be negative")
	}
	if !params.Order.IsValid() {
		return model.NewFieldError("order", "unknown order "+string(params.Order))
	}
	return nil
}

func applyPatch(player *model.Player, patch model.PlayerInput) {
	if patch.Name != nil {
		player.Name = *patch.Name
	}
	if patch.Title != nil {
		player.Title = *patch.Title
	}
	if patch.Race != nil {
		player.Race = *patch.Race
	}
	if patch.Profession != nil {
		player.Profession = *patch.Profession
	}
	if patch.Birthday != nil {
		player.Birthday = *patch.Birthday
	}
	if patch.Experience != nil {
		player.Experience = *patch.Experience
	}
	if patch.Banned != nil {
		player.Banned = *patch.Banned
	}
}

func applyProgression(player *model.Player) {
	player.Level, player.ExperienceUntilNextLevel = progression.Progress(player.Experience)
}
