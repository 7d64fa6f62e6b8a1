package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]model.Player
	lastID  model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == 0 {
		s.lastID++
		player.ID = s.lastID
	} else if player.ID > s.lastID {
		s.lastID = player.ID
	}

	s.players[player.ID] = *player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *Storage) QueryPlayers(ctx context.Context, match func(model.Player) bool) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Player, 0, len(s.players))
	for _, player := range s.players {
		if match == nil || match(player) {
			result = append(result, player)
		}
	}
	slices.SortFunc(result, func(a, b model.Player) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}
