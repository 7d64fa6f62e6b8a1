package storage

import (
	"context"

	"github.com/mcoot/gameplayers/internal/model"
)

// PlayerStore defines the interface for player persistence.
//
// Implementations copy players in and out: callers never share memory
// with the stored record.
type PlayerStore interface {
	// SavePlayer inserts the player when its ID is zero, assigning a new
	// positive ID in place. Otherwise it overwrites the record with that ID,
	// and later inserts are assigned IDs above it.
	SavePlayer(ctx context.Context, player *model.Player) error

	// GetPlayer returns model.ErrPlayerNotFound when no record has the id
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// DeletePlayer hard-removes the record. Deleting a missing id is not an error.
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// QueryPlayers returns every stored player for which match returns true,
	// in ascending ID order. A nil match returns everything.
	QueryPlayers(ctx context.Context, match func(model.Player) bool) ([]model.Player, error)
}
