package redis

import (
	"fmt"

	"github.com/mcoot/gameplayers/internal/model"
)

// Key prefix for all player registry data
const keyPrefix = "gameplayers"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the ZSET of player ids, scored by id
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerSequenceKey returns the Redis key of the id counter
func playerSequenceKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}
