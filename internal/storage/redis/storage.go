package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

// raiseSequence sets the id counter to ARGV[1] unless it is already at or above it
var raiseSequence = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local id = tonumber(ARGV[1])
if id > current then
	redis.call("SET", KEYS[1], ARGV[1])
end
return current
`)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	explicitID := player.ID != 0
	if !explicitID {
		id, err := s.client.Incr(ctx, playerSequenceKey()).Result()
		if err != nil {
			return fmt.Errorf("allocate player id: %w", err)
		}
		player.ID = model.PlayerID(id)
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.ZAdd(ctx, playerIndexKey(), redis.Z{
		Score:  float64(player.ID),
		Member: strconv.FormatInt(int64(player.ID), 10),
	})
	if explicitID {
		raiseSequence.Eval(ctx, pipe, []string{playerSequenceKey()}, int64(player.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.ZRem(ctx, playerIndexKey(), strconv.FormatInt(int64(id), 10))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) QueryPlayers(ctx context.Context, match func(model.Player) bool) ([]model.Player, error) {
	// Index is scored by id, so ZRANGE yields ascending id order
	members, err := s.client.ZRange(ctx, playerIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return []model.Player{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue // Skip corrupt index entries
		}
		keys = append(keys, playerKey(model.PlayerID(id)))
	}
	if len(keys) == 0 {
		return []model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Deleted between ZRANGE and MGET
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
		if match == nil || match(player) {
			players = append(players, player)
		}
	}

	return players, nil
}
