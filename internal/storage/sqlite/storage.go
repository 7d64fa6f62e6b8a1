// Package sqlite provides a SQLite-backed player store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/gameplayers/internal/dependencies/clock"
	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/storage"
	"github.com/mcoot/gameplayers/internal/storage/sqlite/migrations"
)

const playerColumns = `id, name, title, race, profession, birthday, banned, experience, level, until_next_level`

// Storage persists players in SQLite
type Storage struct {
	db    *sql.DB
	clock clock.Clock
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite player store at path and applies embedded migrations
func Open(path string, clk clock.Clock) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if clk == nil {
		clk = clock.New()
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), db, migrations.FS, clk); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Storage{db: db, clock: clk}, nil
}

// Close closes the SQLite handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	now := clock.NowMillis(s.clock)

	if player.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO players (
			   name, title, race, profession, birthday, banned,
			   experience, level, until_next_level, created_at, updated_at
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			player.Name, player.Title, string(player.Race), string(player.Profession),
			toMillis(player.Birthday), player.Banned,
			player.Experience, player.Level, player.ExperienceUntilNextLevel, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert player: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read player id: %w", err)
		}
		player.ID = model.PlayerID(id)
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (
		   id, name, title, race, profession, birthday, banned,
		   experience, level, until_next_level, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   title = excluded.title,
		   race = excluded.race,
		   profession = excluded.profession,
		   birthday = excluded.birthday,
		   banned = excluded.banned,
		   experience = excluded.experience,
		   level = excluded.level,
		   until_next_level = excluded.until_next_level,
		   updated_at = excluded.updated_at`,
		int64(player.ID), player.Name, player.Title, string(player.Race), string(player.Profession),
		toMillis(player.Birthday), player.Banned,
		player.Experience, player.Level, player.ExperienceUntilNextLevel, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert player %d: %w", player.ID, err)
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, int64(id))

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player %d: %w", id, err)
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("delete player %d: %w", id, err)
	}
	return nil
}

func (s *Storage) QueryPlayers(ctx context.Context, match func(model.Player) bool) ([]model.Player, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+playerColumns+` FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	players := []model.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		if match == nil || match(player) {
			players = append(players, player)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (model.Player, error) {
	var (
		p                model.Player
		id               int64
		race, profession string
		birthday         int64
	)
	err := row.Scan(&id, &p.Name, &p.Title, &race, &profession, &birthday, &p.Banned,
		&p.Experience, &p.Level, &p.ExperienceUntilNextLevel)
	if err != nil {
		return model.Player{}, err
	}
	p.ID = model.PlayerID(id)
	p.Race = model.Race(race)
	p.Profession = model.Profession(profession)
	p.Birthday = fromMillis(birthday)
	return p, nil
}
