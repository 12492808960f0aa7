// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	DefaultMaxGamesStored = 25
	DefaultCacheSize      = 64
	DefaultCacheTTL       = 5 * time.Minute
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db        *sql.DB
	maxStored int
	cache     *expirable.LRU[string, []ResultEntry]
}

// ResultEntry is one stored game result.
type ResultEntry struct {
	ID         string            `json:"id"`
	Difficulty config.Difficulty `json:"difficulty"`
	garden.GameResult
	CreatedAt time.Time `json:"created_at"`
}

// Placement reports where a saved result landed on its leaderboard.
type Placement struct {
	ID   string
	Rank int // 1-based; 0 when outside the stored results
}

// LifetimeStats sums every result ever saved, across all difficulties.
type LifetimeStats struct {
	Games int `json:"games"`
	garden.GameResult
}

// Option configures a Store.
type Option func(*Store)

// WithMaxGamesStored sets how many results are kept per difficulty.
func WithMaxGamesStored(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxStored = n
		}
	}
}

// WithCacheTTL sets how long leaderboard reads stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.cache = expirable.NewLRU[string, []ResultEntry](DefaultCacheSize, nil, ttl)
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts ...Option) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:        db,
		maxStored: DefaultMaxGamesStored,
		cache:     expirable.NewLRU[string, []ResultEntry](DefaultCacheSize, nil, DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(store)
	}

	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies the embedded goose migrations.
func (s *Store) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game, trims the leaderboard of its difficulty
// and adds the result to the lifetime stats. Ties rank the newer game first.
func (s *Store) SaveResult(d config.Difficulty, r garden.GameResult) (Placement, error) {
	defer s.cache.Purge()

	tx, err := s.db.Begin()
	if err != nil {
		return Placement{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO results (uuid, difficulty, score, hazards_defeated, fruit_harvested, deaths)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, string(d), r.Score, r.HazardsDefeated, r.FruitHarvested, r.Deaths,
	); err != nil {
		return Placement{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	var better int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM results WHERE difficulty = ? AND score > ?",
		string(d), r.Score,
	).Scan(&better); err != nil {
		return Placement{}, fmt.Errorf("storage: cannot rank result: %w", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM results
		 WHERE difficulty = ? AND seq NOT IN (
			SELECT seq FROM results WHERE difficulty = ?
			ORDER BY score DESC, seq DESC LIMIT ?
		 )`,
		string(d), string(d), s.maxStored,
	); err != nil {
		return Placement{}, fmt.Errorf("storage: cannot trim results: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO lifetime_stats (id, games, score, hazards_defeated, fruit_harvested, deaths)
		 VALUES (1, 1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			games = games + 1,
			score = score + excluded.score,
			hazards_defeated = hazards_defeated + excluded.hazards_defeated,
			fruit_harvested = fruit_harvested + excluded.fruit_harvested,
			deaths = deaths + excluded.deaths`,
		r.Score, r.HazardsDefeated, r.FruitHarvested, r.Deaths,
	); err != nil {
		return Placement{}, fmt.Errorf("storage: cannot update lifetime stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Placement{}, fmt.Errorf("storage: cannot commit result: %w", err)
	}

	p := Placement{ID: id, Rank: better + 1}
	if p.Rank > s.maxStored {
		p.Rank = 0
	}
	return p, nil
}

// TopResults retrieves the best results for the difficulty.
// Results are ordered by score descending, newest first on ties.
func (s *Store) TopResults(d config.Difficulty, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	key := fmt.Sprintf("%s:%d", d, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := s.db.Query(
		`SELECT uuid, difficulty, score, hazards_defeated, fruit_harvested, deaths, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY score DESC, seq DESC
		 LIMIT ?`,
		string(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var difficulty string
		var createdAt any
		if err := rows.Scan(&e.ID, &difficulty, &e.Score, &e.HazardsDefeated,
			&e.FruitHarvested, &e.Deaths, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Difficulty = config.Difficulty(difficulty)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	s.cache.Add(key, entries)
	return entries, nil
}

// HighScore returns the highest score for the difficulty.
// Returns 0 if no results exist.
func (s *Store) HighScore(d config.Difficulty) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE difficulty = ?",
		string(d),
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LifetimeStats returns the totals of every saved game.
func (s *Store) LifetimeStats() (LifetimeStats, error) {
	var st LifetimeStats
	err := s.db.QueryRow(
		`SELECT games, score, hazards_defeated, fruit_harvested, deaths
		 FROM lifetime_stats WHERE id = 1`,
	).Scan(&st.Games, &st.Score, &st.HazardsDefeated, &st.FruitHarvested, &st.Deaths)
	if err == sql.ErrNoRows {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot query lifetime stats: %w", err)
	}
	return st, nil
}

// ClearResults deletes the leaderboard of the difficulty.
// Lifetime stats are kept.
func (s *Store) ClearResults(d config.Difficulty) error {
	defer s.cache.Purge()

	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", string(d))
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
