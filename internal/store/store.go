// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/gridmem/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for settings and trial history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trials (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			size INTEGER NOT NULL,
			mode TEXT NOT NULL,
			lang TEXT NOT NULL,
			mixed_langs TEXT NOT NULL,
			memorize_ms INTEGER NOT NULL,
			input_ms INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			total INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS trial_symbol_stats (
			trial_id INTEGER NOT NULL,
			symbol TEXT NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			PRIMARY KEY (trial_id, symbol)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_trials_ended_at ON trials(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_trial_symbol_stats_symbol ON trial_symbol_stats(symbol);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadSettings returns all stored settings.
func (s *Store) LoadSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveSettings upserts the given settings in one transaction.
func (s *Store) SaveSettings(ctx context.Context, values map[string]string) (err error) {
	if len(values) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for key, value := range values {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteSettings removes all stored settings.
func (s *Store) DeleteSettings(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings`)
	return err
}

// InsertTrial stores a finished trial and its per-symbol stats.
func (s *Store) InsertTrial(ctx context.Context, result model.TrialResult) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO trials (started_at, ended_at, size, mode, lang, mixed_langs, memorize_ms, input_ms, correct, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.StartedAt.Format(time.RFC3339Nano),
		result.EndedAt.Format(time.RFC3339Nano),
		result.Size,
		result.Mode.String(),
		result.Language,
		strings.Join(result.MixedLanguages, "|"),
		result.MemorizeMs,
		result.InputMs,
		result.Correct,
		result.Total,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(result.Symbols) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO trial_symbol_stats (trial_id, symbol, correct, incorrect)
			 VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, ss := range result.Symbols {
			if _, err := stmt.ExecContext(ctx, id, ss.Symbol, ss.Correct, ss.Incorrect); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListTrials returns trial aggregates filtered by stats config, oldest first.
func (s *Store) ListTrials(ctx context.Context, cfg model.StatsConfig) ([]model.TrialAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Size > 0 {
		clauses = append(clauses, "size = ?")
		args = append(args, cfg.Size)
	}
	if cfg.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, size, mode, correct, total, input_ms
		FROM trials
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var trials []model.TrialAggregate
	for rows.Next() {
		var agg model.TrialAggregate
		var endedAt string
		if err := rows.Scan(&agg.TrialID, &endedAt, &agg.Size, &agg.Mode, &agg.Correct, &agg.Total, &agg.InputMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		trials = append(trials, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trials, nil
}

// ListSymbolAggregatesForTrials aggregates per-symbol stats across trials.
func (s *Store) ListSymbolAggregatesForTrials(ctx context.Context, trialIDs []int64) ([]model.SymbolAggregate, error) {
	if len(trialIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(trialIDs))
	args := make([]any, len(trialIDs))
	for i, id := range trialIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT symbol, SUM(correct) AS correct, SUM(incorrect) AS incorrect
		FROM trial_symbol_stats
		WHERE trial_id IN (%s)
		GROUP BY symbol
		ORDER BY symbol`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.SymbolAggregate
	for rows.Next() {
		var agg model.SymbolAggregate
		if err := rows.Scan(&agg.Symbol, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
