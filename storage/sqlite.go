package storage

import (
	"cine-match/catalog"
	"cine-match/errs"
	"cine-match/recommend"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	dataPath string
}

// StorageInterface is the run history used by the interactive and digest modes
type StorageInterface interface {
	Initialize() error
	RecordRun(mode string, prefs recommend.Preferences, matches []catalog.Movie) (int64, error)
	GetStats() (map[string]int, error)
	Close() error
}

func NewSQLiteStorage(dataPath string) *SQLiteStorage {
	dbPath := filepath.Join(dataPath, "cine_match.db")
	return &SQLiteStorage{
		dbPath:   dbPath,
		dataPath: dataPath,
	}
}

func (s *SQLiteStorage) Initialize() error {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(s.dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database connection
	db, err := sql.Open("sqlite3", s.dbPath+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	s.db = db

	// Bring the history schema up to date with goose
	if err := s.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("History database initialized at: %s", s.dbPath)
	return nil
}

// RecordRun stores the preferences of one run together with the movies
// it recommended, in recommendation order.
func (s *SQLiteStorage) RecordRun(mode string, prefs recommend.Preferences, matches []catalog.Movie) (int64, error) {
	genres := prefs.Genres
	if genres == nil {
		genres = []string{}
	}
	genresJSON, err := json.Marshal(genres)
	if err != nil {
		return 0, fmt.Errorf("failed to encode genres: %w", err)
	}

	// Run row and its matches are written together
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
	INSERT INTO runs (mode, genres, min_rating, year_start, year_end, match_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, mode, string(genresJSON), prefs.MinRating, prefs.YearRange.Start, prefs.YearRange.End, len(matches))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO run_matches (run_id, position, title, year, genre, rating)
	VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare match insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range matches {
		genre, err := json.Marshal(m.Genre)
		if err != nil {
			return 0, fmt.Errorf("failed to encode genre of %s: %w", m.Title, err)
		}
		if _, err := stmt.Exec(runID, i, m.Title, m.Year, string(genre), m.Rating); err != nil {
			return 0, fmt.Errorf("failed to insert match %s: %w", m.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// GetRecentRuns returns up to limit runs, newest first, without matches
func (s *SQLiteStorage) GetRecentRuns(limit int) ([]Run, error) {
	query := `
	SELECT id, mode, genres, min_rating, year_start, year_end, match_count, created_at
	FROM runs
	ORDER BY id DESC
	LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			genresJSON string
			minRating  float64
			start, end int
		)
		err := rows.Scan(&run.ID, &run.Mode, &genresJSON, &minRating, &start, &end, &run.MatchCount, &run.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var genres []string
		if err := json.Unmarshal([]byte(genresJSON), &genres); err != nil {
			return nil, fmt.Errorf("failed to decode genres of run %d: %w", run.ID, err)
		}
		run.Preferences = recommend.NewPreferences(genres, minRating, start, end)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRun returns a single run together with the movies it recommended
func (s *SQLiteStorage) GetRun(runID int64) (Run, error) {
	var (
		run        Run
		genresJSON string
		minRating  float64
		start, end int
	)

	err := s.db.QueryRow(`
	SELECT id, mode, genres, min_rating, year_start, year_end, match_count, created_at
	FROM runs
	WHERE id = ?
	`, runID).Scan(&run.ID, &run.Mode, &genresJSON, &minRating, &start, &end, &run.MatchCount, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %d: %w", runID, errs.ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to query run %d: %w", runID, err)
	}

	var genres []string
	if err := json.Unmarshal([]byte(genresJSON), &genres); err != nil {
		return Run{}, fmt.Errorf("failed to decode genres of run %d: %w", runID, err)
	}
	run.Preferences = recommend.NewPreferences(genres, minRating, start, end)

	// Attach the recommended movies in their original order
	run.Matches, err = s.GetRunMatches(runID)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// GetRunMatches returns the movies recommended by a run in their
// original order
func (s *SQLiteStorage) GetRunMatches(runID int64) ([]catalog.Movie, error) {
	query := `
	SELECT title, year, genre, rating
	FROM run_matches
	WHERE run_id = ?
	ORDER BY position
	`

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run matches: %w", err)
	}
	defer rows.Close()

	movies := []catalog.Movie{}
	for rows.Next() {
		var (
			movie catalog.Movie
			genre string
		)
		if err := rows.Scan(&movie.Title, &movie.Year, &genre, &movie.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal([]byte(genre), &movie.Genre); err != nil {
			return nil, fmt.Errorf("failed to decode genre of %s: %w", movie.Title, err)
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStorage) GetStats() (map[string]int, error) {
	stats := make(map[string]int)

	// Total runs and recommended movies
	var total, matches int
	err := s.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(match_count), 0) FROM runs").Scan(&total, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	stats["runs"] = total
	stats["matches"] = matches

	// Runs per mode
	for _, mode := range []string{ModeInteractive, ModeDigest} {
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE mode = ?", mode).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s runs: %w", mode, err)
		}
		stats[mode] = count
	}

	return stats, nil
}

// Migration management methods
func (s *SQLiteStorage) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(s.db)
}

func (s *SQLiteStorage) GetDatabaseVersion() (int64, error) {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return 0, err
	}
	return migrationManager.Version()
}

func (s *SQLiteStorage) RunMigrations() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Up()
}

func (s *SQLiteStorage) RollbackMigration() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Down()
}

func (s *SQLiteStorage) ResetDatabase() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Reset()
}
