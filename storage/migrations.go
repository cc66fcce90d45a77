package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// MigrationManager applies the embedded history schema with goose
type MigrationManager struct {
	db *sql.DB
}

func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

func (m *MigrationManager) Initialize() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return nil
}

func (m *MigrationManager) Up() error {
	if err := goose.Up(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply history migrations: %w", err)
	}

	version, err := m.Version()
	if err != nil {
		return err
	}
	log.Printf("History schema at version %d", version)
	return nil
}

// Down rolls back the most recent migration
func (m *MigrationManager) Down() error {
	if err := goose.Down(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	log.Println("History migration rolled back")
	return nil
}

func (m *MigrationManager) Status() error {
	if err := goose.Status(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func (m *MigrationManager) Version() (int64, error) {
	version, err := goose.GetDBVersion(m.db)
	if err != nil {
		return 0, fmt.Errorf("failed to get history schema version: %w", err)
	}
	return version, nil
}

// Reset rolls back every migration, dropping all recorded runs
func (m *MigrationManager) Reset() error {
	if err := goose.Reset(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to reset history database: %w", err)
	}
	log.Println("History database reset")
	return nil
}
