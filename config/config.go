package config

import (
	"cine-match/notifier"
	"cine-match/scheduler"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Run modes
const (
	ModeInteractive = "interactive"
	ModeDigest      = "digest"
	ModeOnce        = "once"
)

const (
	DefaultCatalogPath     = "./Data/movieData.json"
	DefaultPreferencesPath = "./Data/userPreferences.json"
	DefaultDataPath        = "./data"
)

// Config is read from the environment; a .env file is honored through
// godotenv in the main packages
type Config struct {
	CatalogPath     string
	PreferencesPath string
	DataPath        string
	RunMode         string
	RecordHistory   bool
	DigestSchedules []string
	RunAtStartup    bool
	Email           notifier.EmailConfig
}

// Load builds a Config from environment variables, applying defaults
func Load() Config {
	cfg := Config{
		CatalogPath:     envOr("CATALOG_PATH", DefaultCatalogPath),
		PreferencesPath: envOr("PREFERENCES_PATH", DefaultPreferencesPath),
		DataPath:        envOr("DATA_PATH", DefaultDataPath),
		RunMode:         strings.ToLower(envOr("RUN_MODE", ModeInteractive)),
		RecordHistory:   envBool("RECORD_HISTORY", true),
		DigestSchedules: slices.Clone(scheduler.DefaultSchedules),
		RunAtStartup:    envBool("RUN_AT_STARTUP", false),
		Email:           notifier.GetEmailConfigFromEnv(),
	}

	if raw := os.Getenv("DIGEST_SCHEDULES"); raw != "" {
		var schedules []string
		if err := json.Unmarshal([]byte(raw), &schedules); err != nil {
			log.Printf("Error parsing DIGEST_SCHEDULES: %v", err)
		} else {
			cfg.DigestSchedules = schedules
		}
	}

	return cfg
}

// Validate reports settings that cannot work
func (c Config) Validate() error {
	switch c.RunMode {
	case ModeInteractive, ModeDigest, ModeOnce:
	default:
		return fmt.Errorf("unknown RUN_MODE %q (expected %s, %s or %s)", c.RunMode, ModeInteractive, ModeDigest, ModeOnce)
	}
	if c.CatalogPath == "" {
		return errors.New("CATALOG_PATH must be set")
	}
	if c.PreferencesPath == "" {
		return errors.New("PREFERENCES_PATH must be set")
	}
	if c.RunMode == ModeDigest && len(c.DigestSchedules) == 0 {
		return errors.New("DIGEST_SCHEDULES must contain at least one cron spec")
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid %s '%s', using default %t", key, raw, def)
		return def
	}
	return v
}
