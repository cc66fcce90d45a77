package storage

import (
	"cine-match/errs"
	"cine-match/recommend"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SavePreferences writes prefs to path as indented JSON, replacing any
// existing content. The parent directory is created when missing.
func SavePreferences(path string, prefs recommend.Preferences) error {
	if prefs.Genres == nil {
		prefs.Genres = []string{}
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &errs.AccessError{Op: "write", Location: path, Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &errs.AccessError{Op: "write", Location: path, Err: err}
	}
	return nil
}

// LoadPreferences reads preferences previously written by SavePreferences.
// A missing file returns an error wrapping errs.ErrNotFound.
func LoadPreferences(path string) (recommend.Preferences, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return recommend.Preferences{}, fmt.Errorf("preferences %s: %w", path, errs.ErrNotFound)
	}
	if err != nil {
		return recommend.Preferences{}, &errs.AccessError{Op: "read", Location: path, Err: err}
	}

	prefs := recommend.DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return recommend.Preferences{}, &errs.ParseError{Location: path, Err: err}
	}
	return recommend.NewPreferences(prefs.Genres, prefs.MinRating, prefs.YearRange.Start, prefs.YearRange.End), nil
}
