package scheduler

import (
	"cine-match/catalog"
	"cine-match/errs"
	"cine-match/recommend"
	"cine-match/storage"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeNotifier struct {
	prefs  recommend.Preferences
	movies []catalog.Movie
	calls  int
	err    error
}

func (n *fakeNotifier) NotifyRecommendations(prefs recommend.Preferences, movies []catalog.Movie) error {
	n.calls++
	n.prefs = prefs
	n.movies = movies
	return n.err
}

type fakeHistory struct {
	modes   []string
	matches [][]catalog.Movie
}

func (h *fakeHistory) RecordRun(mode string, prefs recommend.Preferences, matches []catalog.Movie) (int64, error) {
	h.modes = append(h.modes, mode)
	h.matches = append(h.matches, matches)
	return int64(len(h.modes)), nil
}

func writeDigestFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "movieData.json")
	content := `[
  {"title": "A", "year": 2000, "genre": "Action", "rating": 7.5},
  {"title": "B", "year": 2010, "genre": ["Drama", "Comedy"], "rating": 6.0}
]`
	if err := os.WriteFile(catalogPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	prefsPath := filepath.Join(dir, "userPreferences.json")
	if err := storage.SavePreferences(prefsPath, recommend.NewPreferences([]string{"Comedy"}, 5, 2005, 2023)); err != nil {
		t.Fatalf("Failed to write preferences: %v", err)
	}

	return catalogPath, prefsPath
}

func TestRecommendationDigestJob(t *testing.T) {
	catalogPath, prefsPath := writeDigestFixtures(t)
	notifier := &fakeNotifier{}
	history := &fakeHistory{}

	job := NewRecommendationDigestJob(catalog.NewLoader(nil), catalogPath, prefsPath, notifier, history)
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Digest job failed: %v", err)
	}

	if notifier.calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", notifier.calls)
	}
	if len(notifier.movies) != 1 || notifier.movies[0].Title != "B" {
		t.Errorf("Expected [B], got %v", notifier.movies)
	}
	if len(notifier.prefs.Genres) != 1 || notifier.prefs.Genres[0] != "Comedy" {
		t.Errorf("Unexpected preferences passed to notifier: %+v", notifier.prefs)
	}

	if len(history.modes) != 1 || history.modes[0] != storage.ModeDigest {
		t.Errorf("Expected one digest run recorded, got %v", history.modes)
	}
}

func TestRecommendationDigestJobWithoutNotifier(t *testing.T) {
	catalogPath, prefsPath := writeDigestFixtures(t)

	job := NewRecommendationDigestJob(catalog.NewLoader(nil), catalogPath, prefsPath, nil, nil)
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Digest job failed: %v", err)
	}
}

func TestRecommendationDigestJobErrors(t *testing.T) {
	catalogPath, prefsPath := writeDigestFixtures(t)
	dir := filepath.Dir(catalogPath)

	job := NewRecommendationDigestJob(catalog.NewLoader(nil), catalogPath, filepath.Join(dir, "none.json"), nil, nil)
	if err := job.Run(context.Background()); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Expected missing preferences error, got %v", err)
	}

	badCatalog := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badCatalog, []byte("{"), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}
	job = NewRecommendationDigestJob(catalog.NewLoader(nil), badCatalog, prefsPath, nil, nil)
	if err := job.Run(context.Background()); !errs.IsParse(err) {
		t.Errorf("Expected ParseError, got %v", err)
	}

	notifier := &fakeNotifier{err: errors.New("smtp down")}
	job = NewRecommendationDigestJob(catalog.NewLoader(nil), catalogPath, prefsPath, notifier, nil)
	if err := job.Run(context.Background()); err == nil {
		t.Error("Expected notifier failure to be returned")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := job.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
