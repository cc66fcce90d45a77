package scheduler

import (
	"cine-match/catalog"
	"cine-match/recommend"
	"cine-match/storage"
	"context"
	"fmt"
	"log"
)

type CatalogLoader interface {
	Load(location string) ([]catalog.Movie, error)
}

type Notifier interface {
	NotifyRecommendations(prefs recommend.Preferences, movies []catalog.Movie) error
}

type HistoryRecorder interface {
	RecordRun(mode string, prefs recommend.Preferences, matches []catalog.Movie) (int64, error)
}

// RecommendationDigestJob re-applies the saved preferences to the
// catalog and delivers the matches
type RecommendationDigestJob struct {
	loader          CatalogLoader
	catalogPath     string
	preferencesPath string
	notifier        Notifier
	history         HistoryRecorder
}

// NewRecommendationDigestJob creates a digest job. notifier and history
// are optional; without a notifier the matches are logged.
func NewRecommendationDigestJob(loader CatalogLoader, catalogPath, preferencesPath string, notifier Notifier, history HistoryRecorder) *RecommendationDigestJob {
	if notifier == nil {
		log.Println("Email notifications disabled: recommendations will be logged")
	}
	return &RecommendationDigestJob{
		loader:          loader,
		catalogPath:     catalogPath,
		preferencesPath: preferencesPath,
		notifier:        notifier,
		history:         history,
	}
}

func (j *RecommendationDigestJob) Name() string {
	return "recommendation_digest"
}

func (j *RecommendationDigestJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prefs, err := storage.LoadPreferences(j.preferencesPath)
	if err != nil {
		return fmt.Errorf("failed to load saved preferences: %w", err)
	}

	movies, err := j.loader.Load(j.catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	matches := recommend.Filter(movies, prefs)
	log.Printf("Digest found %d of %d movies matching saved preferences", len(matches), len(movies))

	if j.history != nil {
		if _, err := j.history.RecordRun(storage.ModeDigest, prefs, matches); err != nil {
			log.Printf("Failed to record digest run: %v", err)
		}
	}

	if j.notifier == nil {
		for _, m := range matches {
			log.Printf("- %s", m)
		}
		return nil
	}

	if err := j.notifier.NotifyRecommendations(prefs, matches); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}
