package main

import (
	"cine-match/catalog"
	"cine-match/config"
	"cine-match/errs"
	"cine-match/notifier"
	"cine-match/prompt"
	"cine-match/recommend"
	"cine-match/scheduler"
	"cine-match/scraper"
	"cine-match/storage"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Initialize logger with timestamp
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Get configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	switch cfg.RunMode {
	case config.ModeInteractive:
		if err := runInteractive(cfg, os.Stdin, os.Stdout); err != nil {
			if errs.IsValidation(err) {
				fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
				os.Exit(1)
			}
			log.Fatalf("Error: %v", err)
		}

	case config.ModeDigest:
		log.Println("Starting in digest mode")
		runDigestScheduler(cfg)

	case config.ModeOnce:
		log.Println("Running digest once")
		history := digestHistory(cfg)
		job, cleanup := newDigestJob(cfg, history)
		defer cleanup()

		// Run it once with a timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			cleanup()
			log.Fatalf("Error running digest: %v", err)
		}

		displayDatabaseStats(history)
	}
}

// runInteractive loads the catalog, asks for preferences, prints the
// matching movies and saves the preferences
func runInteractive(cfg config.Config, in io.Reader, out io.Writer) error {
	// Load the catalog; a missing one is simply empty
	loader := catalog.NewLoader(scraper.NewScraper())
	movies, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Ask for preferences
	prefs, err := prompt.NewPrompter(in, out).CollectPreferences()
	if err != nil {
		return err
	}

	// Filter and print
	matches := recommend.Filter(movies, prefs)
	printRecommendations(out, matches)

	// Persist preferences
	if err := storage.SavePreferences(cfg.PreferencesPath, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	if cfg.RecordHistory {
		history := storage.NewSQLiteStorage(cfg.DataPath)
		defer history.Close()
		recordHistory(history, prefs, matches)
	}
	return nil
}

func printRecommendations(out io.Writer, movies []catalog.Movie) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recommended Movies:")
	for _, m := range movies {
		fmt.Fprintln(out, m)
	}
}

// recordHistory is best effort; a broken history database never fails a run
func recordHistory(history storage.StorageInterface, prefs recommend.Preferences, matches []catalog.Movie) {
	if err := history.Initialize(); err != nil {
		log.Printf("Run history unavailable: %v", err)
		return
	}
	if _, err := history.RecordRun(storage.ModeInteractive, prefs, matches); err != nil {
		log.Printf("Failed to record run: %v", err)
	}
}

// openHistory initializes the run history, returning nil when it cannot
// be used
func openHistory(history storage.StorageInterface) storage.StorageInterface {
	if err := history.Initialize(); err != nil {
		log.Printf("Run history unavailable: %v", err)
		history.Close()
		return nil
	}
	return history
}

// newDigestJob wires the digest job. history may be nil. The returned
// cleanup closes the history database.
func newDigestJob(cfg config.Config, history storage.StorageInterface) (*scheduler.RecommendationDigestJob, func()) {
	// Email notifier, only when SMTP is configured
	var n scheduler.Notifier
	if cfg.Email.Enabled() {
		emailNotifier, err := notifier.NewEmailNotifier(cfg.Email)
		if err != nil {
			log.Printf("Failed to create email notifier: %v", err)
		} else {
			n = emailNotifier
			log.Printf("Email notifications will be sent to: %s", cfg.Email.RecipientEmail)
		}
	} else {
		log.Println("Email notifications disabled: missing configuration")
	}

	var recorder scheduler.HistoryRecorder
	cleanup := func() {}
	if history != nil {
		recorder = history
		cleanup = func() { history.Close() }
	}

	loader := catalog.NewLoader(scraper.NewScraper())
	return scheduler.NewRecommendationDigestJob(loader, cfg.CatalogPath, cfg.PreferencesPath, n, recorder), cleanup
}

// digestHistory opens the history database for the digest modes when
// recording is enabled
func digestHistory(cfg config.Config) storage.StorageInterface {
	if !cfg.RecordHistory {
		return nil
	}
	return openHistory(storage.NewSQLiteStorage(cfg.DataPath))
}

// displayDatabaseStats logs run history statistics
func displayDatabaseStats(history storage.StorageInterface) {
	if history == nil {
		return
	}

	log.Println("Run History Statistics")

	stats, err := history.GetStats()
	if err != nil {
		log.Printf("Error getting history stats: %v", err)
		return
	}

	log.Printf("Total runs: %d", stats["runs"])
	log.Printf("Interactive runs: %d", stats[storage.ModeInteractive])
	log.Printf("Digest runs: %d", stats[storage.ModeDigest])
	log.Printf("Movies recommended: %d", stats["matches"])
}

func runDigestScheduler(cfg config.Config) {
	history := digestHistory(cfg)
	job, cleanup := newDigestJob(cfg, history)
	defer cleanup()

	// Display history stats
	displayDatabaseStats(history)

	// Initialize scheduler with the configured schedules
	sched := scheduler.NewScheduler()
	if err := sched.AddJob(job, cfg.DigestSchedules...); err != nil {
		cleanup()
		log.Fatalf("Failed to schedule digest job: %v", err)
	}

	sched.Start()
	if next, ok := sched.NextRun(job.Name()); ok {
		log.Printf("Scheduler started. Next digest at %s", next.Format(time.RFC1123))
	}

	// Run the job once at startup if specified
	if cfg.RunAtStartup {
		log.Println("Running initial digest at startup")
		if err := sched.RunJobNow(job.Name()); err != nil {
			log.Printf("Error running initial digest: %v", err)
		}
	}

	// Set up signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Println("Application running. Press Ctrl+C to exit")

	sig := <-quit
	log.Printf("Received signal %s, shutting down...", sig)

	sched.Stop()
	log.Println("Application exiting")
}
