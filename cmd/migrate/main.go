package main

import (
	"cine-match/storage"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	defaultDataPath := os.Getenv("DATA_PATH")
	if defaultDataPath == "" {
		defaultDataPath = "./data"
	}

	var (
		dataPath = flag.String("data", defaultDataPath, "Path to history database directory")
		command  = flag.String("cmd", "up", "Command: up, down, status, version, reset, runs, show, stats")
		limit    = flag.Int("limit", 10, "Number of runs listed by -cmd runs")
		runID    = flag.Int64("run", 0, "Run id shown by -cmd show")
	)
	flag.Parse()

	history := storage.NewSQLiteStorage(*dataPath)
	if err := history.Initialize(); err != nil {
		log.Fatalf("Failed to initialize history database: %v", err)
	}
	defer history.Close()

	switch *command {
	case "up":
		if err := history.RunMigrations(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations completed successfully")

	case "down":
		if err := history.RollbackMigration(); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		fmt.Println("Migration rolled back successfully")

	case "status":
		migrationManager := history.GetMigrationManager()
		if err := migrationManager.Initialize(); err != nil {
			log.Fatalf("Failed to initialize migration manager: %v", err)
		}
		if err := migrationManager.Status(); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}

	case "version":
		version, err := history.GetDatabaseVersion()
		if err != nil {
			log.Fatalf("Failed to get database version: %v", err)
		}
		fmt.Printf("Database version: %d\n", version)

	case "reset":
		if err := history.ResetDatabase(); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		fmt.Println("Database reset completed successfully")

	case "runs":
		runs, err := history.GetRecentRuns(*limit)
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded")
			return
		}
		fmt.Println(renderRuns(runs))

	case "show":
		run, err := history.GetRun(*runID)
		if err != nil {
			log.Fatalf("Failed to load run %d: %v", *runID, err)
		}
		fmt.Println(renderRuns([]storage.Run{run}))
		fmt.Println(renderMatches(run.Matches))

	case "stats":
		stats, err := history.GetStats()
		if err != nil {
			log.Fatalf("Failed to get history stats: %v", err)
		}
		fmt.Println(renderStats(stats))

	default:
		fmt.Printf("Unknown command: %s\n", *command)
		fmt.Println("Available commands: up, down, status, version, reset, runs, show, stats")
		os.Exit(1)
	}
}
