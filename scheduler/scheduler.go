package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedules runs jobs at 10am and 5pm every day
var DefaultSchedules = []string{"0 0 10 * * *", "0 0 17 * * *"}

const jobTimeout = 30 * time.Minute

// Job represents a scheduled job
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron      *cron.Cron
	jobs      map[string]Job
	entries   map[string][]cron.EntryID
	isRunning bool
}

// NewScheduler creates a scheduler accepting 6-field (seconds) specs
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cron.VerbosePrintfLogger(log.Default())),
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
		jobs:    make(map[string]Job),
		entries: make(map[string][]cron.EntryID),
	}
}

// AddJob registers job under one or more cron specs. Nothing is
// registered if any spec is invalid.
func (s *Scheduler) AddJob(job Job, specs ...string) error {
	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}
	if len(specs) == 0 {
		return fmt.Errorf("job %s has no schedule", name)
	}

	var ids []cron.EntryID
	for _, spec := range specs {
		id, err := s.cron.AddFunc(spec, func() { s.run(job) })
		if err != nil {
			for _, added := range ids {
				s.cron.Remove(added)
			}
			return fmt.Errorf("failed to add job %s with schedule %q: %w", name, spec, err)
		}
		ids = append(ids, id)
	}

	s.jobs[name] = job
	s.entries[name] = ids
	return nil
}

func (s *Scheduler) run(job Job) {
	name := job.Name()
	log.Printf("Starting scheduled job: %s", name)
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := job.Run(ctx); err != nil {
		log.Printf("Error running job %s: %v", name, err)
		return
	}
	log.Printf("Completed job %s in %s", name, time.Since(startTime))
}

// NextRun returns the next activation time of a registered job
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	var next time.Time
	for _, id := range s.entries[name] {
		entry := s.cron.Entry(id)
		if !entry.Valid() {
			continue
		}
		at := entry.Next
		if at.IsZero() {
			at = entry.Schedule.Next(time.Now())
		}
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	return next, !next.IsZero()
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	log.Println("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	log.Println("Scheduler stopped")
}

// RunJobNow runs a job immediately outside of schedule
func (s *Scheduler) RunJobNow(name string) error {
	job, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("job %s not registered", name)
	}

	log.Printf("Manually running job: %s", name)
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	return job.Run(ctx)
}
