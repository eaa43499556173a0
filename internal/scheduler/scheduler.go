// Package scheduler runs periodic database maintenance in the background.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"loancam/internal/database"
)

// Scheduler manages the periodic maintenance job using gocron.
type Scheduler struct {
	scheduler gocron.Scheduler
	store     database.Store
	interval  time.Duration
	log       *slog.Logger
	mu        sync.Mutex
	running   bool
}

// New creates a Scheduler that runs store maintenance at the given interval.
func New(store database.Store, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		store:     store,
		interval:  interval,
		log:       log.With("component", "scheduler"),
	}, nil
}

// Start registers the maintenance job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func(ctx context.Context) {
			s.log.InfoContext(ctx, "Running scheduled SQL maintenance")
			start := time.Now()
			if err := s.store.RunSQLMaintenance(ctx); err != nil {
				s.log.ErrorContext(ctx, "SQL maintenance failed", "error", err, "duration", time.Since(start))
				return
			}
			s.log.InfoContext(ctx, "SQL maintenance finished", "duration", time.Since(start))
		}, context.Background()),
		gocron.WithName("sql_maintenance"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}

	s.scheduler.Start()
	s.running = true
	s.log.Info("Scheduler started", "maintenance_interval", s.interval)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to complete.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	if err := s.scheduler.Shutdown(); err != nil {
		s.log.Error("Error during scheduler shutdown", "error", err)
		s.running = false
		return err
	}

	s.running = false
	s.log.Info("Scheduler stopped")
	return nil
}
