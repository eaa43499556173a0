package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Store defines read access to loan application records plus maintenance.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// ListApplications retrieves up to 'limit' loan applications in insertion order.
	ListApplications(ctx context.Context, limit int) ([]LoanApplication, error)

	// GetApplication retrieves a loan application by ID. Returns nil, nil if not found.
	GetApplication(ctx context.Context, id uint) (*LoanApplication, error)

	// CountApplications returns the total number of loan applications.
	CountApplications(ctx context.Context) (int, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListApplications retrieves up to 'limit' loan applications in insertion order.
func (s *sqlxStore) ListApplications(ctx context.Context, limit int) ([]LoanApplication, error) {
	if limit <= 0 {
		limit = 5
	}

	apps := []LoanApplication{}
	query := `SELECT * FROM loan_applications ORDER BY id ASC LIMIT ?`
	if err := s.db.SelectContext(ctx, &apps, query, limit); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list loan applications", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list loan applications: %w", err)
	}
	return apps, nil
}

// GetApplication retrieves a loan application by ID. Returns nil, nil if not found.
func (s *sqlxStore) GetApplication(ctx context.Context, id uint) (*LoanApplication, error) {
	var app LoanApplication
	query := `SELECT * FROM loan_applications WHERE id = ?`
	if err := s.db.GetContext(ctx, &app, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "Failed to get loan application", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get loan application %d: %w", id, err)
	}
	return &app, nil
}

// CountApplications returns the total number of loan applications.
func (s *sqlxStore) CountApplications(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM loan_applications`); err != nil {
		s.logger.ErrorContext(ctx, "Failed to count loan applications", "error", err)
		return 0, fmt.Errorf("failed to count loan applications: %w", err)
	}
	return count, nil
}

// RunSQLMaintenance performs database maintenance tasks.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Running SQL maintenance")

	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("failed to run VACUUM: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE"); err != nil {
		return fmt.Errorf("failed to run ANALYZE: %w", err)
	}

	s.logger.InfoContext(ctx, "SQL maintenance completed")
	return nil
}
