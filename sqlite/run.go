package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/fwojciec/siterank"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ siterank.RunService = (*RunService)(nil)

var runColumns = []string{
	"id", "target", "framework", "page_count", "failed_count", "score",
	"category", "content_hash", "profile", "report", "created_at",
}

// RunService implements siterank.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun saves a new run.
func (s *RunService) CreateRun(ctx context.Context, run *siterank.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	profile, err := json.Marshal(run.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	report, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	query, args, err := sq.Insert("runs").
		Columns(runColumns...).
		Values(run.ID, run.Target, string(run.Framework), run.PageCount, run.FailedCount, run.Score,
			run.Category.String(), run.ContentHash, string(profile), string(report),
			run.CreatedAt.Format(timeLayout)).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*siterank.Run, error) {
	query, args, err := sq.Select(runColumns...).From("runs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, siterank.Errorf(siterank.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter siterank.RunFilter) ([]*siterank.Run, error) {
	builder := sq.Select(runColumns...).From("runs").OrderBy("created_at DESC")

	if filter.ID != nil {
		builder = builder.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Target != nil {
		builder = builder.Where(sq.Eq{"target": *filter.Target})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			// SQLite only accepts OFFSET after a LIMIT clause.
			builder = builder.Limit(uint64(1<<63 - 1))
		}
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*siterank.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	query, args, err := sq.Delete("runs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return siterank.Errorf(siterank.ENOTFOUND, "run not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*siterank.Run, error) {
	var run siterank.Run
	var framework, category, profile, report, createdAt string

	if err := row.Scan(&run.ID, &run.Target, &framework, &run.PageCount, &run.FailedCount, &run.Score,
		&category, &run.ContentHash, &profile, &report, &createdAt); err != nil {
		return nil, err
	}

	run.Framework = siterank.Framework(framework)

	var err error
	if run.Category, err = siterank.ParseBusinessCategory(category); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	if err := json.Unmarshal([]byte(profile), &run.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := json.Unmarshal([]byte(report), &run.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
