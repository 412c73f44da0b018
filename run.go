package siterank

import (
	"context"
	"time"
)

// Run is a saved analysis of a site.
type Run struct {
	ID          string              `json:"id"`
	Target      string              `json:"target"`
	Framework   Framework           `json:"framework"`
	PageCount   int                 `json:"pageCount"`
	FailedCount int                 `json:"failedCount"`
	Score       int                 `json:"score"`
	Category    BusinessCategory    `json:"category"`
	ContentHash string              `json:"contentHash"`
	Profile     *AnalysisProfile    `json:"profile"`
	Report      *OptimizationReport `json:"report"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Target == "" {
		return Errorf(EINVALID, "run target required")
	}
	if r.Profile == nil {
		return Errorf(EINVALID, "run profile required")
	}
	if r.Report == nil {
		return Errorf(EINVALID, "run report required")
	}
	return nil
}

// RunService represents a service for managing saved runs.
type RunService interface {
	// CreateRun saves a new run and sets its ID and CreatedAt.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID     *string `json:"id"`
	Target *string `json:"target"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
