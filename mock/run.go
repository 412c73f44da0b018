package mock

import (
	"context"

	"github.com/fwojciec/siterank"
)

var _ siterank.RunService = (*RunService)(nil)

// RunService is a mock implementation of siterank.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *siterank.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*siterank.Run, error)
	FindRunsFn    func(ctx context.Context, filter siterank.RunFilter) ([]*siterank.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *siterank.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*siterank.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter siterank.RunFilter) ([]*siterank.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
