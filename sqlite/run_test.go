package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func newRun(target string) *siterank.Run {
	return &siterank.Run{
		Target:      target,
		Framework:   siterank.FrameworkVanillaHTML,
		PageCount:   3,
		FailedCount: 1,
		Score:       54,
		Category:    siterank.BusinessService,
		ContentHash: "9f86d081884c7d65",
		Profile: &siterank.AnalysisProfile{
			Keywords:         []siterank.Keyword{{Word: "services", Frequency: 3, Score: 28.4}},
			BusinessCategory: siterank.BusinessService,
			Language:         "en",
			ExistingSeo:      siterank.ExistingSeoAudit{HasTitle: true, Title: "Professional Web Services", H1Count: 1},
		},
		Report: &siterank.OptimizationReport{
			OptimizationScore: 54,
			Recommendations: []siterank.Recommendation{
				{Category: siterank.CategorySchema, Priority: siterank.PriorityHigh, Message: "Missing Schema.org structured data"},
			},
		},
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		run := newRun("/srv/site")

		err := svc.CreateRun(context.Background(), run)

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &siterank.Run{})

		require.Error(t, err)
		assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := newRun("/srv/site")
		require.NoError(t, svc.CreateRun(ctx, run))

		found, err := svc.FindRunByID(ctx, run.ID)

		require.NoError(t, err)
		assert.Equal(t, run.ID, found.ID)
		assert.Equal(t, "/srv/site", found.Target)
		assert.Equal(t, siterank.FrameworkVanillaHTML, found.Framework)
		assert.Equal(t, 3, found.PageCount)
		assert.Equal(t, 1, found.FailedCount)
		assert.Equal(t, 54, found.Score)
		assert.Equal(t, siterank.BusinessService, found.Category)
		assert.Equal(t, "9f86d081884c7d65", found.ContentHash)
		assert.Equal(t, run.Profile, found.Profile)
		assert.Equal(t, run.Report, found.Report)
		assert.True(t, run.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for missing run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		_, err := svc.FindRunByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, siterank.ENOTFOUND, siterank.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*sqlite.RunService, []*siterank.Run) {
		t.Helper()
		svc := sqlite.NewRunService(setupTestDB(t))
		var runs []*siterank.Run
		for _, target := range []string{"/a", "/b", "/a"} {
			run := newRun(target)
			require.NoError(t, svc.CreateRun(context.Background(), run))
			runs = append(runs, run)
		}
		return svc, runs
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc, runs := setup(t)

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{})

		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, runs[2].ID, found[0].ID)
		assert.Equal(t, runs[0].ID, found[2].ID)
	})

	t.Run("filters by target", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)
		target := "/a"

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{Target: &target})

		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, r := range found {
			assert.Equal(t, "/a", r.Target)
		}
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		svc, runs := setup(t)

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{ID: &runs[1].ID})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "/b", found[0].Target)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc, runs := setup(t)

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, runs[1].ID, found[0].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc, _ := setup(t)

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{Offset: 2})

		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("returns empty result for empty store", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		found, err := svc.FindRuns(context.Background(), siterank.RunFilter{})

		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		run := newRun("/srv/site")
		require.NoError(t, svc.CreateRun(ctx, run))

		require.NoError(t, svc.DeleteRun(ctx, run.ID))

		_, err := svc.FindRunByID(ctx, run.ID)
		assert.Equal(t, siterank.ENOTFOUND, siterank.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.DeleteRun(context.Background(), "nonexistent")

		assert.Equal(t, siterank.ENOTFOUND, siterank.ErrorCode(err))
	})
}
