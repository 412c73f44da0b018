package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/siterank"
	main "github.com/fwojciec/siterank/cmd/siterank"
	"github.com/fwojciec/siterank/mock"
	"github.com/fwojciec/siterank/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       ctx,
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Runs:      &mock.RunService{},
			Documents: &mock.DocumentAnalyzer{},
			Scorer:    &mock.ProfileScorer{},
			Config:    yaml.NewConfigLoader(),
		}

		cmd := &main.ServeCmd{Addr: "127.0.0.1:0", RPS: 2, Burst: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
	})

	t.Run("reports a missing config file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Config: yaml.NewConfigLoader(),
		}

		cmd := &main.ServeCmd{
			Addr:   "127.0.0.1:0",
			Config: filepath.Join(t.TempDir(), "missing.yaml"),
			RPS:    2,
			Burst:  5,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, siterank.ENOTFOUND, siterank.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: ")
	})
}
