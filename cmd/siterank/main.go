package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/fs"
	"github.com/fwojciec/siterank/pipeline"
	srprom "github.com/fwojciec/siterank/prometheus"
	srslog "github.com/fwojciec/siterank/slog"
	"github.com/fwojciec/siterank/sqlite"
	"github.com/fwojciec/siterank/yaml"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadEnv()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the run history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siterank"),
		kong.Description("Analyze web pages and score their search optimization."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siterank --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITERANK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	registry := prometheus.NewRegistry()
	metrics := srprom.NewMetrics(registry)

	p := pipeline.New(
		srslog.WrapAnalyzers(srprom.WrapAnalyzers(pipeline.DefaultAnalyzers(), metrics), logger),
		srslog.WrapScorers(srprom.WrapScorers(pipeline.DefaultScorers(), metrics), logger),
	)

	deps.Logger = logger
	deps.DB = m.DB
	deps.Runs = sqlite.NewRunService(m.DB)
	deps.Sites = srslog.NewLoggingSiteReader(fs.NewSiteReader(), logger)
	deps.NewAnalyzer = func(opts ...pipeline.Option) siterank.SiteAnalyzer {
		return srslog.NewLoggingSiteAnalyzer(srprom.NewMetricsSiteAnalyzer(p.With(opts...), metrics), logger)
	}
	deps.Documents = p
	deps.Scorer = srprom.NewMetricsProfileScorer(p, metrics)
	deps.Config = yaml.NewConfigLoader()
	deps.Metrics = srprom.Handler(registry)

	if kongCtx.Command() == "serve" {
		setupGinMode()
	}

	return kongCtx.Run(deps)
}

func setupGinMode() {
	mode := os.Getenv(gin.EnvGinMode)
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func defaultDBPath() string {
	if path := os.Getenv("SITERANK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siterank.db"
	}
	dir := filepath.Join(home, ".siterank")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siterank.db")
}
