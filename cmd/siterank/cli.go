package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/pipeline"
	"github.com/fwojciec/siterank/sqlite"
	"github.com/fwojciec/siterank/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Runs      siterank.RunService
	Sites     siterank.SiteReader
	Documents siterank.DocumentAnalyzer
	Scorer    siterank.ProfileScorer
	Config    *yaml.ConfigLoader
	Metrics   http.Handler

	// NewAnalyzer builds a site analyzer for one command run.
	NewAnalyzer func(opts ...pipeline.Option) siterank.SiteAnalyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze the pages of a site directory"`
	Report  ReportCmd  `cmd:"" help:"Show a saved analysis run"`
	History HistoryCmd `cmd:"" help:"List saved analysis runs"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved analysis run"`
	Serve   ServeCmd   `cmd:"" help:"Serve the analysis API over HTTP"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Dir         string `arg:"" type:"path" help:"Site directory"`
	Format      string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Output      string `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
	Save        bool   `short:"s" help:"Save the run to history"`
	Config      string `type:"path" help:"Site configuration YAML file"`
	Concurrency int    `short:"c" default:"4" help:"Pages analyzed at once"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	ID     string `arg:"" help:"Run ID"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Output string `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Target string `type:"path" help:"Only show runs for this site directory"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string  `default:"127.0.0.1:8080" help:"Listen address"`
	Config string  `type:"path" help:"Site configuration YAML file"`
	RPS    float64 `name:"rps" default:"2" help:"Requests per second allowed per client"`
	Burst  int     `default:"5" help:"Request burst allowed per client"`
}
