package main

import (
	"fmt"
	"net"

	"github.com/fwojciec/siterank"
	srgin "github.com/fwojciec/siterank/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := srgin.NewServer(srgin.NewClientLimiter(c.RPS, c.Burst), deps.Logger)
	server.DocumentAnalyzer = deps.Documents
	server.ProfileScorer = deps.Scorer
	server.RunService = deps.Runs
	server.MetricsHandler = deps.Metrics

	if c.Config != "" {
		cfg, err := deps.Config.Load(c.Config)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
			return err
		}
		server.SiteConfig = cfg
	}

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %v\n", c.Addr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())
	return server.Run(deps.Ctx, ln)
}
