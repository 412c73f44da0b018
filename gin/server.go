// Package gin serves the analysis pipeline and run history over HTTP.
package gin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/siterank"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// MaxDocumentBytes caps the size of a document submitted for analysis.
const MaxDocumentBytes = 5 << 20

// Server is the HTTP API. Services are read on every request, so they may be
// assigned after NewServer returns.
type Server struct {
	engine *gin.Engine

	DocumentAnalyzer siterank.DocumentAnalyzer
	ProfileScorer    siterank.ProfileScorer
	RunService       siterank.RunService

	// SiteConfig adds generation inputs to analyze responses when set.
	SiteConfig *siterank.SiteConfig

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler

	Logger *slog.Logger
}

// NewServer creates a Server. A nil limiter disables rate limiting and a nil
// logger discards logs.
func NewServer(limiter *ClientLimiter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		engine: gin.New(),
		Logger: logger,
	}

	s.engine.Use(recovery(logger), requestLogger(logger))

	s.engine.GET("/metrics", s.handleMetrics)

	api := s.engine.Group("/api")
	if limiter != nil {
		api.Use(rateLimit(limiter))
	}
	api.GET("/health", s.handleHealth)
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/runs", s.handleRuns)
	api.GET("/runs/:id", s.handleRun)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type analyzeRequest struct {
	HTML string `json:"html"`
}

type analyzeResponse struct {
	Profile *siterank.AnalysisProfile    `json:"profile"`
	Report  *siterank.OptimizationReport `json:"report"`
	Inputs  *siterank.GenerationInputs   `json:"inputs,omitempty"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxDocumentBytes)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, siterank.Errorf(siterank.EINVALID, "invalid request body"))
		return
	}

	profile, err := s.DocumentAnalyzer.AnalyzeDocument(req.HTML)
	if err != nil {
		s.writeError(c, err)
		return
	}

	report, err := s.ProfileScorer.ScoreProfile(profile)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := analyzeResponse{Profile: profile, Report: report}
	if s.SiteConfig != nil {
		inputs := s.SiteConfig.GenerationInputs(profile)
		resp.Inputs = &inputs
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRuns(c *gin.Context) {
	var filter siterank.RunFilter
	if target := c.Query("target"); target != "" {
		filter.Target = &target
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		s.writeError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		s.writeError(c, err)
		return
	}

	runs, err := s.RunService.FindRuns(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if runs == nil {
		runs = []*siterank.Run{}
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleRun(c *gin.Context) {
	run, err := s.RunService.FindRunByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) handleMetrics(c *gin.Context) {
	if s.MetricsHandler == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "metrics disabled"})
		return
	}
	gin.WrapH(s.MetricsHandler)(c)
}

func queryInt(c *gin.Context, key string) (int, error) {
	value := c.Query(key)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, siterank.Errorf(siterank.EINVALID, "%s must be a non-negative integer", key)
	}
	return n, nil
}

// writeError writes err as a JSON body with the status matching its code.
// Internal errors are logged and their details withheld.
func (s *Server) writeError(c *gin.Context, err error) {
	code := siterank.ErrorCode(err)
	status := ErrorStatusCode(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, gin.H{"error": siterank.ErrorMessage(err)})
}

// ErrorStatusCode maps an application error code to an HTTP status code.
func ErrorStatusCode(code string) int {
	switch code {
	case siterank.EINVALID, siterank.EPARSE:
		return http.StatusBadRequest
	case siterank.ENOTFOUND:
		return http.StatusNotFound
	case siterank.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
