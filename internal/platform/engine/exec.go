// Package engine invokes the external material-recommendation script as a
// child process and adapts it to the predictions feature's Recommender interface.
package engine

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"buildright/internal/feature/predictions/domain"
	"buildright/internal/feature/predictions/usecase"
)

// Config describes how to launch the recommendation script.
type Config struct {
	// Command is the interpreter, e.g. "python".
	Command string
	// Script is the path to the recommendation script.
	Script string
	// Timeout bounds a single invocation. One slow invocation must never
	// be allowed to hold a request goroutine forever.
	Timeout time.Duration
}

// ExecRecommender runs the recommendation engine as a child process, passing
// the project parameters as command-line flags and reading the material label
// from stdout. Diagnostics arrive on stderr and stay in the server logs.
type ExecRecommender struct {
	cfg Config
	log *zap.Logger
}

// Compile-time check that ExecRecommender satisfies the consumer interface.
var _ usecase.Recommender = (*ExecRecommender)(nil)

// New creates a new instance of ExecRecommender.
func New(cfg Config, log *zap.Logger) *ExecRecommender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ExecRecommender{cfg: cfg, log: log}
}

// Predict launches one engine invocation and returns the trimmed stdout as
// the material label. A non-zero exit, a timeout or empty output all map to
// domain.ErrEngineUnavailable; no retry is attempted.
func (e *ExecRecommender) Predict(ctx context.Context, in usecase.RecommendInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	args := []string{
		e.cfg.Script,
		"--budget", formatFloat(in.Budget),
		"--area_size", formatFloat(in.AreaSize),
		"--environmental_type", in.EnvironmentalType,
		"--project_type", in.ProjectType,
		"--soil_type", in.SoilType,
	}

	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.log.Error("recommendation engine failed",
			zap.Error(err),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
		)
		return "", domain.ErrEngineUnavailable
	}

	label := strings.TrimSpace(stdout.String())
	if label == "" {
		e.log.Error("recommendation engine produced no output",
			zap.String("stderr", strings.TrimSpace(stderr.String())),
		)
		return "", domain.ErrEngineUnavailable
	}
	return label, nil
}

// formatFloat renders the shortest decimal string that parses back to the
// same float64, so the engine sees exactly the value the client sent.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
