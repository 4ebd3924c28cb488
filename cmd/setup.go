package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/churnboard/internal/artifact"
	"github.com/abhisek/churnboard/internal/churn"
	"github.com/abhisek/churnboard/internal/config"
)

// newLogger builds the process logger. The dashboard owns the terminal, so
// with interactive set and no log file the logs are dropped. The returned
// close func releases the log file, if any.
func newLogger(cfg config.Config, interactive bool) (*logrus.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closeFn = func() { f.Close() }
	case interactive:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, closeFn, nil
}

// loadPipeline reads the artifacts named by cfg and binds them into a
// prediction pipeline.
func loadPipeline(cfg config.Config, log logrus.FieldLogger) (*churn.Pipeline, error) {
	bundle, err := artifact.Load(cfg.ArtifactPaths(), log)
	if err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}
	p, err := churn.NewPipeline(bundle, log)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	return p, nil
}
