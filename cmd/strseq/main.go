package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/strseq/internal/demo"
)

func main() {
	ctx := context.Background()

	logger := &logging.Logger{Out: os.Stderr}

	c, err := demo.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load config", logging.ErrField(err))
		os.Exit(1)
	}
	logger = c.Logger(os.Stderr)

	seq, err := c.MakeSequence(logger)
	if err != nil {
		logger.Fatal(ctx, "failed to make sequence", logging.ErrField(err))
		os.Exit(1)
	}

	logger.Info(ctx, "running demo",
		logging.Field("backend", c.Backend),
		logging.Field("indexing", c.Indexing))

	if err := demo.Run(ctx, seq, os.Stdout, logger); err != nil {
		logger.Fatal(ctx, "demo failed", logging.ErrField(err))
		os.Exit(1)
	}
}
