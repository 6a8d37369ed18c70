package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/logreg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logreg.NewTextLogger(slog.LevelInfo)

	res, err := logreg.Run(ctx, logreg.WithLogger(logger))
	if err != nil {
		logger.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}

	fmt.Printf("performance: %g\n", res.Performance())
	// the learned coefficients are the whole boundary; there is no separate label to print
	fmt.Printf("decision boundary: %s\n", res.Model)
}
