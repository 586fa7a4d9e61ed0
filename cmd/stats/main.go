package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrycraft44/rotnode/internal/ctxlog"
	"github.com/harrycraft44/rotnode/internal/rec"
	"github.com/harrycraft44/rotnode/internal/usage"
)

func run(ctx context.Context, config string) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	c, err := LoadConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Info("opening usage store")
	usage.Open(c.Usage)
	defer ctxlog.Close(ctx, "usage store", usage.Closer())

	for op, stats := range usage.All() {
		logger.Info("usage", "op", op, "count", stats.Count, "last", stats.Last)
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "stats")

	logger := ctxlog.Get(ctx)

	config := "config.yaml"
	if len(os.Args) > 1 {
		config = os.Args[1]
	}

	err := run(ctx, config)
	if err != nil {
		logger.Error("stopped unexpectedly", "error", err)
	}
}
