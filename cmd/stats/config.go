package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/harrycraft44/rotnode/internal/ctxlog"
	"github.com/harrycraft44/rotnode/internal/server"
	"github.com/harrycraft44/rotnode/internal/usage"
)

// Config is the daemon's config shape, so the stats tool can be pointed at
// the same file. Only the usage section is used here.
type Config struct {
	Server server.Config
	Usage  usage.Config
}

func LoadConfig(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	return config, nil
}
