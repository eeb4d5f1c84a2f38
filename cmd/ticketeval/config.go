/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"chainguard.dev/ticketeval/tickets/evaluator"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	APIKey  string `env:"OPENAI_API_KEY,required"`
	Model   string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL"`

	Temperature float64 `env:"TICKETEVAL_TEMPERATURE,default=0.3"`
	ErrorLog    string  `env:"TICKETEVAL_ERROR_LOG,default=error.log"`
	Concurrency int     `env:"TICKETEVAL_CONCURRENCY,default=1"`
	MetricsFile string  `env:"TICKETEVAL_METRICS_FILE"`
}

// loadDotEnv loads variables from the files into the process environment.
// Variables already set win, and missing files are ignored.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*config, error) {
	var cfg config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = evaluator.DefaultModel
	}
	return &cfg, nil
}
