// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/go-ziwei/pkg/types"
	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// computeFunc produces the value a command prints.
type computeFunc func(e ziwei.Engine, c *types.Chart) (any, error)

// setup builds the logger and tags it with a run id.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	log, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.log = log.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// newLogger returns a production logger writing to stderr; verbose lowers
// the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// run computes and prints once, then again on every chart change when
// --watch is set.
func (a *app) run(cmd *cobra.Command, compute computeFunc) error {
	format := a.v.GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	once := func() error {
		out, err := a.compute(compute)
		if err != nil {
			return err
		}
		return write(cmd.OutOrStdout(), format, out)
	}
	if err := once(); err != nil {
		return err
	}
	if !a.v.GetBool("watch") {
		return nil
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	return watchChart(ctx, a.v.GetString("chart"), a.log, func() {
		if err := once(); err != nil {
			a.log.Error("recompute failed", zap.Error(err))
		}
	})
}

// compute loads the chart, builds the engine and applies fn.
func (a *app) compute(fn computeFunc) (any, error) {
	path := a.v.GetString("chart")
	if path == "" {
		return nil, fmt.Errorf("a chart file is required (--chart or ZIWEI_CHART)")
	}
	school, err := types.ParseSchool(a.v.GetString("school"))
	if err != nil {
		return nil, err
	}

	chart, err := ziwei.LoadChart(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("chart loaded",
		zap.String("path", path),
		zap.Int("birth_year", chart.BirthYear),
		zap.Stringer("school", school))

	engine, err := ziwei.New(ziwei.Config{School: school, Logger: a.log})
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return fn(engine, chart)
}
