// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ziwei

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/petar-djukic/go-ziwei/internal/overlay"
	"github.com/petar-djukic/go-ziwei/internal/tables"
	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// New validates the config, loads the brightness table of the configured
// school and returns a ready-to-use Engine.
func New(cfg Config) (Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	table, err := tables.ForSchool(cfg.School)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	asm := overlay.NewAssembler(overlay.Deps{
		Brightness: table,
		Logger:     cfg.Logger.Named("overlay"),
	})
	return &engineAdapter{asm: asm}, nil
}

// engineAdapter adapts internal/overlay.Assembler to the public Engine
// interface, validating inputs on the way in.
type engineAdapter struct {
	asm *overlay.Assembler
}

func (e *engineAdapter) Natal(c *types.Chart) (*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	ov, err := e.asm.Natal(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}
	return ov, nil
}

func (e *engineAdapter) Decade(c *types.Chart, age int) (*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	if err := checkAge(age); err != nil {
		return nil, err
	}
	ov, err := e.asm.Decade(c, age)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}
	return ov, nil
}

func (e *engineAdapter) Decades(c *types.Chart, age int) ([]types.DecadePeriod, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	if err := checkAge(age); err != nil {
		return nil, err
	}
	return e.asm.Decades(c, age), nil
}

func (e *engineAdapter) Year(c *types.Chart, year int) (*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	return e.asm.Year(c, year)
}

func (e *engineAdapter) Month(c *types.Chart, year, month int) (*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	if err := ValidateLunarDate(LunarDate{Year: year, Month: month, Day: 1}); err != nil {
		return nil, err
	}
	return e.asm.Month(c, year, month)
}

func (e *engineAdapter) Months(c *types.Chart, year int) ([]*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	return e.asm.Months(c, year)
}

func (e *engineAdapter) Day(c *types.Chart, date LunarDate) (*types.Overlay, error) {
	if err := checkChart(c); err != nil {
		return nil, err
	}
	if err := ValidateLunarDate(date); err != nil {
		return nil, err
	}
	ov, err := e.asm.Day(c, date.Year, date.Month, date.Day)
	if err != nil {
		return nil, err
	}
	ov.Leap = date.Leap
	return ov, nil
}

// validateConfig checks that the config names a known school.
func validateConfig(cfg Config) error {
	if cfg.School != types.Zhongzhou && cfg.School != types.Sanhe {
		return fmt.Errorf("unknown brightness school %d", int(cfg.School))
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

func checkChart(c *types.Chart) error {
	if c == nil {
		return fmt.Errorf("%w: chart is nil", ErrInvalidChart)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}
	return nil
}

func checkAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: age %d is negative", ErrInvalidInput, age)
	}
	return nil
}
