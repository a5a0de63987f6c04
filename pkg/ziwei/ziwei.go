// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ziwei is the public interface of go-ziwei, a temporal overlay
// engine for Zi Wei Dou Shu natal charts. Given a natal chart and a time
// unit it reports where each of the twelve roles lands and which roaming
// stars and transformation tags apply.
//
//	docs/ARCHITECTURE § Public Interface.
package ziwei

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/petar-djukic/go-ziwei/internal/chartfile"
	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Error types for the Engine API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidChart  = errors.New("invalid chart")
)

// Config configures an Engine instance.
type Config struct {
	School types.School // Brightness school (default Zhongzhou)
	Logger *zap.Logger  // nil means no logging
}

// LunarDate is a date in the lunar calendar. Conversion from the solar
// calendar is left to the caller. Leap is carried through to the overlay
// but does not change the month pillar.
type LunarDate struct {
	Year  int
	Month int  // 1-12
	Day   int  // 1-30
	Leap  bool // Intercalary month
}

// ValidateLunarDate checks the ranges of the month and day.
func ValidateLunarDate(d LunarDate) error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: lunar month %d out of range 1-12", ErrInvalidInput, d.Month)
	}
	if d.Day < 1 || d.Day > 30 {
		return fmt.Errorf("%w: lunar day %d out of range 1-30", ErrInvalidInput, d.Day)
	}
	return nil
}

// Engine computes overlays of a natal chart. Engines hold no per-call
// state and may be shared between goroutines.
type Engine interface {
	// Natal returns the natal overlay: birth-year transformations,
	// brightness, age ranges, life stages, triangles and flying
	// transformations of every palace.
	Natal(c *types.Chart) (*types.Overlay, error)

	// Decade returns the overlay of the ten-year period covering age.
	Decade(c *types.Chart, age int) (*types.Overlay, error)

	// Decades lists all ten-year periods, flagging the one covering age.
	Decades(c *types.Chart, age int) ([]types.DecadePeriod, error)

	// Year returns the overlay of a lunar year.
	Year(c *types.Chart, year int) (*types.Overlay, error)

	// Month returns the overlay of a lunar month.
	Month(c *types.Chart, year, month int) (*types.Overlay, error)

	// Months returns the overlays of the twelve months of a lunar year.
	Months(c *types.Chart, year int) ([]*types.Overlay, error)

	// Day returns the overlay of a lunar day.
	Day(c *types.Chart, date LunarDate) (*types.Overlay, error)
}

// LoadChart reads a natal chart file. The format follows the extension:
// .toml, .yaml, .yml or .json.
func LoadChart(path string) (*types.Chart, error) {
	c, err := chartfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}
	return c, nil
}
