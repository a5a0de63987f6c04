// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chartfile decodes a natal chart produced by an external chart
// generator. Charts arrive as TOML, YAML or JSON documents using display
// labels; decoding converts every label to its canonical value and checks
// the chart before the engine sees it.
//
//	docs/ARCHITECTURE § Natal Chart Contract.
package chartfile

import (
	"errors"
	"fmt"

	"github.com/petar-djukic/go-ziwei/internal/cycle"
	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// DecodeError describes one malformed field of a chart document.
type DecodeError struct {
	Position int    // Index of the position entry (1-based); 0 for chart-level fields
	Field    string // Field name as written in the document
	Message  string // What went wrong
}

func (e *DecodeError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("position %d: %s: %s", e.Position, e.Field, e.Message)
}

// document is the on-disk shape of a chart.
type document struct {
	BirthYear     int        `toml:"birth_year" yaml:"birth_year" json:"birth_year"`
	YearStem      string     `toml:"year_stem" yaml:"year_stem" json:"year_stem"`
	YearBranch    string     `toml:"year_branch" yaml:"year_branch" json:"year_branch"`
	Gender        string     `toml:"gender" yaml:"gender" json:"gender"`
	Element       string     `toml:"element" yaml:"element" json:"element"`
	DestinyMaster string     `toml:"destiny_master" yaml:"destiny_master" json:"destiny_master"`
	BodyMaster    string     `toml:"body_master" yaml:"body_master" json:"body_master"`
	Positions     []position `toml:"positions" yaml:"positions" json:"positions"`
}

type position struct {
	Branch    string   `toml:"branch" yaml:"branch" json:"branch"`
	Stem      string   `toml:"stem" yaml:"stem" json:"stem"`
	Major     []string `toml:"major" yaml:"major" json:"major"`
	Minor     []string `toml:"minor" yaml:"minor" json:"minor"`
	Mini      []string `toml:"mini" yaml:"mini" json:"mini"`
	Scholar   string   `toml:"scholar" yaml:"scholar" json:"scholar"`
	YearGod   string   `toml:"year_god" yaml:"year_god" json:"year_god"`
	Leader    string   `toml:"leader" yaml:"leader" json:"leader"`
	Temples   []string `toml:"temples" yaml:"temples" json:"temples"`
	AgeStart  int      `toml:"age_start" yaml:"age_start" json:"age_start"`
	AgeEnd    int      `toml:"age_end" yaml:"age_end" json:"age_end"`
	LifeStage string   `toml:"life_stage" yaml:"life_stage" json:"life_stage"`
}

// build converts a decoded document into a chart, collecting every
// DecodeError rather than stopping at the first, then validates the chart.
func build(doc *document) (*types.Chart, error) {
	var errs []error
	fail := func(pos int, field, format string, args ...any) {
		errs = append(errs, &DecodeError{Position: pos, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	c := &types.Chart{
		BirthYear:     doc.BirthYear,
		Gender:        doc.Gender,
		Element:       doc.Element,
		DestinyMaster: doc.DestinyMaster,
		BodyMaster:    doc.BodyMaster,
	}

	// Year pillar defaults to the one derived from the birth year.
	c.YearStem = cycle.StemOfYear(doc.BirthYear)
	if doc.YearStem != "" {
		s, err := types.ParseStem(doc.YearStem)
		if err != nil {
			fail(0, "year_stem", "%v", err)
		}
		c.YearStem = s
	}
	c.YearBranch = cycle.BranchOfYear(doc.BirthYear)
	if doc.YearBranch != "" {
		b, err := types.ParseBranch(doc.YearBranch)
		if err != nil {
			fail(0, "year_branch", "%v", err)
		}
		c.YearBranch = b
	}

	if len(doc.Positions) != types.BranchCount {
		fail(0, "positions", "got %d entries, want %d", len(doc.Positions), types.BranchCount)
		return nil, errors.Join(errs...)
	}

	var filled [types.BranchCount]bool
	for i, raw := range doc.Positions {
		n := i + 1
		b, err := types.ParseBranch(raw.Branch)
		if err != nil {
			fail(n, "branch", "%v", err)
			continue
		}
		if filled[b] {
			fail(n, "branch", "branch %s listed twice", b)
			continue
		}
		filled[b] = true

		p := types.Position{
			Branch:    b,
			Scholar:   raw.Scholar,
			YearGod:   raw.YearGod,
			Leader:    raw.Leader,
			AgeStart:  raw.AgeStart,
			AgeEnd:    raw.AgeEnd,
			LifeStage: raw.LifeStage,
		}
		if len(raw.Mini) > 0 {
			p.Mini = raw.Mini
		}
		if p.Stem, err = types.ParseStem(raw.Stem); err != nil {
			fail(n, "stem", "%v", err)
		}
		for _, label := range raw.Major {
			s, err := types.ParseStar(label)
			if err != nil {
				fail(n, "major", "%v", err)
				continue
			}
			p.Major = append(p.Major, s)
		}
		for _, label := range raw.Minor {
			s, err := types.ParseStar(label)
			if err != nil {
				fail(n, "minor", "%v", err)
				continue
			}
			p.Minor = append(p.Minor, s)
		}
		for _, label := range raw.Temples {
			if label == types.BodyLabel {
				p.Body = true
				continue
			}
			r, err := types.ParseRole(label)
			if err != nil {
				fail(n, "temples", "%v", err)
				continue
			}
			p.Roles = append(p.Roles, r)
		}
		c.Positions[b] = p
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
