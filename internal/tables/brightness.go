// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tables holds the static lookup data of the overlay engine:
// star brightness for two schools, the four-transformation table, the
// roaming-star rules and the triangle (三方四正) adjacency of roles.
// Tables are loaded and checked once at package init; a malformed or
// incomplete table panics, since it can only come from a bad build.
//
//	docs/ARCHITECTURE § Lookup Tables.
package tables

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

//go:embed data/*.yaml
var dataFS embed.FS

// notApplicable marks a brightness cell that has no value.
const notApplicable = "-"

// BrightnessTable looks up the brightness of a star at a branch. The two
// schools keep different lookup mechanics behind this one signature.
type BrightnessTable interface {
	// Lookup returns the brightness of star at branch. ok is false when
	// the star is not in the table or the cell holds no value.
	Lookup(star types.Star, branch types.Branch) (level types.Brightness, ok bool)
	// Roster returns the stars the table knows, in star order.
	Roster() []types.Star
	// School identifies the table.
	School() types.School
}

var (
	zhongzhouTable = mustLoadLabelTable("data/brightness_zhongzhou.yaml")
	sanheTable     = mustLoadIndexTable("data/brightness_sanhe.yaml")
)

// ForSchool returns the brightness table of a school.
func ForSchool(s types.School) (BrightnessTable, error) {
	switch s {
	case types.Zhongzhou:
		return zhongzhouTable, nil
	case types.Sanhe:
		return sanheTable, nil
	default:
		return nil, fmt.Errorf("no brightness table for school %d", s)
	}
}

// cell is one brightness value; ok is false for a not-applicable cell.
type cell struct {
	level types.Brightness
	ok    bool
}

func parseCell(raw string) (cell, error) {
	if raw == notApplicable {
		return cell{}, nil
	}
	lv, err := types.ParseBrightness(raw)
	if err != nil {
		return cell{}, err
	}
	return cell{level: lv, ok: true}, nil
}

// labelTable is keyed by star, then by branch label.
type labelTable struct {
	rows map[types.Star]map[string]cell
}

func (t *labelTable) Lookup(star types.Star, branch types.Branch) (types.Brightness, bool) {
	row, ok := t.rows[star]
	if !ok {
		return 0, false
	}
	c := row[branch.Label()]
	return c.level, c.ok
}

func (t *labelTable) Roster() []types.Star {
	out := make([]types.Star, 0, len(t.rows))
	for s := range t.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *labelTable) School() types.School { return types.Zhongzhou }

// indexTable is keyed by star, then by branch ring index.
type indexTable struct {
	rows map[types.Star][types.BranchCount]cell
}

func (t *indexTable) Lookup(star types.Star, branch types.Branch) (types.Brightness, bool) {
	row, ok := t.rows[star]
	if !ok {
		return 0, false
	}
	idx := branch.Index()
	if idx < 0 || idx >= types.BranchCount {
		return 0, false
	}
	return row[idx].level, row[idx].ok
}

func (t *indexTable) Roster() []types.Star {
	out := make([]types.Star, 0, len(t.rows))
	for s := range t.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *indexTable) School() types.School { return types.Sanhe }

// parseLabelTable decodes a YAML document mapping star label to a map of
// branch label to brightness label. Every branch must be present.
func parseLabelTable(data []byte) (*labelTable, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding brightness table: %w", err)
	}
	t := &labelTable{rows: make(map[types.Star]map[string]cell, len(raw))}
	for starLabel, cells := range raw {
		star, err := types.ParseStar(starLabel)
		if err != nil {
			return nil, err
		}
		row := make(map[string]cell, types.BranchCount)
		for _, b := range types.Branches() {
			v, ok := cells[b.Label()]
			if !ok {
				return nil, fmt.Errorf("star %s: missing branch %s", starLabel, b)
			}
			c, err := parseCell(v)
			if err != nil {
				return nil, fmt.Errorf("star %s at %s: %w", starLabel, b, err)
			}
			row[b.Label()] = c
		}
		if len(cells) != types.BranchCount {
			return nil, fmt.Errorf("star %s: %d cells, want %d", starLabel, len(cells), types.BranchCount)
		}
		t.rows[star] = row
	}
	return t, nil
}

// parseIndexTable decodes a YAML document mapping star label to a list of
// twelve brightness labels in branch ring order.
func parseIndexTable(data []byte) (*indexTable, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding brightness table: %w", err)
	}
	t := &indexTable{rows: make(map[types.Star][types.BranchCount]cell, len(raw))}
	for starLabel, values := range raw {
		star, err := types.ParseStar(starLabel)
		if err != nil {
			return nil, err
		}
		if len(values) != types.BranchCount {
			return nil, fmt.Errorf("star %s: %d cells, want %d", starLabel, len(values), types.BranchCount)
		}
		var row [types.BranchCount]cell
		for i, v := range values {
			c, err := parseCell(v)
			if err != nil {
				return nil, fmt.Errorf("star %s at %s: %w", starLabel, types.Branch(i), err)
			}
			row[i] = c
		}
		t.rows[star] = row
	}
	return t, nil
}

func mustLoadLabelTable(name string) *labelTable {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("tables: reading %s: %v", name, err))
	}
	t, err := parseLabelTable(data)
	if err != nil {
		panic(fmt.Sprintf("tables: %s: %v", name, err))
	}
	return t
}

func mustLoadIndexTable(name string) *indexTable {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("tables: reading %s: %v", name, err))
	}
	t, err := parseIndexTable(data)
	if err != nil {
		panic(fmt.Sprintf("tables: %s: %v", name, err))
	}
	return t
}
