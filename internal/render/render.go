// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render lays out overlay records as aligned text tables. Column
// widths are measured in terminal cells so that CJK labels line up.
//
//	docs/ARCHITECTURE § Presentation.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

const (
	defaultMaxCellWidth = 24
	defaultGutter       = 2
	ellipsis            = "…"
)

// Config configures table rendering.
type Config struct {
	MaxCellWidth int // Cells wider than this are truncated (default 24)
	Gutter       int // Spaces between columns (default 2)
}

func (c Config) withDefaults() Config {
	if c.MaxCellWidth == 0 {
		c.MaxCellWidth = defaultMaxCellWidth
	}
	if c.Gutter == 0 {
		c.Gutter = defaultGutter
	}
	return c
}

// Overlay writes a header block followed by one table row per role.
func Overlay(w io.Writer, r ziwei.Record, cfg Config) error {
	cfg = cfg.withDefaults()

	var buf strings.Builder
	buf.WriteString(header(r) + "\n")
	if line := natalHeader(r); line != "" {
		buf.WriteString(line + "\n")
	}
	buf.WriteString("命: " + r.Headline + "\n")
	if len(r.Transformations) > 0 {
		buf.WriteString("四化: " + strings.Join(r.Transformations, " ") + "\n")
	}
	buf.WriteString("\n")

	natal := r.Scale == "natal"
	cols := []string{"宮", "支", "干", "本宮", "主星", "輔星", "流曜", "四化"}
	if natal {
		cols = append(cols, "大限", "長生", "博士", "歲建", "將前")
	}
	rows := [][]string{cols}
	for _, p := range r.Palaces {
		natalRoles := strings.Join(p.NatalRoles, " ")
		if p.Body {
			natalRoles = strings.TrimSpace(natalRoles + " 身宮")
		}
		row := []string{
			p.Role,
			p.Branch,
			p.Stem,
			natalRoles,
			strings.Join(p.Major, " "),
			strings.Join(p.Minor, " "),
			strings.Join(p.Roaming, " "),
			strings.Join(p.Tags, " "),
		}
		if natal {
			row = append(row, p.AgeRange, p.LifeStage, p.Scholar, p.YearGod, p.Leader)
		}
		rows = append(rows, row)
	}
	writeTable(&buf, rows, cfg)

	_, err := io.WriteString(w, buf.String())
	return err
}

// Decades writes the decade periods, marking the active one.
func Decades(w io.Writer, decades []ziwei.DecadeRecord, cfg Config) error {
	cfg = cfg.withDefaults()

	rows := [][]string{{"", "大限", "支", "干", "本宮"}}
	for _, d := range decades {
		mark := ""
		if d.Active {
			mark = "*"
		}
		rows = append(rows, []string{mark, d.AgeRange, d.Branch, d.Stem, strings.Join(d.Roles, " ")})
	}

	var buf strings.Builder
	writeTable(&buf, rows, cfg)
	_, err := io.WriteString(w, buf.String())
	return err
}

// header summarises the time unit of the record, for example
// "year 2024 甲辰 (age 40)".
func header(r ziwei.Record) string {
	var parts []string
	parts = append(parts, r.Scale)
	switch {
	case r.Day != 0:
		parts = append(parts, fmt.Sprintf("%d-%d-%d", r.Year, r.Month, r.Day))
	case r.Month != 0:
		parts = append(parts, fmt.Sprintf("%d-%d", r.Year, r.Month))
	case r.Year != 0:
		parts = append(parts, fmt.Sprintf("%d", r.Year))
	}
	if r.Leap {
		parts = append(parts, "閏")
	}
	parts = append(parts, r.Stem+r.Branch)
	if r.AgeRange != "" {
		parts = append(parts, "("+r.AgeRange+")")
	} else if r.Age != 0 {
		parts = append(parts, fmt.Sprintf("(age %d)", r.Age))
	}
	if !r.Anchored {
		parts = append(parts, "[natal roles]")
	}
	return strings.Join(parts, " ")
}

// natalHeader lists the chart-wide labels of a natal record, for example
// "男 水二局 命主貪狼 身主火星". It is empty for other scales.
func natalHeader(r ziwei.Record) string {
	var parts []string
	for _, p := range []string{r.Gender, r.Element} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if r.DestinyMaster != "" {
		parts = append(parts, "命主"+r.DestinyMaster)
	}
	if r.BodyMaster != "" {
		parts = append(parts, "身主"+r.BodyMaster)
	}
	return strings.Join(parts, " ")
}

// writeTable pads every cell to its column's display width.
func writeTable(buf *strings.Builder, rows [][]string, cfg Config) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			cell = runewidth.Truncate(cell, cfg.MaxCellWidth, ellipsis)
			row[i] = cell
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	gutter := strings.Repeat(" ", cfg.Gutter)
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString(gutter)
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		buf.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
}
