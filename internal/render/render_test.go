// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-ziwei/internal/testchart"
	"github.com/petar-djukic/go-ziwei/pkg/types"
	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

func record(t *testing.T, year int) ziwei.Record {
	t.Helper()
	e, err := ziwei.New(ziwei.Config{School: types.Zhongzhou})
	require.NoError(t, err)
	ov, err := e.Year(testchart.New(), year)
	require.NoError(t, err)
	return ziwei.NewRecord(ov)
}

// cellOffset returns the display column at which substr starts in line.
func cellOffset(line, substr string) int {
	i := strings.Index(line, substr)
	if i < 0 {
		return -1
	}
	return runewidth.StringWidth(line[:i])
}

// runeAt returns the rune starting at display column col, or 0.
func runeAt(line string, col int) rune {
	w := 0
	for _, r := range line {
		if w == col {
			return r
		}
		w += runewidth.RuneWidth(r)
		if w > col {
			return 0
		}
	}
	return 0
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func TestOverlay_HeaderAndRows(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Overlay(&buf, record(t, 2021), Config{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "year 2021 辛丑 (age 37)", lines[0])
	assert.Equal(t, "命: 天同 巨門(借)", lines[1], "no chart header outside natal")
	assert.True(t, strings.HasPrefix(lines[2], "四化: 化祿巨門@未"))
	// Header, blank line, column header, twelve rows.
	assert.Len(t, lines, 4+1+types.RoleCount)
	assert.True(t, strings.HasPrefix(lines[5], "命宮"))
}

func TestOverlay_ColumnsAlignByDisplayWidth(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Overlay(&buf, record(t, 2024), Config{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var table []string
	for i, l := range lines {
		if strings.HasPrefix(l, "宮") {
			table = lines[i:]
			break
		}
	}
	require.Len(t, table, 1+types.RoleCount)

	branchCol := cellOffset(table[0], "支")
	majorCol := cellOffset(table[0], "主星")
	tagCol := cellOffset(table[0], "四化")
	require.Greater(t, branchCol, 0)

	rec := record(t, 2024)
	for i, p := range rec.Palaces {
		row := table[i+1]
		assert.Equal(t, firstRune(p.Branch), runeAt(row, branchCol), "row %d branch", i)
		if len(p.Major) > 0 {
			assert.Equal(t, firstRune(p.Major[0]), runeAt(row, majorCol), "row %d major", i)
		}
		if len(p.Tags) > 0 {
			assert.Equal(t, firstRune(p.Tags[0]), runeAt(row, tagCol), "row %d tags", i)
		}
	}
}

func TestOverlay_NatalAddsAgeColumns(t *testing.T) {
	e, err := ziwei.New(ziwei.Config{})
	require.NoError(t, err)
	ov, err := e.Natal(testchart.New())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Overlay(&buf, ziwei.NewRecord(ov), Config{}))
	out := buf.String()
	assert.Contains(t, out, "大限")
	assert.Contains(t, out, "2-11")
	assert.Contains(t, out, "帝旺")
	assert.Contains(t, out, "事業 身宮")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "男 水二局 命主貪狼 身主火星", lines[1])
	assert.Contains(t, out, "博士")
	assert.Contains(t, out, "將星")
}

func TestOverlay_TruncatesWideCells(t *testing.T) {
	r := ziwei.Record{
		Scale:    "year",
		Anchored: true,
		Palaces: []ziwei.PalaceRecord{
			{Role: "命宮", Branch: "子", Stem: "甲", Major: []string{"紫微(廟)", "天府(廟)", "天相(廟)"}},
		},
	}
	var buf strings.Builder
	require.NoError(t, Overlay(&buf, r, Config{MaxCellWidth: 8}))
	assert.Contains(t, buf.String(), ellipsis)
	assert.NotContains(t, buf.String(), "天相")
}

func TestOverlay_UnanchoredIsMarked(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Overlay(&buf, ziwei.Record{Scale: "decade"}, Config{}))
	assert.Contains(t, buf.String(), "[natal roles]")
}

func TestDecades_MarksActive(t *testing.T) {
	e, err := ziwei.New(ziwei.Config{})
	require.NoError(t, err)
	periods, err := e.Decades(testchart.New(), 25)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Decades(&buf, ziwei.NewDecadeRecords(periods), Config{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+types.BranchCount)
	var active []string
	for _, l := range lines[1:] {
		if strings.HasPrefix(l, "*") {
			active = append(active, l)
		}
	}
	require.Len(t, active, 1)
	assert.Contains(t, active[0], "22-31")
	assert.Contains(t, active[0], "寅")
}

func TestNatalHeader(t *testing.T) {
	assert.Equal(t, "男 水二局 命主貪狼 身主火星",
		natalHeader(ziwei.Record{Gender: "男", Element: "水二局", DestinyMaster: "貪狼", BodyMaster: "火星"}))
	assert.Equal(t, "水二局", natalHeader(ziwei.Record{Element: "水二局"}))
	assert.Empty(t, natalHeader(ziwei.Record{Scale: "year"}))
}
