// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petar-djukic/go-ziwei/internal/testchart"
	"github.com/petar-djukic/go-ziwei/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFormatsMatchFixture(t *testing.T) {
	for _, name := range []string{"chart.toml", "chart.yaml", "chart.json"} {
		t.Run(name, func(t *testing.T) {
			got, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, testchart.New(), got)
		})
	}
}

func TestLoad_StarSeries(t *testing.T) {
	for _, name := range []string{"chart.toml", "chart.yaml", "chart.json"} {
		t.Run(name, func(t *testing.T) {
			got, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			hai := got.At(types.BranchHai)
			assert.Equal(t, "官府", hai.Scholar)
			assert.Equal(t, "病符", hai.YearGod)
			assert.Equal(t, "亡神", hai.Leader)
		})
	}
}

func TestLoad_YearPillarDerivedWhenOmitted(t *testing.T) {
	// chart.yaml carries no year_stem or year_branch.
	got, err := Load(filepath.Join("testdata", "chart.yaml"))
	require.NoError(t, err)
	assert.Equal(t, types.StemJia, got.YearStem)
	assert.Equal(t, types.BranchZi, got.YearBranch)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"chart.toml", FormatTOML, true},
		{"chart.YAML", FormatYAML, true},
		{"chart.yml", FormatYAML, true},
		{"dir/chart.json", FormatJSON, true},
		{"chart.txt", "", false},
		{"chart", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFor(tc.path)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("xml"))
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("birth_year = ["), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding toml chart")
}

func TestParse_WrongPositionCount(t *testing.T) {
	_, err := Parse([]byte(`{"birth_year": 1984, "positions": []}`), FormatJSON)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 0, de.Position)
	assert.Equal(t, "positions", de.Field)
}

func TestParse_CollectsEveryLabelError(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "chart.toml"))
	require.NoError(t, err)
	text := string(data)
	text = strings.Replace(text, `stem = "丙"`, `stem = "X"`, 1)
	text = strings.Replace(text, `major = ["紫微"]`, `major = ["北斗"]`, 1)
	text = strings.Replace(text, `temples = ["兄弟"]`, `temples = ["後宮"]`, 1)

	_, err = Parse([]byte(text), FormatTOML)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "position 1: stem")
	assert.Contains(t, msg, "position 1: major")
	assert.Contains(t, msg, "position 12: temples")
}

func TestParse_DuplicateBranch(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "chart.toml"))
	require.NoError(t, err)
	text := strings.Replace(string(data), `branch = "丑"`, `branch = "子"`, 1)

	_, err = Parse([]byte(text), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 2: branch: branch 子 listed twice")
}

func TestParse_ValidationRunsAfterDecoding(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "chart.toml"))
	require.NoError(t, err)
	// 紫微 placed a second time on 丑.
	text := strings.Replace(string(data), `minor = ["天魁", "陀羅"]`, `major = ["紫微"]
minor = ["天魁", "陀羅"]`, 1)
	text = strings.Replace(text, "major = []\nmajor", "major", 1)

	_, err = Parse([]byte(text), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "star 紫微 appears at both 子 and 丑")
}

func TestDecodeError_Error(t *testing.T) {
	assert.Equal(t, "gender: bad", (&DecodeError{Field: "gender", Message: "bad"}).Error())
	assert.Equal(t, "position 3: stem: bad", (&DecodeError{Position: 3, Field: "stem", Message: "bad"}).Error())
}
