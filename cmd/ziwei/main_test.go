// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

var chartPath = filepath.Join("..", "..", "internal", "chartfile", "testdata", "chart.toml")

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ziwei "+version+"\n", out)
}

func TestYear_JSON(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "--format", "json", "year", "--year", "2024")
	require.NoError(t, err)

	var r ziwei.Record
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "year", r.Scale)
	assert.Equal(t, "甲", r.Stem)
	assert.Equal(t, "辰", r.Branch)
	assert.Equal(t, 40, r.Age)
	assert.Len(t, r.Palaces, 12)
}

func TestNatal_YAML(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "--format", "yaml", "natal")
	require.NoError(t, err)

	var r ziwei.Record
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "natal", r.Scale)
	assert.Equal(t, "紫微", r.Headline)
	assert.Equal(t, []string{"紫微(平)"}, r.Palaces[0].Major)
}

func TestNatal_SchoolFromEnv(t *testing.T) {
	t.Setenv("ZIWEI_SCHOOL", "sanhe")
	out, err := execute(t, "--chart", chartPath, "--format", "json", "natal")
	require.NoError(t, err)

	var r ziwei.Record
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, []string{"紫微(旺)"}, r.Palaces[0].Major)
}

func TestMonth_AllMonths(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "--format", "json", "month", "--year", "2024")
	require.NoError(t, err)

	var recs []ziwei.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 12)
	for i, r := range recs {
		assert.Equal(t, i+1, r.Month)
	}
}

func TestMonth_Single(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "--format", "json", "month", "--year", "2024", "--month", "1")
	require.NoError(t, err)

	var r ziwei.Record
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "乙", r.Stem)
	assert.Equal(t, "寅", r.Branch)
}

func TestDay_Leap(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "--format", "json",
		"day", "--year", "2024", "--month", "1", "--day", "2", "--leap")
	require.NoError(t, err)

	var r ziwei.Record
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Leap)
	assert.Equal(t, "丁", r.Stem)
	assert.Equal(t, "卯", r.Branch)
}

func TestDecades_Text(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "decades", "--age", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "22-31")
}

func TestDecade_Text(t *testing.T) {
	out, err := execute(t, "--chart", chartPath, "decade", "--age", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "decade 丙寅 (22-31)")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no chart", []string{"natal"}},
		{"bad format", []string{"--chart", chartPath, "--format", "xml", "natal"}},
		{"bad school", []string{"--chart", chartPath, "--school", "feixing", "natal"}},
		{"missing year", []string{"--chart", chartPath, "year"}},
		{"month out of range", []string{"--chart", chartPath, "month", "--year", "2024", "--month", "13"}},
		{"negative age", []string{"--chart", chartPath, "decade", "--age", "-3"}},
		{"unreadable chart", []string{"--chart", "missing.toml", "natal"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestWatchChart_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte("birth_year = 1984\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchChart(ctx, path, zap.NewNop(), func() { calls.Add(1) })
	}()

	// The watcher starts asynchronously; keep writing until it reports.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("birth_year = 1985\n"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchChart_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	var calls atomic.Int32
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for ctx.Err() == nil {
			_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644)
			time.Sleep(20 * time.Millisecond)
		}
	}()

	require.NoError(t, watchChart(ctx, path, zap.NewNop(), func() { calls.Add(1) }))
	<-writerDone
	assert.Zero(t, calls.Load())
}
