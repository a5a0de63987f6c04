// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package chartfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Format is a chart document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// unmarshalers dispatches each format to its decoder.
var unmarshalers = map[Format]func([]byte, any) error{
	FormatTOML: toml.Unmarshal,
	FormatYAML: yaml.Unmarshal,
	FormatJSON: json.Unmarshal,
}

// FormatFor picks the format of a chart file from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported chart file extension %q", filepath.Ext(path))
	}
}

// Parse decodes a chart document in the given format.
func Parse(data []byte, format Format) (*types.Chart, error) {
	unmarshal, ok := unmarshalers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s chart: %w", format, err)
	}
	return build(&doc)
}

// Load reads and decodes the chart file at path.
func Load(path string) (*types.Chart, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	return Parse(data, format)
}
