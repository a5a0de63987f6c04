// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-ziwei/internal/render"
	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// write prints v in the requested format.
func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, v)
	}
}

func writeText(w io.Writer, v any) error {
	switch x := v.(type) {
	case ziwei.Record:
		return render.Overlay(w, x, render.Config{})
	case []ziwei.Record:
		for i, r := range x {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := render.Overlay(w, r, render.Config{}); err != nil {
				return err
			}
		}
		return nil
	case []ziwei.DecadeRecord:
		return render.Decades(w, x, render.Config{})
	default:
		return fmt.Errorf("no text layout for %T", v)
	}
}
