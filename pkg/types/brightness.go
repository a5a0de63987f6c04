// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Brightness is the strength level of a star at a branch.
type Brightness int

const (
	Miao Brightness = iota // 廟
	Wang                   // 旺
	De                     // 得
	Li                     // 利
	Ping                   // 平
	Bu                     // 不
	Xian                   // 陷
)

var brightnessLabels = [...]string{"廟", "旺", "得", "利", "平", "不", "陷"}

// Label returns the display label of the brightness level.
func (b Brightness) Label() string {
	if b < 0 || int(b) >= len(brightnessLabels) {
		return "?"
	}
	return brightnessLabels[b]
}

func (b Brightness) String() string { return b.Label() }

// ParseBrightness returns the brightness level with the given display label.
func ParseBrightness(label string) (Brightness, error) {
	for i, l := range brightnessLabels {
		if l == label {
			return Brightness(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brightness %q", label)
}

// School selects which brightness table is consulted.
type School int

const (
	Zhongzhou School = iota // 中州派, keyed by branch label
	Sanhe                   // 三合派, keyed by branch index
)

func (s School) String() string {
	switch s {
	case Zhongzhou:
		return "zhongzhou"
	case Sanhe:
		return "sanhe"
	default:
		return "unknown"
	}
}

// ParseSchool returns the school with the given name.
func ParseSchool(name string) (School, error) {
	switch name {
	case "zhongzhou":
		return Zhongzhou, nil
	case "sanhe":
		return Sanhe, nil
	default:
		return 0, fmt.Errorf("unknown brightness school %q", name)
	}
}
