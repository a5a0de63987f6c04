// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Tag is one of the four transformation categories (四化).
type Tag int

const (
	TagLu   Tag = iota // 祿
	TagQuan            // 權
	TagKe              // 科
	TagJi              // 忌
)

// TagCount is the number of transformation tags.
const TagCount = 4

var tagLabels = [TagCount]string{"祿", "權", "科", "忌"}

// Tags returns the four tags in canonical order.
func Tags() []Tag {
	return []Tag{TagLu, TagQuan, TagKe, TagJi}
}

// Label returns the display label of the tag.
func (t Tag) Label() string {
	if t < 0 || int(t) >= TagCount {
		return "?"
	}
	return tagLabels[t]
}

func (t Tag) String() string { return t.Label() }

// RoamingStar is a floating marker whose branch depends on the stem of the
// time unit being overlaid.
type RoamingStar int

const (
	RoamingLu    RoamingStar = iota // 祿, follows 祿存
	RoamingYang                     // 羊, one step after 祿
	RoamingTuo                      // 陀, one step before 祿
	RoamingKui                      // 魁
	RoamingYue                      // 鉞
	RoamingChang                    // 昌
	RoamingQu                       // 曲
)

var roamingLabels = [...]string{"祿", "羊", "陀", "魁", "鉞", "昌", "曲"}

// RoamingStars returns every roaming star in canonical order.
func RoamingStars() []RoamingStar {
	out := make([]RoamingStar, len(roamingLabels))
	for i := range out {
		out[i] = RoamingStar(i)
	}
	return out
}

// Label returns the display label of the roaming star for a time scale,
// for example 流祿 for a year or 運祿 for a decade.
func (r RoamingStar) Label(scale Scale) string {
	if r < 0 || int(r) >= len(roamingLabels) {
		return "?"
	}
	return scale.prefix() + roamingLabels[r]
}

func (r RoamingStar) String() string { return r.Label(ScaleYear) }

// Scale is the time scale an overlay is computed for.
type Scale int

const (
	ScaleNatal Scale = iota
	ScaleDecade
	ScaleYear
	ScaleMonth
	ScaleDay
)

func (s Scale) String() string {
	switch s {
	case ScaleNatal:
		return "natal"
	case ScaleDecade:
		return "decade"
	case ScaleYear:
		return "year"
	case ScaleMonth:
		return "month"
	case ScaleDay:
		return "day"
	default:
		return "unknown"
	}
}

func (s Scale) prefix() string {
	switch s {
	case ScaleDecade:
		return "運"
	case ScaleMonth:
		return "月"
	case ScaleDay:
		return "日"
	default:
		return "流"
	}
}
