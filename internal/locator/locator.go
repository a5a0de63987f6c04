// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package locator finds, for a stem, where the roaming stars land and which
// chart positions hold the stars targeted by the four transformation tags.
// Roaming stars are reported per overlay and never written back into the
// chart.
//
//	docs/ARCHITECTURE § Roaming Stars and Transformations.
package locator

import (
	"github.com/petar-djukic/go-ziwei/internal/tables"
	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Roaming returns the roaming stars present at each branch under stem.
// Several roaming stars may share a branch; they keep canonical order.
func Roaming(stem types.Stem) map[types.Branch][]types.RoamingStar {
	out := make(map[types.Branch][]types.RoamingStar)
	for _, r := range types.RoamingStars() {
		b := tables.RoamingBranch(r, stem)
		out[b] = append(out[b], r)
	}
	return out
}

// Transformations returns one placement per tag, in tag order, locating the
// star each tag targets under stem. A star missing from the chart yields a
// placement with Found false; the remaining tags are still resolved.
func Transformations(stem types.Stem, c *types.Chart) []types.Placement {
	targets := tables.Transformations(stem)
	out := make([]types.Placement, 0, types.TagCount)
	for _, tag := range types.Tags() {
		star := targets[tag]
		b, found := c.Locate(star)
		out = append(out, types.Placement{
			Tag:    tag,
			Star:   star,
			Branch: b,
			Found:  found,
		})
	}
	return out
}

// TagsAt returns the tags of placements that landed on branch b, in tag
// order.
func TagsAt(placements []types.Placement, b types.Branch) []types.Tag {
	var out []types.Tag
	for _, p := range placements {
		if p.Found && p.Branch == b {
			out = append(out, p.Tag)
		}
	}
	return out
}

// Missing returns the placements whose star is not on the chart.
func Missing(placements []types.Placement) []types.Placement {
	var out []types.Placement
	for _, p := range placements {
		if !p.Found {
			out = append(out, p)
		}
	}
	return out
}

// Flying returns the transformations flown from position b using that
// position's own palace stem (飛星四化).
func Flying(c *types.Chart, b types.Branch) []types.Placement {
	return Transformations(c.At(b).Stem, c)
}
