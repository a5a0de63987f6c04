// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ziwei

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Display strings used in records.
const (
	BorrowedSuffix = "(借)"
	EmptyHeadline  = "空宮"
)

// Record is the flat, label-only presentation of an overlay. It carries no
// enums and serializes directly to JSON or YAML.
type Record struct {
	Scale           string         `json:"scale" yaml:"scale"`
	Stem            string         `json:"stem,omitempty" yaml:"stem,omitempty"`
	Branch          string         `json:"branch" yaml:"branch"`
	Anchored        bool           `json:"anchored" yaml:"anchored"`
	Year            int            `json:"year" yaml:"year"`
	Month           int            `json:"month,omitempty" yaml:"month,omitempty"`
	Day             int            `json:"day,omitempty" yaml:"day,omitempty"`
	Leap            bool           `json:"leap,omitempty" yaml:"leap,omitempty"`
	Age             int            `json:"age" yaml:"age"`
	AgeRange        string         `json:"age_range,omitempty" yaml:"age_range,omitempty"`
	Headline        string         `json:"headline" yaml:"headline"`
	Gender          string         `json:"gender,omitempty" yaml:"gender,omitempty"`
	Element         string         `json:"element,omitempty" yaml:"element,omitempty"`
	DestinyMaster   string         `json:"destiny_master,omitempty" yaml:"destiny_master,omitempty"`
	BodyMaster      string         `json:"body_master,omitempty" yaml:"body_master,omitempty"`
	Transformations []string       `json:"transformations,omitempty" yaml:"transformations,omitempty"`
	Palaces         []PalaceRecord `json:"palaces" yaml:"palaces"`
}

// PalaceRecord is one role of a Record.
type PalaceRecord struct {
	Role       string   `json:"role" yaml:"role"`
	Branch     string   `json:"branch" yaml:"branch"`
	Stem       string   `json:"stem" yaml:"stem"`
	NatalRoles []string `json:"natal_roles" yaml:"natal_roles"`
	Body       bool     `json:"body,omitempty" yaml:"body,omitempty"`
	Major      []string `json:"major,omitempty" yaml:"major,omitempty"`
	Minor      []string `json:"minor,omitempty" yaml:"minor,omitempty"`
	Mini       []string `json:"mini,omitempty" yaml:"mini,omitempty"`
	Scholar    string   `json:"scholar,omitempty" yaml:"scholar,omitempty"`
	YearGod    string   `json:"year_god,omitempty" yaml:"year_god,omitempty"`
	Leader     string   `json:"leader,omitempty" yaml:"leader,omitempty"`
	Roaming    []string `json:"roaming,omitempty" yaml:"roaming,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	AgeRange   string   `json:"age_range,omitempty" yaml:"age_range,omitempty"`
	LifeStage  string   `json:"life_stage,omitempty" yaml:"life_stage,omitempty"`
	Triangle   []string `json:"triangle,omitempty" yaml:"triangle,omitempty"`
	Flying     []string `json:"flying,omitempty" yaml:"flying,omitempty"`
}

// DecadeRecord is the flat presentation of a decade period.
type DecadeRecord struct {
	Branch   string   `json:"branch" yaml:"branch"`
	Stem     string   `json:"stem" yaml:"stem"`
	Roles    []string `json:"roles" yaml:"roles"`
	AgeRange string   `json:"age_range" yaml:"age_range"`
	Active   bool     `json:"active,omitempty" yaml:"active,omitempty"`
}

// NewRecord flattens an overlay into display labels.
func NewRecord(ov *types.Overlay) Record {
	r := Record{
		Scale:    ov.Scale.String(),
		Branch:   ov.Branch.Label(),
		Anchored: ov.Anchored,
		Year:     ov.Year,
		Month:    ov.Month,
		Day:      ov.Day,
		Leap:     ov.Leap,
		Age:      ov.Age,
		Headline: HeadlineText(ov.Self),
		Palaces:  make([]PalaceRecord, 0, len(ov.Entries)),

		Gender:        ov.Gender,
		Element:       ov.Element,
		DestinyMaster: ov.DestinyMaster,
		BodyMaster:    ov.BodyMaster,
	}
	if ov.HasStem {
		r.Stem = ov.Stem.Label()
	}
	if ov.Scale == types.ScaleDecade && ov.Anchored {
		r.AgeRange = ageRange(ov.AgeStart, ov.AgeEnd)
	}
	for _, p := range ov.Transformations {
		r.Transformations = append(r.Transformations, placementText(p))
	}
	for i := range ov.Entries {
		r.Palaces = append(r.Palaces, newPalaceRecord(&ov.Entries[i], ov.Scale))
	}
	return r
}

func newPalaceRecord(e *types.Entry, scale types.Scale) PalaceRecord {
	p := PalaceRecord{
		Role:       e.Role.Label(),
		Branch:     e.Branch.Label(),
		Stem:       e.Stem.Label(),
		NatalRoles: roleLabels(e.NatalRoles),
		Body:       e.Body,
		Major:      starTexts(e.Major),
		Minor:      starTexts(e.Minor),
		Mini:       e.Mini,
		Scholar:    e.Scholar,
		YearGod:    e.YearGod,
		Leader:     e.Leader,
		LifeStage:  e.LifeStage,
		Triangle:   roleLabels(e.Triangle),
	}
	for _, rs := range e.Roaming {
		p.Roaming = append(p.Roaming, rs.Label(scale))
	}
	for _, t := range e.Tags {
		p.Tags = append(p.Tags, t.Label())
	}
	if scale == types.ScaleNatal {
		p.AgeRange = ageRange(e.AgeStart, e.AgeEnd)
	}
	for _, f := range e.Flying {
		p.Flying = append(p.Flying, placementText(f))
	}
	return p
}

// NewDecadeRecords flattens decade periods into display labels.
func NewDecadeRecords(periods []types.DecadePeriod) []DecadeRecord {
	out := make([]DecadeRecord, 0, len(periods))
	for _, d := range periods {
		out = append(out, DecadeRecord{
			Branch:   d.Branch.Label(),
			Stem:     d.Stem.Label(),
			Roles:    roleLabels(d.Roles),
			AgeRange: ageRange(d.AgeStart, d.AgeEnd),
			Active:   d.Active,
		})
	}
	return out
}

// HeadlineText renders the self headline: the stars joined by spaces, with
// BorrowedSuffix when they come from the opposite position, or
// EmptyHeadline when there are none.
func HeadlineText(h types.Headline) string {
	switch h.State {
	case types.HeadlineOwn:
		return strings.Join(types.Labels(h.Stars), " ")
	case types.HeadlineBorrowed:
		return strings.Join(types.Labels(h.Stars), " ") + BorrowedSuffix
	case types.HeadlineEmpty:
		return EmptyHeadline
	default:
		return ""
	}
}

// StarText renders a star with its brightness, for example 紫微(廟). The
// brightness is omitted when unknown.
func StarText(sb types.StarBrightness) string {
	if !sb.Known {
		return sb.Star.Label()
	}
	return fmt.Sprintf("%s(%s)", sb.Star.Label(), sb.Brightness.Label())
}

func starTexts(stars []types.StarBrightness) []string {
	if len(stars) == 0 {
		return nil
	}
	out := make([]string, len(stars))
	for i, s := range stars {
		out[i] = StarText(s)
	}
	return out
}

// placementText renders a transformation as 化祿廉貞@辰, or with @? when the
// target star is not on the chart.
func placementText(p types.Placement) string {
	where := "?"
	if p.Found {
		where = p.Branch.Label()
	}
	return fmt.Sprintf("化%s%s@%s", p.Tag.Label(), p.Star.Label(), where)
}

func roleLabels(roles []types.Role) []string {
	if len(roles) == 0 {
		return nil
	}
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.Label()
	}
	return out
}

func ageRange(start, end int) string {
	return fmt.Sprintf("%d-%d", start, end)
}
