// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// StarBrightness pairs a star with its brightness at the position it sits
// on. Known is false when the active table has no value for the cell.
type StarBrightness struct {
	Star       Star
	Brightness Brightness
	Known      bool
}

// Placement records where the star targeted by a transformation tag sits.
// Found is false when the star is not on the chart; Branch is then
// meaningless.
type Placement struct {
	Tag    Tag
	Star   Star
	Branch Branch
	Found  bool
}

// HeadlineState classifies how the self headline stars were obtained.
type HeadlineState int

const (
	HeadlineUnchecked HeadlineState = iota // Zero value; borrowing was not evaluated
	HeadlineOwn                            // Self position has major stars
	HeadlineBorrowed                       // Borrowed from the opposite position
	HeadlineEmpty                          // Neither position has major stars
)

func (s HeadlineState) String() string {
	switch s {
	case HeadlineUnchecked:
		return "unchecked"
	case HeadlineOwn:
		return "own"
	case HeadlineBorrowed:
		return "borrowed"
	case HeadlineEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Headline is the effective major-star set of the self role.
type Headline struct {
	State HeadlineState
	Stars []Star // Empty only when State is HeadlineEmpty
	Self  Branch // Branch holding the self role
	From  Branch // Branch the stars were read from
}

// Entry is one role of an overlay together with the data of the position
// it landed on.
type Entry struct {
	Role       Role
	Branch     Branch
	Stem       Stem
	NatalRoles []Role
	Body       bool
	Major      []StarBrightness
	Minor      []StarBrightness
	Mini       []string
	Scholar    string
	YearGod    string
	Leader     string
	Roaming    []RoamingStar // Roaming stars present for this overlay only
	Tags       []Tag         // Transformation tags landing on this position

	// Natal scale only.
	AgeStart  int
	AgeEnd    int
	LifeStage string
	Triangle  []Role
	Flying    []Placement
}

// Overlay is the report for one time unit on one time scale. Entries are
// ordered by role.
type Overlay struct {
	Scale           Scale
	Stem            Stem
	HasStem         bool // False when the decade anchor could not be resolved
	Branch          Branch
	Anchored        bool // False when roles fell back to the natal assignment
	Entries         []Entry
	Self            Headline
	Transformations []Placement

	Age      int // Year: nominal age; Decade: queried age
	AgeStart int // Decade range
	AgeEnd   int
	Year     int
	Month    int
	Day      int
	Leap     bool

	// Natal scale only.
	Gender        string
	Element       string
	DestinyMaster string
	BodyMaster    string
}

// Entry returns the entry for role r.
func (o *Overlay) Entry(r Role) *Entry {
	for i := range o.Entries {
		if o.Entries[i].Role == r {
			return &o.Entries[i]
		}
	}
	return nil
}

// DecadePeriod summarises one ten-year period of the natal chart.
type DecadePeriod struct {
	Branch   Branch
	Stem     Stem
	Roles    []Role
	AgeStart int
	AgeEnd   int
	Active   bool
}
