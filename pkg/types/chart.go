// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"
)

// Position is one of the twelve fixed slots of a natal chart. Positions are
// produced by the external chart generator and are read-only here.
type Position struct {
	Branch    Branch   // Branch the slot sits on
	Stem      Stem     // Palace stem assigned at chart construction
	Major     []Star   // Primary stars resident here
	Minor     []Star   // Secondary stars resident here
	Mini      []string // Minor-grade display labels; never used for lookups
	Scholar   string   // 博士 series label
	YearGod   string   // 歲建 series label
	Leader    string   // 將前 series label
	Roles     []Role   // Natal roles (temples) assigned to this slot
	Body      bool     // True if this slot also carries 身宮
	AgeStart  int      // First age (inclusive) of the decade period
	AgeEnd    int      // Last age (inclusive) of the decade period
	LifeStage string   // Life-stage label (長生, 沐浴, ...)
}

// HasStar reports whether s is among the position's major or minor stars.
func (p *Position) HasStar(s Star) bool {
	for _, x := range p.Major {
		if x == s {
			return true
		}
	}
	for _, x := range p.Minor {
		if x == s {
			return true
		}
	}
	return false
}

// CoversAge reports whether age falls within the position's decade range.
func (p *Position) CoversAge(age int) bool {
	return age >= p.AgeStart && age <= p.AgeEnd
}

// Chart is the natal chart contract consumed by the overlay engine.
// Positions are indexed by branch, so Positions[b].Branch == b.
type Chart struct {
	BirthYear     int    // Lunar birth year
	YearStem      Stem   // Stem of the birth year
	YearBranch    Branch // Branch of the birth year
	Gender        string
	Element       string // Element profile label (五行局)
	DestinyMaster string // 命主
	BodyMaster    string // 身主
	Positions     [BranchCount]Position
}

// At returns the position sitting on branch b.
func (c *Chart) At(b Branch) *Position {
	return &c.Positions[BranchAt(int(b))]
}

// SelfBranch returns the branch holding the natal self role.
func (c *Chart) SelfBranch() (Branch, bool) {
	return c.RoleBranch(RoleSelf)
}

// RoleBranch returns the branch holding natal role r.
func (c *Chart) RoleBranch(r Role) (Branch, bool) {
	for i := range c.Positions {
		for _, pr := range c.Positions[i].Roles {
			if pr == r {
				return Branch(i), true
			}
		}
	}
	return 0, false
}

// Locate returns the branch of the position holding star s.
func (c *Chart) Locate(s Star) (Branch, bool) {
	for i := range c.Positions {
		if c.Positions[i].HasStar(s) {
			return Branch(i), true
		}
	}
	return 0, false
}

// Validate checks the structural guarantees the engine relies on: every
// slot sits on its own branch, every role is held by exactly one slot, no
// star appears twice, and major and minor lists hold the right grade.
func (c *Chart) Validate() error {
	var errs []error
	roleSeen := make(map[Role]Branch, RoleCount)
	starSeen := make(map[Star]Branch)

	for i := range c.Positions {
		p := &c.Positions[i]
		b := Branch(i)
		if p.Branch != b {
			errs = append(errs, fmt.Errorf("position %d sits on branch %s", i, p.Branch))
		}
		if p.AgeEnd < p.AgeStart {
			errs = append(errs, fmt.Errorf("%s: age range %d-%d is inverted", b, p.AgeStart, p.AgeEnd))
		}
		for _, r := range p.Roles {
			if prev, ok := roleSeen[r]; ok {
				errs = append(errs, fmt.Errorf("role %s held by both %s and %s", r, prev, b))
				continue
			}
			roleSeen[r] = b
		}
		for _, s := range p.Major {
			if !s.IsMajor() {
				errs = append(errs, fmt.Errorf("%s: %s is not a major star", b, s))
			}
		}
		for _, s := range p.Minor {
			if s.IsMajor() {
				errs = append(errs, fmt.Errorf("%s: %s is a major star listed as minor", b, s))
			}
		}
		for _, s := range append(append([]Star(nil), p.Major...), p.Minor...) {
			if prev, ok := starSeen[s]; ok {
				errs = append(errs, fmt.Errorf("star %s appears at both %s and %s", s, prev, b))
				continue
			}
			starSeen[s] = b
		}
	}
	for _, r := range Roles() {
		if _, ok := roleSeen[r]; !ok {
			errs = append(errs, fmt.Errorf("role %s is not assigned", r))
		}
	}
	return errors.Join(errs...)
}
