// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package overlay assembles the per-time-scale report: it rotates the roles
// onto the chart, places roaming stars and transformation tags, resolves
// the self headline, and packages the chart's static data into one entry
// per role.
//
//	docs/ARCHITECTURE § Overlay Assembly.
package overlay

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/petar-djukic/go-ziwei/internal/borrow"
	"github.com/petar-djukic/go-ziwei/internal/cycle"
	"github.com/petar-djukic/go-ziwei/internal/locator"
	"github.com/petar-djukic/go-ziwei/internal/rotation"
	"github.com/petar-djukic/go-ziwei/internal/tables"
	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Deps holds injected dependencies for the assembler.
type Deps struct {
	Brightness tables.BrightnessTable // Table for the configured school (required)
	Logger     *zap.Logger            // nil means no logging
}

// Assembler builds overlays. It holds no per-request state, so one
// Assembler may serve concurrent callers.
type Assembler struct {
	deps Deps
	log  *zap.Logger
}

// NewAssembler creates an Assembler with the given dependencies.
func NewAssembler(deps Deps) *Assembler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{deps: deps, log: log}
}

// frame describes the time unit being overlaid.
type frame struct {
	scale    types.Scale
	stem     types.Stem
	hasStem  bool
	anchor   types.Branch
	anchored bool
}

// Natal returns the natal overlay: natal roles, birth-year transformations,
// brightness, age ranges, life stages, triangles and flying transformations.
func (a *Assembler) Natal(c *types.Chart) (*types.Overlay, error) {
	self, ok := c.SelfBranch()
	if !ok {
		return nil, fmt.Errorf("natal chart has no %s", types.RoleSelf)
	}
	ov, err := a.assemble(c, frame{
		scale:    types.ScaleNatal,
		stem:     c.YearStem,
		hasStem:  true,
		anchor:   self,
		anchored: true,
	})
	if err != nil {
		return nil, err
	}
	ov.Branch = c.YearBranch
	ov.Year = c.BirthYear
	ov.Gender = c.Gender
	ov.Element = c.Element
	ov.DestinyMaster = c.DestinyMaster
	ov.BodyMaster = c.BodyMaster
	return ov, nil
}

// Decade returns the overlay of the ten-year period covering age. When no
// position covers age the roles stay on their natal positions, the overlay
// is marked unanchored and carries no stem.
func (a *Assembler) Decade(c *types.Chart, age int) (*types.Overlay, error) {
	f := frame{scale: types.ScaleDecade}
	var start, end int
	for _, b := range types.Branches() {
		p := c.At(b)
		if p.CoversAge(age) {
			f.anchor, f.anchored = b, true
			f.stem, f.hasStem = p.Stem, true
			start, end = p.AgeStart, p.AgeEnd
			break
		}
	}
	if !f.anchored {
		a.log.Warn("no decade period covers age; using natal roles",
			zap.Int("age", age))
	}

	ov, err := a.assemble(c, f)
	if err != nil {
		return nil, err
	}
	ov.Age = age
	ov.AgeStart, ov.AgeEnd = start, end
	return ov, nil
}

// Decades lists every ten-year period of the chart sorted by starting age,
// flagging the one covering age.
func (a *Assembler) Decades(c *types.Chart, age int) []types.DecadePeriod {
	out := make([]types.DecadePeriod, 0, types.BranchCount)
	for _, b := range types.Branches() {
		p := c.At(b)
		out = append(out, types.DecadePeriod{
			Branch:   b,
			Stem:     p.Stem,
			Roles:    append([]types.Role(nil), p.Roles...),
			AgeStart: p.AgeStart,
			AgeEnd:   p.AgeEnd,
			Active:   p.CoversAge(age),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AgeStart < out[j].AgeStart })
	return out
}

// Year returns the overlay of a lunar year.
func (a *Assembler) Year(c *types.Chart, year int) (*types.Overlay, error) {
	ov, err := a.assemble(c, frame{
		scale:    types.ScaleYear,
		stem:     cycle.StemOfYear(year),
		hasStem:  true,
		anchor:   cycle.BranchOfYear(year),
		anchored: true,
	})
	if err != nil {
		return nil, err
	}
	ov.Year = year
	ov.Age = year - c.BirthYear
	return ov, nil
}

// Month returns the overlay of a lunar month (1-12) of a lunar year.
func (a *Assembler) Month(c *types.Chart, year, month int) (*types.Overlay, error) {
	ov, err := a.assemble(c, frame{
		scale:    types.ScaleMonth,
		stem:     cycle.MonthStem(cycle.StemOfYear(year), month),
		hasStem:  true,
		anchor:   cycle.MonthBranch(month),
		anchored: true,
	})
	if err != nil {
		return nil, err
	}
	ov.Year, ov.Month = year, month
	return ov, nil
}

// Months returns the overlays of all twelve lunar months of a year.
func (a *Assembler) Months(c *types.Chart, year int) ([]*types.Overlay, error) {
	out := make([]*types.Overlay, 0, 12)
	for m := 1; m <= 12; m++ {
		ov, err := a.Month(c, year, m)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", m, err)
		}
		out = append(out, ov)
	}
	return out, nil
}

// Day returns the overlay of a lunar day.
func (a *Assembler) Day(c *types.Chart, year, month, day int) (*types.Overlay, error) {
	ov, err := a.assemble(c, frame{
		scale:    types.ScaleDay,
		stem:     cycle.DayStem(cycle.StemOfYear(year), month, day),
		hasStem:  true,
		anchor:   cycle.DayBranch(month, day),
		anchored: true,
	})
	if err != nil {
		return nil, err
	}
	ov.Year, ov.Month, ov.Day = year, month, day
	return ov, nil
}

// assemble composes rotation, placement and borrowing for one frame. The
// natal scale and unanchored frames read the roles stored on the chart.
func (a *Assembler) assemble(c *types.Chart, f frame) (*types.Overlay, error) {
	var assignments []rotation.Assignment
	if f.anchored && f.scale != types.ScaleNatal {
		assignments = rotation.Rotate(f.anchor)
	} else {
		natal, err := rotation.Natal(c)
		if err != nil {
			return nil, err
		}
		assignments = natal
	}

	var placements []types.Placement
	var roaming map[types.Branch][]types.RoamingStar
	if f.hasStem {
		placements = locator.Transformations(f.stem, c)
		for _, p := range locator.Missing(placements) {
			a.log.Debug("transformation target not on chart",
				zap.Stringer("scale", f.scale),
				zap.String("tag", p.Tag.Label()),
				zap.String("star", p.Star.Label()))
		}
		if f.scale != types.ScaleNatal {
			roaming = locator.Roaming(f.stem)
		}
	}

	ov := &types.Overlay{
		Scale:           f.scale,
		Stem:            f.stem,
		HasStem:         f.hasStem,
		Branch:          f.anchor,
		Anchored:        f.anchored,
		Entries:         make([]types.Entry, 0, types.RoleCount),
		Transformations: placements,
	}
	for _, asg := range assignments {
		ov.Entries = append(ov.Entries, a.entry(c, asg, f.scale, roaming, placements))
	}
	ov.Self = borrow.Resolve(c, assignments[types.RoleSelf].Branch)
	if !f.anchored {
		ov.Branch = ov.Self.Self
	}

	a.log.Debug("assembled overlay",
		zap.Stringer("scale", f.scale),
		zap.String("stem", stemLabel(f)),
		zap.String("branch", ov.Branch.Label()),
		zap.Bool("anchored", f.anchored),
		zap.Stringer("self", ov.Self.State))
	return ov, nil
}

// entry packages the position an assignment landed on.
func (a *Assembler) entry(c *types.Chart, asg rotation.Assignment, scale types.Scale,
	roaming map[types.Branch][]types.RoamingStar, placements []types.Placement) types.Entry {
	p := c.At(asg.Branch)
	e := types.Entry{
		Role:       asg.Role,
		Branch:     asg.Branch,
		Stem:       p.Stem,
		NatalRoles: append([]types.Role(nil), p.Roles...),
		Body:       p.Body,
		Major:      a.brighten(p.Major, asg.Branch),
		Minor:      a.brighten(p.Minor, asg.Branch),
		Mini:       append([]string(nil), p.Mini...),
		Scholar:    p.Scholar,
		YearGod:    p.YearGod,
		Leader:     p.Leader,
		Roaming:    append([]types.RoamingStar(nil), roaming[asg.Branch]...),
		Tags:       locator.TagsAt(placements, asg.Branch),
	}
	if scale == types.ScaleNatal {
		e.AgeStart, e.AgeEnd = p.AgeStart, p.AgeEnd
		e.LifeStage = p.LifeStage
		e.Triangle = triangleOf(p)
		e.Flying = locator.Flying(c, asg.Branch)
	}
	return e
}

// brighten pairs each star with its brightness at b.
func (a *Assembler) brighten(stars []types.Star, b types.Branch) []types.StarBrightness {
	if len(stars) == 0 {
		return nil
	}
	out := make([]types.StarBrightness, len(stars))
	for i, s := range stars {
		lv, ok := a.deps.Brightness.Lookup(s, b)
		out[i] = types.StarBrightness{Star: s, Brightness: lv, Known: ok}
	}
	return out
}

// triangleOf returns the triangle of the position's first natal role.
func triangleOf(p *types.Position) []types.Role {
	if len(p.Roles) == 0 {
		return nil
	}
	tri := tables.Triangle(p.Roles[0])
	return tri[:]
}

func stemLabel(f frame) string {
	if !f.hasStem {
		return ""
	}
	return f.stem.Label()
}
