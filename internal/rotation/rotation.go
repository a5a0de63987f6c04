// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rotation lays the twelve roles onto the twelve fixed positions
// of a chart for a time scale, starting from the anchor branch of the self
// role and walking backward around the ring.
//
//	docs/ARCHITECTURE § Palace Rotation.
package rotation

import (
	"fmt"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// Assignment binds one role to the branch of the position it lands on.
type Assignment struct {
	Role   types.Role
	Branch types.Branch
}

// Rotate assigns role i (canonical order) to the position at anchor - i.
// The result is ordered by role and is a bijection for every anchor.
func Rotate(anchor types.Branch) []Assignment {
	out := make([]Assignment, types.RoleCount)
	for i := 0; i < types.RoleCount; i++ {
		out[i] = Assignment{
			Role:   types.Role(i),
			Branch: anchor.Add(-i),
		}
	}
	return out
}

// Natal returns the chart's own role assignment, ordered by role. It is the
// fallback when a time scale has no anchor. The chart must hold every role
// exactly once (see types.Chart.Validate).
func Natal(c *types.Chart) ([]Assignment, error) {
	out := make([]Assignment, types.RoleCount)
	for _, r := range types.Roles() {
		b, ok := c.RoleBranch(r)
		if !ok {
			return nil, fmt.Errorf("natal chart has no position for role %s", r)
		}
		out[r] = Assignment{Role: r, Branch: b}
	}
	return out, nil
}

// RoleAt returns the role assigned to branch b.
func RoleAt(assignments []Assignment, b types.Branch) (types.Role, bool) {
	for _, a := range assignments {
		if a.Branch == b {
			return a.Role, true
		}
	}
	return 0, false
}
