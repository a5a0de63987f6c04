// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tables

import (
	"fmt"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// triangles lists, for each role, the role itself followed by its opposite
// and its two tri-harmony roles (eight, then four places on).
var triangles = map[types.Role][4]types.Role{
	types.RoleSelf:     {types.RoleSelf, types.RoleTravel, types.RoleCareer, types.RoleWealth},
	types.RoleSiblings: {types.RoleSiblings, types.RoleFriends, types.RoleProperty, types.RoleHealth},
	types.RoleSpouse:   {types.RoleSpouse, types.RoleCareer, types.RoleFortune, types.RoleTravel},
	types.RoleChildren: {types.RoleChildren, types.RoleProperty, types.RoleParents, types.RoleFriends},
	types.RoleWealth:   {types.RoleWealth, types.RoleFortune, types.RoleSelf, types.RoleCareer},
	types.RoleHealth:   {types.RoleHealth, types.RoleParents, types.RoleSiblings, types.RoleProperty},
	types.RoleTravel:   {types.RoleTravel, types.RoleSelf, types.RoleSpouse, types.RoleFortune},
	types.RoleFriends:  {types.RoleFriends, types.RoleSiblings, types.RoleChildren, types.RoleParents},
	types.RoleCareer:   {types.RoleCareer, types.RoleSpouse, types.RoleWealth, types.RoleSelf},
	types.RoleProperty: {types.RoleProperty, types.RoleChildren, types.RoleHealth, types.RoleSiblings},
	types.RoleFortune:  {types.RoleFortune, types.RoleWealth, types.RoleTravel, types.RoleSpouse},
	types.RoleParents:  {types.RoleParents, types.RoleHealth, types.RoleFriends, types.RoleChildren},
}

// Triangle returns role r followed by its three related roles. It panics
// if r has no entry.
func Triangle(r types.Role) [4]types.Role {
	row, ok := triangles[r]
	if !ok {
		panic(fmt.Sprintf("tables: no triangle entry for role %d", r))
	}
	return row
}

func init() {
	for _, r := range types.Roles() {
		row, ok := triangles[r]
		if !ok {
			panic(fmt.Sprintf("tables: role %s missing from triangle table", r))
		}
		if row[0] != r {
			panic(fmt.Sprintf("tables: triangle of %s does not start with itself", r))
		}
	}
}
