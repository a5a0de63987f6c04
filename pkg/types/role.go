// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// RoleCount is the number of semantic palace roles.
const RoleCount = 12

// Role is one of the twelve semantic palace roles. The ordinal order is the
// canonical order used by every time scale when roles are laid onto the
// chart.
type Role int

const (
	RoleSelf     Role = iota // 命宮
	RoleSiblings             // 兄弟
	RoleSpouse               // 夫妻
	RoleChildren             // 子女
	RoleWealth               // 財帛
	RoleHealth               // 疾厄
	RoleTravel               // 遷移
	RoleFriends              // 交友
	RoleCareer               // 事業
	RoleProperty             // 田宅
	RoleFortune              // 福德
	RoleParents              // 父母
)

var roleLabels = [RoleCount]string{"命宮", "兄弟", "夫妻", "子女", "財帛", "疾厄", "遷移", "交友", "事業", "田宅", "福德", "父母"}

// BodyLabel is the natal temple label for the body palace. It marks a
// position in addition to its role and is not itself a role.
const BodyLabel = "身宮"

// Roles returns the twelve roles in canonical order.
func Roles() []Role {
	out := make([]Role, RoleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// Label returns the display label of the role.
func (r Role) Label() string {
	if r < 0 || int(r) >= RoleCount {
		return "?"
	}
	return roleLabels[r]
}

func (r Role) String() string { return r.Label() }

// ParseRole returns the role with the given display label.
func ParseRole(label string) (Role, error) {
	for i, l := range roleLabels {
		if l == label {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", label)
}
