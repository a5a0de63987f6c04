// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the value types shared across go-ziwei packages:
// the two cyclic rings, roles, stars, transformation tags, the natal chart
// contract and the overlay produced for each time scale.
//
//	docs/ARCHITECTURE § Data Model.
package types

import "fmt"

// StemCount and BranchCount are the sizes of the two cyclic rings.
const (
	StemCount   = 10
	BranchCount = 12
)

// Stem is one of the ten heavenly stems, identified by its ring index.
type Stem int

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

var stemLabels = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// StemAt returns the stem at ring index i, wrapping i modulo 10 so that
// negative indices land on a valid stem.
func StemAt(i int) Stem {
	return Stem(mod(i, StemCount))
}

// Index returns the ring index of the stem.
func (s Stem) Index() int { return int(s) }

// Label returns the display label of the stem.
func (s Stem) Label() string {
	if s < 0 || int(s) >= StemCount {
		return "?"
	}
	return stemLabels[s]
}

func (s Stem) String() string { return s.Label() }

// Add returns the stem n steps further along the ring.
func (s Stem) Add(n int) Stem { return StemAt(int(s) + n) }

// ParseStem returns the stem with the given display label.
func ParseStem(label string) (Stem, error) {
	for i, l := range stemLabels {
		if l == label {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stem %q", label)
}

// Branch is one of the twelve earthly branches, identified by its ring
// index. Branches also index the twelve fixed positions of a chart.
type Branch int

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

var branchLabels = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// BranchAt returns the branch at ring index i, wrapping i modulo 12.
func BranchAt(i int) Branch {
	return Branch(mod(i, BranchCount))
}

// Branches returns all twelve branches in ring order.
func Branches() []Branch {
	out := make([]Branch, BranchCount)
	for i := range out {
		out[i] = Branch(i)
	}
	return out
}

// Index returns the ring index of the branch.
func (b Branch) Index() int { return int(b) }

// Label returns the display label of the branch.
func (b Branch) Label() string {
	if b < 0 || int(b) >= BranchCount {
		return "?"
	}
	return branchLabels[b]
}

func (b Branch) String() string { return b.Label() }

// Add returns the branch n steps further along the ring. Negative n walks
// backward.
func (b Branch) Add(n int) Branch { return BranchAt(int(b) + n) }

// Opposite returns the diametrically opposite branch, six steps away.
func (b Branch) Opposite() Branch { return b.Add(BranchCount / 2) }

// ParseBranch returns the branch with the given display label.
func ParseBranch(label string) (Branch, error) {
	for i, l := range branchLabels {
		if l == label {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown branch %q", label)
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
