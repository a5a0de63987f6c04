// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tables

import (
	"fmt"

	"github.com/petar-djukic/go-ziwei/pkg/types"
)

// transformations maps each stem to the star receiving 祿, 權, 科 and 忌,
// in tag order.
var transformations = map[types.Stem][types.TagCount]types.Star{
	types.StemJia:  {types.LianZhen, types.PoJun, types.WuQu, types.TaiYang},
	types.StemYi:   {types.TianJi, types.TianLiang, types.ZiWei, types.TaiYin},
	types.StemBing: {types.TianTong, types.TianJi, types.WenChang, types.LianZhen},
	types.StemDing: {types.TaiYin, types.TianTong, types.TianJi, types.JuMen},
	types.StemWu:   {types.TanLang, types.TaiYin, types.YouBi, types.TianJi},
	types.StemJi:   {types.WuQu, types.TanLang, types.TianLiang, types.WenQu},
	types.StemGeng: {types.TaiYang, types.WuQu, types.TaiYin, types.TianTong},
	types.StemXin:  {types.JuMen, types.TaiYang, types.WenQu, types.WenChang},
	types.StemRen:  {types.TianLiang, types.ZiWei, types.ZuoFu, types.WuQu},
	types.StemGui:  {types.PoJun, types.JuMen, types.TaiYin, types.TanLang},
}

// Transformations returns the stars receiving each tag under stem, indexed
// by tag. It panics if the stem has no entry.
func Transformations(stem types.Stem) [types.TagCount]types.Star {
	row, ok := transformations[stem]
	if !ok {
		panic(fmt.Sprintf("tables: no transformation entry for stem %d", stem))
	}
	return row
}

// luCun is the branch of 祿存 for each stem.
var luCun = [types.StemCount]types.Branch{
	types.BranchYin, types.BranchMao, types.BranchSi, types.BranchWu, types.BranchSi,
	types.BranchWu, types.BranchShen, types.BranchYou, types.BranchHai, types.BranchZi,
}

// kuiYue is the branch pair (魁, 鉞) for each stem.
var kuiYue = [types.StemCount][2]types.Branch{
	{types.BranchChou, types.BranchWei}, // 甲
	{types.BranchZi, types.BranchShen},  // 乙
	{types.BranchHai, types.BranchYou},  // 丙
	{types.BranchHai, types.BranchYou},  // 丁
	{types.BranchChou, types.BranchWei}, // 戊
	{types.BranchZi, types.BranchShen},  // 己
	{types.BranchChou, types.BranchWei}, // 庚
	{types.BranchWu, types.BranchYin},   // 辛
	{types.BranchMao, types.BranchSi},   // 壬
	{types.BranchMao, types.BranchSi},   // 癸
}

// changQu is the branch pair (昌, 曲) for each stem.
var changQu = [types.StemCount][2]types.Branch{
	{types.BranchSi, types.BranchYou},  // 甲
	{types.BranchWu, types.BranchShen}, // 乙
	{types.BranchShen, types.BranchWu}, // 丙
	{types.BranchYou, types.BranchSi},  // 丁
	{types.BranchShen, types.BranchWu}, // 戊
	{types.BranchYou, types.BranchSi},  // 己
	{types.BranchHai, types.BranchMao}, // 庚
	{types.BranchZi, types.BranchYin},  // 辛
	{types.BranchYin, types.BranchZi},  // 壬
	{types.BranchMao, types.BranchHai}, // 癸
}

// roaming is derived from the tables above at init: one branch per roaming
// star per stem.
var roaming = buildRoaming()

func buildRoaming() map[types.RoamingStar][types.StemCount]types.Branch {
	out := make(map[types.RoamingStar][types.StemCount]types.Branch, len(types.RoamingStars()))
	var lu, yang, tuo, kui, yue, chang, qu [types.StemCount]types.Branch
	for s := 0; s < types.StemCount; s++ {
		lu[s] = luCun[s]
		yang[s] = luCun[s].Add(1)
		tuo[s] = luCun[s].Add(-1)
		kui[s], yue[s] = kuiYue[s][0], kuiYue[s][1]
		chang[s], qu[s] = changQu[s][0], changQu[s][1]
	}
	out[types.RoamingLu] = lu
	out[types.RoamingYang] = yang
	out[types.RoamingTuo] = tuo
	out[types.RoamingKui] = kui
	out[types.RoamingYue] = yue
	out[types.RoamingChang] = chang
	out[types.RoamingQu] = qu
	return out
}

// RoamingBranch returns the branch roaming star r occupies under stem. It
// panics if r has no rule.
func RoamingBranch(r types.RoamingStar, stem types.Stem) types.Branch {
	row, ok := roaming[r]
	if !ok {
		panic(fmt.Sprintf("tables: no roaming rule for %d", r))
	}
	return row[types.StemAt(stem.Index())]
}

func init() {
	for s := 0; s < types.StemCount; s++ {
		if _, ok := transformations[types.Stem(s)]; !ok {
			panic(fmt.Sprintf("tables: stem %s missing from transformation table", types.Stem(s)))
		}
	}
	for _, r := range types.RoamingStars() {
		if _, ok := roaming[r]; !ok {
			panic(fmt.Sprintf("tables: roaming star %d has no rule", r))
		}
	}
}
