// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package testchart provides a fixed natal chart for tests: a 1984 (甲子)
// male chart with 命宮 on 子, 紫微 on 子, two empty palaces (丑, 卯) and
// 身宮 on 辰.
package testchart

import "github.com/petar-djukic/go-ziwei/pkg/types"

// New returns a fresh copy of the fixture chart. Callers may mutate it.
func New() *types.Chart {
	c := &types.Chart{
		BirthYear:     1984,
		YearStem:      types.StemJia,
		YearBranch:    types.BranchZi,
		Gender:        "男",
		Element:       "水二局",
		DestinyMaster: "貪狼",
		BodyMaster:    "火星",
	}
	stems := []types.Stem{
		types.StemBing, types.StemDing, types.StemBing, types.StemDing, types.StemWu, types.StemJi,
		types.StemGeng, types.StemXin, types.StemRen, types.StemGui, types.StemJia, types.StemYi,
	}
	scholars := []string{"博士", "力士", "青龍", "小耗", "將軍", "奏書", "飛廉", "喜神", "病符", "大耗", "伏兵", "官府"}
	yearGods := []string{"歲建", "晦氣", "喪門", "貫索", "官符", "小耗", "大耗", "龍德", "白虎", "天德", "弔客", "病符"}
	leaders := []string{"將星", "攀鞍", "歲驛", "息神", "華蓋", "劫煞", "災煞", "天煞", "指背", "咸池", "月煞", "亡神"}
	stages := []string{"帝旺", "衰", "病", "死", "墓", "絕", "胎", "養", "長生", "沐浴", "冠帶", "臨官"}
	major := map[types.Branch][]types.Star{
		types.BranchZi:   {types.ZiWei},
		types.BranchYin:  {types.PoJun},
		types.BranchChen: {types.LianZhen, types.TianFu},
		types.BranchSi:   {types.TaiYin},
		types.BranchWu:   {types.TanLang},
		types.BranchWei:  {types.TianTong, types.JuMen},
		types.BranchShen: {types.WuQu, types.TianXiang},
		types.BranchYou:  {types.TaiYang, types.TianLiang},
		types.BranchXu:   {types.QiSha},
		types.BranchHai:  {types.TianJi},
	}
	minor := map[types.Branch][]types.Star{
		types.BranchZi:   {types.YouBi},
		types.BranchChou: {types.TianKui, types.TuoLuo},
		types.BranchYin:  {types.LuCun},
		types.BranchMao:  {types.QingYang},
		types.BranchChen: {types.ZuoFu},
		types.BranchSi:   {types.HuoXing, types.DiJie},
		types.BranchWu:   {types.WenQu},
		types.BranchWei:  {types.TianYue},
		types.BranchShen: {types.TianMa},
		types.BranchYou:  {types.DiKong},
		types.BranchXu:   {types.WenChang},
		types.BranchHai:  {types.LingXing},
	}
	mini := map[types.Branch][]string{
		types.BranchZi:  {"紅鸞", "天喜"},
		types.BranchWu:  {"天刑"},
		types.BranchHai: {"天姚"},
	}

	for i := range c.Positions {
		b := types.Branch(i)
		// 命宮 sits on 子 and the natal roles run backward from it.
		role := types.Role((types.BranchCount - i) % types.BranchCount)
		c.Positions[i] = types.Position{
			Branch:    b,
			Stem:      stems[i],
			Major:     major[b],
			Minor:     minor[b],
			Mini:      mini[b],
			Scholar:   scholars[i],
			YearGod:   yearGods[i],
			Leader:    leaders[i],
			Roles:     []types.Role{role},
			Body:      b == types.BranchChen,
			AgeStart:  2 + 10*i,
			AgeEnd:    11 + 10*i,
			LifeStage: stages[i],
		}
	}
	return c
}
