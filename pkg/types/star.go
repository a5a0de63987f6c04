// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Star identifies a named star. Every lookup table and the chart contract
// key on Star; display labels are derived from it and never used for joins.
type Star int

const (
	// Major stars (甲級主星).
	ZiWei     Star = iota // 紫微
	TianJi                // 天機
	TaiYang               // 太陽
	WuQu                  // 武曲
	TianTong              // 天同
	LianZhen              // 廉貞
	TianFu                // 天府
	TaiYin                // 太陰
	TanLang               // 貪狼
	JuMen                 // 巨門
	TianXiang             // 天相
	TianLiang             // 天梁
	QiSha                 // 七殺
	PoJun                 // 破軍

	// Minor stars (乙級輔星).
	WenChang // 文昌
	WenQu    // 文曲
	ZuoFu    // 左輔
	YouBi    // 右弼
	TianKui  // 天魁
	TianYue  // 天鉞
	LuCun    // 祿存
	TianMa   // 天馬
	QingYang // 擎羊
	TuoLuo   // 陀羅
	HuoXing  // 火星
	LingXing // 鈴星
	DiKong   // 地空
	DiJie    // 地劫

	starCount
)

var starLabels = [starCount]string{
	"紫微", "天機", "太陽", "武曲", "天同", "廉貞", "天府", "太陰", "貪狼", "巨門", "天相", "天梁", "七殺", "破軍",
	"文昌", "文曲", "左輔", "右弼", "天魁", "天鉞", "祿存", "天馬", "擎羊", "陀羅", "火星", "鈴星", "地空", "地劫",
}

// Stars returns every known star in declaration order.
func Stars() []Star {
	out := make([]Star, starCount)
	for i := range out {
		out[i] = Star(i)
	}
	return out
}

// IsMajor reports whether s is one of the fourteen major stars.
func (s Star) IsMajor() bool { return s >= ZiWei && s <= PoJun }

// Valid reports whether s is a known star.
func (s Star) Valid() bool { return s >= 0 && s < starCount }

// Label returns the display label of the star.
func (s Star) Label() string {
	if !s.Valid() {
		return "?"
	}
	return starLabels[s]
}

func (s Star) String() string { return s.Label() }

// ParseStar returns the star with the given display label.
func ParseStar(label string) (Star, error) {
	for i, l := range starLabels {
		if l == label {
			return Star(i), nil
		}
	}
	return 0, fmt.Errorf("unknown star %q", label)
}

// Labels returns the display labels of stars, in order.
func Labels(stars []Star) []string {
	out := make([]string, len(stars))
	for i, s := range stars {
		out[i] = s.Label()
	}
	return out
}
