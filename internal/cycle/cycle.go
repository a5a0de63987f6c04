// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cycle derives the stem and branch that label a year, lunar month
// or lunar day. All functions are pure and total; callers validate lunar
// field ranges before calling.
//
//	docs/ARCHITECTURE § Cyclic Index Algebra.
package cycle

import "github.com/petar-djukic/go-ziwei/pkg/types"

// referenceYear is a 甲子 year offset: year 4 CE starts the cycle.
const referenceYear = 4

// StemOfYear returns the stem of a (lunar) year.
func StemOfYear(year int) types.Stem {
	return types.StemAt(year - referenceYear)
}

// BranchOfYear returns the branch of a (lunar) year.
func BranchOfYear(year int) types.Branch {
	return types.BranchAt(year - referenceYear)
}

// MonthStem returns the stem of a lunar month (1-12) in a year with the
// given stem. Years sharing a stem modulo five share their month stems.
func MonthStem(yearStem types.Stem, lunarMonth int) types.Stem {
	return types.StemAt((yearStem.Index()%5)*2 + lunarMonth)
}

// MonthBranch returns the branch of a lunar month. Month 1 falls on 寅
// regardless of the year.
func MonthBranch(lunarMonth int) types.Branch {
	return types.BranchAt(lunarMonth + 1)
}

// DayStem returns the stem of a lunar day. The stem starts at the month
// stem on day 1 and advances two steps per day.
//
// This is an approximation, not the continuous sexagenary day count.
func DayStem(yearStem types.Stem, lunarMonth, lunarDay int) types.Stem {
	return MonthStem(yearStem, lunarMonth).Add(2 * (lunarDay - 1))
}

// DayBranch returns the branch of a lunar day. The branch starts at the
// month branch on day 1 and advances one step per day. Same approximation
// as DayStem.
func DayBranch(lunarMonth, lunarDay int) types.Branch {
	return MonthBranch(lunarMonth).Add(lunarDay - 1)
}
