// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package borrow resolves the effective major stars of the self role. An
// empty self position borrows the major stars of the diametrically opposite
// position (the travel role); if that is empty too the result says so.
//
//	docs/ARCHITECTURE § Empty-Palace Borrowing.
package borrow

import "github.com/petar-djukic/go-ziwei/pkg/types"

// Resolve returns the headline stars for the self role sitting on self.
// Stars already present are returned as they are, untagged.
func Resolve(c *types.Chart, self types.Branch) types.Headline {
	own := c.At(self).Major
	if len(own) > 0 {
		return types.Headline{
			State: types.HeadlineOwn,
			Stars: append([]types.Star(nil), own...),
			Self:  self,
			From:  self,
		}
	}

	opposite := self.Opposite()
	borrowed := c.At(opposite).Major
	if len(borrowed) > 0 {
		return types.Headline{
			State: types.HeadlineBorrowed,
			Stars: append([]types.Star(nil), borrowed...),
			Self:  self,
			From:  opposite,
		}
	}

	return types.Headline{
		State: types.HeadlineEmpty,
		Self:  self,
		From:  opposite,
	}
}
