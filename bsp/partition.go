// Copyright (C) 2022-2026, VigilantDoomer
//
// This file is part of VigilantEdit program.
//
// VigilantEdit is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantEdit.  If not, see <https://www.gnu.org/licenses/>.

package bsp

import (
	"math"
)

// Relation of a seg to a partition line
type Relation int

const (
	OnFront Relation = iota
	OnBack
	Spanning
	Coincident
)

func (r Relation) String() string {
	switch r {
	case OnFront:
		return "front"
	case OnBack:
		return "back"
	case Spanning:
		return "spanning"
	default:
		return "coincident"
	}
}

// Classify tells where s lies relative to part. An endpoint within Epsilon of
// the line does not count, the other endpoint decides. A seg with both
// endpoints on the line is Coincident.
func Classify(s Seg, part PartitionLine) Relation {
	return relate(part.Classify(s.Start), part.Classify(s.End))
}

func relate(ds, de float64) Relation {
	switch {
	case ds > Epsilon && de > Epsilon:
		return OnFront
	case ds < -Epsilon && de < -Epsilon:
		return OnBack
	case ds > Epsilon && de < -Epsilon, ds < -Epsilon && de > Epsilon:
		return Spanning
	}
	d := ds
	if math.Abs(d) <= Epsilon {
		d = de
	}
	if d > Epsilon {
		return OnFront
	}
	if d < -Epsilon {
		return OnBack
	}
	return Coincident
}

// Policy selects how the partition line is picked at every branch
type Policy int

const (
	// PolicyFirst takes the line of the first seg in the list
	PolicyFirst Policy = iota
	// PolicyBalanced evaluates every seg and takes the one with the lowest
	// cost of splits*factor + |front - back|
	PolicyBalanced
)

func (p Policy) String() string {
	if p == PolicyBalanced {
		return "balanced"
	}
	return "first"
}

// DefaultSplitFactor is the cost of one split for PolicyBalanced
const DefaultSplitFactor = 17

// separates reports whether line has segs of the set on both sides. A
// spanning seg counts for both. Lines that do not separate leave a convex
// set unchanged.
func separates(pool []Seg, segs []int, line PartitionLine) bool {
	front, back := false, false
	for _, idx := range segs {
		switch Classify(pool[idx], line) {
		case OnFront:
			front = true
		case OnBack:
			back = true
		case Spanning:
			return true
		}
		if front && back {
			return true
		}
	}
	return false
}

// pickFirst returns the position in segs of the first seg whose line
// separates the set. If there is none, the set is convex and the first seg
// with non-zero length is returned (0 if all are degenerate) along with
// false.
func pickFirst(pool []Seg, segs []int) (int, bool) {
	fallback := -1
	for i, idx := range segs {
		if pool[idx].Length == 0 {
			continue
		}
		if fallback < 0 {
			fallback = i
		}
		if separates(pool, segs, pool[idx].Line()) {
			return i, true
		}
	}
	if fallback < 0 {
		fallback = 0
	}
	return fallback, false
}

// pickBalanced scores every candidate that separates the set. A seg whose
// partner was already scored is skipped since it lies on the same line and
// costs the same. Falls back to pickFirst when nothing separates.
func pickBalanced(pool []Seg, segs []int, factor int) (int, bool) {
	best := -1
	bestCost := math.MaxInt
	scored := make(map[int]bool)
	for i, idx := range segs {
		part := pool[idx]
		if part.Length == 0 {
			continue
		}
		if part.Partner != NoPartner && scored[part.Partner] {
			continue
		}
		scored[idx] = true
		line := part.Line()
		front, back, splits := 0, 0, 0
		cost := 0
		for _, other := range segs {
			switch Classify(pool[other], line) {
			case OnFront:
				front++
			case OnBack:
				back++
			case Spanning:
				splits++
				cost += factor
			}
			if cost >= bestCost {
				break
			}
		}
		if cost >= bestCost {
			continue
		}
		if front+splits == 0 || back+splits == 0 {
			continue
		}
		diff := front - back
		if diff < 0 {
			diff = -diff
		}
		cost += diff
		if cost < bestCost {
			bestCost = cost
			best = i
		}
	}
	if best < 0 {
		return pickFirst(pool, segs)
	}
	return best, true
}
