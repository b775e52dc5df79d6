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
	"fmt"
	"math"
)

// Side tells which side of its linedef a seg was made from
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

func (s Side) opposite() Side {
	return 1 - s
}

// NoPartner is the Partner value of a seg whose linedef has one side only,
// and of every fragment produced by splitting
const NoPartner = -1

// Seg is an oriented piece of one side of a linedef. Partner is an index into
// the same seg pool.
type Seg struct {
	Start   Point
	End     Point
	Angle   float64 // radians, atan2(dy, dx)
	Length  float64
	Linedef int
	Side    Side
	Partner int
}

func newSeg(start, end Point, linedef int, side Side) Seg {
	dx := end.X - start.X
	dy := end.Y - start.Y
	return Seg{
		Start:   start,
		End:     end,
		Angle:   math.Atan2(dy, dx),
		Length:  math.Hypot(dx, dy),
		Linedef: linedef,
		Side:    side,
		Partner: NoPartner,
	}
}

// Line returns the infinite line the seg lies on, oriented like the seg
func (s Seg) Line() PartitionLine {
	return PartitionLine{Start: s.Start, End: s.End}
}

func (s Seg) BBox() BoundingBox {
	box := EmptyBox()
	box.Expand(s.Start)
	box.Expand(s.End)
	return box
}

func (s Seg) String() string {
	return fmt.Sprintf("Linedef: %d Side: %s (%v,%v) - (%v,%v)", s.Linedef,
		s.Side, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}
