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
	"github.com/pkg/errors"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// NewSegs creates the initial seg list: a front seg (start->end) for every
// linedef with a right side, followed by a back seg (end->start) if it has a
// left side. Partners are linked in the returned slice.
func NewSegs(vertices []mapdoc.Vertex, linedefs []mapdoc.Linedef) ([]Seg, error) {
	segs := make([]Seg, 0, len(linedefs)*2)
	for i, line := range linedefs {
		if line.StartVertex < 0 || line.StartVertex >= len(vertices) ||
			line.EndVertex < 0 || line.EndVertex >= len(vertices) {
			return nil, errors.Wrapf(ErrInvalidGeometry,
				"linedef %d references vertices (%d, %d), only %d present",
				i, line.StartVertex, line.EndVertex, len(vertices))
		}
		sv := vertices[line.StartVertex]
		ev := vertices[line.EndVertex]
		start := Point{X: float64(sv.X), Y: float64(sv.Y)}
		end := Point{X: float64(ev.X), Y: float64(ev.Y)}
		if line.Right != mapdoc.NoSide {
			segs = append(segs, newSeg(start, end, i, Front))
		}
		if line.Left != mapdoc.NoSide {
			segs = append(segs, newSeg(end, start, i, Back))
		}
	}
	return linkPartners(segs, len(linedefs)), nil
}

// linkPartners returns a copy of segs with Partner filled in. Segs are
// indexed by linedef in a side table, so the whole pass is linear.
func linkPartners(segs []Seg, numLinedefs int) []Seg {
	bySide := make([][2]int, numLinedefs)
	for i := range bySide {
		bySide[i] = [2]int{NoPartner, NoPartner}
	}
	for i, s := range segs {
		bySide[s.Linedef][s.Side] = i
	}
	linked := make([]Seg, len(segs))
	copy(linked, segs)
	for i, s := range segs {
		linked[i].Partner = bySide[s.Linedef][s.Side.opposite()]
	}
	return linked
}
