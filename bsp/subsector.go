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
	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// NoSector is the Sector of a subsector whose segs name no valid sector
const NoSector = -1

// Subsector is the content of one non-empty leaf
type Subsector struct {
	Segs   []int
	BBox   BoundingBox
	Sector int
}

// extractSubsectors walks the tree front first and creates a subsector for
// every non-empty leaf, storing its index in the leaf
func extractSubsectors(root *Node, pool []Seg, snap *mapdoc.Snapshot) []Subsector {
	var subs []Subsector
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if !n.IsLeaf() {
			walk(n.Front)
			walk(n.Back)
			return
		}
		if len(n.Segs) == 0 {
			return
		}
		ss := Subsector{
			Segs:   append([]int(nil), n.Segs...),
			BBox:   EmptyBox(),
			Sector: resolveSector(n.Segs, pool, snap),
		}
		for _, idx := range n.Segs {
			ss.BBox.Expand(pool[idx].Start)
			ss.BBox.Expand(pool[idx].End)
		}
		n.Subsector = len(subs)
		subs = append(subs, ss)
	}
	walk(root)
	return subs
}

// resolveSector reads the sector on each seg's own side of its linedef and
// returns the one named most often. A tie goes to the sector seen first.
func resolveSector(segs []int, pool []Seg, snap *mapdoc.Snapshot) int {
	votes := make(map[int]int)
	best, bestVotes := NoSector, 0
	for _, idx := range segs {
		sec := segSector(pool[idx], snap)
		if sec == NoSector {
			continue
		}
		votes[sec]++
		if votes[sec] > bestVotes {
			best, bestVotes = sec, votes[sec]
		}
	}
	return best
}

func segSector(s Seg, snap *mapdoc.Snapshot) int {
	if s.Linedef < 0 || s.Linedef >= len(snap.Linedefs) {
		return NoSector
	}
	line := snap.Linedefs[s.Linedef]
	side := line.Right
	if s.Side == Back {
		side = line.Left
	}
	if side < 0 || side >= len(snap.Sidedefs) {
		return NoSector
	}
	sec := snap.Sidedefs[side].Sector
	if sec < 0 || sec >= len(snap.Sectors) {
		return NoSector
	}
	return sec
}
