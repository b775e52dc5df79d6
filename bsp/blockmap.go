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
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// BlockSize is the side of a blockmap cell in map units
const BlockSize = 128

// rtreego rejects zero-sized rectangles and treats touching ones as
// disjoint, so every rectangle given to it is grown by this much. Exact
// tests happen afterwards.
const rectPad = 0.5

// Blockmap is a grid of BlockSize cells listing the linedefs crossing or
// touching each cell. OriginX, OriginY is the world position of the
// bottom-left corner of cell (0, 0) and is a multiple of BlockSize.
type Blockmap struct {
	OriginX int
	OriginY int
	Width   int
	Height  int
	cells   [][]int
}

// CellAt returns the linedefs of cell (gx, gy). ok is false out of range.
func (bm *Blockmap) CellAt(gx, gy int) ([]int, bool) {
	if bm == nil || gx < 0 || gy < 0 || gx >= bm.Width || gy >= bm.Height {
		return nil, false
	}
	return append([]int(nil), bm.cells[gy*bm.Width+gx]...), true
}

// CellAtPoint returns the linedefs of the cell containing world point
// (x, y). Points on the outer right or top edge belong to the last cell.
func (bm *Blockmap) CellAtPoint(x, y float64) ([]int, bool) {
	gx, gy, ok := bm.GridCoords(x, y)
	if !ok {
		return nil, false
	}
	return bm.CellAt(gx, gy)
}

// GridCoords converts a world point to cell coordinates
func (bm *Blockmap) GridCoords(x, y float64) (int, int, bool) {
	if bm == nil || bm.Width == 0 || bm.Height == 0 {
		return 0, 0, false
	}
	fx := (x - float64(bm.OriginX)) / BlockSize
	fy := (y - float64(bm.OriginY)) / BlockSize
	if fx < 0 || fy < 0 || fx > float64(bm.Width) || fy > float64(bm.Height) {
		return 0, 0, false
	}
	gx := int(math.Floor(fx))
	gy := int(math.Floor(fy))
	if gx == bm.Width {
		gx--
	}
	if gy == bm.Height {
		gy--
	}
	return gx, gy, true
}

// CellBox returns the world rectangle of cell (gx, gy)
func (bm *Blockmap) CellBox(gx, gy int) BoundingBox {
	x := float64(bm.OriginX + gx*BlockSize)
	y := float64(bm.OriginY + gy*BlockSize)
	return BoundingBox{MinX: x, MinY: y, MaxX: x + BlockSize, MaxY: y + BlockSize}
}

// Blocklist returns the linedefs of every cell whose rectangle intersects
// box, each linedef once, in ascending order
func (bm *Blockmap) Blocklist(box BoundingBox) []int {
	if bm == nil || box.IsEmpty() || bm.Width == 0 || bm.Height == 0 {
		return nil
	}
	x0 := clampCell(math.Floor((box.MinX-float64(bm.OriginX))/BlockSize), bm.Width)
	x1 := clampCell(math.Floor((box.MaxX-float64(bm.OriginX))/BlockSize), bm.Width)
	y0 := clampCell(math.Floor((box.MinY-float64(bm.OriginY))/BlockSize), bm.Height)
	y1 := clampCell(math.Floor((box.MaxY-float64(bm.OriginY))/BlockSize), bm.Height)
	seen := make(map[int]bool)
	var res []int
	for gy := y0; gy <= y1; gy++ {
		for gx := x0; gx <= x1; gx++ {
			if !bm.CellBox(gx, gy).Intersects(box) {
				continue
			}
			for _, line := range bm.cells[gy*bm.Width+gx] {
				if !seen[line] {
					seen[line] = true
					res = append(res, line)
				}
			}
		}
	}
	sort.Ints(res)
	return res
}

func clampCell(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if int(v) >= n {
		return n - 1
	}
	return int(v)
}

// lineEntry is a linedef stored in the R-tree
type lineEntry struct {
	index  int
	start  Point
	end    Point
	bounds rtreego.Rect
}

func (e *lineEntry) Bounds() rtreego.Rect {
	return e.bounds
}

func paddedRect(box BoundingBox) (rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{box.MinX - rectPad, box.MinY - rectPad},
		[]float64{box.MaxX - box.MinX + 2*rectPad, box.MaxY - box.MinY + 2*rectPad})
}

// NewBlockmap builds the blockmap over the bounding box of all vertices.
// Linedefs are first put in an R-tree; each cell queries it and keeps the
// candidates that really touch the cell rectangle.
func NewBlockmap(vertices []mapdoc.Vertex, linedefs []mapdoc.Linedef) (*Blockmap, error) {
	if len(vertices) == 0 {
		return &Blockmap{}, nil
	}
	box := EmptyBox()
	for _, v := range vertices {
		box.Expand(Point{float64(v.X), float64(v.Y)})
	}
	bm := &Blockmap{
		OriginX: floorBlock(box.MinX),
		OriginY: floorBlock(box.MinY),
	}
	bm.Width = cellsToCover(box.MaxX, bm.OriginX)
	bm.Height = cellsToCover(box.MaxY, bm.OriginY)
	bm.cells = make([][]int, bm.Width*bm.Height)

	entries := make([]rtreego.Spatial, 0, len(linedefs))
	for i, line := range linedefs {
		if line.StartVertex < 0 || line.StartVertex >= len(vertices) ||
			line.EndVertex < 0 || line.EndVertex >= len(vertices) {
			return nil, errors.Wrapf(ErrInvalidGeometry,
				"blockmap: linedef %d references missing vertex", i)
		}
		sv := vertices[line.StartVertex]
		ev := vertices[line.EndVertex]
		e := &lineEntry{
			index: i,
			start: Point{float64(sv.X), float64(sv.Y)},
			end:   Point{float64(ev.X), float64(ev.Y)},
		}
		lbox := EmptyBox()
		lbox.Expand(e.start)
		lbox.Expand(e.end)
		rect, err := paddedRect(lbox)
		if err != nil {
			return nil, errors.Wrapf(err, "blockmap: linedef %d", i)
		}
		e.bounds = rect
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return bm, nil
	}
	tree := rtreego.NewTree(2, 2, 16, entries...)

	for gy := 0; gy < bm.Height; gy++ {
		for gx := 0; gx < bm.Width; gx++ {
			cell := bm.CellBox(gx, gy)
			query, err := paddedRect(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "blockmap: cell (%d, %d)", gx, gy)
			}
			var lines []int
			for _, obj := range tree.SearchIntersect(query) {
				e := obj.(*lineEntry)
				if cell.TouchesSegment(e.start, e.end) {
					lines = append(lines, e.index)
				}
			}
			sort.Ints(lines)
			bm.cells[gy*bm.Width+gx] = lines
		}
	}
	return bm, nil
}

func floorBlock(v float64) int {
	return int(math.Floor(v/BlockSize)) * BlockSize
}

// cellsToCover returns how many cells starting at origin it takes to reach
// max, at least one
func cellsToCover(max float64, origin int) int {
	n := int(math.Ceil((max - float64(origin)) / BlockSize))
	if n < 1 {
		n = 1
	}
	return n
}
