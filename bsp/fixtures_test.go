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

type testLine struct {
	v1, v2      int
	right, left int
}

// makeDoc builds a document with one sidedef per entry of sideSectors
func makeDoc(name string, verts [][2]int, numSectors int, sideSectors []int,
	lines []testLine) *mapdoc.Document {
	doc := mapdoc.New(name)
	for _, v := range verts {
		doc.AddVertex(v[0], v[1])
	}
	for i := 0; i < numSectors; i++ {
		doc.AddSector(mapdoc.Sector{FloorHeight: 0, CeilHeight: 128, LightLevel: 160})
	}
	for _, sec := range sideSectors {
		doc.AddSidedef(mapdoc.Sidedef{Sector: sec, Middle: "STARTAN2"})
	}
	for _, l := range lines {
		doc.AddLinedef(mapdoc.Linedef{StartVertex: l.v1, EndVertex: l.v2,
			Right: l.right, Left: l.left})
	}
	return doc
}

// squareRoom is a 128x128 room made of four one-sided lines, interior on
// the right of each line
func squareRoom() *mapdoc.Document {
	return makeDoc("ROOM", [][2]int{{0, 0}, {0, 128}, {128, 128}, {128, 0}}, 1,
		[]int{0},
		[]testLine{
			{0, 1, 0, mapdoc.NoSide},
			{1, 2, 0, mapdoc.NoSide},
			{2, 3, 0, mapdoc.NoSide},
			{3, 0, 0, mapdoc.NoSide},
		})
}

// twoRooms is two 128x128 sectors side by side sharing the two-sided
// linedef 0 at x = 128. Sector 0 is to the west.
func twoRooms() *mapdoc.Document {
	return twoRoomsWith("TWOROOMS", []testLine{
		{2, 3, 0, 1},
		{0, 1, 2, mapdoc.NoSide},
		{1, 2, 3, mapdoc.NoSide},
		{3, 0, 4, mapdoc.NoSide},
		{2, 4, 5, mapdoc.NoSide},
		{4, 5, 6, mapdoc.NoSide},
		{5, 3, 7, mapdoc.NoSide},
	})
}

// twoRoomsOuterFirst is twoRooms with the west outer wall listed before the
// shared linedef, which becomes linedef 1
func twoRoomsOuterFirst() *mapdoc.Document {
	return twoRoomsWith("OUTERFIRST", []testLine{
		{0, 1, 2, mapdoc.NoSide},
		{2, 3, 0, 1},
		{1, 2, 3, mapdoc.NoSide},
		{3, 0, 4, mapdoc.NoSide},
		{2, 4, 5, mapdoc.NoSide},
		{4, 5, 6, mapdoc.NoSide},
		{5, 3, 7, mapdoc.NoSide},
	})
}

func twoRoomsWith(name string, lines []testLine) *mapdoc.Document {
	return makeDoc(name,
		[][2]int{{0, 0}, {0, 128}, {128, 128}, {128, 0}, {256, 128}, {256, 0}},
		2,
		[]int{0, 1, 0, 0, 0, 1, 1, 1},
		lines)
}

// lRoom is an L-shaped single sector: a 128 wide column from y = 0 to 256
// joined to a 128x128 block east of it. Line 2 at x = 128 is the first one
// with walls on both sides.
func lRoom() *mapdoc.Document {
	return makeDoc("LROOM",
		[][2]int{{0, 0}, {0, 256}, {128, 256}, {128, 128}, {256, 128}, {256, 0}},
		1, []int{0},
		[]testLine{
			{0, 1, 0, mapdoc.NoSide},
			{1, 2, 0, mapdoc.NoSide},
			{2, 3, 0, mapdoc.NoSide},
			{3, 4, 0, mapdoc.NoSide},
			{4, 5, 0, mapdoc.NoSide},
			{5, 0, 0, mapdoc.NoSide},
		})
}

// stackedLines returns n parallel one-sided horizontal lines. The line at
// y = 8 comes first, then y = 0, then the rest in ascending order, so that
// taking the first seg as partition peels off one line per level.
func stackedLines(n int) *mapdoc.Document {
	order := []int{1, 0}
	for k := 2; k < n; k++ {
		order = append(order, k)
	}
	var verts [][2]int
	var lines []testLine
	for _, k := range order {
		verts = append(verts, [2]int{0, k * 8}, [2]int{100, k * 8})
		lines = append(lines, testLine{len(verts) - 2, len(verts) - 1, 0, mapdoc.NoSide})
	}
	return makeDoc("STACK", verts, 1, []int{0}, lines)
}

// crossedLines is a long horizontal line crossing four vertical ones, the
// horizontal one first
func crossedLines() *mapdoc.Document {
	return makeDoc("CROSS",
		[][2]int{
			{-100, 0}, {100, 0},
			{-30, -20}, {-30, 20},
			{-10, -20}, {-10, 20},
			{10, -20}, {10, 20},
			{30, -20}, {30, 20},
		},
		1, []int{0},
		[]testLine{
			{0, 1, 0, mapdoc.NoSide},
			{2, 3, 0, mapdoc.NoSide},
			{4, 5, 0, mapdoc.NoSide},
			{6, 7, 0, mapdoc.NoSide},
			{8, 9, 0, mapdoc.NoSide},
		})
}
