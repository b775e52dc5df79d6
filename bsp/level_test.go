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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

func TestLevelSquareRoom(t *testing.T) {
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(squareRoom()))

	segs := lvl.Segments()
	assert.Len(t, segs, 4)
	for _, s := range segs {
		assert.Equal(t, NoPartner, s.Partner)
	}
	subs := lvl.Subsectors()
	require.Len(t, subs, 2)
	for _, ss := range subs {
		assert.Equal(t, 0, ss.Sector)
	}
	assert.Equal(t, BoundingBox{0, 0, 128, 128}, subs[0].BBox)
	assert.Equal(t, BoundingBox{0, 0, 0, 128}, subs[1].BBox)

	st := lvl.Stats()
	assert.Equal(t, Stats{
		InitialSegs: 4,
		Segs:        4,
		Nodes:       1,
		Leaves:      2,
		Subsectors:  2,
		Height:      2,
		FrontHeight: 1,
		BackHeight:  1,
	}, st)

	bm := lvl.Blockmap()
	require.NotNil(t, bm)
	assert.Equal(t, 1, bm.Width)
	cell, ok := bm.CellAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, cell)
}

func TestLevelTwoRooms(t *testing.T) {
	doc := twoRooms()
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(doc))

	segs := lvl.Segments()
	shared := 0
	for i, s := range segs {
		if s.Linedef == 0 {
			shared++
			require.NotEqual(t, NoPartner, s.Partner)
			assert.Equal(t, i, segs[s.Partner].Partner)
		}
	}
	assert.Equal(t, 2, shared)

	sectors := make(map[int]bool)
	for _, ss := range lvl.Subsectors() {
		sectors[ss.Sector] = true
	}
	assert.True(t, sectors[0])
	assert.True(t, sectors[1])

	west, ok := lvl.LocateSubsector(Point{64, 64})
	require.True(t, ok)
	east, ok := lvl.LocateSubsector(Point{192, 64})
	require.True(t, ok)
	subs := lvl.Subsectors()
	assert.Equal(t, 0, subs[west].Sector)
	assert.Equal(t, 1, subs[east].Sector)
}

func TestLevelSectorsAnyLineOrder(t *testing.T) {
	tests := []struct {
		doc        *mapdoc.Document
		west, east int
	}{
		{twoRooms(), 0, 1},
		{twoRoomsOuterFirst(), 0, 1},
		{lRoom(), 0, 0},
	}
	for _, tt := range tests {
		lvl := NewLevel(Options{})
		require.NoError(t, lvl.Build(tt.doc))
		subs := lvl.Subsectors()
		require.Len(t, subs, 4, tt.doc.Name())

		// a point in the west part and one in the east part
		west, ok := lvl.LocateSubsector(Point{64, 64})
		require.True(t, ok)
		east, ok := lvl.LocateSubsector(Point{192, 64})
		require.True(t, ok)
		assert.NotEqual(t, west, east, tt.doc.Name())
		assert.Equal(t, tt.west, subs[west].Sector, tt.doc.Name())
		assert.Equal(t, tt.east, subs[east].Sector, tt.doc.Name())
	}
}

func TestLevelResultIsolated(t *testing.T) {
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(twoRooms()))
	west, ok := lvl.LocateSubsector(Point{64, 64})
	require.True(t, ok)
	subs := lvl.Subsectors()
	wantSegs := append([]int(nil), subs[0].Segs...)
	cell, ok := lvl.Blockmap().CellAt(0, 0)
	require.True(t, ok)
	require.NotEmpty(t, cell)
	wantCell := append([]int(nil), cell...)

	root := lvl.Root()
	root.Front, root.Back = root.Back, root.Front
	for _, leaf := range leaves(root) {
		leaf.Subsector = 99
	}
	subs[0].Segs[0] = 999
	cell[0] = -1

	got, ok := lvl.LocateSubsector(Point{64, 64})
	require.True(t, ok)
	assert.Equal(t, west, got)
	assert.Equal(t, wantSegs, lvl.Subsectors()[0].Segs)
	cell, _ = lvl.Blockmap().CellAt(0, 0)
	assert.Equal(t, wantCell, cell)
}

func TestLevelInvalidGeometry(t *testing.T) {
	doc := makeDoc("BROKEN", [][2]int{{0, 0}, {0, 64}, {64, 64}, {64, 0}}, 1, []int{0},
		[]testLine{
			{0, 1, 0, mapdoc.NoSide},
			{1, 99, 0, mapdoc.NoSide},
		})
	lvl := NewLevel(Options{})
	err := lvl.Build(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidGeometry))
	assert.Contains(t, err.Error(), "BROKEN")
	assert.False(t, lvl.Built())
	assert.Nil(t, lvl.Root())
	assert.Nil(t, lvl.Blockmap())
	assert.Nil(t, lvl.Subsectors())
	assert.Nil(t, lvl.Segments())
	_, ok := lvl.LocateSubsector(Point{1, 1})
	assert.False(t, ok)
}

func TestLevelFailedRebuildKeepsResult(t *testing.T) {
	doc := squareRoom()
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(doc))
	root := lvl.Root()

	err := lvl.Build(stackedLines(DepthLimit + 10))
	assert.True(t, errors.Is(err, ErrDepthExceeded))
	assert.Equal(t, root, lvl.Root())
	assert.Len(t, lvl.Subsectors(), 2)
}

func TestLevelIdempotent(t *testing.T) {
	for _, doc := range []*mapdoc.Document{squareRoom(), twoRooms(), crossedLines(), stackedLines(30)} {
		for _, policy := range []Policy{PolicyFirst, PolicyBalanced} {
			a := NewLevel(Options{Policy: policy})
			require.NoError(t, a.Build(doc))
			first := a.Root()
			firstSubs := a.Subsectors()
			require.NoError(t, a.Build(doc))
			assert.NotSame(t, first, a.Root())
			assert.Equal(t, first, a.Root(), "%s %s", doc.Name(), policy)
			assert.Equal(t, firstSubs, a.Subsectors())
		}
	}
}

func TestLevelRebuildSeesEdits(t *testing.T) {
	doc := squareRoom()
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(doc))
	require.True(t, doc.MoveVertex(2, 256, 256))
	require.NoError(t, lvl.Build(doc))
	assert.Equal(t, 2, lvl.Blockmap().Width)
}

func TestLevelConcurrentBuilds(t *testing.T) {
	doc := twoRooms()
	lvl := NewLevel(Options{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := lvl.Build(doc); err != nil {
				t.Errorf("Build: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			// either nothing or a whole result
			if root := lvl.Root(); root != nil && root.IsLeaf() {
				t.Errorf("unexpected leaf root")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, lvl.Stats().Subsectors)
}

func TestLevelEmptyMap(t *testing.T) {
	lvl := NewLevel(Options{})
	require.NoError(t, lvl.Build(mapdoc.New("EMPTY")))
	require.NotNil(t, lvl.Root())
	assert.Equal(t, EmptyLeaf, lvl.Root().Kind)
	assert.Empty(t, lvl.Subsectors())
	st := lvl.Stats()
	assert.Equal(t, 1, st.EmptyLeaves)
	assert.Equal(t, 1, st.Height)
}
