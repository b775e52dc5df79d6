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

package wad

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

func roomSnapshot(name string) *mapdoc.Snapshot {
	return &mapdoc.Snapshot{
		Name:     name,
		Vertices: []mapdoc.Vertex{{X: 0, Y: 0}, {X: 0, Y: 128}, {X: 128, Y: 128}, {X: 128, Y: 0}, {X: -32768, Y: 32767}},
		Linedefs: []mapdoc.Linedef{
			{StartVertex: 0, EndVertex: 1, Right: 0, Left: mapdoc.NoSide, Flags: 1},
			{StartVertex: 1, EndVertex: 2, Right: 0, Left: mapdoc.NoSide, Flags: 1},
			{StartVertex: 2, EndVertex: 3, Right: 0, Left: 1, Flags: 4, Action: 1, Tag: 7},
			{StartVertex: 3, EndVertex: 0, Right: 0, Left: mapdoc.NoSide, Flags: 1},
		},
		Sidedefs: []mapdoc.Sidedef{
			{Middle: "STARTAN2", Upper: "-", Lower: "-", Sector: 0},
			{XOffset: -8, YOffset: 16, Middle: "-", Upper: "BIGDOOR1", Lower: "-", Sector: 1},
		},
		Sectors: []mapdoc.Sector{
			{FloorHeight: 0, CeilHeight: 128, FloorName: "FLOOR4_8", CeilName: "CEIL3_5", LightLevel: 160},
			{FloorHeight: -16, CeilHeight: 0, FloorName: "FLAT1", CeilName: "FLAT1", LightLevel: 255, Special: 9, Tag: 7},
		},
		Things: []mapdoc.Thing{{X: 64, Y: 64, Angle: 90, Type: 1, Flags: 7}},
	}
}

func buildWad(t *testing.T, sig uint32, lumps []Lump) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sig, lumps))
	return buf.Bytes()
}

func twoLevelWad(t *testing.T) []byte {
	map01, err := LevelLumps(roomSnapshot("MAP01"))
	require.NoError(t, err)
	map02, err := LevelLumps(roomSnapshot("MAP02"))
	require.NoError(t, err)
	lumps := []Lump{{Name: "DEHACKED", Data: []byte("Patch File")}}
	lumps = append(lumps, map01...)
	// a stale NODES lump belongs to the level and is ignored
	lumps = append(lumps, Lump{Name: "NODES", Data: []byte{1, 2, 3}})
	lumps = append(lumps, Lump{Name: "PLAYPAL", Data: make([]byte, 768)})
	lumps = append(lumps, map02...)
	// broken level: only vertices
	lumps = append(lumps, Lump{Name: "E1M1"}, map01[4])
	return buildWad(t, PWAD_MAGIC_SIG, lumps)
}

func TestOpenDirectory(t *testing.T) {
	f, err := Open(bytes.NewReader(twoLevelWad(t)))
	require.NoError(t, err)
	assert.False(t, f.IsIWAD())
	require.Len(t, f.Lumps, 1+6+1+1+6+2)
	assert.Equal(t, "DEHACKED", f.LumpName(0))
	data, err := f.ReadLump(0)
	require.NoError(t, err)
	assert.Equal(t, "Patch File", string(data))
	data, err = f.ReadLump(1)
	require.NoError(t, err)
	assert.Empty(t, data)
	_, err = f.ReadLump(100)
	assert.True(t, errors.Is(err, ErrBadLump))
}

func TestLevels(t *testing.T) {
	f, err := Open(bytes.NewReader(twoLevelWad(t)))
	require.NoError(t, err)
	levels := f.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, "MAP01", levels[0].Name)
	assert.Equal(t, 1, levels[0].Marker)
	assert.Len(t, levels[0].lumps, 6)
	assert.Equal(t, "MAP02", levels[1].Name)
	assert.Equal(t, 9, levels[1].Marker)
	assert.Equal(t, "E1M1", levels[2].Name)
	for _, l := range levels {
		assert.Equal(t, FORMAT_DOOM, l.Format)
	}
}

func TestLoadLevelRoundTrip(t *testing.T) {
	f, err := Open(bytes.NewReader(twoLevelWad(t)))
	require.NoError(t, err)
	doc, err := f.LoadLevel("MAP02")
	require.NoError(t, err)
	assert.Equal(t, roomSnapshot("MAP02"), doc.Snapshot())
}

func TestLoadLevelErrors(t *testing.T) {
	f, err := Open(bytes.NewReader(twoLevelWad(t)))
	require.NoError(t, err)

	_, err = f.LoadLevel("MAP07")
	assert.True(t, errors.Is(err, ErrLevelNotFound))

	_, err = f.LoadLevel("E1M1")
	assert.True(t, errors.Is(err, ErrMissingLump))
	assert.Contains(t, err.Error(), "LINEDEFS")
}

func TestLoadBadLumpSize(t *testing.T) {
	lumps, err := LevelLumps(roomSnapshot("MAP01"))
	require.NoError(t, err)
	lumps[4].Data = append(lumps[4].Data, 0xFF) // VERTEXES
	f, err := Open(bytes.NewReader(buildWad(t, IWAD_MAGIC_SIG, lumps)))
	require.NoError(t, err)
	assert.True(t, f.IsIWAD())
	_, err = f.LoadLevel("MAP01")
	assert.True(t, errors.Is(err, ErrBadLump))
}

func TestOpenNotWad(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("JUNKJUNKJUNKJUNK")))
	assert.True(t, errors.Is(err, ErrNotWad))

	_, err = Open(bytes.NewReader([]byte("PW")))
	assert.Error(t, err)
}

func TestHexenLevel(t *testing.T) {
	lines := []HexenLinedef{
		{StartVertex: 0, EndVertex: 1, Flags: 1, Action: 80, Args: [5]uint8{3, 0, 0, 0, 0},
			FrontSdef: 0, BackSdef: SIDEDEF_NONE},
	}
	things := []HexenThing{{TID: 5, XPos: 10, YPos: -20, Angle: 45, Type: 3001, Flags: 7}}
	verts := []Vertex{{0, 0}, {64, 0}}
	sides := []Sidedef{{Sector: 0}}
	sectors := []Sector{{CeilHeight: 64, LightLevel: 128}}
	f, err := Open(bytes.NewReader(buildWad(t, PWAD_MAGIC_SIG, []Lump{
		{Name: "MAP01"},
		{Name: "THINGS", Data: encode(things)},
		{Name: "LINEDEFS", Data: encode(lines)},
		{Name: "SIDEDEFS", Data: encode(sides)},
		{Name: "VERTEXES", Data: encode(verts)},
		{Name: "SECTORS", Data: encode(sectors)},
		{Name: "BEHAVIOR", Data: []byte{0}},
	})))
	require.NoError(t, err)
	levels := f.Levels()
	require.Len(t, levels, 1)
	assert.Equal(t, FORMAT_HEXEN, levels[0].Format)

	doc, err := f.Load(levels[0])
	require.NoError(t, err)
	snap := doc.Snapshot()
	require.Len(t, snap.Linedefs, 1)
	assert.Equal(t, mapdoc.Linedef{StartVertex: 0, EndVertex: 1, Right: 0,
		Left: mapdoc.NoSide, Flags: 1, Action: 80, Tag: 3}, snap.Linedefs[0])
	assert.Equal(t, []mapdoc.Thing{{X: 10, Y: -20, Angle: 45, Type: 3001, Flags: 7}}, snap.Things)
}

func TestLevelLumpsOutOfRange(t *testing.T) {
	snap := roomSnapshot("MAP01")
	snap.Vertices[0].X = 40000
	_, err := LevelLumps(snap)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	snap = roomSnapshot("MAP01")
	snap.Linedefs[0].Left = -7
	_, err = LevelLumps(snap)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var buf bytes.Buffer
	err = Write(&buf, PWAD_MAGIC_SIG, []Lump{{Name: "TOOLONGNAME"}})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestIsALevel(t *testing.T) {
	for _, name := range []string{"MAP01", "MAP32", "E1M1", "E4M9", "E2M10"} {
		assert.True(t, IsALevel([]byte(name)), name)
	}
	for _, name := range []string{"MAP1", "MAP001", "E0M1", "THINGS", "E1M"} {
		assert.False(t, IsALevel([]byte(name)), name)
	}
}
