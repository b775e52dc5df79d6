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
	"github.com/pkg/errors"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// LoadLevel decodes the named level into a new document
func (f *File) LoadLevel(name string) (*mapdoc.Document, error) {
	info, err := f.FindLevel(name)
	if err != nil {
		return nil, err
	}
	return f.Load(info)
}

// Load decodes the level described by info. THINGS may be absent, the other
// lumps in LUMP_MUSTEXIST may not.
func (f *File) Load(info LevelInfo) (*mapdoc.Document, error) {
	for _, name := range LUMP_MUSTEXIST {
		if _, ok := info.lumps[name]; !ok {
			return nil, errors.Wrapf(ErrMissingLump, "%s in %s", name, info.Name)
		}
	}
	snap := &mapdoc.Snapshot{Name: info.Name}
	var err error
	if snap.Vertices, err = f.loadVertices(info.lumps["VERTEXES"]); err != nil {
		return nil, errors.Wrapf(err, "level %s", info.Name)
	}
	if info.Format == FORMAT_HEXEN {
		snap.Linedefs, err = f.loadHexenLinedefs(info.lumps["LINEDEFS"])
	} else {
		snap.Linedefs, err = f.loadLinedefs(info.lumps["LINEDEFS"])
	}
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", info.Name)
	}
	if snap.Sidedefs, err = f.loadSidedefs(info.lumps["SIDEDEFS"]); err != nil {
		return nil, errors.Wrapf(err, "level %s", info.Name)
	}
	if snap.Sectors, err = f.loadSectors(info.lumps["SECTORS"]); err != nil {
		return nil, errors.Wrapf(err, "level %s", info.Name)
	}
	if idx, ok := info.lumps["THINGS"]; ok {
		if info.Format == FORMAT_HEXEN {
			snap.Things, err = f.loadHexenThings(idx)
		} else {
			snap.Things, err = f.loadThings(idx)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "level %s", info.Name)
		}
	}
	return mapdoc.FromSnapshot(snap), nil
}

func sideIndex(v uint16) int {
	if v == SIDEDEF_NONE {
		return mapdoc.NoSide
	}
	return int(v)
}

func textureName(b [8]byte) string {
	return string(ByteSliceBeforeTerm(b[:]))
}

func (f *File) loadVertices(idx int) ([]mapdoc.Vertex, error) {
	cnt, err := f.recordCount(idx, VERTEX_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]Vertex, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Vertex, cnt)
	for i, v := range raw {
		res[i] = mapdoc.Vertex{X: int(v.XPos), Y: int(v.YPos)}
	}
	return res, nil
}

func (f *File) loadLinedefs(idx int) ([]mapdoc.Linedef, error) {
	cnt, err := f.recordCount(idx, DOOM_LINEDEF_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]Linedef, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Linedef, cnt)
	for i, l := range raw {
		res[i] = mapdoc.Linedef{
			StartVertex: int(l.StartVertex),
			EndVertex:   int(l.EndVertex),
			Right:       sideIndex(l.FrontSdef),
			Left:        sideIndex(l.BackSdef),
			Flags:       int(l.Flags),
			Action:      int(l.Action),
			Tag:         int(l.Tag),
		}
	}
	return res, nil
}

func (f *File) loadHexenLinedefs(idx int) ([]mapdoc.Linedef, error) {
	cnt, err := f.recordCount(idx, HEXEN_LINEDEF_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]HexenLinedef, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Linedef, cnt)
	for i, l := range raw {
		res[i] = mapdoc.Linedef{
			StartVertex: int(l.StartVertex),
			EndVertex:   int(l.EndVertex),
			Right:       sideIndex(l.FrontSdef),
			Left:        sideIndex(l.BackSdef),
			Flags:       int(l.Flags),
			Action:      int(l.Action),
			Tag:         int(l.Args[0]),
		}
	}
	return res, nil
}

func (f *File) loadSidedefs(idx int) ([]mapdoc.Sidedef, error) {
	cnt, err := f.recordCount(idx, SIDEDEF_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]Sidedef, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Sidedef, cnt)
	for i, s := range raw {
		res[i] = mapdoc.Sidedef{
			XOffset: int(s.XOffset),
			YOffset: int(s.YOffset),
			Upper:   textureName(s.UpName),
			Lower:   textureName(s.LoName),
			Middle:  textureName(s.MidName),
			// vanilla treats the sector number as signed
			Sector: int(int16(s.Sector)),
		}
	}
	return res, nil
}

func (f *File) loadSectors(idx int) ([]mapdoc.Sector, error) {
	cnt, err := f.recordCount(idx, SECTOR_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]Sector, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Sector, cnt)
	for i, s := range raw {
		res[i] = mapdoc.Sector{
			FloorHeight: int(s.FloorHeight),
			CeilHeight:  int(s.CeilHeight),
			FloorName:   textureName(s.FloorName),
			CeilName:    textureName(s.CeilName),
			LightLevel:  int(s.LightLevel),
			Special:     int(s.Special),
			Tag:         int(s.Tag),
		}
	}
	return res, nil
}

func (f *File) loadThings(idx int) ([]mapdoc.Thing, error) {
	cnt, err := f.recordCount(idx, DOOM_THING_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]Thing, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Thing, cnt)
	for i, t := range raw {
		res[i] = mapdoc.Thing{X: int(t.XPos), Y: int(t.YPos), Angle: int(t.Angle),
			Type: int(t.Type), Flags: int(t.Flags)}
	}
	return res, nil
}

func (f *File) loadHexenThings(idx int) ([]mapdoc.Thing, error) {
	cnt, err := f.recordCount(idx, HEXEN_THING_SIZE)
	if err != nil {
		return nil, err
	}
	raw := make([]HexenThing, cnt)
	if err := f.readRecords(idx, raw); err != nil {
		return nil, err
	}
	res := make([]mapdoc.Thing, cnt)
	for i, t := range raw {
		res[i] = mapdoc.Thing{X: int(t.XPos), Y: int(t.YPos), Angle: int(t.Angle),
			Type: int(t.Type), Flags: int(t.Flags)}
	}
	return res, nil
}
