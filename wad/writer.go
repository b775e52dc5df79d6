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
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// ErrOutOfRange is returned when a map value does not fit its on-disk field
var ErrOutOfRange = errors.New("value does not fit WAD record")

type Lump struct {
	Name string
	Data []byte
}

// Write stores lumps in a new WAD: header, lump data in order, then the
// directory
func Write(w io.Writer, sig uint32, lumps []Lump) error {
	le := make([]LumpEntry, len(lumps))
	curPos := uint32(HEADER_SIZE)
	for i, l := range lumps {
		if len(l.Name) > 8 {
			return errors.Wrapf(ErrOutOfRange, "lump name %q", l.Name)
		}
		copy(le[i].Name[:], l.Name)
		le[i].FilePos = curPos
		le[i].Size = uint32(len(l.Data))
		curPos += le[i].Size
	}
	hdr := WadHeader{MagicSig: sig, LumpCount: uint32(len(lumps)), DirectoryStart: curPos}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return errors.Wrap(err, "writing WAD header")
	}
	for _, l := range lumps {
		if _, err := w.Write(l.Data); err != nil {
			return errors.Wrapf(err, "writing lump %s", l.Name)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, le); err != nil {
		return errors.Wrap(err, "writing WAD directory")
	}
	return nil
}

// LevelLumps encodes a level in Doom format: the marker followed by THINGS,
// LINEDEFS, SIDEDEFS, VERTEXES and SECTORS
func LevelLumps(snap *mapdoc.Snapshot) ([]Lump, error) {
	things := make([]Thing, len(snap.Things))
	for i, t := range snap.Things {
		if !fitsInt16(t.X, t.Y, t.Angle, t.Type, t.Flags) {
			return nil, errors.Wrapf(ErrOutOfRange, "thing %d", i)
		}
		things[i] = Thing{XPos: int16(t.X), YPos: int16(t.Y), Angle: int16(t.Angle),
			Type: int16(t.Type), Flags: int16(t.Flags)}
	}
	lines := make([]Linedef, len(snap.Linedefs))
	for i, l := range snap.Linedefs {
		right, rok := sideField(l.Right)
		left, lok := sideField(l.Left)
		if !rok || !lok || !fitsUint16(l.StartVertex, l.EndVertex, l.Flags, l.Action, l.Tag) {
			return nil, errors.Wrapf(ErrOutOfRange, "linedef %d", i)
		}
		lines[i] = Linedef{
			StartVertex: uint16(l.StartVertex),
			EndVertex:   uint16(l.EndVertex),
			Flags:       uint16(l.Flags),
			Action:      uint16(l.Action),
			Tag:         uint16(l.Tag),
			FrontSdef:   right,
			BackSdef:    left,
		}
	}
	sides := make([]Sidedef, len(snap.Sidedefs))
	for i, s := range snap.Sidedefs {
		if !fitsInt16(s.XOffset, s.YOffset, s.Sector) {
			return nil, errors.Wrapf(ErrOutOfRange, "sidedef %d", i)
		}
		sides[i] = Sidedef{XOffset: int16(s.XOffset), YOffset: int16(s.YOffset),
			UpName: lumpName(s.Upper), LoName: lumpName(s.Lower),
			MidName: lumpName(s.Middle), Sector: uint16(int16(s.Sector))}
	}
	verts := make([]Vertex, len(snap.Vertices))
	for i, v := range snap.Vertices {
		if !fitsInt16(v.X, v.Y) {
			return nil, errors.Wrapf(ErrOutOfRange, "vertex %d", i)
		}
		verts[i] = Vertex{XPos: int16(v.X), YPos: int16(v.Y)}
	}
	sectors := make([]Sector, len(snap.Sectors))
	for i, s := range snap.Sectors {
		if !fitsInt16(s.FloorHeight, s.CeilHeight) || !fitsUint16(s.LightLevel, s.Special, s.Tag) {
			return nil, errors.Wrapf(ErrOutOfRange, "sector %d", i)
		}
		sectors[i] = Sector{FloorHeight: int16(s.FloorHeight), CeilHeight: int16(s.CeilHeight),
			FloorName: lumpName(s.FloorName), CeilName: lumpName(s.CeilName),
			LightLevel: uint16(s.LightLevel), Special: uint16(s.Special), Tag: uint16(s.Tag)}
	}
	return []Lump{
		{Name: snap.Name},
		{Name: "THINGS", Data: encode(things)},
		{Name: "LINEDEFS", Data: encode(lines)},
		{Name: "SIDEDEFS", Data: encode(sides)},
		{Name: "VERTEXES", Data: encode(verts)},
		{Name: "SECTORS", Data: encode(sectors)},
	}, nil
}

func encode(data interface{}) []byte {
	var buf bytes.Buffer
	// writes to bytes.Buffer of fixed-size records do not fail
	binary.Write(&buf, binary.LittleEndian, data)
	return buf.Bytes()
}

func lumpName(s string) [8]byte {
	var b [8]byte
	copy(b[:], s)
	return b
}

func sideField(idx int) (uint16, bool) {
	if idx == mapdoc.NoSide {
		return SIDEDEF_NONE, true
	}
	if idx < 0 || idx >= SIDEDEF_NONE {
		return 0, false
	}
	return uint16(idx), true
}

func fitsInt16(vals ...int) bool {
	for _, v := range vals {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return false
		}
	}
	return true
}

func fitsUint16(vals ...int) bool {
	for _, v := range vals {
		if v < 0 || v > math.MaxUint16 {
			return false
		}
	}
	return true
}
