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
	"regexp"
)

// Both brought in accordance with Prboom-Plus 2.6.1um map name ranges, except
// that E1M0x is possible
var MAP_SEQUEL *regexp.Regexp = regexp.MustCompile(`^MAP[0-9][0-9]$`)
var MAP_ExMx *regexp.Regexp = regexp.MustCompile(`^E[1-9]M[0-9][0-9]?$`)

const (
	FORMAT_DOOM = iota
	FORMAT_HEXEN
)

const IWAD_MAGIC_SIG = uint32(0x44415749) // ASCII - 'IWAD'
const PWAD_MAGIC_SIG = uint32(0x44415750) // ASCII - 'PWAD'

// On-disk record sizes
const (
	HEADER_SIZE        = 12
	LUMP_ENTRY_SIZE    = 16
	VERTEX_SIZE        = 4
	DOOM_LINEDEF_SIZE  = 14
	HEXEN_LINEDEF_SIZE = 16
	SIDEDEF_SIZE       = 30
	SECTOR_SIZE        = 26
	DOOM_THING_SIZE    = 10
	HEXEN_THING_SIZE   = 20
)

// SIDEDEF_NONE in a linedef side field means there is no sidedef
const SIDEDEF_NONE = 0xFFFF

type WadHeader struct {
	MagicSig       uint32
	LumpCount      uint32
	DirectoryStart uint32
}

type LumpEntry struct {
	FilePos uint32
	Size    uint32
	Name    [8]byte
}

type Vertex struct {
	XPos int16
	YPos int16
}

// Doom/Heretic linedef format
type Linedef struct {
	StartVertex uint16
	EndVertex   uint16
	Flags       uint16
	Action      uint16
	Tag         uint16
	FrontSdef   uint16
	BackSdef    uint16 // SIDEDEF_NONE for one-sided line
}

type HexenLinedef struct {
	StartVertex uint16
	EndVertex   uint16
	Flags       uint16
	Action      uint8
	Args        [5]uint8 // first one acts as a tag
	FrontSdef   uint16
	BackSdef    uint16
}

type Sidedef struct {
	XOffset int16
	YOffset int16
	UpName  [8]byte
	LoName  [8]byte
	MidName [8]byte
	Sector  uint16
}

type Sector struct {
	FloorHeight int16
	CeilHeight  int16
	FloorName   [8]byte
	CeilName    [8]byte
	LightLevel  uint16
	Special     uint16
	Tag         uint16
}

type Thing struct {
	XPos  int16
	YPos  int16
	Angle int16
	Type  int16
	Flags int16
}

type HexenThing struct {
	TID            int16
	XPos           int16
	YPos           int16
	StartingHeight int16
	Angle          int16
	Type           int16
	Flags          int16
	Action         uint8
	Args           [5]byte
}

// IsALevel reports whether lumpName is a level marker such as MAP02 or E3M1
func IsALevel(lumpName []byte) bool {
	return MAP_SEQUEL.Match(lumpName) || MAP_ExMx.Match(lumpName)
}
