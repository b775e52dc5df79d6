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

// Package wad reads Doom WAD files: the lump directory, the level markers
// and the level lumps the node builder consumes.
package wad

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrNotWad        = errors.New("not a WAD file")
	ErrLevelNotFound = errors.New("level not found")
	ErrMissingLump   = errors.New("required level lump missing")
	ErrBadLump       = errors.New("malformed lump")
)

// Directory sizes beyond this are treated as a corrupt header
const MAX_LUMPS = 1 << 20

var LUMP_SORT_ORDER = []string{"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SEGS", "SSECTORS", "NODES", "SECTORS", "REJECT", "BLOCKMAP", "BEHAVIOR"}
var LUMP_MUSTEXIST = []string{"LINEDEFS", "SIDEDEFS", "VERTEXES", "SECTORS"}

// File is an opened WAD. Lumps are read on demand from the underlying
// reader.
type File struct {
	r      io.ReaderAt
	Header WadHeader
	Lumps  []LumpEntry
}

// LevelInfo locates the lumps of one level
type LevelInfo struct {
	Name   string
	Marker int // directory index of the marker lump
	Format int
	lumps  map[string]int
}

// ByteSliceBeforeTerm returns the part of b before the first zero byte
func ByteSliceBeforeTerm(b []byte) []byte {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return b
	}
	return b[:i]
}

// Open reads the header and the lump directory
func Open(r io.ReaderAt) (*File, error) {
	f := &File{r: r}
	err := binary.Read(io.NewSectionReader(r, 0, HEADER_SIZE), binary.LittleEndian,
		&f.Header)
	if err != nil {
		return nil, errors.Wrap(err, "reading WAD header")
	}
	if f.Header.MagicSig != IWAD_MAGIC_SIG && f.Header.MagicSig != PWAD_MAGIC_SIG {
		return nil, errors.Wrapf(ErrNotWad, "signature %08X", f.Header.MagicSig)
	}
	if f.Header.LumpCount > MAX_LUMPS {
		return nil, errors.Wrapf(ErrNotWad, "%d lumps in directory", f.Header.LumpCount)
	}
	f.Lumps = make([]LumpEntry, f.Header.LumpCount)
	dir := io.NewSectionReader(r, int64(f.Header.DirectoryStart),
		int64(f.Header.LumpCount)*LUMP_ENTRY_SIZE)
	if err := binary.Read(dir, binary.LittleEndian, f.Lumps); err != nil {
		return nil, errors.Wrapf(err, "reading directory of %d lumps at %d",
			f.Header.LumpCount, f.Header.DirectoryStart)
	}
	return f, nil
}

// IsIWAD reports whether the file has the IWAD signature
func (f *File) IsIWAD() bool {
	return f.Header.MagicSig == IWAD_MAGIC_SIG
}

func (f *File) LumpName(idx int) string {
	return string(ByteSliceBeforeTerm(f.Lumps[idx].Name[:]))
}

func isLevelLump(name string) bool {
	for _, s := range LUMP_SORT_ORDER {
		if s == name {
			return true
		}
	}
	return false
}

// Levels lists the level markers in directory order together with the lumps
// following each of them. A later duplicate of a lump within the same level
// wins.
func (f *File) Levels() []LevelInfo {
	var res []LevelInfo
	for i := 0; i < len(f.Lumps); i++ {
		name := ByteSliceBeforeTerm(f.Lumps[i].Name[:])
		if !IsALevel(name) {
			continue
		}
		info := LevelInfo{
			Name:   string(name),
			Marker: i,
			Format: FORMAT_DOOM,
			lumps:  make(map[string]int),
		}
		j := i + 1
		for ; j < len(f.Lumps); j++ {
			lname := f.LumpName(j)
			if !isLevelLump(lname) {
				break
			}
			info.lumps[lname] = j
			if lname == "BEHAVIOR" {
				info.Format = FORMAT_HEXEN
			}
		}
		res = append(res, info)
		i = j - 1
	}
	return res
}

// FindLevel returns the level with the given marker name
func (f *File) FindLevel(name string) (LevelInfo, error) {
	for _, info := range f.Levels() {
		if info.Name == name {
			return info, nil
		}
	}
	return LevelInfo{}, errors.Wrapf(ErrLevelNotFound, "%s", name)
}

// ReadLump reads the whole content of lump idx
func (f *File) ReadLump(idx int) ([]byte, error) {
	if idx < 0 || idx >= len(f.Lumps) {
		return nil, errors.Wrapf(ErrBadLump, "no lump #%d", idx)
	}
	e := f.Lumps[idx]
	buf := make([]byte, e.Size)
	sr := io.NewSectionReader(f.r, int64(e.FilePos), int64(e.Size))
	if _, err := io.ReadFull(sr, buf); err != nil {
		return nil, errors.Wrapf(err, "reading lump %s (#%d)", f.LumpName(idx), idx)
	}
	return buf, nil
}

// readRecords decodes lump idx into data, a slice of fixed-size records
// whose length the caller computed from the lump size
func (f *File) readRecords(idx int, data interface{}) error {
	e := f.Lumps[idx]
	sr := io.NewSectionReader(f.r, int64(e.FilePos), int64(e.Size))
	if err := binary.Read(sr, binary.LittleEndian, data); err != nil {
		return errors.Wrapf(err, "decoding lump %s (#%d)", f.LumpName(idx), idx)
	}
	return nil
}

// recordCount validates that lump idx holds whole records of recSize bytes
func (f *File) recordCount(idx int, recSize int) (int, error) {
	size := int(f.Lumps[idx].Size)
	if size%recSize != 0 {
		return 0, errors.Wrapf(ErrBadLump, "%s: size %d is not a multiple of %d",
			f.LumpName(idx), size, recSize)
	}
	return size / recSize, nil
}
