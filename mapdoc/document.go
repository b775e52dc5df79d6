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

// Package mapdoc holds the map being edited: vertices, linedefs, sidedefs,
// sectors and things, guarded by a reader/writer lock.
package mapdoc

import (
	"sync"
)

// NoSide marks an absent linedef side
const NoSide = -1

type Vertex struct {
	X int
	Y int
}

type Linedef struct {
	StartVertex int
	EndVertex   int
	Right       int // front sidedef, NoSide if none
	Left        int // back sidedef, NoSide if none
	Flags       int
	Action      int
	Tag         int
}

// TwoSided reports whether the linedef has both sides
func (l Linedef) TwoSided() bool {
	return l.Right != NoSide && l.Left != NoSide
}

type Sidedef struct {
	XOffset int
	YOffset int
	Upper   string
	Lower   string
	Middle  string
	Sector  int
}

type Sector struct {
	FloorHeight int
	CeilHeight  int
	FloorName   string
	CeilName    string
	LightLevel  int
	Special     int
	Tag         int
}

type Thing struct {
	X     int
	Y     int
	Angle int
	Type  int
	Flags int
}

// Snapshot is a private, consistent copy of the document contents. Nothing
// else references its slices.
type Snapshot struct {
	Name     string
	Vertices []Vertex
	Linedefs []Linedef
	Sidedefs []Sidedef
	Sectors  []Sector
	Things   []Thing
}

// Document is a map shared between editing code and readers such as the
// node builder. Multiple readers or a single writer at a time.
type Document struct {
	mu       sync.RWMutex
	name     string
	vertices []Vertex
	linedefs []Linedef
	sidedefs []Sidedef
	sectors  []Sector
	things   []Thing
}

func New(name string) *Document {
	return &Document{name: name}
}

// FromSnapshot creates a document owning a copy of snap
func FromSnapshot(snap *Snapshot) *Document {
	doc := New(snap.Name)
	doc.vertices = append([]Vertex(nil), snap.Vertices...)
	doc.linedefs = append([]Linedef(nil), snap.Linedefs...)
	doc.sidedefs = append([]Sidedef(nil), snap.Sidedefs...)
	doc.sectors = append([]Sector(nil), snap.Sectors...)
	doc.things = append([]Thing(nil), snap.Things...)
	return doc
}

func (d *Document) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

// Snapshot copies the document under the read lock. The lock is released
// before return.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &Snapshot{
		Name:     d.name,
		Vertices: append([]Vertex(nil), d.vertices...),
		Linedefs: append([]Linedef(nil), d.linedefs...),
		Sidedefs: append([]Sidedef(nil), d.sidedefs...),
		Sectors:  append([]Sector(nil), d.sectors...),
		Things:   append([]Thing(nil), d.things...),
	}
}

// AddVertex appends a vertex and returns its index
func (d *Document) AddVertex(x, y int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vertices = append(d.vertices, Vertex{X: x, Y: y})
	return len(d.vertices) - 1
}

// MoveVertex changes vertex coordinates. Returns false if idx is out of
// range.
func (d *Document) MoveVertex(idx, x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if idx < 0 || idx >= len(d.vertices) {
		return false
	}
	d.vertices[idx] = Vertex{X: x, Y: y}
	return true
}

func (d *Document) AddLinedef(l Linedef) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.linedefs = append(d.linedefs, l)
	return len(d.linedefs) - 1
}

func (d *Document) AddSidedef(s Sidedef) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sidedefs = append(d.sidedefs, s)
	return len(d.sidedefs) - 1
}

func (d *Document) AddSector(s Sector) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sectors = append(d.sectors, s)
	return len(d.sectors) - 1
}

func (d *Document) AddThing(t Thing) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.things = append(d.things, t)
	return len(d.things) - 1
}

// Counts returns the number of vertices, linedefs, sidedefs and sectors
func (d *Document) Counts() (vertices, linedefs, sidedefs, sectors int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.vertices), len(d.linedefs), len(d.sidedefs), len(d.sectors)
}
