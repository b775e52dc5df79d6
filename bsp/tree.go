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
	"github.com/pkg/errors"
)

const (
	// DepthLimit is the number of nested partitions after which the build
	// fails with ErrDepthExceeded
	DepthLimit = 64
	// LeafThreshold is the largest seg count that becomes a leaf without
	// further partitioning
	LeafThreshold = 3
)

// LeafKind tells why a node is a leaf
type LeafKind int

const (
	NotLeaf LeafKind = iota
	// EmptyLeaf has no segs and gets no subsector
	EmptyLeaf
	// SmallLeaf has no more than the leaf threshold segs
	SmallLeaf
	// ConvexLeaf holds more than the leaf threshold segs, none of whose
	// lines has other segs of the leaf on both sides
	ConvexLeaf
)

func (k LeafKind) String() string {
	switch k {
	case EmptyLeaf:
		return "empty"
	case SmallLeaf:
		return "small"
	case ConvexLeaf:
		return "convex"
	default:
		return "branch"
	}
}

// Node is either a branch (Partition set, two children) or a leaf (Segs,
// indices into the level seg pool). Subsector is the index of the leaf's
// subsector, -1 for branches and empty leaves.
type Node struct {
	Partition *PartitionLine
	Front     *Node
	Back      *Node
	FrontBox  BoundingBox
	BackBox   BoundingBox

	Segs      []int
	Kind      LeafKind
	Subsector int
}

func (n *Node) IsLeaf() bool {
	return n.Partition == nil
}

func newLeaf(segs []int, kind LeafKind) *Node {
	return &Node{Segs: segs, Kind: kind, Subsector: -1}
}

// treeBuilder owns the seg pool during a build. Split fragments are appended
// to the pool, existing entries are never changed.
type treeBuilder struct {
	pool          []Seg
	policy        Policy
	splitFactor   int
	leafThreshold int
	splits        int
}

func newTreeBuilder(segs []Seg, opts Options) *treeBuilder {
	pool := make([]Seg, len(segs), len(segs)+len(segs)/2)
	copy(pool, segs)
	return &treeBuilder{
		pool:          pool,
		policy:        opts.Policy,
		splitFactor:   opts.splitFactor(),
		leafThreshold: opts.leafThreshold(),
	}
}

func (b *treeBuilder) build(segs []int, depth int) (*Node, error) {
	if depth >= DepthLimit {
		return nil, errors.Wrapf(ErrDepthExceeded, "%d segs left at depth %d",
			len(segs), depth)
	}
	if len(segs) == 0 {
		return newLeaf(nil, EmptyLeaf), nil
	}
	if len(segs) <= b.leafThreshold {
		return newLeaf(segs, SmallLeaf), nil
	}

	pos, separating := b.pick(segs)
	part := b.pool[segs[pos]].Line()
	front, back, err := b.divide(segs, part)
	if err != nil {
		return nil, err
	}
	node := &Node{
		Partition: &part,
		FrontBox:  b.bbox(front),
		BackBox:   b.bbox(back),
		Subsector: -1,
	}
	node.Front, err = b.child(front, len(segs), separating, depth)
	if err != nil {
		return nil, err
	}
	node.Back, err = b.child(back, len(segs), separating, depth)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// child recurses into a side of a partition. When the parent set was convex
// the side holding all of it stays a leaf since no line of it divides
// anything.
func (b *treeBuilder) child(segs []int, parentLen int, separating bool, depth int) (*Node, error) {
	if !separating && len(segs) >= parentLen {
		return newLeaf(segs, ConvexLeaf), nil
	}
	return b.build(segs, depth+1)
}

// pick returns the position of the partition seg in segs and whether its
// line separates them
func (b *treeBuilder) pick(segs []int) (int, bool) {
	if b.policy == PolicyBalanced {
		return pickBalanced(b.pool, segs, b.splitFactor)
	}
	return pickFirst(b.pool, segs)
}

// divide sorts segs into front and back sets. Each set lists segs entirely
// on its side in input order, then fragments of split segs, then the segs
// lying on the partition, which go to both sets.
func (b *treeBuilder) divide(segs []int, part PartitionLine) ([]int, []int, error) {
	var front, back, frontCuts, backCuts, coincident []int
	for _, idx := range segs {
		switch Classify(b.pool[idx], part) {
		case OnFront:
			front = append(front, idx)
		case OnBack:
			back = append(back, idx)
		case Coincident:
			coincident = append(coincident, idx)
		case Spanning:
			f, r, err := Split(b.pool[idx], part)
			if err != nil {
				return nil, nil, err
			}
			b.pool = append(b.pool, f, r)
			frontCuts = append(frontCuts, len(b.pool)-2)
			backCuts = append(backCuts, len(b.pool)-1)
			b.splits++
		}
	}
	front = append(append(front, frontCuts...), coincident...)
	back = append(append(back, backCuts...), coincident...)
	return front, back, nil
}

func (b *treeBuilder) bbox(segs []int) BoundingBox {
	box := EmptyBox()
	for _, idx := range segs {
		box.Expand(b.pool[idx].Start)
		box.Expand(b.pool[idx].End)
	}
	return box
}

// clone copies the tree below n so the copy shares nothing with it
func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Partition != nil {
		part := *n.Partition
		c.Partition = &part
	}
	if n.Segs != nil {
		c.Segs = append([]int(nil), n.Segs...)
	}
	c.Front = n.Front.clone()
	c.Back = n.Back.clone()
	return &c
}

// height returns the number of levels below and including n
func height(n *Node) int {
	if n == nil || n.IsLeaf() {
		return 1
	}
	f := height(n.Front)
	r := height(n.Back)
	if f > r {
		return f + 1
	}
	return r + 1
}
