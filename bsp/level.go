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
	"sync"

	"github.com/pkg/errors"

	"github.com/vigilantdoomer/vigilantedit/mapdoc"
)

// Source provides a consistent copy of the map. *mapdoc.Document is one.
type Source interface {
	Snapshot() *mapdoc.Snapshot
}

// Options control partition picking. The zero value picks the first seg and
// uses LeafThreshold.
type Options struct {
	Policy        Policy
	SplitFactor   int // PolicyBalanced only, DefaultSplitFactor if 0
	LeafThreshold int // LeafThreshold if 0
}

func (o Options) splitFactor() int {
	if o.SplitFactor <= 0 {
		return DefaultSplitFactor
	}
	return o.SplitFactor
}

func (o Options) leafThreshold() int {
	if o.LeafThreshold <= 0 {
		return LeafThreshold
	}
	return o.LeafThreshold
}

// Stats describes the last successful build
type Stats struct {
	InitialSegs int
	Segs        int
	Splits      int
	Nodes       int
	Leaves      int
	EmptyLeaves int
	Subsectors  int
	Height      int
	FrontHeight int
	BackHeight  int
}

type compiled struct {
	segs       []Seg
	root       *Node
	blockmap   *Blockmap
	subsectors []Subsector
	stats      Stats
}

// Level owns the result of compiling one map. Only one Build runs at a time;
// readers see either the previous result or the new one, never a mix.
type Level struct {
	opts    Options
	buildMu sync.Mutex
	mu      sync.RWMutex
	result  *compiled
}

func NewLevel(opts Options) *Level {
	return &Level{opts: opts}
}

// Build compiles src from scratch. On error nothing is published and the
// previous result, if any, stays visible.
func (l *Level) Build(src Source) error {
	l.buildMu.Lock()
	defer l.buildMu.Unlock()
	snap := src.Snapshot()
	res, err := compile(snap, l.opts)
	if err != nil {
		return errors.Wrapf(err, "building %s", snap.Name)
	}
	l.mu.Lock()
	l.result = res
	l.mu.Unlock()
	return nil
}

func compile(snap *mapdoc.Snapshot, opts Options) (*compiled, error) {
	segs, err := NewSegs(snap.Vertices, snap.Linedefs)
	if err != nil {
		return nil, err
	}
	b := newTreeBuilder(segs, opts)
	all := make([]int, len(segs))
	for i := range all {
		all[i] = i
	}
	root, err := b.build(all, 0)
	if err != nil {
		return nil, err
	}
	bm, err := NewBlockmap(snap.Vertices, snap.Linedefs)
	if err != nil {
		return nil, err
	}
	subs := extractSubsectors(root, b.pool, snap)
	res := &compiled{
		segs:       b.pool,
		root:       root,
		blockmap:   bm,
		subsectors: subs,
	}
	res.stats = collectStats(root)
	res.stats.InitialSegs = len(segs)
	res.stats.Segs = len(b.pool)
	res.stats.Splits = b.splits
	res.stats.Subsectors = len(subs)
	return res, nil
}

func collectStats(root *Node) Stats {
	var st Stats
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			st.Leaves++
			if n.Kind == EmptyLeaf {
				st.EmptyLeaves++
			}
			return
		}
		st.Nodes++
		walk(n.Front)
		walk(n.Back)
	}
	walk(root)
	st.Height = height(root)
	if !root.IsLeaf() {
		st.FrontHeight = height(root.Front)
		st.BackHeight = height(root.Back)
	}
	return st
}

func (l *Level) current() *compiled {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.result
}

// Built reports whether a build has succeeded
func (l *Level) Built() bool {
	return l.current() != nil
}

// Root returns a copy of the tree, nil before the first successful build.
// Changing it does not affect the published result.
func (l *Level) Root() *Node {
	if res := l.current(); res != nil {
		return res.root.clone()
	}
	return nil
}

// Subsectors returns copies of the published subsectors
func (l *Level) Subsectors() []Subsector {
	res := l.current()
	if res == nil {
		return nil
	}
	subs := make([]Subsector, len(res.subsectors))
	for i, ss := range res.subsectors {
		subs[i] = ss
		subs[i].Segs = append([]int(nil), ss.Segs...)
	}
	return subs
}

// Blockmap returns the published blockmap. It is shared between readers,
// treat it as read-only. Its lookups return copies.
func (l *Level) Blockmap() *Blockmap {
	if res := l.current(); res != nil {
		return res.blockmap
	}
	return nil
}

// Segments returns the seg pool: initial segs first, then split fragments
func (l *Level) Segments() []Seg {
	if res := l.current(); res != nil {
		return append([]Seg(nil), res.segs...)
	}
	return nil
}

func (l *Level) Stats() Stats {
	if res := l.current(); res != nil {
		return res.stats
	}
	return Stats{}
}

// LocateSubsector walks the tree to the leaf containing p. Points on a
// partition line go to the front. ok is false before a build and for empty
// leaves.
func (l *Level) LocateSubsector(p Point) (int, bool) {
	res := l.current()
	if res == nil {
		return -1, false
	}
	n := res.root
	for !n.IsLeaf() {
		if n.Partition.Classify(p) >= -Epsilon {
			n = n.Front
		} else {
			n = n.Back
		}
	}
	if n.Subsector < 0 {
		return -1, false
	}
	return n.Subsector, true
}
