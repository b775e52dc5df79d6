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

package main

import (
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vigilantdoomer/vigilantedit/bsp"
	"github.com/vigilantdoomer/vigilantedit/wad"
)

// levelReport is the outcome of building one level. err is set when the
// level could not be built, log holds everything to be printed for it.
type levelReport struct {
	name  string
	log   *MiniLogger
	level *bsp.Level
	err   error
}

// BuildLevels builds levels in parallel, at most config.WorkerCount() at a
// time. Reports come back in the order of levels. Only a failure to read the
// wad aborts the whole run, a level with broken geometry or missing lumps is
// reported and skipped.
func BuildLevels(f *wad.File, levels []wad.LevelInfo, opts bsp.Options) ([]*levelReport, error) {
	reports := make([]*levelReport, len(levels))
	var bar *pb.ProgressBar
	if config.Progress && len(levels) > 1 {
		bar = pb.New(len(levels)).Prefix("Levels ")
		bar.Output = os.Stderr
		bar.SetWidth(80)
		bar.Start()
	}
	var g errgroup.Group
	g.SetLimit(config.WorkerCount())
	for i, info := range levels {
		i, info := i, info
		g.Go(func() error {
			rep, err := BuildLevel(f, info, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	err := g.Wait()
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func BuildLevel(f *wad.File, info wad.LevelInfo, opts bsp.Options) (*levelReport, error) {
	rep := &levelReport{
		name:  info.Name,
		log:   CreateMiniLogger(),
		level: bsp.NewLevel(opts),
	}
	doc, err := f.Load(info)
	if err != nil {
		if errors.Is(err, wad.ErrMissingLump) {
			rep.err = err
			rep.log.Error("Level %s skipped: %s\n", info.Name, err)
			return rep, nil
		}
		return nil, err
	}
	vertices, linedefs, sidedefs, sectors := doc.Counts()
	rep.log.Verbose(1, "Loaded %d vertices, %d linedefs, %d sidedefs, %d sectors.\n",
		vertices, linedefs, sidedefs, sectors)

	start := time.Now()
	if err := rep.level.Build(doc); err != nil {
		rep.err = err
		rep.log.Error("Could not build %s: %s\n", info.Name, err)
		return rep, nil
	}
	st := rep.level.Stats()
	rep.log.Printf("Created %d subsectors, %d nodes. Got %d segs. Split segs %d times.\n",
		st.Subsectors, st.Nodes, st.Segs, st.Splits)
	rep.log.Verbose(1, "Initial segs %d, leaves %d (%d empty).\n", st.InitialSegs,
		st.Leaves, st.EmptyLeaves)
	rep.log.Verbose(1, "Height of front and back subtrees = (%d,%d)\n",
		st.FrontHeight, st.BackHeight)
	bm := rep.level.Blockmap()
	rep.log.Printf("Blockmap is %dx%d blocks with origin at (%d,%d).\n", bm.Width,
		bm.Height, bm.OriginX, bm.OriginY)
	rep.log.Printf("Nodes took %s\n", time.Since(start))
	return rep, nil
}
