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
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/vigilantdoomer/vigilantedit/bsp"
)

var buildFlags = []cli.Flag{
	cli.StringFlag{Name: "map, m", Value: "", Usage: "Build only this level (e.g. MAP01, E1M1)"},
	cli.IntFlag{Name: "algo, a", Value: PICKNODE_FIRST, Usage: "Partition selection: 0 first seg, 1 balanced"},
	cli.IntFlag{Name: "factor, f", Value: bsp.DefaultSplitFactor, Usage: "Seg split cost for balanced partitioning"},
	cli.IntFlag{Name: "leaf", Value: bsp.LeafThreshold, Usage: "Largest number of segs kept in a leaf without partitioning"},
	cli.IntFlag{Name: "threads, t", Value: 0, Usage: "Levels built simultaneously (0 = number of cores)"},
	cli.IntFlag{Name: "verbose, v", Value: 0, Usage: "Verbosity level"},
	cli.StringFlag{Name: "dump", Value: "", Usage: "Dump compiled trees and subsectors to this file"},
	cli.BoolFlag{Name: "no-progress", Usage: "Do not show progress bar"},
	cli.StringFlag{Name: "profile", Value: "", Usage: "Write CPU profile to this file"},
}

// FromContext fills config from command line. The first argument is the
// input file.
func (c *ProgramConfig) FromContext(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("You must specify an input file.")
	}
	if ctx.NArg() > 1 {
		return errors.Errorf("Unexpected arguments: %s", strings.Join(ctx.Args().Tail(), " "))
	}
	c.InputFileName = ctx.Args().First()
	c.MapName = strings.ToUpper(ctx.String("map"))
	c.PickNodeUser = ctx.Int("algo")
	if c.PickNodeUser != PICKNODE_FIRST && c.PickNodeUser != PICKNODE_BALANCED {
		return errors.Errorf("Invalid partition algorithm %d", c.PickNodeUser)
	}
	c.PickNodeFactor = ctx.Int("factor")
	if c.PickNodeFactor < 1 {
		return errors.Errorf("Seg split cost must be positive, got %d", c.PickNodeFactor)
	}
	c.LeafThreshold = ctx.Int("leaf")
	if c.LeafThreshold < 1 {
		return errors.Errorf("Leaf threshold must be positive, got %d", c.LeafThreshold)
	}
	c.Threads = ctx.Int("threads")
	if c.Threads < 0 {
		return errors.Errorf("Invalid number of threads %d", c.Threads)
	}
	c.VerbosityLevel = ctx.Int("verbose")
	c.DumpFile = ctx.String("dump")
	c.Progress = !ctx.Bool("no-progress")
	c.ProfilePath = ctx.String("profile")
	c.Profile = c.ProfilePath != ""
	return nil
}
