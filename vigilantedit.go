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

// -- This file is where the program entry is.
// VigilantEdit loads Doom maps from WAD files and compiles their geometry
// into a BSP tree, a blockmap and subsectors.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/vigilantdoomer/vigilantedit/wad"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		Log.Error("%s\n", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "vigilantedit"
	app.Usage = "Doom map node builder"
	app.Version = VERSION

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Aliases:   []string{"b"},
			Usage:     "Build BSP tree, blockmap and subsectors for levels of a wad",
			ArgsUsage: "file.wad",
			Flags:     buildFlags,
			Action:    buildAction,
		},
		{
			Name:      "levels",
			Aliases:   []string{"l"},
			Usage:     "List levels in a wad",
			ArgsUsage: "file.wad",
			Action:    levelsAction,
		},
	}
	return app
}

func openWad(fileName string) (*os.File, *wad.File, error) {
	fileName, _ = filepath.Abs(fileName)
	fin, err := os.Open(fileName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "An error has occured while trying to read %s", fileName)
	}
	f, err := wad.Open(fin)
	if err != nil {
		fin.Close()
		return nil, nil, errors.Wrapf(err, "Couldn't read %s", fileName)
	}
	return fin, f, nil
}

func buildAction(c *cli.Context) error {
	timeStart := time.Now()
	config = defaultConfig()
	if err := config.FromContext(c); err != nil {
		return err
	}
	PrintBanner()

	if config.Profile {
		f, err := os.Create(config.ProfilePath)
		if err != nil {
			Log.Printf("Could not create CPU profile: %s\n", err.Error())
		} else {
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				Log.Printf("Could not start CPU profile: %s\n", err.Error())
			} else {
				defer pprof.StopCPUProfile()
			}
		}
	}

	fin, f, err := openWad(config.InputFileName)
	if err != nil {
		return err
	}
	defer fin.Close()
	if f.IsIWAD() {
		Log.Printf("The input file is an IWAD\n")
	} else {
		Log.Printf("The input file is a PWAD\n")
	}
	Log.Verbose(1, "The directory contains %d lumps and starts at %d byte offset\n",
		f.Header.LumpCount, f.Header.DirectoryStart)

	levels := f.Levels()
	if config.MapName != "" {
		info, err := f.FindLevel(config.MapName)
		if err != nil {
			return err
		}
		levels = []wad.LevelInfo{info}
	}
	if len(levels) == 0 {
		return errors.Errorf("No levels found in %s", config.InputFileName)
	}
	Log.Verbose(1, "Building %d levels using %d threads\n", len(levels),
		config.WorkerCount())

	reports, err := BuildLevels(f, levels, config.BuildOptions())
	if err != nil {
		return err
	}
	failed := 0
	for _, rep := range reports {
		Log.Merge(rep.log, fmt.Sprintf("Processing level %s:\n", rep.name))
		if rep.err != nil {
			failed++
		}
	}
	if config.DumpFile != "" {
		if err := DumpLevels(config.DumpFile, reports); err != nil {
			return err
		}
		Log.Printf("Dumped compiled levels to %s\n", config.DumpFile)
	}
	Log.Printf("Total time: %s\n", time.Since(timeStart))
	if failed > 0 {
		return errors.Errorf("%d of %d levels failed to build", failed, len(reports))
	}
	return nil
}

func levelsAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("You must specify an input file.")
	}
	fin, f, err := openWad(c.Args().First())
	if err != nil {
		return err
	}
	defer fin.Close()
	for _, info := range f.Levels() {
		format := "Doom"
		if info.Format == wad.FORMAT_HEXEN {
			format = "Hexen"
		}
		Log.Printf("%-6s %s format, marker at lump #%d\n", info.Name, format, info.Marker)
	}
	return nil
}
