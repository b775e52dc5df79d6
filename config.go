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
	"runtime"

	"github.com/vigilantdoomer/vigilantedit/bsp"
)

const VERSION = "0.1.0"

// Partition selection, user option values
const (
	PICKNODE_FIRST = iota
	PICKNODE_BALANCED
)

type ProgramConfig struct {
	InputFileName  string
	MapName        string // build only this level if not empty
	PickNodeUser   int    // <- This is the actual config option
	PickNodeFactor int    // seg split cost, balanced partitioning only
	LeafThreshold  int
	Threads        int // levels built simultaneously, 0 = number of cores
	VerbosityLevel int
	DumpFile       string // where spew output of compiled levels goes
	Progress       bool
	Profile        bool
	ProfilePath    string
}

var config *ProgramConfig // global variable that will be accessed from other threads too

func defaultConfig() *ProgramConfig {
	return &(ProgramConfig{
		InputFileName:  "",
		MapName:        "",
		PickNodeUser:   PICKNODE_FIRST,
		PickNodeFactor: bsp.DefaultSplitFactor,
		LeafThreshold:  bsp.LeafThreshold,
		Threads:        0,
		VerbosityLevel: 0,
		DumpFile:       "",
		Progress:       true,
		Profile:        false,
		ProfilePath:    "",
	})
}

func init() {
	// Initialize with defaults
	config = defaultConfig()
}

func PolicyFromOption(userOption int) bsp.Policy {
	switch userOption {
	case PICKNODE_FIRST:
		{
			return bsp.PolicyFirst
		}
	case PICKNODE_BALANCED:
		{
			return bsp.PolicyBalanced
		}
	default:
		{
			panic("Invalid argument")
		}
	}
}

// BuildOptions derives node builder options from the configuration
func (c *ProgramConfig) BuildOptions() bsp.Options {
	return bsp.Options{
		Policy:        PolicyFromOption(c.PickNodeUser),
		SplitFactor:   c.PickNodeFactor,
		LeafThreshold: c.LeafThreshold,
	}
}

// WorkerCount returns how many levels may be built at the same time
func (c *ProgramConfig) WorkerCount() int {
	if c.Threads > 0 {
		return c.Threads
	}
	n := runtime.NumCPU()
	if n > 16 {
		n = 16
	}
	return n
}

func PrintBanner() {
	Log.Printf("VigilantEdit ver %s\n", VERSION)
	Log.Printf("Copyright (c)   2022-2026 VigilantDoomer\n")
	Log.Printf("Node builder ideas from BSP v5.2 by Colin Reed, Lee Killough and\n")
	Log.Printf("other contributors to BSP (program), distributed under the terms of\n")
	Log.Printf(" GNU General Public License v2.\n")
	Log.Printf("\n")
}
