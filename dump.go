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
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpLevels writes statistics, tree and subsectors of every built level
func DumpLevels(fileName string, reports []*levelReport) error {
	fout, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "Could not create dump file %s", fileName)
	}
	defer fout.Close()
	for _, rep := range reports {
		if rep.err != nil || !rep.level.Built() {
			continue
		}
		fmt.Fprintf(fout, "Level %s\n", rep.name)
		dumpConfig.Fdump(fout, rep.level.Stats(), rep.level.Root(), rep.level.Subsectors())
	}
	return nil
}
