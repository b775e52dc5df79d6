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

// Package bsp compiles a map snapshot into a BSP tree, a blockmap and a list
// of subsectors.
package bsp

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidGeometry is returned when a linedef references a vertex that
	// does not exist
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrDepthExceeded is returned when the tree gets deeper than DepthLimit
	ErrDepthExceeded = errors.New("BSP depth limit exceeded")
	// ErrSplitFailure means a seg classified as spanning could not be cut
	// by the partition line
	ErrSplitFailure = errors.New("seg split failed")
)
