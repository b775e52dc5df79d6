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

// Split cuts a spanning seg where its line crosses part. Both fragments keep
// the linedef and side of s, get their own angle and length and have no
// partner. front is the fragment on the front side of part.
func Split(s Seg, part PartitionLine) (front Seg, back Seg, err error) {
	ds := part.Classify(s.Start)
	de := part.Classify(s.End)
	if relate(ds, de) != Spanning {
		return Seg{}, Seg{}, errors.Wrapf(ErrSplitFailure,
			"seg of linedef %d does not span the partition (%g, %g)",
			s.Linedef, ds, de)
	}
	ip, ok := s.Line().Intersect(part)
	if !ok {
		return Seg{}, Seg{}, errors.Wrapf(ErrSplitFailure,
			"no intersection for seg of linedef %d", s.Linedef)
	}
	first := newSeg(s.Start, ip, s.Linedef, s.Side)
	second := newSeg(ip, s.End, s.Linedef, s.Side)
	if ds > 0 {
		return first, second, nil
	}
	return second, first, nil
}
