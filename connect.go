/*
 * connect.go, part of gombuild.
 *
 * Copyright 2026 The gombuild authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mbuild

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Connect joins the ports a and b. The owner of b, with its whole subtree, is rotated so that
// b points against a, and translated so the locations of both ports coincide. Then both
// ports are marked as occupied and a bond is added between their anchors.
// Nothing is changed if an error is returned.
func Connect(a, b *Port) error {
	if a == nil || b == nil {
		return portErrorf("Connect", "nil port")
	}
	if a == b {
		return portErrorf("Connect", "port %s can't be connected to itself", a.name)
	}
	if a.occupied || b.occupied {
		return portErrorf("Connect", "port %s or %s is already occupied", a.name, b.name)
	}
	if a.owner == nil || b.owner == nil {
		return portErrorf("Connect", "port %s or %s was removed from its compound", a.name, b.name)
	}
	mobile := b.owner
	if mobile.Contains(a.anchor) {
		return portErrorf("Connect", "port %s is anchored in %s, which is moved by the connection", a.name, mobile.name)
	}
	if a.anchor.BondedTo(b.anchor) != nil {
		return StructureErrorf("Connect", "%s and %s are already bonded", a.anchor.name, b.anchor.name)
	}
	R := RotatorBetween(b.direction, r3.Scale(-1, a.direction))
	//b's location after the rotation must land on a's location.
	trans := r3.Sub(a.Location(), rowTimes(b.Location(), R))
	if err := mobile.transform(R, trans); err != nil {
		return ErrDecorate(err, "Connect")
	}
	a.occupied, b.occupied = true, true
	a.partner, b.partner = b, a
	if _, err := AddBond(a.anchor, b.anchor, 1); err != nil {
		return ErrDecorate(err, "Connect")
	}
	return nil
}
