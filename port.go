/*
 * port.go, part of gombuild.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Port is an open, directional, connection site. It belongs to a compound (its owner)
// and is anchored on one particle in the owner's subtree. The location of the port is
// Separation nm away from the anchor, along Direction.
type Port struct {
	name       string
	owner      *Compound
	anchor     *Compound
	direction  r3.Vec
	separation float64
	occupied   bool
	partner    *Port
}

// AddPort creates a port owned by C and anchored on the particle anchor, pointing along
// direction (which is normalized), with its location separation nm away from the anchor.
func (C *Compound) AddPort(name string, anchor *Compound, direction r3.Vec, separation float64) (*Port, error) {
	if anchor == nil || !anchor.particle {
		return nil, StructureErrorf("AddPort", "the anchor of port %s must be a particle", name)
	}
	if !C.Contains(anchor) {
		return nil, StructureErrorf("AddPort", "anchor %s is not in the subtree of %s", anchor.name, C.name)
	}
	norm := r3.Norm(direction)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, ConfigErrorf("AddPort", "invalid direction %v for port %s", direction, name)
	}
	if separation < 0 || math.IsNaN(separation) || math.IsInf(separation, 0) {
		return nil, ConfigErrorf("AddPort", "invalid separation %g for port %s", separation, name)
	}
	P := &Port{
		name:       name,
		owner:      C,
		anchor:     anchor,
		direction:  r3.Scale(1/norm, direction),
		separation: separation,
	}
	C.ports = append(C.ports, P)
	return P, nil
}

// Name returns the label of the port.
func (P *Port) Name() string { return P.name }

// Owner returns the compound that owns the port, or nil if the port was dropped from its tree.
func (P *Port) Owner() *Compound { return P.owner }

// Anchor returns the particle the port is attached to.
func (P *Port) Anchor() *Compound { return P.anchor }

// Direction returns the unit vector the port points along.
func (P *Port) Direction() r3.Vec { return P.direction }

// Separation returns the distance between the anchor and the port location.
func (P *Port) Separation() float64 { return P.separation }

// Location returns the point in space where the port sits.
func (P *Port) Location() r3.Vec {
	return r3.Add(P.anchor.pos, r3.Scale(P.separation, P.direction))
}

// Occupied returns true if the port has already been connected.
func (P *Port) Occupied() bool { return P.occupied }

// Partner returns the port P was connected to, or nil.
func (P *Port) Partner() *Port { return P.partner }

func (P *Port) String() string {
	return fmt.Sprintf("port %s on %s dir: (%.3f, %.3f, %.3f) occupied: %t", P.name, P.anchor.name, P.direction.X, P.direction.Y, P.direction.Z, P.occupied)
}

// Ports returns the ports owned by C. The returned slice must not be modified.
func (C *Compound) Ports() []*Port {
	return C.ports
}

// Port returns the first port named name in C's subtree, searching in pre-order, or nil.
func (C *Compound) Port(name string) *Port {
	for _, p := range C.AllPorts() {
		if p.name == name {
			return p
		}
	}
	return nil
}

// AllPorts returns every port owned by C or by any compound in its subtree, in pre-order.
func (C *Compound) AllPorts() []*Port {
	ret := make([]*Port, 0, len(C.ports))
	return C.appendPorts(ret, false)
}

// AvailablePorts returns the unoccupied ports in C's subtree, in pre-order.
func (C *Compound) AvailablePorts() []*Port {
	ret := make([]*Port, 0, len(C.ports))
	return C.appendPorts(ret, true)
}

func (C *Compound) appendPorts(ret []*Port, free bool) []*Port {
	for _, p := range C.ports {
		if free && p.occupied {
			continue
		}
		ret = append(ret, p)
	}
	for _, v := range C.children {
		ret = v.appendPorts(ret, free)
	}
	return ret
}
