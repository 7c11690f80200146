/*
 * doc.go, part of gombuild.
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

/*
Package mbuild is the main package of the gombuild library. It provides a hierarchical
compound structure for molecules, directional ports to join compounds together, bonds,
rigid transformations, and the flattening of a compound into plain arrays of positions,
bonds and open ports that can be handed to a renderer or written to disk.

	**gombuild Capabilities**

	Builds molecules as trees of Compounds. Leaves are particles with a position,
	internal nodes group other compounds. Positions of internal nodes are derived
	from their leaves.

	Joins compounds through Ports. Connect rotates and translates the callee compound
	so both ports face each other, and records a Bond between the anchoring particles.

	Translates and rotates whole subtrees. Transformations are all-or-nothing: if
	any of the new coordinates is invalid, no particle moves.

	Flattens a compound into positions (a v3.Matrix), index pairs for bonds and
	(index, direction) pairs for the ports still open.

	Analyzes the bond graph (connected components) with gonum's graph packages.

	Writes XYZ files, optionally zstd-compressed.

Patterns to place repeated sub-structures live in the pattern sub-package, and the
prebuilt assemblies (alkane chains, monolayers, tethered nanoparticles) in the
examples sub-package.

Lengths are in nm. The XYZ writer converts them to A.
*/
package mbuild

// Version is the version of the gombuild library and of the mbuild tool.
const Version = "0.1.0"
