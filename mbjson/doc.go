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

// Package mbjson implements serialization and unserialization of flattened
// gombuild structures as JSON lines. It is meant for handing a built system to
// an independent program (a renderer, an analysis script) which can be written
// in any language able to read JSON, for instance via UNIX pipes.
//
// A stream contains one header line, one line per particle (name and
// coordinates, in nm), one line with all the bonds and one line with all
// the open ports.
package mbjson
