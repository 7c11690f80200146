/*
 * json.go, part of gombuild.
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

package mbjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mbuild "github.com/mathewaa/gombuild"
	v3 "github.com/mathewaa/gombuild/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// An easily JSON-serializable error type.
type Error struct {
	deco     []string
	IsError  bool //If this is false (no error) all the other fields will be at their zero-values.
	InEncode bool //Was it while writing?
	InDecode bool //Was it while reading?
	Line     int  //the line of the stream where a decoding error happened, starting from 1
	Function string
	Message  string
}

// Error implements the error interface
func (J *Error) Error() string {
	if J.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", J.Function, J.Line, J.Message)
	}
	return fmt.Sprintf("%s: %s", J.Function, J.Message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Critical returns false. Errors in this package come from the streams, not from bugs.
func (J *Error) Critical() bool { return false }

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

func newError(decode bool, function string, line int, err error) *Error {
	return &Error{IsError: true, InDecode: decode, InEncode: !decode, Function: function, Line: line, Message: err.Error()}
}

// Header is the first line of a stream.
type Header struct {
	Title     string
	Particles int
	Bonds     int
	Ports     int
}

// Particle is a ready-to-serialize container for a particle.
type Particle struct {
	Name   string
	Coords []float64
}

type jSONBonds struct {
	Bonds [][2]int
}

// Port is a ready-to-serialize container for an open port.
type Port struct {
	Index     int
	Direction []float64
	Name      string
}

type jSONPorts struct {
	Ports []Port
}

// Encode writes S to out as JSON lines, with the given title in the header.
func Encode(S *mbuild.Structure, title string, out io.Writer) error {
	const funcname = "Encode"
	enc := json.NewEncoder(out)
	h := &Header{Title: title, Particles: S.Len(), Bonds: len(S.Bonds), Ports: len(S.Ports)}
	if err := enc.Encode(h); err != nil {
		return newError(false, funcname+"(header)", 0, err)
	}
	p := new(Particle)
	for i, name := range S.Names {
		p.Name = name
		p.Coords = S.Positions.RawRowView(i)
		if err := enc.Encode(p); err != nil {
			return newError(false, funcname+"(particles)", 0, err)
		}
	}
	jb := &jSONBonds{Bonds: S.Bonds}
	if jb.Bonds == nil {
		jb.Bonds = [][2]int{}
	}
	if err := enc.Encode(jb); err != nil {
		return newError(false, funcname+"(bonds)", 0, err)
	}
	jp := &jSONPorts{Ports: make([]Port, 0, len(S.Ports))}
	for _, v := range S.Ports {
		jp.Ports = append(jp.Ports, Port{Index: v.Index, Name: v.Name, Direction: []float64{v.Direction.X, v.Direction.Y, v.Direction.Z}})
	}
	if err := enc.Encode(jp); err != nil {
		return newError(false, funcname+"(ports)", 0, err)
	}
	return nil
}

// Decode reads a structure written by Encode from in, and returns it with its title.
func Decode(in io.Reader) (*mbuild.Structure, string, error) {
	const funcname = "Decode"
	stream := bufio.NewReader(in)
	lineno := 0
	next := func(v any) error {
		lineno++
		line, err := stream.ReadBytes('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			return err
		}
		return json.Unmarshal(line, v)
	}
	h := new(Header)
	if err := next(h); err != nil {
		return nil, "", newError(true, funcname, lineno, err)
	}
	if h.Particles < 1 {
		return nil, "", newError(true, funcname, lineno, fmt.Errorf("invalid number of particles %d", h.Particles))
	}
	//the header is not trusted for allocations, the particles must actually be there.
	prealloc := min(h.Particles, 1024)
	names := make([]string, 0, prealloc)
	pos := make([]r3.Vec, 0, prealloc)
	p := new(Particle)
	for i := 0; i < h.Particles; i++ {
		p.Coords = nil
		if err := next(p); err != nil {
			return nil, "", newError(true, funcname, lineno, err)
		}
		if len(p.Coords) != 3 {
			return nil, "", newError(true, funcname, lineno, fmt.Errorf("expected 3 coordinates, got %d", len(p.Coords)))
		}
		names = append(names, p.Name)
		pos = append(pos, r3.Vec{X: p.Coords[0], Y: p.Coords[1], Z: p.Coords[2]})
	}
	S := &mbuild.Structure{Names: names, Positions: v3.FromVecs(pos)}
	jb := new(jSONBonds)
	if err := next(jb); err != nil {
		return nil, "", newError(true, funcname, lineno, err)
	}
	if len(jb.Bonds) != h.Bonds {
		return nil, "", newError(true, funcname, lineno, fmt.Errorf("the header announces %d bonds, found %d", h.Bonds, len(jb.Bonds)))
	}
	seen := make(map[[2]int]bool, len(jb.Bonds))
	for _, b := range jb.Bonds {
		if b[0] < 0 || b[1] >= h.Particles || b[0] >= b[1] {
			return nil, "", newError(true, funcname, lineno, fmt.Errorf("invalid bond %v", b))
		}
		if seen[b] {
			return nil, "", newError(true, funcname, lineno, fmt.Errorf("duplicate bond %v", b))
		}
		seen[b] = true
	}
	S.Bonds = jb.Bonds
	jp := new(jSONPorts)
	if err := next(jp); err != nil {
		return nil, "", newError(true, funcname, lineno, err)
	}
	if len(jp.Ports) != h.Ports {
		return nil, "", newError(true, funcname, lineno, fmt.Errorf("the header announces %d ports, found %d", h.Ports, len(jp.Ports)))
	}
	for _, v := range jp.Ports {
		if v.Index < 0 || v.Index >= h.Particles || len(v.Direction) != 3 {
			return nil, "", newError(true, funcname, lineno, fmt.Errorf("invalid port %s", v.Name))
		}
		S.Ports = append(S.Ports, mbuild.PortSite{Index: v.Index, Name: v.Name, Direction: r3.Vec{X: v.Direction[0], Y: v.Direction[1], Z: v.Direction[2]}})
	}
	return S, h.Title, nil
}

// FileWrite writes S to the file name, zstd-compressed if the name ends in mbuild.ZstdSuffix.
func FileWrite(name string, S *mbuild.Structure, title string) error {
	f, err := mbuild.NewFileWriter(name)
	if err != nil {
		return err
	}
	if err := Encode(S, title, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FileRead reads a structure from the file name, decompressing it if the name ends in mbuild.ZstdSuffix.
func FileRead(name string) (*mbuild.Structure, string, error) {
	f, err := mbuild.NewFileReader(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}
