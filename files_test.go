/*
 * files_test.go, part of gombuild.
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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestXYZ(Te *testing.T) {
	mol := linear(Te, "mol", 4)
	S, err := mol.Flatten()
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteXYZ(&buf, S, "test\nchain"); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 || lines[0] != "4" || lines[1] != "test chain" {
		Te.Fatalf("unexpected XYZ output:\n%s", buf.String())
	}
	if !strings.Contains(lines[3], "1.500000") {
		Te.Errorf("positions should be written in A: %q", lines[3])
	}
	S2, err := ReadXYZ(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.EqualApprox(S.Positions, S2.Positions, 1e-6) || S2.Names[0] != "C" {
		Te.Errorf("read structure differs from the written one: %v", S2.Positions)
	}
	if _, err := ReadXYZ(strings.NewReader("3\n\nC 0 0 0\n")); err == nil {
		Te.Error("a truncated file was accepted")
	}
}

func TestXYZFileZstd(Te *testing.T) {
	dir := Te.TempDir()
	root, _ := NewCompound("root", NewParticle("Au", r3.Vec{X: 1}), NewParticle("Au", r3.Vec{Y: 1}))
	S, _ := root.Flatten()
	plain := filepath.Join(dir, "np.xyz")
	comp := filepath.Join(dir, "np.xyz.zst")
	if err := XYZFileWrite(plain, S); err != nil {
		Te.Fatal(err)
	}
	if err := XYZFileWrite(comp, S); err != nil {
		Te.Fatal(err)
	}
	want, err := os.ReadFile(plain)
	if err != nil {
		Te.Fatal(err)
	}
	raw, _ := os.ReadFile(comp)
	if bytes.Equal(raw, want) {
		Te.Error("the .zst file was not compressed")
	}
	f, err := NewFileReader(comp)
	if err != nil {
		Te.Fatal(err)
	}
	got, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		Te.Errorf("decompressed file differs:\n%s\n%s", got, want)
	}
	S2, err := XYZFileRead(comp)
	if err != nil {
		Te.Fatal(err)
	}
	if S2.Len() != 2 {
		Te.Errorf("expected 2 particles, got %d", S2.Len())
	}
}

func TestComponents(Te *testing.T) {
	root, _ := NewCompound("root")
	root.AddChild(linear(Te, "a", 3))
	root.AddChild(linear(Te, "b", 2))
	root.AddChild(NewParticle("X", r3.Vec{}))
	S, _ := root.Flatten()
	cc := S.Components()
	if len(cc) != 3 || len(cc[0]) != 3 || len(cc[1]) != 2 || cc[2][0] != 5 {
		Te.Errorf("wrong components %v", cc)
	}
	if S.IsPath() {
		Te.Error("three molecules are not a path")
	}
	bl := S.BondLengths()
	if len(bl) != 3 {
		Te.Fatalf("expected 3 bond lengths, got %d", len(bl))
	}
	for _, v := range bl {
		if !scalar.EqualWithinAbs(v, 0.15, 1e-12) {
			Te.Errorf("wrong bond length %f", v)
		}
	}
}
