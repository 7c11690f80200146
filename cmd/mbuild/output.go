/*
 * output.go, part of gombuild.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	mbuild "github.com/mathewaa/gombuild"
	"github.com/mathewaa/gombuild/mbjson"
	v3 "github.com/mathewaa/gombuild/v3"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// outputOptions are the flags shared by the commands that build something.
type outputOptions struct {
	output  string
	clashes bool
}

func (o *outputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file (.xyz or .json, optionally followed by .zst). Without it, a summary is printed")
	cmd.Flags().BoolVar(&o.clashes, "clashes", false, "Report the closest approach between the top-level pieces")
}

// emit writes C to the output file or, if there is none, prints a summary to the
// command's output.
func (o *outputOptions) emit(cmd *cobra.Command, log *slog.Logger, C *mbuild.Compound) error {
	S, err := C.Flatten()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if o.output != "" {
		if err := writeStructure(o.output, S, C.Name()); err != nil {
			return err
		}
		log.Info("structure written", "file", o.output, "particles", S.Len(), "bonds", len(S.Bonds))
	} else {
		summary(out, C.Name(), S)
	}
	if o.clashes {
		closestPieces(out, C)
	}
	return nil
}

// writeStructure picks the format from the extension of path, ignoring
// a trailing compression suffix.
func writeStructure(path string, S *mbuild.Structure, title string) error {
	name := strings.TrimSuffix(path, mbuild.ZstdSuffix)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return mbuild.XYZFileWrite(path, S, title)
	case ".json", ".jsonl":
		return mbjson.FileWrite(path, S, title)
	default:
		return fmt.Errorf("can't tell the output format of %q: use .xyz or .json", path)
	}
}

func summary(out io.Writer, title string, S *mbuild.Structure) {
	fmt.Fprintf(out, "%s\n", title)
	fmt.Fprintf(out, "particles:  %d\n", S.Len())
	fmt.Fprintf(out, "bonds:      %d\n", len(S.Bonds))
	fmt.Fprintf(out, "open ports: %d\n", len(S.Ports))
	fmt.Fprintf(out, "molecules:  %d\n", len(S.Components()))
	if len(S.Bonds) > 0 {
		mean, sd := stat.MeanStdDev(S.BondLengths(), nil)
		if len(S.Bonds) == 1 {
			sd = 0
		}
		fmt.Fprintf(out, "bond length: %.4f +/- %.4f nm\n", mean, sd)
	}
}

// closestPieces prints the smallest distance between particles of different
// children of C. Bonded pieces show their bond length.
func closestPieces(out io.Writer, C *mbuild.Compound) {
	ch := C.Children()
	if len(ch) < 2 {
		fmt.Fprintln(out, "closest approach: single piece")
		return
	}
	coords := make([]*v3.Matrix, len(ch))
	for i, v := range ch {
		coords[i] = v.Coords()
	}
	best := math.Inf(1)
	var pair [2]*mbuild.Compound
	for i := range coords {
		for j := i + 1; j < len(coords); j++ {
			d, idx := mbuild.MinDistance(coords[i], coords[j])
			if d < best {
				best = d
				pair[0] = ch[i].Particles()[idx[0]]
				pair[1] = ch[j].Particles()[idx[1]]
			}
		}
	}
	p, q := pair[0].Position(), pair[1].Position()
	fmt.Fprintf(out, "closest approach: %.4f nm (%s at %.3f %.3f %.3f, %s at %.3f %.3f %.3f)\n", best,
		pair[0].Name(), p.X, p.Y, p.Z, pair[1].Name(), q.X, q.Y, q.Z)
}
