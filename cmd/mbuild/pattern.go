/*
 * pattern.go, part of gombuild.
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

	"github.com/mathewaa/gombuild/config"
	"github.com/mathewaa/gombuild/pattern"
	"github.com/spf13/cobra"
)

func newPatternCmd(opts *rootOptions) *cobra.Command {
	p := config.PatternSection{N: 5, M: 5}
	var seed uint64
	var plotname string
	cmd := &cobra.Command{
		Use:       "pattern grid|random",
		Short:     "Print or plot the points of a 2D pattern",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Kind = args[0]
			pat, err := withSeed(cmd, p, seed).Pattern()
			if err != nil {
				return err
			}
			points, err := pat.Points()
			if err != nil {
				return err
			}
			if plotname != "" {
				opts.log.Info("plotting pattern", "pattern", pat, "file", plotname)
				return pattern.Plot(points, fmt.Sprint(pat), plotname)
			}
			out := cmd.OutOrStdout()
			for i := 0; i < points.NVecs(); i++ {
				fmt.Fprintf(out, "%.6f %.6f\n", points.At(i, 0), points.At(i, 1))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&p.N, "n", p.N, "Grid rows, or number of random points")
	cmd.Flags().IntVar(&p.M, "m", p.M, "Grid columns")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random patterns")
	cmd.Flags().StringVar(&plotname, "plot", "", "Save a scatter plot of the pattern to this file (png, svg, pdf...)")
	return cmd
}
