/*
 * build.go, part of gombuild.
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
	"github.com/mathewaa/gombuild/config"
	"github.com/mathewaa/gombuild/examples"
	"github.com/spf13/cobra"
)

func newChainCmd(opts *rootOptions) *cobra.Command {
	c := examples.DefaultChainConfig()
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Build a single alkane chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Logger = opts.log
			C, err := examples.Chain(c)
			if err != nil {
				return err
			}
			return out.emit(cmd, opts.log, C)
		},
	}
	cmd.Flags().IntVar(&c.N, "n", c.N, "Number of backbone beads")
	cmd.Flags().BoolVar(&c.CapFront, "cap-front", c.CapFront, "Cap the front of the chain")
	cmd.Flags().BoolVar(&c.CapEnd, "cap-end", c.CapEnd, "Cap the end of the chain")
	cmd.Flags().Float64Var(&c.BondLength, "bond-length", c.BondLength, "Bond length (nm)")
	cmd.Flags().Float64Var(&c.BondAngle, "bond-angle", c.BondAngle, "Backbone angle (degrees)")
	out.addFlags(cmd)
	return cmd
}

// patternFlags registers the flags that select a 2D pattern.
func patternFlags(cmd *cobra.Command, p *config.PatternSection, seed *uint64) {
	cmd.Flags().StringVar(&p.Kind, "pattern", p.Kind, "Pattern of attachment sites (grid or random)")
	cmd.Flags().IntVar(&p.N, "n", p.N, "Grid rows, or number of random points")
	cmd.Flags().IntVar(&p.M, "m", p.M, "Grid columns")
	cmd.Flags().Uint64Var(seed, "seed", 0, "Seed for random patterns. Without it every run differs")
}

// withSeed sets the seed of p if the flag was given.
func withSeed(cmd *cobra.Command, p config.PatternSection, seed uint64) config.PatternSection {
	if cmd.Flags().Changed("seed") {
		p.Seed = &seed
	}
	return p
}

func newMonolayerCmd(opts *rootOptions) *cobra.Command {
	c := examples.DefaultMonolayerConfig()
	s := examples.DefaultSubstrateConfig()
	p := config.PatternSection{Kind: "grid", N: 5, M: 5}
	var seed uint64
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "monolayer",
		Short: "Build a monolayer of chains grafted on a substrate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pat, err := withSeed(cmd, p, seed).Pattern()
			if err != nil {
				return err
			}
			c.Pattern = pat
			c.Substrate = s
			c.Workers = opts.workers
			c.Logger = opts.log
			C, err := examples.Monolayer(c)
			if err != nil {
				return err
			}
			return out.emit(cmd, opts.log, C)
		},
	}
	patternFlags(cmd, &p, &seed)
	cmd.Flags().IntVar(&c.TileX, "tile-x", c.TileX, "Substrate tiles along x")
	cmd.Flags().IntVar(&c.TileY, "tile-y", c.TileY, "Substrate tiles along y")
	cmd.Flags().IntVar(&c.ChainLength, "chain-length", c.ChainLength, "Beads per chain")
	cmd.Flags().IntVar(&s.SitesX, "sites-x", s.SitesX, "Surface sites per tile along x")
	cmd.Flags().IntVar(&s.SitesY, "sites-y", s.SitesY, "Surface sites per tile along y")
	cmd.Flags().IntVar(&s.Layers, "layers", s.Layers, "Substrate layers")
	out.addFlags(cmd)
	return cmd
}

func newNanoparticleCmd(opts *rootOptions) *cobra.Command {
	c := examples.DefaultNanoparticleConfig()
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "nanoparticle",
		Short: "Build a spherical nanoparticle with tethered chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Workers = opts.workers
			c.Logger = opts.log
			C, err := examples.TetheredNanoparticle(c)
			if err != nil {
				return err
			}
			return out.emit(cmd, opts.log, C)
		},
	}
	cmd.Flags().Float64VarP(&c.Radius, "radius", "r", c.Radius, "Radius of the particle (nm)")
	cmd.Flags().IntVar(&c.NChains, "chains", c.NChains, "Number of tethered chains")
	cmd.Flags().IntVar(&c.ChainLength, "chain-length", c.ChainLength, "Beads per chain")
	cmd.Flags().Float64Var(&c.ShellDensity, "density", c.ShellDensity, "Shell beads per nm^2")
	out.addFlags(cmd)
	return cmd
}
