/*
 * config.go, part of gombuild.
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

// Package config reads the YAML files that describe an assembly for the
// mbuild tool, and converts them to the configuration structures of the
// examples package.
//
// A minimal file:
//
//	assembly: monolayer
//	workers: 4
//	output: sam.xyz.zst
//	monolayer:
//	  pattern: {kind: random, n: 40, seed: 3}
//	  tile_x: 2
//	  tile_y: 2
//	  chain_length: 12
//
// Every field not given keeps its default value.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	mbuild "github.com/mathewaa/gombuild"
	"github.com/mathewaa/gombuild/examples"
	"github.com/mathewaa/gombuild/internal/logging"
	"github.com/mathewaa/gombuild/pattern"
	"gopkg.in/yaml.v3"
)

// Assemblies that a File can describe.
const (
	AssemblyChain        = "chain"
	AssemblyMonolayer    = "monolayer"
	AssemblyNanoparticle = "nanoparticle"
)

// File is the content of a build file.
type File struct {
	Assembly     string              `yaml:"assembly"`
	LogLevel     string              `yaml:"log_level"`
	Workers      int                 `yaml:"workers"`
	Output       string              `yaml:"output"`
	Chain        ChainSection        `yaml:"chain"`
	Monolayer    MonolayerSection    `yaml:"monolayer"`
	Nanoparticle NanoparticleSection `yaml:"nanoparticle"`
}

// ChainSection describes a chain, and the geometry of the chains in the other assemblies.
type ChainSection struct {
	N          int     `yaml:"n"`
	CapFront   bool    `yaml:"cap_front"`
	CapEnd     bool    `yaml:"cap_end"`
	BondLength float64 `yaml:"bond_length"`
	BondAngle  float64 `yaml:"bond_angle"`
	Name       string  `yaml:"name"`
}

// PatternSection describes a 2D pattern. Kind is "grid" (N by M points)
// or "random" (N points). Without a seed, random patterns change in every run.
type PatternSection struct {
	Kind string  `yaml:"kind"`
	N    int     `yaml:"n"`
	M    int     `yaml:"m"`
	Seed *uint64 `yaml:"seed"`
}

// SubstrateSection describes one substrate tile.
type SubstrateSection struct {
	SitesX  int     `yaml:"sites_x"`
	SitesY  int     `yaml:"sites_y"`
	Layers  int     `yaml:"layers"`
	Spacing float64 `yaml:"spacing"`
	Element string  `yaml:"element"`
}

type MonolayerSection struct {
	Pattern     PatternSection   `yaml:"pattern"`
	TileX       int              `yaml:"tile_x"`
	TileY       int              `yaml:"tile_y"`
	ChainLength int              `yaml:"chain_length"`
	Substrate   SubstrateSection `yaml:"substrate"`
}

type NanoparticleSection struct {
	Radius       float64 `yaml:"radius"`
	Chains       int     `yaml:"chains"`
	ChainLength  int     `yaml:"chain_length"`
	ShellDensity float64 `yaml:"shell_density"`
	Element      string  `yaml:"element"`
}

// Default returns a File with the default values of every builder.
func Default() *File {
	c := examples.DefaultChainConfig()
	s := examples.DefaultSubstrateConfig()
	m := examples.DefaultMonolayerConfig()
	n := examples.DefaultNanoparticleConfig()
	return &File{
		Assembly: AssemblyChain,
		LogLevel: "info",
		Workers:  1,
		Chain: ChainSection{
			N:          c.N,
			CapFront:   c.CapFront,
			CapEnd:     c.CapEnd,
			BondLength: c.BondLength,
			BondAngle:  c.BondAngle,
			Name:       c.Name,
		},
		Monolayer: MonolayerSection{
			Pattern:     PatternSection{Kind: "grid", N: 5, M: 5},
			TileX:       m.TileX,
			TileY:       m.TileY,
			ChainLength: m.ChainLength,
			Substrate: SubstrateSection{
				SitesX:  s.SitesX,
				SitesY:  s.SitesY,
				Layers:  s.Layers,
				Spacing: s.Spacing,
				Element: s.Element,
			},
		},
		Nanoparticle: NanoparticleSection{
			Radius:       n.Radius,
			Chains:       n.NChains,
			ChainLength:  n.ChainLength,
			ShellDensity: n.ShellDensity,
			Element:      n.Element,
		},
	}
}

// Load reads the YAML file path on top of the defaults, and validates the result.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document on top of the defaults, and validates the result.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, mbuild.ConfigErrorf("config.Parse", "%s", err.Error())
	}
	f.Assembly = strings.ToLower(strings.TrimSpace(f.Assembly))
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the fields used by the tool itself. The builder
// parameters are validated by the builders.
func (f *File) Validate() error {
	switch f.Assembly {
	case AssemblyChain, AssemblyMonolayer, AssemblyNanoparticle:
	default:
		return mbuild.ConfigErrorf("File.Validate", "unknown assembly %q", f.Assembly)
	}
	if f.Workers < 0 {
		return mbuild.ConfigErrorf("File.Validate", "invalid number of workers %d", f.Workers)
	}
	if _, err := logging.ParseLevel(f.LogLevel); err != nil {
		return mbuild.ConfigErrorf("File.Validate", "invalid log level %q", f.LogLevel)
	}
	return nil
}

// ToChainConfig returns the chain section as a builder configuration.
func (f *File) ToChainConfig(l *slog.Logger) *examples.ChainConfig {
	s := f.Chain
	return &examples.ChainConfig{
		N:          s.N,
		CapFront:   s.CapFront,
		CapEnd:     s.CapEnd,
		BondLength: s.BondLength,
		BondAngle:  s.BondAngle,
		Name:       s.Name,
		Logger:     l,
	}
}

// ToSubstrateConfig returns the substrate of the monolayer section as a builder configuration.
func (f *File) ToSubstrateConfig() *examples.SubstrateConfig {
	s := f.Monolayer.Substrate
	return &examples.SubstrateConfig{
		SitesX:  s.SitesX,
		SitesY:  s.SitesY,
		Layers:  s.Layers,
		Spacing: s.Spacing,
		Element: s.Element,
	}
}

// ToMonolayerConfig returns the monolayer section as a builder configuration.
// The chains take their geometry from the chain section.
func (f *File) ToMonolayerConfig(l *slog.Logger) (*examples.MonolayerConfig, error) {
	p, err := f.Monolayer.Pattern.Pattern()
	if err != nil {
		return nil, mbuild.ErrDecorate(err, "File.ToMonolayerConfig")
	}
	return &examples.MonolayerConfig{
		Pattern:     p,
		TileX:       f.Monolayer.TileX,
		TileY:       f.Monolayer.TileY,
		ChainLength: f.Monolayer.ChainLength,
		Substrate:   f.ToSubstrateConfig(),
		Chain:       f.ToChainConfig(l),
		Workers:     f.Workers,
		Logger:      l,
	}, nil
}

// ToNanoparticleConfig returns the nanoparticle section as a builder configuration.
// The chains take their geometry from the chain section.
func (f *File) ToNanoparticleConfig(l *slog.Logger) *examples.NanoparticleConfig {
	s := f.Nanoparticle
	return &examples.NanoparticleConfig{
		Radius:       s.Radius,
		NChains:      s.Chains,
		ChainLength:  s.ChainLength,
		ShellDensity: s.ShellDensity,
		Element:      s.Element,
		Chain:        f.ToChainConfig(l),
		Workers:      f.Workers,
		Logger:       l,
	}
}

// Pattern builds the pattern described.
func (p PatternSection) Pattern() (pattern.Pattern, error) {
	switch strings.ToLower(p.Kind) {
	case "grid":
		if p.N < 1 || p.M < 1 {
			return nil, mbuild.ConfigErrorf("PatternSection.Pattern", "invalid grid %dx%d", p.N, p.M)
		}
		return pattern.NewGrid2DPattern(p.N, p.M), nil
	case "random":
		if p.N < 1 {
			return nil, mbuild.ConfigErrorf("PatternSection.Pattern", "invalid number of points %d", p.N)
		}
		if p.Seed != nil {
			return pattern.NewRandom2DPattern(p.N, *p.Seed), nil
		}
		return pattern.NewRandom2DPattern(p.N), nil
	default:
		return nil, mbuild.ConfigErrorf("PatternSection.Pattern", "unknown pattern kind %q", p.Kind)
	}
}

// Build builds the assembly described by f.
func (f *File) Build(l *slog.Logger) (*mbuild.Compound, error) {
	var C *mbuild.Compound
	var err error
	switch f.Assembly {
	case AssemblyChain:
		C, err = examples.Chain(f.ToChainConfig(l))
	case AssemblyMonolayer:
		var c *examples.MonolayerConfig
		if c, err = f.ToMonolayerConfig(l); err == nil {
			C, err = examples.Monolayer(c)
		}
	case AssemblyNanoparticle:
		C, err = examples.TetheredNanoparticle(f.ToNanoparticleConfig(l))
	default:
		err = mbuild.ConfigErrorf("File.Build", "unknown assembly %q", f.Assembly)
	}
	if err != nil {
		return nil, mbuild.ErrDecorate(err, "File.Build")
	}
	return C, nil
}
