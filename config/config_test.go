/*
 * config_test.go, part of gombuild.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	mbuild "github.com/mathewaa/gombuild"
	"github.com/mathewaa/gombuild/examples"
	"github.com/mathewaa/gombuild/internal/logging"
	"github.com/mathewaa/gombuild/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	f, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
	assert.Equal(t, examples.DefaultChainConfig().N, f.ToChainConfig(nil).N)
	assert.Equal(t, examples.DefaultSubstrateConfig(), f.ToSubstrateConfig())
}

func TestLoadChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	doc := `
assembly: Chain
output: octane.xyz
chain:
  n: 8
  cap_front: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, AssemblyChain, f.Assembly)
	assert.Equal(t, "octane.xyz", f.Output)
	c := f.ToChainConfig(nil)
	assert.Equal(t, 8, c.N)
	assert.False(t, c.CapFront)
	assert.True(t, c.CapEnd)
	assert.InDelta(t, 0.154, c.BondLength, 1e-12)

	C, err := f.Build(logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 8, C.NumParticles())
	require.Len(t, C.AvailablePorts(), 1)
	assert.Equal(t, examples.FrontPort, C.AvailablePorts()[0].Name())
}

func TestMonolayerSection(t *testing.T) {
	doc := `
assembly: monolayer
workers: 3
chain:
  bond_length: 0.15
monolayer:
  pattern: {kind: random, n: 12, seed: 5}
  chain_length: 6
  substrate: {sites_x: 6, sites_y: 6, layers: 1}
`
	f, err := Parse([]byte(doc))
	require.NoError(t, err)
	c, err := f.ToMonolayerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 6, c.ChainLength)
	assert.Equal(t, 0.15, c.Chain.BondLength)
	assert.Equal(t, 0.25, c.Substrate.Spacing)
	r, ok := c.Pattern.(*pattern.Random2DPattern)
	require.True(t, ok)
	assert.True(t, r.Seeded)
	assert.EqualValues(t, 5, r.Seed)

	C, err := f.Build(nil)
	require.NoError(t, err)
	// one substrate and 12 chains
	assert.Len(t, C.Children(), 13)
	assert.Equal(t, 36+12*6, C.NumParticles())
	assert.Empty(t, C.AvailablePorts())
}

func TestNanoparticleSection(t *testing.T) {
	doc := `
assembly: nanoparticle
nanoparticle:
  radius: 3
  chains: 6
  chain_length: 4
`
	f, err := Parse([]byte(doc))
	require.NoError(t, err)
	C, err := f.Build(nil)
	require.NoError(t, err)
	assert.Len(t, examples.Tethers(C), 6)
	assert.Equal(t, f.ToNanoparticleConfig(nil).ShellBeads()+6*4, C.NumParticles())
}

func TestPatternSection(t *testing.T) {
	p, err := PatternSection{Kind: "Grid", N: 3, M: 4}.Pattern()
	require.NoError(t, err)
	assert.Equal(t, 12, p.Len())
	p, err = PatternSection{Kind: "random", N: 7}.Pattern()
	require.NoError(t, err)
	assert.False(t, p.(*pattern.Random2DPattern).Seeded)

	var cerr *mbuild.ConfigError
	for _, bad := range []PatternSection{
		{Kind: "hexagonal", N: 3, M: 3},
		{Kind: "grid", N: 0, M: 3},
		{Kind: "random", N: 0},
	} {
		_, err := bad.Pattern()
		assert.ErrorAs(t, err, &cerr, bad.Kind)
	}
}

func TestParseErrors(t *testing.T) {
	var cerr *mbuild.ConfigError
	for _, doc := range []string{
		"assembly: polymer",
		"workers: -2",
		"log_level: loud",
		"chain: [1, 2]",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorAs(t, err, &cerr, doc)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	f, err := Parse([]byte("assembly: chain\nchain: {n: 0}"))
	require.NoError(t, err)
	_, err = f.Build(nil)
	assert.ErrorAs(t, err, &cerr)
}
