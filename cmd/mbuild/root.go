/*
 * root.go, part of gombuild.
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
	"log/slog"
	"os"
	"runtime"

	"github.com/mathewaa/gombuild/internal/logging"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags, and the logger built from them.
type rootOptions struct {
	logLevel string
	workers  int
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logging.NewNop()}
	cmd := &cobra.Command{
		Use:   "mbuild",
		Short: "mbuild builds molecular assemblies from reusable pieces",
		Long: `mbuild builds alkane chains, self-assembled monolayers on a substrate and
nanoparticles with tethered chains. The result is written as XYZ or JSON lines
(optionally zstd-compressed), or summarized.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			if opts.workers < 0 {
				return fmt.Errorf("invalid number of workers %d", opts.workers)
			}
			opts.log = logging.New(l)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of chains built concurrently")

	cmd.AddCommand(
		newChainCmd(opts),
		newMonolayerCmd(opts),
		newNanoparticleCmd(opts),
		newPatternCmd(opts),
		newRunCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute builds the command tree and runs it.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
