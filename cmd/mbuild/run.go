/*
 * run.go, part of gombuild.
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
	"github.com/mathewaa/gombuild/internal/logging"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var path string
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the assembly described in a YAML file",
		Long: `Reads a build file and builds the assembly it describes. The log level,
number of workers and output file given in the file are used unless
overridden by the command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			log := opts.log
			if !cmd.Flag("log-level").Changed {
				l, _ := logging.ParseLevel(f.LogLevel)
				log = logging.New(l)
			}
			if cmd.Flag("workers").Changed {
				f.Workers = opts.workers
			}
			if !cmd.Flags().Changed("output") {
				out.output = f.Output
			}
			log.Debug("building", "assembly", f.Assembly, "file", path, "workers", f.Workers)
			C, err := f.Build(log)
			if err != nil {
				return err
			}
			return out.emit(cmd, log, C)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Build file")
	_ = cmd.MarkFlagRequired("config")
	out.addFlags(cmd)
	return cmd
}
