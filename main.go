// Copyright (C) 2026, Wadcraft contributors
//
// This file is part of Wadcraft program.
//
// Wadcraft is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// Wadcraft is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wadcraft.  If not, see <https://www.gnu.org/licenses/>.

// Wadcraft - generate, inspect, export and preview wad level archives
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	// before config can be legitimately accessed, must call Configure()
	if err := Configure(); err != nil {
		Log.Error("%s\n", err.Error())
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "wadcraft",
		Short:         "Level archive toolkit for the classic wad format",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&config.VerbosityLevel, "verbose", "v",
		config.VerbosityLevel, "verbosity level (0 = quiet)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPreviewCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wadcraft %s\n", VERSION)
		},
	}
}
