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

package main

import (
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outDir string
	var compress bool

	cmd := &cobra.Command{
		Use:   "export <wadfile>",
		Short: "Export every level of a wad archive as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExportWad(args[0], outDir, compress)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVarP(&compress, "compress", "z", false, "zstd-compress the output (.json.zst)")
	return cmd
}
