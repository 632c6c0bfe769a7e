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
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var listLumps bool

	cmd := &cobra.Command{
		Use:   "info <wadfile>",
		Short: "Show header, levels and record counts of a wad archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wad, err := LoadWad(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			kind := "PWAD"
			if wad.Header.MagicSig == IWAD_MAGIC_SIG {
				kind = "IWAD"
			}
			fmt.Fprintf(out, "%s: %s, %d lumps, directory at offset %d\n",
				args[0], kind, wad.Header.LumpCount, wad.Header.DirectoryStart)

			for _, lv := range wad.Levels {
				fmt.Fprintf(out, "Level %s:\n", lv.Name)
				fmt.Fprintf(out, "  things %d, linedefs %d, sidedefs %d, vertices %d\n",
					len(lv.Things), len(lv.Linedefs), len(lv.Sidedefs), len(lv.Vertices))
				fmt.Fprintf(out, "  segs %d, subsectors %d, nodes %d, sectors %d\n",
					len(lv.Segs), len(lv.SubSectors), len(lv.Nodes), len(lv.Sectors))
			}
			if len(wad.Levels) == 0 {
				fmt.Fprintf(out, "No levels found.\n")
			}

			if listLumps {
				fmt.Fprintf(out, "Directory:\n")
				for i := 0; i < wad.Directory.Len(); i++ {
					entry := wad.Directory.Entry(i)
					fmt.Fprintf(out, "  %-8s pos=%-8d size=%d\n",
						wad.Directory.EntryName(i), entry.FilePos, entry.Size)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&listLumps, "lumps", "l", false, "list every directory entry")
	return cmd
}
