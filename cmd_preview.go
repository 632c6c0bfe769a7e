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
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var outPath string
	var levelName string

	cmd := &cobra.Command{
		Use:   "preview <wadfile>",
		Short: "Render a level's map as svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wad, err := LoadWad(args[0])
			if err != nil {
				return err
			}
			if len(wad.Levels) == 0 {
				return fmt.Errorf("%s contains no levels", args[0])
			}
			lv := wad.Levels[0]
			if levelName != "" {
				lv = nil
				for _, candidate := range wad.Levels {
					if strings.EqualFold(candidate.Name, levelName) {
						lv = candidate
						break
					}
				}
				if lv == nil {
					return fmt.Errorf("%s has no level %s", args[0], levelName)
				}
			}

			fout, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer fout.Close()
			if err := WritePreview(fout, lv); err != nil {
				return fmt.Errorf("render %s: %w", outPath, err)
			}
			if err := fout.Close(); err != nil {
				return fmt.Errorf("close %s: %w", outPath, err)
			}
			Log.Printf("Rendered level %s to %s\n", lv.Name, outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "preview.svg", "output svg path")
	cmd.Flags().StringVar(&levelName, "level", "", "level marker to render (default: first)")
	return cmd
}
