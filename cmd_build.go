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
	"path/filepath"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var paramsPath string
	var scriptPath string
	var outPath string
	var marker string
	var iwad bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a level and write it as a wad archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if paramsPath != "" && scriptPath != "" {
				return fmt.Errorf("--params and --script are mutually exclusive")
			}
			var source ParamSource = &DefaultParamSource{}
			if paramsPath != "" {
				source = &YamlParamSource{Path: paramsPath}
			} else if scriptPath != "" {
				source = &ScriptParamSource{Path: scriptPath}
			}
			opts := WriteWadOptions{Marker: marker, Iwad: iwad}

			if err := buildOnce(source, outPath, opts); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if paramsPath == "" && scriptPath == "" {
				return fmt.Errorf("--watch needs --params or --script to watch")
			}
			return watchAndRebuild(source, outPath, opts)
		},
	}
	cmd.Flags().StringVar(&paramsPath, "params", "", "yaml file with level parameters")
	cmd.Flags().StringVar(&scriptPath, "script", "", "tengo script producing level parameters")
	cmd.Flags().StringVarP(&outPath, "out", "o", "out.wad", "output wad path")
	cmd.Flags().StringVar(&marker, "marker", "", "level marker name (default from config)")
	cmd.Flags().BoolVar(&iwad, "iwad", false, "write an IWAD signature instead of PWAD")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild whenever the parameter file changes")
	return cmd
}

func buildOnce(source ParamSource, outPath string, opts WriteWadOptions) error {
	params, err := source.Load()
	if err != nil {
		return err
	}
	Log.Verbose(1, "Parameters from %s: %+v\n", source.Name(), params)
	lv, err := BuildLevel(params)
	if err != nil {
		return err
	}
	if err := WriteWad(outPath, lv, opts); err != nil {
		return err
	}
	Log.Printf("Wrote %s (level %s, %d linedefs, %d sectors).\n",
		outPath, lv.Name, len(lv.Linedefs), len(lv.Sectors))
	return nil
}

// watchAndRebuild reruns buildOnce on every change to the parameter file's
// directory. A failed rebuild is reported and watching continues - the user
// is mid-edit and will save again
func watchAndRebuild(source ParamSource, outPath string,
	opts WriteWadOptions) error {
	dir := filepath.Dir(source.Name())
	watcher, err := NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer watcher.Close()
	Log.Printf("Watching %s for changes (interrupt to stop).\n", dir)
	for {
		select {
		case name, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			Log.Verbose(1, "Change detected: %s\n", name)
			if err := buildOnce(source, outPath, opts); err != nil {
				Log.Error("Rebuild failed: %s\n", err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			Log.Error("Watch error: %s\n", err.Error())
		}
	}
}
