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

// Program-wide configuration
package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const VERSION = "0.3.1"

// Name of the optional config file looked up in the working directory
const CONFIG_FILE_NAME = "wadcraft.yaml"

type ProgramConfig struct {
	// How chatty the program is. 0 prints only the essentials, each
	// increment adds detail
	VerbosityLevel int `yaml:"verbosity"`
	// Marker name used by the writer unless overridden per call. Must match
	// a level marker pattern or the output wouldn't be recognized as a level
	// container by consuming engines
	Marker string `yaml:"marker"`
	// Write "IWAD" instead of the default "PWAD" signature
	WriteIwad bool `yaml:"write_iwad"`
	// Debounce window for --watch rebuilds, in milliseconds
	WatchDebounceMs int `yaml:"watch_debounce_ms"`
}

var config ProgramConfig

// Configure initializes the global config with defaults, then overlays the
// optional wadcraft.yaml from the working directory. Must be called before
// config is legitimately accessed
func Configure() error {
	config = ProgramConfig{
		VerbosityLevel:  0,
		Marker:          "MAP01",
		WriteIwad:       false,
		WatchDebounceMs: 100,
	}
	data, err := os.ReadFile(CONFIG_FILE_NAME)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", CONFIG_FILE_NAME, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse %s: %w", CONFIG_FILE_NAME, err)
	}
	if !IsALevel([]byte(config.Marker)) {
		return fmt.Errorf("%s: marker %q is not a level marker name", CONFIG_FILE_NAME, config.Marker)
	}
	return nil
}
