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

// export_test.go
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestExportWad(t *testing.T) {
	dir := t.TempDir()
	wadPath := filepath.Join(dir, "sample.wad")
	if err := WriteWad(wadPath, sampleLevel(), WriteWadOptions{Marker: "MAP02"}); err != nil {
		t.Fatalf("setup: %s\n", err.Error())
	}
	outDir := filepath.Join(dir, "export")
	if err := ExportWad(wadPath, outDir, false); err != nil {
		t.Fatalf("ExportWad failed: %s\n", err.Error())
	}
	data, err := os.ReadFile(filepath.Join(outDir, "sample_0.json"))
	if err != nil {
		t.Fatalf("Expected sample_0.json: %s\n", err.Error())
	}
	var exported JsonLevel
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("Export is not valid json: %s\n", err.Error())
	}
	if exported.Name != "MAP02" {
		t.Errorf("Exported level name is %s\n", exported.Name)
	}
	if len(exported.Linedefs) != 4 || len(exported.Sectors) != 1 {
		t.Errorf("Exported counts wrong: %d linedefs, %d sectors\n",
			len(exported.Linedefs), len(exported.Sectors))
	}
	// Texture names come out as readable strings, not byte arrays
	if exported.Sidedefs[0].MidName != "STARTAN2" {
		t.Errorf("Texture exported as %q\n", exported.Sidedefs[0].MidName)
	}
	if exported.Sectors[0].FloorName != "FLOOR4_8" {
		t.Errorf("Floor texture exported as %q\n", exported.Sectors[0].FloorName)
	}
}

func TestExportWadCompressed(t *testing.T) {
	dir := t.TempDir()
	wadPath := filepath.Join(dir, "packed.wad")
	if err := WriteWad(wadPath, sampleLevel(), WriteWadOptions{Marker: "MAP02"}); err != nil {
		t.Fatalf("setup: %s\n", err.Error())
	}
	if err := ExportWad(wadPath, dir, true); err != nil {
		t.Fatalf("ExportWad failed: %s\n", err.Error())
	}
	raw, err := os.ReadFile(filepath.Join(dir, "packed_0.json.zst"))
	if err != nil {
		t.Fatalf("Expected packed_0.json.zst: %s\n", err.Error())
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("zstd reader: %s\n", err.Error())
	}
	defer dec.Close()
	data, err := dec.DecodeAll(raw, nil)
	if err != nil {
		t.Fatalf("Export is not valid zstd: %s\n", err.Error())
	}
	var exported JsonLevel
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("Decompressed export is not valid json: %s\n", err.Error())
	}
	if exported.Name != "MAP02" {
		t.Errorf("Exported level name is %s\n", exported.Name)
	}
}

func TestExportWadNoLevels(t *testing.T) {
	dir := t.TempDir()
	wadPath := filepath.Join(dir, "bare.wad")
	// A structurally valid wad with an empty directory
	f, err := os.Create(wadPath)
	if err != nil {
		t.Fatalf("setup: %s\n", err.Error())
	}
	f.Write([]byte{'P', 'W', 'A', 'D', 0, 0, 0, 0, 12, 0, 0, 0})
	f.Close()
	if err := ExportWad(wadPath, dir, false); err == nil {
		t.Errorf("Exporting a wad with no levels must fail\n")
	}
}
