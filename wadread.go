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

// Reading a wad archive into typed level data
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNotWad = errors.New("file is not a wad: bad magic signature")
var ErrDirectoryBounds = errors.New("wad directory lies outside file bounds")

// Wad is the decoded view of one archive file: its header, the full lump
// directory, and every level found in it. Nothing is kept open or cached -
// each LoadWad call builds its own instance from scratch
type Wad struct {
	Header    WadHeader
	Directory *LumpDirectory
	Levels    []*LevelData
}

// LoadWad opens a wad file read-only, parses header and directory, and
// decodes the record lumps of every level marker found. The file is closed
// on every exit path. Lumps this program doesn't know are skipped; a level
// lump that is absent yields an empty collection, not an error
func LoadWad(fileName string) (*Wad, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fileName, err)
	}
	defer f.Close()

	fileInfo, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", fileName, err)
	}
	fileSize := fileInfo.Size()

	wad := &Wad{}
	if err := binary.Read(f, binary.LittleEndian, &wad.Header); err != nil {
		return nil, fmt.Errorf("read wad header: %w", err)
	}
	switch wad.Header.MagicSig {
	case IWAD_MAGIC_SIG:
		Log.Verbose(1, "The input file is an IWAD\n")
	case PWAD_MAGIC_SIG:
		Log.Verbose(1, "The input file is a PWAD\n")
	default:
		return nil, ErrNotWad
	}
	Log.Verbose(1, "The directory contains %d lumps and starts at %d byte offset\n",
		wad.Header.LumpCount, wad.Header.DirectoryStart)

	dirEnd := int64(wad.Header.DirectoryStart) +
		int64(wad.Header.LumpCount)*LUMP_ENTRY_SIZE
	if int64(wad.Header.DirectoryStart) > fileSize || dirEnd > fileSize {
		return nil, ErrDirectoryBounds
	}

	if _, err := f.Seek(int64(wad.Header.DirectoryStart), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to wad directory: %w", err)
	}
	// Read in whole directory at once
	le := make([]LumpEntry, wad.Header.LumpCount)
	if err := binary.Read(f, binary.LittleEndian, le); err != nil {
		return nil, fmt.Errorf("read wad directory: %w", err)
	}
	wad.Directory = NewLumpDirectory(le)

	for _, marker := range wad.Directory.Levels() {
		lv, err := readLevel(f, fileSize, wad.Directory, marker)
		if err != nil {
			return nil, err
		}
		wad.Levels = append(wad.Levels, lv)
	}
	return wad, nil
}

// readLevel decodes the record lumps scoped by one level marker
func readLevel(f *os.File, fileSize int64, dir *LumpDirectory,
	marker string) (*LevelData, error) {
	Log.Verbose(1, "Reading level %s\n", marker)
	lv := NewLevelData(marker)
	for _, entry := range dir.LevelRun(marker) {
		name := WadNameToStr(entry.Name)
		def := FindLevelLumpDef(name)
		if def == nil {
			if !IsIgnoredLevelLump(name) {
				Log.Verbose(2, "Unhandled lump %s in level %s - skipping\n", name, marker)
			}
			continue
		}
		data, err := readLump(f, fileSize, entry)
		if err != nil {
			return nil, fmt.Errorf("level %s lump %s: %w", marker, name, err)
		}
		if len(data)%def.RecordSize != 0 {
			Log.Verbose(1, "Lump %s in level %s has size %d not divisible by record size %d - trailing partial record dropped\n",
				name, marker, len(data), def.RecordSize)
		}
		def.Decode(lv, data)
	}
	return lv, nil
}

// readLump reads one lump's raw bytes at its directory-recorded position
func readLump(f *os.File, fileSize int64, entry LumpEntry) ([]byte, error) {
	if int64(entry.FilePos)+int64(entry.Size) > fileSize {
		return nil, fmt.Errorf("lump at offset %d with size %d exceeds file size %d",
			entry.FilePos, entry.Size, fileSize)
	}
	data := make([]byte, entry.Size)
	if entry.Size == 0 {
		return data, nil
	}
	if _, err := f.ReadAt(data, int64(entry.FilePos)); err != nil {
		return nil, err
	}
	return data, nil
}
