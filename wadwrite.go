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

// Writing typed level data out as a wad archive
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteWadOptions selects the non-default knobs of a write. The zero value
// means: marker name from config, "PWAD" signature
type WriteWadOptions struct {
	Marker string // level marker name; must match MAP## or E#M#
	Iwad   bool   // write the "IWAD" signature instead of "PWAD"
}

// WriteWad assembles a single-level wad archive at fileName from the given
// collections. An existing file at that path is removed first. Lumps are
// written in the canonical order of LEVEL_LUMPS, preceded by a zero-size
// level marker; empty collections still produce (zero-size) directory-listed
// lumps so engines see a complete level structure. The directory follows the
// data, and the header is written last, once the directory offset is known.
// The input level is not mutated: the player-start repair works on a copy.
// On failure the half-written file is left for the caller to dispose of
func WriteWad(fileName string, lv *LevelData, opts WriteWadOptions) error {
	marker := opts.Marker
	if marker == "" {
		marker = config.Marker
	}
	if !IsALevel([]byte(marker)) {
		return fmt.Errorf("%q is not a valid level marker name", marker)
	}

	// Overwrite semantics, not append
	if err := os.Remove(fileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove existing %s: %w", fileName, err)
	}
	fout, err := os.OpenFile(fileName, os.O_CREATE|os.O_RDWR|os.O_TRUNC,
		os.ModeExclusive|os.ModePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", fileName, err)
	}
	defer fout.Close()

	level := ensurePlayerStart(lv)

	// Reserve room for the header - it is written last, once the directory
	// offset is known
	if err := writeNZeros(fout, WAD_HEADER_SIZE); err != nil {
		return fmt.Errorf("reserve wad header: %w", err)
	}
	curPos := uint32(WAD_HEADER_SIZE)

	dirb := &DirBuilder{}
	// The marker itself: a named lump of zero size right before the level's
	// data lumps
	dirb.Add(marker, curPos, 0)

	for i := range LEVEL_LUMPS {
		def := &LEVEL_LUMPS[i]
		data := def.Encode(level)
		if len(data) > 0 {
			if _, err := fout.Write(data); err != nil {
				return fmt.Errorf("write lump %s: %w", def.Name, err)
			}
		}
		dirb.Add(def.Name, curPos, uint32(len(data)))
		Log.Verbose(1, "Lump %s has its size set to %d bytes.\n", def.Name, len(data))
		curPos += uint32(len(data))
	}

	directoryStart := curPos
	if err := binary.Write(fout, binary.LittleEndian, dirb.Entries()); err != nil {
		return fmt.Errorf("write wad directory: %w", err)
	}

	wh := WadHeader{
		MagicSig:       PWAD_MAGIC_SIG,
		LumpCount:      uint32(dirb.Count()),
		DirectoryStart: directoryStart,
	}
	if opts.Iwad || config.WriteIwad {
		wh.MagicSig = IWAD_MAGIC_SIG
	}
	if _, err := fout.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to wad header: %w", err)
	}
	if err := binary.Write(fout, binary.LittleEndian, wh); err != nil {
		return fmt.Errorf("write wad header: %w", err)
	}
	if err := fout.Close(); err != nil {
		return fmt.Errorf("close %s: %w", fileName, err)
	}
	Log.Verbose(1, "Directory starts at offset %d.\n", wh.DirectoryStart)
	return nil
}

// ensurePlayerStart applies the repair rule: engines refuse a level with no
// player 1 start, so when THINGS has no type 1 entry, one is appended at
// the origin, present on every skill tier. The caller's collections are
// left untouched - the returned LevelData shares every slice except, when
// repair fired, Things
func ensurePlayerStart(lv *LevelData) *LevelData {
	for _, thing := range lv.Things {
		if thing.Type == THING_PLAYER1_START {
			return lv
		}
	}
	Log.Printf("Level %s has no player 1 start - adding one at (0,0).\n", lv.Name)
	repaired := *lv
	repaired.Things = make([]Thing, 0, len(lv.Things)+1)
	repaired.Things = append(repaired.Things, lv.Things...)
	repaired.Things = append(repaired.Things, Thing{
		XPos:  0,
		YPos:  0,
		Angle: 0,
		Type:  THING_PLAYER1_START,
		Flags: TF_ALL_SKILLS,
	})
	return &repaired
}

func writeNZeros(w io.Writer, n uint32) error {
	zb := make([]byte, n)
	written, err := w.Write(zb)
	if err != nil {
		return err
	}
	if uint32(written) != n {
		return fmt.Errorf("wrote %d of %d bytes", written, n)
	}
	return nil
}
