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

// Directory of lumps inside a wad and operations over it
package main

import (
	"strings"
)

// LumpDirectory is the ordered sequence of directory entries read from (or
// prepared for) a wad file. The order matters: lumps belonging to a level
// are identified solely by following its marker entry, they carry no level
// id of their own
type LumpDirectory struct {
	entries []LumpEntry
}

func NewLumpDirectory(entries []LumpEntry) *LumpDirectory {
	return &LumpDirectory{entries: entries}
}

func (d *LumpDirectory) Len() int {
	return len(d.entries)
}

func (d *LumpDirectory) Entry(i int) LumpEntry {
	return d.entries[i]
}

func (d *LumpDirectory) EntryName(i int) string {
	return WadNameToStr(d.entries[i].Name)
}

// Lookup finds a lump by name, case-insensitively. When duplicates exist
// (wads in the wild do have them), the first match wins
func (d *LumpDirectory) Lookup(name string) (int, bool) {
	for i := range d.entries {
		if strings.EqualFold(d.EntryName(i), name) {
			return i, true
		}
	}
	return -1, false
}

// Levels returns level marker names in directory order
func (d *LumpDirectory) Levels() []string {
	markers := make([]string, 0)
	for i := range d.entries {
		bname := ByteSliceBeforeTerm(d.entries[i].Name[:])
		if IsALevel(bname) {
			markers = append(markers, string(bname))
		}
	}
	return markers
}

// LevelRun returns the contiguous run of entries immediately following the
// named marker, up to but excluding the next level marker or the end of the
// directory. This is how per-level lumps are scoped. Nil when the marker is
// not present
func (d *LumpDirectory) LevelRun(marker string) []LumpEntry {
	start, ok := d.Lookup(marker)
	if !ok {
		return nil
	}
	end := start + 1
	for end < len(d.entries) {
		if IsALevel(ByteSliceBeforeTerm(d.entries[end].Name[:])) {
			break
		}
		end++
	}
	return d.entries[start+1 : end]
}

// DirBuilder accumulates directory entries while lumps are being appended
// to an output wad. It is a plain value owned by the single write operation
// - deliberately not a process-wide accumulator
type DirBuilder struct {
	entries []LumpEntry
}

// Add records a directory entry for a lump whose first byte went to offset
// pos. Name longer than 8 bytes is truncated, shorter is zero padded
func (b *DirBuilder) Add(name string, pos uint32, size uint32) {
	entry := LumpEntry{FilePos: pos, Size: size, Name: StrToWadName(name)}
	b.entries = append(b.entries, entry)
}

func (b *DirBuilder) Count() int {
	return len(b.entries)
}

func (b *DirBuilder) Entries() []LumpEntry {
	return b.entries
}
