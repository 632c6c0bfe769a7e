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

// Wad specifications for Doom-engine family of games
package main

import (
	"bytes"
	"regexp"
)

// Level marker names recognized by vanilla-descended engines: MAP## for
// the sequel numbering, E#M# for the episodic one. MAP1 (one digit) is not
// a marker, and neither is E1M10
var MAP_SEQUEL *regexp.Regexp = regexp.MustCompile(`^MAP[0-9][0-9]$`)
var MAP_ExMx *regexp.Regexp = regexp.MustCompile(`^E[1-9]M[0-9]$`)

const IWAD_MAGIC_SIG = uint32(0x44415749) // ASCII - 'IWAD'
const PWAD_MAGIC_SIG = uint32(0x44415750) // ASCII - 'PWAD'

// Doom & Heretic thing flag constants
const TF_ROOKIE = int16(0x0001)
const TF_NORMAL = int16(0x0002)
const TF_HARD = int16(0x0004)
const TF_AMBUSH = int16(0x0008)
const TF_MULTIPLAYER_ONLY = int16(0x0010)

// The flags a synthesized player start gets: present on every skill tier.
// Convention inherited from the format, not derived here
const TF_ALL_SKILLS = TF_ROOKIE | TF_NORMAL | TF_HARD

// Thing type for the player 1 start. A level without one is refused by
// several consuming engines
const THING_PLAYER1_START = int16(1)

// COMMON linedef flags: for Doom & derivatives
const LF_IMPASSABLE = uint16(0x0001)
const LF_BLOCK_MONSTER = uint16(0x0002)
const LF_TWOSIDED = uint16(0x0004)
const LF_UPPER_UNPEGGED = uint16(0x0008)
const LF_LOWER_UNPEGGED = uint16(0x0010)
const LF_SECRET = uint16(0x0020) // shown as 1-sided on automap
const LF_BLOCK_SOUND = uint16(0x0040)
const LF_NEVER_ON_AUTOMAP = uint16(0x0080)
const LF_ALWAYS_ON_AUTOMAP = uint16(0x0100)

const SIDEDEF_NONE = uint16(0xFFFF)

const WAD_HEADER_SIZE = 12
const LUMP_ENTRY_SIZE = 16

// Wad header, 12 bytes.
type WadHeader struct {
	MagicSig       uint32
	LumpCount      uint32 // vanilla treats this as signed int32
	DirectoryStart uint32 // vanilla treats this as signed int32
}

// Lump entries listed one after another comprise the directory,
// the first such lump entry is found at WadHeader.DirectoryStart offset into
// the wad file.
// Each lump entry is 16 bytes long
type LumpEntry struct {
	FilePos uint32 // vanilla treats this as signed int32
	Size    uint32 // vanilla treats this as signed int32
	Name    [8]byte
}

// This is Doom/Heretic thing. 10 bytes
type Thing struct {
	XPos  int16
	YPos  int16
	Angle int16
	Type  int16
	Flags int16
}

// Doom/Heretic linedef format. 14 bytes
type Linedef struct {
	// Vanilla treats ALL fields as signed int16, but index fields must not
	// be sign-extended - 0xFFFF has to survive the read as 65535
	StartVertex uint16
	EndVertex   uint16
	Flags       uint16
	Action      uint16
	Tag         uint16
	FrontSdef   uint16 // Front Sidedef number
	BackSdef    uint16 // Back Sidedef number (0xFFFF special value for one-sided line)
}

// Sidedef format, 30 bytes. Texture names are space/zero padded ASCII
type Sidedef struct {
	XOffset int16
	YOffset int16
	UpName  [8]byte // name of upper texture
	LoName  [8]byte // name of lower texture
	MidName [8]byte // name of middle texture
	Sector  uint16  // sector number; vanilla treats this as signed int16
}

// A Vertex is a coordinate on the map, and can be used in both linedefs and
// segs as starting(ending) point. 4 bytes
type Vertex struct {
	XPos int16
	YPos int16
}

// One wall fragment bound to a linedef, produced by a nodes builder. 12 bytes
type Seg struct {
	// Vanilla treats ALL fields as signed int16
	StartVertex uint16
	EndVertex   uint16
	Angle       int16
	Linedef     uint16
	Flip        int16  // 0 - seg follows same direction as linedef, 1 - the opposite
	Offset      uint16 // distance along linedef to start of seg
}

// Each subsector has only these two fields, yes. And the segs in SEGS lump
// follow the order so that consecutive segs in FirstSeg...FirstSeg+SegCount-1
// all belong to this subsector. 4 bytes
type SubSector struct {
	// Vanilla treats ALL fields as signed int16
	SegCount uint16 // number of Segs in this SubSector
	FirstSeg uint16 // first Seg number
}

// Binary space partition tree node. 28 bytes
type Node struct {
	X      int16
	Y      int16
	Dx     int16
	Dy     int16
	Rbox   [4]int16 // right bounding box
	Lbox   [4]int16 // left bounding box
	RChild int16    // -| if sign bit = 0 then this is a subnode number
	LChild int16    // ->     else 0-14 bits are subsector number
}

const BB_TOP = 0
const BB_BOTTOM = 1
const BB_LEFT = 2
const BB_RIGHT = 3

// Sector format, 26 bytes
type Sector struct {
	FloorHeight int16
	CeilHeight  int16
	FloorName   [8]byte
	CeilName    [8]byte
	LightLevel  uint16
	Special     uint16
	Tag         uint16
}

// Returns whether the string in lumpName represents Doom level marker,
// i.e. MAP02, E3M1
func IsALevel(lumpName []byte) bool {
	return MAP_SEQUEL.Match(lumpName) || MAP_ExMx.Match(lumpName)
}

// ByteSliceBeforeTerm returns a part of the original bytes
// excluding everything that starts with zero-byte character.
// This allows string operations (such as pattern matching) to be performed
// correctly on returned value
func ByteSliceBeforeTerm(b []byte) []byte {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return b
	}
	return b[:i]
}

// WadNameToStr decodes an 8-byte lump/texture name field: cut at the first
// zero byte, then drop trailing spaces some editors pad with
func WadNameToStr(name [8]byte) string {
	s := ByteSliceBeforeTerm(name[:])
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return string(s[:end])
}

// StrToWadName encodes a string into an 8-byte name field: first 8 ASCII
// bytes, zero-padded when shorter. Longer names are truncated, never
// rejected
func StrToWadName(s string) [8]byte {
	var name [8]byte
	copy(name[:], s)
	return name
}
