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

// Per-lump record codecs
package main

import (
	"bytes"
	"encoding/binary"
)

// LevelData is everything one level marker scopes in the directory, decoded
// to typed records. The slice index IS the entity's address: linedefs refer
// to vertices and sidedefs by position, segs to vertices and linedefs, and
// so on. Order therefore must survive a write/read round trip untouched
type LevelData struct {
	Name       string
	Things     []Thing
	Linedefs   []Linedef
	Sidedefs   []Sidedef
	Vertices   []Vertex
	Segs       []Seg
	SubSectors []SubSector
	Nodes      []Node
	Sectors    []Sector
}

// NewLevelData returns a LevelData with all collections allocated empty, so
// that a built-then-decoded level compares equal field for field
func NewLevelData(name string) *LevelData {
	return &LevelData{
		Name:       name,
		Things:     []Thing{},
		Linedefs:   []Linedef{},
		Sidedefs:   []Sidedef{},
		Vertices:   []Vertex{},
		Segs:       []Seg{},
		SubSectors: []SubSector{},
		Nodes:      []Node{},
		Sectors:    []Sector{},
	}
}

// DecodeRecords reads as many whole fixed-width records as fit into data.
// A trailing partial record (lump size not a multiple of the record width)
// is silently dropped - the floor division here is documented behavior, not
// an accident. Index fields never sign-extend because the record structs
// declare them uint16
func DecodeRecords[T any](data []byte) []T {
	var zero T
	recSize := binary.Size(zero)
	count := len(data) / recSize
	records := make([]T, count)
	if count > 0 {
		// can't fail: reader is backed by a slice of sufficient length
		binary.Read(bytes.NewReader(data[:count*recSize]), binary.LittleEndian, records)
	}
	return records
}

// EncodeRecords converts typed records to the little-endian byte layout the
// wad file stores. Empty input encodes to an empty (not nil) slice so the
// caller can still write a zero-size lump
func EncodeRecords[T any](records []T) []byte {
	var buf bytes.Buffer
	// can't fail: bytes.Buffer does not error and T is fixed-width
	binary.Write(&buf, binary.LittleEndian, records)
	if buf.Len() == 0 {
		return []byte{}
	}
	return buf.Bytes()
}

// LevelLumpDef ties one level lump name to its record width and the
// LevelData field it decodes into / encodes from. The table below is the
// single source of truth for which lumps a level consists of, and its order
// is the canonical order the writer emits them in
type LevelLumpDef struct {
	Name       string
	RecordSize int
	Decode     func(lv *LevelData, data []byte)
	Encode     func(lv *LevelData) []byte
}

var LEVEL_LUMPS = []LevelLumpDef{
	{"THINGS", 10,
		func(lv *LevelData, data []byte) { lv.Things = DecodeRecords[Thing](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Things) }},
	{"LINEDEFS", 14,
		func(lv *LevelData, data []byte) { lv.Linedefs = DecodeRecords[Linedef](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Linedefs) }},
	{"SIDEDEFS", 30,
		func(lv *LevelData, data []byte) { lv.Sidedefs = DecodeRecords[Sidedef](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Sidedefs) }},
	{"VERTEXES", 4,
		func(lv *LevelData, data []byte) { lv.Vertices = DecodeRecords[Vertex](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Vertices) }},
	{"SEGS", 12,
		func(lv *LevelData, data []byte) { lv.Segs = DecodeRecords[Seg](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Segs) }},
	{"SSECTORS", 4,
		func(lv *LevelData, data []byte) { lv.SubSectors = DecodeRecords[SubSector](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.SubSectors) }},
	{"NODES", 28,
		func(lv *LevelData, data []byte) { lv.Nodes = DecodeRecords[Node](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Nodes) }},
	{"SECTORS", 26,
		func(lv *LevelData, data []byte) { lv.Sectors = DecodeRecords[Sector](data) },
		func(lv *LevelData) []byte { return EncodeRecords(lv.Sectors) }},
}

// Lumps that may legitimately follow a level marker but that this program
// neither decodes nor regenerates. They are skipped on read without a fuss
var LUMP_IGNORE = []string{"REJECT", "BLOCKMAP", "BEHAVIOR", "SCRIPTS"}

func IsIgnoredLevelLump(name string) bool {
	for _, ign := range LUMP_IGNORE {
		if name == ign {
			return true
		}
	}
	return false
}

// FindLevelLumpDef locates the codec table entry for a lump name, nil when
// the name is not one of the eight level record lumps
func FindLevelLumpDef(name string) *LevelLumpDef {
	for i := range LEVEL_LUMPS {
		if LEVEL_LUMPS[i].Name == name {
			return &LEVEL_LUMPS[i]
		}
	}
	return nil
}
