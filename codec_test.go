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

// codec_test.go
package main

import (
	"encoding/binary"
	"reflect"
	"testing"
)

func TestLumpTableRecordSizes(t *testing.T) {
	// The table widths must agree with what encoding/binary derives from the
	// record structs, or decode would misalign every record past the first
	sizes := map[string]int{
		"THINGS":   binary.Size(Thing{}),
		"LINEDEFS": binary.Size(Linedef{}),
		"SIDEDEFS": binary.Size(Sidedef{}),
		"VERTEXES": binary.Size(Vertex{}),
		"SEGS":     binary.Size(Seg{}),
		"SSECTORS": binary.Size(SubSector{}),
		"NODES":    binary.Size(Node{}),
		"SECTORS":  binary.Size(Sector{}),
	}
	for _, def := range LEVEL_LUMPS {
		if sizes[def.Name] != def.RecordSize {
			t.Errorf("Lump %s: table says %d bytes per record, struct is %d\n",
				def.Name, def.RecordSize, sizes[def.Name])
		}
	}
}

func TestDecodeRecordsTruncatesPartial(t *testing.T) {
	// 6 bytes of VERTEXES = one whole 4-byte record plus 2 stray bytes
	data := []byte{0x10, 0x00, 0x20, 0x00, 0xAA, 0xBB}
	vertices := DecodeRecords[Vertex](data)
	if len(vertices) != 1 {
		t.Errorf("6-byte vertex lump must decode to 1 record, got %d\n", len(vertices))
	}
	if len(vertices) > 0 && (vertices[0].XPos != 16 || vertices[0].YPos != 32) {
		t.Errorf("Decoded vertex is %+v, wanted {16 32}\n", vertices[0])
	}
}

func TestDecodeRecordsNoSignExtension(t *testing.T) {
	// BackSdef 0xFFFF marks "no sidedef" and must stay 65535, not -1
	line := Linedef{BackSdef: SIDEDEF_NONE}
	decoded := DecodeRecords[Linedef](EncodeRecords([]Linedef{line}))
	if len(decoded) != 1 {
		t.Errorf("Expected 1 linedef, got %d\n", len(decoded))
		return
	}
	if decoded[0].BackSdef != 65535 {
		t.Errorf("BackSdef must read back as 65535, got %d\n", decoded[0].BackSdef)
	}
}

func TestEncodeRecordsEmpty(t *testing.T) {
	data := EncodeRecords([]Sector{})
	if data == nil || len(data) != 0 {
		t.Errorf("Empty collection must encode to an empty non-nil slice\n")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	things := []Thing{
		{XPos: -128, YPos: 512, Angle: 270, Type: 3004, Flags: TF_HARD},
		{XPos: 0, YPos: 0, Angle: 90, Type: THING_PLAYER1_START, Flags: TF_ALL_SKILLS},
	}
	decoded := DecodeRecords[Thing](EncodeRecords(things))
	if !reflect.DeepEqual(things, decoded) {
		t.Errorf("Things did not survive encode/decode: %+v vs %+v\n", things, decoded)
	}

	sectors := []Sector{{
		FloorHeight: -8,
		CeilHeight:  264,
		FloorName:   StrToWadName("FLAT14"),
		CeilName:    StrToWadName("F_SKY1"),
		LightLevel:  255,
		Special:     9,
		Tag:         667,
	}}
	decodedSectors := DecodeRecords[Sector](EncodeRecords(sectors))
	if !reflect.DeepEqual(sectors, decodedSectors) {
		t.Errorf("Sectors did not survive encode/decode\n")
	}
}

func TestFindLevelLumpDef(t *testing.T) {
	if FindLevelLumpDef("SEGS") == nil {
		t.Errorf("SEGS must have a codec table entry\n")
	}
	if FindLevelLumpDef("BLOCKMAP") != nil {
		t.Errorf("BLOCKMAP must not have a codec table entry\n")
	}
	if !IsIgnoredLevelLump("BLOCKMAP") || IsIgnoredLevelLump("THINGS") {
		t.Errorf("Ignore list misclassifies lumps\n")
	}
}
