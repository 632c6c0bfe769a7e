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

// levelgen_test.go
package main

import (
	"testing"
)

func TestBuildLevelSquareRoom(t *testing.T) {
	p := DefaultLevelParams()
	p.RoomSize = 256
	lv, err := BuildLevel(p)
	if err != nil {
		t.Fatalf("BuildLevel failed: %s\n", err.Error())
	}
	if len(lv.Vertices) != 4 || len(lv.Linedefs) != 4 ||
		len(lv.Sidedefs) != 4 || len(lv.Sectors) != 1 {
		t.Fatalf("Square room must have 4 vertices, 4 linedefs, 4 sidedefs, 1 sector\n")
	}
	for _, v := range lv.Vertices {
		if v.XPos != 128 && v.XPos != -128 {
			t.Errorf("Vertex X %d not at +-half room size\n", v.XPos)
		}
		if v.YPos != 128 && v.YPos != -128 {
			t.Errorf("Vertex Y %d not at +-half room size\n", v.YPos)
		}
	}
	for i, line := range lv.Linedefs {
		if line.BackSdef != SIDEDEF_NONE {
			t.Errorf("Linedef %d must be one-sided\n", i)
		}
		if line.Flags&LF_IMPASSABLE == 0 {
			t.Errorf("Linedef %d must be impassable\n", i)
		}
		if int(line.FrontSdef) >= len(lv.Sidedefs) {
			t.Errorf("Linedef %d references missing sidedef %d\n", i, line.FrontSdef)
		}
	}
	for i, side := range lv.Sidedefs {
		if side.Sector != 0 {
			t.Errorf("Sidedef %d must face the single sector\n", i)
		}
		if WadNameToStr(side.MidName) != p.WallTexture {
			t.Errorf("Sidedef %d texture is %s\n", i, WadNameToStr(side.MidName))
		}
	}
	if len(lv.Things) != 1 || lv.Things[0].Type != THING_PLAYER1_START {
		t.Fatalf("Generated level must carry exactly the player 1 start\n")
	}
	if lv.Things[0].Flags != TF_ALL_SKILLS {
		t.Errorf("Player start must be present on all skill tiers\n")
	}
	if lv.Things[0].Angle != int16(p.PlayerAngle) {
		t.Errorf("Player angle %d, wanted %d\n", lv.Things[0].Angle, p.PlayerAngle)
	}
	// No tree data is generated; the lumps stay empty
	if len(lv.Segs) != 0 || len(lv.SubSectors) != 0 || len(lv.Nodes) != 0 {
		t.Errorf("Generator must not fabricate tree lumps\n")
	}
}

func TestBuildLevelSectorFromParams(t *testing.T) {
	p := DefaultLevelParams()
	p.FloorHeight = -16
	p.CeilingHeight = 200
	p.LightLevel = 144
	p.FloorTexture = "MFLR8_1"
	lv, err := BuildLevel(p)
	if err != nil {
		t.Fatalf("BuildLevel failed: %s\n", err.Error())
	}
	s := lv.Sectors[0]
	if s.FloorHeight != -16 || s.CeilHeight != 200 || s.LightLevel != 144 {
		t.Errorf("Sector %+v does not reflect parameters\n", s)
	}
	if WadNameToStr(s.FloorName) != "MFLR8_1" {
		t.Errorf("Floor texture is %s\n", WadNameToStr(s.FloorName))
	}
}

func TestLevelParamsValidate(t *testing.T) {
	bad := []LevelParams{}

	p := DefaultLevelParams()
	p.RoomSize = 32
	bad = append(bad, p)

	p = DefaultLevelParams()
	p.LightLevel = 300
	bad = append(bad, p)

	p = DefaultLevelParams()
	p.CeilingHeight = p.FloorHeight
	bad = append(bad, p)

	for i := range bad {
		if err := bad[i].Validate(); err == nil {
			t.Errorf("Parameter set %d must fail validation: %+v\n", i, bad[i])
		}
	}
	good := DefaultLevelParams()
	if err := good.Validate(); err != nil {
		t.Errorf("Defaults must validate: %s\n", err.Error())
	}
}
