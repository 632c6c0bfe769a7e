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

// Turning a small parameter set into level geometry
package main

import (
	"fmt"
)

// LevelParams is the small parameter set a generator (file, script, or
// whatever else produces one) decides; BuildLevel expands it into the
// record collections the writer consumes
type LevelParams struct {
	RoomSize       int    `yaml:"room_size"`       // side length of the square room, map units
	FloorHeight    int    `yaml:"floor_height"`    //
	CeilingHeight  int    `yaml:"ceiling_height"`  //
	WallTexture    string `yaml:"wall_texture"`    //
	FloorTexture   string `yaml:"floor_texture"`   //
	CeilingTexture string `yaml:"ceiling_texture"` //
	LightLevel     int    `yaml:"light_level"`     // 0..255
	PlayerAngle    int    `yaml:"player_angle"`    // degrees, 0 = east
}

func DefaultLevelParams() LevelParams {
	return LevelParams{
		RoomSize:       512,
		FloorHeight:    0,
		CeilingHeight:  128,
		WallTexture:    "STARTAN2",
		FloorTexture:   "FLOOR4_8",
		CeilingTexture: "CEIL3_5",
		LightLevel:     192,
		PlayerAngle:    90,
	}
}

// Validate rejects parameter sets the format can't represent. Texture names
// are NOT length-checked: overlong names get truncated to 8 on encode
func (p *LevelParams) Validate() error {
	if p.RoomSize < 64 || p.RoomSize > 32768 {
		return fmt.Errorf("room_size %d out of range [64, 32768]", p.RoomSize)
	}
	if p.LightLevel < 0 || p.LightLevel > 255 {
		return fmt.Errorf("light_level %d out of range [0, 255]", p.LightLevel)
	}
	if p.CeilingHeight <= p.FloorHeight {
		return fmt.Errorf("ceiling_height %d must exceed floor_height %d",
			p.CeilingHeight, p.FloorHeight)
	}
	if p.FloorHeight < -32768 || p.CeilingHeight > 32767 {
		return fmt.Errorf("heights [%d, %d] exceed the int16 range of the format",
			p.FloorHeight, p.CeilingHeight)
	}
	return nil
}

// BuildLevel expands parameters into one square room centered on the
// origin: 4 vertices, 4 one-sided linedefs wound clockwise so their front
// sides face the interior, 4 sidedefs, 1 sector and the player 1 start.
// No BSP data is produced - the writer stores whatever tree lumps it is
// given, and an empty tree is acceptable to ports that build their own
func BuildLevel(p LevelParams) (*LevelData, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	half := int16(p.RoomSize / 2)
	lv := NewLevelData(config.Marker)
	if lv.Name == "" {
		lv.Name = "MAP01"
	}

	lv.Vertices = []Vertex{
		{XPos: -half, YPos: -half},
		{XPos: -half, YPos: half},
		{XPos: half, YPos: half},
		{XPos: half, YPos: -half},
	}
	for i := range lv.Vertices {
		next := (i + 1) % len(lv.Vertices)
		lv.Linedefs = append(lv.Linedefs, Linedef{
			StartVertex: uint16(i),
			EndVertex:   uint16(next),
			Flags:       LF_IMPASSABLE,
			FrontSdef:   uint16(i),
			BackSdef:    SIDEDEF_NONE,
		})
		lv.Sidedefs = append(lv.Sidedefs, Sidedef{
			MidName: StrToWadName(p.WallTexture),
			Sector:  0,
		})
	}
	lv.Sectors = []Sector{{
		FloorHeight: int16(p.FloorHeight),
		CeilHeight:  int16(p.CeilingHeight),
		FloorName:   StrToWadName(p.FloorTexture),
		CeilName:    StrToWadName(p.CeilingTexture),
		LightLevel:  uint16(p.LightLevel),
	}}
	lv.Things = []Thing{{
		XPos:  0,
		YPos:  0,
		Angle: int16(p.PlayerAngle),
		Type:  THING_PLAYER1_START,
		Flags: TF_ALL_SKILLS,
	}}
	return lv, nil
}
