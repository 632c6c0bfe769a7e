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

// Exporting levels as json (optionally zstd-compressed) for external tools
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Json mirrors of the binary records. The 8-byte name fields become plain
// strings, everything else keeps the record's field layout so the export
// stays recognizable next to the binary lumps
type JsonThing struct {
	XPos  int16 `json:"x"`
	YPos  int16 `json:"y"`
	Angle int16 `json:"angle"`
	Type  int16 `json:"type"`
	Flags int16 `json:"flags"`
}

type JsonLinedef struct {
	StartVertex uint16 `json:"startVertex"`
	EndVertex   uint16 `json:"endVertex"`
	Flags       uint16 `json:"flags"`
	Action      uint16 `json:"action"`
	Tag         uint16 `json:"tag"`
	FrontSdef   uint16 `json:"frontSidedef"`
	BackSdef    uint16 `json:"backSidedef"`
}

type JsonSidedef struct {
	XOffset int16  `json:"xOffset"`
	YOffset int16  `json:"yOffset"`
	UpName  string `json:"upperTexture"`
	LoName  string `json:"lowerTexture"`
	MidName string `json:"middleTexture"`
	Sector  uint16 `json:"sector"`
}

type JsonVertex struct {
	XPos int16 `json:"x"`
	YPos int16 `json:"y"`
}

type JsonSeg struct {
	StartVertex uint16 `json:"startVertex"`
	EndVertex   uint16 `json:"endVertex"`
	Angle       int16  `json:"angle"`
	Linedef     uint16 `json:"linedef"`
	Flip        int16  `json:"flip"`
	Offset      uint16 `json:"offset"`
}

type JsonSubSector struct {
	SegCount uint16 `json:"segCount"`
	FirstSeg uint16 `json:"firstSeg"`
}

type JsonNode struct {
	X      int16    `json:"x"`
	Y      int16    `json:"y"`
	Dx     int16    `json:"dx"`
	Dy     int16    `json:"dy"`
	Rbox   [4]int16 `json:"rightBox"`
	Lbox   [4]int16 `json:"leftBox"`
	RChild int16    `json:"rightChild"`
	LChild int16    `json:"leftChild"`
}

type JsonSector struct {
	FloorHeight int16  `json:"floorHeight"`
	CeilHeight  int16  `json:"ceilingHeight"`
	FloorName   string `json:"floorTexture"`
	CeilName    string `json:"ceilingTexture"`
	LightLevel  uint16 `json:"lightLevel"`
	Special     uint16 `json:"special"`
	Tag         uint16 `json:"tag"`
}

type JsonLevel struct {
	Name       string          `json:"name"`
	Things     []JsonThing     `json:"things"`
	Linedefs   []JsonLinedef   `json:"linedefs"`
	Sidedefs   []JsonSidedef   `json:"sidedefs"`
	Vertices   []JsonVertex    `json:"vertices"`
	Segs       []JsonSeg       `json:"segs"`
	SubSectors []JsonSubSector `json:"subsectors"`
	Nodes      []JsonNode      `json:"nodes"`
	Sectors    []JsonSector    `json:"sectors"`
}

func levelToJson(lv *LevelData) *JsonLevel {
	out := &JsonLevel{
		Name:       lv.Name,
		Things:     make([]JsonThing, len(lv.Things)),
		Linedefs:   make([]JsonLinedef, len(lv.Linedefs)),
		Sidedefs:   make([]JsonSidedef, len(lv.Sidedefs)),
		Vertices:   make([]JsonVertex, len(lv.Vertices)),
		Segs:       make([]JsonSeg, len(lv.Segs)),
		SubSectors: make([]JsonSubSector, len(lv.SubSectors)),
		Nodes:      make([]JsonNode, len(lv.Nodes)),
		Sectors:    make([]JsonSector, len(lv.Sectors)),
	}
	for i, t := range lv.Things {
		out.Things[i] = JsonThing(t)
	}
	for i, l := range lv.Linedefs {
		out.Linedefs[i] = JsonLinedef(l)
	}
	for i, s := range lv.Sidedefs {
		out.Sidedefs[i] = JsonSidedef{
			XOffset: s.XOffset,
			YOffset: s.YOffset,
			UpName:  WadNameToStr(s.UpName),
			LoName:  WadNameToStr(s.LoName),
			MidName: WadNameToStr(s.MidName),
			Sector:  s.Sector,
		}
	}
	for i, v := range lv.Vertices {
		out.Vertices[i] = JsonVertex(v)
	}
	for i, s := range lv.Segs {
		out.Segs[i] = JsonSeg(s)
	}
	for i, s := range lv.SubSectors {
		out.SubSectors[i] = JsonSubSector(s)
	}
	for i, n := range lv.Nodes {
		out.Nodes[i] = JsonNode(n)
	}
	for i, s := range lv.Sectors {
		out.Sectors[i] = JsonSector{
			FloorHeight: s.FloorHeight,
			CeilHeight:  s.CeilHeight,
			FloorName:   WadNameToStr(s.FloorName),
			CeilName:    WadNameToStr(s.CeilName),
			LightLevel:  s.LightLevel,
			Special:     s.Special,
			Tag:         s.Tag,
		}
	}
	return out
}

// ExportWad loads the archive at wadPath and writes one json document per
// level into outDir, named <archiveBase>_<levelIndex>.json (index is
// 0-based, order of appearance in the directory). With compress set, each
// document is streamed through zstd into a .json.zst file instead
func ExportWad(wadPath string, outDir string, compress bool) error {
	wad, err := LoadWad(wadPath)
	if err != nil {
		return err
	}
	if len(wad.Levels) == 0 {
		return fmt.Errorf("%s contains no levels", wadPath)
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}
	base := strings.TrimSuffix(filepath.Base(wadPath), filepath.Ext(wadPath))
	for i, lv := range wad.Levels {
		outName := filepath.Join(outDir, fmt.Sprintf("%s_%d.json", base, i))
		if compress {
			outName += ".zst"
		}
		if err := exportLevel(outName, lv, compress); err != nil {
			return err
		}
		Log.Printf("Exported level %s to %s\n", lv.Name, outName)
	}
	return nil
}

func exportLevel(outName string, lv *LevelData, compress bool) error {
	fout, err := os.Create(outName)
	if err != nil {
		return fmt.Errorf("create %s: %w", outName, err)
	}
	defer fout.Close()

	if compress {
		enc, err := zstd.NewWriter(fout)
		if err != nil {
			return fmt.Errorf("zstd writer for %s: %w", outName, err)
		}
		if err := encodeLevelJson(enc, lv); err != nil {
			enc.Close()
			return fmt.Errorf("encode %s: %w", outName, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("finish %s: %w", outName, err)
		}
	} else {
		if err := encodeLevelJson(fout, lv); err != nil {
			return fmt.Errorf("encode %s: %w", outName, err)
		}
	}
	return fout.Close()
}

func encodeLevelJson(w io.Writer, lv *LevelData) error {
	je := json.NewEncoder(w)
	je.SetIndent("", "  ")
	return je.Encode(levelToJson(lv))
}
