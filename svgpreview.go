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

// Top-down svg rendering of level geometry
package main

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

type LevelBounds struct {
	Xmin int16
	Ymin int16
	Xmax int16
	Ymax int16
}

func GetBounds(vertices []Vertex) LevelBounds {
	Xmin := int16(32767)
	Ymin := int16(32767)
	Xmax := int16(-32768)
	Ymax := int16(-32768)
	for _, v := range vertices {
		if v.XPos < Xmin {
			Xmin = v.XPos
		}
		if v.YPos < Ymin {
			Ymin = v.YPos
		}
		if v.XPos > Xmax {
			Xmax = v.XPos
		}
		if v.YPos > Ymax {
			Ymax = v.YPos
		}
	}
	return LevelBounds{
		Xmin: Xmin,
		Ymin: Ymin,
		Xmax: Xmax,
		Ymax: Ymax,
	}
}

func degreesToRadians[T constraints.Integer | constraints.Float](n T) float64 {
	return float64(n) * (math.Pi / 180)
}

const PREVIEW_MARGIN = 32
const PREVIEW_ARROW_LEN = 24

// WritePreview renders the level's linedefs and things as a flat svg map.
// Wad coordinates grow north, svg coordinates grow south, so Y is flipped.
// A linedef referencing a vertex past the end of VERTEXES is drawn not at
// all and reported on the log - the level is inconsistent but still
// previewable
func WritePreview(w io.Writer, lv *LevelData) error {
	bounds := GetBounds(lv.Vertices)
	width := int(bounds.Xmax) - int(bounds.Xmin) + 2*PREVIEW_MARGIN
	height := int(bounds.Ymax) - int(bounds.Ymin) + 2*PREVIEW_MARGIN
	if len(lv.Vertices) == 0 {
		width = 2 * PREVIEW_MARGIN
		height = 2 * PREVIEW_MARGIN
	}
	// Wad space -> svg space
	tx := func(x int16) int {
		return int(x) - int(bounds.Xmin) + PREVIEW_MARGIN
	}
	ty := func(y int16) int {
		return int(bounds.Ymax) - int(y) + PREVIEW_MARGIN
	}

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height); err != nil {
		return err
	}
	fmt.Fprintf(w, "<rect width=\"%d\" height=\"%d\" fill=\"#202020\"/>\n",
		width, height)

	for i, line := range lv.Linedefs {
		if int(line.StartVertex) >= len(lv.Vertices) ||
			int(line.EndVertex) >= len(lv.Vertices) {
			Log.Printf("Linedef %d in level %s references missing vertex (%d or %d of %d) - not drawn.\n",
				i, lv.Name, line.StartVertex, line.EndVertex, len(lv.Vertices))
			continue
		}
		v1 := lv.Vertices[line.StartVertex]
		v2 := lv.Vertices[line.EndVertex]
		color := "#909090"
		if line.BackSdef == SIDEDEF_NONE {
			// One-sided walls stand out
			color = "#e0e0e0"
		}
		fmt.Fprintf(w,
			"<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			tx(v1.XPos), ty(v1.YPos), tx(v2.XPos), ty(v2.YPos), color)
	}

	for _, thing := range lv.Things {
		color := "#40c040"
		if thing.Type == THING_PLAYER1_START {
			color = "#40a0ff"
		}
		cx := tx(thing.XPos)
		cy := ty(thing.YPos)
		fmt.Fprintf(w, "<circle cx=\"%d\" cy=\"%d\" r=\"6\" fill=\"%s\"/>\n",
			cx, cy, color)
		if thing.Type == THING_PLAYER1_START {
			rad := degreesToRadians(thing.Angle)
			ax := cx + int(math.Round(PREVIEW_ARROW_LEN*math.Cos(rad)))
			// Y flip again: facing angle is in wad space
			ay := cy - int(math.Round(PREVIEW_ARROW_LEN*math.Sin(rad)))
			fmt.Fprintf(w,
				"<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"2\"/>\n",
				cx, cy, ax, ay, color)
		}
	}

	if _, err := fmt.Fprintf(w, "</svg>\n"); err != nil {
		return err
	}
	return nil
}
