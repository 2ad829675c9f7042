// seehuhn.de/go/qrimage - render QR code paths to images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a polygon edge in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasterizer fills polygons with solid, aliased spans, using a scanline
// algorithm with an active edge list. Create one instance and reuse it for
// multiple polygons. Internal buffers grow as needed but never shrink.
//
// Vertices are rounded to whole pixels and pixels on the polygon boundary
// are included on all sides, so that every vertex pixel is painted. This
// matches the filled polygons of libgd.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	edges     []edge // edge list for current polygon
	activeIdx []int  // indices of active edges
	crossings []int  // x positions where the current scanline crosses edges

	// Vertical extent and horizontal extent of all vertices, in whole
	// pixels.
	xMin, xMax int
	yMin, yMax int
}

// NewRasterizer returns a Rasterizer with the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{Clip: clip}
}

// Reset prepares the Rasterizer for a new clip rectangle, preserving
// internal buffer capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
}

// Fill fills the polygon described by p. Each subpath is closed
// implicitly. Quadratic and cubic segments are not flattened: their
// control points are used as polygon vertices.
//
// The span callback is called for every horizontal run of pixels inside the
// polygon and the clip rectangle; xMin and xMax are both inclusive.
// Overlapping subpaths are combined using the even-odd rule.
//
// The return value is the number of polygon vertices, i.e. the number of
// points yielded by p.
func (r *Rasterizer) Fill(p path.Path, span func(y, xMin, xMax int)) int {
	n := r.collectPathEdges(p)
	if n == 0 {
		return 0
	}

	clipXMin := int(r.Clip.LLx)
	clipXMax := int(r.Clip.URx) - 1
	clipYMin := int(r.Clip.LLy)
	clipYMax := int(r.Clip.URy) - 1

	emit := func(y, xa, xb int) {
		xa = max(xa, clipXMin)
		xb = min(xb, clipXMax)
		if xa <= xb {
			span(y, xa, xb)
		}
	}

	if len(r.edges) == 0 {
		// all edges are horizontal: the polygon degenerates to a line
		if r.yMin >= clipYMin && r.yMin <= clipYMax {
			emit(r.yMin, r.xMin, r.xMax)
		}
		return n
	}

	// Sort edges by upper end point
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	yStart := max(r.yMin, clipYMin)
	yEnd := min(r.yMax, clipYMax)
	for y := yStart; y <= yEnd; y++ {
		yf := float64(y)

		// Add edges that start at or above this scanline
		for nextEdge < len(r.edges) && r.edges[nextEdge].y0 <= yf {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		// On the last scanline, edges ending here take the place of the
		// edges starting here, so that the bottom boundary is filled.
		last := y == r.yMax

		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]

			// Remove edges which end above this scanline
			if e.y1 < yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			i++

			var active bool
			if last {
				active = e.y0 < yf && yf <= e.y1
			} else {
				active = e.y0 <= yf && yf < e.y1
			}
			if !active {
				continue
			}

			x := e.x0 + e.dxdy*(yf-e.y0)
			r.crossings = append(r.crossings, int(math.Floor(x+0.5)))
		}

		slices.Sort(r.crossings)
		for i := 0; i+1 < len(r.crossings); i += 2 {
			emit(y, r.crossings[i], r.crossings[i+1])
		}
	}

	return n
}

// collectPathEdges walks the path, rounds the vertices to whole pixels and
// builds the edge list. It returns the number of vertices seen.
func (r *Rasterizer) collectPathEdges(p path.Path) int {
	r.edges = r.edges[:0]
	if p == nil {
		return 0
	}

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start
	open := false
	n := 0

	addVertex := func(v vec.Vec2, start bool) {
		v = vec.Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
		x, y := int(v.X), int(v.Y)
		if n == 0 {
			start = true
			r.xMin, r.xMax = x, x
			r.yMin, r.yMax = y, y
		} else {
			r.xMin = min(r.xMin, x)
			r.xMax = max(r.xMax, x)
			r.yMin = min(r.yMin, y)
			r.yMax = max(r.yMax, y)
		}
		n++

		if start {
			if open {
				r.addEdge(current, subpath)
			}
			subpath = v
			open = true
		} else {
			if !open {
				subpath = current
				open = true
			}
			r.addEdge(current, v)
		}
		current = v
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			addVertex(pts[0], true)

		case path.CmdLineTo:
			addVertex(pts[0], false)

		case path.CmdQuadTo:
			addVertex(pts[0], false)
			addVertex(pts[1], false)

		case path.CmdCubeTo:
			addVertex(pts[0], false)
			addVertex(pts[1], false)
			addVertex(pts[2], false)

		case path.CmdClose:
			if open {
				r.addEdge(current, subpath)
				current = subpath
				open = false
			}
		}
	}
	if open {
		r.addEdge(current, subpath)
	}

	return n
}

// addEdge adds the edge from p0 to p1, skipping horizontal edges.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	if p0.Y == p1.Y {
		return
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
	})
}
