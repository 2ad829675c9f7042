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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// poly builds a closed polygon path.
func poly(pts ...vec.Vec2) path.Path {
	return polygon(pts)
}

// join concatenates paths.
func join(ps ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range ps {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// fillGrid fills p into a size×size grid and returns the grid together
// with the vertex count reported by the rasterizer.
func fillGrid(t *testing.T, p path.Path, size int) ([]bool, int) {
	t.Helper()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
	r := NewRasterizer(clip)
	grid := make([]bool, size*size)
	n := r.Fill(p, func(y, xMin, xMax int) {
		if y < 0 || y >= size || xMin < 0 || xMax >= size || xMin > xMax {
			t.Fatalf("span y=%d [%d, %d] outside clip", y, xMin, xMax)
		}
		for x := xMin; x <= xMax; x++ {
			if grid[y*size+x] {
				t.Errorf("pixel (%d, %d) filled twice", x, y)
			}
			grid[y*size+x] = true
		}
	})
	return grid, n
}

func countSet(grid []bool) int {
	n := 0
	for _, v := range grid {
		if v {
			n++
		}
	}
	return n
}

// TestFillSquare verifies that boundary pixels are included on all sides.
func TestFillSquare(t *testing.T) {
	const size = 32
	grid, _ := fillGrid(t, poly(pt(10, 10), pt(20, 10), pt(20, 20), pt(10, 20)), size)

	for y := range size {
		for x := range size {
			want := x >= 10 && x <= 20 && y >= 10 && y <= 20
			if grid[y*size+x] != want {
				t.Errorf("pixel (%d, %d): filled=%t, want %t", x, y, grid[y*size+x], want)
			}
		}
	}
}

func TestFillVertexCount(t *testing.T) {
	cases := []struct {
		name string
		p    path.Path
		want int
	}{
		{"triangle", poly(pt(10, 2), pt(18, 12), pt(2, 12)), 3},
		{"square", poly(pt(1, 1), pt(9, 1), pt(9, 9), pt(1, 9)), 4},
		{"line", poly(pt(2, 3), pt(8, 3)), 2},
		{"point", poly(pt(4, 4)), 1},
		{"empty", join(), 0},
		{"nil", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, n := fillGrid(t, c.p, 20)
			if n != c.want {
				t.Errorf("got %d vertices, want %d", n, c.want)
			}
		})
	}
}

// TestFillTriangleVertices checks that the pixels under all vertices are
// filled, including the apex where both edges start.
func TestFillTriangleVertices(t *testing.T) {
	const size = 20
	grid, _ := fillGrid(t, poly(pt(10, 2), pt(18, 12), pt(2, 12)), size)

	for _, v := range [][2]int{{10, 2}, {18, 12}, {2, 12}} {
		if !grid[v[1]*size+v[0]] {
			t.Errorf("vertex pixel (%d, %d) not filled", v[0], v[1])
		}
	}

	// the apex row consists of the apex only
	for x := range size {
		if grid[2*size+x] != (x == 10) {
			t.Errorf("apex row: pixel %d filled=%t", x, grid[2*size+x])
		}
	}

	// the bottom row runs from vertex to vertex
	for x := range size {
		want := x >= 2 && x <= 18
		if grid[12*size+x] != want {
			t.Errorf("bottom row: pixel %d filled=%t, want %t", x, grid[12*size+x], want)
		}
	}
}

func TestFillRoundsVertices(t *testing.T) {
	const size = 16
	a, _ := fillGrid(t, poly(pt(2.4, 2.4), pt(7.6, 2.4), pt(7.6, 7.6), pt(2.4, 7.6)), size)
	b, _ := fillGrid(t, poly(pt(2, 2), pt(8, 2), pt(8, 8), pt(2, 8)), size)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel (%d, %d) differs", i%size, i/size)
		}
	}
}

func TestFillClip(t *testing.T) {
	grid, n := fillGrid(t, poly(pt(-5, -5), pt(5, -5), pt(5, 5), pt(-5, 5)), 10)
	if n != 4 {
		t.Errorf("got %d vertices, want 4", n)
	}
	if got := countSet(grid); got != 36 {
		t.Errorf("%d pixels filled, want 36", got)
	}
}

func TestFillDegenerate(t *testing.T) {
	const size = 10
	grid, _ := fillGrid(t, poly(pt(2, 3), pt(8, 3)), size)
	if got := countSet(grid); got != 7 {
		t.Errorf("%d pixels filled, want 7", got)
	}
	for x := 2; x <= 8; x++ {
		if !grid[3*size+x] {
			t.Errorf("pixel (%d, 3) not filled", x)
		}
	}
}

// TestFillEvenOdd checks that a second subpath inside the first one cuts a
// hole.
func TestFillEvenOdd(t *testing.T) {
	const size = 24
	p := join(
		poly(pt(0, 0), pt(20, 0), pt(20, 20), pt(0, 20)),
		poly(pt(5, 5), pt(15, 5), pt(15, 15), pt(5, 15)),
	)

	grid, n := fillGrid(t, p, size)
	if n != 8 {
		t.Errorf("got %d vertices, want 8", n)
	}
	if grid[10*size+10] {
		t.Error("hole is filled")
	}
	if !grid[10*size+5] || !grid[10*size+15] || !grid[10*size+2] {
		t.Error("ring is not filled")
	}
}

func TestFillReuse(t *testing.T) {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	r := NewRasterizer(clip)

	count := func() int {
		total := 0
		r.Fill(poly(pt(1, 1), pt(4, 1), pt(4, 4), pt(1, 4)), func(y, xMin, xMax int) {
			total += xMax - xMin + 1
		})
		return total
	}

	first := count()
	r.Reset(clip)
	if second := count(); second != first || first != 16 {
		t.Errorf("got %d and %d pixels, want 16 both times", first, second)
	}
}
