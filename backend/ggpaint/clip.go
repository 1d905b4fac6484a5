package ggpaint

import "github.com/gogpu/gg"

// clipPolygon cuts the convex polygon in against the rectangle
// x1, y1, x2, y2 (Sutherland-Hodgman) and appends the result to dst.
func clipPolygon(dst, in []gg.Point, rect [4]float32) []gg.Point {
	x1, y1 := float64(rect[0]), float64(rect[1])
	x2, y2 := float64(rect[2]), float64(rect[3])

	cur := append([]gg.Point(nil), in...)
	edges := []struct {
		inside func(gg.Point) bool
		cross  func(a, b gg.Point) gg.Point
	}{
		{func(p gg.Point) bool { return p.X >= x1 }, func(a, b gg.Point) gg.Point { return atX(a, b, x1) }},
		{func(p gg.Point) bool { return p.X <= x2 }, func(a, b gg.Point) gg.Point { return atX(a, b, x2) }},
		{func(p gg.Point) bool { return p.Y >= y1 }, func(a, b gg.Point) gg.Point { return atY(a, b, y1) }},
		{func(p gg.Point) bool { return p.Y <= y2 }, func(a, b gg.Point) gg.Point { return atY(a, b, y2) }},
	}
	for _, e := range edges {
		if len(cur) == 0 {
			break
		}
		var next []gg.Point
		prev := cur[len(cur)-1]
		for _, p := range cur {
			switch {
			case e.inside(p) && e.inside(prev):
				next = append(next, p)
			case e.inside(p):
				next = append(next, e.cross(prev, p), p)
			case e.inside(prev):
				next = append(next, e.cross(prev, p))
			}
			prev = p
		}
		cur = next
	}
	return append(dst, cur...)
}

func atX(a, b gg.Point, x float64) gg.Point {
	t := (x - a.X) / (b.X - a.X)
	return gg.Pt(x, a.Y+t*(b.Y-a.Y))
}

func atY(a, b gg.Point, y float64) gg.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return gg.Pt(a.X+t*(b.X-a.X), y)
}
