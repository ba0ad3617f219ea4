package vmath

import "math"

// Rect is an axis-aligned box spanning Min to Max inclusive
type Rect struct {
	Min, Max Vec2
}

// Width returns horizontal extent
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns vertical extent
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains checks if point is within box
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// BoundsOf returns the smallest box containing all points
// Returns false for an empty input
func BoundsOf(points ...Vec2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := Rect{
		Min: Vec2{math.Inf(1), math.Inf(1)},
		Max: Vec2{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, true
}

// SegmentBounds returns the box around a run of segments
func SegmentBounds(segs []Segment) (Rect, bool) {
	pts := make([]Vec2, 0, len(segs)*2)
	for _, s := range segs {
		pts = append(pts, s.A, s.B)
	}
	return BoundsOf(pts...)
}
