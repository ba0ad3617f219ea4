package vmath

// Segment is a line from A to B
type Segment struct {
	A, B Vec2
}

// Direction returns B - A
func (s Segment) Direction() Vec2 {
	return s.B.Sub(s.A)
}

// SegmentIntersect reports whether two segments cross and where
// Parallel and collinear segments report no intersection
func SegmentIntersect(s1, s2 Segment) (Vec2, bool) {
	r := s1.Direction()
	q := s2.Direction()
	denom := r.Cross(q)
	if denom == 0 {
		return Vec2{}, false
	}

	diff := s2.A.Sub(s1.A)
	t := diff.Cross(q) / denom
	u := diff.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return s1.A.Add(r.Scale(t)), true
}

// CirclesOverlap tests two circles for overlap, touching counts
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	d := c1.Sub(c2)
	rs := r1 + r2
	return d.Dot(d) <= rs*rs
}
