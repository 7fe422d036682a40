package geometry

// Triangle is a single mesh facet with vertices in counter-clockwise
// order relative to the outward normal.
type Triangle struct {
	V1, V2, V3 Vec3
}

// Normal returns the facet's unit normal by the right-hand rule.
func (t Triangle) Normal() Vec3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalized()
}

// Area returns the facet's surface area.
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2
}

// MaxEdgeLength returns the length of the triangle's longest edge.
// The deflection mesher refines a facet until this drops under the
// linear deflection bound.
func (t Triangle) MaxEdgeLength() float64 {
	a := t.V2.Sub(t.V1).Length()
	b := t.V3.Sub(t.V2).Length()
	c := t.V1.Sub(t.V3).Length()
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
