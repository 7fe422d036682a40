package geometry

import "math"

// Transform is a rigid placement: a rotation about an axis through the
// origin followed by a translation. It mirrors the position + axis +
// angle form that CAD placements are exchanged in.
type Transform struct {
	// m is a 3x4 row-major matrix; the fourth column is the translation.
	m [3][4]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: [3][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}}
}

// NewTransform builds a placement from a translation, a rotation axis,
// and a rotation angle in degrees. A zero axis yields a pure translation.
func NewTransform(position, axis Vec3, angleDeg float64) Transform {
	u := axis.Normalized()
	if u.Length() == 0 || angleDeg == 0 {
		t := Identity()
		t.m[0][3] = position.X
		t.m[1][3] = position.Y
		t.m[2][3] = position.Z
		return t
	}

	// Rodrigues rotation matrix for angle theta about unit axis u.
	theta := angleDeg * math.Pi / 180
	c := math.Cos(theta)
	s := math.Sin(theta)
	ic := 1 - c

	return Transform{m: [3][4]float64{
		{c + u.X*u.X*ic, u.X*u.Y*ic - u.Z*s, u.X*u.Z*ic + u.Y*s, position.X},
		{u.Y*u.X*ic + u.Z*s, c + u.Y*u.Y*ic, u.Y*u.Z*ic - u.X*s, position.Y},
		{u.Z*u.X*ic - u.Y*s, u.Z*u.Y*ic + u.X*s, c + u.Z*u.Z*ic, position.Z},
	}}
}

// Apply transforms the point v.
func (t Transform) Apply(v Vec3) Vec3 {
	return Vec3{
		X: t.m[0][0]*v.X + t.m[0][1]*v.Y + t.m[0][2]*v.Z + t.m[0][3],
		Y: t.m[1][0]*v.X + t.m[1][1]*v.Y + t.m[1][2]*v.Z + t.m[1][3],
		Z: t.m[2][0]*v.X + t.m[2][1]*v.Y + t.m[2][2]*v.Z + t.m[2][3],
	}
}
