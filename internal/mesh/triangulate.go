package mesh

import (
	"fmt"
	"math"

	"github.com/meshworks/face-export/internal/geometry"
)

// point2 is a face vertex projected into the face plane.
type point2 struct {
	x, y float64
}

// triangulate ear-clips a planar face into triangles. The output
// winding matches the face normal.
func triangulate(f *geometry.Face) ([]geometry.Triangle, error) {
	verts := f.Vertices
	if len(verts) < 3 {
		return nil, fmt.Errorf("face has %d vertices, need at least 3", len(verts))
	}
	if len(verts) == 3 {
		return []geometry.Triangle{{V1: verts[0], V2: verts[1], V3: verts[2]}}, nil
	}

	n := f.Normal()
	if n.Length() == 0 {
		return nil, fmt.Errorf("degenerate face: vertices span no area")
	}

	// Project onto an in-plane basis (u, v) with u x v = n, so that
	// counter-clockwise 2D winding corresponds to the face normal.
	u := perpendicular(n)
	v := n.Cross(u)
	pts := make([]point2, len(verts))
	for i, p := range verts {
		pts[i] = point2{x: p.Dot(u), y: p.Dot(v)}
	}

	idx := make([]int, len(verts))
	for i := range idx {
		idx[i] = i
	}
	if shoelace(pts, idx) < 0 {
		reverse(idx)
	}

	var tris []geometry.Triangle
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(pts, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, geometry.Triangle{V1: verts[prev], V2: verts[cur], V3: verts[next]})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Numerically degenerate remainder (collinear runs).
			// Fan out what is left instead of looping forever.
			for i := 1; i+1 < len(idx); i++ {
				tris = append(tris, geometry.Triangle{V1: verts[idx[0]], V2: verts[idx[i]], V3: verts[idx[i+1]]})
			}
			return tris, nil
		}
	}
	tris = append(tris, geometry.Triangle{V1: verts[idx[0]], V2: verts[idx[1]], V3: verts[idx[2]]})
	return tris, nil
}

// perpendicular returns a unit vector orthogonal to n, built by
// crossing n with the axis it is least aligned with.
func perpendicular(n geometry.Vec3) geometry.Vec3 {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	axis := geometry.Vec3{X: 1}
	if ay <= ax && ay <= az {
		axis = geometry.Vec3{Y: 1}
	} else if az <= ax && az <= ay {
		axis = geometry.Vec3{Z: 1}
	}
	return n.Cross(axis).Normalized()
}

// shoelace returns twice the signed area of the polygon traced by idx.
func shoelace(pts []point2, idx []int) float64 {
	area := 0.0
	for i, cur := range idx {
		next := idx[(i+1)%len(idx)]
		area += pts[cur].x*pts[next].y - pts[next].x*pts[cur].y
	}
	return area
}

// reverse flips idx in place.
func reverse(idx []int) {
	for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// cross2 returns the 2D cross product of (b-a) and (c-a); positive for
// a left turn.
func cross2(a, b, c point2) float64 {
	return (b.x-a.x)*(c.y-a.y) - (c.x-a.x)*(b.y-a.y)
}

// isEar reports whether cur forms a clippable ear: a convex corner
// whose triangle contains no other remaining vertex.
func isEar(pts []point2, idx []int, prev, cur, next int) bool {
	if cross2(pts[prev], pts[cur], pts[next]) <= 0 {
		return false
	}
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if pointInTriangle(pts[j], pts[prev], pts[cur], pts[next]) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies strictly inside the CCW
// triangle (a, b, c).
func pointInTriangle(p, a, b, c point2) bool {
	return cross2(a, b, p) > 0 && cross2(b, c, p) > 0 && cross2(c, a, p) > 0
}
