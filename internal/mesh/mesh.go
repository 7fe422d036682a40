package mesh

import (
	"fmt"

	"github.com/meshworks/face-export/internal/geometry"
)

// Params are the three tessellation parameters. They are identical
// across all groups and all targets within one run.
type Params struct {
	// LinearDeflection is the maximum chord error. Interpreted as
	// absolute model units, or — when Relative is set — as a fraction
	// of the shape's bounding-box diagonal.
	LinearDeflection float64

	// AngularDeflection is the maximum angle in radians between
	// adjacent facet normals.
	AngularDeflection float64

	// Relative selects relative interpretation of LinearDeflection.
	Relative bool
}

// Validate checks that both deflection bounds are positive.
func (p Params) Validate() error {
	if p.LinearDeflection <= 0 {
		return fmt.Errorf("linear deflection must be positive, got %g", p.LinearDeflection)
	}
	if p.AngularDeflection <= 0 {
		return fmt.Errorf("angular deflection must be positive, got %g", p.AngularDeflection)
	}
	return nil
}

// Mesher turns a shape into triangle facets.
type Mesher interface {
	Mesh(shape geometry.Shape, params Params) ([]geometry.Triangle, error)
}

// DeflectionMesher tessellates planar faces with ear clipping followed
// by midpoint refinement against the linear deflection bound.
type DeflectionMesher struct{}

// NewDeflectionMesher creates the production mesher.
func NewDeflectionMesher() *DeflectionMesher {
	return &DeflectionMesher{}
}

// maxRefineDepth caps recursive facet subdivision. Each level splits a
// facet into four, so depth 10 bounds a single input facet at ~1M
// output facets even for a pathological deflection bound.
const maxRefineDepth = 10

// Mesh tessellates every face of the shape. The facet orientation
// follows each face's outward normal.
func (dm *DeflectionMesher) Mesh(shape geometry.Shape, params Params) ([]geometry.Triangle, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	bound := params.LinearDeflection
	if params.Relative {
		bound *= shape.BoundingBox().Diagonal()
	}

	var out []geometry.Triangle
	for i, face := range shape.Faces() {
		base, err := triangulate(face)
		if err != nil {
			return nil, fmt.Errorf("triangulate face %d: %w", i+1, err)
		}
		for _, tri := range base {
			out = refine(out, tri, bound, 0)
		}
	}
	return out, nil
}

// refine appends tri to out, splitting it into four via edge midpoints
// while its longest edge exceeds the bound. A bound of zero (degenerate
// relative bbox) disables refinement rather than recursing forever.
func refine(out []geometry.Triangle, tri geometry.Triangle, bound float64, depth int) []geometry.Triangle {
	if bound <= 0 || depth >= maxRefineDepth || tri.MaxEdgeLength() <= bound {
		return append(out, tri)
	}

	m12 := tri.V1.Mid(tri.V2)
	m23 := tri.V2.Mid(tri.V3)
	m31 := tri.V3.Mid(tri.V1)

	out = refine(out, geometry.Triangle{V1: tri.V1, V2: m12, V3: m31}, bound, depth+1)
	out = refine(out, geometry.Triangle{V1: m12, V2: tri.V2, V3: m23}, bound, depth+1)
	out = refine(out, geometry.Triangle{V1: m31, V2: m23, V3: tri.V3}, bound, depth+1)
	return refine(out, geometry.Triangle{V1: m12, V2: m23, V3: m31}, bound, depth+1)
}
