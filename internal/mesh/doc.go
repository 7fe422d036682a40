// Package mesh implements deflection-based tessellation of shapes into
// triangle facets.
//
// The Mesher interface is the seam between the export pipeline and the
// tessellation algorithm. DeflectionMesher is the production
// implementation: each face is ear-clip triangulated in its own plane,
// then facets are midpoint-subdivided until every edge is shorter than
// the linear deflection bound. With the relative flag set, the bound is
// the deflection value scaled by the shape's bounding-box diagonal.
//
// Faces are planar patches, so the tessellation introduces no deviation
// between adjacent facet normals within a face; the angular deflection
// parameter is validated and carried for the contract.
package mesh
