// Package geometry implements the small boundary-representation kernel
// used by the export pipeline: 3D vectors, placement transforms, faces
// as planar vertex loops, shell assembly, and axis-aligned bounding
// boxes.
//
// Faces arriving from a document snapshot are piecewise-planar patches;
// curved surfaces are discretized by the snapshot producer. The kernel
// therefore never evaluates parametric surfaces — it copies, transforms,
// and groups vertex loops.
package geometry
