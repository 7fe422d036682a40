package geometry

import "fmt"

// Face is one bounded surface patch of a solid's boundary: a planar
// loop of at least three vertices in counter-clockwise order when
// viewed from the outward normal side.
type Face struct {
	Vertices []Vec3
}

// NewFace creates a face from a vertex loop. Fewer than three vertices
// is rejected — such a loop bounds no area.
func NewFace(vertices []Vec3) (*Face, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(vertices))
	}
	return &Face{Vertices: vertices}, nil
}

// Copy returns an independent copy of the face. Transforming the copy
// never mutates the original's shared vertex data.
func (f *Face) Copy() *Face {
	vertices := make([]Vec3, len(f.Vertices))
	copy(vertices, f.Vertices)
	return &Face{Vertices: vertices}
}

// Transform applies the placement to every vertex in place.
// Call Copy first when the face is shared.
func (f *Face) Transform(t Transform) {
	for i, v := range f.Vertices {
		f.Vertices[i] = t.Apply(v)
	}
}

// Normal returns the face's unit normal computed with Newell's method,
// which stays stable for loops with nearly collinear runs of vertices.
func (f *Face) Normal() Vec3 {
	var n Vec3
	for i, cur := range f.Vertices {
		next := f.Vertices[(i+1)%len(f.Vertices)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalized()
}

// Centroid returns the average of the face's vertices.
func (f *Face) Centroid() Vec3 {
	var c Vec3
	for _, v := range f.Vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(f.Vertices)))
}

// Faces returns the face itself as a one-element slice, letting a lone
// face serve directly as the shape to mesh.
func (f *Face) Faces() []*Face {
	return []*Face{f}
}

// BoundingBox returns the axis-aligned bounding box of the face.
func (f *Face) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, v := range f.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Shape is anything the mesh generator can tessellate: a single face
// or a shell of several.
type Shape interface {
	// Faces returns the patches making up the shape.
	Faces() []*Face

	// BoundingBox returns the axis-aligned bounds of the shape.
	BoundingBox() BoundingBox
}

// Shell is a connected collection of faces assembled into one shape.
// A shell does not require closed-volume validity — partial boundaries
// such as "just the inlet faces" are expected and valid.
type Shell struct {
	faces []*Face
}

// NewShell assembles faces into a shell.
func NewShell(faces []*Face) *Shell {
	return &Shell{faces: faces}
}

// Faces returns the shell's faces.
func (s *Shell) Faces() []*Face {
	return s.faces
}

// BoundingBox returns the axis-aligned bounding box over all faces.
func (s *Shell) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, f := range s.faces {
		for _, v := range f.Vertices {
			bbox.Extend(v)
		}
	}
	return bbox
}

// BoundingBox is an axis-aligned box accumulated by Extend.
type BoundingBox struct {
	Min, Max Vec3

	empty bool
}

// NewBoundingBox returns an empty bounding box; the first Extend sets
// both corners.
func NewBoundingBox() BoundingBox {
	return BoundingBox{empty: true}
}

// Extend grows the box to include p.
func (b *BoundingBox) Extend(p Vec3) {
	if b.empty {
		b.Min, b.Max = p, p
		b.empty = false
		return
	}
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Diagonal returns the length of the box diagonal, the size reference
// for relative deflection. Zero for an empty box.
func (b BoundingBox) Diagonal() float64 {
	if b.empty {
		return 0
	}
	return b.Max.Sub(b.Min).Length()
}
