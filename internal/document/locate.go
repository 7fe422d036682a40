package document

import (
	"github.com/meshworks/face-export/internal/geometry"
	"github.com/meshworks/face-export/internal/model"
)

// ResolutionKind tags the outcome of a label search.
type ResolutionKind string

const (
	// DirectSolid means a body carried the label itself.
	DirectSolid ResolutionKind = "direct"

	// GroupedSolid means a part carried the label and the body was
	// taken from its members.
	GroupedSolid ResolutionKind = "grouped"

	// NotFound means no object carried the label.
	NotFound ResolutionKind = "not-found"
)

// Resolution is the tagged result of resolving a label against the
// document's top-level objects.
type Resolution struct {
	// Kind tags how the label resolved.
	Kind ResolutionKind

	// Body is the resolved solid container. Nil for NotFound, and for
	// GroupedSolid when the part holds no body member.
	Body *Object

	// Part is the grouping object the body was found in. Only set for
	// GroupedSolid.
	Part *Object
}

// Resolve searches the snapshot's top-level objects for the label.
// When both a body and a part share the label, the body takes
// precedence. For a part, the first body member is selected; a part
// without one yields a GroupedSolid resolution with a nil Body.
func (s *Snapshot) Resolve(label string) Resolution {
	var part *Object
	for _, obj := range s.Objects {
		if obj.Label != label {
			continue
		}
		switch obj.Kind {
		case KindBody:
			return Resolution{Kind: DirectSolid, Body: obj}
		case KindPart:
			if part == nil {
				part = obj
			}
		}
	}

	if part == nil {
		return Resolution{Kind: NotFound}
	}
	for _, member := range part.Members {
		if member.Kind == KindBody {
			return Resolution{Kind: GroupedSolid, Body: member, Part: part}
		}
	}
	return Resolution{Kind: GroupedSolid, Part: part}
}

// Solid is a resolved boundary-representation object: an ordered face
// sequence, the index-aligned color annotation, and a global placement.
// It is a read-only view over the snapshot for the duration of one
// target's processing.
type Solid struct {
	label     string
	faces     []*geometry.Face
	colors    []model.Color
	placement geometry.Transform
}

// Label returns the solid's label.
func (s *Solid) Label() string {
	return s.label
}

// Faces returns the ordered face sequence. Identifiers are 1-based
// positions in this slice; the same slice backs both color extraction
// and geometry extraction, so the order cannot drift between the two.
func (s *Solid) Faces() []*geometry.Face {
	return s.faces
}

// Colors returns the per-face colors, index-aligned with Faces.
func (s *Solid) Colors() []model.Color {
	return s.colors
}

// Placement returns the solid's global placement transform.
func (s *Solid) Placement() geometry.Transform {
	return s.placement
}

// PaintedFace binds one face to its color and 1-based identifier.
type PaintedFace struct {
	ID    int
	Face  *geometry.Face
	Color model.Color
}

// PaintedFaces returns the faces bound to their colors, making the
// alignment invariant structural. Fails with a count-mismatch error
// when the annotation does not line up with the face sequence.
func (s *Solid) PaintedFaces() ([]PaintedFace, error) {
	if len(s.faces) != len(s.colors) {
		return nil, model.NewTargetError(s.label, model.KindCountMismatch,
			"color count (%d) does not match face count (%d)", len(s.colors), len(s.faces))
	}
	painted := make([]PaintedFace, len(s.faces))
	for i, f := range s.faces {
		painted[i] = PaintedFace{ID: i + 1, Face: f, Color: s.colors[i]}
	}
	return painted, nil
}

// Locate resolves a target label to a Solid ready for classification
// and export. Every failure is scoped to the label: not-found,
// empty-container, no-tip-geometry, or no-color-data.
func Locate(snap *Snapshot, label string) (*Solid, error) {
	res := snap.Resolve(label)
	switch res.Kind {
	case NotFound:
		return nil, model.NewTargetError(label, model.KindNotFound,
			"no part or body with label %q", label)
	case GroupedSolid:
		if res.Body == nil {
			return nil, model.NewTargetError(label, model.KindEmptyContainer,
				"part %q has no body", res.Part.Label)
		}
	}

	body := res.Body
	if body.Tip == nil || body.Tip.Faces == nil {
		return nil, model.NewTargetError(label, model.KindNoTipGeometry,
			"body %q has no tip with shape data", body.Label)
	}
	if body.Tip.DiffuseColor == nil {
		return nil, model.NewTargetError(label, model.KindNoColorData,
			"tip feature of body %q has no color annotation", body.Label)
	}

	faces := make([]*geometry.Face, len(body.Tip.Faces))
	for i, fs := range body.Tip.Faces {
		vertices := make([]geometry.Vec3, len(fs.Vertices))
		for j, v := range fs.Vertices {
			vertices[j] = geometry.Vec3{X: v[0], Y: v[1], Z: v[2]}
		}
		face, err := geometry.NewFace(vertices)
		if err != nil {
			return nil, model.NewTargetError(label, model.KindNoTipGeometry,
				"body %q face %d: %v", body.Label, i+1, err)
		}
		faces[i] = face
	}

	colors := make([]model.Color, len(body.Tip.DiffuseColor))
	for i, quad := range body.Tip.DiffuseColor {
		if len(quad) != 4 {
			return nil, model.NewTargetError(label, model.KindNoColorData,
				"body %q color %d: expected an RGBA quadruple, got %d values", body.Label, i+1, len(quad))
		}
		colors[i] = model.Color{R: quad[0], G: quad[1], B: quad[2], A: quad[3]}
	}

	placement := geometry.Identity()
	if p := body.Placement; p != nil {
		placement = geometry.NewTransform(
			geometry.Vec3{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
			geometry.Vec3{X: p.Axis[0], Y: p.Axis[1], Z: p.Axis[2]},
			p.Angle,
		)
	}

	return &Solid{
		label:     body.Label,
		faces:     faces,
		colors:    colors,
		placement: placement,
	}, nil
}
