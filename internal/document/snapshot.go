package document

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// ObjectKind tags a top-level document object.
type ObjectKind string

const (
	// KindBody is a direct solid container: it owns a tip feature
	// with geometry and colors.
	KindBody ObjectKind = "body"

	// KindPart is a grouping object holding member objects.
	KindPart ObjectKind = "part"
)

// String returns the string representation of the object kind.
func (k ObjectKind) String() string {
	return string(k)
}

// IsValid checks whether the ObjectKind is one of the defined kinds.
func (k ObjectKind) IsValid() bool {
	return k == KindBody || k == KindPart
}

// ParseObjectKind converts a string to an ObjectKind.
// Returns an error if the string does not match a defined kind.
func ParseObjectKind(s string) (ObjectKind, error) {
	k := ObjectKind(strings.ToLower(s))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid object kind: %q (valid: body, part)", s)
	}
	return k, nil
}

// Snapshot is a loaded CAD document snapshot.
type Snapshot struct {
	// Name is the document name, informational only.
	Name string `json:"name"`

	// Objects are the document's top-level named objects.
	Objects []*Object `json:"objects"`
}

// Object is one named document object: a body or a part.
type Object struct {
	// Label is the user-visible name searched during resolution.
	Label string `json:"label"`

	// Kind tags the object as body or part.
	Kind ObjectKind `json:"kind"`

	// Members holds a part's member objects. Nil for bodies.
	Members []*Object `json:"members,omitempty"`

	// Tip is the body's current feature whose shape and colors are
	// authoritative. Nil when the body carries no resolved feature.
	Tip *Feature `json:"tip,omitempty"`

	// Placement is the object's global placement. Nil means identity.
	Placement *Placement `json:"placement,omitempty"`
}

// Feature is a modeling-history feature exposing a shape and a color
// annotation.
type Feature struct {
	// Name is the feature's name, informational only.
	Name string `json:"name"`

	// Faces is the ordered face sequence of the feature's shape.
	// Face identifiers are 1-based positions in this sequence. A nil
	// value means the feature lacks geometry; an empty slice is a
	// shape with zero faces.
	Faces []FaceSpec `json:"faces"`

	// DiffuseColor is the per-face RGBA annotation, index-aligned
	// with Faces. Nil means no color annotation is present.
	DiffuseColor [][]float64 `json:"diffuseColor"`
}

// FaceSpec is one face as stored in a snapshot: a planar vertex loop.
type FaceSpec struct {
	// Vertices is the boundary loop, counter-clockwise when viewed
	// from outside the solid.
	Vertices [][3]float64 `json:"vertices"`
}

// Placement is a global placement in position + axis + angle form.
type Placement struct {
	// Position is the translation.
	Position [3]float64 `json:"position"`

	// Axis is the rotation axis. A zero axis is a pure translation.
	Axis [3]float64 `json:"axis"`

	// Angle is the rotation angle in degrees.
	Angle float64 `json:"angle"`
}

// Load reads and parses a snapshot file. Comments and trailing commas
// are stripped before JSON decoding. A snapshot that fails to load
// aborts the whole run — it is the one global fatal error.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(jsonc.ToJSON(data), &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	if err := snap.validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// validate rejects structurally broken snapshots early, so resolution
// never has to branch on malformed objects.
func (s *Snapshot) validate() error {
	for i, obj := range s.Objects {
		if err := obj.validate(); err != nil {
			return fmt.Errorf("object %d: %w", i+1, err)
		}
	}
	return nil
}

func (o *Object) validate() error {
	if o.Label == "" {
		return fmt.Errorf("label must not be empty")
	}
	if !o.Kind.IsValid() {
		return fmt.Errorf("%q: invalid kind %q", o.Label, o.Kind)
	}
	for i, member := range o.Members {
		if err := member.validate(); err != nil {
			return fmt.Errorf("%q member %d: %w", o.Label, i+1, err)
		}
	}
	return nil
}
