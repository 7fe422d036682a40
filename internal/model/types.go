package model

import (
	"fmt"
	"strings"
)

// Color is an RGBA surface color with channels in [0.0, 1.0].
// Document snapshots store one Color per face, index-aligned with the
// face sequence. Only the RGB channels participate in classification;
// alpha is carried through untouched.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Validate checks that every channel lies in [0.0, 1.0].
func (c Color) Validate() error {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}} {
		if ch.value < 0 || ch.value > 1 {
			return fmt.Errorf("color channel %s = %g out of range [0, 1]", ch.name, ch.value)
		}
	}
	return nil
}

// String returns a compact representation of the RGB channels,
// e.g. "(1.00, 0.00, 0.00)". Alpha is omitted because classification
// never looks at it.
func (c Color) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.R, c.G, c.B)
}

// GroupName identifies one of the three face groups produced by
// classification. Inlet and outlet are matched against configured
// reference colors; body is the catch-all for everything else.
type GroupName string

const (
	// GroupInlet holds faces painted with the inlet reference color.
	GroupInlet GroupName = "inlet"

	// GroupOutlet holds faces painted with the outlet reference color.
	GroupOutlet GroupName = "outlet"

	// GroupBody is the catch-all group for faces matching no
	// reference color.
	GroupBody GroupName = "body"
)

// GroupNames returns all group names in export order. The order is
// fixed: inlet, outlet, body — exports always happen in this sequence.
func GroupNames() []GroupName {
	return []GroupName{GroupInlet, GroupOutlet, GroupBody}
}

// String returns the string representation of the group name.
func (g GroupName) String() string {
	return string(g)
}

// IsValid checks whether the GroupName is one of the three defined groups.
func (g GroupName) IsValid() bool {
	switch g {
	case GroupInlet, GroupOutlet, GroupBody:
		return true
	default:
		return false
	}
}

// ParseGroupName converts a string to a GroupName.
// Returns an error if the string does not match any defined group.
func ParseGroupName(s string) (GroupName, error) {
	g := GroupName(strings.ToLower(s))
	if !g.IsValid() {
		return "", fmt.Errorf("invalid group name: %q (valid: inlet, outlet, body)", s)
	}
	return g, nil
}

// ReferenceColor is a named RGB triple that faces are matched against.
// References are tested in configured order; the first match wins when
// tolerance windows overlap.
type ReferenceColor struct {
	// Group is the face group assigned on a match.
	Group GroupName

	// Color is the reference RGB value. Alpha is ignored.
	Color Color
}

// FaceGroups maps each group name to the ascending 1-based face
// identifiers assigned to it. Groups are disjoint and together cover
// every face identifier exactly once.
type FaceGroups map[GroupName][]int

// Total returns the number of face identifiers across all groups.
func (fg FaceGroups) Total() int {
	n := 0
	for _, ids := range fg {
		n += len(ids)
	}
	return n
}

// ExportStatus describes the outcome of one group export.
type ExportStatus string

const (
	// StatusExported indicates a file was written for the group.
	StatusExported ExportStatus = "exported"

	// StatusSkipped indicates the group was empty and no file was
	// written. Skipping is a normal outcome, not a failure.
	StatusSkipped ExportStatus = "skipped"
)

// String returns the string representation of the export status.
func (s ExportStatus) String() string {
	return string(s)
}

// Artifact records one group export for one target label.
type Artifact struct {
	// Label is the solid's label the artifact belongs to.
	Label string `json:"label"`

	// Group is the face group that was exported.
	Group GroupName `json:"group"`

	// Path is the output file path. Empty when Status is skipped.
	Path string `json:"path,omitempty"`

	// FaceCount is the number of boundary faces in the group.
	FaceCount int `json:"faceCount"`

	// TriangleCount is the number of triangles in the written mesh.
	// Zero when Status is skipped.
	TriangleCount int `json:"triangleCount"`

	// Status reports whether the group was exported or skipped.
	Status ExportStatus `json:"status"`
}

// TargetResult aggregates the artifacts produced for one successfully
// processed target label.
type TargetResult struct {
	// Label is the target label that was processed.
	Label string `json:"label"`

	// Artifacts holds one entry per group, in export order.
	Artifacts []Artifact `json:"artifacts"`
}

// TargetFailure records a target label that could not be processed,
// together with the error that stopped it.
type TargetFailure struct {
	// Label is the target label that failed.
	Label string `json:"label"`

	// Reason is the human-readable failure description.
	Reason string `json:"reason"`
}

// RunSummary is the aggregate outcome of one pipeline run. Partial
// success — some labels exported, others failed — is the expected
// steady state, not an anomaly.
type RunSummary struct {
	// Results holds one entry per successfully processed label,
	// in configured target order.
	Results []TargetResult `json:"results"`

	// Failed holds one entry per label that raised an error,
	// in configured target order.
	Failed []TargetFailure `json:"failed,omitempty"`
}

// ProcessedLabels returns the labels that completed successfully,
// in processing order.
func (s *RunSummary) ProcessedLabels() []string {
	labels := make([]string, 0, len(s.Results))
	for _, r := range s.Results {
		labels = append(labels, r.Label)
	}
	return labels
}

// Ok reports whether every target label was processed without error.
func (s *RunSummary) Ok() bool {
	return len(s.Failed) == 0
}
