// Package classify partitions the faces of a solid into named groups by
// comparing per-face surface colors against configured reference colors.
//
// Matching is a direct per-channel RGB comparison within a shared
// tolerance — no color-space conversion. References are tested in
// configured order and the first match wins, which is the deliberate
// tie-break when tolerance windows overlap.
package classify

import (
	"math"

	"github.com/meshworks/face-export/internal/geometry"
	"github.com/meshworks/face-export/internal/model"
)

// Matches reports whether candidate matches reference within tolerance:
// the absolute difference of each RGB channel must be strictly less
// than tolerance. Alpha is ignored. A tolerance of zero or less never
// matches.
func Matches(candidate, reference model.Color, tolerance float64) bool {
	return math.Abs(candidate.R-reference.R) < tolerance &&
		math.Abs(candidate.G-reference.G) < tolerance &&
		math.Abs(candidate.B-reference.B) < tolerance
}

// Classify partitions face identifiers 1..len(faces) into groups.
//
// Each face's color is tested against the references in order; the
// first match assigns the face to that reference's group. Faces
// matching no reference fall into the body group. Every group list is
// ascending, the groups are disjoint, and together they cover all
// identifiers exactly once.
//
// A length disagreement between faces and colors is a hard failure
// (count-mismatch), fatal for the current target.
func Classify(label string, faces []*geometry.Face, colors []model.Color, references []model.ReferenceColor, tolerance float64) (model.FaceGroups, error) {
	if len(faces) != len(colors) {
		return nil, model.NewTargetError(label, model.KindCountMismatch,
			"color count (%d) does not match face count (%d)", len(colors), len(faces))
	}

	groups := model.FaceGroups{}
	for _, ref := range references {
		groups[ref.Group] = []int{}
	}
	groups[model.GroupBody] = []int{}

	for i := range faces {
		id := i + 1
		group := model.GroupBody
		for _, ref := range references {
			if Matches(colors[i], ref.Color, tolerance) {
				group = ref.Group
				break
			}
		}
		groups[group] = append(groups[group], id)
	}
	return groups, nil
}
