package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshworks/face-export/internal/geometry"
	"github.com/meshworks/face-export/internal/model"
)

// triangleFace is a minimal valid face loop.
func triangleFace() FaceSpec {
	return FaceSpec{Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
}

// bodyWithTip builds a body carrying n identical faces painted white.
func bodyWithTip(label string, n int) *Object {
	tip := &Feature{Name: "Pad001", Faces: []FaceSpec{}, DiffuseColor: [][]float64{}}
	for i := 0; i < n; i++ {
		tip.Faces = append(tip.Faces, triangleFace())
		tip.DiffuseColor = append(tip.DiffuseColor, []float64{1, 1, 1, 1})
	}
	return &Object{Label: label, Kind: KindBody, Tip: tip}
}

// TestResolve_DirectBody finds a body by its own label.
func TestResolve_DirectBody(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{bodyWithTip("Hub", 1)}}

	res := snap.Resolve("Hub")
	assert.Equal(t, DirectSolid, res.Kind)
	require.NotNil(t, res.Body)
	assert.Equal(t, "Hub", res.Body.Label)
	assert.Nil(t, res.Part)
}

// TestResolve_GroupedBody takes the first body member of a part.
func TestResolve_GroupedBody(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{
		{Label: "Spiral", Kind: KindPart, Members: []*Object{
			{Label: "Sketch", Kind: KindPart},
			bodyWithTip("SpiralBody", 1),
			bodyWithTip("SecondBody", 1),
		}},
	}}

	res := snap.Resolve("Spiral")
	assert.Equal(t, GroupedSolid, res.Kind)
	require.NotNil(t, res.Body)
	assert.Equal(t, "SpiralBody", res.Body.Label)
	require.NotNil(t, res.Part)
	assert.Equal(t, "Spiral", res.Part.Label)
}

// TestResolve_BodyBeatsPart applies the tie-break when both kinds
// share a label: the direct container wins.
func TestResolve_BodyBeatsPart(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{
		{Label: "Hub", Kind: KindPart, Members: []*Object{bodyWithTip("Inner", 1)}},
		bodyWithTip("Hub", 1),
	}}

	res := snap.Resolve("Hub")
	assert.Equal(t, DirectSolid, res.Kind)
	assert.Equal(t, "Hub", res.Body.Label)
}

// TestResolve_NotFound reports no match for an unknown label.
func TestResolve_NotFound(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{bodyWithTip("Hub", 1)}}
	res := snap.Resolve("Shroud")
	assert.Equal(t, NotFound, res.Kind)
	assert.Nil(t, res.Body)
}

// TestResolve_EmptyPart resolves to a grouped result with no body.
func TestResolve_EmptyPart(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{
		{Label: "Spiral", Kind: KindPart, Members: []*Object{
			{Label: "Sketch", Kind: KindPart},
		}},
	}}

	res := snap.Resolve("Spiral")
	assert.Equal(t, GroupedSolid, res.Kind)
	assert.Nil(t, res.Body)
}

// TestLocate_Success returns a solid with bound faces, colors, and
// placement applied lazily (the transform itself, not yet the faces).
func TestLocate_Success(t *testing.T) {
	body := bodyWithTip("Hub", 2)
	body.Placement = &Placement{Position: [3]float64{0, 0, 10}}
	snap := &Snapshot{Objects: []*Object{body}}

	solid, err := Locate(snap, "Hub")
	require.NoError(t, err)

	assert.Equal(t, "Hub", solid.Label())
	assert.Len(t, solid.Faces(), 2)
	assert.Len(t, solid.Colors(), 2)

	// Faces keep snapshot coordinates; the placement is applied by the
	// exporter to copies only.
	assert.Equal(t, geometry.Vec3{X: 0, Y: 0, Z: 0}, solid.Faces()[0].Vertices[0])
	moved := solid.Placement().Apply(geometry.Vec3{X: 0, Y: 0, Z: 0})
	assert.InDelta(t, 10.0, moved.Z, 1e-9)
}

// TestLocate_ErrorKinds walks each per-target failure mode.
func TestLocate_ErrorKinds(t *testing.T) {
	noTip := &Object{Label: "NoTip", Kind: KindBody}
	nilFaces := &Object{Label: "NilFaces", Kind: KindBody, Tip: &Feature{}}
	noColors := &Object{Label: "NoColors", Kind: KindBody, Tip: &Feature{
		Faces: []FaceSpec{triangleFace()},
	}}
	emptyPart := &Object{Label: "Empty", Kind: KindPart}

	snap := &Snapshot{Objects: []*Object{noTip, nilFaces, noColors, emptyPart}}

	tests := []struct {
		label string
		kind  model.ErrorKind
	}{
		{"Missing", model.KindNotFound},
		{"Empty", model.KindEmptyContainer},
		{"NoTip", model.KindNoTipGeometry},
		{"NilFaces", model.KindNoTipGeometry},
		{"NoColors", model.KindNoColorData},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			_, err := Locate(snap, tt.label)
			require.Error(t, err)
			assert.True(t, model.IsKind(err, tt.kind), "expected %s, got %v", tt.kind, err)
		})
	}
}

// TestLocate_ZeroFaces distinguishes an empty face list (a valid shape
// with nothing to export) from absent geometry.
func TestLocate_ZeroFaces(t *testing.T) {
	body := &Object{Label: "Hollow", Kind: KindBody, Tip: &Feature{
		Faces:        []FaceSpec{},
		DiffuseColor: [][]float64{},
	}}
	snap := &Snapshot{Objects: []*Object{body}}

	solid, err := Locate(snap, "Hollow")
	require.NoError(t, err)
	assert.Empty(t, solid.Faces())
}

// TestLocate_MalformedData rejects degenerate faces and short color
// tuples with the matching error kinds.
func TestLocate_MalformedData(t *testing.T) {
	twoVerts := &Object{Label: "Thin", Kind: KindBody, Tip: &Feature{
		Faces:        []FaceSpec{{Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}}}},
		DiffuseColor: [][]float64{{1, 1, 1, 1}},
	}}
	rgbOnly := &Object{Label: "ShortColor", Kind: KindBody, Tip: &Feature{
		Faces:        []FaceSpec{triangleFace()},
		DiffuseColor: [][]float64{{1, 1, 1}},
	}}
	snap := &Snapshot{Objects: []*Object{twoVerts, rgbOnly}}

	_, err := Locate(snap, "Thin")
	assert.True(t, model.IsKind(err, model.KindNoTipGeometry))

	_, err = Locate(snap, "ShortColor")
	assert.True(t, model.IsKind(err, model.KindNoColorData))
}

// TestSolid_PaintedFaces binds ids, faces, and colors; a count
// mismatch surfaces as the dedicated error kind.
func TestSolid_PaintedFaces(t *testing.T) {
	snap := &Snapshot{Objects: []*Object{bodyWithTip("Hub", 3)}}
	solid, err := Locate(snap, "Hub")
	require.NoError(t, err)

	painted, err := solid.PaintedFaces()
	require.NoError(t, err)
	require.Len(t, painted, 3)
	assert.Equal(t, 1, painted[0].ID)
	assert.Equal(t, 3, painted[2].ID)
	assert.Same(t, solid.Faces()[1], painted[1].Face)

	// Force a mismatch through the internal view.
	broken := &Solid{label: "Hub", faces: solid.Faces(), colors: solid.Colors()[:2]}
	_, err = broken.PaintedFaces()
	assert.True(t, model.IsKind(err, model.KindCountMismatch))
}
