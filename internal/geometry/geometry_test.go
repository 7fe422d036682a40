package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// vecEqual asserts component-wise equality within epsilon.
func vecEqual(t *testing.T, expected, actual Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon)
	assert.InDelta(t, expected.Y, actual.Y, epsilon)
	assert.InDelta(t, expected.Z, actual.Z, epsilon)
}

// TestVec3_Operations covers the basic vector algebra the mesher and
// transform code rely on.
func TestVec3_Operations(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	vecEqual(t, Vec3{5, 7, 9}, a.Add(b))
	vecEqual(t, Vec3{-3, -3, -3}, a.Sub(b))
	vecEqual(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 32.0, a.Dot(b), epsilon)
	vecEqual(t, Vec3{-3, 6, -3}, a.Cross(b))
	assert.InDelta(t, math.Sqrt(14), a.Length(), epsilon)
	vecEqual(t, Vec3{2.5, 3.5, 4.5}, a.Mid(b))
}

// TestVec3_Normalized handles the zero-vector edge case without NaN.
func TestVec3_Normalized(t *testing.T) {
	vecEqual(t, Vec3{1, 0, 0}, Vec3{5, 0, 0}.Normalized())
	vecEqual(t, Vec3{}, Vec3{}.Normalized())
}

// TestNewTransform_Translation verifies a pure translation placement.
func TestNewTransform_Translation(t *testing.T) {
	tr := NewTransform(Vec3{10, 20, 30}, Vec3{}, 0)
	vecEqual(t, Vec3{11, 22, 33}, tr.Apply(Vec3{1, 2, 3}))
}

// TestNewTransform_Rotation rotates 90 degrees about Z: x-axis maps to
// y-axis.
func TestNewTransform_Rotation(t *testing.T) {
	tr := NewTransform(Vec3{}, Vec3{0, 0, 1}, 90)
	vecEqual(t, Vec3{0, 1, 0}, tr.Apply(Vec3{1, 0, 0}))
	vecEqual(t, Vec3{-1, 0, 0}, tr.Apply(Vec3{0, 1, 0}))
}

// TestNewTransform_RotationWithTranslation composes rotation and
// translation in placement order: rotate first, then translate.
func TestNewTransform_RotationWithTranslation(t *testing.T) {
	tr := NewTransform(Vec3{5, 0, 0}, Vec3{0, 0, 1}, 90)
	vecEqual(t, Vec3{5, 1, 0}, tr.Apply(Vec3{1, 0, 0}))
}

// TestIdentity maps every point to itself.
func TestIdentity(t *testing.T) {
	p := Vec3{7, -2, 3.5}
	vecEqual(t, p, Identity().Apply(p))
}

// TestNewFace rejects degenerate loops.
func TestNewFace(t *testing.T) {
	_, err := NewFace([]Vec3{{0, 0, 0}, {1, 0, 0}})
	assert.Error(t, err)

	f, err := NewFace([]Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	assert.Len(t, f.Vertices, 3)
}

// TestFace_CopyIsIndependent verifies that transforming a copy leaves
// the original untouched. The exporter depends on this copy-then-
// transform ordering to avoid mutating document geometry.
func TestFace_CopyIsIndependent(t *testing.T) {
	original := &Face{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	cp := original.Copy()

	cp.Transform(NewTransform(Vec3{100, 0, 0}, Vec3{}, 0))

	vecEqual(t, Vec3{0, 0, 0}, original.Vertices[0])
	vecEqual(t, Vec3{100, 0, 0}, cp.Vertices[0])
}

// TestFace_Normal uses a unit square in the XY plane with CCW winding,
// expecting +Z.
func TestFace_Normal(t *testing.T) {
	f := &Face{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}}
	vecEqual(t, Vec3{0, 0, 1}, f.Normal())
}

// TestFace_Centroid averages the vertex loop.
func TestFace_Centroid(t *testing.T) {
	f := &Face{Vertices: []Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}}
	vecEqual(t, Vec3{1, 1, 0}, f.Centroid())
}

// TestShell_BoundingBox accumulates bounds over all member faces.
func TestShell_BoundingBox(t *testing.T) {
	f1 := &Face{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	f2 := &Face{Vertices: []Vec3{{0, 0, 5}, {-1, 0, 5}, {0, -1, 5}}}
	shell := NewShell([]*Face{f1, f2})

	bbox := shell.BoundingBox()
	vecEqual(t, Vec3{-1, -1, 0}, bbox.Min)
	vecEqual(t, Vec3{1, 1, 5}, bbox.Max)
	assert.Len(t, shell.Faces(), 2)
}

// TestBoundingBox_Diagonal returns zero for an empty box and the
// corner distance otherwise.
func TestBoundingBox_Diagonal(t *testing.T) {
	empty := NewBoundingBox()
	assert.Zero(t, empty.Diagonal())

	bbox := NewBoundingBox()
	bbox.Extend(Vec3{0, 0, 0})
	bbox.Extend(Vec3{3, 4, 0})
	assert.InDelta(t, 5.0, bbox.Diagonal(), epsilon)
}

// TestTriangle covers normal orientation, area, and the refinement
// criterion edge length.
func TestTriangle(t *testing.T) {
	tri := Triangle{V1: Vec3{0, 0, 0}, V2: Vec3{1, 0, 0}, V3: Vec3{0, 1, 0}}

	vecEqual(t, Vec3{0, 0, 1}, tri.Normal())
	assert.InDelta(t, 0.5, tri.Area(), epsilon)
	assert.InDelta(t, math.Sqrt2, tri.MaxEdgeLength(), epsilon)
}
