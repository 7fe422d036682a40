package stl

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshworks/face-export/internal/geometry"
)

// unitTriangle is a right triangle in the XY plane with a +Z normal.
var unitTriangle = geometry.Triangle{
	V1: geometry.Vec3{X: 0, Y: 0, Z: 0},
	V2: geometry.Vec3{X: 1, Y: 0, Z: 0},
	V3: geometry.Vec3{X: 0, Y: 1, Z: 0},
}

// TestParseFormat verifies string-to-format conversion, including
// case normalization and error cases.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"binary", FormatBinary, false},
		{"ascii", FormatASCII, false},
		{"Binary", FormatBinary, false}, // case insensitive
		{"ASCII", FormatASCII, false},   // case insensitive
		{"obj", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, f)
			}
		})
	}
}

// TestModel_Accumulation checks triangle bookkeeping and derived
// measures on a small model.
func TestModel_Accumulation(t *testing.T) {
	m := NewModel("Hub_inlet")
	assert.Equal(t, 0, m.TriangleCount())

	m.AddTriangle(unitTriangle)
	m.AddTriangle(geometry.Triangle{
		V1: geometry.Vec3{X: 0, Y: 0, Z: 2},
		V2: geometry.Vec3{X: 1, Y: 0, Z: 2},
		V3: geometry.Vec3{X: 0, Y: 1, Z: 2},
	})

	assert.Equal(t, 2, m.TriangleCount())
	assert.InDelta(t, 1.0, m.SurfaceArea(), 1e-9)

	bbox := m.BoundingBox()
	assert.Equal(t, geometry.Vec3{X: 0, Y: 0, Z: 0}, bbox.Min)
	assert.Equal(t, geometry.Vec3{X: 1, Y: 1, Z: 2}, bbox.Max)
}

// TestWrite_Binary verifies the fixed binary layout: 80-byte header,
// little-endian facet count, 50 bytes per facet.
func TestWrite_Binary(t *testing.T) {
	m := NewModel("test")
	m.AddTriangle(unitTriangle)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, FormatBinary))

	data := buf.Bytes()
	require.Len(t, data, 80+4+50)

	count := binary.LittleEndian.Uint32(data[80:84])
	assert.Equal(t, uint32(1), count)

	// Normal of the unit triangle is +Z: floats (0, 0, 1).
	nz := binary.LittleEndian.Uint32(data[84+8 : 84+12])
	assert.Equal(t, uint32(0x3f800000), nz)

	// Attribute byte count trailer is zero.
	assert.Equal(t, byte(0), data[132])
	assert.Equal(t, byte(0), data[133])
}

// TestWrite_BinaryHeaderNotSolid guards against binary output being
// misdetected as ASCII: readers sniff for a leading "solid".
func TestWrite_BinaryHeaderNotSolid(t *testing.T) {
	m := NewModel("solidlooking")
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, FormatBinary))
	assert.NotEqual(t, "solid", string(buf.Bytes()[:5]))
}

// TestWrite_ASCII checks the textual layout markers and the solid name.
func TestWrite_ASCII(t *testing.T) {
	m := NewModel("Hub_body")
	m.AddTriangle(unitTriangle)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, FormatASCII))

	out := buf.String()
	assert.Contains(t, out, "solid Hub_body\n")
	assert.Contains(t, out, "facet normal")
	assert.Contains(t, out, "outer loop")
	assert.Contains(t, out, "endsolid Hub_body\n")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("vertex")))
}

// TestWriteFile_Overwrite writes twice to the same path and expects
// last-write-wins content, matching the exporter's silent-overwrite
// contract.
func TestWriteFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Hub_inlet.stl")

	first := NewModel("first")
	first.AddTriangle(unitTriangle)
	first.AddTriangle(unitTriangle)
	require.NoError(t, first.WriteFile(path, FormatBinary))

	second := NewModel("second")
	second.AddTriangle(unitTriangle)
	require.NoError(t, second.WriteFile(path, FormatBinary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 80+4+50)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[80:84]))
}

// TestWrite_InvalidFormat rejects unknown formats.
func TestWrite_InvalidFormat(t *testing.T) {
	m := NewModel("test")
	var buf bytes.Buffer
	assert.Error(t, m.Write(&buf, Format("step")))
}
