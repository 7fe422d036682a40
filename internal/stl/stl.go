// Package stl serializes triangle meshes as STL files, the triangulated
// surface format consumed by downstream simulation tooling. Both the
// binary layout (default, compact) and the ASCII layout (diffable,
// debuggable) are supported.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/meshworks/face-export/internal/geometry"
)

// Format selects the STL on-disk layout.
type Format string

const (
	// FormatBinary is the compact little-endian layout: an 80-byte
	// header, a uint32 facet count, then 50 bytes per facet.
	FormatBinary Format = "binary"

	// FormatASCII is the textual "solid ... endsolid" layout.
	FormatASCII Format = "ascii"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format is one of the supported layouts.
func (f Format) IsValid() bool {
	return f == FormatBinary || f == FormatASCII
}

// ParseFormat converts a string to a Format.
// Returns an error if the string does not match a supported layout.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid STL format: %q (valid: binary, ascii)", s)
	}
	return f, nil
}

// Model is a named collection of mesh facets ready for serialization.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model with the given name. The name appears
// in the solid header of ASCII output.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddTriangle appends a facet to the model.
func (m *Model) AddTriangle(t geometry.Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of facets in the model.
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the axis-aligned bounds over all facet vertices.
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// SurfaceArea returns the total facet area of the model.
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// WriteFile serializes the model to path in the given format, creating
// the file or silently overwriting an existing one.
func (m *Model) WriteFile(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := m.Write(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Write serializes the model to w in the given format.
func (m *Model) Write(w io.Writer, format Format) error {
	switch format {
	case FormatBinary:
		return m.writeBinary(w)
	case FormatASCII:
		return m.writeASCII(w)
	default:
		return fmt.Errorf("invalid STL format: %q", format)
	}
}

// binaryHeaderSize is the fixed STL binary header length; contents are
// ignored by readers but must not start with "solid".
const binaryHeaderSize = 80

func (m *Model) writeBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)

	var header [binaryHeaderSize]byte
	copy(header[:], "face-export "+m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("write STL header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("write facet count: %w", err)
	}

	// Each facet record: normal, three vertices (float32 each), and a
	// two-byte attribute count that is always zero.
	buf := make([]byte, 50)
	for _, t := range m.Triangles {
		n := t.Normal()
		putVec(buf[0:], n)
		putVec(buf[12:], t.V1)
		putVec(buf[24:], t.V2)
		putVec(buf[36:], t.V3)
		buf[48], buf[49] = 0, 0
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write facet: %w", err)
		}
	}

	return bw.Flush()
}

// putVec encodes a vector as three little-endian float32 values.
func putVec(b []byte, v geometry.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func (m *Model) writeASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "solid %s\n", m.Name); err != nil {
		return fmt.Errorf("write solid header: %w", err)
	}

	for _, t := range m.Triangles {
		n := t.Normal()
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []geometry.Vec3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}

	if _, err := fmt.Fprintf(bw, "endsolid %s\n", m.Name); err != nil {
		return fmt.Errorf("write solid footer: %w", err)
	}
	return bw.Flush()
}
