package export

import (
	"fmt"
	"path/filepath"

	"github.com/meshworks/face-export/internal/document"
	"github.com/meshworks/face-export/internal/geometry"
	"github.com/meshworks/face-export/internal/mesh"
	"github.com/meshworks/face-export/internal/model"
	"github.com/meshworks/face-export/internal/stl"
)

// Exporter writes one STL artifact per non-empty face group. The mesh
// parameters and output format are fixed for a whole run.
type Exporter struct {
	mesher mesh.Mesher
	params mesh.Params
	format stl.Format
}

// NewExporter creates an exporter using the given mesher.
func NewExporter(mesher mesh.Mesher, params mesh.Params, format stl.Format) *Exporter {
	return &Exporter{mesher: mesher, params: params, format: format}
}

// ArtifactPath returns the deterministic output path for a solid label
// and group: {label}_{group}.stl inside outputDir. There is no
// collision handling — a later export to the same path overwrites.
func ArtifactPath(outputDir, label string, group model.GroupName) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s.stl", label, group))
}

// ExportGroup meshes and writes one face group of the solid.
//
// An empty identifier list is a skip, not an error: no file is written
// and the artifact reports the skipped status. Otherwise each face is
// copied before the solid's placement is applied, so shared document
// geometry is never mutated.
func (e *Exporter) ExportGroup(solid *document.Solid, group model.GroupName, faceIDs []int, outputDir string) (model.Artifact, error) {
	artifact := model.Artifact{
		Label:     solid.Label(),
		Group:     group,
		FaceCount: len(faceIDs),
		Status:    model.StatusSkipped,
	}
	if len(faceIDs) == 0 {
		return artifact, nil
	}

	faces := solid.Faces()
	placement := solid.Placement()
	copies := make([]*geometry.Face, 0, len(faceIDs))
	for _, id := range faceIDs {
		if id < 1 || id > len(faces) {
			return artifact, fmt.Errorf("face id %d out of range 1..%d", id, len(faces))
		}
		cp := faces[id-1].Copy()
		cp.Transform(placement)
		copies = append(copies, cp)
	}

	var shape geometry.Shape
	if len(copies) == 1 {
		shape = copies[0]
	} else {
		shape = geometry.NewShell(copies)
	}

	triangles, err := e.mesher.Mesh(shape, e.params)
	if err != nil {
		return artifact, fmt.Errorf("mesh group %s: %w", group, err)
	}

	name := fmt.Sprintf("%s_%s", solid.Label(), group)
	m := stl.NewModel(name)
	m.Triangles = triangles

	path := ArtifactPath(outputDir, solid.Label(), group)
	if err := m.WriteFile(path, e.format); err != nil {
		return artifact, fmt.Errorf("write group %s: %w", group, err)
	}

	artifact.Path = path
	artifact.TriangleCount = len(triangles)
	artifact.Status = model.StatusExported
	return artifact, nil
}
