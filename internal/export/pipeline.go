package export

import (
	"fmt"
	"os"

	"github.com/meshworks/face-export/internal/classify"
	"github.com/meshworks/face-export/internal/config"
	"github.com/meshworks/face-export/internal/document"
	"github.com/meshworks/face-export/internal/mesh"
	"github.com/meshworks/face-export/internal/model"
)

// Pipeline drives the whole run: it iterates the configured target
// labels and processes each one independently.
type Pipeline struct {
	cfg      *config.Config
	exporter *Exporter

	// Logf receives progress messages when set. Nil means silent.
	Logf func(format string, args ...any)
}

// NewPipeline creates a pipeline for the given configuration and mesher.
func NewPipeline(cfg *config.Config, mesher mesh.Mesher) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		exporter: NewExporter(mesher, cfg.MeshParams(), cfg.STLFormat()),
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Run processes every configured target label against the snapshot.
// The output directory is created once, idempotently, before the first
// target; failure to create it is fatal for the whole run. Per-target
// errors never are: they are recorded and iteration continues.
func (p *Pipeline) Run(snap *document.Snapshot) (*model.RunSummary, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	summary := &model.RunSummary{}
	for i, label := range p.cfg.Targets {
		p.logf("Processing %d/%d: %q", i+1, len(p.cfg.Targets), label)

		result, err := p.processTarget(snap, label)
		if err != nil {
			p.logf("Failed %q: %v", label, err)
			summary.Failed = append(summary.Failed, model.TargetFailure{
				Label:  label,
				Reason: err.Error(),
			})
			continue
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// processTarget runs locate → classify → export for one label. Any
// stage error aborts this target only.
func (p *Pipeline) processTarget(snap *document.Snapshot, label string) (model.TargetResult, error) {
	result := model.TargetResult{Label: label}

	solid, err := document.Locate(snap, label)
	if err != nil {
		return result, err
	}
	p.logf("Resolved %q: %d faces", solid.Label(), len(solid.Faces()))

	groups, err := classify.Classify(label, solid.Faces(), solid.Colors(),
		p.cfg.References(), p.cfg.Colors.Tolerance)
	if err != nil {
		return result, err
	}

	for _, group := range model.GroupNames() {
		artifact, err := p.exporter.ExportGroup(solid, group, groups[group], p.cfg.OutputDir)
		if err != nil {
			return result, err
		}
		if artifact.Status == model.StatusSkipped {
			p.logf("No faces for %s, skipping", group)
		} else {
			p.logf("Exported %s: %s (%d triangles)", group, artifact.Path, artifact.TriangleCount)
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}
	return result, nil
}
