// Package cli — export.go implements the "face-export export" command,
// the primary user-facing operation.
//
// Orchestration steps:
//  1. Load the run configuration (file, then flag overrides)
//  2. Load the document snapshot
//  3. Run the pipeline: locate → classify → export per target label
//  4. Print the run summary (text or JSON) and map the outcome to an
//     exit code
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meshworks/face-export/internal/config"
	"github.com/meshworks/face-export/internal/document"
	"github.com/meshworks/face-export/internal/export"
	"github.com/meshworks/face-export/internal/mesh"
	"github.com/meshworks/face-export/internal/model"
)

// exportFlags holds the flag values for the export command.
// These are bound to cobra flags in NewExportCommand.
type exportFlags struct {
	configPath string   // --config: YAML run configuration file
	outputDir  string   // --output-dir: STL output directory
	targets    []string // --targets: target labels to process
	linear     float64  // --linear-deflection: max chord error
	angular    float64  // --angular-deflection: max facet normal angle
	relative   bool     // --relative: interpret linear deflection relative to shape size
	format     string   // --format: binary or ascii STL
}

// NewExportCommand creates the "export" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <snapshot>",
		Short: "Classify faces by color and export one STL per group",
		Long: `Export each configured target label as up to three STL files.

For every target, the solid is resolved in the document snapshot, its
faces are partitioned by surface color into inlet, outlet, and body
groups, and each non-empty group is meshed and written as
{label}_{group}.stl in the output directory.

A failing target never aborts the run: it is reported in the summary
and processing continues with the next label.

Examples:
  face-export export impeller.json --targets Hub,Shroud,Spiral
  face-export export impeller.json --config face-export.yaml
  face-export export impeller.json --targets Hub --linear-deflection 0.01
  face-export export impeller.json --targets Hub --format ascii --json`,

		// Args validates that exactly one positional argument
		// (the snapshot path) is provided.
		Args: cobra.ExactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra
		// passes them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Run configuration file (YAML)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Output directory for STL files")
	cmd.Flags().StringSliceVarP(&flags.targets, "targets", "t", nil, "Comma-separated target labels")
	cmd.Flags().Float64Var(&flags.linear, "linear-deflection", 0, "Maximum chord error of the tessellation")
	cmd.Flags().Float64Var(&flags.angular, "angular-deflection", 0, "Maximum angle between adjacent facet normals (radians)")
	cmd.Flags().BoolVar(&flags.relative, "relative", false, "Interpret linear deflection relative to shape size")
	cmd.Flags().StringVar(&flags.format, "format", "", "STL format: binary or ascii")

	return cmd
}

// runExport is the main orchestration function for the export command.
func runExport(cmd *cobra.Command, snapshotPath string, flags *exportFlags) error {
	// Step 1: Resolve the run configuration.
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	VerboseLog("Targets: %s", strings.Join(cfg.Targets, ", "))
	VerboseLog("Output directory: %s", cfg.OutputDir)

	// Step 2: Load the document snapshot. Its absence is the one
	// global fatal error — nothing is processed without a document.
	snap, err := document.Load(snapshotPath)
	if err != nil {
		return model.WrapCLIError(model.ExitSnapshotError, "failed to load document snapshot", err)
	}
	VerboseLog("Loaded snapshot %q with %d top-level objects", snap.Name, len(snap.Objects))

	// Step 3: Run the pipeline.
	pipeline := export.NewPipeline(cfg, mesh.NewDeflectionMesher())
	pipeline.Logf = VerboseLog

	summary, err := pipeline.Run(snap)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "export run failed", err)
	}

	// Step 4: Output the summary.
	printRunSummary(summary, len(cfg.Targets))

	if !summary.Ok() {
		return model.NewCLIError(model.ExitPartialFailure,
			fmt.Sprintf("%d of %d targets failed", len(summary.Failed), len(cfg.Targets)))
	}
	return nil
}

// resolveConfig builds the effective run configuration: defaults, then
// the --config file when given, then individual flag overrides. Only
// flags the user actually set override the file — cobra's Changed
// check distinguishes "not set" from "set to the zero value".
func resolveConfig(cmd *cobra.Command, flags *exportFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("targets") {
		cfg.Targets = flags.targets
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = flags.outputDir
	}
	if cmd.Flags().Changed("linear-deflection") {
		cfg.Mesh.LinearDeflection = flags.linear
	}
	if cmd.Flags().Changed("angular-deflection") {
		cfg.Mesh.AngularDeflection = flags.angular
	}
	if cmd.Flags().Changed("relative") {
		cfg.Mesh.Relative = flags.relative
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	return cfg, nil
}

// printRunSummary outputs the run summary in text or JSON format.
func printRunSummary(summary *model.RunSummary, total int) {
	if IsJSONOutput() {
		printJSON(summary)
		return
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Println()
	fmt.Println("===== SUMMARY =====")
	green.Printf("Processed successfully: %d/%d\n", len(summary.Results), total)
	for _, result := range summary.Results {
		fmt.Printf("  %s\n", formatTargetResult(result))
	}

	if len(summary.Failed) > 0 {
		red.Printf("Failed: %d\n", len(summary.Failed))
		for _, failure := range summary.Failed {
			red.Printf("  %q: %s\n", failure.Label, failure.Reason)
		}
	}
}

// formatTargetResult renders one processed label with its per-group
// outcomes, e.g. "Hub: inlet 84 triangles, outlet 12 triangles, body skipped".
func formatTargetResult(result model.TargetResult) string {
	parts := make([]string, 0, len(result.Artifacts))
	for _, a := range result.Artifacts {
		if a.Status == model.StatusSkipped {
			parts = append(parts, fmt.Sprintf("%s skipped", a.Group))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d triangles", a.Group, a.TriangleCount))
		}
	}
	return fmt.Sprintf("%s: %s", result.Label, strings.Join(parts, ", "))
}
