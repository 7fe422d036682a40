// Package cli — classify.go implements the "face-export classify"
// command, a dry run of the pipeline's classification stage.
//
// For every target label the solid is resolved and its faces are
// partitioned into the three groups, but nothing is meshed or written.
// This lets a user check their paint job before committing to a full
// export.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meshworks/face-export/internal/classify"
	"github.com/meshworks/face-export/internal/config"
	"github.com/meshworks/face-export/internal/document"
	"github.com/meshworks/face-export/internal/model"
)

// classifyFlags holds the flag values for the classify command.
type classifyFlags struct {
	configPath string   // --config: YAML run configuration file
	targets    []string // --targets: target labels to classify
	tolerance  float64  // --tolerance: color match tolerance
}

// NewClassifyCommand creates the "classify" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify <snapshot>",
		Short: "Show face groups per target without exporting",
		Long: `Resolve each target label and print how its faces classify into the
inlet, outlet, and body groups. No meshes are generated and no files
are written.

Examples:
  face-export classify impeller.json --targets Hub
  face-export classify impeller.json --config face-export.yaml --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Run configuration file (YAML)")
	cmd.Flags().StringSliceVarP(&flags.targets, "targets", "t", nil, "Comma-separated target labels")
	cmd.Flags().Float64Var(&flags.tolerance, "tolerance", 0, "Color match tolerance")

	return cmd
}

// classifiedTarget is the per-label output structure of the classify
// command.
type classifiedTarget struct {
	Label  string           `json:"label"`
	Faces  int              `json:"faces"`
	Groups model.FaceGroups `json:"groups"`
}

// runClassify resolves and classifies each target, continuing past
// failures the same way the export pipeline does.
func runClassify(cmd *cobra.Command, snapshotPath string, flags *classifyFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("targets") {
		cfg.Targets = flags.targets
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Colors.Tolerance = flags.tolerance
	}
	if err := cfg.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}

	snap, err := document.Load(snapshotPath)
	if err != nil {
		return model.WrapCLIError(model.ExitSnapshotError, "failed to load document snapshot", err)
	}

	var classified []classifiedTarget
	var failed []model.TargetFailure
	for _, label := range cfg.Targets {
		VerboseLog("Classifying %q", label)

		solid, err := document.Locate(snap, label)
		if err != nil {
			failed = append(failed, model.TargetFailure{Label: label, Reason: err.Error()})
			continue
		}

		groups, err := classify.Classify(label, solid.Faces(), solid.Colors(),
			cfg.References(), cfg.Colors.Tolerance)
		if err != nil {
			failed = append(failed, model.TargetFailure{Label: label, Reason: err.Error()})
			continue
		}

		classified = append(classified, classifiedTarget{
			Label:  solid.Label(),
			Faces:  len(solid.Faces()),
			Groups: groups,
		})
	}

	printClassifyResult(classified, failed)

	if len(failed) > 0 {
		return model.NewCLIError(model.ExitPartialFailure,
			fmt.Sprintf("%d of %d targets failed", len(failed), len(cfg.Targets)))
	}
	return nil
}

// printClassifyResult outputs the classification in text or JSON format.
func printClassifyResult(classified []classifiedTarget, failed []model.TargetFailure) {
	if IsJSONOutput() {
		printJSON(struct {
			Targets []classifiedTarget    `json:"targets"`
			Failed  []model.TargetFailure `json:"failed,omitempty"`
		}{Targets: classified, Failed: failed})
		return
	}

	for _, ct := range classified {
		fmt.Printf("%s (%d faces)\n", ct.Label, ct.Faces)
		for _, group := range model.GroupNames() {
			fmt.Printf("  %-6s %v\n", group, ct.Groups[group])
		}
	}

	if len(failed) > 0 {
		red := color.New(color.FgRed)
		for _, failure := range failed {
			red.Printf("%q: %s\n", failure.Label, failure.Reason)
		}
	}
}
