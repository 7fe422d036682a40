// Package cli — inspect.go implements the "face-export inspect"
// command, which lists the top-level objects of a document snapshot.
//
// The listing shows each object's label, kind, face count, and whether
// a color annotation is present — enough to tell which labels are
// exportable before running the pipeline.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshworks/face-export/internal/document"
	"github.com/meshworks/face-export/internal/model"
)

// NewInspectCommand creates the "inspect" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "List the document's parts and bodies",
		Long: `List the top-level objects of a document snapshot with their kind,
face count, and color annotation status.

Examples:
  face-export inspect impeller.json
  face-export inspect impeller.json --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

// inspectEntry is the per-object output structure of the inspect
// command.
type inspectEntry struct {
	Label     string `json:"label"`
	Kind      string `json:"kind"`
	Faces     int    `json:"faces"`
	HasColors bool   `json:"hasColors"`
	Members   int    `json:"members,omitempty"`
}

// runInspect loads the snapshot and prints one row per top-level object.
func runInspect(snapshotPath string) error {
	snap, err := document.Load(snapshotPath)
	if err != nil {
		return model.WrapCLIError(model.ExitSnapshotError, "failed to load document snapshot", err)
	}

	entries := make([]inspectEntry, 0, len(snap.Objects))
	for _, obj := range snap.Objects {
		entries = append(entries, describeObject(obj))
	}

	printInspectResult(snap.Name, entries)
	return nil
}

// describeObject summarizes one document object for display.
func describeObject(obj *document.Object) inspectEntry {
	entry := inspectEntry{
		Label:   obj.Label,
		Kind:    obj.Kind.String(),
		Members: len(obj.Members),
	}
	if obj.Tip != nil {
		entry.Faces = len(obj.Tip.Faces)
		entry.HasColors = obj.Tip.DiffuseColor != nil
	}
	return entry
}

// printInspectResult outputs the object listing in text or JSON format.
func printInspectResult(name string, entries []inspectEntry) {
	if IsJSONOutput() {
		printJSON(struct {
			Name    string         `json:"name"`
			Objects []inspectEntry `json:"objects"`
		}{Name: name, Objects: entries})
		return
	}

	if name != "" {
		fmt.Printf("Document: %s\n", name)
	}
	if len(entries) == 0 {
		fmt.Println("No top-level objects.")
		return
	}

	fmt.Printf("%-20s %-6s %7s %8s %8s\n", "LABEL", "KIND", "FACES", "COLORS", "MEMBERS")
	for _, e := range entries {
		colors := "-"
		if e.HasColors {
			colors = "yes"
		}
		fmt.Printf("%-20s %-6s %7d %8s %8d\n", e.Label, e.Kind, e.Faces, colors, e.Members)
	}
}
