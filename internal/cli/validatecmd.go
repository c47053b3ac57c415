package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/layout"
)

// validateCommand creates the validate command for checking a document's
// settled geometry.
func (c *CLI) validateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate [diagram.json]",
		Short: "Check a diagram document's geometry without moving anything",
		Long: `Check a diagram document's geometry without moving anything.

The validate command reports sibling collisions, containment violations, and
edges passing close to unrelated nodes. It never repositions nodes. The
command exits non-zero when a layout invariant is broken; near-edge reports
alone do not fail validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "layout config file (TOML)")

	return cmd
}

// runValidate loads the document and reports diagnostics.
func (c *CLI) runValidate(ctx context.Context, input, configPath string) error {
	doc, err := diagram.ReadDocumentFile(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	opts, err := c.pipelineOptions(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	d, err := c.newRunner().Validate(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if d.Clean() && len(d.EdgeProximities) == 0 {
		printSuccess("Layout is clean")
		printStats(len(doc.Nodes), len(doc.Edges))
		return nil
	}

	reportDiagnostics(d)
	if !d.Clean() {
		printError("Layout invariants violated")
		return fmt.Errorf("%d sibling overlaps, %d containment violations",
			len(d.SiblingOverlaps), len(d.ContainmentViolations))
	}
	printSuccess("Layout is clean")
	printInfo("%d near-edge reports (informational)", len(d.EdgeProximities))
	return nil
}

// reportDiagnostics prints the validator's findings, if any.
func reportDiagnostics(d layout.Diagnostics) {
	for _, o := range d.SiblingOverlaps {
		printWarning("siblings overlap: %s and %s", o.A, o.B)
	}
	for _, v := range d.ContainmentViolations {
		printWarning("%s does not enclose its child %s", v.Container, v.Child)
	}
	for _, p := range d.EdgeProximities {
		printDetail("edge %s passes within %.1fpx of %s", p.EdgeID, p.Distance, p.NodeID)
	}
}
