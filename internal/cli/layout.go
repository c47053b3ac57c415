package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// layoutCommand creates the layout command for re-running the layout passes
// over an existing diagram document.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Re-run the layout over an existing diagram document",
		Long: `Re-run the layout over an existing diagram document.

The layout command takes a diagram document (produced by 'convert' or edited
by hand), discards its geometry, and recomputes positions and container
sizes. Containment, styling, and edges pass through unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRelayout(cmd.Context(), args[0], output, configPath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&configPath, "config", "", "layout config file (TOML)")

	return cmd
}

// runRelayout loads the document, recomputes geometry, and writes output.
func (c *CLI) runRelayout(ctx context.Context, input, output, configPath string) error {
	doc, err := diagram.ReadDocumentFile(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	opts, err := c.pipelineOptions(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := c.newRunner().RunDocument(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = input
	}
	if err := diagram.WriteDocumentFile(result.Document, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
	if result.Stats.DroppedParents > 0 || result.Stats.DroppedEdges > 0 {
		printWarning("dropped %d dangling parent links and %d dangling edges",
			result.Stats.DroppedParents, result.Stats.DroppedEdges)
	}
	reportDiagnostics(result.Diagnostics)
	printNewline()
	printNextStep("Preview", fmt.Sprintf("%s preview %s", appName, outputPath))

	return nil
}

// defaultOutputPath derives an output path from the input by swapping the
// extension for suffix.
func defaultOutputPath(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix
}
