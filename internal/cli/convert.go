package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/inventory"
)

// convertCommand creates the convert command for turning inventory exports
// into positioned diagram documents.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "convert [inventory.json]",
		Short: "Build and lay out a diagram from a cloud inventory export",
		Long: `Build and lay out a diagram from a cloud inventory export.

The convert command reads an inventory JSON file (regions with their VPCs,
subnets, instances, gateways, route tables, and security groups), builds the
containment hierarchy and relationship edges, runs the layout passes, and
writes the positioned document for the diagram surface.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], output, configPath)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.diagram.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "layout config file (TOML)")

	return cmd
}

// runConvert loads the inventory, runs the pipeline, and writes the document.
func (c *CLI) runConvert(ctx context.Context, input, output, configPath string) error {
	inv, err := inventory.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load inventory %s: %w", input, err)
	}

	opts, err := c.pipelineOptions(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prog := newProgress(loggerFromContext(ctx))
	result, err := c.newRunner().Run(ctx, inv, opts)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	prog.done(fmt.Sprintf("Positioned %d nodes", result.Stats.NodeCount))

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, ".diagram.json")
	}
	if err := diagram.WriteDocumentFile(result.Document, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Convert complete")
	printFile(outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
	reportDiagnostics(result.Diagnostics)
	printNewline()
	printNextStep("Preview", appName+" preview "+outputPath)

	return nil
}
