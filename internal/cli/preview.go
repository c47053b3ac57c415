package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/errors"
	"github.com/cloudtopo/topograph/pkg/render"
)

// previewCommand creates the preview command for rendering documents to
// inspectable images.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "preview [diagram.json]",
		Short: "Render a diagram document to DOT, SVG, or PNG",
		Long: `Render a diagram document to DOT, SVG, or PNG.

The preview command converts the document's containment hierarchy into a
Graphviz rendering for quick inspection. Graphviz computes its own layout
for the preview; the document's geometry is what the diagram surface uses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")

	return cmd
}

// runPreview loads the document and renders the requested format.
func (c *CLI) runPreview(ctx context.Context, input, output, format string) error {
	doc, err := diagram.ReadDocumentFile(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	dot := render.ToDOT(doc)

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = render.RenderSVG(dot)
		spinner.Stop()
	case "png":
		spinner := newSpinnerWithContext(ctx, "Rendering PNG...")
		spinner.Start()
		data, err = render.RenderPNG(dot)
		spinner.Stop()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot)", format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, "."+format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Preview complete")
	printFile(outputPath)
	printStats(len(doc.Nodes), len(doc.Edges))

	return nil
}
