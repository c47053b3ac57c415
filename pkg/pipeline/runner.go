package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/inventory"
	"github.com/cloudtopo/topograph/pkg/layout"
)

// Runner executes the layout pipeline.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options, as long as they don't share documents.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run executes the complete build → layout → validate pipeline over an
// inventory.
func (r *Runner) Run(ctx context.Context, inv inventory.Inventory, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	buildStart := time.Now()
	doc, err := inventory.Build(inv)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	buildTime := time.Since(buildStart)

	opts.Logger.Info("built document",
		"nodes", len(doc.Nodes),
		"edges", len(doc.Edges),
		"duration", buildTime)

	result, err := r.RunDocument(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = buildTime
	return result, nil
}

// RunDocument executes the layout and validate stages over an existing
// document, positioning its nodes in place.
func (r *Runner) RunDocument(ctx context.Context, doc *diagram.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	lc, err := layout.NewContext(doc, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if lc.DroppedParents() > 0 || lc.DroppedEdges() > 0 {
		opts.Logger.Warn("dropped dangling references",
			"parents", lc.DroppedParents(),
			"edges", lc.DroppedEdges())
	}

	layout.AssignLayers(lc)
	layout.OrderSiblings(lc)
	layout.Solve(lc)
	layout.SizeContainers(lc)
	collision := layout.ResolveCollisions(lc)
	// Collision pushes can grow subtrees past their container bounds;
	// re-measure, then place the external strip against the final extents.
	layout.SizeContainers(lc)
	layout.PlaceExternals(lc)

	result := &Result{
		Document:  doc,
		Collision: collision,
		Stats: Stats{
			NodeCount:      lc.NodeCount(),
			EdgeCount:      lc.EdgeCount(),
			DroppedParents: lc.DroppedParents(),
			DroppedEdges:   lc.DroppedEdges(),
			LayoutTime:     time.Since(layoutStart),
		},
	}

	// OrderSiblings reorders the node slice; the document must carry the
	// final order so serialization matches sibling order.
	doc.Nodes = lc.Nodes()
	doc.Edges = lc.Edges()

	opts.Logger.Info("computed layout",
		"nodes", result.Stats.NodeCount,
		"collision_passes", collision.Passes,
		"collision_pushes", collision.Pushes,
		"duration", result.Stats.LayoutTime)
	if !collision.Resolved {
		opts.Logger.Warn("collision resolution hit the pass cap with overlaps remaining",
			"passes", collision.Passes)
	}

	if opts.SkipValidate {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	validateStart := time.Now()
	result.Diagnostics = layout.Validate(lc)
	result.Stats.ValidateTime = time.Since(validateStart)

	opts.Logger.Info("validated layout",
		"overlaps", len(result.Diagnostics.SiblingOverlaps),
		"near_edges", len(result.Diagnostics.EdgeProximities),
		"containment_violations", len(result.Diagnostics.ContainmentViolations),
		"duration", result.Stats.ValidateTime)

	return result, nil
}

// Validate runs only the diagnostics pass over an already positioned
// document, without moving anything.
func (r *Runner) Validate(ctx context.Context, doc *diagram.Document, opts Options) (layout.Diagnostics, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Diagnostics{}, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return layout.Diagnostics{}, err
	}

	lc, err := layout.NewContext(doc, opts.Config)
	if err != nil {
		return layout.Diagnostics{}, fmt.Errorf("validate: %w", err)
	}
	return layout.Validate(lc), nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
