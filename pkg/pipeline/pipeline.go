// Package pipeline provides the core layout pipeline for Topograph.
//
// This package implements the complete build → layout → validate pipeline
// that the CLI commands share. By centralizing this logic, every entry
// point produces identical documents for identical inputs.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Convert a cloud inventory into an unpositioned document
//  2. Layout: Run the layout passes to compute final geometry
//  3. Validate: Inspect the settled geometry and collect diagnostics
//
// The build stage can be skipped by starting from an existing document.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, inv, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Document
//
// Re-layout an existing document:
//
//	result, err := runner.RunDocument(ctx, doc, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/layout"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
type Options struct {
	// Config holds the layout tuning constants. The zero value is replaced
	// with [layout.DefaultConfig].
	Config layout.Config

	// SkipValidate disables the diagnostics pass.
	SkipValidate bool

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == (layout.Config{}) {
		o.Config = layout.DefaultConfig()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the positioned diagram.
	Document *diagram.Document

	// Diagnostics holds the validator's findings. Zero when validation was
	// skipped.
	Diagnostics layout.Diagnostics

	// Collision reports the collision resolver's work.
	Collision layout.CollisionResult

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	DroppedParents int
	DroppedEdges   int
	BuildTime      time.Duration
	LayoutTime     time.Duration
	ValidateTime   time.Duration
}
