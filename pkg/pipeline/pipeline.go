// Package pipeline provides the load → layout → render pipeline shared by
// the CLI commands and the chart server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a tree from a JSON or TOML file
//  2. Layout: Position every node with the tidy tree algorithm
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
// Rendered artifacts are cached by the hash of the laid-out tree, so
// re-rendering an unchanged file is a cache lookup.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "examples/targaryen.toml",
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Render a tree that is already in memory, as the editor and server do:
//
//	tidy.Layout(root, cfg)
//	artifacts, err := runner.Render(ctx, root, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tidytree/pkg/cache"
	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/render/orgchart"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultStyle is the default org chart style.
	DefaultStyle = orgchart.StylePlain

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeOrgChart
)

// Visualization types.
const (
	VizTypeOrgChart = "orgchart"
	VizTypeNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeOrgChart: true,
	VizTypeNodelink: true,
}

// NoSelection is the cache key value for renders without a highlighted node.
const NoSelection = -1

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Input      string  `json:"input,omitempty"`
	NodeWidth  float64 `json:"node_width,omitempty"`  // default size of nodes without one
	NodeHeight float64 `json:"node_height,omitempty"` // default size of nodes without one

	// Layout options. The zero Config means tidy.DefaultConfig.
	Layout tidy.Config `json:"layout"`

	// Render options
	VizType     string   `json:"viz_type,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Selected    *int     `json:"selected,omitempty"` // node id to highlight
	Scale       float64  `json:"scale,omitempty"`
	Pinned      bool     `json:"pinned,omitempty"`      // nodelink: keep computed positions
	Detailed    bool     `json:"detailed,omitempty"`    // nodelink: ids and positions in labels
	Interactive bool     `json:"interactive,omitempty"` // orgchart svg: clicks dispatch a select event
	Refresh     bool     `json:"refresh,omitempty"`     // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the loaded and laid-out tree.
	Root *tree.Node

	// Generator issued the tree's ids; use it for further edits.
	Generator *tree.Generator

	// LayoutHash is the content hash of the laid-out tree.
	LayoutHash string

	// Layout reports what the layout pass did.
	Layout tidy.Stats

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Depth      int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := orgchart.StyleByName(style)
	return err
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: orgchart, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if o.NodeWidth < 0 || o.NodeHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "node size must not be negative (got %gx%g)", o.NodeWidth, o.NodeHeight)
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Layout == (tidy.Config{}) {
		o.Layout = tidy.DefaultConfig()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.Layout.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive (got %g)", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// DefaultSize returns the node size for nodes the input leaves unsized.
func (o *Options) DefaultSize() tree.Size {
	return tree.Size{Width: o.NodeWidth, Height: o.NodeHeight}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:   format,
		VizType:  o.VizType,
		Selected: NoSelection,
		MaxDepth: o.Layout.MaxDepth,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	if o.IsNodelink() || format == FormatDOT {
		opts.Detailed = o.Detailed
		if o.Pinned {
			opts.Style = "pinned"
		}
	} else {
		opts.Style = o.Style
		opts.Interactive = o.Interactive && format == FormatSVG
	}
	if id, ok := o.Selection(); ok {
		opts.Selected = id
	}
	return opts
}

// Selection returns the node id to highlight, if any.
func (o *Options) Selection() (int, bool) {
	if o.Selected == nil {
		return 0, false
	}
	return *o.Selected, true
}
