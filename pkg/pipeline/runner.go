package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tidytree/pkg/cache"
	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, as long as they do not share a tree.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	root, gen, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Root = root
	result.Generator = gen
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = tree.Count(root)
	result.Stats.Depth = tree.Depth(root)

	opts.Logger.Info("loaded tree",
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.Depth,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	result.Layout = r.Layout(ctx, root, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Info("computed layout",
		"positioned", result.Layout.Positioned,
		"levels", result.Layout.Levels,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.LayoutHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads opts.Input. Nodes without a size get opts' default size, or the
// tree package default when that is unset.
func (r *Runner) Load(ctx context.Context, opts Options) (*tree.Node, *tree.Generator, error) {
	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	start := time.Now()

	gen := tree.NewGenerator()
	if s := opts.DefaultSize(); s.Width > 0 && s.Height > 0 {
		gen.SetDefaultSize(s)
	}
	root, err := pio.ImportFile(opts.Input, gen)

	count := 0
	if err == nil {
		count = tree.Count(root)
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, count, time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}
	return root, gen, nil
}

// Layout positions the tree with opts.Layout.
func (r *Runner) Layout(ctx context.Context, root *tree.Node, opts Options) tidy.Stats {
	opts.SetLayoutDefaults()
	observability.Pipeline().OnLayoutStart(ctx, tree.Count(root))
	start := time.Now()
	stats := tidy.LayoutWithStats(root, opts.Layout)
	observability.Pipeline().OnLayoutComplete(ctx, stats.Positioned, time.Since(start))
	return stats
}

// RenderWithCacheInfo renders a laid-out tree with caching and reports
// whether every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	artifacts, _, hit, err := r.render(ctx, root, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, root, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, string, bool, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, hash, hit, err := r.renderCached(ctx, root, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, hash, hit, err
}

func (r *Runner) renderCached(ctx context.Context, root *tree.Node, opts Options) (map[string][]byte, string, bool, error) {
	// The layout document holds labels, sizes, structure and positions, so
	// it changes whenever the picture would.
	var doc bytes.Buffer
	if err := pio.WriteJSON(root, &doc); err != nil {
		return nil, "", false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(doc.Bytes())

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			opts.Logger.Debug("artifacts from cache", "hash", layoutHash[:12])
			return artifacts, layoutHash, true, nil
		}
	}

	rendered, err := Render(ctx, root, opts)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, layoutHash, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
