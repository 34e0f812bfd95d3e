package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/pipeline"
)

// renderCommand creates the render command: load, layout and render in one
// step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		selected   int
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [tree.toml|tree.json]",
		Short: "Render a tree as an org chart or node-link diagram",
		Long: `Render a tree as an org chart or node-link diagram.

The render command loads a tree file, computes the tidy layout and writes the
requested formats. Org charts (-t orgchart) are drawn directly as SVG; node-link
diagrams (-t nodelink) go through Graphviz, optionally pinned to the tidy
positions with --pinned. PNG and PDF output of org charts needs rsvg-convert.

Rendered files are cached locally, keyed by the laid-out tree and the render
options, so re-rendering an unchanged tree is a cache lookup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			opts.Selected = selection(selected)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	// Layout flags
	addLayoutFlags(cmd, &opts)

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", pipeline.DefaultVizType, "visualization type: orgchart (default), nodelink")
	cmd.Flags().StringVar(&opts.Style, "style", pipeline.DefaultStyle, "org chart style: plain (default), soft")
	cmd.Flags().IntVar(&selected, "selected", noSelection, "id of the node to highlight")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.Pinned, "pinned", false, "keep the tidy positions in node-link diagrams")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show ids and positions in node-link labels")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "embed a click handler that dispatches tidytree:select events (org chart SVG)")

	return cmd
}

// runRender executes the full pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
	}); err != nil {
		return err
	}
	printStats(result.Stats.NodeCount, result.Layout.Levels, result.CacheInfo.RenderHit)
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string // file for a single format, base path for several, "-" for stdout
}

// writeArtifacts writes each artifact in format order and reports the files.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return fmt.Errorf("stdout output needs exactly one format (got %d)", len(p.formats))
		}
		return writeFile("", p.artifacts[p.formats[0]])
	}

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		path := artifactPath(p.output, p.input, format, len(p.formats) == 1)
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// artifactPath derives the file for one format. A single format writes to
// output verbatim when given; otherwise the base path (output or the input
// without its extension) gets the format as extension.
func artifactPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
