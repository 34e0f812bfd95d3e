package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		showTable bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [tree.toml|tree.json]",
		Short: "Compute node positions for a tree",
		Long: `Compute node positions for a tree.

The layout command reads a tree file (JSON or TOML), positions every node with
the tidy tree algorithm and writes the tree back out with x and y set on each
node. The output format follows the extension of --output; without --output
the positions are written next to the input as <input>.layout.json.

Use --table to print the positions instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.runLayout(cmd.Context(), opts, output, showTable)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .json or .toml (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&showTable, "table", false, "print a table of positions instead of writing a file")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the tree, positions it, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, showTable bool) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	root, _, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.Input, err)
	}
	stats := runner.Layout(ctx, root, opts)
	prog.done(fmt.Sprintf("Laid out %d nodes", stats.Positioned))

	if stats.Positioned < tree.Count(root) {
		printWarning("%d nodes below --max-depth %d were not positioned", tree.Count(root)-stats.Positioned, opts.Layout.MaxDepth)
	}

	if showTable {
		fmt.Println(positionsTable(root))
		return nil
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input)) + ".layout.json"
	}
	if err := pio.ExportFile(root, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(tree.Count(root), stats.Levels, false)
	if stats.Shift > 0 {
		printDetail("shifted right by %g to keep every node at x >= 0", stats.Shift)
	}
	printNewline()
	printNextStep("Render", appName+" render "+opts.Input)

	return nil
}
