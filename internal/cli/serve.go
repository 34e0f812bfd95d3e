package cli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/internal/server"
	"github.com/matzehuels/tidytree/pkg/chart"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tree"
)

const (
	defaultAddr     = "localhost:8080"
	defaultRootName = "Root"
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the serve command for the browser chart.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		savePath string
		readOnly bool
		noCache  bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "serve [tree.toml|tree.json]",
		Short: "Edit a tree in the browser",
		Long: `Edit a tree in the browser.

The serve command opens the tree (or a single root node when no file is
given) and serves an interactive org chart. Click a node to select it, then
add children, rename, remove or zoom from the side panel or the keyboard.

Save writes the tree back to the input file unless --save names another file
or --read-only is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
				if savePath == "" {
					savePath = args[0]
				}
			}
			if readOnly {
				savePath = ""
			}
			return c.runServe(cmd.Context(), opts, addr, savePath, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&savePath, "save", "", "file the Save action writes (default: the input file)")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "disable saving")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Style, "style", pipeline.DefaultStyle, "org chart style: plain (default), soft")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runServe loads the chart and serves it until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr, savePath string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ch, err := c.openChart(ctx, runner, opts)
	if err != nil {
		return err
	}

	opts.VizType = pipeline.VizTypeOrgChart
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	srv := server.New(ch, server.Config{
		Runner:   runner,
		Render:   opts,
		SavePath: savePath,
		Logger:   c.Logger,
	})

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	printSuccess("Serving chart")
	printKeyValue("URL", StyleLink.Render("http://"+l.Addr().String()))
	if savePath != "" {
		printKeyValue("Saves to", savePath)
	}
	printDetail("Press Ctrl+C to stop")

	return server.Serve(ctx, shutdownTimeout, server.NewHTTPServer(c.Logger, srv.Handler()), l)
}

// openChart loads opts.Input into a chart, or starts a single-node chart
// when no input is given.
func (c *CLI) openChart(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*chart.Chart, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	if opts.Input == "" {
		gen := tree.NewGenerator()
		if size := opts.DefaultSize(); size.Width > 0 && size.Height > 0 {
			gen.SetDefaultSize(size)
		}
		return chart.FromTree(gen.NewNode(defaultRootName), gen, opts.Layout)
	}
	root, gen, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Input, err)
	}
	ch, err := chart.FromTree(root, gen, opts.Layout)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("opened tree", "path", opts.Input, "nodes", ch.Stats().Positioned)
	return ch, nil
}
