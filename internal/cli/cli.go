// Package cli implements the tidytree command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/buildinfo"
	"github.com/matzehuels/tidytree/pkg/cache"
	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/observability"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tidy"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tidytree"

	// noSelection is the --selected flag value that highlights nothing.
	noSelection = -1
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the pipeline, cache
// and HTTP hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := observability.LogHooks{Logger: c.Logger}
		observability.SetPipelineHooks(h)
		observability.SetCacheHooks(h)
		observability.SetHTTPHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tidytree draws trees as tidy org charts",
		Long: `Tidytree lays out hierarchical data with the Walker tidy tree algorithm and
renders it as an org chart, a Graphviz node-link diagram, or an interactive
chart in the terminal or the browser.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if c.configPath == "" {
				return nil
			}
			return applyConfigFile(cmd, c.configPath, c.Logger)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with [layout] and [render] defaults")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/tidytree/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flags & Config File
// =============================================================================

// addLayoutFlags registers a flag for every layout and node size setting.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	def := tidy.DefaultConfig()
	opts.Layout = def

	fs := cmd.Flags()
	fs.IntVar(&opts.Layout.MaxDepth, "max-depth", def.MaxDepth, "deepest level laid out (0 for unlimited)")
	fs.Float64Var(&opts.Layout.LevelSeparation, "level-sep", def.LevelSeparation, "vertical gap between levels")
	fs.Float64Var(&opts.Layout.SiblingSeparation, "sibling-sep", def.SiblingSeparation, "horizontal gap between siblings")
	fs.Float64Var(&opts.Layout.SubtreeSeparation, "subtree-sep", def.SubtreeSeparation, "horizontal gap between neighboring subtrees")
	fs.Float64Var(&opts.Layout.TopXAdjustment, "top-x", def.TopXAdjustment, "horizontal offset of the root")
	fs.Float64Var(&opts.Layout.TopYAdjustment, "top-y", def.TopYAdjustment, "vertical offset of the root")
	fs.Float64Var(&opts.NodeWidth, "node-width", 0, "width of nodes the input leaves unsized (default 100)")
	fs.Float64Var(&opts.NodeHeight, "node-height", 0, "height of nodes the input leaves unsized (default 50)")
}

// configTables are the tables a --config file may contain.
var configTables = map[string]bool{"layout": true, "render": true}

// applyConfigFile sets every flag named in the config file that was not given
// on the command line. Keys use the flag names with dashes or underscores:
//
//	[layout]
//	sibling_sep = 30
//
//	[render]
//	style = "soft"
//	format = ["svg", "png"]
//
// Keys for flags the running command does not have are skipped.
func applyConfigFile(cmd *cobra.Command, path string, logger *log.Logger) error {
	var tables map[string]map[string]any
	if _, err := toml.DecodeFile(path, &tables); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		if !configTables[name] {
			return errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown table [%s] (want [layout] or [render])", path, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fs := cmd.Flags()
	for _, name := range names {
		for key, value := range tables[name] {
			flag := strings.ReplaceAll(key, "_", "-")
			f := fs.Lookup(flag)
			if f == nil {
				logger.Debug("config key not used by command", "key", name+"."+key, "command", cmd.Name())
				continue
			}
			if f.Changed {
				continue
			}
			if err := fs.Set(flag, configValue(value)); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s: %s.%s", path, name, key)
			}
		}
	}
	return nil
}

// configValue formats a decoded TOML value the way it would be typed as a
// flag. Arrays become comma-separated lists.
func configValue(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// selection converts the --selected flag into the pipeline's optional id.
func selection(id int) *int {
	if id == noSelection {
		return nil
	}
	return &id
}
