package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tidytree/pkg/chart"
	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// editCommand creates the edit command for the terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	var savePath string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "edit [tree.toml|tree.json]",
		Short: "Edit a tree in the terminal",
		Long: `Edit a tree in the terminal.

The tree is shown as an outline with each node's laid-out position. Move the
selection with the arrow keys (up: parent, down: first child, left/right:
siblings), add a child with a, rename with r, remove with x, zoom with + and -,
and save with s.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
				if savePath == "" {
					savePath = args[0]
				}
			}
			return c.runEdit(cmd.Context(), opts, savePath)
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "file to save to (default: the input file)")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runEdit opens the chart and runs the editor until the user quits.
func (c *CLI) runEdit(ctx context.Context, opts pipeline.Options, savePath string) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ch, err := c.openChart(ctx, runner, opts)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(newEditModel(ch, savePath), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	if m, ok := final.(editModel); ok && m.dirty {
		printWarning("Quit with unsaved changes")
	}
	return nil
}

// =============================================================================
// editModel - Interactive tree editor
// =============================================================================

// editModel is the bubbletea model of the terminal editor. The chart is
// shared by pointer, so copies of the model edit the same tree.
type editModel struct {
	chart    *chart.Chart
	savePath string

	status   string
	failed   bool
	dirty    bool
	renaming bool
	input    string

	height int
	offset int
}

func newEditModel(c *chart.Chart, savePath string) editModel {
	return editModel{chart: c, savePath: savePath, height: 20}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next.follow(), cmd
}

func (m editModel) update(msg tea.Msg) (editModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg), nil
		}
		m.status, m.failed = "", false

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.chart.SelectParent()
		case "down", "j":
			m.chart.SelectFirstChild()
		case "left", "h":
			m.chart.SelectSibling(-1)
		case "right", "l":
			m.chart.SelectSibling(1)
		case "a":
			n := m.chart.AddChild()
			m.dirty = true
			m.status = fmt.Sprintf("Added %q", n.Label)
		case "x", "delete":
			label := m.chart.Info().Label
			if err := m.chart.Remove(); err != nil {
				return m.fail(err), nil
			}
			m.dirty = true
			m.status = fmt.Sprintf("Removed %q", label)
		case "r":
			m.renaming = true
			m.input = m.chart.Info().Label
		case "+", "=":
			m.chart.ZoomIn()
		case "-":
			m.chart.ZoomOut()
		case "s":
			return m.save(), nil
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 14
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// updateRename edits the label being typed.
func (m editModel) updateRename(msg tea.KeyMsg) editModel {
	switch msg.Type {
	case tea.KeyEnter:
		m.renaming = false
		if err := m.chart.Rename(m.input); err != nil {
			return m.fail(err)
		}
		m.dirty = true
		m.status = fmt.Sprintf("Renamed to %q", m.input)
	case tea.KeyEsc, tea.KeyCtrlC:
		m.renaming = false
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m
}

func (m editModel) save() editModel {
	if m.savePath == "" {
		m.status, m.failed = "No file to save to (start with --save)", true
		return m
	}
	var err error
	m.chart.View(func(root, _ *tree.Node) { err = pio.ExportFile(root, m.savePath) })
	if err != nil {
		return m.fail(err)
	}
	m.dirty = false
	m.status = "Saved " + m.savePath
	return m
}

func (m editModel) fail(err error) editModel {
	m.status, m.failed = err.Error(), true
	return m
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("tidytree"))
	if m.savePath != "" {
		b.WriteString(" " + listDimStyle.Render(m.savePath))
	}
	if m.dirty {
		b.WriteString(" " + StyleWarning.Render("*"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑ parent  ↓ child  ←/→ sibling  a add  r rename  x remove  +/- zoom  s save  q quit"))
	b.WriteString("\n\n")

	lines, cursor := m.outline()
	end := min(m.offset+m.height, len(lines))
	for _, line := range lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(lines) > m.height {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", cursor+1, len(lines))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.panel())
	b.WriteString("\n")

	switch {
	case m.renaming:
		b.WriteString(StyleHighlight.Render("Label: ") + m.input + "█")
	case m.failed:
		b.WriteString(styleIconError.Render(iconError) + " " + m.status)
	case m.status != "":
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + m.status)
	}
	return b.String()
}

// follow scrolls the outline so the selection stays visible.
func (m editModel) follow() editModel {
	lines, cursor := m.outline()
	m.offset = scrollOffset(m.offset, cursor, m.height, len(lines))
	return m
}

// outline returns one line per node in pre-order and the index of the
// selected node's line.
func (m editModel) outline() ([]string, int) {
	var lines []string
	cursor := 0
	m.chart.View(func(root, selected *tree.Node) {
		tree.Walk(root, func(n *tree.Node) bool {
			prefix := "  "
			style := listNormalStyle
			if n == selected {
				prefix = "▸ "
				style = listSelectedStyle
				cursor = len(lines)
			}
			pos := fmt.Sprintf("(%s, %s)", formatCoord(n.Position.X), formatCoord(n.Position.Y))
			lines = append(lines, prefix+strings.Repeat("  ", n.Level())+style.Render(n.Label)+" "+listDimStyle.Render(pos))
			return true
		})
	})
	return lines, cursor
}

// panel renders the selected node's details.
func (m editModel) panel() string {
	info := m.chart.Info()
	stats := m.chart.Stats()
	rows := [][2]string{
		{"Label", info.Label},
		{"ID", strconv.Itoa(info.ID)},
		{"Level", strconv.Itoa(info.Level)},
		{"Children", strconv.Itoa(info.Children)},
		{"Position", fmt.Sprintf("%s, %s", formatCoord(info.Position.X), formatCoord(info.Position.Y))},
		{"Size", fmt.Sprintf("%sx%s", formatCoord(info.Size.Width), formatCoord(info.Size.Height))},
		{"Zoom", fmt.Sprintf("%.2f", m.chart.Zoom())},
		{"Levels", strconv.Itoa(stats.Levels)},
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(keyStyle.Render(r[0]) + StyleValue.Render(r[1]))
	}
	return panelStyle.Render(b.String())
}

// scrollOffset keeps cursor inside a window of height lines.
func scrollOffset(offset, cursor, height, total int) int {
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	return max(0, min(offset, total-height))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
