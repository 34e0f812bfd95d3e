package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tidytree/pkg/chart"
	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs to m in order and returns the final model.
func press(t *testing.T, m editModel, msgs ...tea.Msg) editModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(editModel)
	}
	return m
}

func newTestEditor(t *testing.T, savePath string) editModel {
	t.Helper()
	gen := tree.NewGenerator()
	root := gen.NewNode("Maekar I")
	root.AddChild(gen.NewNode("Aerion"))
	egg := gen.NewNode("Aegon V")
	egg.AddChild(gen.NewNode("Duncan"))
	root.AddChild(egg)
	c, err := chart.FromTree(root, gen, tidy.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return newEditModel(c, savePath)
}

func TestEditNavigation(t *testing.T) {
	m := newTestEditor(t, "")

	tests := []struct {
		name string
		key  tea.KeyMsg
		want string
	}{
		{"down to first child", tea.KeyMsg{Type: tea.KeyDown}, "Aerion"},
		{"right to sibling", tea.KeyMsg{Type: tea.KeyRight}, "Aegon V"},
		{"right stops at the end", keys("l"), "Aegon V"},
		{"down again", keys("j"), "Duncan"},
		{"down at a leaf stays", tea.KeyMsg{Type: tea.KeyDown}, "Duncan"},
		{"up to parent", tea.KeyMsg{Type: tea.KeyUp}, "Aegon V"},
		{"left to sibling", keys("h"), "Aerion"},
		{"up to root", keys("k"), "Maekar I"},
		{"up at root stays", keys("k"), "Maekar I"},
	}
	for _, tt := range tests {
		m = press(t, m, tt.key)
		if got := m.chart.Info().Label; got != tt.want {
			t.Fatalf("%s: selection = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEditAddRemove(t *testing.T) {
	m := newTestEditor(t, "")

	m = press(t, m, keys("a"))
	if !m.dirty || !strings.Contains(m.status, "Child of Maekar I") {
		t.Errorf("after add: dirty=%v status=%q", m.dirty, m.status)
	}
	if m.chart.Info().Children != 3 {
		t.Errorf("root has %d children", m.chart.Info().Children)
	}

	m = press(t, m, keys("x"))
	if !m.failed {
		t.Error("removing the root should fail")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDelete})
	if m.failed || m.chart.Info().Label != "Maekar I" || m.chart.Info().Children != 2 {
		t.Errorf("after remove: %+v failed=%v", m.chart.Info(), m.failed)
	}
}

func TestEditRename(t *testing.T) {
	m := newTestEditor(t, "")
	m = press(t, m, keys("r"))
	if !m.renaming || m.input != "Maekar I" {
		t.Fatalf("rename mode: %v %q", m.renaming, m.input)
	}

	// While renaming, letters are typed, not commands.
	bs := tea.KeyMsg{Type: tea.KeyBackspace}
	space := tea.KeyMsg{Type: tea.KeySpace}
	m = press(t, m, bs, bs, space, keys("q"), space, keys("X"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.renaming || m.chart.Info().Label != "Maekar q X" {
		t.Errorf("label = %q", m.chart.Info().Label)
	}

	m = press(t, m, keys("r"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.renaming || m.chart.Info().Label != "Maekar q X" {
		t.Error("escape should cancel without renaming")
	}

	// Clearing the label is rejected.
	m = press(t, m, keys("r"))
	for range len("Maekar q X") {
		m = press(t, m, bs)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.failed || m.chart.Info().Label != "Maekar q X" {
		t.Errorf("empty label accepted: %q", m.chart.Info().Label)
	}
}

func TestEditZoom(t *testing.T) {
	m := newTestEditor(t, "")
	m = press(t, m, keys("+"), keys("+"), keys("-"))
	want := 1.0 * chart.ZoomInFactor
	want *= chart.ZoomInFactor
	want *= chart.ZoomOutFactor
	if got := m.chart.Zoom(); got != want {
		t.Errorf("zoom = %v, want %v", got, want)
	}
}

func TestEditSave(t *testing.T) {
	m := newTestEditor(t, "")
	m = press(t, m, keys("s"))
	if !m.failed {
		t.Error("save without a path should fail")
	}

	path := filepath.Join(t.TempDir(), "family.json")
	m = newTestEditor(t, path)
	m = press(t, m, keys("a"), keys("s"))
	if m.failed || m.dirty {
		t.Fatalf("save: %q", m.status)
	}
	root, err := pio.ImportFile(path, tree.NewGenerator())
	if err != nil {
		t.Fatal(err)
	}
	if tree.Count(root) != 5 {
		t.Errorf("saved %d nodes, want 5", tree.Count(root))
	}
}

func TestEditQuit(t *testing.T) {
	m := newTestEditor(t, "")
	for _, key := range []tea.KeyMsg{keys("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key)
		}
	}
}

func TestEditView(t *testing.T) {
	m := newTestEditor(t, "family.toml")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	view := m.View()

	for _, want := range []string{"family.toml", "▸ ", "Aerion", "Duncan", "(0, 110)", "Level"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEditScroll(t *testing.T) {
	m := newTestEditor(t, "")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 16})
	if m.height != 5 {
		t.Fatalf("height = %d, want the minimum 5", m.height)
	}
	for range 6 {
		m = press(t, m, keys("a"))
	}
	// Select the last of the root's eight children.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for range 7 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	lines, cursor := m.outline()
	if cursor != 9 {
		t.Fatalf("cursor = %d, want 9", cursor)
	}
	if cursor < m.offset || cursor >= m.offset+m.height {
		t.Errorf("cursor %d outside window [%d, %d) of %d lines", cursor, m.offset, m.offset+m.height, len(lines))
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		offset, cursor, height, total int
		want                          int
	}{
		{0, 0, 5, 3, 0},
		{0, 7, 5, 10, 3},
		{4, 2, 5, 10, 2},
		{8, 9, 5, 10, 5},
	}
	for _, tt := range tests {
		if got := scrollOffset(tt.offset, tt.cursor, tt.height, tt.total); got != tt.want {
			t.Errorf("scrollOffset(%d, %d, %d, %d) = %d, want %d", tt.offset, tt.cursor, tt.height, tt.total, got, tt.want)
		}
	}
}
