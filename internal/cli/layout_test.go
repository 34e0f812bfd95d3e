package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func TestLayoutCommand(t *testing.T) {
	path := writeSample(t)

	if err := runCLI(t, "layout", path); err != nil {
		t.Fatalf("layout: %v", err)
	}
	out := strings.TrimSuffix(path, ".toml") + ".layout.json"
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"label": "Duncan"`, `"x": 120`, `"y": 200`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %s:\n%s", want, data)
		}
	}
}

func TestLayoutCommandTOMLOutput(t *testing.T) {
	path := writeSample(t)
	out := filepath.Join(filepath.Dir(path), "positions.toml")

	if err := runCLI(t, "layout", path, "-o", out, "--top-x", "10"); err != nil {
		t.Fatal(err)
	}
	root, err := pio.ImportFile(out, tree.NewGenerator())
	if err != nil {
		t.Fatal(err)
	}
	if tree.Count(root) != 4 {
		t.Errorf("wrote %d nodes", tree.Count(root))
	}
}

func TestLayoutCommandTable(t *testing.T) {
	path := writeSample(t)
	if err := runCLI(t, "layout", path, "--table"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(strings.TrimSuffix(path, ".toml") + ".layout.json"); !os.IsNotExist(err) {
		t.Error("--table should not write a file")
	}
}

func TestPositionsTable(t *testing.T) {
	gen := tree.NewGenerator()
	root := gen.NewNode("Maekar I")
	root.AddChild(gen.NewNode("Aerion"))
	root.AddChild(gen.NewNode("Aegon V"))
	tidy.Layout(root, tidy.DefaultConfig())

	got := positionsTable(root)
	for _, want := range []string{"Label", "Maekar I", "  Aerion", "120", "100x50"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}
