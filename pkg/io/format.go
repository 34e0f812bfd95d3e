package io

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath returns the format implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported tree file extension %q (use .json or .toml)", ext)
	}
}

// document is the on-disk shape of a node. ID and Position are written but
// never read back.
type document struct {
	ID       int        `json:"id" toml:"id"`
	Label    string     `json:"label" toml:"label"`
	Width    float64    `json:"width,omitempty" toml:"width,omitempty"`
	Height   float64    `json:"height,omitempty" toml:"height,omitempty"`
	X        float64    `json:"x" toml:"x"`
	Y        float64    `json:"y" toml:"y"`
	Children []document `json:"children,omitempty" toml:"children,omitempty"`
}

func fromTree(n *tree.Node) document {
	d := document{
		ID:     n.ID,
		Label:  n.Label,
		Width:  n.Size.Width,
		Height: n.Size.Height,
		X:      n.Position.X,
		Y:      n.Position.Y,
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, fromTree(c))
	}
	return d
}

// build allocates nodes for d and its descendants in pre-order, so ids follow
// document order.
func (d document) build(gen *tree.Generator, path string) (*tree.Node, error) {
	if d.Label == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node %s: missing label", path)
	}
	if d.Width < 0 || d.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node %s: negative size %gx%g", path, d.Width, d.Height)
	}

	n := gen.NewNode(d.Label)
	if d.Width > 0 {
		n.Size.Width = d.Width
	}
	if d.Height > 0 {
		n.Size.Height = d.Height
	}
	for i, c := range d.Children {
		child, err := c.build(gen, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}
