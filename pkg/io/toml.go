package io

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// WriteTOML encodes the tree under root as TOML, children as nested arrays of
// tables.
func WriteTOML(root *tree.Node, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(fromTree(root)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// ReadTOML decodes a TOML document from r and builds a tree, drawing ids and
// default sizes from gen. Unknown keys are rejected so that typos such as
// "childern" do not silently drop subtrees.
func ReadTOML(r io.Reader, gen *tree.Generator) (*tree.Node, error) {
	var d document
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown key %q", undecoded[0].String())
	}
	return d.build(gen, "root")
}
