package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// WriteJSON encodes the tree under root as indented JSON.
func WriteJSON(root *tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromTree(root)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// ReadJSON decodes a JSON document from r and builds a tree, drawing ids and
// default sizes from gen. Unknown keys are rejected, as in TOML input.
// ReadJSON does not close r.
func ReadJSON(r io.Reader, gen *tree.Generator) (*tree.Node, error) {
	var d document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return d.build(gen, "root")
}
