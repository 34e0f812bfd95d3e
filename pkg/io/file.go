package io

import (
	"io"
	"os"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// ImportFile reads the tree stored at path. The extension selects the
// decoder; see [FormatFromPath].
func ImportFile(path string, gen *tree.Generator) (*tree.Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format, gen)
}

// ExportFile writes the tree under root to path in the format implied by its
// extension.
func ExportFile(root *tree.Node, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := Write(root, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a document in the given format.
func Read(r io.Reader, format Format, gen *tree.Generator) (*tree.Node, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r, gen)
	case FormatTOML:
		return ReadTOML(r, gen)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown tree format: %s", format)
	}
}

// Write encodes the tree under root in the given format.
func Write(root *tree.Node, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(root, w)
	case FormatTOML:
		return WriteTOML(root, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown tree format: %s", format)
	}
}
