package orgchart

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tidytree/pkg/errors"
)

// Style defines the visual appearance of a chart.
type Style interface {
	// RenderDefs writes SVG <defs> content or global styles.
	RenderDefs(buf *bytes.Buffer)
	// RenderBox writes the shape of a single node.
	RenderBox(buf *bytes.Buffer, b Box)
	// RenderConnector writes one straight piece of an elbow connector.
	RenderConnector(buf *bytes.Buffer, s Segment)
	// RenderText writes a node's label.
	RenderText(buf *bytes.Buffer, b Box)
}

// Box contains all data needed to draw one node.
type Box struct {
	ID         int     // Node identifier
	Label      string  // Display text
	X, Y, W, H float64 // Top-left corner and size
	CX, CY     float64 // Center coordinates (for text)
	Selected   bool    // Whether to apply selection styling
}

// Segment is an axis-aligned connector line.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Style names accepted by StyleByName.
const (
	StylePlain = "plain"
	StyleSoft  = "soft"
)

// StyleNames lists the accepted style names.
var StyleNames = []string{StylePlain, StyleSoft}

// StyleByName resolves a style from its name. An empty name selects Plain.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", StylePlain:
		return Plain{}, nil
	case StyleSoft:
		return Soft{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: plain, soft)", name)
	}
}

// Plain draws black outlines on white. The selected node is filled red with
// white text.
type Plain struct{}

func (Plain) RenderDefs(buf *bytes.Buffer) {}

func (Plain) RenderBox(buf *bytes.Buffer, b Box) {
	fill := "white"
	if b.Selected {
		fill = "red"
	}
	fmt.Fprintf(buf, `    <rect class="box" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="black" stroke-width="1"/>`+"\n",
		b.X, b.Y, b.W, b.H, fill)
}

func (Plain) RenderConnector(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `    <line class="connector" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="1"/>`+"\n",
		s.X1, s.Y1, s.X2, s.Y2)
}

func (Plain) RenderText(buf *bytes.Buffer, b Box) {
	color := "black"
	if b.Selected {
		color = "white"
	}
	renderLabel(buf, b, "sans-serif", color)
}

// Soft draws rounded boxes in muted colors.
type Soft struct{}

const softCSS = `
    .box { fill: #f7fafc; stroke: #4a5568; stroke-width: 1.5; }
    .box.selected { fill: #2b6cb0; stroke: #2c5282; }
    .connector { stroke: #a0aec0; stroke-width: 1.5; }`

func (Soft) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", softCSS)
}

func (Soft) RenderBox(buf *bytes.Buffer, b Box) {
	class := "box"
	if b.Selected {
		class += " selected"
	}
	fmt.Fprintf(buf, `    <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="6" ry="6"/>`+"\n",
		class, b.X, b.Y, b.W, b.H)
}

func (Soft) RenderConnector(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `    <line class="connector" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
		s.X1, s.Y1, s.X2, s.Y2)
}

func (Soft) RenderText(buf *bytes.Buffer, b Box) {
	color := "#1a202c"
	if b.Selected {
		color = "white"
	}
	renderLabel(buf, b, "Helvetica, Arial, sans-serif", color)
}
