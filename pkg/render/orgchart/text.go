package orgchart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"
)

const (
	fontHeightRatio = 0.4
	fontWidthRatio  = 0.9
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 18.0
)

// fontSize fits a label into its box, assuming an average glyph width of
// fontCharWidth em.
func fontSize(b Box) float64 {
	n := max(1, utf8.RuneCountInString(b.Label))
	byHeight := b.H * fontHeightRatio
	byWidth := (b.W * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, byHeight, byWidth))
}

// truncateLabel shortens a label that does not fit even at fontSizeMin.
func truncateLabel(label string, width, size float64) string {
	maxChars := max(3, int(width*fontWidthRatio/(size*fontCharWidth)))
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-2]) + ".."
}

func renderLabel(buf *bytes.Buffer, b Box, family, color string) {
	size := fontSize(b)
	fmt.Fprintf(buf, `    <text class="label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		b.CX, b.CY, family, size, color, escapeXML(truncateLabel(b.Label, b.W, size)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
