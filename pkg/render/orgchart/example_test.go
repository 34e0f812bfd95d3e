package orgchart_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tidytree/pkg/render/orgchart"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func ExampleRenderSVG() {
	gen := tree.NewGenerator()
	root := gen.NewNode("Aegon V")
	root.AddChild(gen.NewNode("Duncan"))
	tidy.Layout(root, tidy.DefaultConfig())

	svg := string(orgchart.RenderSVG(root))
	fmt.Println(strings.Count(svg, "<rect"), "boxes")
	fmt.Println(strings.Count(svg, "<line"), "connector segments")
	// Output:
	// 2 boxes
	// 2 connector segments
}
