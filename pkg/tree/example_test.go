package tree_test

import (
	"fmt"

	"github.com/matzehuels/tidytree/pkg/errors"
	"github.com/matzehuels/tidytree/pkg/tree"
)

func ExampleGenerator() {
	gen := tree.NewGenerator()
	root := gen.NewNode("Maekar I")
	root.AddChild(gen.NewNode("Aerion"))
	root.AddChild(gen.NewNode("Aegon V"))

	for _, n := range tree.Flatten(root) {
		fmt.Println(n.ID, n.Label, n.Level())
	}
	// Output:
	// 0 Maekar I 0
	// 1 Aerion 1
	// 2 Aegon V 1
}

func ExampleDestroy() {
	gen := tree.NewGenerator()
	root := gen.NewNode("Maekar I")
	aegon := gen.NewNode("Aegon V")
	root.AddChild(aegon)
	aegon.AddChild(gen.NewNode("Duncan"))

	err := tree.Destroy(root)
	fmt.Println("root removal rejected:", errors.Is(err, errors.ErrCodeRootRemovalRejected))

	_ = tree.Destroy(aegon)
	fmt.Println("nodes left:", tree.Count(root))
	// Output:
	// root removal rejected: true
	// nodes left: 1
}

func ExampleFindByID() {
	gen := tree.NewGenerator()
	root := gen.NewNode("Maekar I")
	root.AddChild(gen.NewNode("Daeron"))

	if n, ok := tree.FindByID(root, 1); ok {
		fmt.Println("found:", n.Label)
	}
	_, ok := tree.FindByID(root, 99)
	fmt.Println("99 found:", ok)
	// Output:
	// found: Daeron
	// 99 found: false
}
