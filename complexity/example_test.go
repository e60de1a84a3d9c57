package complexity_test

import (
	"fmt"

	"github.com/katalvlaran/structbench/complexity"
)

// ExampleLookup shows the canonical "why is linked-list search O(n)" query.
func ExampleLookup() {
	a, err := complexity.Lookup("linked_list", "search")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("best=%s average=%s worst=%s space=%s\n", a.Best, a.Average, a.Worst, a.Space)
	// Output:
	// best=O(1) average=O(n) worst=O(n) space=O(1)
}

// ExamplePredict estimates worst-case step counts at a concrete size.
func ExamplePredict() {
	p, err := complexity.Predict("stack", "search", 10000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s/%s at n=%d: best ~%d op(s), worst ~%d op(s)\n",
		p.Structure, p.Operation, p.InputSize, p.Best.Ops, p.Worst.Ops)
	// Output:
	// stack/search at n=10000: best ~1 op(s), worst ~10000 op(s)
}
