// Package complexity provides static Big-O analyses for the toolkit's
// linear data structures, with plain-language explanations, cross-structure
// comparisons, and operation-count predictions.
//
// 🚀 What is complexity?
//
//	A fixed, curated catalog answering three questions:
//	  • What does operation X on structure Y cost? — Lookup
//	  • How do the structures compare on insert/delete/search? — Compare
//	  • Roughly how many steps will n elements take? — Predict
//
// ⚙️ Usage:
//
//	a, err := complexity.Lookup("stack", "search")
//	if err != nil {
//	  // ErrUnknownStructure or ErrUnknownOperation
//	}
//	fmt.Println(a.Worst)       // O(n)
//	fmt.Println(a.Explanation) // why the bound holds
//
// The tables are theory, not measurement; see the perf package for
// empirical growth curves of the same operations.
package complexity
