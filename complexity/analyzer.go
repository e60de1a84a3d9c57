package complexity

import (
	"fmt"
	"strings"
)

// normalize folds user-facing spellings ("Linked List") onto catalog keys.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Structures returns the catalog's structure names in canonical order.
func Structures() []string {
	out := make([]string, len(structureOrder))
	copy(out, structureOrder)

	return out
}

// Lookup returns the Analysis for one (structure, operation) pair.
// Unknown names surface ErrUnknownStructure or ErrUnknownOperation wrapped
// with the offending name; both indicate caller misuse, not a measurement
// condition.
func Lookup(structure, operation string) (Analysis, error) {
	structure = normalize(structure)
	operation = normalize(operation)

	ops, ok := tables[structure]
	if !ok {
		return Analysis{}, fmt.Errorf("%w: %q", ErrUnknownStructure, structure)
	}
	a, ok := ops[operation]
	if !ok {
		return Analysis{}, fmt.Errorf("%w: %q for %s", ErrUnknownOperation, operation, structure)
	}

	return a, nil
}

// Operations returns every Analysis for a structure, in canonical order.
func Operations(structure string) ([]Analysis, error) {
	structure = normalize(structure)
	order, ok := operationOrder[structure]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStructure, structure)
	}

	out := make([]Analysis, 0, len(order))
	for _, op := range order {
		out = append(out, tables[structure][op])
	}

	return out, nil
}

// Array returns the dynamic-array reference analyses, in canonical order.
// Arrays are not part of the benchmark catalog; the table exists purely
// for side-by-side contrast in reports.
func Array() []Analysis {
	out := make([]Analysis, 0, len(arrayOrder))
	for _, op := range arrayOrder {
		out = append(out, arrayTable[op])
	}

	return out
}

// Compare maps a generic operation kind (insert, delete, search) onto each
// structure's equivalent operation and returns the per-structure analyses,
// keyed by structure name. An operation name that is not a generic kind is
// matched directly against each structure's table instead, so
// Compare("peek") also works. An empty map means nothing matched.
func Compare(operation string) map[string]Analysis {
	operation = normalize(operation)
	out := make(map[string]Analysis)

	if mapping, ok := equivalentOps[operation]; ok {
		for structure, op := range mapping {
			out[structure] = tables[structure][op]
		}

		return out
	}

	// Fall back to a direct per-structure lookup.
	for structure, ops := range tables {
		if a, ok := ops[operation]; ok {
			out[structure] = a
		}
	}

	return out
}
