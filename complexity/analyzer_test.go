package complexity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structbench/complexity"
)

// TestLookup_KnownPairs spot-checks the catalog's load-bearing entries.
func TestLookup_KnownPairs(t *testing.T) {
	cases := []struct {
		structure, operation string
		worst                complexity.Class
	}{
		{"stack", "push", complexity.O1},
		{"stack", "search", complexity.ON},
		{"queue", "dequeue", complexity.O1},
		{"queue", "search", complexity.ON},
		{"linked_list", "insert_head", complexity.O1},
		{"linked_list", "access", complexity.ON},
	}

	for _, tc := range cases {
		a, err := complexity.Lookup(tc.structure, tc.operation)
		require.NoError(t, err, "%s/%s must be in the catalog", tc.structure, tc.operation)
		assert.Equal(t, tc.worst, a.Worst, "%s/%s worst case", tc.structure, tc.operation)
		assert.NotEmpty(t, a.Explanation, "every entry carries an explanation")
	}
}

// TestLookup_NormalizesNames verifies case and space folding on inputs,
// so "Linked List" and "linked_list" hit the same entry.
func TestLookup_NormalizesNames(t *testing.T) {
	a, err := complexity.Lookup("Linked List", " Search ")
	require.NoError(t, err)
	assert.Equal(t, "search", a.Operation)
}

// TestLookup_UnknownNames ensures catalog misses surface the sentinel
// errors (caller misuse is propagated, not recovered).
func TestLookup_UnknownNames(t *testing.T) {
	_, err := complexity.Lookup("btree", "search")
	assert.ErrorIs(t, err, complexity.ErrUnknownStructure)

	_, err = complexity.Lookup("stack", "dequeue")
	assert.ErrorIs(t, err, complexity.ErrUnknownOperation)
}

// TestOperations_OrderAndCoverage checks per-structure enumeration order
// and that the three catalogs cover the documented fourteen operations.
func TestOperations_OrderAndCoverage(t *testing.T) {
	stack, err := complexity.Operations("stack")
	require.NoError(t, err)
	queue, err := complexity.Operations("queue")
	require.NoError(t, err)
	list, err := complexity.Operations("linked_list")
	require.NoError(t, err)

	assert.Len(t, stack, 4)
	assert.Len(t, queue, 4)
	assert.Len(t, list, 6)
	assert.Equal(t, "push", stack[0].Operation, "stack enumeration starts at push")
	assert.Equal(t, "access", list[5].Operation, "list enumeration ends at access")

	_, err = complexity.Operations("heap")
	assert.ErrorIs(t, err, complexity.ErrUnknownStructure)
}

// TestCompare_GenericKinds verifies the insert/delete/search mapping onto
// each structure's equivalent operation.
func TestCompare_GenericKinds(t *testing.T) {
	got := complexity.Compare("insert")
	require.Len(t, got, 3)
	assert.Equal(t, "push", got["stack"].Operation)
	assert.Equal(t, "enqueue", got["queue"].Operation)
	assert.Equal(t, "insert_head", got["linked_list"].Operation)
}

// TestCompare_DirectOperation verifies the direct-lookup fallback for
// operation names that are not generic kinds.
func TestCompare_DirectOperation(t *testing.T) {
	got := complexity.Compare("peek")
	assert.Len(t, got, 2, "peek exists on stack and queue only")

	assert.Empty(t, complexity.Compare("splay"), "unknown op yields an empty map")
}

// TestStructuresAndArray checks the fixed enumerations used by reports.
func TestStructuresAndArray(t *testing.T) {
	assert.Equal(t, []string{"stack", "queue", "linked_list"}, complexity.Structures())

	arr := complexity.Array()
	require.Len(t, arr, 4)
	assert.Equal(t, "access", arr[0].Operation)
	assert.Equal(t, complexity.O1, arr[0].Worst, "array access stays O(1)")
}
