package mssos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClosestMatch(t *testing.T) {
	results := []BusinessSummary{
		{Name: "ACME HOLDINGS", Id: "1"},
		{Name: "ACME WIDGETS, LLC", Id: "2"},
		{Name: "WIDGET WORKS", Id: "3"},
	}

	testCases := []struct {
		query    string
		expected string
	}{
		{query: "acme widgets llc", expected: "2"},
		{query: "  Acme   Holdings ", expected: "1"},
		{query: "Widget Works Inc", expected: "3"},
	}
	for _, test := range testCases {
		match, ok := ClosestMatch(test.query, results)
		require.True(t, ok)
		require.Equal(t, test.expected, match.Id, test.query)
	}

	_, ok := ClosestMatch("acme", nil)
	require.False(t, ok)

	// ties keep the earliest result
	match, ok := ClosestMatch("same", []BusinessSummary{{Name: "Same", Id: "a"}, {Name: "SAME", Id: "b"}})
	require.True(t, ok)
	require.Equal(t, "a", match.Id)
}
