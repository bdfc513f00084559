package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		addr string
		want Position
	}{
		{"A1", Position{Row: 0, Col: 0}},
		{"B1", Position{Row: 0, Col: 1}},
		{"A2", Position{Row: 1, Col: 0}},
		{"Z1", Position{Row: 0, Col: 25}},
		{"AA1", Position{Row: 0, Col: 26}},
		{"AB1", Position{Row: 0, Col: 27}},
		{"bc27", Position{Row: 26, Col: 54}},
	}
	for _, c := range cases {
		t.Run(c.addr, func(t *testing.T) {
			got, err := Parse(c.addr)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStringFormatsUppercase(t *testing.T) {
	p := Position{Row: 26, Col: 54}
	assert.Equal(t, "BC27", p.String())
}

func TestParseInvalid(t *testing.T) {
	for _, addr := range []string{"", "1", "A", "A-1", "1A", "A1B2"} {
		t.Run(addr, func(t *testing.T) {
			_, err := Parse(addr)
			assert.Error(t, err)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.Valid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.Valid())
	assert.False(t, Position{Row: -1, Col: 0}.Valid())
	assert.False(t, Position{Row: 0, Col: -1}.Valid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.Valid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.Valid())
}

func TestLessTotalOrder(t *testing.T) {
	a := Position{Row: 0, Col: 5}
	b := Position{Row: 1, Col: 0}
	c := Position{Row: 0, Col: 6}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
	assert.False(t, a.Less(a))
}

func TestSortPositionsDedupsAndOrders(t *testing.T) {
	in := []Position{
		{Row: 1, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 1},
		{Row: 0, Col: 0},
	}
	got := SortPositions(in)
	want := []Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}
	assert.Equal(t, want, got)
}
