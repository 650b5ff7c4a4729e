package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup_TopLevel(t *testing.T) {
	reg := NewRegistry()

	node, ok := reg.Lookup("00", nil)
	require.True(t, ok)
	require.Equal(t, "Payload Format Indicator", node.Name)

	// range key: 30 falls inside the 26-37 merchant account band
	node, ok = reg.Lookup("30", nil)
	require.True(t, ok)
	require.Equal(t, "Merchant Account Information", node.Name)
	require.NotNil(t, node.SubFields)

	// exact key wins over the surrounding ranges
	node, ok = reg.Lookup("38", nil)
	require.True(t, ok)
	require.Equal(t, "VietQR", node.Name)

	// outside every defined range
	_, ok = reg.Lookup("99", nil)
	require.False(t, ok)

	// non-numeric ids never resolve
	_, ok = reg.Lookup("ZZ", nil)
	require.False(t, ok)
	_, ok = reg.Lookup("7", nil)
	require.False(t, ok)
}

func TestRegistry_Lookup_Nested(t *testing.T) {
	reg := NewRegistry()

	// second level under a range-keyed template
	node, ok := reg.Lookup("00", []string{"30"})
	require.True(t, ok)
	require.Equal(t, "Globally Unique Identifier", node.Name)

	// the national template goes one level deeper: 38 -> 01 -> 00
	node, ok = reg.Lookup("01", []string{"38"})
	require.True(t, ok)
	require.Equal(t, "Payment Network", node.Name)
	require.NotNil(t, node.SubFields)

	node, ok = reg.Lookup("00", []string{"38", "01"})
	require.True(t, ok)
	require.Equal(t, "Acquirer ID", node.Name)
	require.Equal(t, "Vietcombank", node.Payload["970436"])

	node, ok = reg.Lookup("01", []string{"38", "01"})
	require.True(t, ok)
	require.Equal(t, "Merchant ID", node.Name)

	// ancestor without subfields cannot be descended
	_, ok = reg.Lookup("00", []string{"59"})
	require.False(t, ok)

	// unresolvable ancestor fails the whole chain
	_, ok = reg.Lookup("00", []string{"99"})
	require.False(t, ok)
}

func TestRegistry_AllowedFieldIDs(t *testing.T) {
	reg := NewRegistry()

	top := reg.AllowedFieldIDs(nil)
	require.Contains(t, top, "00")
	require.Contains(t, top, "26")
	require.Contains(t, top, "37")
	require.Contains(t, top, "63")
	require.Contains(t, top, "64")
	require.NotContains(t, top, "65")
	require.NotContains(t, top, "99")

	add := reg.AllowedFieldIDs([]string{"62"})
	require.Contains(t, add, "01")
	require.Contains(t, add, "09")
	require.Contains(t, add, "50")
	require.NotContains(t, add, "10")

	// leaves have no legal children
	require.Empty(t, reg.AllowedFieldIDs([]string{"00"}))
}
