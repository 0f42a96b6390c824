package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookengine/internal/book"
)

func TestParseLine_NewOrder(t *testing.T) {
	a, ok := ParseLine("N, 1, IBM, 10, 100, B, 1")
	require.True(t, ok)
	assert.Equal(t, book.ActionNewOrder, a.Kind)
	assert.Equal(t, uint32(1), a.UserID)
	assert.Equal(t, "IBM", a.Symbol)
	assert.Equal(t, uint32(10), a.Price)
	assert.Equal(t, uint32(100), a.Qty)
	assert.Equal(t, book.Buy, a.Side)
	assert.Equal(t, uint32(1), a.OrderID)
}

func TestParseLine_CancelOrder(t *testing.T) {
	a, ok := ParseLine("C, 1, 1")
	require.True(t, ok)
	assert.Equal(t, book.ActionCancelOrder, a.Kind)
	assert.Equal(t, uint32(1), a.UserID)
	assert.Equal(t, uint32(1), a.OrderID)
}

func TestParseLine_Flush(t *testing.T) {
	a, ok := ParseLine("F")
	require.True(t, ok)
	assert.Equal(t, book.ActionFlush, a.Kind)
}

func TestParseLine_DropsMalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"X, 1, 2",
		"N, 1, IBM, 10, 100, Q, 1",
		"garbage",
	} {
		_, ok := ParseLine(line)
		assert.False(t, ok, "expected %q to be dropped", line)
	}
}
