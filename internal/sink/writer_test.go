package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookengine/internal/book"
)

func TestWriter_PrimaryThenSecondary(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	b := book.New("IBM", false)
	primary, secondary := b.NewOrder(1, 1, 10, 100, book.Buy)

	require.NoError(t, w.Write(primary, secondary))
	require.NoError(t, w.Flush())

	assert.Equal(t, "A, 1, 1\nB, B, 10, 100\n", buf.String())
}

func TestWriter_FlushProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.NoError(t, w.Write(nil, nil))
	require.NoError(t, w.Flush())

	assert.Equal(t, "", buf.String())
}

func TestWriter_PrimaryOnly(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	b := book.New("IBM", false)
	primary, secondary := b.NewOrder(1, 1, 9, 100, book.Buy)
	primary2, secondary2 := b.NewOrder(2, 1, 8, 50, book.Buy)

	require.NoError(t, w.Write(primary, secondary))
	require.NoError(t, w.Write(primary2, secondary2))
	require.NoError(t, w.Flush())

	assert.Equal(t, "A, 1, 1\nB, B, 9, 100\nA, 2, 1\n", buf.String())
}
