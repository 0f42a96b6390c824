package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookengine/internal/book"
)

func TestRead_ParsesAndSkipsLines(t *testing.T) {
	input := strings.Join([]string{
		"N, 1, IBM, 10, 100, B, 1",
		"not a real line",
		"C, 1, 1",
		"F",
	}, "\n")

	out := make(chan book.UserAction, 16)
	done := make(chan struct{})

	err := Read(strings.NewReader(input), out, done)
	require.NoError(t, err)
	close(out)

	var actions []book.UserAction
	for a := range out {
		actions = append(actions, a)
	}

	require.Len(t, actions, 3)
	assert.Equal(t, book.ActionNewOrder, actions[0].Kind)
	assert.Equal(t, book.ActionCancelOrder, actions[1].Kind)
	assert.Equal(t, book.ActionFlush, actions[2].Kind)
}
