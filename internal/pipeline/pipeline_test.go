package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookengine/internal/book"
)

func TestRun_ScenarioAEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"N, 1, IBM, 10, 100, B, 1",
		"N, 1, IBM, 12, 100, S, 2",
		"N, 2, IBM, 9, 100, B, 101",
		"N, 2, IBM, 11, 100, S, 102",
		"N, 1, IBM, 11, 100, B, 3",
		"N, 2, IBM, 10, 100, S, 103",
		"N, 1, IBM, 10, 100, B, 4",
		"N, 2, IBM, 11, 100, S, 104",
		"F",
	}, "\n")

	expected := strings.Join([]string{
		"A, 1, 1",
		"B, B, 10, 100",
		"A, 1, 2",
		"B, S, 12, 100",
		"A, 2, 101",
		"A, 2, 102",
		"B, S, 11, 100",
		"R, 1, 3",
		"R, 2, 103",
		"A, 1, 4",
		"B, B, 10, 200",
		"A, 2, 104",
		"B, S, 11, 200",
		"",
	}, "\n")

	b := book.New("IBM", false)
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, Run(ctx, b, strings.NewReader(input), &out))
	assert.Equal(t, expected, out.String())
	assert.Equal(t, "", b.Ticker())
}
