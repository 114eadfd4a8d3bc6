package fetcher

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line   string
		typ    CommandType
		option int
	}{
		{line: "a", typ: CommandSelect, option: 0},
		{line: "B", typ: CommandSelect, option: 1},
		{line: " d ", typ: CommandSelect, option: 3},
		{line: "f", typ: CommandSelect, option: 5},
		{line: "1", typ: CommandSelect, option: 0},
		{line: "6", typ: CommandSelect, option: 5},
		{line: "s", typ: CommandSubmit},
		{line: "Submit", typ: CommandSubmit},
		{line: "n", typ: CommandNext},
		{line: "next", typ: CommandNext},
		{line: "r", typ: CommandReset},
		{line: "retry", typ: CommandReset},
		{line: "?", typ: CommandHelp},
		{line: "q", typ: CommandQuit},
		{line: "g", typ: CommandUnknown},
		{line: "7", typ: CommandUnknown},
		{line: "0", typ: CommandUnknown},
		{line: "hello", typ: CommandUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			cmd := ParseCommand(tc.line)
			assert.Equal(t, tc.typ, cmd.Type)
			assert.Equal(t, tc.line, cmd.Raw)
			if tc.typ == CommandSelect {
				assert.Equal(t, tc.option, cmd.Option)
			}
		})
	}
}

func TestLineFetcher_ReadsUntilEOF(t *testing.T) {
	f := NewLineFetcher(strings.NewReader("a\n\n  \ns\nn\n"))
	ctx := context.Background()

	var got []CommandType
	for {
		cmd, err := f.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, cmd.Type)
	}

	assert.Equal(t, []CommandType{CommandSelect, CommandSubmit, CommandNext}, got)

	_, err := f.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineFetcher_ContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	f := NewLineFetcher(r)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
