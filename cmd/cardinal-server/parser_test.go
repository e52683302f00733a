package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRESPArray(t *testing.T) {
	p := NewParser(strings.NewReader("*3\r\n$5\r\nC.ADD\r\n$3\r\nkey\r\n$5\r\nvalue\r\n"))
	parts, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"C.ADD", "key", "value"}, parts)
}

func TestParseInline(t *testing.T) {
	p := NewParser(strings.NewReader("C.COUNT  visits\r\n"))
	parts, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"C.COUNT", "visits"}, parts)
}

func TestParseBinarySafeBulk(t *testing.T) {
	// Bulk strings are length-prefixed, so embedded spaces and CR survive.
	p := NewParser(strings.NewReader("*2\r\n$6\r\nC.INFO\r\n$7\r\na b\rc d\r\n"))
	parts, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"C.INFO", "a b\rc d"}, parts)
}

func TestParsePipelinedCommands(t *testing.T) {
	p := NewParser(strings.NewReader("PING\r\nPING\r\n"))

	parts, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"PING"}, parts)
	assert.Positive(t, p.Buffered(), "second command should still be buffered")

	parts, err = p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"PING"}, parts)
	assert.Zero(t, p.Buffered())
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"bulk without dollar", "*1\r\nPING\r\n"},
		{"bad array count", "*x\r\n"},
		{"bad bulk length", "*1\r\n$y\r\n"},
		{"missing bulk terminator", "*1\r\n$4\r\nPINGxx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser(strings.NewReader(tc.input))
			_, err := p.Parse()
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsOversizedHeaders(t *testing.T) {
	t.Run("array too long", func(t *testing.T) {
		p := NewParser(strings.NewReader("*9999999\r\n"))
		_, err := p.Parse()
		assert.ErrorIs(t, err, ErrArrayTooLong)
	})

	t.Run("bulk too large", func(t *testing.T) {
		p := NewParser(strings.NewReader("*1\r\n$999999999\r\n"))
		_, err := p.Parse()
		assert.ErrorIs(t, err, ErrBulkTooLarge)
	})
}

func TestParseNullAndEmptyArrays(t *testing.T) {
	for _, input := range []string{"*0\r\n", "*-1\r\n"} {
		p := NewParser(strings.NewReader(input))
		parts, err := p.Parse()
		require.NoError(t, err)
		assert.Empty(t, parts)
	}
}
