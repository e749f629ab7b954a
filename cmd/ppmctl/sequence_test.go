package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequenceArgs(t *testing.T) {
	cfg, value, err := parseSequenceArgs([]string{"10", "30", "21", "42"})
	require.NoError(t, err)
	assert.Equal(t, "set:10:30:21", cfg.Key)
	assert.Equal(t, int64(42), value)

	for _, args := range [][]string{
		{"1", "30", "21", "1"},
		{"10", "30", "21", "x"},
		{"10", "30", "21", "-1"},
		{"10", "30", "21", "10000"},
	} {
		_, _, err := parseSequenceArgs(args)
		assert.Error(t, err, args)
	}
}
