package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/polycut/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		n, cuts, err := readInput(strings.NewReader("8\n2\n5 1\n\n1 6\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, []advanced.Cut{{I: 5, J: 1}, {I: 1, J: 6}}, cuts)
	})

	t.Run("no cuts", func(t *testing.T) {
		n, cuts, err := readInput(strings.NewReader("5\n0\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Empty(t, cuts)
	})

	errorCases := []struct {
		name, input, message string
	}{
		{"empty", "", "missing vertex count"},
		{"missing cut count", "8\n", "missing cut count"},
		{"bad number", "8\nx\n", "line 2"},
		{"too few cuts", "8\n2\n5 1\n", "expected 2 cuts, got 1"},
		{"too many fields", "8\n1\n5 1 2\n", "line 3"},
		{"trailing input", "8\n1\n5 1\n1 6\n", "unexpected input"},
		{"negative count", "8\n-1\n", "negative cut count"},
	}
	for _, c := range errorCases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := readInput(strings.NewReader(c.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("octagon", func(t *testing.T) {
		var out bytes.Buffer
		err := run(strings.NewReader("8\n2\n5 1\n1 6\n"), &out, options{check: true}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "3\n1 3\n1 4\n6 0\n", out.String())
	})

	t.Run("triangle", func(t *testing.T) {
		var out bytes.Buffer
		err := run(strings.NewReader("3\n0\n"), &out, options{}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "0\n", out.String())
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		var out bytes.Buffer
		err := run(strings.NewReader("6\n1\n0 3\n"), &out, options{png: path, size: 100}, zap.NewNop())
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("invalid cut", func(t *testing.T) {
		var out bytes.Buffer
		err := run(strings.NewReader("6\n1\n0 1\n"), &out, options{}, zap.NewNop())
		assert.ErrorIs(t, err, advanced.ErrEdgeExists)
		assert.Contains(t, err.Error(), "cut 1")
		assert.Empty(t, out.String())
	})

	t.Run("crossing cuts", func(t *testing.T) {
		var out bytes.Buffer
		err := run(strings.NewReader("4\n2\n0 2\n1 3\n"), &out, options{}, zap.NewNop())
		var invariantError *advanced.InvariantError
		assert.ErrorAs(t, err, &invariantError)
	})
}
