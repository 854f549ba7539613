package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleLayout = `
rows: 3
cols: 4
blocked:
  - {x: 1, y: 1}
orbs:
  - {x: 0, y: 0, owner: 1, count: 1}
  - {x: 3, y: 2, owner: 0, count: 2}
`

func TestReadLayout(t *testing.T) {
	t.Run("builds the described board", func(t *testing.T) {
		b, err := ReadLayout(strings.NewReader(sampleLayout), 2)
		require.NoError(t, err)

		require.Equal(t, 3, b.Rows)
		require.Equal(t, 4, b.Cols)
		require.True(t, b.At(1, 1).Blocked)
		require.Equal(t, Cell{Owner: 1, Count: 1}, *b.At(0, 0))
		require.Equal(t, Cell{Owner: 0, Count: 2}, *b.At(3, 2))
	})

	t.Run("rejects owners beyond the player count", func(t *testing.T) {
		_, err := ReadLayout(strings.NewReader(sampleLayout), 1)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects cells outside the board", func(t *testing.T) {
		_, err := ReadLayout(strings.NewReader("rows: 2\ncols: 2\nblocked:\n  - {x: 5, y: 0}\n"), 2)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := ReadLayout(strings.NewReader("rows: [\n"), 2)
		require.Error(t, err)
	})
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o644))

	b, err := LoadLayout(path, 2)
	require.NoError(t, err)
	require.Equal(t, 12, len(b.Cells))

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"), 2)
	require.Error(t, err)
}
