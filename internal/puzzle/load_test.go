package puzzle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lowpoint/internal/heightmap"
	"lowpoint/internal/puzzle"
)

const example = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "puzzle.input")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestInputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("input", "puzzle.input"), puzzle.InputPath("input", "puzzle"))
	require.Equal(t, "-", puzzle.InputPath("input", puzzle.Stdin))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	g, err := puzzle.Load(context.Background(), writeInput(t, example), 1024)
	require.NoError(t, err)
	require.Equal(t, 10, g.Width())
	require.Equal(t, 5, g.Height())
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := puzzle.Load(context.Background(), filepath.Join(t.TempDir(), "nope.input"), 1024)
	require.Error(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	t.Parallel()

	_, err := puzzle.Load(context.Background(), writeInput(t, example), 16)
	require.ErrorIs(t, err, puzzle.ErrInputTooLarge)
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	_, err := puzzle.Load(context.Background(), writeInput(t, "123\n1x3\n"), 1024)
	require.ErrorIs(t, err, heightmap.ErrMalformedInput)

	var pe *heightmap.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)
	require.Equal(t, 2, pe.Column)
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := puzzle.Load(ctx, writeInput(t, example), 1024)
	require.ErrorIs(t, err, context.Canceled)
}
