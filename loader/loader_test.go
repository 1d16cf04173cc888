package loader_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/loader"
	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/stretchr/testify/require"
)

func TestParse_Separators(t *testing.T) {
	in := "[0, 10, 15]\n\n10 0 35\n  15,35,0  \n"
	rows, err := loader.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 10, 15}, {10, 0, 35}, {15, 35, 0}}, rows)
}

func TestParse_SkipsLinesWithoutNumbers(t *testing.T) {
	rows, err := loader.Parse(strings.NewReader("# cities\n0 1\n1 0\n"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, rows)
}

func TestParse_Errors(t *testing.T) {
	_, err := loader.Parse(strings.NewReader("\n  \n"))
	require.ErrorIs(t, err, loader.ErrNoRows)

	_, err = loader.Parse(strings.NewReader("0 99999999999999999999999\n"))
	require.ErrorIs(t, err, loader.ErrMalformedRow)
}

func TestLoad_Validates(t *testing.T) {
	_, err := loader.Load(strings.NewReader("0 1 2\n1 0\n"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = loader.Load(strings.NewReader("0 -4\n4 0\n"))
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	_, err = loader.Load(strings.NewReader("3 4\n4 0\n"))
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	g, err := loader.Load(strings.NewReader("0 5\n5 0\n"))
	require.NoError(t, err)
	require.Equal(t, 5, g.Weight(1, 0))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 7\n7 0\n"), 0o600))

	g, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())

	_, err = loader.LoadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, loader.ErrOpen)
	require.ErrorIs(t, err, fs.ErrNotExist)

	// A directory opens but cannot be read.
	_, err = loader.LoadFile(dir)
	require.ErrorIs(t, err, loader.ErrOpen)
	require.NotErrorIs(t, err, loader.ErrMalformedRow)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParse_ReadErrors(t *testing.T) {
	_, err := loader.Parse(failingReader{})
	require.ErrorIs(t, err, loader.ErrOpen)

	long := strings.Repeat("1 ", 1<<20)
	_, err = loader.Parse(strings.NewReader(long))
	require.ErrorIs(t, err, loader.ErrMalformedRow)
	require.NotErrorIs(t, err, loader.ErrOpen)
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.RandomMetric(6, builder.WithSeed(5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))
	require.Equal(t, 6, strings.Count(buf.String(), "\n"))

	back, err := loader.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Rows(), back.Rows())

	require.ErrorIs(t, loader.Write(&buf, nil), matrix.ErrNilMatrix)
}
