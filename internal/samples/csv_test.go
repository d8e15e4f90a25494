package samples

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVWithHeader(t *testing.T) {
	repo, err := ReadCSV(strings.NewReader("x, y, label\n1, 2, 0\n3, 4, 1\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "label"}, repo.Header())
	assert.Equal(t, 2, repo.Size())
	assert.Equal(t, []float64{1, 2, 0}, repo.Sample(0))
	assert.Equal(t, []float64{3, 4, 1}, repo.Sample(1))
}

func TestReadCSVWithoutHeader(t *testing.T) {
	repo, err := ReadCSV(strings.NewReader("1.5,2.5\n3.5,4.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Size())
	assert.Equal(t, []float64{1.5, 2.5}, repo.Sample(0))
	assert.Equal(t, []string{"Var 1", "Var 2"}, repo.Header(), "first numeric row means default header")
}

func TestReadCSVSkipsBadRows(t *testing.T) {
	in := "x, y\n1, 2\n1, oops\n3, 4, 5\n5, 6\n"
	repo, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Size(), "non-numeric and wrong-width rows are skipped")
	assert.Equal(t, []float64{1, 2}, repo.Sample(0))
	assert.Equal(t, []float64{5, 6}, repo.Sample(1))
}

func TestReadCSVEmpty(t *testing.T) {
	repo, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, repo.Empty())
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte("a, b\n0.5, 0.25\n"), 0o644))

	repo, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, repo.Header())
	assert.Equal(t, []float64{0.5, 0.25}, repo.Sample(0))
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
