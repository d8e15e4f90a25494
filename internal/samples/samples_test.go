package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryAddAndAccess(t *testing.T) {
	repo := NewRepository()
	assert.True(t, repo.Empty())
	assert.Equal(t, 0, repo.SampleSize())

	repo.Add([]float64{1, 2, 3})
	repo.Add([]float64{4, 5, 6})

	assert.False(t, repo.Empty())
	assert.Equal(t, 2, repo.Size())
	assert.Equal(t, 3, repo.SampleSize())
	assert.Equal(t, []float64{4, 5, 6}, repo.Sample(1))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, repo.All())
}

func TestRepositoryRemove(t *testing.T) {
	repo := NewRepository()
	repo.Add([]float64{1})
	repo.Add([]float64{2})
	repo.Add([]float64{3})

	repo.Remove(1)
	assert.Equal(t, [][]float64{{1}, {3}}, repo.All())
}

func TestHeaderExplicit(t *testing.T) {
	repo := NewRepository()
	repo.SetHeader([]string{"x", "y"})
	repo.Add([]float64{1, 2})

	assert.Equal(t, []string{"x", "y"}, repo.Header())
}

func TestHeaderDefault(t *testing.T) {
	repo := NewRepository()
	repo.Add([]float64{1, 2, 3})

	assert.Equal(t, []string{"Var 1", "Var 2", "Var 3"}, repo.Header())
}

func TestHeaderEmptyRepository(t *testing.T) {
	repo := NewRepository()
	require.Empty(t, repo.Header())
}
