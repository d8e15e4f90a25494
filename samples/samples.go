// Package samples provides the public API for sample storage and CSV
// loading.
package samples

import (
	"io"

	"github.com/ffnet-ml/ffnet/internal/samples"
)

// Repository stores equal-width float64 sample rows with an optional header.
type Repository = samples.Repository

// NewRepository creates an empty samples repository.
func NewRepository() *Repository {
	return samples.NewRepository()
}

// LoadCSV reads a samples repository from the CSV file at path.
func LoadCSV(path string) (*Repository, error) {
	return samples.LoadCSV(path)
}

// ReadCSV reads CSV sample data from r.
func ReadCSV(r io.Reader) (*Repository, error) {
	return samples.ReadCSV(r)
}
