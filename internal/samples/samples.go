// Package samples holds training and evaluation samples for feed-forward
// networks: an ordered list of equal-width float64 rows with an optional
// column header, plus CSV loading.
package samples

import "fmt"

// Repository stores samples in insertion order. All rows are expected to
// have the same width; the CSV loader enforces this, direct Add does not.
//
// Repository is not safe for concurrent use.
type Repository struct {
	header []string
	rows   [][]float64
}

// NewRepository creates an empty samples repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Add appends a sample row.
func (r *Repository) Add(sample []float64) {
	r.rows = append(r.rows, sample)
}

// Remove deletes the sample at idx.
func (r *Repository) Remove(idx int) {
	r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
}

// SetHeader sets the column titles.
func (r *Repository) SetHeader(header []string) {
	r.header = append([]string(nil), header...)
}

// Header returns the column titles. If no header was set and the repository
// holds samples, a default "Var 1".."Var N" header is generated.
func (r *Repository) Header() []string {
	if len(r.header) == 0 && len(r.rows) > 0 {
		r.header = make([]string, r.SampleSize())
		for i := range r.header {
			r.header[i] = fmt.Sprintf("Var %d", i+1)
		}
	}
	return r.header
}

// Sample returns the row at idx.
func (r *Repository) Sample(idx int) []float64 {
	return r.rows[idx]
}

// All returns every row in insertion order.
func (r *Repository) All() [][]float64 {
	return r.rows
}

// Size returns the number of samples.
func (r *Repository) Size() int {
	return len(r.rows)
}

// SampleSize returns the width of the stored samples, or 0 when empty.
func (r *Repository) SampleSize() int {
	if len(r.rows) == 0 {
		return 0
	}
	return len(r.rows[0])
}

// Empty reports whether the repository holds no samples.
func (r *Repository) Empty() bool {
	return len(r.rows) == 0
}
