package samples

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a samples repository from the CSV file at path. The file is
// closed on every return path.
func LoadCSV(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	repo, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("error while reading %s: %w", path, err)
	}
	return repo, nil
}

// ReadCSV reads CSV sample data from r.
//
// If the first record does not parse as numbers it is taken as the column
// header; otherwise it is the first sample. Records that fail to parse or
// whose width differs from the first record are skipped, not reported.
func ReadCSV(r io.Reader) (*Repository, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // width is enforced below, by skipping
	cr.TrimLeadingSpace = true

	repo := NewRepository()

	first, err := cr.Read()
	if err == io.EOF {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	sampleSize := len(first)
	if sample, ok := parseRecord(first); ok {
		repo.Add(sample)
	} else {
		header := make([]string, len(first))
		for i, field := range first {
			header[i] = strings.TrimSpace(field)
		}
		repo.SetHeader(header)
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return repo, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if len(record) != sampleSize {
			continue
		}
		if sample, ok := parseRecord(record); ok {
			repo.Add(sample)
		}
	}
}

// parseRecord parses every field of a record as float64. It reports false if
// any field is not numeric.
func parseRecord(record []string) ([]float64, bool) {
	sample := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, false
		}
		sample[i] = v
	}
	return sample, true
}
