package textcodec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ffnet-ml/ffnet/internal/network"
)

// formatValue renders a float64 in its shortest round-trip-exact form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeBlock writes the block for one boundary: b.In weight rows followed by
// one bias row, each of b.Out space-separated values, each line
// newline-terminated.
func writeBlock(w io.Writer, b network.Boundary, src network.ParameterReader) error {
	var sb strings.Builder
	for from := 0; from < b.In; from++ {
		for to := 0; to < b.Out; to++ {
			if to > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatValue(src.Weight(b.Index, from, to)))
		}
		sb.WriteByte('\n')
	}
	for neuron := 0; neuron < b.Out; neuron++ {
		if neuron > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatValue(src.Bias(b.Index, neuron)))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write layer %d: %w", b.Index, err)
	}
	return nil
}

// parseRow splits a line into exactly want space-separated float64 values.
func parseRow(line string, want int) ([]float64, error) {
	parts := strings.Split(line, " ")
	if len(parts) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrWrongValueCount, len(parts), want)
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, p)
		}
		values[i] = v
	}
	return values, nil
}

// readBlock consumes the b.In+1 lines of one boundary block from lines and
// writes the parsed weights and biases into dst.
func readBlock(lines *lineReader, b network.Boundary, dst network.ParameterWriter) error {
	for from := 0; from < b.In; from++ {
		line, err := lines.next()
		if err != nil {
			return layerErr("weight row", b.Index, from, err)
		}
		row, err := parseRow(line, b.Out)
		if err != nil {
			return layerErr("weight row", b.Index, from, err)
		}
		for to, v := range row {
			dst.SetWeight(b.Index, from, to, v)
		}
	}

	line, err := lines.next()
	if err != nil {
		return layerErr("bias row", b.Index, -1, err)
	}
	row, err := parseRow(line, b.Out)
	if err != nil {
		return layerErr("bias row", b.Index, -1, err)
	}
	for neuron, v := range row {
		dst.SetBias(b.Index, neuron, v)
	}
	return nil
}
