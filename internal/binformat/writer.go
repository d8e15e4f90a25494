package binformat

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/ffnet-ml/ffnet/internal/network"
)

// Writer writes networks in .ffn format to a file.
type Writer struct {
	file   *os.File
	dtype  DType
	closed bool
}

// NewWriter creates a .ffn file writer storing values as float64.
func NewWriter(path string) (*Writer, error) {
	return NewWriterDType(path, Float64)
}

// NewWriterDType creates a .ffn file writer storing values in the given dtype.
func NewWriterDType(path string, dtype DType) (*Writer, error) {
	if dtype.Size() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDType, dtype)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &Writer{file: file, dtype: dtype}, nil
}

// Write writes the network parameters with the given name ("" for none).
func (w *Writer) Write(src network.ParameterReader, name string) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	bw := bufio.NewWriter(w.file)
	if err := WriteTo(bw, src, name, w.dtype); err != nil {
		return err
	}
	return bw.Flush()
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteFile writes the network parameters to the file at path in one call.
// The file is closed on every return path.
func WriteFile(path string, src network.ParameterReader, name string, dtype DType) error {
	w, err := NewWriterDType(path, dtype)
	if err != nil {
		return err
	}
	if err := w.Write(src, name); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// WriteTo writes the .ffn document for src to an io.Writer. This is useful
// for writing to buffers or network connections.
func WriteTo(out io.Writer, src network.ParameterReader, name string, dtype DType) error {
	t := src.Topology()
	if err := t.Validate(); err != nil {
		return fmt.Errorf("cannot encode network: %w", err)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name is %d bytes, max %d", ErrHeaderTooLarge, len(name), MaxNameLen)
	}

	// Fixed header
	if _, err := io.WriteString(out, MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	flags := FlagChecksum
	if name != "" {
		flags |= FlagHasName
	}
	if err := binary.Write(out, binary.LittleEndian, flags); err != nil {
		return fmt.Errorf("failed to write flags: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, uint8(dtype)); err != nil {
		return fmt.Errorf("failed to write dtype: %w", err)
	}

	// Name
	if name != "" {
		if err := binary.Write(out, binary.LittleEndian, uint16(len(name))); err != nil {
			return fmt.Errorf("failed to write name length: %w", err)
		}
		if _, err := io.WriteString(out, name); err != nil {
			return fmt.Errorf("failed to write name: %w", err)
		}
	}

	// Layer sizes
	sizes := make([]uint32, 0, len(t.Hidden)+2)
	sizes = append(sizes, uint32(t.Inputs))
	for _, h := range t.Hidden {
		sizes = append(sizes, uint32(h))
	}
	sizes = append(sizes, uint32(t.Outputs))
	if err := binary.Write(out, binary.LittleEndian, uint32(len(sizes))); err != nil {
		return fmt.Errorf("failed to write layer count: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, sizes); err != nil {
		return fmt.Errorf("failed to write layer sizes: %w", err)
	}

	// Parameter data: weights row-major then biases, per boundary in order.
	data := encodeParams(src, dtype)
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write parameter data: %w", err)
	}

	checksum := sha256.Sum256(data)
	if _, err := out.Write(checksum[:]); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}
	return nil
}

// encodeParams serializes every weight and bias in boundary order into a
// little-endian byte slice in the given dtype.
func encodeParams(src network.ParameterReader, dtype DType) []byte {
	t := src.Topology()
	width := dtype.Size()

	total := 0
	for _, b := range t.Boundaries() {
		total += (b.In + 1) * b.Out
	}

	data := make([]byte, 0, total*width)
	put := func(v float64) {
		bits := dtype.encodeValue(v)
		for i := 0; i < width; i++ {
			data = append(data, byte(bits>>(8*i)))
		}
	}

	for _, b := range t.Boundaries() {
		for from := 0; from < b.In; from++ {
			for to := 0; to < b.Out; to++ {
				put(src.Weight(b.Index, from, to))
			}
		}
		for neuron := 0; neuron < b.Out; neuron++ {
			put(src.Bias(b.Index, neuron))
		}
	}
	return data
}
