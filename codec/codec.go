// Package codec provides the public API for persisting feed-forward network
// parameters, in two formats:
//
//   - a line-oriented text format (optional name line, a signature line of
//     layer sizes, then per-boundary weight and bias rows), kept compatible
//     with existing files;
//   - a versioned binary format with an explicit layout (magic, flags,
//     dtype, layer sizes, fixed-width little-endian values, checksum).
//
// Example usage:
//
//	net, _ := network.New(network.Topology{Inputs: 2, Hidden: []int{2}, Outputs: 1})
//	if err := codec.SaveText("net.txt", net, "MyNet"); err != nil {
//	    log.Fatal(err)
//	}
//	loaded, name, err := codec.LoadText("net.txt")
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ffnet-ml/ffnet/internal/binformat"
	"github.com/ffnet-ml/ffnet/internal/network"
	"github.com/ffnet-ml/ffnet/internal/textcodec"
)

// ErrInvalidArgument is returned when a required argument is missing or nil.
var ErrInvalidArgument = errors.New("invalid argument")

// FormatError reports a structural or lexical violation of the text grammar.
type FormatError = textcodec.FormatError

// Text format errors.
var (
	ErrCannotReadSignature = textcodec.ErrCannotReadSignature
	ErrBadLayerSize        = textcodec.ErrBadLayerSize
	ErrWrongValueCount     = textcodec.ErrWrongValueCount
	ErrNotANumber          = textcodec.ErrNotANumber
	ErrTruncated           = textcodec.ErrTruncated
)

// Binary format errors.
var (
	// ErrUnsupportedPayload is returned when a binary payload is not a
	// recognized network parameter document.
	ErrUnsupportedPayload = binformat.ErrInvalidMagic
	ErrUnsupportedVersion = binformat.ErrUnsupportedVersion
	ErrChecksumMismatch   = binformat.ErrChecksumMismatch
)

// DType selects the on-disk width of binary parameter values.
type DType = binformat.DType

// Binary value widths.
const (
	Float64 DType = binformat.Float64
	Float32 DType = binformat.Float32
	Float16 DType = binformat.Float16
)

// ParseDType maps a dtype name ("float64", "float32", "float16") to its DType.
func ParseDType(s string) (DType, error) {
	return binformat.ParseDType(s)
}

// EncodeText renders the network as a text document. An empty name omits the
// name line.
func EncodeText(net network.ParameterReader, name string) (string, error) {
	if net == nil {
		return "", fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}
	return textcodec.EncodeString(net, name)
}

// DecodeText parses a text document and returns the decoded network and its
// name ("" if the document has none).
func DecodeText(text string) (*network.Network, string, error) {
	if text == "" {
		return nil, "", fmt.Errorf("%w: text cannot be empty", ErrInvalidArgument)
	}
	return textcodec.DecodeString(text)
}

// EncodeBinary renders the network as a binary document in the given dtype.
func EncodeBinary(net network.ParameterReader, name string, dtype DType) ([]byte, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}
	var buf bytes.Buffer
	if err := binformat.WriteTo(&buf, net, name, dtype); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBinary parses a binary document and returns the decoded network and
// its name.
func DecodeBinary(data []byte) (*network.Network, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: data cannot be empty", ErrInvalidArgument)
	}
	return binformat.ReadFrom(bytes.NewReader(data))
}

// SaveText writes the network as a text document to the file at path.
func SaveText(path string, net network.ParameterReader, name string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	if net == nil {
		return fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}
	return textcodec.EncodeFile(path, net, name)
}

// LoadText reads a text document from the file at path.
func LoadText(path string) (*network.Network, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	return textcodec.DecodeFile(path)
}

// Save writes the network as a binary document to the file at path, storing
// values as float64.
func Save(path string, net network.ParameterReader, name string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	if net == nil {
		return fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}
	return binformat.WriteFile(path, net, name, binformat.Float64)
}

// SaveDType writes the network as a binary document with the given value
// width.
func SaveDType(path string, net network.ParameterReader, name string, dtype DType) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	if net == nil {
		return fmt.Errorf("%w: network cannot be nil", ErrInvalidArgument)
	}
	return binformat.WriteFile(path, net, name, dtype)
}

// Load reads a binary document from the file at path.
func Load(path string) (*network.Network, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: path cannot be empty", ErrInvalidArgument)
	}
	return binformat.ReadFile(path)
}

// IsBinary reports whether the file at path starts with the binary format's
// magic bytes.
func IsBinary(path string) bool {
	return binformat.Sniff(path)
}

// FormatSignature renders a topology as its signature line.
func FormatSignature(t network.Topology) string {
	return textcodec.FormatSignature(t)
}

// ParseSignature parses a signature line ("inputs, h1, ..., outputs") into a
// topology.
func ParseSignature(line string) (network.Topology, error) {
	return textcodec.ParseSignature(line)
}
