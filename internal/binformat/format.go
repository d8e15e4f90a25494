package binformat

import (
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Format constants.
const (
	MagicBytes    = "FFNB"
	FormatVersion = 1

	// MaxLayerSizes bounds the declared layer count so a corrupt header
	// cannot drive a huge allocation.
	MaxLayerSizes = 1 << 16
	// MaxLayerWidth bounds each declared layer size.
	MaxLayerWidth = 1 << 24
	// MaxParameters bounds the total declared parameter count across all
	// boundaries, so the per-field caps cannot be combined into a header
	// whose product forces a huge allocation.
	MaxParameters = 1 << 26
	// MaxNameLen bounds the declared name length.
	MaxNameLen = 1 << 12

	checksumSize = 32
)

// Flags for the .ffn format.
const (
	FlagHasName  uint32 = 1 << 0 // bit 0: name present
	FlagChecksum uint32 = 1 << 1 // bit 1: SHA-256 checksum trailer present
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("not a network parameter file")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrUnknownDType       = errors.New("unknown data type")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge     = errors.New("header field exceeds maximum size")
	ErrShortData          = errors.New("file ends before all parameters are read")
)

// DType selects the on-disk width of each parameter value.
type DType uint8

const (
	Float64 DType = iota // 8 bytes, exact
	Float32              // 4 bytes, lossy
	Float16              // 2 bytes, lossy
)

// Size returns the width of one value in bytes.
func (d DType) Size() int {
	switch d {
	case Float64:
		return 8
	case Float32:
		return 4
	case Float16:
		return 2
	default:
		return 0
	}
}

// String returns the dtype name.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	default:
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
}

// ParseDType maps a dtype name to its DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float64":
		return Float64, nil
	case "float32":
		return Float32, nil
	case "float16":
		return Float16, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, s)
	}
}

// encodeValue narrows v to the dtype's width and returns its little-endian
// bit pattern as a uint64 holding Size() meaningful bytes.
func (d DType) encodeValue(v float64) uint64 {
	switch d {
	case Float64:
		return math.Float64bits(v)
	case Float32:
		return uint64(math.Float32bits(float32(v)))
	case Float16:
		return uint64(float16.Fromfloat32(float32(v)).Bits())
	default:
		return 0
	}
}

// decodeValue widens a little-endian bit pattern back to float64.
func (d DType) decodeValue(bits uint64) float64 {
	switch d {
	case Float64:
		return math.Float64frombits(bits)
	case Float32:
		return float64(math.Float32frombits(uint32(bits)))
	case Float16:
		return float64(float16.Frombits(uint16(bits)).Float32())
	default:
		return 0
	}
}
