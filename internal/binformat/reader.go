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

// ReadFile reads the .ffn document at path and returns the decoded network
// and its name ("" if none). The file is closed on every return path.
func ReadFile(path string) (*network.Network, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadFrom(bufio.NewReader(f))
}

// ReadFrom reads a .ffn document from an io.Reader. The network is built and
// filled internally, so a failed read never exposes partially written
// parameters.
func ReadFrom(in io.Reader) (*network.Network, string, error) {
	// Fixed header
	magic := make([]byte, 4)
	if _, err := io.ReadFull(in, magic); err != nil {
		return nil, "", fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, "", ErrInvalidMagic
	}

	var version uint32
	if err := binary.Read(in, binary.LittleEndian, &version); err != nil {
		return nil, "", fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, "", fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	var flags uint32
	if err := binary.Read(in, binary.LittleEndian, &flags); err != nil {
		return nil, "", fmt.Errorf("failed to read flags: %w", err)
	}

	var dtypeByte uint8
	if err := binary.Read(in, binary.LittleEndian, &dtypeByte); err != nil {
		return nil, "", fmt.Errorf("failed to read dtype: %w", err)
	}
	dtype := DType(dtypeByte)
	if dtype.Size() == 0 {
		return nil, "", fmt.Errorf("%w: %d", ErrUnknownDType, dtypeByte)
	}

	// Name
	var name string
	if flags&FlagHasName != 0 {
		var nameLen uint16
		if err := binary.Read(in, binary.LittleEndian, &nameLen); err != nil {
			return nil, "", fmt.Errorf("failed to read name length: %w", err)
		}
		if int(nameLen) > MaxNameLen {
			return nil, "", fmt.Errorf("%w: name length %d, max %d", ErrHeaderTooLarge, nameLen, MaxNameLen)
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(in, nameBytes); err != nil {
			return nil, "", fmt.Errorf("failed to read name: %w", err)
		}
		name = string(nameBytes)
	}

	// Layer sizes
	var sizeCount uint32
	if err := binary.Read(in, binary.LittleEndian, &sizeCount); err != nil {
		return nil, "", fmt.Errorf("failed to read layer count: %w", err)
	}
	if sizeCount < 3 {
		return nil, "", fmt.Errorf("invalid layer count %d: %w", sizeCount, network.ErrNoHiddenLayers)
	}
	if sizeCount > MaxLayerSizes {
		return nil, "", fmt.Errorf("%w: %d layer sizes, max %d", ErrHeaderTooLarge, sizeCount, MaxLayerSizes)
	}
	sizes := make([]uint32, sizeCount)
	if err := binary.Read(in, binary.LittleEndian, sizes); err != nil {
		return nil, "", fmt.Errorf("failed to read layer sizes: %w", err)
	}
	for _, s := range sizes {
		if s > MaxLayerWidth {
			return nil, "", fmt.Errorf("%w: layer size %d, max %d", ErrHeaderTooLarge, s, MaxLayerWidth)
		}
	}

	// Bound the summed parameter count before anything is allocated from it.
	// Each term is below 2^49, so checking after every addition keeps the
	// uint64 sum from wrapping.
	total := uint64(0)
	prev := uint64(sizes[0])
	for _, s := range sizes[1:] {
		total += (prev + 1) * uint64(s)
		if total > MaxParameters {
			return nil, "", fmt.Errorf("%w: %d parameters declared, max %d", ErrHeaderTooLarge, total, MaxParameters)
		}
		prev = uint64(s)
	}

	hidden := make([]int, sizeCount-2)
	for i := range hidden {
		hidden[i] = int(sizes[i+1])
	}
	t := network.Topology{
		Inputs:  int(sizes[0]),
		Hidden:  hidden,
		Outputs: int(sizes[sizeCount-1]),
	}
	net, err := network.New(t)
	if err != nil {
		return nil, "", fmt.Errorf("invalid layer sizes: %w", err)
	}
	net.SetName(name)

	// Parameter data
	width := dtype.Size()
	data := make([]byte, int(total)*width)
	if _, err := io.ReadFull(in, data); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrShortData, err)
	}

	if flags&FlagChecksum != 0 {
		stored := make([]byte, checksumSize)
		if _, err := io.ReadFull(in, stored); err != nil {
			return nil, "", fmt.Errorf("failed to read checksum: %w", err)
		}
		computed := sha256.Sum256(data)
		if string(stored) != string(computed[:]) {
			return nil, "", ErrChecksumMismatch
		}
	}

	pos := 0
	take := func() float64 {
		var bits uint64
		for i := 0; i < width; i++ {
			bits |= uint64(data[pos+i]) << (8 * i)
		}
		pos += width
		return dtype.decodeValue(bits)
	}
	for _, b := range t.Boundaries() {
		for from := 0; from < b.In; from++ {
			for to := 0; to < b.Out; to++ {
				net.SetWeight(b.Index, from, to, take())
			}
		}
		for neuron := 0; neuron < b.Out; neuron++ {
			net.SetBias(b.Index, neuron, take())
		}
	}

	return net, name, nil
}

// Sniff reports whether the first bytes of a file look like a .ffn document.
func Sniff(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return string(magic) == MagicBytes
}
