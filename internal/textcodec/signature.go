package textcodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ffnet-ml/ffnet/internal/network"
)

// signatureSeparator joins the layer sizes on the signature line.
const signatureSeparator = ", "

// FormatSignature renders a topology as the signature line
// "<inputs>, <h1>, ..., <hk>, <outputs>".
func FormatSignature(t network.Topology) string {
	parts := make([]string, 0, len(t.Hidden)+2)
	parts = append(parts, strconv.Itoa(t.Inputs))
	for _, h := range t.Hidden {
		parts = append(parts, strconv.Itoa(h))
	}
	parts = append(parts, strconv.Itoa(t.Outputs))
	return strings.Join(parts, signatureSeparator)
}

// ParseSignature parses a signature line into a topology. The line must hold
// at least three ", "-separated non-negative integers: the input size, one or
// more hidden sizes and the output size.
func ParseSignature(line string) (network.Topology, error) {
	parts := strings.Split(line, signatureSeparator)
	if len(parts) < 3 {
		return network.Topology{}, formatErr("signature", fmt.Errorf("%w: got %d sizes, need at least 3", ErrCannotReadSignature, len(parts)))
	}

	sizes := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return network.Topology{}, formatErr("signature", fmt.Errorf("%w: %q", ErrBadLayerSize, p))
		}
		sizes[i] = v
	}

	return network.Topology{
		Inputs:  sizes[0],
		Hidden:  sizes[1 : len(sizes)-1],
		Outputs: sizes[len(sizes)-1],
	}, nil
}
