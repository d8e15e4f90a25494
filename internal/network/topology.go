package network

import (
	"errors"
	"fmt"
)

// Common topology errors.
var (
	ErrNoHiddenLayers = errors.New("there must be at least one hidden layer")
	ErrZeroLayerSize  = errors.New("layer sizes must be at least 1")
)

// Topology describes the layer sizes of a fully connected feed-forward
// network: the input width, the ordered hidden layer widths and the output
// width. A Topology is plain data and is copied freely; the Hidden slice
// should not be mutated after the Topology has been handed to a Network.
type Topology struct {
	Inputs  int   // Number of input neurons
	Hidden  []int // Hidden layer sizes, in forward order (at least one)
	Outputs int   // Number of output neurons
}

// Validate checks the structural invariants: at least one hidden layer and
// every layer size at least 1.
func (t Topology) Validate() error {
	if len(t.Hidden) == 0 {
		return ErrNoHiddenLayers
	}
	if t.Inputs < 1 || t.Outputs < 1 {
		return fmt.Errorf("%w: inputs=%d, outputs=%d", ErrZeroLayerSize, t.Inputs, t.Outputs)
	}
	for i, h := range t.Hidden {
		if h < 1 {
			return fmt.Errorf("%w: hidden layer %d has size %d", ErrZeroLayerSize, i, h)
		}
	}
	return nil
}

// NumBoundaries returns the number of layer boundaries: one per hidden layer
// plus the final boundary into the output layer.
func (t Topology) NumBoundaries() int {
	return len(t.Hidden) + 1
}

// Boundary identifies one weight matrix and bias vector between two adjacent
// layers. Index 0 is input to first hidden; index len(Hidden) is last hidden
// to output.
type Boundary struct {
	Index int // Ordinal position of this boundary
	In    int // Size of the source layer
	Out   int // Size of the destination layer
}

// Boundaries derives the ordered boundary list from the topology.
func (t Topology) Boundaries() []Boundary {
	bounds := make([]Boundary, 0, t.NumBoundaries())
	prev := t.Inputs
	for i, h := range t.Hidden {
		bounds = append(bounds, Boundary{Index: i, In: prev, Out: h})
		prev = h
	}
	bounds = append(bounds, Boundary{Index: len(t.Hidden), In: prev, Out: t.Outputs})
	return bounds
}

// Equal reports whether two topologies describe the same layer sizes.
func (t Topology) Equal(other Topology) bool {
	if t.Inputs != other.Inputs || t.Outputs != other.Outputs || len(t.Hidden) != len(other.Hidden) {
		return false
	}
	for i, h := range t.Hidden {
		if other.Hidden[i] != h {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the topology.
func (t Topology) Clone() Topology {
	hidden := make([]int, len(t.Hidden))
	copy(hidden, t.Hidden)
	return Topology{Inputs: t.Inputs, Hidden: hidden, Outputs: t.Outputs}
}
