package network

import (
	"fmt"
	"math/rand"
)

// Network is the concrete parameter store for a fully connected feed-forward
// network: one weight matrix and one bias vector per layer boundary, all
// float64. It carries an optional display name.
//
// Network implements ParameterAccessor. It holds parameters only; it does not
// compute activations or train.
type Network struct {
	topology Topology
	name     string

	// weights[b][from][to] is the weight between neuron from of the source
	// layer and neuron to of the destination layer at boundary b.
	weights [][][]float64
	// biases[b][n] is the bias of neuron n of the destination layer at
	// boundary b.
	biases [][]float64
}

// New creates a network with all weights and biases zero, sized from the
// given topology.
func New(t Topology) (*Network, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid topology: %w", err)
	}
	t = t.Clone()

	bounds := t.Boundaries()
	weights := make([][][]float64, len(bounds))
	biases := make([][]float64, len(bounds))
	for i, b := range bounds {
		weights[i] = make([][]float64, b.In)
		for from := range weights[i] {
			weights[i][from] = make([]float64, b.Out)
		}
		biases[i] = make([]float64, b.Out)
	}

	return &Network{
		topology: t,
		weights:  weights,
		biases:   biases,
	}, nil
}

// Topology returns the layer sizes of the network.
func (n *Network) Topology() Topology {
	return n.topology
}

// Name returns the network's display name, or "" if it has none.
func (n *Network) Name() string {
	return n.name
}

// SetName sets the network's display name.
func (n *Network) SetName(name string) {
	n.name = name
}

// Weight returns the weight at (boundary, from, to).
func (n *Network) Weight(boundary, from, to int) float64 {
	return n.weights[boundary][from][to]
}

// SetWeight sets the weight at (boundary, from, to).
func (n *Network) SetWeight(boundary, from, to int, v float64) {
	n.weights[boundary][from][to] = v
}

// Bias returns the bias of neuron neuron at the given boundary.
func (n *Network) Bias(boundary, neuron int) float64 {
	return n.biases[boundary][neuron]
}

// SetBias sets the bias of neuron neuron at the given boundary.
func (n *Network) SetBias(boundary, neuron int, v float64) {
	n.biases[boundary][neuron] = v
}

// Randomize fills all weights and biases with values drawn uniformly from
// [-1, 1) using the given source.
func (n *Network) Randomize(rng *rand.Rand) {
	for b := range n.weights {
		for from := range n.weights[b] {
			for to := range n.weights[b][from] {
				n.weights[b][from][to] = rng.Float64()*2 - 1
			}
		}
		for neuron := range n.biases[b] {
			n.biases[b][neuron] = rng.Float64()*2 - 1
		}
	}
}

// CopyParameters copies every weight and bias from src into dst. The two
// networks must have equal topologies.
func CopyParameters(dst ParameterWriter, src ParameterReader) error {
	if !dst.Topology().Equal(src.Topology()) {
		return fmt.Errorf("topology mismatch: %v vs %v", dst.Topology(), src.Topology())
	}
	for _, b := range src.Topology().Boundaries() {
		for from := 0; from < b.In; from++ {
			for to := 0; to < b.Out; to++ {
				dst.SetWeight(b.Index, from, to, src.Weight(b.Index, from, to))
			}
		}
		for neuron := 0; neuron < b.Out; neuron++ {
			dst.SetBias(b.Index, neuron, src.Bias(b.Index, neuron))
		}
	}
	return nil
}
