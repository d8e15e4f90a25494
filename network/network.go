// Package network provides the public API for feed-forward network
// topologies and parameter storage.
//
// This package wraps the internal implementation and exports a clean public
// API. A Network holds one weight matrix and one bias vector per layer
// boundary; it does not compute activations or train.
//
// Example usage:
//
//	t := network.Topology{Inputs: 2, Hidden: []int{3}, Outputs: 1}
//	net, err := network.New(t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	net.SetWeight(0, 0, 0, 0.5)
package network

import (
	"github.com/ffnet-ml/ffnet/internal/network"
)

// Topology describes the layer sizes of a feed-forward network.
type Topology = network.Topology

// Boundary identifies one weight matrix and bias vector between two adjacent
// layers.
type Boundary = network.Boundary

// Network is the concrete parameter store for a feed-forward network.
type Network = network.Network

// ParameterReader is read access to a network's weights and biases.
type ParameterReader = network.ParameterReader

// ParameterWriter is write access to a network's weights and biases.
type ParameterWriter = network.ParameterWriter

// ParameterAccessor combines read and write access.
type ParameterAccessor = network.ParameterAccessor

// Topology validation errors.
var (
	ErrNoHiddenLayers = network.ErrNoHiddenLayers
	ErrZeroLayerSize  = network.ErrZeroLayerSize
)

// New creates a zero-initialized network sized from the given topology.
func New(t Topology) (*Network, error) {
	return network.New(t)
}

// CopyParameters copies every weight and bias from src into dst. The two
// networks must have equal topologies.
func CopyParameters(dst ParameterWriter, src ParameterReader) error {
	return network.CopyParameters(dst, src)
}
