package network

// ParameterReader is the read half of the parameter accessor surface. A codec
// encoding a network only needs this capability; it never sees the network's
// internal storage.
type ParameterReader interface {
	// Topology returns the layer sizes of the network.
	Topology() Topology

	// Weight returns the weight between neuron from of the source layer and
	// neuron to of the destination layer at the given boundary.
	Weight(boundary, from, to int) float64

	// Bias returns the bias of neuron n of the destination layer at the
	// given boundary.
	Bias(boundary, n int) float64
}

// ParameterWriter is the write half of the parameter accessor surface, used
// by codecs filling a network during decode.
type ParameterWriter interface {
	Topology() Topology
	SetWeight(boundary, from, to int, v float64)
	SetBias(boundary, n int, v float64)
}

// ParameterAccessor combines read and write access to a network's weights
// and biases.
type ParameterAccessor interface {
	ParameterReader
	ParameterWriter
}
