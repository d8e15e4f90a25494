// Package textcodec implements the line-oriented text format for feed-forward
// network parameters.
//
//	Format Structure:
//	  [optional name line]
//	  [signature: "<inputs>, <h1>, ..., <hk>, <outputs>"]   k >= 1
//	  [block for boundary 0: inputs -> h1]
//	  [block for boundary 1: h1 -> h2]
//	  ...
//	  [block for boundary k: hk -> outputs]
//
// Each block for a boundary with sizes (src, dst) is exactly src+1 lines:
// src weight rows of dst space-separated values (row = source neuron,
// column = destination neuron), then one line of dst bias values.
//
// Whether the first line is a name is decided by probing: if the second line
// parses as a signature the first line is the name, otherwise the first line
// must itself be the signature and the document is nameless. A name that
// itself parses as a valid signature is therefore indistinguishable from an
// absent name; new formats should use an explicit marker instead (the binary
// format in package binformat does).
//
// Values are rendered with strconv.FormatFloat(v, 'g', -1, 64), the shortest
// form that parses back to the identical float64, so text round-trips are
// exact for finite values.
package textcodec
