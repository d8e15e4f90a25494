// Package binformat implements the .ffn binary format for feed-forward
// network parameters.
//
// The format is an explicit, versioned layout mirroring the text grammar, so
// independent implementations can read it without sharing any object model:
//
//	Format Structure:
//	  [4 bytes: Magic "FFNB"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [1 byte:  DType (0=float64, 1=float32, 2=float16)]
//	  [Name: uint16 LE length + UTF-8 bytes, only if FlagHasName]
//	  [4 bytes: layer size count (uint32 LE), >= 3]
//	  [Layer sizes: uint32 LE each — inputs, hidden..., outputs]
//	  [Parameter data: per boundary in order, weights row-major then biases,
//	   fixed-width little-endian values in the declared dtype]
//	  [32 bytes: SHA-256 of the parameter data, only if FlagChecksum]
//
// float64 is the exact dtype; float32 and float16 narrow each value on write
// and widen on read, trading precision for size. Writers produced by this
// package always append the checksum.
package binformat
