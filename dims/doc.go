// Copyright 2026 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dims provides the layout descriptor for dense N-dimensional arrays.
//
// # Overview
//
// Every array operation in Loom computes memory offsets from a pair of
// fixed-capacity axis vectors: a shape (per-axis element extents) and
// strides (per-axis byte offsets). Both roles share one value type, Dims,
// which is:
//   - Bounded: rank never exceeds MaxNdim; over-long sources are rejected
//     at construction, never truncated.
//   - Immutable: no mutating method exists, so instances are safe to share
//     across goroutines without synchronization.
//   - Inline: storage is a fixed array inside the struct, so no heap
//     allocation occurs for any valid rank.
//
// # Basic Usage
//
//	shape := dims.MustNew(2, 3, 4)
//	strides, err := dims.ContiguousStridesOf(shape, dims.Float32)
//	if err != nil {
//	    // rank bound or stride overflow
//	}
//	fmt.Println(strides) // (48, 16, 4)
//
// # Errors
//
// The package raises a single error kind, *DimensionError, for every
// rank- or index-related contract breach: constructing from a source longer
// than MaxNdim, indexing outside [0, Ndim()), a failed CheckEqual, or
// 64-bit overflow during stride derivation.
package dims
