package dims

import (
	"iter"
	"strconv"
	"strings"
)

// MaxNdim is the maximum supported array rank. Every array-geometry type in
// the framework agrees on this bound; it is what allows Dims to keep its
// storage inline instead of on the heap.
const MaxNdim = 8

// Dims is an immutable, fixed-capacity vector of per-axis int64 values.
// It represents either a shape (element extents) or strides (byte offsets);
// the two roles are distinguished by the Shape and Strides aliases.
//
// The zero value is the empty (rank 0) vector and is ready to use.
type Dims struct {
	buf  [MaxNdim]int64
	ndim int
}

// Shape is a Dims whose values are per-axis element extents.
type Shape = Dims

// Strides is a Dims whose values are per-axis byte offsets between
// consecutive elements along that axis.
type Strides = Dims

// New creates a Dims from the given axis values, in order. Passing a slice
// with New(view...) covers construction from any contiguous source.
// Fails with *DimensionError if more than MaxNdim values are given.
func New(axes ...int64) (Dims, error) {
	if len(axes) > MaxNdim {
		return Dims{}, dimErrorf("too many dimensions: %d (max %d)", len(axes), MaxNdim)
	}
	var d Dims
	d.ndim = copy(d.buf[:], axes)
	return d, nil
}

// MustNew is like New but panics on the rank bound. Intended for literals
// whose length is known to the author, such as static tables and tests.
func MustNew(axes ...int64) Dims {
	d, err := New(axes...)
	if err != nil {
		panic(err)
	}
	return d
}

// FromSeq creates a Dims by draining a sequence, without requiring the
// source to be materialized. Fails with *DimensionError as soon as the
// sequence yields more than MaxNdim values.
func FromSeq(seq iter.Seq[int64]) (Dims, error) {
	var d Dims
	for v := range seq {
		if d.ndim == MaxNdim {
			return Dims{}, dimErrorf("too many dimensions: sequence exceeds max %d", MaxNdim)
		}
		d.buf[d.ndim] = v
		d.ndim++
	}
	return d, nil
}

// Ndim returns the number of axes.
func (d Dims) Ndim() int {
	return d.ndim
}

// At returns the value at axis position i. Any i outside [0, Ndim()) fails
// with *DimensionError; the bounds check runs on every call because a
// single out-of-range stride read corrupts address computation silently.
func (d Dims) At(i int) (int64, error) {
	if i < 0 || i >= d.ndim {
		return 0, dimErrorf("axis index %d out of bounds for rank %d", i, d.ndim)
	}
	return d.buf[i], nil
}

// View returns the axis values as a slice backed by the vector's inline
// storage, without copying. The returned slice must not be modified.
func (d *Dims) View() []int64 {
	return d.buf[:d.ndim:d.ndim]
}

// Values returns a restartable sequence over the axis values in stored
// order.
func (d Dims) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := 0; i < d.ndim; i++ {
			if !yield(d.buf[i]) {
				return
			}
		}
	}
}

// Backward returns a restartable sequence over the axis values in reverse
// order.
func (d Dims) Backward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := d.ndim - 1; i >= 0; i-- {
			if !yield(d.buf[i]) {
				return
			}
		}
	}
}

// Equal reports whether two vectors have the same rank and identical values
// at every axis position.
func (d Dims) Equal(other Dims) bool {
	if d.ndim != other.ndim {
		return false
	}
	for i := 0; i < d.ndim; i++ {
		if d.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// CheckEqual fails with *DimensionError if the two vectors differ. Call
// sites that must assert shape or stride compatibility use this instead of
// branching on Equal, so a mismatch surfaces at the point of use.
func CheckEqual(got, want Dims) error {
	if !got.Equal(want) {
		return dimErrorf("dimension mismatch: %s != %s", got, want)
	}
	return nil
}

// String renders the canonical text form: a parenthesized, comma-separated
// list with a trailing comma at rank 1 to disambiguate from a bare scalar.
// Rank 0 renders as "()", rank 1 as "(4,)", rank 3 as "(48, 16, 4)".
func (d Dims) String() string {
	switch d.ndim {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.FormatInt(d.buf[0], 10) + ",)"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < d.ndim; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(d.buf[i], 10))
	}
	sb.WriteByte(')')
	return sb.String()
}
