package dims

// ContiguousStrides derives the dense row-major byte strides for a shape
// and an element byte size: the last axis steps by itemSize and each axis
// before it steps by the full extent of everything after it. The result has
// the same rank as the shape.
//
// Each multiplication in the chain is overflow-checked; a product that does
// not fit in int64 fails with *DimensionError rather than wrapping, since a
// wrapped stride silently corrupts every downstream offset computation.
func ContiguousStrides(shape Shape, itemSize int64) (Strides, error) {
	var st Strides
	st.ndim = shape.ndim
	if shape.ndim == 0 {
		return st, nil
	}
	st.buf[shape.ndim-1] = itemSize
	for i := shape.ndim - 2; i >= 0; i-- {
		prev := st.buf[i+1]
		ext := shape.buf[i+1]
		prod := prev * ext
		if prev != 0 && prod/prev != ext {
			return Strides{}, dimErrorf("stride overflow at axis %d: %d * %d exceeds int64", i, prev, ext)
		}
		st.buf[i] = prod
	}
	return st, nil
}

// ContiguousStridesOf is ContiguousStrides with the element size implied by
// a data type.
func ContiguousStridesOf(shape Shape, dtype DataType) (Strides, error) {
	return ContiguousStrides(shape, int64(dtype.Size()))
}

// TotalSize returns the product of the axis values. For a shape this is the
// total element count; rank 0 yields 1 (a scalar holds one element).
func (d Dims) TotalSize() int64 {
	n := int64(1)
	for i := 0; i < d.ndim; i++ {
		n *= d.buf[i]
	}
	return n
}
