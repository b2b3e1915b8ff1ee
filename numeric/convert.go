package numeric

// FromUint64 converts v into p's encoding bit by bit. It reports false when v
// is outside the encoding's range.
func FromUint64[T comparable](p Provider[T], v uint64) (T, bool) {
	k := p.Kind()
	width := k.Bits()
	if k.Signed() {
		width--
	}
	if width < 64 && v>>uint(width) != 0 {
		return p.Zero(), false
	}
	return fromBits(p, v, k.Bits()), true
}

// FromInt64 is FromUint64 for signed input. Negative values are only accepted
// by signed encodings.
func FromInt64[T comparable](p Provider[T], v int64) (T, bool) {
	if v >= 0 {
		return FromUint64(p, uint64(v))
	}
	k := p.Kind()
	if !k.Signed() {
		return p.Zero(), false
	}
	if width := k.Bits(); width < 64 && v < -(int64(1)<<uint(width-1)) {
		return p.Zero(), false
	}
	return fromBits(p, uint64(v), k.Bits()), true
}

func fromBits[T comparable](p Provider[T], bits uint64, width int) T {
	v := p.Zero()
	bit := p.One()
	for i := 0; i < width; i++ {
		if bits&(1<<uint(i)) != 0 {
			v = p.Or(v, bit)
		}
		bit = p.ShiftLeft(bit, 1)
	}
	return v
}
