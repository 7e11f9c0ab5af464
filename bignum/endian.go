package bignum

// CopySwapArray converts between the engine's internal little-endian limb
// representation and the big-endian byte representation used on the wire
// (SEC1/RFC 6979 convention). It is the single place endianness is
// converted: src is read as big-endian bytes of length up to 4*n and
// written into dst as n little-endian limbs. If src is shorter than 4*n it
// is treated as zero-padded on the left (high-order); if longer, only the
// trailing 4*n bytes are used — truncation for inputs longer than the
// declared size is handled by the caller, which passes the already-selected
// window here.
func CopySwapArray(src []byte, dst []Limb, n int) {
	for i := 0; i < n; i++ {
		dst[i] = 0
	}
	total := 4 * n
	start := 0
	if len(src) > total {
		start = len(src) - total
	}
	usable := src[start:]
	// usable[k] is byte at big-endian position (len(usable)-1-k) from the
	// least-significant end.
	for k := 0; k < len(usable); k++ {
		bytePos := len(usable) - 1 - k // 0 = least significant byte
		limbIdx := bytePos / 4
		if limbIdx >= n {
			continue
		}
		shift := uint(bytePos%4) * 8
		dst[limbIdx] |= Limb(usable[k]) << shift
	}
}

// SwapArrayToBytes is the inverse of CopySwapArray: it renders n
// little-endian limbs as a big-endian byte string of exactly 4*n bytes.
func SwapArrayToBytes(src []Limb, n int, dst []byte) {
	total := 4 * n
	for i := 0; i < total; i++ {
		dst[i] = 0
	}
	for limbIdx := 0; limbIdx < n; limbIdx++ {
		v := src[limbIdx]
		base := total - (limbIdx+1)*4
		dst[base] = byte(v >> 24)
		dst[base+1] = byte(v >> 16)
		dst[base+2] = byte(v >> 8)
		dst[base+3] = byte(v)
	}
}
