package bignum

import "math/bits"

// Mult computes out[0..2n) := a*b for n-limb operands a, b. out must not
// alias either input (the contract forbids in-place multiplication).
func Mult(a, b, out []Limb, n int) Status {
	if n <= 0 {
		return InvalidLength
	}
	if len(a) < n || len(b) < n || len(out) < 2*n {
		return InvalidLength
	}
	for i := 0; i < 2*n; i++ {
		out[i] = 0
	}

	// Schoolbook product scanning: accumulate a[i]*b[j] into out[i+j],
	// carrying 32 bits at a time but tracked in a 64-bit word so the carry
	// chain across a row never overflows.
	for i := 0; i < n; i++ {
		var carry Wide
		ai := Wide(a[i])
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul32(uint32(ai), b[j])
			sum := Wide(out[i+j]) + Wide(lo) + carry
			out[i+j] = Limb(sum)
			carry = Wide(hi) + (sum >> 32)
		}
		k := i + n
		for carry != 0 {
			sum := Wide(out[k]) + carry
			out[k] = Limb(sum)
			carry = sum >> 32
			k++
		}
	}
	return Ok
}

// Square computes out[0..2n) := a*a. Equivalent to Mult(a, a, out, n); this
// implementation does not special-case the diagonal-term optimisation
// (HoAC 14.16).
func Square(a, out []Limb, n int) Status {
	return Mult(a, a, out, n)
}

// Div performs integer division of an nd-limb dividend by an nv-limb
// divisor using shift-and-subtract dichotomy: the divisor is aligned with
// the dividend's most-significant bit, then repeatedly test-subtracted,
// setting quotient bits as it goes. quotient (if non-nil) receives nd limbs;
// remainder (if non-nil) receives nv limbs. Either may be nil to discard
// that output.
func Div(dividend []Limb, nd int, divisor []Limb, nv int, quotient, remainder []Limb) Status {
	if nd <= 0 || nv <= 0 {
		return InvalidLength
	}
	if len(dividend) < nd || len(divisor) < nv {
		return InvalidLength
	}
	if nd < nv {
		return InvalidLength
	}
	if quotient != nil && len(quotient) < nd {
		return InvalidLength
	}
	if remainder != nil && len(remainder) < nv {
		return InvalidLength
	}

	divisorIsZero, st := IsNull(divisor, nv)
	if st != Ok {
		return st
	}
	if divisorIsZero {
		return ZeroDivision
	}

	// remWork holds the running remainder, sized to the dividend so shifts
	// never truncate; quotWork accumulates the quotient bits.
	remWork := make([]Limb, nd)
	copy(remWork, dividend[:nd])
	quotWork := make([]Limb, nd)

	cmp, st := CompareLenDiff(dividend, nd, divisor, nv)
	if st != Ok {
		return st
	}
	if cmp < 0 {
		// a < divisor: quotient 0, remainder a.
		if quotient != nil {
			for i := range quotient[:nd] {
				quotient[i] = 0
			}
		}
		if remainder != nil {
			for i := 0; i < nv; i++ {
				if i < nd {
					remainder[i] = dividend[i]
				} else {
					remainder[i] = 0
				}
			}
		}
		return Ok
	}
	if cmp == 0 {
		if quotient != nil {
			quotient[0] = 1
			for i := 1; i < nd; i++ {
				quotient[i] = 0
			}
		}
		if remainder != nil {
			for i := range remainder[:nv] {
				remainder[i] = 0
			}
		}
		return Ok
	}

	dividendMsb, st := GetMsbSet(dividend, nd)
	if st != Ok {
		return st
	}
	divisorMsb, st := GetMsbSet(divisor, nv)
	if st != Ok {
		return st
	}
	// Align the divisor's MSB with the dividend's MSB: this is the
	// divisor-MSB shortcut the source's soft_bignum_div leaves commented
	// out; restoring it avoids shifting further than necessary.
	shift := dividendMsb - divisorMsb

	shifted := make([]Limb, nd)
	copy(shifted, divisor[:nv])
	if st := LeftShift(shifted, shifted, shift, nd); st != Ok {
		return st
	}

	for i := shift; i >= 0; i-- {
		c, st := Compare(remWork, shifted, nd)
		if st != Ok {
			return st
		}
		if c >= 0 {
			if _, st := Sub(remWork, shifted, remWork, nd); st != Ok {
				return st
			}
			quotWork[i/32] |= 1 << uint(i%32)
		}
		if i > 0 {
			if st := RightShift(shifted, shifted, 1, nd); st != Ok {
				return st
			}
		}
	}

	if quotient != nil {
		copy(quotient[:nd], quotWork)
	}
	if remainder != nil {
		for i := 0; i < nv; i++ {
			remainder[i] = remWork[i]
		}
	}
	return Ok
}

// Mod computes out[0..nm) := a mod m, equivalent to Div requesting only the
// remainder. Fast-paths a<m and a==m without invoking the full dichotomy.
func Mod(a []Limb, na int, m []Limb, nm int, out []Limb) Status {
	if na <= 0 || nm <= 0 {
		return InvalidLength
	}
	if len(a) < na || len(m) < nm || len(out) < nm {
		return InvalidLength
	}
	cmp, st := CompareLenDiff(a, na, m, nm)
	if st != Ok {
		return st
	}
	if cmp < 0 {
		for i := 0; i < nm; i++ {
			if i < na {
				out[i] = a[i]
			} else {
				out[i] = 0
			}
		}
		return Ok
	}
	if cmp == 0 {
		for i := range out[:nm] {
			out[i] = 0
		}
		return Ok
	}
	return Div(a, na, m, nm, nil, out)
}
