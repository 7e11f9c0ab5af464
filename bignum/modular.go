package bignum

// ModCtx binds a modulus slice to subsequent modular operations. It holds no
// ownership of the modulus buffer: the caller must keep it alive for the
// context's lifetime.
type ModCtx struct {
	m []Limb
	n int
}

// SetModulus builds a ModCtx bound to modulus m of n limbs.
func SetModulus(m []Limb, n int) (ModCtx, Status) {
	if n <= 0 {
		return ModCtx{}, InvalidLength
	}
	if len(m) < n {
		return ModCtx{}, InvalidLength
	}
	return ModCtx{m: m, n: n}, Ok
}

// ModAdd computes out := (a+b) mod m. If the raw sum carries or is >= m, m
// is subtracted once (a single correction suffices because a,b < m implies
// a+b < 2m).
func (c ModCtx) ModAdd(a, b, out []Limb) Status {
	n := c.n
	if len(a) < n || len(b) < n || len(out) < n {
		return InvalidLength
	}
	carry, st := Add(a, b, out, n)
	if st != Ok {
		return st
	}
	cmp, st := Compare(out, c.m, n)
	if st != Ok {
		return st
	}
	if carry != 0 || cmp >= 0 {
		if _, st := Sub(out, c.m, out, n); st != Ok {
			return st
		}
	}
	return Ok
}

// ModSub computes out := (a-b) mod m. If a<b, m is added back once.
func (c ModCtx) ModSub(a, b, out []Limb) Status {
	n := c.n
	if len(a) < n || len(b) < n || len(out) < n {
		return InvalidLength
	}
	borrow, st := Sub(a, b, out, n)
	if st != Ok {
		return st
	}
	if borrow != 0 {
		if _, st := Add(out, c.m, out, n); st != Ok {
			return st
		}
	}
	return Ok
}

// ModNeg computes out := (m-a) mod m, leaving zero unchanged.
func (c ModCtx) ModNeg(a, out []Limb) Status {
	n := c.n
	if len(a) < n || len(out) < n {
		return InvalidLength
	}
	isZero, st := IsNull(a, n)
	if st != Ok {
		return st
	}
	if isZero {
		for i := 0; i < n; i++ {
			out[i] = 0
		}
		return Ok
	}
	_, st = Sub(c.m, a, out, n)
	return st
}

// ModMult computes out := (a*b) mod m via a full 2n-limb product reduced by
// the modulus.
func (c ModCtx) ModMult(a, b, out []Limb) Status {
	n := c.n
	if len(a) < n || len(b) < n || len(out) < n {
		return InvalidLength
	}
	wide := make([]Limb, 2*n)
	if st := Mult(a, b, wide, n); st != Ok {
		return st
	}
	return Mod(wide, 2*n, c.m, n, out)
}

// ModSquare computes out := (a*a) mod m.
func (c ModCtx) ModSquare(a, out []Limb) Status {
	return c.ModMult(a, a, out)
}

// signedLimbs is a sign-magnitude bignum of width w used internally by
// ModInv's binary extended-GCD bookkeeping (HoAC 14.61), which tracks
// intermediate values that go negative even though the public contract
// only ever sees nonnegative results.
type signedLimbs struct {
	neg bool
	mag []Limb
}

func newSigned(w int) signedLimbs {
	return signedLimbs{mag: make([]Limb, w)}
}

func widen(src []Limb, n, w int) signedLimbs {
	s := newSigned(w)
	copy(s.mag, src[:n])
	return s
}

func (s signedLimbs) isZero(w int) bool {
	z, _ := IsNull(s.mag, w)
	return z
}

func (s signedLimbs) isEven() bool {
	return s.mag[0]&1 == 0
}

func addSigned(x, y signedLimbs, w int) signedLimbs {
	r := newSigned(w)
	if x.neg == y.neg {
		Add(x.mag, y.mag, r.mag, w)
		r.neg = x.neg
	} else {
		c, _ := Compare(x.mag, y.mag, w)
		if c >= 0 {
			Sub(x.mag, y.mag, r.mag, w)
			r.neg = x.neg
		} else {
			Sub(y.mag, x.mag, r.mag, w)
			r.neg = y.neg
		}
	}
	if r.isZero(w) {
		r.neg = false
	}
	return r
}

func negSigned(x signedLimbs, w int) signedLimbs {
	r := newSigned(w)
	copy(r.mag, x.mag)
	r.neg = !x.neg && !x.isZero(w)
	return r
}

func subSigned(x, y signedLimbs, w int) signedLimbs {
	return addSigned(x, negSigned(y, w), w)
}

// halveEven divides a signed value known to have an even magnitude by two,
// preserving sign (halving never changes sign since the magnitude stays
// nonnegative).
func halveEven(x signedLimbs, w int) signedLimbs {
	r := newSigned(w)
	RightShift(x.mag, r.mag, 1, w)
	r.neg = x.neg && !r.isZero(w)
	return r
}

// ModInv computes out := a^-1 mod m via the binary extended Euclidean
// algorithm (HoAC 14.61). Requires m odd (ParityError otherwise) and
// gcd(a,m)=1 (NotInversible otherwise). Result is in [1, m-1].
func (c ModCtx) ModInv(a, out []Limb) Status {
	n := c.n
	if len(a) < n || len(out) < n {
		return InvalidLength
	}
	if c.m[0]&1 == 0 {
		return ParityError
	}
	aIsZero, st := IsNull(a, n)
	if st != Ok {
		return st
	}
	if aIsZero {
		return NotInversible
	}

	w := n + 1
	u := widen(a, n, w)
	v := widen(c.m, n, w)
	A := newSigned(w)
	A.mag[0] = 1
	B := newSigned(w)
	C := newSigned(w)
	D := newSigned(w)
	D.mag[0] = 1
	mw := widen(c.m, n, w)
	xw := widen(a, n, w)

	for {
		for !u.isZero(w) && u.isEven() {
			RightShift(u.mag, u.mag, 1, w)
			if A.isEven() && B.isEven() {
				A = halveEven(A, w)
				B = halveEven(B, w)
			} else {
				A = halveEven(addSigned(A, mw, w), w)
				B = halveEven(subSigned(B, xw, w), w)
			}
		}
		for !v.isZero(w) && v.isEven() {
			RightShift(v.mag, v.mag, 1, w)
			if C.isEven() && D.isEven() {
				C = halveEven(C, w)
				D = halveEven(D, w)
			} else {
				C = halveEven(addSigned(C, mw, w), w)
				D = halveEven(subSigned(D, xw, w), w)
			}
		}
		cmp, _ := Compare(u.mag, v.mag, w)
		if cmp >= 0 {
			Sub(u.mag, v.mag, u.mag, w)
			A = subSigned(A, C, w)
			B = subSigned(B, D, w)
		} else {
			Sub(v.mag, u.mag, v.mag, w)
			C = subSigned(C, A, w)
			D = subSigned(D, B, w)
		}
		if u.isZero(w) {
			break
		}
	}

	one := newSigned(w)
	one.mag[0] = 1
	if eq, _ := Compare(v.mag, one.mag, w); eq != 0 {
		return NotInversible
	}

	// Canonicalise C to [0, m) modulo m.
	rem := make([]Limb, n)
	if st := Mod(C.mag, w, c.m, n, rem); st != Ok {
		return st
	}
	if C.neg {
		remIsZero, _ := IsNull(rem, n)
		if !remIsZero {
			Sub(c.m, rem, rem, n)
		}
	}
	copy(out[:n], rem)
	return Ok
}
