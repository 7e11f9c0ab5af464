package ecc

import "github.com/vireolabs/scl-go/bignum"

// coZPair is two affine-coordinate values (x,y) that currently share an
// implicit Jacobian Z with some other coZPair; that Z is not stored at all
// (MultCoZ recovers it once, after the ladder), since every operation here
// updates both operands' Z identically.
type coZPair struct{ x, y []Limb }

// xyczAddC is the conjugate co-Z point addition with update (ZADDC,
// Meloni/Rivain): given P=(x1,y1), Q=(x2,y2) sharing a Z, it returns
// pMinusQ = P-Q and pPlusQ = P+Q, both rescaled to a new shared Z; delta is
// the factor the caller must multiply the running Z accumulator by
// (Z_new = Z_old * delta).
func xyczAddC(ctx bignum.ModCtx, n int, p, q coZPair) (pMinusQ, pPlusQ coZPair, delta []Limb) {
	delta = newLimbs(n)
	ctx.ModSub(q.x, p.x, delta) // delta = x2-x1

	a := newLimbs(n)
	ctx.ModSquare(delta, a) // A = delta^2

	w1 := newLimbs(n)
	ctx.ModMult(p.x, a, w1) // W1 = x1*A
	w2 := newLimbs(n)
	ctx.ModMult(q.x, a, w2) // W2 = x2*A

	s := newLimbs(n)
	ctx.ModAdd(q.y, p.y, s) // S = y2+y1
	dm := newLimbs(n)
	ctx.ModSub(q.y, p.y, dm) // Dm = y2-y1

	y1tmp := newLimbs(n)
	w2MinusW1 := newLimbs(n)
	ctx.ModSub(w2, w1, w2MinusW1)
	ctx.ModMult(p.y, w2MinusW1, y1tmp) // y1tmp = y1*(W2-W1)

	w1PlusW2 := newLimbs(n)
	ctx.ModAdd(w1, w2, w1PlusW2)

	qx := newLimbs(n)
	ctx.ModSquare(dm, qx)
	ctx.ModSub(qx, w1PlusW2, qx) // Qx = Dm^2 - (W1+W2)

	qy := newLimbs(n)
	w1MinusQx := newLimbs(n)
	ctx.ModSub(w1, qx, w1MinusQx)
	ctx.ModMult(dm, w1MinusQx, qy)
	ctx.ModSub(qy, y1tmp, qy) // Qy = Dm*(W1-Qx) - y1tmp

	f := newLimbs(n)
	ctx.ModSquare(s, f)
	px := newLimbs(n)
	ctx.ModSub(f, w1PlusW2, px) // Px = S^2 - (W1+W2)

	py := newLimbs(n)
	sTimesPxMinusW1 := newLimbs(n)
	pxMinusW1 := newLimbs(n)
	ctx.ModSub(px, w1, pxMinusW1)
	ctx.ModMult(s, pxMinusW1, sTimesPxMinusW1)
	ctx.ModSub(sTimesPxMinusW1, y1tmp, py) // Py = S*(Px-W1) - y1tmp

	return coZPair{px, py}, coZPair{qx, qy}, delta
}

// xyczAdd is the plain co-Z point addition with update (ZADDU): given
// P=(x1,y1), Q=(x2,y2) sharing a Z, it rescales P to a new shared Z and
// returns pPlusQ = P+Q at that same new Z.
func xyczAdd(ctx bignum.ModCtx, n int, p, q coZPair) (pRescaled, pPlusQ coZPair, delta []Limb) {
	delta = newLimbs(n)
	ctx.ModSub(q.x, p.x, delta) // delta = x2-x1 (matches the literature's ZADDU convention)

	a := newLimbs(n)
	ctx.ModSquare(delta, a)

	b := newLimbs(n)
	ctx.ModMult(p.x, a, b) // B = x1*A
	cc := newLimbs(n)
	ctx.ModMult(q.x, a, cc) // C = x2*A

	dm := newLimbs(n)
	ctx.ModSub(q.y, p.y, dm) // D = y2-y1
	d2 := newLimbs(n)
	ctx.ModSquare(dm, d2)

	x3 := newLimbs(n)
	ctx.ModSub(d2, b, x3)
	ctx.ModSub(x3, cc, x3) // x3 = D^2 - B - C

	cMinusB := newLimbs(n)
	ctx.ModSub(cc, b, cMinusB)
	y1new := newLimbs(n)
	ctx.ModMult(p.y, cMinusB, y1new) // Y1' = y1*(C-B)

	bMinusX3 := newLimbs(n)
	ctx.ModSub(b, x3, bMinusX3)
	y3 := newLimbs(n)
	ctx.ModMult(dm, bMinusX3, y3)
	ctx.ModSub(y3, y1new, y3) // y3 = D*(B-x3) - Y1'

	return coZPair{b, y1new}, coZPair{x3, y3}, delta
}

// MultCoZ computes k*G via the co-Z Montgomery ladder (Meloni/Rivain): each
// bit below the scalar's MSB consumes one ZADDC and one ZADDU, maintaining
// the invariant R[1] - R[0] = G throughout. The per-step (X,Y) pairs are
// only valid up to a common Z that is never realised bit by bit; the final
// affine Z is instead recovered in one shot from R[0], R[1], the original
// point and the scalar's least-significant bit, per the standard final-step
// construction (spec step 4) — skipping that recovery flips the output's
// sign for roughly half of all scalars. Requires 0 < k < curve order.
func MultCoZ(c *Curve, g AffinePoint, k []Limb, kn int) (JacobianPoint, bignum.Status) {
	n := c.Wsize
	kIsZero, st := bignum.IsNull(k, kn)
	if st != bignum.Ok {
		return JacobianPoint{}, st
	}
	if kIsZero {
		return JacobianPoint{}, bignum.ErrInternal
	}
	if cmp, st := bignum.CompareLenDiff(k, kn, c.N, n); st != bignum.Ok || cmp >= 0 {
		return JacobianPoint{}, bignum.ErrInternal
	}

	msb, st := bignum.GetMsbSet(k, kn)
	if st != bignum.Ok {
		return JacobianPoint{}, st
	}
	i0 := msb - 1 // 0-based index of the MSB

	ctx := modCtx(c)

	// R[1] = 2G via a real doubling, which fixes the ladder's working Z;
	// R[0] = G rescaled to that same Z. R[0]=G, R[1]=2G matches step 2.
	gj := AffineToJacobian(c, g)
	r1j, st := DoubleJacobian(c, gj)
	if st != bignum.Ok {
		return JacobianPoint{}, st
	}
	zInit := r1j.Z
	r1 := coZPair{r1j.X, r1j.Y}

	// Rescale G (originally at Z=1) to the same Z as R1: x' = Gx*Z^2, y' = Gy*Z^3.
	z2 := newLimbs(n)
	ctx.ModSquare(zInit, z2)
	z3 := newLimbs(n)
	ctx.ModMult(z2, zInit, z3)
	r0x := newLimbs(n)
	ctx.ModMult(g.X, z2, r0x)
	r0y := newLimbs(n)
	ctx.ModMult(g.Y, z3, r0y)
	r0 := coZPair{r0x, r0y}

	r := [2]coZPair{r0, r1}

	if i0 == 0 {
		// k has no bits below its MSB, so R[0] already equals 1*G = k*G.
		return JacobianPoint{X: r[0].x, Y: r[0].y, Z: zInit}, bignum.Ok
	}

	for i := i0 - 1; i >= 1; i-- {
		b := bignum.Bit(k, i)
		other := 1 - b

		pMinusQ, pPlusQ, _ := xyczAddC(ctx, n, r[b], r[other])
		r[b] = pMinusQ
		r[other] = pPlusQ

		pRescaled, pPlusQ2, _ := xyczAdd(ctx, n, r[other], r[b])
		r[other] = pRescaled
		r[b] = pPlusQ2
	}

	b0 := bignum.Bit(k, 0)
	other0 := 1 - b0

	pMinusQ, pPlusQ, _ := xyczAddC(ctx, n, r[b0], r[other0])
	r[b0] = pMinusQ
	r[other0] = pPlusQ

	// Recover the shared Z from R[0], R[1], the original point and the lsb
	// b0 rather than from a running accumulator.
	z := newLimbs(n)
	ctx.ModSub(r[1].x, r[0].x, z) // z = x1 - x0
	ctx.ModMult(z, r[b0].y, z)
	ctx.ModMult(z, g.X, z)
	if st := ctx.ModInv(z, z); st != bignum.Ok {
		return JacobianPoint{}, st
	}
	ctx.ModMult(z, g.Y, z)
	ctx.ModMult(z, r[b0].x, z)

	pRescaled, pPlusQ2, _ := xyczAdd(ctx, n, r[other0], r[b0])
	r[other0] = pRescaled
	r[b0] = pPlusQ2

	zSq := newLimbs(n)
	ctx.ModSquare(z, zSq)
	xOut := newLimbs(n)
	ctx.ModMult(r[0].x, zSq, xOut)
	zCb := newLimbs(n)
	ctx.ModMult(zSq, z, zCb)
	yOut := newLimbs(n)
	ctx.ModMult(r[0].y, zCb, yOut)

	// z is the inverse of the shared Z, so (xOut, yOut) are already affine.
	one := newLimbs(n)
	one[0] = 1
	return JacobianPoint{X: xOut, Y: yOut, Z: one}, bignum.Ok
}

// MultDirect computes k*p via plain left-to-right double-and-add in
// Jacobian coordinates. Unlike MultCoZ this leaks the scalar's bit pattern
// through its operation sequence, so it is only suitable where the scalar is
// public; no private-key path in this module calls it (the ecdsa package
// builds its Shamir's-trick table from DoubleJacobian/AddJacobian instead).
func MultDirect(c *Curve, p JacobianPoint, k []Limb, kn int) (JacobianPoint, bignum.Status) {
	msb, st := bignum.GetMsbSet(k, kn)
	if st != bignum.Ok {
		return JacobianPoint{}, st
	}
	if msb == 0 {
		return InfinityJacobian(c), bignum.Ok
	}
	acc := InfinityJacobian(c)
	for i := msb - 1; i >= 0; i-- {
		var st bignum.Status
		acc, st = DoubleJacobian(c, acc)
		if st != bignum.Ok {
			return JacobianPoint{}, st
		}
		if bignum.Bit(k, i) == 1 {
			acc, st = AddJacobian(c, acc, p)
			if st != bignum.Ok {
				return JacobianPoint{}, st
			}
		}
	}
	return acc, bignum.Ok
}
