// Package ecdsa implements ECDSA signature verification via a windowed
// double scalar multiplication (Shamir's trick, 2-bit window), the L3 layer
// built on top of package ecc.
package ecdsa

import (
	"github.com/vireolabs/scl-go/bignum"
	"github.com/vireolabs/scl-go/ecc"
)

// Verify checks signature (r, s) over hash using public key q on curve c.
// r, s and hash are big-endian byte slices, matching the wire convention
// the rest of this module uses at every boundary; the byte-swap into
// little-endian limbs happens here. q is already an ecc.AffinePoint of
// little-endian limbs.
func Verify(c *ecc.Curve, q ecc.AffinePoint, rBytes, sBytes, hash []byte) bignum.Status {
	n := c.Wsize

	r := make([]ecc.Limb, n)
	bignum.CopySwapArray(rBytes, r, n)
	s := make([]ecc.Limb, n)
	bignum.CopySwapArray(sBytes, s, n)
	// Per SEC1/ANSI X9.62, a hash longer than the curve's byte size is
	// truncated to its leftmost (high-order) bytes before use, not its
	// trailing bytes — select that window before the endian swap.
	hashWindow := hash
	if len(hashWindow) > c.Bytesize {
		hashWindow = hashWindow[:c.Bytesize]
	}
	e := make([]ecc.Limb, n)
	bignum.CopySwapArray(hashWindow, e, n)

	if cmp, st := isInRange(r, c.N, n); st != bignum.Ok {
		return st
	} else if !cmp {
		return bignum.InvalidInput
	}
	if cmp, st := isInRange(s, c.N, n); st != bignum.Ok {
		return st
	} else if !cmp {
		return bignum.InvalidInput
	}

	if st := ecc.PointOnCurve(c, q); st != bignum.Ok {
		return st
	}

	ctx, st := bignum.SetModulus(c.N, n)
	if st != bignum.Ok {
		return st
	}

	z := make([]ecc.Limb, n)
	if st := ctx.ModInv(s, z); st != bignum.Ok {
		return st
	}
	u1 := make([]ecc.Limb, n)
	if st := ctx.ModMult(e, z, u1); st != bignum.Ok {
		return st
	}
	u2 := make([]ecc.Limb, n)
	if st := ctx.ModMult(r, z, u2); st != bignum.Ok {
		return st
	}

	table, st := buildShamirTable(c, q)
	if st != bignum.Ok {
		return st
	}

	rPoint, st := shamirLadder(c, table, u1, u2, n)
	if st != bignum.Ok {
		return st
	}

	if ecc.IsInfiniteJacobian(c, rPoint) {
		return bignum.ErrPoint
	}
	affine, st := ecc.JacobianToAffine(c, rPoint)
	if st != bignum.Ok {
		return st
	}

	v := make([]ecc.Limb, n)
	if st := bignum.Mod(affine.X, n, c.N, n, v); st != bignum.Ok {
		return st
	}
	cmp, st := bignum.Compare(v, r, n)
	if st != bignum.Ok {
		return st
	}
	if cmp != 0 {
		return bignum.ErrPoint
	}
	return bignum.Ok
}

// isInRange reports whether 0 < a < m.
func isInRange(a, m []ecc.Limb, n int) (bool, bignum.Status) {
	isZero, st := bignum.IsNull(a, n)
	if st != bignum.Ok {
		return false, st
	}
	if isZero {
		return false, bignum.Ok
	}
	cmp, st := bignum.Compare(a, m, n)
	if st != bignum.Ok {
		return false, st
	}
	return cmp < 0, bignum.Ok
}

// buildShamirTable fills ip_jq[j*4+i] = i*G + j*Q for i,j in [0,3]. Entries
// with i=0 or j=0 are built via doubling/adding chains seeded from G and Q
// rather than independent scalar multiplications.
func buildShamirTable(c *ecc.Curve, q ecc.AffinePoint) ([16]ecc.JacobianPoint, bignum.Status) {
	var table [16]ecc.JacobianPoint

	inf := ecc.InfinityJacobian(c)
	g := ecc.AffineToJacobian(c, ecc.AffinePoint{X: c.Gx, Y: c.Gy})
	qj := ecc.AffineToJacobian(c, q)

	table[0] = inf // 0*G + 0*Q
	table[1] = g   // 1*G + 0*Q
	table[4] = qj  // 0*G + 1*Q

	two, st := ecc.DoubleJacobian(c, g)
	if st != bignum.Ok {
		return table, st
	}
	table[2] = two // 2*G

	three, st := ecc.AddJacobian(c, two, g)
	if st != bignum.Ok {
		return table, st
	}
	table[3] = three // 3*G

	twoQ, st := ecc.DoubleJacobian(c, qj)
	if st != bignum.Ok {
		return table, st
	}
	table[8] = twoQ // 2*Q

	threeQ, st := ecc.AddJacobian(c, twoQ, qj)
	if st != bignum.Ok {
		return table, st
	}
	table[12] = threeQ // 3*Q

	// Fill the remaining i!=0, j!=0 entries as i*G + j*Q by adding the
	// already-built i*G column to each j*Q row entry.
	for j := 1; j <= 3; j++ {
		jq := table[j*4]
		for i := 1; i <= 3; i++ {
			sum, st := ecc.AddJacobian(c, table[i], jq)
			if st != bignum.Ok {
				return table, st
			}
			table[j*4+i] = sum
		}
	}

	return table, bignum.Ok
}

// shamirLadder consumes u1, u2 two bits at a time (j*4+i window index into
// the Shamir table, i from u1 and j from u2), doubling the accumulator
// twice per iteration.
func shamirLadder(c *ecc.Curve, table [16]ecc.JacobianPoint, u1, u2 []ecc.Limb, n int) (ecc.JacobianPoint, bignum.Status) {
	msb1, st := bignum.GetMsbSet(u1, n)
	if st != bignum.Ok {
		return ecc.JacobianPoint{}, st
	}
	msb2, st := bignum.GetMsbSet(u2, n)
	if st != bignum.Ok {
		return ecc.JacobianPoint{}, st
	}
	nbits := msb1
	if msb2 > nbits {
		nbits = msb2
	}
	if nbits == 0 {
		return ecc.InfinityJacobian(c), bignum.Ok
	}

	w := (nbits + 1) / 2

	r := ecc.InfinityJacobian(c)
	for i := w - 1; i >= 0; i-- {
		var st bignum.Status
		r, st = ecc.DoubleJacobian(c, r)
		if st != bignum.Ok {
			return ecc.JacobianPoint{}, st
		}
		r, st = ecc.DoubleJacobian(c, r)
		if st != bignum.Ok {
			return ecc.JacobianPoint{}, st
		}

		k := bignum.Bit(u1, 2*i) | (bignum.Bit(u1, 2*i+1) << 1)
		l := bignum.Bit(u2, 2*i) | (bignum.Bit(u2, 2*i+1) << 1)
		idx := k | (l << 2)
		if idx != 0 {
			r, st = ecc.AddJacobian(c, r, table[idx])
			if st != bignum.Ok {
				return ecc.JacobianPoint{}, st
			}
		}
	}
	return r, bignum.Ok
}
