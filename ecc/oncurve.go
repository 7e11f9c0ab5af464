package ecc

import "github.com/vireolabs/scl-go/bignum"

// PointOnCurve verifies 0<x<p, 0<y<p and y^2 == x^3+a*x+b (mod p). Returns
// ErrPoint on any mismatch or range failure.
func PointOnCurve(c *Curve, p AffinePoint) bignum.Status {
	n := c.Wsize
	if len(p.X) < n || len(p.Y) < n {
		return bignum.InvalidLength
	}

	xIsZero, st := bignum.IsNull(p.X, n)
	if st != bignum.Ok {
		return st
	}
	yIsZero, st := bignum.IsNull(p.Y, n)
	if st != bignum.Ok {
		return st
	}
	if xIsZero || yIsZero {
		return bignum.ErrPoint
	}
	if cmp, st := bignum.Compare(p.X, c.P, n); st != bignum.Ok || cmp >= 0 {
		return bignum.ErrPoint
	}
	if cmp, st := bignum.Compare(p.Y, c.P, n); st != bignum.Ok || cmp >= 0 {
		return bignum.ErrPoint
	}

	ctx := modCtx(c)
	lhs := newLimbs(n)
	if st := ctx.ModSquare(p.Y, lhs); st != bignum.Ok {
		return st
	}

	x2 := newLimbs(n)
	if st := ctx.ModSquare(p.X, x2); st != bignum.Ok {
		return st
	}
	x3 := newLimbs(n)
	if st := ctx.ModMult(x2, p.X, x3); st != bignum.Ok {
		return st
	}
	ax := newLimbs(n)
	if st := ctx.ModMult(c.A, p.X, ax); st != bignum.Ok {
		return st
	}
	rhs := newLimbs(n)
	if st := ctx.ModAdd(x3, ax, rhs); st != bignum.Ok {
		return st
	}
	if st := ctx.ModAdd(rhs, c.B, rhs); st != bignum.Ok {
		return st
	}

	cmp, st := bignum.Compare(lhs, rhs, n)
	if st != bignum.Ok {
		return st
	}
	if cmp != 0 {
		return bignum.ErrPoint
	}
	return bignum.Ok
}
