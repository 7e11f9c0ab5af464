package ecc

import "github.com/vireolabs/scl-go/bignum"

// RNG is the get_data contract: callers supply entropy one 32-bit word at a
// time. Implementations live in package rng (crypto/rand-backed default,
// HMAC-DRBG for deterministic test vectors); ecc only depends on this
// narrow interface to avoid importing rng and creating a cycle.
type RNG interface {
	GetWord() (Limb, error)
}

// PubkeyGeneration computes Q = priv*G and verifies Q lands on the curve,
// mirroring the defence-in-depth check the original keygen routine performs
// after every scalar multiplication.
func PubkeyGeneration(c *Curve, priv []Limb) (AffinePoint, bignum.Status) {
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	qj, st := MultCoZ(c, g, priv, c.Wsize)
	if st != bignum.Ok {
		return AffinePoint{}, st
	}
	q, st := JacobianToAffine(c, qj)
	if st != bignum.Ok {
		return AffinePoint{}, st
	}
	if st := PointOnCurve(c, q); st != bignum.Ok {
		return AffinePoint{}, st
	}
	return q, bignum.Ok
}

// KeypairGeneration draws a private scalar from rng, rejecting draws outside
// [1, n-1] and retrying, then derives the matching public point. The
// rejection-sampling loop mirrors the source's approach of drawing full
// curve-width words and masking down to the curve's bit length rather than
// computing a scalar-specific bias correction.
func KeypairGeneration(c *Curve, rng RNG, priv []Limb) (AffinePoint, bignum.Status) {
	n := c.Wsize
	if len(priv) < n {
		return AffinePoint{}, bignum.InvalidLength
	}

	for {
		for i := 0; i < n; i++ {
			w, err := rng.GetWord()
			if err != nil {
				return AffinePoint{}, bignum.RngError
			}
			priv[i] = w
		}
		maskTopBits(priv, n, c.Bitsize)

		isZero, st := bignum.IsNull(priv, n)
		if st != bignum.Ok {
			return AffinePoint{}, st
		}
		if isZero {
			continue
		}
		cmp, st := bignum.Compare(priv, c.N, n)
		if st != bignum.Ok {
			return AffinePoint{}, st
		}
		if cmp >= 0 {
			continue
		}
		return PubkeyGeneration(c, priv)
	}
}

// maskTopBits clears any bits at or above bitsize within an n-limb value,
// so a full n*32-bit random draw is reduced to the curve's field width
// before the range check.
func maskTopBits(a []Limb, n, bitsize int) {
	fullWords := bitsize / 32
	rem := bitsize % 32
	for i := fullWords; i < n; i++ {
		if i == fullWords && rem != 0 {
			a[i] &= (1 << uint(rem)) - 1
			continue
		}
		if i > fullWords || rem == 0 {
			a[i] = 0
		}
	}
}
