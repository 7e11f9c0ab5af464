// Package ecc implements elliptic-curve point arithmetic on short
// Weierstrass curves (layer L2): affine/Jacobian conversion, point doubling
// and addition, the co-Z scalar-multiplication ladder, on-curve
// verification and keypair generation. Every operation is built on top of
// package bignum and threads bignum.Status through exactly the way the
// bignum layer does, so a caller never has to distinguish "bignum failed"
// from "curve op failed".
package ecc

import "github.com/vireolabs/scl-go/bignum"

// Limb is re-exported from bignum for callers that only import ecc.
type Limb = bignum.Limb

// Curve is an immutable read-only record describing a short Weierstrass
// curve y^2 = x^3 + a*x + b (mod p) of order n with base point G. Wsize is
// the limb count field elements and scalars of this curve are stored in;
// Bitsize/Bytesize are the corresponding bit- and byte-lengths. Half is the
// precomputed value 2^-1 mod p; DoubleJacobian does not use it.
type Curve struct {
	ID       string
	Wsize    int
	Bitsize  int
	Bytesize int

	A, B, P, N []Limb
	Gx, Gy     []Limb
	Half       []Limb
}

// AffinePoint is a curve point in affine coordinates (x, y).
type AffinePoint struct {
	X, Y []Limb
}

// JacobianPoint is a curve point in Jacobian coordinates (X, Y, Z)
// representing the affine point (X/Z^2, Y/Z^3).
type JacobianPoint struct {
	X, Y, Z []Limb
}

// newLimbs allocates an n-limb zeroed buffer.
func newLimbs(n int) []Limb {
	return make([]Limb, n)
}

// fromHex decodes a big-endian hex string into an n-limb little-endian
// bignum. Panics on malformed input: only used for the fixed curve
// constants below, never on attacker-controlled data.
func fromHex(hexStr string, n int) []Limb {
	out := newLimbs(n)
	clean := make([]byte, 0, len(hexStr))
	for i := 0; i < len(hexStr); i++ {
		c := hexStr[i]
		if c == '_' || c == ' ' {
			continue
		}
		clean = append(clean, c)
	}
	if len(clean)%2 != 0 {
		clean = append([]byte{'0'}, clean...)
	}
	nibble := func(c byte) Limb {
		switch {
		case c >= '0' && c <= '9':
			return Limb(c - '0')
		case c >= 'a' && c <= 'f':
			return Limb(c-'a') + 10
		case c >= 'A' && c <= 'F':
			return Limb(c-'A') + 10
		}
		panic("fromHex: invalid hex digit")
	}
	bytesLen := len(clean) / 2
	buf := make([]byte, bytesLen)
	for i := 0; i < bytesLen; i++ {
		hi := nibble(clean[2*i])
		lo := nibble(clean[2*i+1])
		buf[i] = byte(hi<<4 | lo)
	}
	// buf is big-endian; copy_swap into little-endian limbs.
	bignum.CopySwapArray(buf, out, n)
	return out
}
