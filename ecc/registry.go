package ecc

import "github.com/vireolabs/scl-go/bignum"

func buildCurve(id string, wsize, bitsize, bytesize int, pHex, nHex, aHex, bHex, gxHex, gyHex string) *Curve {
	c := &Curve{
		ID:       id,
		Wsize:    wsize,
		Bitsize:  bitsize,
		Bytesize: bytesize,
		P:        fromHex(pHex, wsize),
		N:        fromHex(nHex, wsize),
		A:        fromHex(aHex, wsize),
		B:        fromHex(bHex, wsize),
		Gx:       fromHex(gxHex, wsize),
		Gy:       fromHex(gyHex, wsize),
	}
	ctx, st := bignum.SetModulus(c.P, wsize)
	if st != bignum.Ok {
		panic("buildCurve: bad modulus for " + id)
	}
	two := newLimbs(wsize)
	two[0] = 2
	c.Half = newLimbs(wsize)
	if st := ctx.ModInv(two, c.Half); st != bignum.Ok {
		panic("buildCurve: 2 not invertible mod p for " + id)
	}
	return c
}

var (
	p256Curve      *Curve
	p384Curve      *Curve
	p521Curve      *Curve
	secp256k1Curve *Curve
)

func init() {
	p256Curve = buildCurve("secp256r1", 8, 256, 32,
		"FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF",
		"FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551",
		"FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC",
		"5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B",
		"6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296",
		"4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5",
	)
	p384Curve = buildCurve("secp384r1", 12, 384, 48,
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFC",
		"B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF",
		"AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7",
		"3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F",
	)
	p521Curve = buildCurve("secp521r1", 17, 521, 66,
		"01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
		"01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409",
		"01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC",
		"0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00",
		"00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66",
		"011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650",
	)
	secp256k1Curve = buildCurve("secp256k1", 8, 256, 32,
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		"0000000000000000000000000000000000000000000000000000000000000000",
		"0000000000000000000000000000000000000000000000000000000000000007",
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
	)
}

// P256 returns the shared secp256r1 (NIST P-256) curve record.
func P256() *Curve { return p256Curve }

// P384 returns the shared secp384r1 (NIST P-384) curve record.
func P384() *Curve { return p384Curve }

// P521 returns the shared secp521r1 (NIST P-521) curve record.
func P521() *Curve { return p521Curve }

// Secp256k1 returns secp256k1 registered through the same generic
// short-Weierstrass machinery as the NIST curves, rather than a
// hand-specialised 5x52/4x64 representation — used to cross-check against
// independent secp256k1 implementations in bench/.
func Secp256k1() *Curve { return secp256k1Curve }

// Params describes an arbitrary short-Weierstrass curve a caller wants to
// register. All slices must hold wsize limbs.
type Params struct {
	ID             string
	Wsize, Bitsize int
	A, B, P, N     []Limb
	Gx, Gy         []Limb
}

// Register builds and validates a user-supplied curve record, mirroring
// the construction the NIST curves go through: it binds a ModCtx to P,
// derives Half = 2^-1 mod P, and checks the generator is on-curve.
func Register(p Params) (*Curve, bignum.Status) {
	n := p.Wsize
	if n <= 0 {
		return nil, bignum.InvalidLength
	}
	for _, s := range [][]Limb{p.A, p.B, p.P, p.N, p.Gx, p.Gy} {
		if len(s) < n {
			return nil, bignum.InvalidLength
		}
	}
	ctx, st := bignum.SetModulus(p.P, n)
	if st != bignum.Ok {
		return nil, st
	}
	two := newLimbs(n)
	two[0] = 2
	half := newLimbs(n)
	if st := ctx.ModInv(two, half); st != bignum.Ok {
		return nil, st
	}
	c := &Curve{
		ID:       p.ID,
		Wsize:    n,
		Bitsize:  p.Bitsize,
		Bytesize: (p.Bitsize + 7) / 8,
		A:        append([]Limb{}, p.A[:n]...),
		B:        append([]Limb{}, p.B[:n]...),
		P:        append([]Limb{}, p.P[:n]...),
		N:        append([]Limb{}, p.N[:n]...),
		Gx:       append([]Limb{}, p.Gx[:n]...),
		Gy:       append([]Limb{}, p.Gy[:n]...),
		Half:     half,
	}
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	if st := PointOnCurve(c, g); st != bignum.Ok {
		return nil, st
	}
	return c, bignum.Ok
}
