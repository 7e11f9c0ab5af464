package ecc

import (
	"crypto/rand"
	"testing"

	"github.com/vireolabs/scl-go/bignum"
)

type fixedRNG struct{ words []Limb }

func (f *fixedRNG) GetWord() (Limb, error) {
	if len(f.words) == 0 {
		return 0, nil
	}
	w := f.words[0]
	f.words = f.words[1:]
	return w, nil
}

type cryptoRandRNG struct{}

func (cryptoRandRNG) GetWord() (Limb, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return Limb(b[0]) | Limb(b[1])<<8 | Limb(b[2])<<16 | Limb(b[3])<<24, nil
}

func oneLimbs(n int) []Limb {
	l := newLimbs(n)
	l[0] = 1
	return l
}

func TestGeneratorIsOnCurve(t *testing.T) {
	for _, c := range []*Curve{P256(), P384(), P521(), Secp256k1()} {
		g := AffinePoint{X: c.Gx, Y: c.Gy}
		if st := PointOnCurve(c, g); st != bignum.Ok {
			t.Errorf("%s: generator not on curve: %v", c.ID, st)
		}
	}
}

func TestDoubleJacobianMatchesAddJacobianOfSamePoint(t *testing.T) {
	c := P384()
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	gj := AffineToJacobian(c, g)

	doubled, st := DoubleJacobian(c, gj)
	if st != bignum.Ok {
		t.Fatalf("DoubleJacobian: %v", st)
	}
	affine, st := JacobianToAffine(c, doubled)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine: %v", st)
	}
	if st := PointOnCurve(c, affine); st != bignum.Ok {
		t.Fatalf("2G not on curve: %v", st)
	}

	added, st := AddJacobian(c, gj, gj)
	if st != bignum.Ok {
		t.Fatalf("AddJacobian(G,G): %v", st)
	}
	addedAffine, st := JacobianToAffine(c, added)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine(added): %v", st)
	}
	if cmp, _ := bignum.Compare(affine.X, addedAffine.X, c.Wsize); cmp != 0 {
		t.Error("DoubleJacobian(G) != AddJacobian(G,G) on X")
	}
	if cmp, _ := bignum.Compare(affine.Y, addedAffine.Y, c.Wsize); cmp != 0 {
		t.Error("DoubleJacobian(G) != AddJacobian(G,G) on Y")
	}
}

func TestAddJacobianInfinityIdentity(t *testing.T) {
	c := P256()
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	gj := AffineToJacobian(c, g)
	inf := InfinityJacobian(c)

	sum, st := AddJacobian(c, gj, inf)
	if st != bignum.Ok {
		t.Fatalf("AddJacobian(G,inf): %v", st)
	}
	if cmp, _ := bignum.Compare(sum.X, gj.X, c.Wsize); cmp != 0 {
		t.Error("G+inf != G")
	}

	sum2, st := AddJacobian(c, inf, gj)
	if st != bignum.Ok {
		t.Fatalf("AddJacobian(inf,G): %v", st)
	}
	if cmp, _ := bignum.Compare(sum2.X, gj.X, c.Wsize); cmp != 0 {
		t.Error("inf+G != G")
	}
}

func TestAddJacobianOppositePointsIsInfinity(t *testing.T) {
	c := P256()
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	gj := AffineToJacobian(c, g)

	ctx, st := bignum.SetModulus(c.P, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("SetModulus: %v", st)
	}
	negY := newLimbs(c.Wsize)
	if st := ctx.ModNeg(g.Y, negY); st != bignum.Ok {
		t.Fatalf("ModNeg: %v", st)
	}
	negG := JacobianPoint{X: gj.X, Y: negY, Z: gj.Z}

	sum, st := AddJacobian(c, gj, negG)
	if st != bignum.Ok {
		t.Fatalf("AddJacobian(G,-G): %v", st)
	}
	if !IsInfiniteJacobian(c, sum) {
		t.Error("G+(-G) should be the point at infinity")
	}
}

func TestMultCoZLinearityOverScalars(t *testing.T) {
	c := P256()
	g := AffinePoint{X: c.Gx, Y: c.Gy}

	k1 := oneLimbs(c.Wsize)
	k1[0] = 7
	k2 := oneLimbs(c.Wsize)
	k2[0] = 11

	p1, st := MultCoZ(c, g, k1, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultCoZ(7G): %v", st)
	}
	p2, st := MultCoZ(c, g, k2, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultCoZ(11G): %v", st)
	}
	sum, st := AddJacobian(c, p1, p2)
	if st != bignum.Ok {
		t.Fatalf("AddJacobian: %v", st)
	}
	sumAffine, st := JacobianToAffine(c, sum)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine(sum): %v", st)
	}

	k3 := newLimbs(c.Wsize)
	k3[0] = 18
	p3, st := MultCoZ(c, g, k3, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultCoZ(18G): %v", st)
	}
	p3Affine, st := JacobianToAffine(c, p3)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine(18G): %v", st)
	}

	if cmp, _ := bignum.Compare(sumAffine.X, p3Affine.X, c.Wsize); cmp != 0 {
		t.Error("7G+11G != 18G on X")
	}
	if cmp, _ := bignum.Compare(sumAffine.Y, p3Affine.Y, c.Wsize); cmp != 0 {
		t.Error("7G+11G != 18G on Y")
	}
}

func TestMultCoZMatchesMultDirect(t *testing.T) {
	c := Secp256k1()
	g := AffinePoint{X: c.Gx, Y: c.Gy}
	gj := AffineToJacobian(c, g)

	k := newLimbs(c.Wsize)
	k[0] = 0xDEADBEEF
	k[1] = 0x12345

	coz, st := MultCoZ(c, g, k, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultCoZ: %v", st)
	}
	direct, st := MultDirect(c, gj, k, c.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultDirect: %v", st)
	}

	cozAffine, st := JacobianToAffine(c, coz)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine(coz): %v", st)
	}
	directAffine, st := JacobianToAffine(c, direct)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine(direct): %v", st)
	}

	if cmp, _ := bignum.Compare(cozAffine.X, directAffine.X, c.Wsize); cmp != 0 {
		t.Error("MultCoZ and MultDirect disagree on X")
	}
	if cmp, _ := bignum.Compare(cozAffine.Y, directAffine.Y, c.Wsize); cmp != 0 {
		t.Error("MultCoZ and MultDirect disagree on Y")
	}
}

func TestKeypairGenerationProducesOnCurvePoint(t *testing.T) {
	c := P384()
	priv := newLimbs(c.Wsize)
	pub, st := KeypairGeneration(c, cryptoRandRNG{}, priv)
	if st != bignum.Ok {
		t.Fatalf("KeypairGeneration: %v", st)
	}
	if isZero, _ := bignum.IsNull(priv, c.Wsize); isZero {
		t.Fatal("private key is zero")
	}
	if cmp, _ := bignum.Compare(priv, c.N, c.Wsize); cmp >= 0 {
		t.Fatal("private key >= n")
	}
	if st := PointOnCurve(c, pub); st != bignum.Ok {
		t.Fatalf("derived public key not on curve: %v", st)
	}
}

func TestKeypairGenerationRetriesOnZeroAndOutOfRangeDraw(t *testing.T) {
	c := P256()
	zeros := make([]Limb, c.Wsize)
	tooLarge := append([]Limb{}, c.N...)
	tooLarge[0]++ // n+1: just past n (the low limb of n does not wrap)
	valid := []Limb{9, 0, 0, 0, 0, 0, 0, 0}

	rng := &fixedRNG{}
	rng.words = append(rng.words, zeros...)
	rng.words = append(rng.words, tooLarge...)
	rng.words = append(rng.words, valid...)

	priv := newLimbs(c.Wsize)
	pub, st := KeypairGeneration(c, rng, priv)
	if st != bignum.Ok {
		t.Fatalf("KeypairGeneration: %v", st)
	}
	if priv[0] != 9 {
		t.Fatalf("expected the third draw (9) to be accepted, got priv[0]=%d", priv[0])
	}
	if st := PointOnCurve(c, pub); st != bignum.Ok {
		t.Fatalf("derived public key not on curve: %v", st)
	}
}

func TestPointOnCurveRejectsTamperedPoint(t *testing.T) {
	c := P256()
	g := AffinePoint{X: append([]Limb{}, c.Gx...), Y: append([]Limb{}, c.Gy...)}
	g.X[0] ^= 1
	if st := PointOnCurve(c, g); st != bignum.ErrPoint {
		t.Errorf("expected ErrPoint for tampered generator, got %v", st)
	}
}

func TestRegisterCustomCurveMatchesSecp256k1(t *testing.T) {
	ref := Secp256k1()
	custom, st := Register(Params{
		ID:      "custom-k1",
		Wsize:   ref.Wsize,
		Bitsize: ref.Bitsize,
		A:       ref.A,
		B:       ref.B,
		P:       ref.P,
		N:       ref.N,
		Gx:      ref.Gx,
		Gy:      ref.Gy,
	})
	if st != bignum.Ok {
		t.Fatalf("Register: %v", st)
	}

	k := newLimbs(custom.Wsize)
	k[0] = 42
	g := AffinePoint{X: custom.Gx, Y: custom.Gy}
	p, st := MultCoZ(custom, g, k, custom.Wsize)
	if st != bignum.Ok {
		t.Fatalf("MultCoZ on registered curve: %v", st)
	}
	affine, st := JacobianToAffine(custom, p)
	if st != bignum.Ok {
		t.Fatalf("JacobianToAffine: %v", st)
	}
	if st := PointOnCurve(custom, affine); st != bignum.Ok {
		t.Fatalf("42*G not on custom curve: %v", st)
	}
}

func TestRegisterRejectsOffCurveGenerator(t *testing.T) {
	ref := Secp256k1()
	badGx := append([]Limb{}, ref.Gx...)
	badGx[0] ^= 1
	_, st := Register(Params{
		ID:      "bad-k1",
		Wsize:   ref.Wsize,
		Bitsize: ref.Bitsize,
		A:       ref.A,
		B:       ref.B,
		P:       ref.P,
		N:       ref.N,
		Gx:      badGx,
		Gy:      ref.Gy,
	})
	if st != bignum.ErrPoint {
		t.Errorf("expected ErrPoint for a tampered generator, got %v", st)
	}
}
