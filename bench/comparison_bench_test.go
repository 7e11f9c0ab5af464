// Package bench cross-checks this module's generic secp256k1 instantiation
// against two independent, widely-deployed secp256k1 implementations
// (btcec and dcrd's secp256k1) and benchmarks the generic core against them.
package bench

import (
	"crypto/rand"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrdecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/vireolabs/scl-go/bignum"
	"github.com/vireolabs/scl-go/ecc"
	"github.com/vireolabs/scl-go/ecdsa"
)

// derSignature decodes the (r, s) pair out of a DER-encoded ECDSA signature,
// the wire format both btcec and dcrd's Serialize() produce; parsing it
// ourselves avoids depending on either library's internal accessor names.
type derSignature struct {
	R, S *big.Int
}

func decodeDER(t testing.TB, der []byte) (r, s []byte) {
	t.Helper()
	var sig derSignature
	if _, err := asn1.Unmarshal(der, &sig); err != nil {
		t.Fatalf("asn1.Unmarshal signature: %v", err)
	}
	return pad32(sig.R.Bytes()), pad32(sig.S.Bytes())
}

func randPrivBytes(t testing.TB) []byte {
	t.Helper()
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return b
}

func pad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func genericAffine(c *ecc.Curve, x, y []byte) ecc.AffinePoint {
	p := ecc.AffinePoint{X: make([]ecc.Limb, c.Wsize), Y: make([]ecc.Limb, c.Wsize)}
	bignum.CopySwapArray(x, p.X, c.Wsize)
	bignum.CopySwapArray(y, p.Y, c.Wsize)
	return p
}

// TestPubkeyMatchesBtcec verifies this module's generic co-Z scalar
// multiplication agrees with btcec's dedicated secp256k1 implementation on
// public key derivation.
func TestPubkeyMatchesBtcec(t *testing.T) {
	privBytes := randPrivBytes(t)
	_, btcPub := btcec.PrivKeyFromBytes(privBytes)

	c := ecc.Secp256k1()
	priv := make([]ecc.Limb, c.Wsize)
	bignum.CopySwapArray(privBytes, priv, c.Wsize)

	pub, st := ecc.PubkeyGeneration(c, priv)
	if st != bignum.Ok {
		t.Fatalf("PubkeyGeneration: %v", st)
	}

	gotX := make([]byte, c.Bytesize)
	bignum.SwapArrayToBytes(pub.X, c.Wsize, gotX)
	gotY := make([]byte, c.Bytesize)
	bignum.SwapArrayToBytes(pub.Y, c.Wsize, gotY)

	wantX := pad32(btcPub.X().Bytes())
	wantY := pad32(btcPub.Y().Bytes())

	if string(gotX) != string(wantX) {
		t.Errorf("pubkey X disagrees with btcec:\n  got  %x\n  want %x", gotX, wantX)
	}
	if string(gotY) != string(wantY) {
		t.Errorf("pubkey Y disagrees with btcec:\n  got  %x\n  want %x", gotY, wantY)
	}
}

// TestVerifyAcceptsDcrdSignature checks that a signature produced by dcrd's
// secp256k1/v4 implementation verifies against this module's ecdsa.Verify.
func TestVerifyAcceptsDcrdSignature(t *testing.T) {
	privBytes := randPrivBytes(t)
	dcrdPriv := secp256k1.PrivKeyFromBytes(privBytes)

	hash := make([]byte, 32)
	if _, err := rand.Read(hash); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}

	sig := dcrdecdsa.Sign(dcrdPriv, hash)
	rBytes, sBytes := decodeDER(t, sig.Serialize())

	c := ecc.Secp256k1()
	pub := dcrdPriv.PubKey()
	q := genericAffine(c, pad32(pub.X().Bytes()), pad32(pub.Y().Bytes()))

	if st := ecdsa.Verify(c, q, rBytes, sBytes, hash); st != bignum.Ok {
		t.Fatalf("ecdsa.Verify rejected a dcrd-produced signature: %v", st)
	}
}

// TestVerifyRejectsTamperedDcrdSignature mirrors the prior acceptance test
// but flips a signature byte, checking ecdsa.Verify rejects it the same way
// dcrd's own Verify would.
func TestVerifyRejectsTamperedDcrdSignature(t *testing.T) {
	privBytes := randPrivBytes(t)
	dcrdPriv := secp256k1.PrivKeyFromBytes(privBytes)

	hash := make([]byte, 32)
	if _, err := rand.Read(hash); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}

	sig := dcrdecdsa.Sign(dcrdPriv, hash)
	if !sig.Verify(hash, dcrdPriv.PubKey()) {
		t.Fatal("sanity check: dcrd's own unmodified signature failed to verify")
	}
	rBytes, sBytes := decodeDER(t, sig.Serialize())
	sBytes[31] ^= 0xFF

	c := ecc.Secp256k1()
	pub := dcrdPriv.PubKey()
	q := genericAffine(c, pad32(pub.X().Bytes()), pad32(pub.Y().Bytes()))

	if st := ecdsa.Verify(c, q, rBytes, sBytes, hash); st == bignum.Ok {
		t.Fatal("ecdsa.Verify accepted a tampered signature")
	}
}

// TestVerifyAcceptsBtcecSignature cross-checks against the other reference
// implementation, btcec.
func TestVerifyAcceptsBtcecSignature(t *testing.T) {
	privBytes := randPrivBytes(t)
	btcPriv, btcPub := btcec.PrivKeyFromBytes(privBytes)

	hash := make([]byte, 32)
	if _, err := rand.Read(hash); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	sig := btcecdsa.Sign(btcPriv, hash)
	rBytes, sBytes := decodeDER(t, sig.Serialize())

	c := ecc.Secp256k1()
	q := genericAffine(c, pad32(btcPub.X().Bytes()), pad32(btcPub.Y().Bytes()))

	if st := ecdsa.Verify(c, q, rBytes, sBytes, hash); st != bignum.Ok {
		t.Fatalf("ecdsa.Verify rejected a btcec-produced signature: %v", st)
	}
}

func BenchmarkPubkeyGenerationGeneric(b *testing.B) {
	c := ecc.Secp256k1()
	priv := make([]ecc.Limb, c.Wsize)
	priv[0] = 0xABCDEF01
	priv[1] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, st := ecc.PubkeyGeneration(c, priv); st != bignum.Ok {
			b.Fatalf("PubkeyGeneration: %v", st)
		}
	}
}

func BenchmarkPubkeyGenerationBtcec(b *testing.B) {
	privBytes := make([]byte, 32)
	privBytes[0] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, pub := btcec.PrivKeyFromBytes(privBytes)
		_ = pub
	}
}
