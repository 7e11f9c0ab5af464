// Package scl ties the bignum, ecc and ecdsa layers together behind a
// dispatch table: every operation is a field on Ops rather than a direct
// function call, so a caller on different hardware can override individual
// slots (e.g. a hardware crypto accelerator's point-multiply) while falling
// back to the pure-software implementation everywhere else.
package scl

import (
	"github.com/vireolabs/scl-go/bignum"
	"github.com/vireolabs/scl-go/ecc"
	"github.com/vireolabs/scl-go/ecdsa"
)

// Status re-exports bignum.Status so callers that only import scl don't
// need a second import for error handling.
type Status = bignum.Status

const (
	Ok            = bignum.Ok
	InvalidInput  = bignum.InvalidInput
	InvalidLength = bignum.InvalidLength
	ZeroDivision  = bignum.ZeroDivision
	NotInversible = bignum.NotInversible
	ParityError   = bignum.ParityError
	ErrPoint      = bignum.ErrPoint
	ErrApiEntry   = bignum.ErrApiEntry
	RngError      = bignum.RngError
	ErrInternal   = bignum.ErrInternal
)

// BignumOps groups the L0/L1 function-pointer slots.
type BignumOps struct {
	Add    func(a, b, out []bignum.Limb, n int) (bignum.Limb, Status)
	Sub    func(a, b, out []bignum.Limb, n int) (bignum.Limb, Status)
	Mult   func(a, b, out []bignum.Limb, n int) Status
	Div    func(a []bignum.Limb, na int, b []bignum.Limb, nb int, q, r []bignum.Limb) Status
	ModAdd func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status
	ModSub func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status
	ModMul func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status
	ModInv func(ctx bignum.ModCtx, a, out []bignum.Limb) Status
}

// EccOps groups the L2 function-pointer slots.
type EccOps struct {
	PointDouble func(c *ecc.Curve, p ecc.JacobianPoint) (ecc.JacobianPoint, Status)
	PointAdd    func(c *ecc.Curve, p1, p2 ecc.JacobianPoint) (ecc.JacobianPoint, Status)
	MultCoZ     func(c *ecc.Curve, g ecc.AffinePoint, k []bignum.Limb, kn int) (ecc.JacobianPoint, Status)
	OnCurve     func(c *ecc.Curve, p ecc.AffinePoint) Status
	Keygen      func(c *ecc.Curve, rng ecc.RNG, priv []bignum.Limb) (ecc.AffinePoint, Status)
}

// EcdsaOps groups the L3 function-pointer slot.
type EcdsaOps struct {
	Verify func(c *ecc.Curve, q ecc.AffinePoint, r, s, hash []byte) Status
}

// Ops is the full dispatch table. Every slot the software backend supports
// is non-nil after NewSoftwareOps; unpopulated slots (e.g. a hardware
// backend that does not implement a given primitive) should be left nil, in
// which case Ctx methods return ErrApiEntry.
type Ops struct {
	Bignum BignumOps
	Ecc    EccOps
	Ecdsa  EcdsaOps
}

// NewSoftwareOps returns an Ops table with every slot wired to this
// module's pure-software implementations.
func NewSoftwareOps() *Ops {
	return &Ops{
		Bignum: BignumOps{
			Add:  bignum.Add,
			Sub:  bignum.Sub,
			Mult: bignum.Mult,
			Div: func(a []bignum.Limb, na int, b []bignum.Limb, nb int, q, r []bignum.Limb) Status {
				return bignum.Div(a, na, b, nb, q, r)
			},
			ModAdd: func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status { return ctx.ModAdd(a, b, out) },
			ModSub: func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status { return ctx.ModSub(a, b, out) },
			ModMul: func(ctx bignum.ModCtx, a, b, out []bignum.Limb) Status { return ctx.ModMult(a, b, out) },
			ModInv: func(ctx bignum.ModCtx, a, out []bignum.Limb) Status { return ctx.ModInv(a, out) },
		},
		Ecc: EccOps{
			PointDouble: ecc.DoubleJacobian,
			PointAdd:    ecc.AddJacobian,
			MultCoZ:     ecc.MultCoZ,
			OnCurve:     ecc.PointOnCurve,
			Keygen:      ecc.KeypairGeneration,
		},
		Ecdsa: EcdsaOps{
			Verify: ecdsa.Verify,
		},
	}
}

// Ctx binds an Ops table (a backend selection) to a particular curve. All
// higher-level call sites go through a Ctx rather than calling package ecc
// or package ecdsa directly, so swapping Ops swaps every downstream call.
type Ctx struct {
	Ops   *Ops
	Curve *ecc.Curve
}

// NewCtx builds a Ctx bound to curve c using the pure-software Ops table.
func NewCtx(c *ecc.Curve) *Ctx {
	return &Ctx{Ops: NewSoftwareOps(), Curve: c}
}

// NewCtxWithOps builds a Ctx bound to curve c using a caller-supplied Ops
// table, e.g. one with hardware-accelerated slots substituted in.
func NewCtxWithOps(c *ecc.Curve, ops *Ops) *Ctx {
	return &Ctx{Ops: ops, Curve: c}
}

// Verify dispatches to Ops.Ecdsa.Verify, returning ErrApiEntry if the
// backend has not populated that slot.
func (ctx *Ctx) Verify(q ecc.AffinePoint, r, s, hash []byte) Status {
	if ctx.Ops == nil || ctx.Ops.Ecdsa.Verify == nil {
		return ErrApiEntry
	}
	return ctx.Ops.Ecdsa.Verify(ctx.Curve, q, r, s, hash)
}

// Keygen dispatches to Ops.Ecc.Keygen.
func (ctx *Ctx) Keygen(rng ecc.RNG, priv []bignum.Limb) (ecc.AffinePoint, Status) {
	if ctx.Ops == nil || ctx.Ops.Ecc.Keygen == nil {
		return ecc.AffinePoint{}, ErrApiEntry
	}
	return ctx.Ops.Ecc.Keygen(ctx.Curve, rng, priv)
}

// OnCurve dispatches to Ops.Ecc.OnCurve.
func (ctx *Ctx) OnCurve(p ecc.AffinePoint) Status {
	if ctx.Ops == nil || ctx.Ops.Ecc.OnCurve == nil {
		return ErrApiEntry
	}
	return ctx.Ops.Ecc.OnCurve(ctx.Curve, p)
}

// MultCoZ dispatches to Ops.Ecc.MultCoZ.
func (ctx *Ctx) MultCoZ(g ecc.AffinePoint, k []bignum.Limb, kn int) (ecc.JacobianPoint, Status) {
	if ctx.Ops == nil || ctx.Ops.Ecc.MultCoZ == nil {
		return ecc.JacobianPoint{}, ErrApiEntry
	}
	return ctx.Ops.Ecc.MultCoZ(ctx.Curve, g, k, kn)
}
