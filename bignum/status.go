// Package bignum implements arbitrary-precision arithmetic over fixed-width
// little-endian 32-bit-limb arrays: the L0/L1 layers of the core (limb
// primitives and the bignum engine). Every exported operation takes explicit
// limb counts alongside the slices it operates on, mirroring the C
// contracts this engine is ported from rather than relying solely on Go's
// slice length.
package bignum

import "fmt"

// Status is the error taxonomy every bignum operation returns. The zero
// value is Ok, matching the convention that a freshly-zeroed status means
// success unless explicitly set otherwise.
type Status int

const (
	Ok Status = iota
	InvalidInput
	InvalidLength
	ZeroDivision
	NotInversible
	ParityError
	ErrPoint
	ErrApiEntry
	RngError
	ErrInternal
)

var statusText = map[Status]string{
	Ok:            "ok",
	InvalidInput:  "invalid input",
	InvalidLength: "invalid length",
	ZeroDivision:  "division by zero",
	NotInversible: "not inversible",
	ParityError:   "modulus must be odd",
	ErrPoint:      "point off-curve or out of range",
	ErrApiEntry:   "dispatch slot not set",
	RngError:      "rng callback failed",
	ErrInternal:   "internal error",
}

func (s Status) Error() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("bignum: unknown status %d", int(s))
}

// Err returns nil for Ok and the Status itself (as an error) otherwise, so
// call sites can use the usual `if err := f(); err != nil` idiom while still
// being able to switch on the concrete Status via errors.As.
func (s Status) Err() error {
	if s == Ok {
		return nil
	}
	return s
}
