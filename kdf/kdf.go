// Package kdf implements the ANSI X9.63 key derivation function: repeated
// hashing of a shared secret, a big-endian counter and shared info, used to
// stretch an ECC-derived shared secret (e.g. an ECDH output) into a key of
// arbitrary length.
package kdf

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
)

const hashSize = 32

// X963 derives derivedKeyLen bytes from sharedSecret and sharedInfo using
// SHA-256 as the underlying hash, per ANSI X9.63: each iteration hashes
// sharedSecret || counter(big-endian uint32) || sharedInfo, counter starting
// at 1 and incrementing every iteration.
func X963(sharedSecret, sharedInfo []byte, derivedKeyLen int) ([]byte, error) {
	if derivedKeyLen <= 0 {
		return nil, ErrInvalidLength
	}

	out := make([]byte, derivedKeyLen)
	var counter [4]byte
	binary.BigEndian.PutUint32(counter[:], 1)

	remaining := derivedKeyLen
	offset := 0
	for remaining > 0 {
		h := sha256simd.New()
		h.Write(sharedSecret)
		h.Write(counter[:])
		h.Write(sharedInfo)
		digest := h.Sum(nil)

		n := hashSize
		if remaining < n {
			n = remaining
		}
		copy(out[offset:offset+n], digest[:n])
		offset += n
		remaining -= n

		binary.BigEndian.PutUint32(counter[:], binary.BigEndian.Uint32(counter[:])+1)
	}
	return out, nil
}

// kdfError is a small sentinel type, matching the taxonomy style used
// elsewhere in this module rather than ad hoc errors.New calls for a single
// well-known condition.
type kdfError string

func (e kdfError) Error() string { return string(e) }

// ErrInvalidLength is returned when a non-positive output length is requested.
const ErrInvalidLength = kdfError("kdf: derived key length must be positive")
