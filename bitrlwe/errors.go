package bitrlwe

import "errors"

var (
	// ErrInvalidParameter is returned on malformed scheme configuration:
	// non-positive ring degree, a non-prime modulus factor, an oversized
	// coefficient vector or a zero noise bound.
	ErrInvalidParameter = errors.New("bitrlwe: invalid parameter")

	// ErrLengthMismatch reports a ciphertext component count that survived
	// padding. It indicates a logic defect, never a user error: operands of
	// different degrees are always aligned before evaluation.
	ErrLengthMismatch = errors.New("bitrlwe: ciphertext length mismatch")

	// ErrNoiseOverflow reports a decryption whose phase reached the rounding
	// boundary. The decoded bits would be unreliable past this point.
	ErrNoiseOverflow = errors.New("bitrlwe: noise budget exhausted")
)
