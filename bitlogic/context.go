// Package bitlogic expresses boolean gates over the bitrlwe homomorphic
// algebra: XOR is ciphertext addition, AND is ciphertext multiplication, and
// the remaining gates are compositions of those two with public encryptions
// of the constants 0 and 1.
package bitlogic

import "bit-lattigo/bitrlwe"

// PublicContext bundles everything the gate layer needs without the secret
// key: the parameter set, an evaluator, the noise bound, and fresh
// encryptions of the two boolean constants. Only NewPublicContext touches the
// secret key; every gate evaluation afterwards is key-free.
type PublicContext struct {
	params bitrlwe.Parameters
	eval   *bitrlwe.Evaluator

	// Zero and One encrypt the constants 0 and 1. One drives Not and Or.
	Zero *bitrlwe.Ciphertext
	One  *bitrlwe.Ciphertext

	// Bound is the noise bound the constants were encrypted with.
	Bound uint64
}

// NewPublicContext encrypts the boolean constants under sk with the given
// noise bound and returns a context usable without sk from then on.
func NewPublicContext(params bitrlwe.Parameters, sk *bitrlwe.SecretKey, errorBound uint64) (*PublicContext, error) {

	enc := bitrlwe.NewEncryptor(params)

	zero, err := enc.EncryptNew(bitrlwe.NewMessage(params), sk, errorBound)
	if err != nil {
		return nil, err
	}

	oneMsg := bitrlwe.NewMessage(params)
	oneMsg.Value[0] = 1
	one, err := enc.EncryptNew(oneMsg, sk, errorBound)
	if err != nil {
		return nil, err
	}

	return &PublicContext{
		params: params,
		eval:   bitrlwe.NewEvaluator(params),
		Zero:   zero,
		One:    one,
		Bound:  errorBound,
	}, nil
}

// Parameters returns the parameter set the context was built over.
func (pctx *PublicContext) Parameters() bitrlwe.Parameters {
	return pctx.params
}
