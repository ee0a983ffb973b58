package bitlogic

import "bit-lattigo/bitrlwe"

// Xor adds the two ciphertexts: addition mod 2 is exactly XOR on the
// underlying bits. The output degree is max(d0, d1).
func (pctx *PublicContext) Xor(c0, c1 *bitrlwe.Ciphertext) (*bitrlwe.Ciphertext, error) {
	return pctx.eval.AddNew(c0, c1)
}

// Not flips the decoded bit by XOR-ing with the public encryption of 1.
func (pctx *PublicContext) Not(c0 *bitrlwe.Ciphertext) (*bitrlwe.Ciphertext, error) {
	return pctx.Xor(c0, pctx.One)
}

// And multiplies the two ciphertexts. The output degree is d0+d1.
func (pctx *PublicContext) And(c0, c1 *bitrlwe.Ciphertext) (*bitrlwe.Ciphertext, error) {
	return pctx.eval.MulNew(c0, c1)
}

// Or is built by De Morgan's law, a|b = !(!a & !b). It costs one
// multiplication, so the output degree grows exactly like And's.
func (pctx *PublicContext) Or(c0, c1 *bitrlwe.Ciphertext) (*bitrlwe.Ciphertext, error) {

	n0, err := pctx.Not(c0)
	if err != nil {
		return nil, err
	}

	n1, err := pctx.Not(c1)
	if err != nil {
		return nil, err
	}

	and, err := pctx.And(n0, n1)
	if err != nil {
		return nil, err
	}

	return pctx.Not(and)
}
