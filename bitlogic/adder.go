package bitlogic

import "bit-lattigo/bitrlwe"

// HalfAdder returns sum = a^b and carry = a&b.
func (pctx *PublicContext) HalfAdder(a, b *bitrlwe.Ciphertext) (sum, carry *bitrlwe.Ciphertext, err error) {

	if sum, err = pctx.Xor(a, b); err != nil {
		return nil, nil, err
	}

	if carry, err = pctx.And(a, b); err != nil {
		return nil, nil, err
	}

	return sum, carry, nil
}

// FullAdder returns sum = a^b^cin and cout = (a&b) ^ (cin&(a^b)). It performs
// two multiplications, so the carry degree grows twice as fast as a single
// gate's.
func (pctx *PublicContext) FullAdder(a, b, cin *bitrlwe.Ciphertext) (sum, cout *bitrlwe.Ciphertext, err error) {

	axb, err := pctx.Xor(a, b)
	if err != nil {
		return nil, nil, err
	}

	if sum, err = pctx.Xor(axb, cin); err != nil {
		return nil, nil, err
	}

	ab, err := pctx.And(a, b)
	if err != nil {
		return nil, nil, err
	}

	cab, err := pctx.And(cin, axb)
	if err != nil {
		return nil, nil, err
	}

	if cout, err = pctx.Xor(ab, cab); err != nil {
		return nil, nil, err
	}

	return sum, cout, nil
}

// Select returns sel ? a : b, computed as (sel&a) ^ (!sel&b).
func (pctx *PublicContext) Select(sel, a, b *bitrlwe.Ciphertext) (*bitrlwe.Ciphertext, error) {

	picked, err := pctx.And(sel, a)
	if err != nil {
		return nil, err
	}

	nsel, err := pctx.Not(sel)
	if err != nil {
		return nil, err
	}

	rejected, err := pctx.And(nsel, b)
	if err != nil {
		return nil, err
	}

	return pctx.Xor(picked, rejected)
}
