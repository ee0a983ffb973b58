package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"

// SecretKey is a bit-RLWE secret key. Value is kept in the NTT and Montgomery
// domains and its coefficients are small by construction (see KeyGenerator);
// both correct decoding and security depend on that bound. A SecretKey is
// never embedded in any public structure.
type SecretKey struct {
	Value *ring.Poly
}

// NewSecretKey returns a zero secret key over the given parameter set.
func NewSecretKey(params Parameters) *SecretKey {
	sk := new(SecretKey)
	sk.Value = params.RingQ().NewPoly()
	sk.Value.IsNTT = true
	return sk
}

// CopyNew creates a deep copy of the receiver key and returns it.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew()}
}
