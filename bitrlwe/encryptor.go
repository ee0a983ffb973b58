package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"
import "github.com/ldsec/lattigo/v2/utils"

import "fmt"
import "math/big"

// Encryptor encrypts bit messages under a secret key. It stores a small pool
// of polynomials for intermediate values and is not safe for concurrent use.
type Encryptor struct {
	params Parameters

	ringQ *ring.Ring
	poolQ [2]*ring.Poly

	uniformSampler *ring.UniformSampler
	boundedSampler *BoundedUniformSampler

	boundBig *big.Int
}

// NewEncryptor instantiates a new Encryptor over the given parameter set.
func NewEncryptor(params Parameters) *Encryptor {

	prng, err := utils.NewPRNG()
	if err != nil {
		panic(err)
	}

	ringQ := params.RingQ()

	return &Encryptor{
		params:         params,
		ringQ:          ringQ,
		poolQ:          [2]*ring.Poly{ringQ.NewPoly(), ringQ.NewPoly()},
		uniformSampler: ring.NewUniformSampler(prng, ringQ),
		boundedSampler: NewBoundedUniformSampler(params),
		boundBig:       new(big.Int),
	}
}

// NewSeededEncryptor instantiates an Encryptor whose mask and noise sources
// are both derived from seed. Two encryptors fed the same seed produce
// identical ciphertexts for identical inputs.
func NewSeededEncryptor(params Parameters, seed []byte) *Encryptor {

	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		panic(err)
	}

	ringQ := params.RingQ()

	return &Encryptor{
		params:         params,
		ringQ:          ringQ,
		poolQ:          [2]*ring.Poly{ringQ.NewPoly(), ringQ.NewPoly()},
		uniformSampler: ring.NewUniformSampler(prng, ringQ),
		boundedSampler: NewSeededBoundedUniformSampler(params, seed),
		boundBig:       new(big.Int),
	}
}

// EncryptPolyNew encrypts the plaintext ring element pt (coefficient domain,
// message coefficients expected in {0,1}) and returns the fresh degree-1
// ciphertext
//
//	[2e + a*s + pt, -a]
//
// with e bounded-uniform in [0, errorBound) per coefficient and a uniform
// over the full ring. Both components are in the NTT domain. pt is not
// modified. Decoding stays correct while 2*errorBound*N < Q/2.
func (enc *Encryptor) EncryptPolyNew(pt *ring.Poly, sk *SecretKey, errorBound uint64) (*Ciphertext, error) {

	if errorBound < 1 {
		return nil, fmt.Errorf("%w: error bound must be at least 1", ErrInvalidParameter)
	}

	ringQ := enc.ringQ
	ct := NewCiphertextNTT(enc.params, 1)

	// e <- U([0, errorBound))^N
	e := enc.poolQ[0]
	enc.boundBig.SetUint64(errorBound)
	if err := enc.boundedSampler.Read(enc.boundBig, e); err != nil {
		return nil, err
	}

	// ct[0] = NTT(2e + pt)
	ringQ.MulScalar(e, 2, e)
	ringQ.Add(e, pt, e)
	ringQ.NTT(e, ct.Value[0])

	// ct[0] += a*s, ct[1] = -a
	enc.uniformSampler.Read(ct.Value[1])
	ringQ.MulCoeffsMontgomeryAndAdd(ct.Value[1], sk.Value, ct.Value[0])
	ringQ.Neg(ct.Value[1], ct.Value[1])

	return ct, nil
}

// EncryptNew encodes msg as a bit polynomial and encrypts it under sk.
func (enc *Encryptor) EncryptNew(msg *Message, sk *SecretKey, errorBound uint64) (*Ciphertext, error) {

	if len(msg.Value) > enc.params.N() {
		return nil, fmt.Errorf("%w: message has %d slots, ring degree is %d", ErrInvalidParameter, len(msg.Value), enc.params.N())
	}

	pt := enc.poolQ[1]
	enc.encodeBits(msg, pt)

	return enc.EncryptPolyNew(pt, sk, errorBound)
}

// encodeBits writes the bit vector of msg into a coefficient-domain poly.
func (enc *Encryptor) encodeBits(msg *Message, pt *ring.Poly) {
	pt.Zero()
	for j, b := range msg.Value {
		if b&1 == 1 {
			for i := range enc.ringQ.Modulus {
				pt.Coeffs[i][j] = 1
			}
		}
	}
	pt.IsNTT = false
}
