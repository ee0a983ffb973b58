package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"
import "github.com/ldsec/lattigo/v2/utils"

// KeyGenerator is a structure that samples secret keys with small
// coefficients.
type KeyGenerator struct {
	params          Parameters
	ringQ           *ring.Ring
	gaussianSampler *ring.GaussianSampler
}

// NewKeyGenerator creates a new KeyGenerator, from which secret keys of the
// supported distributions can be generated.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := utils.NewPRNG()
	if err != nil {
		panic(err)
	}

	keygen := new(KeyGenerator)
	keygen.params = params
	keygen.ringQ = params.RingQ()
	keygen.gaussianSampler = ring.NewGaussianSampler(prng, keygen.ringQ, params.Sigma(), int(6*params.Sigma()))

	return keygen
}

// genSecretKeyFromSampler generates a new SecretKey sampled from the provided
// Sampler. The output SecretKey is in NTT form and MForm.
func (keygen *KeyGenerator) genSecretKeyFromSampler(sampler ring.Sampler) *SecretKey {
	ringQ := keygen.ringQ
	sk := NewSecretKey(keygen.params)
	sampler.Read(sk.Value)
	ringQ.NTT(sk.Value, sk.Value)
	ringQ.MForm(sk.Value, sk.Value)
	return sk
}

// GenSecretKey generates a new SecretKey with the distribution [1/3, 1/3, 1/3].
func (keygen *KeyGenerator) GenSecretKey() (sk *SecretKey) {
	return keygen.GenSecretKeyWithDistrib(1.0 / 3)
}

// GenSecretKeyWithDistrib generates a new ternary SecretKey with the
// distribution [(1-p)/2, p, (1-p)/2].
func (keygen *KeyGenerator) GenSecretKeyWithDistrib(p float64) (sk *SecretKey) {
	prng, err := utils.NewPRNG()
	if err != nil {
		panic(err)
	}
	ternarySampler := ring.NewTernarySampler(prng, keygen.ringQ, p, false)
	return keygen.genSecretKeyFromSampler(ternarySampler)
}

// GenSecretKeySparse generates a new SecretKey with exactly hw non-zero
// coefficients.
func (keygen *KeyGenerator) GenSecretKeySparse(hw int) (sk *SecretKey) {
	prng, err := utils.NewPRNG()
	if err != nil {
		panic(err)
	}
	ternarySampler := ring.NewTernarySamplerSparse(prng, keygen.ringQ, hw, false)
	return keygen.genSecretKeyFromSampler(ternarySampler)
}

// GenSecretKeyGaussian generates a new SecretKey with the error distribution.
func (keygen *KeyGenerator) GenSecretKeyGaussian() (sk *SecretKey) {
	return keygen.genSecretKeyFromSampler(keygen.gaussianSampler)
}

// GenSecretKeyFromSeed deterministically generates a ternary SecretKey from
// the given seed. Two generators fed the same seed produce the same key.
func (keygen *KeyGenerator) GenSecretKeyFromSeed(seed []byte) (sk *SecretKey) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		panic(err)
	}
	ternarySampler := ring.NewTernarySampler(prng, keygen.ringQ, 1.0/3, false)
	return keygen.genSecretKeyFromSampler(ternarySampler)
}
