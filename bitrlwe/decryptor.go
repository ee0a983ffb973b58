package bitrlwe

import "github.com/ALTree/bigfloat"
import "github.com/ldsec/lattigo/v2/ring"

import "fmt"
import "math"
import "math/big"

// Decryptor decrypts ciphertexts of any degree with a secret key. It stores
// a small pool of polynomials for intermediate values and is not safe for
// concurrent use.
type Decryptor struct {
	params Parameters
	ringQ  *ring.Ring
	poolQ  [2]*ring.Poly
	coeffs []*big.Int
}

// NewDecryptor instantiates a new Decryptor over the given parameter set.
func NewDecryptor(params Parameters) *Decryptor {

	ringQ := params.RingQ()

	coeffs := make([]*big.Int, ringQ.N)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}

	return &Decryptor{
		params: params,
		ringQ:  ringQ,
		poolQ:  [2]*ring.Poly{ringQ.NewPoly(), ringQ.NewPoly()},
		coeffs: coeffs,
	}
}

// phase evaluates ct as a polynomial in the secret key, sum_i ct[i]*s^i,
// accumulated in the NTT domain with a Montgomery power ladder. The result is
// returned in the coefficient domain and owned by the pool.
func (dec *Decryptor) phase(ct *Ciphertext, sk *SecretKey) *ring.Poly {

	if ct == nil || ct.Degree() < 1 {
		panic("cannot Decrypt: ciphertext degree must be at least 1")
	}

	ringQ := dec.ringQ

	acc := dec.poolQ[0]
	skPow := dec.poolQ[1]

	acc.Copy(ct.Value[0])
	skPow.Copy(sk.Value)

	for i := 1; i < len(ct.Value); i++ {
		ringQ.MulCoeffsMontgomeryAndAdd(ct.Value[i], skPow, acc)
		if i+1 < len(ct.Value) {
			ringQ.MulCoeffsMontgomery(skPow, sk.Value, skPow)
		}
	}

	ringQ.Reduce(acc, acc)
	ringQ.InvNTT(acc, acc)

	return acc
}

// Decrypt evaluates ct at the secret key and rounds the centered phase to
// bits. A degree-1 ciphertext [b, -a] runs through the same ladder as
// b + (-a)*s, so the generalized and two-term decoders agree by construction.
//
// Decrypt fails with ErrNoiseOverflow once any phase coefficient magnitude
// reaches Q/4: past that point the accumulated noise is one doubling away
// from corrupting bits, so the result is treated as unreliable instead of
// being returned silently wrong.
func (dec *Decryptor) Decrypt(ct *Ciphertext, sk *SecretKey) (*Message, error) {

	acc := dec.phase(ct, sk)
	dec.ringQ.PolyToBigint(acc, dec.coeffs)

	bits, maxNorm := RoundCoeffsCentered(dec.params.Modulus(), dec.coeffs, 2)

	if maxNorm.Cmp(dec.params.QuarterModulus()) >= 0 {
		return nil, fmt.Errorf("%w: phase norm of %d bits against a %d-bit modulus",
			ErrNoiseOverflow, maxNorm.BitLen(), dec.params.Modulus().BitLen())
	}

	msg := NewMessage(dec.params)
	copy(msg.Value, bits)

	return msg, nil
}

// NoiseBudget returns the log2 of the margin left before decryption fails,
// log2((Q/2) / |phase|_inf), clamped at zero. The message bits themselves
// contribute at most one unit to the norm, a negligible overestimate of the
// noise.
func (dec *Decryptor) NoiseBudget(ct *Ciphertext, sk *SecretKey) float64 {

	acc := dec.phase(ct, sk)
	dec.ringQ.PolyToBigint(acc, dec.coeffs)

	_, maxNorm := RoundCoeffsCentered(dec.params.Modulus(), dec.coeffs, 2)
	if maxNorm.Sign() == 0 {
		maxNorm.SetUint64(1)
	}

	half := new(big.Float).SetInt(new(big.Int).Rsh(dec.params.Modulus(), 1))
	norm := new(big.Float).SetInt(maxNorm)

	ratio := new(big.Float).Quo(half, norm)
	if ratio.Cmp(big.NewFloat(1)) <= 0 {
		return 0
	}

	budget, _ := new(big.Float).Quo(bigfloat.Log(ratio), big.NewFloat(math.Ln2)).Float64()
	return budget
}
