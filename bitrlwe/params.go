package bitrlwe

import "github.com/ldsec/lattigo/v2/rlwe"

import "fmt"
import "math/big"

// ParametersLiteral is a literal representation of bit-RLWE parameters. It
// has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParameters function is used to generate
// the actual checked parameters from the literal representation.
type ParametersLiteral struct {
	LogN  int      // Log ring degree (power of 2)
	Q     []uint64 // Modulus chain (distinct NTT-friendly primes)
	Sigma float64  // Gaussian key sampling standard deviation
}

// Parameters represents a parameter set for the bit-RLWE scheme: the ring
// Z_Q[z]/(z^N+1) every other component operates over. Its fields are private
// and immutable once constructed.
type Parameters struct {
	rlwe.Parameters
	modulus  *big.Int
	quarterQ *big.Int
}

// NewParameters builds a checked parameter set from a literal. Each modulus
// factor is checked for primality before the chain is handed to the ring
// engine, which additionally requires NTT-friendliness (qi = 1 mod 2N).
func NewParameters(pl ParametersLiteral) (Parameters, error) {

	if pl.LogN <= 0 {
		return Parameters{}, fmt.Errorf("%w: non-positive ring degree", ErrInvalidParameter)
	}

	if len(pl.Q) == 0 {
		return Parameters{}, fmt.Errorf("%w: empty modulus chain", ErrInvalidParameter)
	}

	probe := new(big.Int)
	for _, qi := range pl.Q {
		if !probe.SetUint64(qi).ProbablyPrime(0) {
			return Parameters{}, fmt.Errorf("%w: modulus factor %d is not prime", ErrInvalidParameter, qi)
		}
	}

	sigma := pl.Sigma
	if sigma == 0 {
		sigma = rlwe.DefaultSigma
	}

	rlweParams, err := rlwe.NewParametersFromLiteral(
		rlwe.ParametersLiteral{LogN: pl.LogN, Q: pl.Q, P: []uint64{}, Sigma: sigma},
	)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %s", ErrInvalidParameter, err.Error())
	}

	params := Parameters{Parameters: rlweParams}
	params.modulus = new(big.Int).Set(rlweParams.RingQ().ModulusBigint)
	params.quarterQ = new(big.Int).Rsh(params.modulus, 2)

	return params, nil
}

// Modulus returns the full coefficient modulus Q as a big integer.
func (p Parameters) Modulus() *big.Int {
	return p.modulus
}

// QuarterModulus returns floor(Q/4), the phase magnitude at which decryption
// reports a noise overflow.
func (p Parameters) QuarterModulus() *big.Int {
	return p.quarterQ
}
