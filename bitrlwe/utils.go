package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"

import "fmt"
import "math/big"

// PolyFromCoeffs embeds a coefficient vector into a ring element: coefficient
// i of the input becomes coefficient i of the result, reduced into [0, Q).
// Vectors longer than the ring degree are rejected rather than folded by the
// reduction polynomial; callers must pre-reduce. The output is in the
// coefficient domain.
func PolyFromCoeffs(params Parameters, coeffs []*big.Int) (*ring.Poly, error) {

	ringQ := params.RingQ()

	if len(coeffs) > ringQ.N {
		return nil, fmt.Errorf("%w: %d coefficients exceed ring degree %d", ErrInvalidParameter, len(coeffs), ringQ.N)
	}

	padded := make([]*big.Int, ringQ.N)
	for i := range padded {
		if i < len(coeffs) && coeffs[i] != nil {
			padded[i] = coeffs[i]
		} else {
			padded[i] = new(big.Int)
		}
	}

	pol := ringQ.NewPoly()
	ringQ.SetCoefficientsBigint(padded, pol)

	return pol, nil
}

// CoeffsFromPoly returns the CRT reconstruction of all ring-degree
// coefficients of pol, each in [0, Q). pol must be in the coefficient domain.
func CoeffsFromPoly(params Parameters, pol *ring.Poly) []*big.Int {
	ringQ := params.RingQ()
	coeffs := make([]*big.Int, ringQ.N)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	ringQ.PolyToBigint(pol, coeffs)
	return coeffs
}

// RoundCoeffsCentered reduces every coefficient to the target modulus after a
// centered lift: a value above Q/2 is treated as the negative residue c - Q
// before the Euclidean reduction. It also reports the largest centered
// magnitude, which callers use for overflow detection and noise budgeting.
// For odd Q the parity of c - Q is 1 - (c mod 2), so on every reachable input
// this rule coincides with the flipped-bit variant.
func RoundCoeffsCentered(modulus *big.Int, coeffs []*big.Int, target uint64) (bits []uint64, maxNorm *big.Int) {

	bound := new(big.Int).Rsh(modulus, 1)
	targetBig := new(big.Int).SetUint64(target)

	bits = make([]uint64, len(coeffs))
	maxNorm = new(big.Int)

	centered := new(big.Int)
	residue := new(big.Int)

	for i, c := range coeffs {
		centered.Set(c)
		if centered.Cmp(bound) > 0 {
			centered.Sub(centered, modulus)
		}

		// big.Int.Mod is Euclidean: the result is in [0, target) even for
		// negative residues.
		residue.Mod(centered, targetBig)
		bits[i] = residue.Uint64()

		centered.Abs(centered)
		if centered.Cmp(maxNorm) > 0 {
			maxNorm.Set(centered)
		}
	}

	return bits, maxNorm
}
