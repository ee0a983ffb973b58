package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"
import "golang.org/x/crypto/blake2b"

import "crypto/rand"
import "fmt"
import "io"
import "math/big"

// BoundedUniformSampler draws ring elements whose coefficients are
// independent uniform samples from [0, bound) for a caller-supplied bound.
// The engine's own samplers only cover full-range uniform, ternary and
// gaussian draws, so the bounded case is built on an injectable byte source.
// A BoundedUniformSampler is not safe for concurrent use.
type BoundedUniformSampler struct {
	ringQ  *ring.Ring
	source io.Reader
	coeffs []*big.Int
}

// NewBoundedUniformSampler returns a sampler reading from crypto/rand.
func NewBoundedUniformSampler(params Parameters) *BoundedUniformSampler {
	return newBoundedUniformSampler(params, rand.Reader)
}

// NewSeededBoundedUniformSampler returns a deterministic sampler whose byte
// source is a blake2b XOF expanded from seed. Two samplers fed the same seed
// produce the same sequence of draws.
func NewSeededBoundedUniformSampler(params Parameters, seed []byte) *BoundedUniformSampler {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err := xof.Write(seed); err != nil {
		panic(err)
	}
	return newBoundedUniformSampler(params, xof)
}

func newBoundedUniformSampler(params Parameters, source io.Reader) *BoundedUniformSampler {
	s := new(BoundedUniformSampler)
	s.ringQ = params.RingQ()
	s.source = source
	s.coeffs = make([]*big.Int, s.ringQ.N)
	for i := range s.coeffs {
		s.coeffs[i] = new(big.Int)
	}
	return s
}

// Read fills all coefficients of pol with fresh draws from [0, bound). The
// output is in the coefficient domain.
func (s *BoundedUniformSampler) Read(bound *big.Int, pol *ring.Poly) error {

	if bound.Sign() <= 0 {
		return fmt.Errorf("%w: sampling bound must be positive", ErrInvalidParameter)
	}

	for i := range s.coeffs {
		c, err := rand.Int(s.source, bound)
		if err != nil {
			return err
		}
		s.coeffs[i].Set(c)
	}

	s.ringQ.SetCoefficientsBigint(s.coeffs, pol)
	pol.IsNTT = false

	return nil
}

// ReadNew samples a fresh ring element with coefficients in [0, bound).
func (s *BoundedUniformSampler) ReadNew(bound *big.Int) (*ring.Poly, error) {
	pol := s.ringQ.NewPoly()
	if err := s.Read(bound, pol); err != nil {
		return nil, err
	}
	return pol, nil
}
