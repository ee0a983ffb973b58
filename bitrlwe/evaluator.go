package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"
import "github.com/ldsec/lattigo/v2/utils"

import "fmt"

// Evaluator performs homomorphic operations on ciphertexts. It stores a small
// pool of polynomials for intermediate values and is not safe for concurrent
// use; distinct Evaluators over the same Parameters are.
type Evaluator struct {
	params Parameters
	ringQ  *ring.Ring
	poolQ  [1]*ring.Poly
}

// NewEvaluator creates a new Evaluator over the given parameter set.
func NewEvaluator(params Parameters) *Evaluator {
	ringQ := params.RingQ()
	return &Evaluator{
		params: params,
		ringQ:  ringQ,
		poolQ:  [1]*ring.Poly{ringQ.NewPoly()},
	}
}

func (eval *Evaluator) newCiphertextBinary(op0, op1 *Ciphertext) *Ciphertext {
	return NewCiphertextNTT(eval.params, utils.MaxInt(op0.Degree(), op1.Degree()))
}

// evaluateInPlace applies evaluate componentwise after aligning the operands:
// the shorter operand is read as zero-padded at its high-degree end, so
// mismatched degrees are always legal. A post-alignment length disagreement
// can only come from a defect in this very logic and is reported as
// ErrLengthMismatch instead of miscomputing.
func (eval *Evaluator) evaluateInPlace(op0, op1, ctOut *Ciphertext, evaluate func(*ring.Poly, *ring.Poly, *ring.Poly)) error {

	if len(ctOut.Value) != utils.MaxInt(len(op0.Value), len(op1.Value)) {
		return fmt.Errorf("%w: output has %d components for operands of %d and %d",
			ErrLengthMismatch, len(ctOut.Value), len(op0.Value), len(op1.Value))
	}

	for i := range ctOut.Value {
		switch {
		case i >= len(op0.Value):
			ctOut.Value[i].Copy(op1.Value[i])
		case i >= len(op1.Value):
			ctOut.Value[i].Copy(op0.Value[i])
		default:
			evaluate(op0.Value[i], op1.Value[i], ctOut.Value[i])
		}
	}

	return nil
}

// AddNew adds op0 to op1 and returns the result in a newly created element of
// degree max(d0, d1). Addition is commutative and associative, and decoding
// distributes over it up to the noise budget.
func (eval *Evaluator) AddNew(op0, op1 *Ciphertext) (*Ciphertext, error) {
	ctOut := eval.newCiphertextBinary(op0, op1)
	if err := eval.evaluateInPlace(op0, op1, ctOut, eval.ringQ.Add); err != nil {
		return nil, err
	}
	return ctOut, nil
}

// SubNew subtracts op1 from op0 and returns the result in a newly created
// element of degree max(d0, d1).
func (eval *Evaluator) SubNew(op0, op1 *Ciphertext) (*Ciphertext, error) {

	ctOut := eval.newCiphertextBinary(op0, op1)
	if err := eval.evaluateInPlace(op0, op1, ctOut, eval.ringQ.Sub); err != nil {
		return nil, err
	}

	// components copied from op1's padded tail carry the wrong sign
	for i := len(op0.Value); i < len(ctOut.Value); i++ {
		eval.ringQ.Neg(ctOut.Value[i], ctOut.Value[i])
	}

	return ctOut, nil
}

// NegNew returns -op0 in a newly created element.
func (eval *Evaluator) NegNew(op0 *Ciphertext) *Ciphertext {
	ctOut := NewCiphertextNTT(eval.params, op0.Degree())
	for i := range ctOut.Value {
		eval.ringQ.Neg(op0.Value[i], ctOut.Value[i])
	}
	return ctOut
}

// MulNew multiplies op0 by op1 and returns the result in a newly created
// element of degree d0+d1. The product of two polynomials in the secret key
// is their convolution over key powers,
//
//	out[t] = sum_{i+j=t} op0[i] * op1[j]
//
// so no evaluation key is needed, but every multiplication strictly increases
// the ciphertext degree and roughly squares the noise. Deep circuits must
// budget for both.
func (eval *Evaluator) MulNew(op0, op1 *Ciphertext) (*Ciphertext, error) {

	ringQ := eval.ringQ
	ctOut := NewCiphertextNTT(eval.params, op0.Degree()+op1.Degree())

	if len(ctOut.Value) != len(op0.Value)+len(op1.Value)-1 {
		return nil, fmt.Errorf("%w: product has %d components, expected %d",
			ErrLengthMismatch, len(ctOut.Value), len(op0.Value)+len(op1.Value)-1)
	}

	opM := eval.poolQ[0]
	for j := range op1.Value {
		ringQ.MForm(op1.Value[j], opM)
		for i := range op0.Value {
			ringQ.MulCoeffsMontgomeryAndAdd(op0.Value[i], opM, ctOut.Value[i+j])
		}
	}

	return ctOut, nil
}
