package bitrlwe

import "github.com/ldsec/lattigo/v2/ring"

import "fmt"

// Ciphertext is an ordered sequence of ring elements: component i is the
// coefficient of key^i in the decryption relation
//
//	m + 2e = sum_i Value[i] * s^i  (mod Q, z^N+1)
//
// A fresh encryption has degree 1 and holds [b, -a]. The degree grows under
// every multiplication since the scheme has no relinearization step.
type Ciphertext struct {
	Value []*ring.Poly
}

// NewCiphertext returns a new ciphertext of the given degree with zero value.
func NewCiphertext(params Parameters, degree int) *Ciphertext {

	if degree < 1 {
		panic("cannot NewCiphertext: degree must be at least 1")
	}

	el := new(Ciphertext)
	el.Value = make([]*ring.Poly, degree+1)
	for i := range el.Value {
		el.Value[i] = ring.NewPoly(params.N(), params.QCount())
	}

	return el
}

// NewCiphertextNTT returns a new zero ciphertext with the NTT flags set.
func NewCiphertextNTT(params Parameters, degree int) *Ciphertext {
	el := NewCiphertext(params, degree)
	for i := range el.Value {
		el.Value[i].IsNTT = true
	}
	return el
}

// Degree returns the degree of the target element in the secret key.
func (el *Ciphertext) Degree() int {
	return len(el.Value) - 1
}

// CopyNew creates a new element as a copy of the target element.
func (el *Ciphertext) CopyNew() *Ciphertext {
	ctCopy := new(Ciphertext)
	ctCopy.Value = make([]*ring.Poly, len(el.Value))
	for i := range el.Value {
		ctCopy.Value[i] = el.Value[i].CopyNew()
	}
	return ctCopy
}

// Copy copies the value of the input element on the target element. Both
// elements must have the same degree.
func (el *Ciphertext) Copy(ct *Ciphertext) {
	if el.Degree() != ct.Degree() {
		panic("cannot Copy: ciphertext degrees do not match")
	}
	for i := range ct.Value {
		el.Value[i].Copy(ct.Value[i])
	}
}

// Equal reports whether both ciphertexts hold identical component values.
func (el *Ciphertext) Equal(other *Ciphertext) bool {

	if el.Degree() != other.Degree() {
		return false
	}

	for i := range el.Value {
		p0, p1 := el.Value[i], other.Value[i]
		if p0.IsNTT != p1.IsNTT || len(p0.Coeffs) != len(p1.Coeffs) {
			return false
		}
		for j := range p0.Coeffs {
			if len(p0.Coeffs[j]) != len(p1.Coeffs[j]) {
				return false
			}
			for k := range p0.Coeffs[j] {
				if p0.Coeffs[j][k] != p1.Coeffs[j][k] {
					return false
				}
			}
		}
	}

	return true
}

// Message is a plaintext bit vector: entry i is the coefficient of z^i of the
// plaintext polynomial modulo 2.
type Message struct {
	Value []uint64
}

// NewMessage returns the zero message over the given parameter set.
func NewMessage(params Parameters) *Message {
	msg := new(Message)
	msg.Value = make([]uint64, params.N())
	return msg
}

// NewMessageFromBits builds a message from the given bit vector, reducing
// every entry modulo 2. Vectors longer than the ring degree are rejected.
func NewMessageFromBits(params Parameters, bits []uint64) (*Message, error) {

	if len(bits) > params.N() {
		return nil, fmt.Errorf("%w: %d bits exceed ring degree %d", ErrInvalidParameter, len(bits), params.N())
	}

	msg := NewMessage(params)
	for i, b := range bits {
		msg.Value[i] = b & 1
	}

	return msg, nil
}

// Slots returns the number of bit slots of the message.
func (msg *Message) Slots() int {
	return len(msg.Value)
}
