package bitrlwe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkBitRLWE(b *testing.B) {

	tc, err := genTestContext(PN12QP240)
	require.NoError(b, err)

	msg := tc.newRandomMessage()

	ct0, err := tc.enc.EncryptNew(msg, tc.sk, testErrorBound)
	require.NoError(b, err)
	ct1, err := tc.enc.EncryptNew(msg, tc.sk, testErrorBound)
	require.NoError(b, err)

	b.Run(testString(tc.params, "Encrypt/"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.enc.EncryptNew(msg, tc.sk, testErrorBound); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "Decrypt/"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.dec.Decrypt(ct0, tc.sk); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "Add/"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.AddNew(ct0, ct1); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "Mul/"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.MulNew(ct0, ct1); err != nil {
				b.Fatal(err)
			}
		}
	})

	sq, err := tc.eval.MulNew(ct0, ct1)
	require.NoError(b, err)

	b.Run(testString(tc.params, "Mul/Degree3/"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.MulNew(sq, ct0); err != nil {
				b.Fatal(err)
			}
		}
	})
}
