// Package attestation signs and verifies a simulator's reported
// expectation-value trace with a post-quantum signature, grounded on
// the teacher's SignatureScheme (signature.go), which wraps a
// cloudflare/circl ML-DSA (Dilithium) keypair.
package attestation

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// KeyPair wraps an ML-DSA-87 keypair used to attest that a reported
// execution trace came from a specific circuit digest and run.
type KeyPair struct {
	Pub  *mldsa87.PublicKey
	Priv *mldsa87.PrivateKey
}

// Generate creates a new ML-DSA-87 keypair.
func Generate() (*KeyPair, error) {
	pub, priv, err := mldsa87.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("attestation: key generation failed: %w", err)
	}
	return &KeyPair{Pub: pub, Priv: priv}, nil
}

// encodeTrace serializes a circuit digest and an execution trace into
// the byte message that gets signed, so a verifier can confirm both
// the circuit identity and the reported values in one signature.
func encodeTrace(circuitDigest string, trace []complex128) []byte {
	buf := make([]byte, 0, len(circuitDigest)+len(trace)*16)
	buf = append(buf, circuitDigest...)
	var f [8]byte
	for _, v := range trace {
		binary.LittleEndian.PutUint64(f[:], math.Float64bits(real(v)))
		buf = append(buf, f[:]...)
		binary.LittleEndian.PutUint64(f[:], math.Float64bits(imag(v)))
		buf = append(buf, f[:]...)
	}
	return buf
}

// Sign attests that trace is the execution result for circuitDigest.
func (k *KeyPair) Sign(circuitDigest string, trace []complex128) ([]byte, error) {
	msg := encodeTrace(circuitDigest, trace)
	sig := make([]byte, mldsa87.SignatureSize)
	if err := mldsa87.SignTo(k.Priv, msg, nil, true, sig); err != nil {
		return nil, fmt.Errorf("attestation: sign failed: %w", err)
	}
	return sig, nil
}

// Verify checks a signature produced by Sign against the given public
// key, circuit digest, and trace.
func Verify(pub *mldsa87.PublicKey, circuitDigest string, trace []complex128, sig []byte) bool {
	msg := encodeTrace(circuitDigest, trace)
	return mldsa87.Verify(pub, msg, nil, sig)
}
