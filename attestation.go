package psim

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"

	"github.com/hydraresearch/psim/internal/attestation"
)

// AttestationKey is a post-quantum (ML-DSA-87 / Dilithium) keypair used
// to attest that a reported execute() trace came from a specific
// circuit, without a verifier needing to re-run the simulation.
// Grounded on the teacher's SignatureScheme (signature.go).
type AttestationKey = attestation.KeyPair

// GenerateAttestationKey creates a new attestation keypair.
func GenerateAttestationKey() (*AttestationKey, error) {
	return attestation.Generate()
}

// SignTrace attests that trace is this simulator's execute() result
// for the circuit currently loaded (identified by s.Digest()).
func (s *Simulator) SignTrace(key *AttestationKey, trace []complex128) ([]byte, error) {
	return key.Sign(s.Digest(), trace)
}

// VerifyTrace checks a signature produced by SignTrace against the
// given public key, circuit digest, and trace.
func VerifyTrace(pub *mldsa87.PublicKey, circuitDigest string, trace []complex128, sig []byte) bool {
	return attestation.Verify(pub, circuitDigest, trace, sig)
}
