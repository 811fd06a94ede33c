// Package digest fingerprints a circuit and a run's observable
// description with a keyed BLAKE3 hash, grounded on the teacher's
// GenerateCommitment (commitment.go) and CreateEntangledState
// (entanglement.go), which both hash quantum state data with a keyed
// lukechampine.com/blake3 hasher.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/hydraresearch/psim/pkg/gate"
	"lukechampine.com/blake3"
)

// defaultKey is used when no caller-supplied key is provided. It has
// no secrecy role here (digests are fingerprints, not MACs over secret
// data) but keyed BLAKE3 is what the teacher's hashing helpers use, so
// the same construction is kept for consistency.
var defaultKey = [32]byte{'p', 's', 'i', 'm', '-', 'c', 'i', 'r', 'c', 'u', 'i', 't'}

// Circuit returns a hex-encoded fingerprint of an ordered gate
// sequence, stable across runs for the same gates.
func Circuit(gates []gate.Gate) string {
	h := blake3.New(16, defaultKey[:])
	var timeBuf [8]byte
	for _, g := range gates {
		h.Write([]byte(g.PauliString().String()))
		binary.LittleEndian.PutUint64(timeBuf[:], floatBits(g.Time()))
		h.Write(timeBuf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Run extends a circuit digest with the parameters of one execute()
// call, for use as an evalcache key.
func Run(circuitDigest string, observable string, layers int, threshold, decay float64) string {
	h := blake3.New(16, defaultKey[:])
	h.Write([]byte(circuitDigest))
	h.Write([]byte(observable))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(layers))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], floatBits(threshold))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], floatBits(decay))
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil))
}

func floatBits(f float64) uint64 {
	return math.Float64bits(f)
}
