// Package observable implements the sparse Pauli-string observable and
// its Heisenberg-picture gate update (spec.md §4.3).
package observable

import (
	"math"
	"math/cmplx"

	"github.com/hydraresearch/psim/pkg/gate"
	"github.com/hydraresearch/psim/pkg/paulistring"
)

// EPS is the small constant used to classify a gate's rotation as
// trivial (sin ~ 0) or maximal (cos ~ 0), matching observable.rs's EPS.
const EPS = 1e-10

// Observable is a sparse map from Pauli string to complex coefficient,
// H = sum_k c_k P_k (spec.md §3). The zero value is not usable; build
// one with New.
type Observable struct {
	width int
	terms map[paulistring.Key]complex128
}

// New seeds an Observable with a single initial term of coefficient 1.
func New(ps paulistring.PauliString) *Observable {
	terms := make(map[paulistring.Key]complex128, 1)
	terms[ps.AsKey()] = complex(1, 0)
	return &Observable{width: ps.Width(), terms: terms}
}

// Size returns the current number of non-pruned terms.
func (o *Observable) Size() int { return len(o.terms) }

// Average returns the expectation value on |0...0>: the sum of
// coefficients whose Pauli string is diagonal in the computational
// basis (spec.md §4.3).
func (o *Observable) Average() complex128 {
	var sum complex128
	for k, v := range o.terms {
		ps := paulistring.FromKey(k, o.width)
		if ps.IsDiagonal() {
			sum += v
		}
	}
	return sum
}

type newTerm struct {
	key paulistring.Key
	val complex128
}

// ApplyGate applies U = exp(-i*t*P) in the Heisenberg picture: Q <-
// U^dagger Q U for every term Q in the map, then prunes terms whose
// weighted magnitude falls under threshold. A term Q that anticommutes
// with P becomes cos(2t)*Q + i*sin(2t)*P*Q. Follows observable.rs's
// apply_gate in its three-way case split on the size of
// cos(2t)/sin(2t) and its stage-into-tmp-then-merge shape.
func (o *Observable) ApplyGate(g gate.Gate, threshold, decay float64) {
	t := g.Time()
	cosWeight := complex(math.Cos(2*t), 0)
	sinWeight := complex(0, math.Sin(2*t))
	gps := g.PauliString()

	var tmp []newTerm

	switch {
	case cmplx.Abs(sinWeight) < EPS:
		// Rotation trivially commutes with everything in effect: scale
		// non-commuting terms by cos, no new terms produced.
		for k, v := range o.terms {
			ps := paulistring.FromKey(k, o.width)
			if !ps.Commute(gps) {
				o.terms[k] = v * cosWeight
			}
		}
	case cmplx.Abs(cosWeight) < EPS:
		// Every non-commuting term is moved, not split: extract and
		// stage its transformed replacement.
		for k, v := range o.terms {
			ps := paulistring.FromKey(k, o.width)
			if !ps.Commute(gps) {
				delete(o.terms, k)
				phase, newKey := gps.Multiply(ps)
				newVal := cmplx.Exp(complex(0, math.Pi/2*float64(phase))) * sinWeight * v
				tmp = append(tmp, newTerm{newKey.AsKey(), newVal})
			}
		}
	default:
		// General case: scale in place AND stage a new term to merge.
		for k, v := range o.terms {
			ps := paulistring.FromKey(k, o.width)
			if !ps.Commute(gps) {
				phase, newKey := gps.Multiply(ps)
				newVal := cmplx.Exp(complex(0, math.Pi/2*float64(phase))) * sinWeight * v
				tmp = append(tmp, newTerm{newKey.AsKey(), newVal})
				o.terms[k] = v * cosWeight
			}
		}
	}

	if len(tmp) == 0 {
		return
	}
	for _, nt := range tmp {
		o.terms[nt.key] += nt.val
	}
	o.prune(threshold, decay)
}

// prune removes any entry whose weighted magnitude falls under
// threshold: |v| / 2^(hamming(key)*decay/2) < threshold.
func (o *Observable) prune(threshold, decay float64) {
	for k, v := range o.terms {
		ps := paulistring.FromKey(k, o.width)
		weight := math.Pow(2, float64(ps.Hamming())*decay/2)
		if cmplx.Abs(v)/weight < threshold {
			delete(o.terms, k)
		}
	}
}
