package randcircuit

import (
	"testing"
)

func TestCircuitReproducible(t *testing.T) {
	seed := []byte("a fixed seed")
	g1, err := Circuit(seed, 1, 64, 10)
	if err != nil {
		t.Fatalf("Circuit: %v", err)
	}
	g2, err := Circuit(seed, 1, 64, 10)
	if err != nil {
		t.Fatalf("Circuit: %v", err)
	}
	if len(g1) != len(g2) {
		t.Fatalf("length mismatch: %d vs %d", len(g1), len(g2))
	}
	for i := range g1 {
		if g1[i].Time() != g2[i].Time() {
			t.Errorf("gate %d: time mismatch %v vs %v", i, g1[i].Time(), g2[i].Time())
		}
		if !g1[i].PauliString().Equal(g2[i].PauliString()) {
			t.Errorf("gate %d: Pauli string mismatch", i)
		}
	}
}

func TestCircuitDiffersBySeed(t *testing.T) {
	g1, err := Circuit([]byte("seed-one"), 1, 64, 20)
	if err != nil {
		t.Fatalf("Circuit: %v", err)
	}
	g2, err := Circuit([]byte("seed-two"), 1, 64, 20)
	if err != nil {
		t.Fatalf("Circuit: %v", err)
	}
	same := true
	for i := range g1 {
		if g1[i].Time() != g2[i].Time() || !g1[i].PauliString().Equal(g2[i].PauliString()) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical circuits")
	}
}

func TestCircuitWithinTimeRange(t *testing.T) {
	gates, err := Circuit([]byte("range-seed"), 1, 64, 100)
	if err != nil {
		t.Fatalf("Circuit: %v", err)
	}
	for i, g := range gates {
		if g.Time() < -3.14159265358979 || g.Time() >= 3.14159265358979 {
			t.Errorf("gate %d: time %v out of [-pi, pi)", i, g.Time())
		}
	}
}

func TestSourceFloat64Range(t *testing.T) {
	s := NewSource([]byte("float-seed"))
	for i := 0; i < 1000; i++ {
		f := s.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}

func TestSourceIntnRange(t *testing.T) {
	s := NewSource([]byte("intn-seed"))
	for i := 0; i < 1000; i++ {
		v := s.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) out of range: %v", v)
		}
	}
}
