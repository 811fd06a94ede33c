package paulistring

import "testing"

// TestDisplayPauliString is S1 from spec.md §8: width 2 (N=2), build
// P = X_0 Y_15 Z_63 X_64 Y_100 Z_127, check the 128-character pretty
// print.
func TestDisplayPauliString(t *testing.T) {
	ps, err := NewBuilder(2).
		Set(X, 0).
		Set(Y, 15).
		Set(Z, 63).
		Set(X, 64).
		Set(Y, 100).
		Set(Z, 127).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := ps.String()
	want := "XIIIIIIIIIIIIIIYIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIZXIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIYIIIIIIIIIIIIIIIIIIIIIIIIIIZ"
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if len(got) != 128 {
		t.Errorf("len(String()) = %d, want 128", len(got))
	}
}

// TestMultiplyPauliStrings1 is S2 from spec.md §8.
func TestMultiplyPauliStrings1(t *testing.T) {
	lhs, err := NewBuilder(2).
		Set(X, 0).Set(X, 7).Set(X, 15).Set(X, 23).
		Set(Y, 31).Set(Y, 39).Set(Y, 47).Set(Y, 55).
		Set(Z, 63).Set(Z, 64).Set(Z, 72).Set(Z, 80).Set(Z, 127).
		Build()
	if err != nil {
		t.Fatalf("lhs build: %v", err)
	}
	rhs, err := NewBuilder(2).
		Set(X, 7).Set(Y, 15).Set(Z, 23).
		Set(X, 39).Set(Y, 47).Set(Z, 55).
		Set(X, 64).Set(Y, 72).Set(Z, 80).
		Set(X, 88).Set(Y, 96).Set(Z, 104).Set(Y, 127).
		Build()
	if err != nil {
		t.Fatalf("rhs build: %v", err)
	}
	want, err := NewBuilder(2).
		Set(X, 0).Set(Z, 15).Set(Y, 23).
		Set(Y, 31).Set(Z, 39).Set(X, 55).
		Set(Z, 63).Set(Y, 64).Set(X, 72).
		Set(X, 88).Set(Y, 96).Set(Z, 104).Set(X, 127).
		Build()
	if err != nil {
		t.Fatalf("want build: %v", err)
	}

	phase, product := lhs.Multiply(rhs)
	if !product.Equal(want) {
		t.Errorf("product = %s, want %s", product, want)
	}
	if phase != -1 {
		t.Errorf("phase = %d, want -1", phase)
	}
}

// TestMultiplyPauliStrings2 is S3 from spec.md §8.
func TestMultiplyPauliStrings2(t *testing.T) {
	lhs, err := NewBuilder(3).Set(X, 0).Set(Y, 64).Set(Z, 150).Build()
	if err != nil {
		t.Fatalf("lhs build: %v", err)
	}
	rhs, err := NewBuilder(3).Set(Y, 0).Set(Z, 64).Set(Z, 150).Build()
	if err != nil {
		t.Fatalf("rhs build: %v", err)
	}
	want, err := NewBuilder(3).Set(Z, 0).Set(X, 64).Build()
	if err != nil {
		t.Fatalf("want build: %v", err)
	}

	phase, product := lhs.Multiply(rhs)
	if !product.Equal(want) {
		t.Errorf("product = %s, want %s", product, want)
	}
	if phase != 2 {
		t.Errorf("phase = %d, want 2", phase)
	}
}

// TestProductConsistency is invariant 1 from spec.md §8.
func TestProductConsistency(t *testing.T) {
	a, _ := NewBuilder(1).Set(X, 0).Set(Y, 1).Build()
	b, _ := NewBuilder(1).Set(Z, 0).Set(X, 1).Build()

	phaseAB, prodAB := a.Multiply(b)
	phaseBA, prodBA := b.Multiply(a)

	if !prodAB.Equal(prodBA) {
		t.Errorf("product not order-independent: %s vs %s", prodAB, prodBA)
	}
	diff := ((phaseAB - phaseBA) % 2 + 2) % 2
	wantDiff := 0
	if !a.Commute(b) {
		wantDiff = 1
	}
	if diff != wantDiff {
		t.Errorf("phase diff mod 2 = %d, want %d", diff, wantDiff)
	}
}

// TestInvolution is invariant 3 from spec.md §8.
func TestInvolution(t *testing.T) {
	a, _ := NewBuilder(2).Set(X, 0).Set(Y, 70).Set(Z, 100).Build()
	phase, identity := a.Multiply(a)
	zero := New(2)
	if !identity.Equal(zero) {
		t.Errorf("a*a = %s, want identity", identity)
	}
	if ((phase % 4) + 4) % 4 != 0 {
		t.Errorf("phase = %d, want congruent to 0 mod 4", phase)
	}
}

// TestHammingCountsNonIdentityLetters checks that Hamming counts every
// non-I letter, Z included.
func TestHammingCountsNonIdentityLetters(t *testing.T) {
	a, _ := NewBuilder(1).Set(X, 0).Set(Y, 1).Set(Z, 2).Build()
	if got, want := a.Hamming(), 3; got != want {
		t.Errorf("Hamming() = %d, want %d", got, want)
	}
}

// TestIsDiagonal checks I/Z-only strings are diagonal and anything
// with X or Y is not.
func TestIsDiagonal(t *testing.T) {
	diag, _ := NewBuilder(1).Set(Z, 0).Set(Z, 10).Build()
	if !diag.IsDiagonal() {
		t.Error("Z-only string should be diagonal")
	}
	notDiag, _ := NewBuilder(1).Set(X, 0).Build()
	if notDiag.IsDiagonal() {
		t.Error("string with X should not be diagonal")
	}
}

func TestSetPaulOutOfBounds(t *testing.T) {
	_, err := NewBuilder(1).Set(X, 64).Build()
	if err == nil {
		t.Fatal("expected OutOfBoundsError")
	}
	if _, ok := err.(*OutOfBoundsError); !ok {
		t.Errorf("error type = %T, want *OutOfBoundsError", err)
	}
}

func TestParseLetterInvalid(t *testing.T) {
	_, err := ParseLetter('Q')
	if err == nil {
		t.Fatal("expected InvalidLetterError")
	}
	if _, ok := err.(*InvalidLetterError); !ok {
		t.Errorf("error type = %T, want *InvalidLetterError", err)
	}
}

func TestWidthForQubits(t *testing.T) {
	cases := []struct {
		qubits  int
		wantN   int
		wantErr bool
	}{
		{1, 1, false},
		{64, 1, false},
		{65, 2, false},
		{128, 2, false},
		{MaxChunks * CHUNK_SIZE, MaxChunks, false},
		{MaxChunks*CHUNK_SIZE + 1, 0, true},
	}
	for _, c := range cases {
		n, err := WidthForQubits(c.qubits)
		if c.wantErr {
			if err == nil {
				t.Errorf("WidthForQubits(%d): expected error", c.qubits)
			}
			continue
		}
		if err != nil {
			t.Errorf("WidthForQubits(%d): unexpected error %v", c.qubits, err)
		}
		if n != c.wantN {
			t.Errorf("WidthForQubits(%d) = %d, want %d", c.qubits, n, c.wantN)
		}
	}
}
