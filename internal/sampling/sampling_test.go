package sampling

import (
	"testing"
)

func TestIndicesCardinality(t *testing.T) {
	tests := []struct {
		name     string
		poolSize int
		count    int
		wantLen  int
	}{
		{"count below pool", 100, 10, 10},
		{"count equals pool", 20, 20, 20},
		{"count above pool", 5, 50, 5},
		{"count close to pool triggers fallback", 10, 9, 9},
		{"single question", 1, 1, 1},
		{"zero count", 10, 0, 0},
		{"empty pool", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Indices(NewSource(42), tt.poolSize, tt.count)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			seen := make(map[int]struct{}, len(got))
			for _, i := range got {
				if i < 0 || i >= tt.poolSize {
					t.Errorf("index %d outside [0, %d)", i, tt.poolSize)
				}
				if _, dup := seen[i]; dup {
					t.Errorf("duplicate index %d", i)
				}
				seen[i] = struct{}{}
			}
		})
	}
}

func TestIndicesDeterministic(t *testing.T) {
	seeds := []int64{0, 1, 1700000000000, -7}
	for _, seed := range seeds {
		a := Indices(NewSource(seed), 200, 25)
		b := Indices(NewSource(seed), 200, 25)
		if len(a) != len(b) {
			t.Fatalf("seed %d: lengths differ", seed)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d: position %d differs (%d vs %d)", seed, i, a[i], b[i])
			}
		}
	}
}

func TestIndicesSeedsDiverge(t *testing.T) {
	a := Indices(NewSource(1), 500, 30)
	b := Indices(NewSource(2), 500, 30)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical samples")
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	perm := Shuffled(NewSource(99), 64)
	if len(perm) != 64 {
		t.Fatalf("len = %d, want 64", len(perm))
	}
	seen := make([]bool, 64)
	for _, i := range perm {
		if i < 0 || i >= 64 || seen[i] {
			t.Fatalf("not a permutation: element %d", i)
		}
		seen[i] = true
	}
}

func TestIntnBounds(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 10000; i++ {
		if v := src.Intn(13); v < 0 || v >= 13 {
			t.Fatalf("Intn(13) = %d out of range", v)
		}
	}
}

func TestIntnRoughlyUniform(t *testing.T) {
	src := NewSource(2024)
	const n, draws = 8, 80000
	counts := make([]int, n)
	for i := 0; i < draws; i++ {
		counts[src.Intn(n)]++
	}
	expected := draws / n
	for i, c := range counts {
		if c < expected/2 || c > expected*2 {
			t.Errorf("bucket %d badly skewed: %d draws (expected around %d)", i, c, expected)
		}
	}
}
