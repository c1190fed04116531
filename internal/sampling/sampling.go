// Package sampling draws reproducible question samples. Resolvable session
// tokens must re-yield the exact same ordered sample from a stored seed
// across processes and releases, so the pseudo-random generator is pinned
// here instead of depending on math/rand internals.
package sampling

// Source is a 64-bit linear congruential generator (Knuth MMIX constants).
type Source struct {
	state uint64
}

// NewSource seeds a generator. Equal seeds produce equal draw sequences.
func NewSource(seed int64) *Source {
	s := &Source{state: uint64(seed)}
	s.next() // avoid a weak first draw for small seeds
	return s
}

func (s *Source) next() uint64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return s.state
}

// Intn returns a uniform value in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("sampling: Intn called with non-positive n")
	}
	return int((s.next() >> 33) % uint64(n))
}

// retryFactor bounds rejection sampling. Rejection is O(count) expected while
// count is much smaller than the pool, but degenerates as count approaches
// the pool size; the budget caps that and triggers the shuffle fallback.
const retryFactor = 8

// Indices returns min(count, poolSize) distinct indices drawn uniformly from
// [0, poolSize), in draw order. count >= poolSize degenerates to a full
// Fisher-Yates shuffle of the pool.
func Indices(src *Source, poolSize, count int) []int {
	if poolSize <= 0 || count <= 0 {
		return nil
	}
	if count >= poolSize {
		return Shuffled(src, poolSize)
	}

	chosen := make([]int, 0, count)
	seen := make(map[int]struct{}, count)
	budget := retryFactor * count

	for len(chosen) < count && budget > 0 {
		budget--
		i := src.Intn(poolSize)
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		chosen = append(chosen, i)
	}

	if len(chosen) < count {
		// Retry budget exhausted: shuffle-and-slice is uniform and bounded.
		return Shuffled(src, poolSize)[:count]
	}
	return chosen
}

// Shuffled returns a uniform Fisher-Yates permutation of [0, n).
func Shuffled(src *Source, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
