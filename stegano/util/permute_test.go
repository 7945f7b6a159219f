package util
import (
	"testing"
)

func TestPermuteDeterminism( t *testing.T ) {
	seeds := []int64{0, 1, 42, -7, 1 << 40}
	for _, seed := range seeds {
		first := Permute( seed, 3000 )
		second := Permute( seed, 3000 )
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("Permutation is not reproducible for seed %d at index %d", seed, i)
			}
		}
	}
}

func TestPermuteBijectivity( t *testing.T ) {
	for _, n := range []int{0, 1, 2, 64, 1000} {
		indices := Permute( 42, n )
		if len(indices) != n {
			t.Fatalf("Expected %d indices, got %d", n, len(indices))
		}
		seen := make( []bool, n )
		for _, idx := range indices {
			if idx < 0 || idx >= n {
				t.Fatalf("Index %d out of range [0,%d)", idx, n)
			}
			if seen[idx] {
				t.Fatalf("Index %d appears twice for n=%d", idx, n)
			}
			seen[idx] = true
		}
	}
}

func TestPermuteSeedsDiffer( t *testing.T ) {
	a := Permute( 42, 1000 )
	b := Permute( 1337, 1000 )
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("Different seeds produced an identical permutation")
	}
}
