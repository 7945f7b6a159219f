package util
import (
	"math/rand"
)

/*
 * deterministic scattering of carrier slots.
 *
 * Permute fixes the generator permanently: math/rand seeded with
 * rand.NewSource and its Fisher-Yates Perm. Same (seed, n) always gives
 * the same ordering, which is the only property extraction needs to
 * invert embedding. No cross-implementation bit compatibility is
 * promised or required.
 */

// Permute returns a pseudorandom bijection of [0,n) keyed by seed.
// The table is recomputed on every call and never shared.
func Permute( seed int64, n int ) []int {
	rng := rand.New( rand.NewSource( seed ) )
	return rng.Perm( n )
}
