// Copyright 2020 the Blobloom authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lavinhash

import (
	"math"
	"math/bits"
)

// Fixed dimensions of the content layer's Bloom bitmap (spec §3): exactly
// 1024 bytes / 8192 bits / 128 little-endian 64-bit words.
const (
	bloomBytes = 1024
	bloomBits  = bloomBytes * 8
	bloomWords = bloomBytes / 8 // 128
)

// bloomSet is the fixed 8192-bit Bloom bitmap used by the content layer.
// Unlike blobloom's Filter, which shards a variable number of blocks to
// absorb an arbitrary key count, bloomSet has one size, always: spec §3
// fixes the bitmap at exactly 1024 bytes regardless of input length,
// which is what keeps comparison cost independent of input size. The
// word-at-a-time set operations below (getbit/setbit/popcount/AND/OR)
// are the same shape as blobloom's block helpers, just looped over a
// single fixed 128-word array instead of a slice of variable-size
// blocks.
type bloomSet struct {
	words [bloomWords]uint64
}

// add inserts feature f by setting its bloomHashCount derived bits.
func (s *bloomSet) add(f uint64) {
	for _, idx := range bloomIndices(f) {
		s.setbit(idx)
	}
}

// test reports whether every bit derived from f is set. The Bloom set is
// never queried during hashing (spec §4.4); this exists for diagnostics
// and tests.
func (s *bloomSet) test(f uint64) bool {
	for _, idx := range bloomIndices(f) {
		if !s.getbit(idx) {
			return false
		}
	}
	return true
}

func (s *bloomSet) setbit(i uint32) {
	s.words[i/64] |= 1 << (i % 64)
}

func (s *bloomSet) getbit(i uint32) bool {
	return s.words[i/64]&(1<<(i%64)) != 0
}

// popcount returns the number of set bits in s.
func (s *bloomSet) popcount() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// intersectCount returns popcount(s AND t) without mutating either set.
func (s *bloomSet) intersectCount(t *bloomSet) int {
	n := 0
	for i := range s.words {
		n += bits.OnesCount64(s.words[i] & t.words[i])
	}
	return n
}

// unionCount returns popcount(s OR t) without mutating either set.
func (s *bloomSet) unionCount(t *bloomSet) int {
	n := 0
	for i := range s.words {
		n += bits.OnesCount64(s.words[i] | t.words[i])
	}
	return n
}

// union sets s to the bitwise OR of s and t, in place. Used to merge the
// per-chunk bitmaps of the parallel content hasher (spec §4.4).
func (s *bloomSet) union(t *bloomSet) {
	for i := range s.words {
		s.words[i] |= t.words[i]
	}
}

// log(1 - 1/bloomBits), used by cardinality. Computed the same way as
// blobloom's log1M1Dblockbits, just re-derived for this bitmap's fixed
// width instead of blobloom's configurable BlockBits.
const log1MInvBloomBits = -1.0 / (float64(bloomBits) - 0.5)

// cardinality estimates the number of distinct features inserted into s,
// using the single-bucket form of the estimator blobloom's Filter.
// Cardinality sums over its blocks (Papapetrou, Siberski & Nejdl). Not
// part of the public surface named by spec §6; an unexported diagnostic,
// exercised only by this package's bloomSet tests.
func (s *bloomSet) cardinality() float64 {
	ones := float64(s.popcount())
	if ones == 0 {
		return 0
	}
	if ones >= bloomBits {
		return math.Inf(1)
	}
	k := float64(bloomHashCount)
	// n = ln(1 - ones/bloomBits) / (k * ln(1 - 1/bloomBits))
	// Re-derived directly from the single-filter form of blobloom's
	// estimator rather than summed over blocks, since this set has only
	// one "block" of bloomBits bits and every insertion sets all k of its
	// bits in it (blobloom divides by k-1 because its first hash only
	// selects a block).
	return math.Log1p(-ones/bloomBits) / (k * log1MInvBloomBits)
}

// fpRate estimates the false-positive rate of a test() call against s as
// (ones/bloomBits)^k, from the fraction of bits currently set, adapted
// from blobloom's FPRate (optimize.go) to this set's fixed k and bit
// count. n is only checked for n <= 0, which returns 0; otherwise the
// estimate does not depend on n.
func (s *bloomSet) fpRate(n int) float64 {
	if n <= 0 {
		return 0
	}
	ones := float64(s.popcount())
	p := ones / bloomBits
	return math.Pow(p, float64(bloomHashCount))
}
