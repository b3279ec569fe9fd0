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

import "math/rand"

// buzhashSeed and bloomSeedSeed are the fixed PRNG seeds from which the
// process-wide constant tables below are derived at package init. Using a
// constant seed with Go's math/rand (a pure, platform-independent
// generator) means every build of this package, on every platform,
// derives bit-identical tables -- a precondition for the "byte-identical
// fingerprints across platforms" guarantee of spec §3/§5.
const (
	buzhashSeed  = 0x4c6176696e486173 // "LavinHas" as an ASCII-packed seed.
	bloomSeedSeed = 0x68000042 + 5
)

// buzhashTable is the 256-entry lookup table used by the BuzHash rolling
// hash (rolling.go). It is a process-wide read-only constant, generated
// once at init from buzhashSeed.
var buzhashTable [256]uint64

// bloomSeeds are the 5 independent seeds used to derive Bloom bit indices
// from a 64-bit feature hash (fxhash.go). Process-wide read-only
// constants, generated once at init from bloomSeedSeed.
var bloomSeeds [bloomHashCount]uint64

// bloomHashCount is k, the number of independent hash probes per Bloom
// insertion/query (§4.4: "5-way hashing"). Fixed by spec; this is the
// resolution of the k=3-vs-k=5 contradiction noted in spec §9.
const bloomHashCount = 5

func init() {
	r := rand.New(rand.NewSource(buzhashSeed))
	for i := range buzhashTable {
		buzhashTable[i] = r.Uint64()
	}

	r = rand.New(rand.NewSource(bloomSeedSeed))
	for i := range bloomSeeds {
		// Force odd (hence non-zero) seeds; this costs nothing since
		// the seeds are precomputed once.
		s := r.Uint64()
		if s%2 == 0 {
			s++
		}
		bloomSeeds[i] = s
	}
}
