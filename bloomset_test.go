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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloomSetAddTest(t *testing.T) {
	var s bloomSet
	r := rand.New(rand.NewSource(1))
	keys := make([]uint64, 100)
	for i := range keys {
		keys[i] = r.Uint64()
		s.add(keys[i])
	}
	for _, k := range keys {
		assert.True(t, s.test(k))
	}
}

func TestBloomSetEmptyPopcountZero(t *testing.T) {
	var s bloomSet
	assert.Equal(t, 0, s.popcount())
}

func TestBloomSetUnionAndIntersect(t *testing.T) {
	var a, b bloomSet
	a.add(1)
	a.add(2)
	b.add(2)
	b.add(3)

	assert.Equal(t, bloomHashCount, a.intersectCount(&b)) // key 2's bits in both, barring hash collisions
	union := a.unionCount(&b)
	assert.GreaterOrEqual(t, union, a.popcount())
	assert.GreaterOrEqual(t, union, b.popcount())

	merged := a
	merged.union(&b)
	assert.Equal(t, union, merged.popcount())
}

func TestBloomSetFixedSize(t *testing.T) {
	var s bloomSet
	assert.Len(t, s.words, bloomWords)
	assert.Equal(t, 1024, bloomBytes)
	assert.Equal(t, 8192, bloomBits)
}

func TestBloomSetCardinalityGrowsWithInsertions(t *testing.T) {
	var s bloomSet
	r := rand.New(rand.NewSource(7))
	prev := s.cardinality()
	for i := 0; i < 50; i++ {
		s.add(r.Uint64())
		cur := s.cardinality()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestBloomSetFPRateZeroWhenEmpty(t *testing.T) {
	var s bloomSet
	assert.Equal(t, 0.0, s.fpRate(0))
}
