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

func TestContentModulus(t *testing.T) {
	assert.Equal(t, 16, contentModulus(0, 16))
	assert.Equal(t, 16, contentModulus(1200*16-1, 16))
	assert.Equal(t, 16, contentModulus(1200*16, 16))
	assert.Equal(t, 1000, contentModulus(1200*1000, 16))
	assert.Equal(t, 32, contentModulus(100, 32))
}

func TestHashContentChunkEmpty(t *testing.T) {
	s := hashContentChunk(nil, 16)
	assert.Equal(t, 0, s.popcount())
}

func TestHashContentChunkBelowWindowNeverTriggers(t *testing.T) {
	data := make([]byte, buzhashWindow-1)
	for i := range data {
		data[i] = byte(i)
	}
	s := hashContentChunk(data, 2) // modulus 2: near-maximal trigger rate
	assert.Equal(t, 0, s.popcount())
}

func TestHashContentChunkDeterministic(t *testing.T) {
	data := make([]byte, 10000)
	r := rand.New(rand.NewSource(99))
	r.Read(data)

	a := hashContentChunk(data, contentModulus(len(data), 16))
	b := hashContentChunk(data, contentModulus(len(data), 16))
	assert.Equal(t, *a, *b)
}

func TestHashContentSequentialVsParallelRoughlyAgree(t *testing.T) {
	data := make([]byte, 2<<20) // 2 MiB, above the parallel threshold
	r := rand.New(rand.NewSource(123))
	r.Read(data)

	cfg := DefaultConfig()
	cfg.EnableParallel = false
	seq, err := hashContent(data, cfg)
	assert.NoError(t, err)

	cfg.EnableParallel = true
	par, err := hashContent(data, cfg)
	assert.NoError(t, err)

	// The parallel variant may miss a bounded number of triggers near
	// chunk boundaries (spec §4.4), so the bitmaps need not be
	// identical, but they should overlap heavily.
	intersection := seq.intersectCount(par)
	union := seq.unionCount(par)
	assert.Greater(t, union, 0)
	assert.Greater(t, float64(intersection)/float64(union), 0.8)
}

func TestHashContentParallelBelowThresholdMatchesSequential(t *testing.T) {
	data := make([]byte, 4096)
	r := rand.New(rand.NewSource(7))
	r.Read(data)

	cfg := DefaultConfig()
	cfg.EnableParallel = true
	small, err := hashContent(data, cfg)
	assert.NoError(t, err)

	cfg.EnableParallel = false
	seqSmall, err := hashContent(data, cfg)
	assert.NoError(t, err)

	assert.Equal(t, *seqSmall, *small)
}
