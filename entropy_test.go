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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockEntropyConstantIsZero(t *testing.T) {
	block := make([]byte, 256)
	for i := range block {
		block[i] = 'x'
	}
	assert.Equal(t, 0.0, blockEntropy(block))
}

func TestBlockEntropyEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, blockEntropy(nil))
}

func TestBlockEntropyAllByteValues(t *testing.T) {
	block := make([]byte, 256)
	for i := range block {
		block[i] = byte(i)
	}
	// Normalisation folds the 26 upper-case letters onto lower case (26
	// values seen twice) and the 29 other control bytes onto the space
	// (seen 30 times), leaving 174 values seen once, so the entropy is
	// about 7.22 rather than 8.
	want := 174*(1.0/256)*8 + 26*(2.0/256)*7 + (30.0/256)*math.Log2(256.0/30)
	h := blockEntropy(block)
	assert.InDelta(t, want, h, 1e-9)
}

func TestBlockEntropyCaseFoldedTreatsCaseSame(t *testing.T) {
	lower := []byte("abcabcabc")
	upper := []byte("ABCABCABC")
	assert.Equal(t, blockEntropy(lower), blockEntropy(upper))
}

func TestQuantizeEntropyRange(t *testing.T) {
	assert.Equal(t, uint8(0), quantizeEntropy(0))
	assert.Equal(t, uint8(15), quantizeEntropy(8))
	assert.Equal(t, uint8(15), quantizeEntropy(8.5)) // clamp above range
	assert.Equal(t, uint8(0), quantizeEntropy(-1))   // clamp below range

	// Monotone: higher entropy never yields a lower nibble.
	prev := uint8(0)
	for h := 0.0; h <= 8.0; h += 0.25 {
		n := quantizeEntropy(h)
		assert.True(t, n >= prev)
		prev = n
	}
}

func TestQuantizeEntropyFormula(t *testing.T) {
	// floor(H * 1.875)
	assert.Equal(t, uint8(math.Floor(4.0*1.875)), quantizeEntropy(4.0))
}
