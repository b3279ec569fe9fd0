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
	"encoding/binary"
	"math/bits"
)

// fxMul is the multiplicative constant of the FxHash family mixing step
// (spec §4.4). It is the same constant used by Rustc's / Firefox's
// FxHasher.
const fxMul = 0x517cc1b727220a95

// fxHash is the byte-wise FxHash-family mix used to derive Bloom bit
// indices from a feature hash (spec §4.4):
//
//	h <- seed
//	for each byte b of data:
//	    h <- (rol_5(h) + b) * fxMul
//
// with wrapping 64-bit arithmetic throughout.
func fxHash(data []byte, seed uint64) uint64 {
	h := seed
	for _, b := range data {
		h = (bits.RotateLeft64(h, 5) + uint64(b)) * fxMul
	}
	return h
}

// bloomIndices derives the bloomHashCount independent bit indices into
// the 8192-bit bitmap for 64-bit feature f, per spec §4.4.
func bloomIndices(f uint64) [bloomHashCount]uint32 {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], f)

	var idx [bloomHashCount]uint32
	for i, seed := range bloomSeeds {
		idx[i] = uint32(fxHash(le[:], seed) % bloomBits)
	}
	return idx
}
