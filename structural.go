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

// minBlockSize is the floor on the adaptive structural block size (spec
// §4.3): block_size = max(64, n/256).
const minBlockSize = 64

// maxStructBlocks is the target block count of the structural layer, the
// divisor in block_size = max(64, n/256). A short final block can add a
// few more blocks (at most 260 in all), which keeps the entropy vector
// well inside the 16-bit struct_len wire field (spec §3: "length is
// determined adaptively and always <= 65535"; spec §6: struct_len is at
// most 256 packed bytes, i.e. 512 nibbles).
const maxStructBlocks = 256

// structuralBlockSize returns the adaptive block size for an input of
// length n (spec §4.3).
func structuralBlockSize(n int) int {
	bs := n / maxStructBlocks
	if bs < minBlockSize {
		return minBlockSize
	}
	return bs
}

// hashStructural computes the structural entropy vector for data (spec
// §4.3): divide into consecutive non-overlapping blocks of the adaptive
// size, compute one 4-bit quantised Shannon-entropy nibble per block
// (normalisation is fused into blockEntropy), and return the nibbles in
// block order, unpacked (one nibble per byte of the returned slice).
// Packing into the wire format's two-nibbles-per-byte layout happens in
// fingerprint.go.
//
// An empty input yields an empty vector (spec §4.3).
func hashStructural(data []byte) []uint8 {
	if len(data) == 0 {
		return nil
	}

	blockSize := structuralBlockSize(len(data))
	nBlocks := (len(data) + blockSize - 1) / blockSize

	nibbles := make([]uint8, 0, nBlocks)
	for start := 0; start < len(data); start += blockSize {
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		h := blockEntropy(data[start:end])
		nibbles = append(nibbles, quantizeEntropy(h))
	}
	return nibbles
}
