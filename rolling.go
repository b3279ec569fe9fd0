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

import "math/bits"

// buzhashWindow is the fixed width, in bytes, of the BuzHash sliding
// window (spec §4.2).
const buzhashWindow = 64

// buzhash is a cyclic-polynomial rolling hash over a sliding window of
// exactly buzhashWindow normalised bytes. The zero value is a valid,
// empty buzhash.
//
// This mirrors the shape of a classic fixed-window rolling hash (see a
// rolling value hasher keeping one scalar digest plus a ring buffer of
// the bytes currently in its window): a single uint64 accumulator H,
// updated in O(1) per byte, plus just enough ring-buffer state to know
// which byte to evict.
type buzhash struct {
	h      uint64
	window [buzhashWindow]byte
	filled int // number of valid bytes in window, saturating at buzhashWindow.
	pos    int // next slot in window to be overwritten.
}

// full reports whether the window holds buzhashWindow bytes, i.e.
// whether triggers are live (spec §4.4: "windows shorter than 64 bytes
// never trigger").
func (bh *buzhash) full() bool {
	return bh.filled == buzhashWindow
}

// push advances the rolling hash by one normalised byte.
func (bh *buzhash) push(b byte) {
	if bh.filled < buzhashWindow {
		bh.h = bits.RotateLeft64(bh.h, 1) ^ buzhashTable[b]
		bh.window[bh.pos] = b
		bh.filled++
		bh.pos = (bh.pos + 1) % buzhashWindow
		return
	}

	out := bh.window[bh.pos]
	bh.h = bits.RotateLeft64(bh.h, 1) ^ buzhashTable[out] ^ buzhashTable[b]
	bh.window[bh.pos] = b
	bh.pos = (bh.pos + 1) % buzhashWindow
}

// sum returns the current 64-bit digest H.
func (bh *buzhash) sum() uint64 {
	return bh.h
}
