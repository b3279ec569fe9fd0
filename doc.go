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

// Package lavinhash implements Dual-Layer Adaptive Hashing (DLAH), a
// fuzzy-hashing scheme for near-duplicate detection.
//
// DLAH turns an arbitrary byte slice into a small, fixed-ceiling
// Fingerprint and compares two fingerprints to produce a similarity score
// in 0..100. It is built for document comparison, malware-variant
// clustering, source-code plagiarism screening and storage deduplication.
// It is not a cryptographic primitive: fingerprints of similar inputs are
// meant to collide, and inputs can be crafted adversarially to produce a
// high score without being similar.
//
// A Fingerprint has two independent layers. The structural layer is a
// sequence of 4-bit nibbles, one per block of the (normalised) input,
// each nibble a quantised Shannon entropy value; it is compared with
// Levenshtein edit distance. The content layer is a 1024-byte Bloom
// bitmap populated by a context-triggered rolling hash; it is compared
// with Jaccard similarity over the bitmaps. Compare blends the two with
// a caller-chosen weight and floors the result into 0..100.
//
// Both the block size of the structural layer and the trigger modulus of
// the content layer scale with input length, so fingerprint size and
// comparison cost stay bounded regardless of how large the input is.
//
// Generate, Compare and CompareRaw are pure functions: no global mutable
// state, no I/O, no retries. Generate may spread the content layer of
// large inputs (by default, at least 1 MiB) across goroutines, but always
// returns only after every goroutine has joined.
package lavinhash
