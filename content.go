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

import "golang.org/x/sync/errgroup"

// contentModulusBase is the divisor in the adaptive content-trigger
// modulus (spec §4.4): M = max(min_modulus, n/1200). It targets ~1200
// triggers for inputs much larger than 1200*min_modulus.
const contentModulusBase = 1200

// parallelChunkThreshold and parallelChunkSize govern the optional
// parallel content-hashing variant (spec §4.4): inputs at or above the
// threshold, with EnableParallel set, may be split into chunks of the
// given size and hashed independently before the resulting bitmaps are
// OR-merged.
const (
	parallelChunkThreshold = 1 << 20  // 1 MiB
	parallelChunkSize      = 256 << 10 // 256 KiB
)

// contentModulus returns the adaptive trigger modulus M for an input of
// length n under the given MinModulus (spec §4.4).
func contentModulus(n, minModulus int) int {
	m := n / contentModulusBase
	if m < minModulus {
		return minModulus
	}
	return m
}

// hashContentChunk runs the rolling hash plus trigger predicate over one
// contiguous chunk, starting from a zero rolling-hash state and an empty
// window, and returns the populated bloomSet for that chunk alone (spec
// §4.4's parallel variant: "each chunk independently runs rolling-hash +
// trigger + Bloom insertion starting from its own zero state").
func hashContentChunk(data []byte, modulus int) *bloomSet {
	set := &bloomSet{}
	mod := uint64(modulus)
	trigger := mod - 1

	var bh buzhash
	for _, raw := range data {
		bh.push(normalizeByte(raw))
		if bh.full() && bh.sum()%mod == trigger {
			set.add(bh.sum())
		}
	}
	return set
}

// hashContent computes the content layer's Bloom bitmap for data under
// cfg (spec §4.4). For inputs below parallelChunkThreshold, or when
// EnableParallel is false, it runs a single pass over the whole input.
// Otherwise it partitions the input into fixed-size chunks, hashes each
// independently (one goroutine per chunk, via errgroup, with no limit on
// how many run at once -- the errgroup fan-out idiom sourcegraph/zoekt
// uses for its own indexing work), and OR-merges the resulting bitmaps. Generate (hash.go) returns
// only after this call returns, so every worker has joined by the time
// the caller sees a result (spec §5).
func hashContent(data []byte, cfg Config) (*bloomSet, error) {
	modulus := contentModulus(len(data), cfg.MinModulus)

	if !cfg.EnableParallel || len(data) < parallelChunkThreshold {
		return hashContentChunk(data, modulus), nil
	}

	nChunks := (len(data) + parallelChunkSize - 1) / parallelChunkSize
	partials := make([]*bloomSet, nChunks)

	var g errgroup.Group
	for i := 0; i < nChunks; i++ {
		i := i
		g.Go(func() error {
			start := i * parallelChunkSize
			end := start + parallelChunkSize
			if end > len(data) {
				end = len(data)
			}
			partials[i] = hashContentChunk(data[start:end], modulus)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &bloomSet{}
	for _, p := range partials {
		merged.union(p)
	}
	return merged, nil
}
