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

import "math"

// structuralSimilarity computes sim_struct in [0,1] for two nibble
// sequences using classical edit distance (spec §4.6): one-row dynamic
// programming over the shorter sequence, O(|a|*|b|) time, O(min(|a|,|b|))
// space. Substitution cost is 1 when nibbles differ and 0 when equal;
// insertion and deletion cost 1.
func structuralSimilarity(a, b []uint8) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Ensure a is the shorter sequence so the working row is minimal.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	cur := make([]int, len(a)+1)

	for j := 1; j <= len(b); j++ {
		cur[0] = j
		for i := 1; i <= len(a); i++ {
			sub := prev[i-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			del := prev[i] + 1
			ins := cur[i-1] + 1

			m := sub
			if del < m {
				m = del
			}
			if ins < m {
				m = ins
			}
			cur[i] = m
		}
		prev, cur = cur, prev
	}

	d := prev[len(a)]
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(d)/float64(maxLen)
}

// contentSimilarity computes sim_content in [0,1] as the Jaccard index of
// two Bloom bitmaps (spec §4.6): popcount(A AND B) / popcount(A OR B),
// with both empty defined as similarity 1.0.
func contentSimilarity(a, b *bloomSet) float64 {
	union := a.unionCount(b)
	if union == 0 {
		return 1.0
	}
	intersection := a.intersectCount(b)
	return float64(intersection) / float64(union)
}

// Compare returns the similarity score, in 0..100, between two
// Fingerprints under weighting alpha (spec §4.6). alpha need not equal
// the Alpha used to Generate either fingerprint -- it is a free parameter
// for post-hoc re-weighting -- but it must lie in [0,1]; values outside
// that range are clamped.
//
// Compare is a pure function and never fails: reflexive (Compare(fp, fp,
// alpha) == 100 for any nonzero-length fp), symmetric, and bounded in
// [0,100] for every pair of fingerprints and every alpha.
func Compare(a, b Fingerprint, alpha float64) uint8 {
	if math.IsNaN(alpha) || alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	simStruct := structuralSimilarity(a.structNibbles, b.structNibbles)
	simContent := contentSimilarity(&a.bloom, &b.bloom)

	score := math.Floor((alpha*simStruct + (1-alpha)*simContent) * 100)
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return uint8(score)
}
