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

// normalizeByte maps a single raw input byte to its canonical form per
// spec §4.1:
//
//	0x09, 0x0A, 0x0D        unchanged (tab, LF, CR)
//	0x00..0x1F (other)      -> 0x20 (space)
//	'A'..'Z'                -> +0x20 (ASCII case-fold)
//	otherwise (incl. >=0x80) unchanged
//
// It is deterministic, stateless and O(1), and is meant to be inlined
// into the hot loops of the structural and content hashers rather than
// used to materialise a normalised copy of the input (spec §9: "there is
// no benefit to materialising the normalised stream").
func normalizeByte(b byte) byte {
	switch b {
	case 0x09, 0x0A, 0x0D:
		return b
	}
	if b < 0x20 {
		return 0x20
	}
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}
