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

import "encoding/binary"

// Wire format constants (spec §6): a self-describing binary layout,
// bit-exact across platforms and versions.
const (
	magicByte      byte = 0x48
	versionByte    byte = 0x01
	headerSize          = 4
	bloomOffset         = headerSize
	structOffset        = headerSize + bloomBytes // 1028
	maxStructBytes      = 256                      // struct_len fits a byte in practice; field is 16-bit.
)

// Fingerprint is the immutable, freely-copyable output of Generate: a
// structural entropy vector and a content Bloom bitmap (spec §3). Two
// Fingerprints derived from byte-identical inputs under byte-identical
// Configs are themselves byte-identical.
type Fingerprint struct {
	// structNibbles holds one 4-bit value (0-15) per byte, in block
	// order, high-nibble-first packing order applied only at
	// marshal time. Its length is always even: an odd count of real
	// blocks gets one zero-padding nibble appended at generation time
	// (spec §4.3), so marshal/unmarshal never need to track a separate
	// "real" length.
	structNibbles []uint8

	bloom bloomSet
}

// padNibbles appends a single zero nibble if n has odd length, so the
// packed form never loses information about how many bytes it occupies
// (spec §4.3: "If the total count is odd, the final low nibble is zero").
func padNibbles(n []uint8) []uint8 {
	if len(n)%2 == 0 {
		return n
	}
	return append(n, 0)
}

// StructLen returns the number of entropy nibbles in fp's structural
// layer (always even; 0 for an empty input).
func (fp Fingerprint) StructLen() int {
	return len(fp.structNibbles)
}

// Equal reports whether fp and other are byte-identical fingerprints.
func (fp Fingerprint) Equal(other Fingerprint) bool {
	if fp.bloom != other.bloom {
		return false
	}
	if len(fp.structNibbles) != len(other.structNibbles) {
		return false
	}
	for i, v := range fp.structNibbles {
		if other.structNibbles[i] != v {
			return false
		}
	}
	return true
}

// String returns a short diagnostic summary of fp, not its raw bytes.
func (fp Fingerprint) String() string {
	return "Fingerprint(struct=" + itoa(len(fp.structNibbles)) + " nibbles, bloom=" +
		itoa(fp.bloom.popcount()) + "/" + itoa(bloomBits) + " bits set)"
}

// itoa avoids pulling in strconv for a single diagnostic helper; kept
// tiny and allocation-light since String is debug-only.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// packStruct packs fp's nibbles two-per-byte, high-nibble-first (spec
// §4.3).
func packStruct(nibbles []uint8) []byte {
	out := make([]byte, len(nibbles)/2)
	for i := 0; i < len(out); i++ {
		out[i] = nibbles[2*i]<<4 | nibbles[2*i+1]&0x0F
	}
	return out
}

// unpackStruct is the inverse of packStruct.
func unpackStruct(b []byte) []uint8 {
	out := make([]uint8, len(b)*2)
	for i, by := range b {
		out[2*i] = by >> 4
		out[2*i+1] = by & 0x0F
	}
	return out
}

// MarshalBinary serialises fp into the canonical wire format of spec §6.
// It is pure: no I/O, no allocation beyond the returned buffer.
func (fp Fingerprint) MarshalBinary() ([]byte, error) {
	packed := packStruct(fp.structNibbles)
	if len(packed) > maxStructBytes {
		// Unreachable via Generate (structural.go bounds the block
		// count well under this), but guarded here because
		// MarshalBinary is part of the public codec contract and must
		// never silently emit a malformed struct_len.
		return nil, newError(InvalidInput, "structural vector too long to serialise")
	}

	buf := make([]byte, structOffset+len(packed))
	buf[0] = magicByte
	buf[1] = versionByte
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(packed)))

	for i, w := range fp.bloom.words {
		binary.LittleEndian.PutUint64(buf[bloomOffset+8*i:], w)
	}

	copy(buf[structOffset:], packed)
	return buf, nil
}

// UnmarshalBinary decodes data into fp per spec §6, validating the
// header and length framing (spec §4.5). A declared struct_len above
// 256, the most MarshalBinary emits, is rejected with InvalidInput.
// Trailing bytes beyond the declared struct_len are ignored (spec §6:
// "default behaviour is to ignore them to permit framing").
func (fp *Fingerprint) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return newError(TooShort, "buffer smaller than 4-byte header")
	}
	if data[0] != magicByte {
		return newError(BadMagic, "first byte is not 0x48")
	}
	if data[1] != versionByte {
		return newError(UnsupportedVersion, "version byte not supported")
	}

	structLen := int(binary.LittleEndian.Uint16(data[2:4]))
	if structLen > maxStructBytes {
		return newError(InvalidInput, "declared struct length exceeds 256 bytes")
	}
	if len(data) < structOffset {
		return newError(TruncatedStruct, "buffer too small for bloom section")
	}
	if structOffset+structLen > len(data) {
		return newError(TruncatedStruct, "declared struct length exceeds buffer")
	}

	var bloom bloomSet
	for i := 0; i < bloomWords; i++ {
		bloom.words[i] = binary.LittleEndian.Uint64(data[bloomOffset+8*i:])
	}

	fp.bloom = bloom
	fp.structNibbles = unpackStruct(data[structOffset : structOffset+structLen])
	return nil
}
