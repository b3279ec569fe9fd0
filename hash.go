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

// maxInputBytes is the implementation maximum input size (spec §7:
// "inputs exceeding implementation maxima, e.g. > 2^32 bytes if the
// platform so limits"). Inputs at or under this size always succeed;
// Generate rejects anything larger with InvalidInput rather than risking
// a struct_len or modulus computation overflowing on a 32-bit platform.
const maxInputBytes int64 = 1 << 32

// Generate computes the Fingerprint of data under cfg (spec §6,
// operation 1). It is a pure function of (data, cfg): two calls with
// byte-identical data and cfg produce byte-identical Fingerprints,
// independent of wall-clock time, thread identity or prior calls.
//
// Generate fails only with an *Error of Kind InvalidConfig (cfg does not
// validate) or InvalidInput (data exceeds an implementation maximum).
func Generate(data []byte, cfg Config) (Fingerprint, error) {
	if err := cfg.Validate(); err != nil {
		return Fingerprint{}, err
	}
	if int64(len(data)) > maxInputBytes {
		return Fingerprint{}, newError(InvalidInput, "input exceeds maximum supported length")
	}

	nibbles := padNibbles(hashStructural(data))

	bloom, err := hashContent(data, cfg)
	if err != nil {
		return Fingerprint{}, err
	}

	return Fingerprint{structNibbles: nibbles, bloom: *bloom}, nil
}

// CompareRaw is shorthand for calling Generate on both inputs and then
// Compare with cfg.Alpha (spec §6, operation 3). It fails exactly when
// either Generate call fails.
func CompareRaw(a, b []byte, cfg Config) (uint8, error) {
	fpA, err := Generate(a, cfg)
	if err != nil {
		return 0, err
	}
	fpB, err := Generate(b, cfg)
	if err != nil {
		return 0, err
	}
	return Compare(fpA, fpB, cfg.Alpha), nil
}
