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

// Config holds the parameters of a Generate call. A zero Config is not
// valid; use DefaultConfig and override individual fields, or build one
// from scratch and call Validate.
type Config struct {
	// Alpha is the weight given to structural similarity in the combined
	// score Compare produces, in [0,1]. The remaining weight (1-Alpha)
	// goes to content similarity. Must be in [0,1].
	Alpha float64

	// MinModulus is the lower bound on the adaptive content-trigger
	// modulus (see content.go). Higher values trigger fewer content
	// features and produce a sparser Bloom bitmap. Must be >= 1.
	MinModulus int

	// EnableParallel allows Generate to split the content-hashing pass
	// of inputs at or above parallelChunkThreshold across goroutines.
	// Structural hashing is never split: it is already O(n) with a tiny
	// constant factor and the adaptive block count keeps its output
	// bounded regardless.
	EnableParallel bool

	// Trigger the "contains filtered or unexported fields" message
	// for forward compatibility and force the caller to use named
	// fields.
	_ struct{}
}

// Default configuration values, per spec.
const (
	DefaultAlpha          = 0.3
	DefaultMinModulus     = 16
	DefaultEnableParallel = true
)

// DefaultConfig returns the package's default Config: Alpha 0.3,
// MinModulus 16, EnableParallel true.
func DefaultConfig() Config {
	return Config{
		Alpha:          DefaultAlpha,
		MinModulus:     DefaultMinModulus,
		EnableParallel: DefaultEnableParallel,
	}
}

// Validate reports whether c is a well-formed Config, returning an
// *Error of Kind InvalidConfig describing the first violation found.
func (c Config) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return newError(InvalidConfig, "alpha must be in [0,1]")
	}
	if c.MinModulus < 1 {
		return newError(InvalidConfig, "min_modulus must be >= 1")
	}
	return nil
}
