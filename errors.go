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

import "fmt"

// Kind classifies an Error by its recovery posture.
type Kind int

const (
	// InvalidConfig means a Config value failed validation: Alpha outside
	// [0,1] or MinModulus < 1. The caller must fix the Config before
	// calling Generate again.
	InvalidConfig Kind = iota + 1

	// InvalidInput means the input to Generate exceeds an implementation
	// maximum, or a structural vector passed to MarshalBinary or declared
	// in a buffer passed to UnmarshalBinary is longer than 256 packed
	// bytes. The caller must fix the input.
	InvalidInput

	// TooShort means a buffer passed to UnmarshalBinary is smaller than
	// the 4-byte fingerprint header.
	TooShort

	// BadMagic means the first byte of a serialised fingerprint is not
	// the expected magic constant. Indicates corruption.
	BadMagic

	// UnsupportedVersion means the second byte of a serialised
	// fingerprint names a version this build does not support. The
	// caller must upgrade.
	UnsupportedVersion

	// TruncatedStruct means the declared structural-vector length of a
	// serialised fingerprint exceeds the bytes remaining in the buffer.
	// Indicates corruption.
	TruncatedStruct
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "invalid config"
	case InvalidInput:
		return "invalid input"
	case TooShort:
		return "too short"
	case BadMagic:
		return "bad magic"
	case UnsupportedVersion:
		return "unsupported version"
	case TruncatedStruct:
		return "truncated struct"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every fallible operation in this
// package. Its Kind selects the caller's recovery posture; use errors.Is
// against the package-level sentinels (ErrInvalidConfig and friends) or
// errors.As to recover the Kind and Msg programmatically.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("lavinhash: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, ErrBadMagic) works regardless of Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Sentinel errors, one per Kind, for use with errors.Is. Errors returned
// by this package carry a more specific Msg but always satisfy
// errors.Is(err, the matching sentinel here).
var (
	ErrInvalidConfig      = &Error{Kind: InvalidConfig}
	ErrInvalidInput       = &Error{Kind: InvalidInput}
	ErrTooShort           = &Error{Kind: TooShort}
	ErrBadMagic           = &Error{Kind: BadMagic}
	ErrUnsupportedVersion = &Error{Kind: UnsupportedVersion}
	ErrTruncatedStruct    = &Error{Kind: TruncatedStruct}
)
