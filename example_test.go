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

package lavinhash_test

import (
	"fmt"

	"github.com/RafaCalRob/lavinhash"
)

func Example_generate() {
	cfg := lavinhash.DefaultConfig()

	fp, err := lavinhash.Generate([]byte("The quick brown fox jumps over the lazy dog"), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println(fp.StructLen() > 0)
	// Output:
	// true
}

func Example_compare() {
	cfg := lavinhash.DefaultConfig()

	score, err := lavinhash.CompareRaw(
		[]byte("The quick brown fox jumps over the lazy dog"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		cfg,
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(score)
	// Output:
	// 100
}

func Example_roundTrip() {
	cfg := lavinhash.DefaultConfig()

	fp, err := lavinhash.Generate([]byte("round trip example"), cfg)
	if err != nil {
		panic(err)
	}

	data, err := fp.MarshalBinary()
	if err != nil {
		panic(err)
	}

	var got lavinhash.Fingerprint
	if err := got.UnmarshalBinary(data); err != nil {
		panic(err)
	}

	fmt.Println(fp.Equal(got))
	// Output:
	// true
}

func Example_reweighting() {
	// alpha passed to Compare need not match the alpha used to Generate
	// either fingerprint: it is a free parameter for post-hoc
	// re-weighting of the same pair of fingerprints.
	cfg := lavinhash.DefaultConfig()

	a, err := lavinhash.Generate([]byte("alpha reweighting example, first document"), cfg)
	if err != nil {
		panic(err)
	}
	b, err := lavinhash.Generate([]byte("alpha reweighting example, second document"), cfg)
	if err != nil {
		panic(err)
	}

	structuralOnly := lavinhash.Compare(a, b, 1.0)
	contentOnly := lavinhash.Compare(a, b, 0.0)

	fmt.Println(structuralOnly <= 100 && contentOnly <= 100)
	// Output:
	// true
}
