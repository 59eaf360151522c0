/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package bases

import (
	"fmt"
	"math/big"
	"slices"
)

// Num constructs a big.Int from ordinals, where each element represents
// one digit in the given radix. The slice is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1. An empty slice is zero.
func Num(s []int, radix int) (*big.Int, error) {
	if radix < 1 {
		return nil, fmt.Errorf("%w: radix %d", ErrEmptyBase, radix)
	}

	var bigRadix, bv big.Int
	x := new(big.Int)
	bigRadix.SetInt64(int64(radix))
	for i, v := range s {
		if v < 0 || v >= radix {
			return nil, fmt.Errorf("value at %d out of range: got %d - expected 0..%d", i, v, radix-1)
		}
		bv.SetInt64(int64(v))
		x.Mul(x, &bigRadix)
		x.Add(x, &bv)
	}
	return x, nil
}

// Str returns the ordinals representing x in the specified radix, with the most
// significant digit in element 0. Zero is the single ordinal 0.
// A radix of 1 can only represent zero.
func Str(x *big.Int, radix int) ([]int, error) {
	if radix < 1 {
		return nil, fmt.Errorf("%w: radix %d", ErrEmptyBase, radix)
	}
	if x == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidValue)
	}

	switch x.Sign() {
	case -1:
		return nil, fmt.Errorf("%w: %s", ErrNegative, x)
	case 0:
		return []int{0}, nil
	}
	if radix == 1 {
		return nil, fmt.Errorf("%w: %s", ErrUnaryBase, x)
	}

	var bigRadix, mod, v big.Int
	v.Set(x)
	bigRadix.SetInt64(int64(radix))

	// The slice is built from the least significant digit upwards.
	var r []int
	for v.Sign() != 0 {
		v.QuoRem(&v, &bigRadix, &mod)
		r = append(r, int(mod.Int64()))
	}
	slices.Reverse(r)
	return r, nil
}

// Encode returns the digits of x in base b, most significant first.
// Encode of zero is the single symbol b.Zero().
func Encode(x *big.Int, b Base) ([]string, error) {
	ords, err := Str(x, b.Radix())
	if err != nil {
		return nil, err
	}
	return b.Digits(ords)
}

// Decode returns the value of digits read as a positional number in base b.
// Leading zero symbols are harmless and an empty sequence decodes to zero.
func Decode(digits []string, b Base) (*big.Int, error) {
	if b.Radix() == 0 {
		return nil, ErrEmptyBase
	}
	ords, err := b.Ordinals(digits)
	if err != nil {
		return nil, err
	}
	return Num(ords, b.Radix())
}
