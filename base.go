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
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

const alnum = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxAlnumRadix is the largest integer base whose symbols are drawn from
// alnum. Larger integer bases use decimal strings as symbols.
const maxAlnumRadix = len(alnum)

// Base supports the conversion of an arbitrary set of digit symbols into
// ordinal values from 0 to the number of symbols-1.
// Element 'sto' (symbol-to-ordinal) supports the mapping from symbols to ordinal values.
// Element 'ots' (ordinal-to-symbol) supports the mapping from ordinal values to symbols.
//
// A Base is immutable once built and may be shared freely.
type Base struct {
	sto map[string]int
	ots []string
}

var (
	// B62 holds the alphanumeric symbols: A-Z, then a-z, then 0-9.
	B62 = MustBase(strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", ""))

	// B64 is B62 followed by "+" and "/".
	B64 = MustBase(append(B62.Symbols(), "+", "/"))

	// Binary is the base built from the integer 2.
	Binary = MustBase(2)

	// Decimal is the implied source base of numbers built from integers.
	Decimal = MustBase(10)

	// Hex is the base built from the integer 16. Its letters are lower case.
	Hex = MustBase(16)
)

// NewBase builds a Base from spec, which is either a non-negative integer
// or an ordered list of symbols.
//
// An integer N between 2 and 36 yields the first N symbols of 0-9a-z, so that
// NewBase(16) is lower case hexadecimal. Any other positive N yields the
// decimal strings "0" through "N-1". List elements are converted to strings
// in order. Repeated symbols are an error whichever form spec takes.
func NewBase(spec any) (Base, error) {
	switch s := spec.(type) {
	case Base:
		if s.Radix() == 0 {
			return Base{}, ErrEmptyBase
		}
		return s, nil
	case *Base:
		if s == nil || s.Radix() == 0 {
			return Base{}, ErrEmptyBase
		}
		return *s, nil
	case []string:
		return newBase(append([]string(nil), s...))
	case string, nil:
		return Base{}, fmt.Errorf("%w: unsupported spec %#v", ErrInvalidBase, spec)
	}

	if isInteger(spec) {
		n, err := safemath.ConvertAny[int](spec)
		if err != nil {
			return Base{}, fmt.Errorf("%w: %v", ErrInvalidBase, err)
		}
		return newBase(radixSymbols(n))
	}

	symbols, ok, err := stringify(spec)
	if err != nil {
		return Base{}, fmt.Errorf("%w: %v", ErrInvalidBase, err)
	}
	if !ok {
		return Base{}, fmt.Errorf("%w: unsupported spec of type %T", ErrInvalidBase, spec)
	}
	return newBase(symbols)
}

// MustBase is like NewBase but panics if spec is not a valid base.
func MustBase(spec any) Base {
	b, err := NewBase(spec)
	if err != nil {
		panic(err)
	}
	return b
}

func newBase(symbols []string) (Base, error) {
	if len(symbols) == 0 {
		return Base{}, ErrEmptyBase
	}

	ret := Base{
		sto: make(map[string]int, len(symbols)),
		ots: symbols,
	}
	for i, s := range symbols {
		if j, ok := ret.sto[s]; ok {
			return Base{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateDigits, s, j, i)
		}
		ret.sto[s] = i
	}
	return ret, nil
}

// radixSymbols returns the canonical symbols of the integer base n.
func radixSymbols(n int) []string {
	switch {
	case n <= 0:
		return nil
	case n >= 2 && n <= maxAlnumRadix:
		return strings.Split(alnum[:n], "")
	}

	ret := make([]string, n)
	for i := range ret {
		ret[i] = strconv.Itoa(i)
	}
	return ret
}

// stringify converts every element of a slice or array to a string.
// ok is false when v is neither.
func stringify(v any) (ret []string, ok bool, err error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false, nil
	}

	ret = make([]string, rv.Len())
	for i := range ret {
		ret[i], err = cast.ToStringE(rv.Index(i).Interface())
		if err != nil {
			return nil, true, fmt.Errorf("element at position %d: %w", i, err)
		}
	}
	return ret, true, nil
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// Radix returns the number of symbols in the Base.
func (b Base) Radix() int {
	return len(b.ots)
}

// Symbols returns a copy of the symbols of the Base in ordinal order.
func (b Base) Symbols() []string {
	return append([]string(nil), b.ots...)
}

// Zero returns the symbol at ordinal 0.
func (b Base) Zero() string {
	if len(b.ots) == 0 {
		return ""
	}
	return b.ots[0]
}

// Index returns the ordinal value of symbol.
func (b Base) Index(symbol string) (int, bool) {
	i, ok := b.sto[symbol]
	return i, ok
}

// Valid reports whether every digit is a symbol of the Base.
// An empty sequence is valid.
func (b Base) Valid(digits []string) bool {
	for _, d := range digits {
		if _, ok := b.sto[d]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether b and o hold the same symbols in the same order.
func (b Base) Equal(o Base) bool {
	if len(b.ots) != len(o.ots) {
		return false
	}
	for i := range b.ots {
		if b.ots[i] != o.ots[i] {
			return false
		}
	}
	return true
}

// Ordinals maps the supplied digits to their ordinal values.
// It is an error for digits to contain symbols that are not in the Base.
func (b Base) Ordinals(digits []string) ([]int, error) {
	ret := make([]int, len(digits))

	var ok bool
	for i, d := range digits {
		ret[i], ok = b.sto[d]
		if !ok {
			return nil, fmt.Errorf("%w: digit %q at position %d is not in base", ErrWrongDigits, d, i)
		}
	}
	return ret, nil
}

// Digits maps ordinal values back to their symbols.
// It is an error for ordinals to fall outside [0, Radix()).
func (b Base) Digits(ordinals []int) ([]string, error) {
	ret := make([]string, len(ordinals))
	for i, v := range ordinals {
		if v < 0 || v > len(b.ots)-1 {
			return nil, fmt.Errorf("numeral at position %d out of range: %d not in [0..%d]", i, v, len(b.ots)-1)
		}
		ret[i] = b.ots[v]
	}
	return ret, nil
}
