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
	"strings"
	"unicode"

	"go.dw1.io/safemath"
	"golang.org/x/text/cases"
)

// Number is a base-agnostic non-negative integer. It is built either from a
// value, whose source base is implied to be Decimal, or from a sequence of
// digits, which must be given a source base with InBase, InHex or InBinary
// before it can be rendered.
//
// InBase and friends mutate the Number in place and return it. A Number is
// not safe for concurrent use.
type Number struct {
	// digits is nil unless the Number was built from digits.
	digits []string
	value  *big.Int
	base   Base
}

// FromInt returns a Number holding n. Negative values are rejected.
func FromInt(n int64) (*Number, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative integer %d", ErrInvalidValue, n)
	}
	return FromUint64(uint64(n)), nil
}

// FromUint64 returns a Number holding n.
func FromUint64(n uint64) *Number {
	return &Number{value: new(big.Int).SetUint64(n), base: Decimal}
}

// FromBigInt returns a Number holding a copy of x.
func FromBigInt(x *big.Int) (*Number, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidValue)
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer %s", ErrInvalidValue, x)
	}
	return &Number{value: new(big.Int).Set(x), base: Decimal}, nil
}

// FromString returns a Number whose digits are taken from s. If s contains
// white space it separates multi-character digits, otherwise every character
// of s is one digit.
func FromString(s string) *Number {
	return &Number{digits: splitDigits(s)}
}

// FromDigits returns a Number whose digits are the given symbols, most
// significant first.
func FromDigits(digits []string) *Number {
	return &Number{digits: append([]string{}, digits...)}
}

// FromSymbols is like FromDigits but converts every element to a string
// first, so FromSymbols(1, 0, 1) holds the digits "1", "0", "1".
func FromSymbols(symbols ...any) (*Number, error) {
	digits, _, err := stringify(symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return FromDigits(digits), nil
}

// New returns a Number built from v, which is an integer, a *big.Int, a
// string or a list of symbols. Any other value is an ErrInvalidValue.
func New(v any) (*Number, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidValue)
	case *big.Int:
		return FromBigInt(x)
	case string:
		return FromString(x), nil
	case []string:
		return FromDigits(x), nil
	}

	if isInteger(v) {
		if i, err := safemath.ConvertAny[int64](v); err == nil && i < 0 {
			return nil, fmt.Errorf("%w: negative integer %d", ErrInvalidValue, i)
		}
		n, err := safemath.ConvertAny[uint64](v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return FromUint64(n), nil
	}

	digits, ok, err := stringify(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %#v isn't a valid value", ErrInvalidValue, v)
	}
	return FromDigits(digits), nil
}

func splitDigits(s string) []string {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return strings.Fields(s)
	}
	return strings.Split(s, "")
}

// InBase declares the source base of the Number. Digits are checked against
// the base and decoded; a Number built from a value keeps its value and only
// records the base. Calling InBase again decodes the original digits afresh.
func (n *Number) InBase(spec any) (*Number, error) {
	b, err := NewBase(spec)
	if err != nil {
		return nil, err
	}
	if n.digits == nil {
		n.base = b
		return n, nil
	}

	if !b.Valid(n.digits) {
		return nil, fmt.Errorf("%w: some digits of %q aren't in base of radix %d", ErrWrongDigits, n.digits, b.Radix())
	}
	v, err := Decode(n.digits, b)
	if err != nil {
		return nil, err
	}
	n.value, n.base = v, b
	return n, nil
}

// InHex declares the Number to be hexadecimal, ignoring case and an optional
// 0x prefix. Unlike InBase(16), which only accepts the lower case symbols of
// Hex, "A" and "a" are both ten here.
func (n *Number) InHex() (*Number, error) {
	if n.digits == nil {
		n.base = Hex
		return n, nil
	}

	s := cases.Fold().String(strings.Join(n.digits, ""))
	digits := strings.Split(strings.TrimPrefix(s, "0x"), "")
	v, err := Decode(digits, Hex)
	if err != nil {
		return nil, err
	}
	n.value, n.base = v, Hex
	return n, nil
}

// InBinary is a shortcut for InBase(2).
func (n *Number) InBinary() (*Number, error) {
	return n.InBase(2)
}

// Resolved reports whether the value of the Number is known.
func (n *Number) Resolved() bool {
	return n.value != nil
}

// SourceBase returns the declared or implied source base.
func (n *Number) SourceBase() (Base, bool) {
	return n.base, n.Resolved()
}

// RenderOption customizes ToBase.
type RenderOption func(*renderOptions)

type renderOptions struct {
	separator string
}

// WithSeparator inserts sep between digits.
func WithSeparator(sep string) RenderOption {
	return func(o *renderOptions) {
		o.separator = sep
	}
}

// ToDigits returns the digits of the Number in the base given by spec, most
// significant first.
func (n *Number) ToDigits(spec any) ([]string, error) {
	if !n.Resolved() {
		return nil, ErrNoBaseSpecified
	}
	b, err := NewBase(spec)
	if err != nil {
		return nil, err
	}
	return Encode(n.value, b)
}

// ToBase returns the Number in the base given by spec, with digits joined by
// the separator, if any. The result is a string even for base 10; see Int.
func (n *Number) ToBase(spec any, opts ...RenderOption) (string, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	digits, err := n.ToDigits(spec)
	if err != nil {
		return "", err
	}
	return strings.Join(digits, o.separator), nil
}

// ToBinary is a shortcut for ToBase(2).
func (n *Number) ToBinary() (string, error) {
	return n.ToBase(2)
}

// ToHex is a shortcut for ToBase(16). The result is lower case.
func (n *Number) ToHex() (string, error) {
	return n.ToBase(16)
}

// Int returns the value of the Number.
func (n *Number) Int() (*big.Int, error) {
	s, err := n.ToBase(Decimal)
	if err != nil {
		return nil, err
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return x, nil
}

// String returns the Number in base 10, or "<unresolved>" when its source
// base has not been declared.
func (n *Number) String() string {
	if !n.Resolved() {
		return "<unresolved>"
	}
	return n.value.String()
}
