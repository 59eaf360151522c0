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

// IntToBase returns n in the base given by spec.
func IntToBase(n int64, spec any, opts ...RenderOption) (string, error) {
	num, err := FromInt(n)
	if err != nil {
		return "", err
	}
	return num.ToBase(spec, opts...)
}

// IntToBinary returns n in base 2.
func IntToBinary(n int64) (string, error) {
	return IntToBase(n, 2)
}

// IntToHex returns n in lower case base 16.
func IntToHex(n int64) (string, error) {
	return IntToBase(n, 16)
}

// StringInBase returns a Number holding the digits of s read in the base
// given by spec.
func StringInBase(s string, spec any) (*Number, error) {
	return FromString(s).InBase(spec)
}

// StringInBinary reads s as a binary number.
func StringInBinary(s string) (*Number, error) {
	return FromString(s).InBinary()
}

// StringInHex reads s as a hexadecimal number, ignoring case.
func StringInHex(s string) (*Number, error) {
	return FromString(s).InHex()
}

// DigitsInBase returns a Number holding digits read in the base given by spec.
func DigitsInBase(digits []string, spec any) (*Number, error) {
	return FromDigits(digits).InBase(spec)
}

// DigitsInBinary reads digits as a binary number.
func DigitsInBinary(digits []string) (*Number, error) {
	return FromDigits(digits).InBinary()
}

// DigitsInHex reads digits as a hexadecimal number, ignoring case.
func DigitsInHex(digits []string) (*Number, error) {
	return FromDigits(digits).InHex()
}

// Convert reads s in the base from and returns it in the base to.
func Convert(s string, from, to any, opts ...RenderOption) (string, error) {
	n, err := StringInBase(s, from)
	if err != nil {
		return "", err
	}
	return n.ToBase(to, opts...)
}
