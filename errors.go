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

import "errors"

var (
	// ErrInvalidValue is returned when a Number is built from a value of
	// unsupported shape, or from a negative integer.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoBaseSpecified is returned when a Number built from digits is
	// rendered before its source base was declared.
	ErrNoBaseSpecified = errors.New("no source base specified")

	// ErrWrongDigits is returned when a digit is not a symbol of the
	// declared source base.
	ErrWrongDigits = errors.New("digits not in base")

	// ErrDuplicateDigits is returned when a base spec repeats a symbol.
	ErrDuplicateDigits = errors.New("duplicate digits in base")

	// ErrEmptyBase is returned for a base spec with no symbols.
	ErrEmptyBase = errors.New("base must contain at least one digit")

	// ErrInvalidBase is returned for a base spec that is neither an
	// integer nor a list of symbols.
	ErrInvalidBase = errors.New("invalid base")

	// ErrUnaryBase is returned when a non-zero value is encoded in a base
	// holding a single symbol.
	ErrUnaryBase = errors.New("non-zero value in single digit base")

	// ErrNegative is returned when a negative value reaches the engine.
	ErrNegative = errors.New("negative value")
)
