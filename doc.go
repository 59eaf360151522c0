/*
Package bases converts non-negative integers between arbitrary positional
numeral bases.

A base is an ordered list of unique symbols. Symbols are strings, so a digit
may be "A", "foo" or "💙". The ordinal of a symbol within its base is its
digit value; the symbol at ordinal 0 plays the part of zero.

	n, _ := bases.FromString("10").InBase(2)
	s, _ := n.ToBase(16) // "2"

	m, _ := bases.FromDigits([]string{"bar", "foo"}).InBase([]string{"foo", "bar"})
	v, _ := m.Int() // 2

Integer base specs from 2 to 36 use the symbols 0-9a-z, so InBase(16) only
accepts lower case letters. InHex reads hexadecimal ignoring case.

The engine itself is Num and Str, which convert between big.Int values and
ordinals, and Encode and Decode, which add the symbol mapping of a Base.
*/
package bases
