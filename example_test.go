package bases_test

import (
	"fmt"

	"github.com/capitalone/bases"
)

func Example() {
	n, err := bases.FromString("10").InBase(2)
	if err != nil {
		panic(err)
	}
	s, _ := n.ToBase(16)
	fmt.Println(s)
	// Output: 2
}

func ExampleNumber_ToBase() {
	n := bases.FromUint64(62)
	s, _ := n.ToBase(62, bases.WithSeparator("~"))
	fmt.Println(s)

	s, _ = n.ToBase(bases.B62)
	fmt.Println(s)
	// Output:
	// 1~0
	// BA
}

func ExampleNumber_InHex() {
	n, _ := bases.FromString("FF").InHex()
	fmt.Println(n)

	_, err := bases.FromString("FF").InBase(16)
	fmt.Println(err != nil)
	// Output:
	// 255
	// true
}
