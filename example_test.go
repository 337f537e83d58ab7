package rankcode_test

import (
	"errors"
	"fmt"

	"github.com/seiflotfy/rankcode"
)

// Example walks the pipeline step by step.
func Example() {
	freq := rankcode.CountFrequencies("aab")
	fmt.Println("counts:", freq.Counts())

	mapping, err := rankcode.BuildCodeMapping(freq)
	if err != nil {
		panic(err)
	}
	fmt.Println("mapping:", mapping)

	encoded, err := rankcode.Encode("aab", mapping)
	if err != nil {
		panic(err)
	}
	fmt.Println("encoded:", encoded)

	decoded, err := rankcode.Decode(encoded, mapping.Reverse())
	if err != nil {
		panic(err)
	}
	fmt.Println("decoded:", decoded)

	// Output:
	// counts: map[97:2 98:1]
	// mapping: map[97:0 98:1]
	// encoded: [0 0 1]
	// decoded: aab
}

// ExampleModel trains once and reuses the table.
func ExampleModel() {
	m, err := rankcode.TrainModel("héllo wörld")
	if err != nil {
		panic(err)
	}

	encoded, err := m.Encode("wörld")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d symbols, %d bytes\n", m.Symbols(), len(encoded))

	decoded, _ := m.Decode(encoded)
	fmt.Println(decoded)

	// Output:
	// 9 symbols, 5 bytes
	// wörld
}

// ExampleDecode shows the error for a byte with no symbol.
func ExampleDecode() {
	_, err := rankcode.Decode([]byte{0, 7}, rankcode.ReverseMapping{0: 'a'})

	var invalid *rankcode.InvalidByteError
	if errors.As(err, &invalid) {
		fmt.Println("invalid byte:", invalid.Byte)
	}
	fmt.Println(err)

	// Output:
	// invalid byte: 7
	// invalid byte: 7 at offset 1
}
