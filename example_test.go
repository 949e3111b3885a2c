package fixbits_test

import (
	"fmt"

	"github.com/hupe1980/fixbits"
)

func ExampleBitSet128() {
	var flags fixbits.BitSet128
	_ = flags.SetBits(0, 3)

	for i, bit := range flags.Bits() {
		if bit {
			fmt.Println("set:", i)
		}
	}
	// Output:
	// set: 0
	// set: 3
}

func ExampleBitSet128_Shift() {
	var b fixbits.BitSet128
	_ = b.Set(0)

	b.Shift(1)
	on, _ := b.Get(1)
	fmt.Println(on)

	b.Shift(fixbits.BitSet128Bits)
	fmt.Println(b.IsEmpty())
	// Output:
	// true
	// true
}

func ExampleBitSet128_HasAllOf() {
	var b fixbits.BitSet128
	_ = b.SetBits(1, 2, 40)

	mask := fixbits.None128()
	_ = mask.SetBits(1, 40)

	fmt.Println(b.HasAllOf(mask))
	fmt.Println(b.HasNoneOf(mask))
	// Output:
	// true
	// false
}

func ExampleAnd128() {
	a := fixbits.None128()
	_ = a.SetBits(1, 2)
	m := fixbits.None128()
	_ = m.SetBits(2, 3)

	c := fixbits.And128(a, m) // a and m stay untouched
	on, _ := c.Get(2)
	fmt.Println(on, a.OnesCount(), m.OnesCount())
	// Output:
	// true 2 2
}
