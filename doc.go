// Package fixbits provides fixed-width, value-type bit sets that pack N*32
// boolean flags into an array of 32-bit words.
//
// The package ships two instantiations, BitSet128 (4 words) and BitSet192
// (6 words). Both are plain Go values: the zero value has no bits set,
// assignment copies, and == compares structurally. No operation allocates
// beyond the inline word array.
//
// # Quick Start
//
//	var flags fixbits.BitSet128
//	_ = flags.Set(3)
//	_ = flags.Set(100)
//
//	on, _ := flags.Get(3) // true
//
//	mask := fixbits.None128()
//	_ = mask.Set(100)
//	flags.UnsetMask(mask) // clear bit 100
//
// # Mutating vs. non-mutating forms
//
// Methods on a pointer receiver (Set, And, Or, Shift, ...) mutate the
// receiver in place. The package-level operator forms take their operands by
// value and return the result, leaving both operands untouched:
//
//	c := fixbits.And128(a, b) // a and b unchanged
//	d := fixbits.Rsh128(a, 5) // a shifted 5 bits toward higher indices
//
// # Shifting
//
// Shift(count) moves bits toward higher indices for positive counts
// (zero-filling from the low end) and toward lower indices for negative
// counts. Shift never fails: a magnitude at or beyond the bit width simply
// clears the whole set.
//
// # Iteration
//
// Bits returns a range-over-func iterator over (index, bit) pairs in
// ascending index order. Cursor returns an explicit restartable cursor with
// the same ordering. Both read the live storage, so mutations performed
// between steps are visible to the next read.
//
// # Concurrency
//
// Bit sets carry no internal synchronization. Distinct values are fully
// independent; concurrent access to one shared instance must be serialized
// by the caller.
//
// # Other word counts
//
// bitset192.go is generated from bitset128.go by cmd/fixbitsgen, which
// rewrites the canonical instance for another word count by token
// substitution. Run it via go generate to produce further sizes.
package fixbits
