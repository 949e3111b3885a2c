package fixbits

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

//go:generate go run ./cmd/fixbitsgen -src bitset128.go -words 6

const (
	// BitSet128Words is the number of 32-bit words backing a BitSet128.
	BitSet128Words = 4
	// BitSet128Bits is the number of addressable bits in a BitSet128.
	BitSet128Bits = BitSet128Words * wordBits
)

// BitSet128 is a fixed-width set of 128 boolean flags packed into an array
// of 32-bit words. Word 0 holds bits [0,32), word 1 holds bits [32,64), and
// so on (little-endian word order, matching bit-index arithmetic).
//
// BitSet128 is a plain value: the zero value has no bits set, assignment
// copies the whole set, and == compares structurally. Methods on a pointer
// receiver mutate the receiver in place; the package-level operator forms
// (And128, Or128, Rsh128, ...) operate on copies and leave their operands
// untouched.
//
// Operations that take another BitSet128 as a mask never mutate the mask.
// There is no internal synchronization: concurrent use of one shared
// instance must be serialized by the caller.
type BitSet128 [BitSet128Words]uint32

// None128 returns a BitSet128 with no bits set. It is identical to the zero
// value and exists for symmetry with All128.
func None128() BitSet128 {
	return BitSet128{}
}

// All128 returns a BitSet128 with every bit set.
func All128() BitSet128 {
	var b BitSet128
	b.Not()
	return b
}

// locate128 maps a global bit index to its word index and within-word mask.
// Every single-bit operation bounds-checks through it before touching
// storage.
func locate128(i int) (int, uint32, error) {
	if i < 0 || i >= BitSet128Bits {
		return 0, 0, &ErrIndexOutOfRange{Index: i, Bits: BitSet128Bits}
	}
	return i / wordBits, uint32(1) << (i % wordBits), nil
}

// Get reports whether bit i is set.
func (b BitSet128) Get(i int) (bool, error) {
	w, mask, err := locate128(i)
	if err != nil {
		return false, err
	}
	return b[w]&mask == mask, nil
}

// Set sets bit i.
func (b *BitSet128) Set(i int) error {
	w, mask, err := locate128(i)
	if err != nil {
		return err
	}
	b[w] |= mask
	return nil
}

// Unset clears bit i.
func (b *BitSet128) Unset(i int) error {
	w, mask, err := locate128(i)
	if err != nil {
		return err
	}
	b[w] &^= mask
	return nil
}

// Flip toggles bit i.
func (b *BitSet128) Flip(i int) error {
	w, mask, err := locate128(i)
	if err != nil {
		return err
	}
	b[w] ^= mask
	return nil
}

// SetTo sets bit i to v. It is the indexed-write form: equivalent to Set
// when v is true and to Unset otherwise.
func (b *BitSet128) SetTo(i int, v bool) error {
	if v {
		return b.Set(i)
	}
	return b.Unset(i)
}

// SetBits sets every bit in indices, in order. Application is eager: if an
// index is out of range, the bits named before it stay set and the error is
// returned immediately. There is no rollback.
func (b *BitSet128) SetBits(indices ...int) error {
	for _, i := range indices {
		if err := b.Set(i); err != nil {
			return err
		}
	}
	return nil
}

// UnsetBits clears every bit in indices, in order, with the same eager
// partial-application behavior as SetBits.
func (b *BitSet128) UnsetBits(indices ...int) error {
	for _, i := range indices {
		if err := b.Unset(i); err != nil {
			return err
		}
	}
	return nil
}

// FlipBits toggles every bit in indices, in order, with the same eager
// partial-application behavior as SetBits.
func (b *BitSet128) FlipBits(indices ...int) error {
	for _, i := range indices {
		if err := b.Flip(i); err != nil {
			return err
		}
	}
	return nil
}

// SetMask sets every bit that is set in m. Equivalent to Or.
func (b *BitSet128) SetMask(m BitSet128) { b.Or(m) }

// UnsetMask clears every bit that is set in m. Equivalent to AndNot.
func (b *BitSet128) UnsetMask(m BitSet128) { b.AndNot(m) }

// FlipMask toggles every bit that is set in m. Equivalent to Xor.
func (b *BitSet128) FlipMask(m BitSet128) { b.Xor(m) }

// And intersects b with m in place.
func (b *BitSet128) And(m BitSet128) {
	for i := range b {
		b[i] &= m[i]
	}
}

// AndNot clears the bits of b that are set in m.
func (b *BitSet128) AndNot(m BitSet128) {
	for i := range b {
		b[i] &^= m[i]
	}
}

// Nand replaces b with NOT(b AND m).
func (b *BitSet128) Nand(m BitSet128) {
	for i := range b {
		b[i] = ^(b[i] & m[i])
	}
}

// Or unions b with m in place.
func (b *BitSet128) Or(m BitSet128) {
	for i := range b {
		b[i] |= m[i]
	}
}

// OrNot replaces b with b OR NOT m.
func (b *BitSet128) OrNot(m BitSet128) {
	for i := range b {
		b[i] |= ^m[i]
	}
}

// Nor replaces b with NOT(b OR m).
func (b *BitSet128) Nor(m BitSet128) {
	for i := range b {
		b[i] = ^(b[i] | m[i])
	}
}

// Xor replaces b with its symmetric difference with m.
func (b *BitSet128) Xor(m BitSet128) {
	for i := range b {
		b[i] ^= m[i]
	}
}

// XorNot replaces b with b XOR NOT m.
func (b *BitSet128) XorNot(m BitSet128) {
	for i := range b {
		b[i] ^= ^m[i]
	}
}

// NotXor replaces b with NOT(b XOR m). On fixed-width words this coincides
// with XorNot.
func (b *BitSet128) NotXor(m BitSet128) {
	for i := range b {
		b[i] = ^(b[i] ^ m[i])
	}
}

// Not complements every bit of b in place.
func (b *BitSet128) Not() {
	for i := range b {
		b[i] = ^b[i]
	}
}

// IsEmpty reports whether no bit is set.
func (b BitSet128) IsEmpty() bool {
	return b == BitSet128{}
}

// HasAllOf reports whether every bit set in m is also set in b.
func (b BitSet128) HasAllOf(m BitSet128) bool {
	b.And(m)
	return b == m
}

// HasAnyOf reports whether b and m share at least one set bit.
func (b BitSet128) HasAnyOf(m BitSet128) bool {
	b.And(m)
	return !b.IsEmpty()
}

// HasNoneOf reports whether b and m share no set bit.
func (b BitSet128) HasNoneOf(m BitSet128) bool {
	return !b.HasAnyOf(m)
}

// Shift moves every bit of b by count positions in place. Positive counts
// move bits toward higher indices, zero-filling from the low end; negative
// counts move bits toward lower indices, zero-filling from the high end.
// Bits moved past either end are discarded.
//
// Shift never fails: a count magnitude of BitSet128Bits or more clears the
// whole set.
func (b *BitSet128) Shift(count int) {
	if count == 0 {
		return
	}
	if count >= BitSet128Bits || count <= -BitSet128Bits {
		*b = BitSet128{}
		return
	}
	if count > 0 {
		b.shiftUp(count)
	} else {
		b.shiftDown(-count)
	}
}

// shiftUp moves bits toward higher indices. count is in (0, BitSet128Bits).
//
// Two passes keep every word touched at most twice without scratch storage:
// first a sub-word pass folds the carry out of each lower word into its
// neighbor, then a whole-word pass relocates word contents. Traversal runs
// high to low so each source word is read before it is overwritten.
func (b *BitSet128) shiftUp(count int) {
	whole, sub := count/wordBits, count%wordBits
	if sub != 0 {
		for i := BitSet128Words - 1; i > 0; i-- {
			b[i] = b[i]<<sub | b[i-1]>>(wordBits-sub)
		}
		b[0] <<= sub
	}
	if whole != 0 {
		for i := BitSet128Words - 1; i >= whole; i-- {
			b[i] = b[i-whole]
		}
		for i := whole - 1; i >= 0; i-- {
			b[i] = 0
		}
	}
}

// shiftDown mirrors shiftUp toward lower indices, traversing low to high.
func (b *BitSet128) shiftDown(count int) {
	whole, sub := count/wordBits, count%wordBits
	if sub != 0 {
		for i := 0; i < BitSet128Words-1; i++ {
			b[i] = b[i]>>sub | b[i+1]<<(wordBits-sub)
		}
		b[BitSet128Words-1] >>= sub
	}
	if whole != 0 {
		for i := 0; i < BitSet128Words-whole; i++ {
			b[i] = b[i+whole]
		}
		for i := BitSet128Words - whole; i < BitSet128Words; i++ {
			b[i] = 0
		}
	}
}

// ShiftRight shifts d bits toward higher indices: shorthand for Shift(d).
func (b *BitSet128) ShiftRight(d int) { b.Shift(d) }

// ShiftLeft shifts d bits toward lower indices: shorthand for Shift(-d).
func (b *BitSet128) ShiftLeft(d int) { b.Shift(-d) }

// Cursor128 is a restartable cursor over the bits of a BitSet128, visiting
// indices in ascending order. It reads the live storage rather than a
// snapshot: mutations performed on the set between steps are visible at the
// next read.
type Cursor128 struct {
	b   *BitSet128
	pos int
}

// Cursor returns a cursor positioned before the first bit. Call Next to
// advance to bit 0.
func (b *BitSet128) Cursor() *Cursor128 {
	return &Cursor128{b: b, pos: -1}
}

// Next advances the cursor and reports whether a bit is available.
func (c *Cursor128) Next() bool {
	if c.pos >= BitSet128Bits {
		return false
	}
	c.pos++
	return c.pos < BitSet128Bits
}

// Index returns the bit index the cursor is positioned on.
func (c *Cursor128) Index() int { return c.pos }

// Bit returns the value of the bit under the cursor. It fails with
// *ErrIndexOutOfRange before the first Next and after Next has returned
// false.
func (c *Cursor128) Bit() (bool, error) {
	return c.b.Get(c.pos)
}

// Reset repositions the cursor before the first bit.
func (c *Cursor128) Reset() { c.pos = -1 }

// Bits returns an iterator over (index, bit) pairs in ascending index
// order. Like Cursor, it reads the live storage on every step.
func (b *BitSet128) Bits() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < BitSet128Bits; i++ {
			if !yield(i, b[i/wordBits]&(uint32(1)<<(i%wordBits)) != 0) {
				return
			}
		}
	}
}

// Equal reports whether b and m hold identical bits. BitSet128 values are
// also directly comparable with ==.
func (b BitSet128) Equal(m BitSet128) bool { return b == m }

// Hash returns a structural hash of b: equal values hash equal, and the
// hash is stable for the lifetime of the value.
func (b BitSet128) Hash() uint64 {
	h := uint64(hashSeed)
	for _, w := range b {
		h = h*hashPrime + uint64(w)
	}
	return h
}

// OnesCount returns the number of set bits.
func (b BitSet128) OnesCount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount32(w)
	}
	return n
}

// String renders b for debugging: words printed most-significant first, 32
// binary digits each, space-separated. The exact layout is cosmetic and not
// a compatibility surface.
func (b BitSet128) String() string {
	var sb strings.Builder
	sb.WriteString("BitSet128[")
	for i := BitSet128Words - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%032b", b[i])
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// ToRoaring copies the set bits into a new roaring bitmap.
func (b BitSet128) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for w, word := range b {
		for word != 0 {
			bit := bits.TrailingZeros32(word)
			rb.Add(uint32(w*wordBits + bit))
			word &= word - 1
		}
	}
	return rb
}

// FromRoaring128 builds a BitSet128 from rb. It fails with
// *ErrIndexOutOfRange if rb holds a bit at or beyond BitSet128Bits; rb is
// never mutated.
func FromRoaring128(rb *roaring.Bitmap) (BitSet128, error) {
	var b BitSet128
	it := rb.Iterator()
	for it.HasNext() {
		if err := b.Set(int(it.Next())); err != nil {
			return BitSet128{}, err
		}
	}
	return b, nil
}

// The operator forms below take their operands by value, mutate the copy,
// and return it. Both operands' storage is left untouched.

// And128 returns a AND m.
func And128(a, m BitSet128) BitSet128 { a.And(m); return a }

// AndNot128 returns a AND NOT m.
func AndNot128(a, m BitSet128) BitSet128 { a.AndNot(m); return a }

// Nand128 returns NOT(a AND m).
func Nand128(a, m BitSet128) BitSet128 { a.Nand(m); return a }

// Or128 returns a OR m.
func Or128(a, m BitSet128) BitSet128 { a.Or(m); return a }

// OrNot128 returns a OR NOT m.
func OrNot128(a, m BitSet128) BitSet128 { a.OrNot(m); return a }

// Nor128 returns NOT(a OR m).
func Nor128(a, m BitSet128) BitSet128 { a.Nor(m); return a }

// Xor128 returns a XOR m.
func Xor128(a, m BitSet128) BitSet128 { a.Xor(m); return a }

// XorNot128 returns a XOR NOT m.
func XorNot128(a, m BitSet128) BitSet128 { a.XorNot(m); return a }

// NotXor128 returns NOT(a XOR m).
func NotXor128(a, m BitSet128) BitSet128 { a.NotXor(m); return a }

// Not128 returns the complement of a.
func Not128(a BitSet128) BitSet128 { a.Not(); return a }

// Lsh128 returns a shifted d bits toward lower indices: the a << d operator
// form, Shift(-d).
func Lsh128(a BitSet128, d int) BitSet128 { a.ShiftLeft(d); return a }

// Rsh128 returns a shifted d bits toward higher indices: the a >> d
// operator form, Shift(d).
func Rsh128(a BitSet128, d int) BitSet128 { a.ShiftRight(d); return a }
