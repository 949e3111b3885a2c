package fixbits

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The 192-bit variant is generated from the canonical instance, so these
// tests focus on the places where the width actually matters: constants,
// cross-word behavior in the upper words, and saturation.

func TestBitSet192Constants(t *testing.T) {
	assert.Equal(t, 6, BitSet192Words)
	assert.Equal(t, 192, BitSet192Bits)
	assert.Equal(t, BitSet192Bits, All192().OnesCount())
}

func TestBitSet192Bounds(t *testing.T) {
	var b BitSet192

	require.NoError(t, b.Set(191))
	got, err := b.Get(191)
	require.NoError(t, err)
	assert.True(t, got)

	err = b.Set(192)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 192, oor.Index)
	assert.Equal(t, 192, oor.Bits)
}

func TestBitSet192Shift(t *testing.T) {
	t.Run("AcrossUpperWords", func(t *testing.T) {
		var b BitSet192
		require.NoError(t, b.Set(0))
		b.Shift(160)
		want := None192()
		require.NoError(t, want.Set(160))
		assert.Equal(t, want, b)

		b.Shift(31)
		top := None192()
		require.NoError(t, top.Set(191))
		assert.Equal(t, top, b)

		b.Shift(1)
		assert.True(t, b.IsEmpty(), "bit shifted out the top")
	})

	t.Run("Saturation", func(t *testing.T) {
		for _, d := range []int{192, -192, 500, math.MinInt} {
			b := All192()
			b.Shift(d)
			assert.True(t, b.IsEmpty(), "shift by %d", d)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		a := BitSet192{0xDEADBEEF, 0x01234567, 0x89ABCDEF, 0xF00DFACE, 0xCAFEBABE, 0x0BADF00D}
		for _, d := range []int{1, 32, 65, 191} {
			want := a
			for i := BitSet192Bits - d; i < BitSet192Bits; i++ {
				require.NoError(t, want.Unset(i))
			}
			assert.Equal(t, want, Lsh192(Rsh192(a, d), d), "up-down by %d", d)
		}
	})
}

func TestBitSet192Algebra(t *testing.T) {
	a := BitSet192{0xDEADBEEF, 0x01234567, 0x89ABCDEF, 0xF00DFACE, 0xCAFEBABE, 0x0BADF00D}

	assert.Equal(t, a, And192(a, All192()))
	assert.Equal(t, a, Or192(a, None192()))
	assert.Equal(t, None192(), Xor192(a, a))
	assert.Equal(t, a, Not192(Not192(a)))
}

func TestBitSet192Iteration(t *testing.T) {
	var b BitSet192
	require.NoError(t, b.SetBits(0, 100, 191))

	var setIndices []int
	for i, bit := range b.Bits() {
		if bit {
			setIndices = append(setIndices, i)
		}
	}
	assert.Equal(t, []int{0, 100, 191}, setIndices)

	c := b.Cursor()
	count := 0
	for c.Next() {
		count++
	}
	assert.Equal(t, BitSet192Bits, count)
}

func TestBitSet192String(t *testing.T) {
	s := None192().String()
	assert.True(t, strings.HasPrefix(s, "BitSet192["))
	assert.Equal(t, len("BitSet192[")+6*32+5+1, len(s))
}

func TestBitSet192Roaring(t *testing.T) {
	var b BitSet192
	require.NoError(t, b.SetBits(31, 130, 191))

	back, err := FromRoaring192(b.ToRoaring())
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestBitSet192Hash(t *testing.T) {
	a := BitSet192{1, 2, 3, 4, 5, 6}
	same := a
	assert.Equal(t, a.Hash(), same.Hash())
	assert.NotEqual(t, a.Hash(), None192().Hash())

	// A 192-bit value and a 128-bit value with the same leading words hash
	// differently because the word count feeds the running combination.
	short := BitSet128{1, 2, 3, 4}
	assert.NotEqual(t, short.Hash(), a.Hash())
}
