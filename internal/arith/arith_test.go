package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("fixed examples", func(t *testing.T) {
		assert.Equal(t, Int(8), Add(Int(5), Int(3)))
		assert.Equal(t, Int(30), Add(Int(10), Int(20)))
		assert.Equal(t, Float(6.0), Add(Float(3.5), Float(2.5)))
		assert.Equal(t, Int(10), Add(Int(-5), Int(15)))
	})

	t.Run("mixed operands promote to float", func(t *testing.T) {
		got := Add(Int(2), Float(0.5))
		assert.Equal(t, KindFloat, got.Kind())
		assert.Equal(t, 2.5, got.Float64())

		got = Add(Float(0.5), Int(2))
		assert.Equal(t, KindFloat, got.Kind())
		assert.Equal(t, 2.5, got.Float64())
	})

	t.Run("commutative", func(t *testing.T) {
		pairs := [][2]Operand{
			{Int(5), Int(3)},
			{Int(-5), Int(15)},
			{Float(3.5), Float(2.5)},
			{Int(7), Float(-1.25)},
			{Int(0), Float(0)},
		}
		for _, p := range pairs {
			assert.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]), "pair %v", p)
		}
	})

	t.Run("zero is the identity", func(t *testing.T) {
		for _, a := range []Operand{Int(42), Int(-17), Int(0), Float(3.5)} {
			assert.Equal(t, a.Float64(), Add(a, Int(0)).Float64(), "operand %v", a)
			assert.Equal(t, a.Float64(), Add(a, Float(0)).Float64(), "operand %v", a)
		}
		assert.Equal(t, Int(42), Add(Int(42), Int(0)))
	})

	t.Run("integer overflow wraps", func(t *testing.T) {
		assert.Equal(t, Int(math.MinInt64), Add(Int(math.MaxInt64), Int(1)))
	})
}

func TestSum(t *testing.T) {
	assert.Equal(t, 8, Sum(5, 3))
	assert.Equal(t, 30, Sum(10, 20))
	assert.Equal(t, 6.0, Sum(3.5, 2.5))
	assert.Equal(t, 10, Sum(-5, 15))
	assert.Equal(t, int64(math.MinInt64), Sum(int64(math.MaxInt64), int64(1)))
}

func TestParse(t *testing.T) {
	t.Run("integer syntax", func(t *testing.T) {
		got, err := Parse("15")
		require.NoError(t, err)
		assert.Equal(t, Int(15), got)

		got, err = Parse("-5")
		require.NoError(t, err)
		assert.Equal(t, Int(-5), got)
	})

	t.Run("float syntax", func(t *testing.T) {
		got, err := Parse("3.5")
		require.NoError(t, err)
		assert.Equal(t, Float(3.5), got)

		got, err = Parse("2e3")
		require.NoError(t, err)
		assert.Equal(t, Float(2000), got)
	})

	t.Run("non-numeric text fails", func(t *testing.T) {
		for _, s := range []string{"two", "", "1+1", "0x"} {
			_, err := Parse(s)
			require.Error(t, err, "input %q", s)
			assert.ErrorIs(t, err, ErrNotNumeric)
		}
	})
}

func TestOperandText(t *testing.T) {
	assert.Equal(t, "8", Int(8).String())
	assert.Equal(t, "-5", Int(-5).String())
	// Default rendering drops the trailing .0, like Go's %v.
	assert.Equal(t, "6", Float(6.0).String())
	assert.Equal(t, "3.5", Float(3.5).String())
	assert.Equal(t, "6", Float(6.0).Text('f'))
	assert.Equal(t, "6e+00", Float(6.0).Text('e'))
	assert.Equal(t, "8", Int(8).Text('e'))
}
