package perp

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt128Bounds(t *testing.T) {
	min, ok := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	require.True(t, ok)
	max, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	require.True(t, ok)

	parsedMin, err := NewInt128FromBig(min)
	require.NoError(t, err)
	assert.Equal(t, Int128{Lo: 0, Hi: math.MinInt64}, parsedMin)
	assert.Equal(t, min.String(), parsedMin.String())
	assert.True(t, parsedMin.IsNegative())

	parsedMax, err := NewInt128FromBig(max)
	require.NoError(t, err)
	assert.Equal(t, Int128{Lo: ^uint64(0), Hi: math.MaxInt64}, parsedMax)
	assert.Equal(t, max.String(), parsedMax.String())
	assert.False(t, parsedMax.IsNegative())

	_, err = NewInt128FromBig(new(big.Int).Sub(min, big.NewInt(1)))
	assert.Equal(t, ErrInvalidArgument, err)
	_, err = NewInt128FromBig(new(big.Int).Add(max, big.NewInt(1)))
	assert.Equal(t, ErrInvalidArgument, err)
}

func TestInt128FromInt64(t *testing.T) {
	assert.Equal(t, Int128{}, NewInt128FromInt64(0))
	assert.True(t, NewInt128FromInt64(0).IsZero())

	assert.Equal(t, Int128{Lo: 42, Hi: 0}, NewInt128FromInt64(42))

	negative := NewInt128FromInt64(-1)
	assert.Equal(t, Int128{Lo: ^uint64(0), Hi: -1}, negative)
	assert.Equal(t, "-1", negative.String())
	assert.True(t, negative.IsNegative())
}

func TestInt128BigIntRoundTrip(t *testing.T) {
	for _, value := range []string{
		"0",
		"1",
		"-1",
		"18446744073709551615",
		"18446744073709551616",
		"-18446744073709551616",
		"-170141183460469231731687303715884105728",
		"170141183460469231731687303715884105727",
	} {
		parsed, ok := new(big.Int).SetString(value, 10)
		require.True(t, ok)

		converted, err := NewInt128FromBig(parsed)
		require.NoError(t, err)
		assert.Equal(t, value, converted.BigInt().String())
	}
}
