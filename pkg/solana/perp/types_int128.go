package perp

import (
	"math/big"
)

// Int128 is a signed 128-bit integer stored as two 64-bit halves, the
// same two's-complement form the slab uses on the wire. The sign lives
// in the high half.
type Int128 struct {
	Lo uint64
	Hi int64
}

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// NewInt128FromInt64 widens v with sign extension.
func NewInt128FromInt64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Lo: uint64(v), Hi: hi}
}

// NewInt128FromBig converts v, failing with ErrInvalidArgument when v
// falls outside the representable i128 range. The value is never
// narrowed or wrapped.
func NewInt128FromBig(v *big.Int) (Int128, error) {
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, ErrInvalidArgument
	}

	// Two's complement: reduce mod 2^128, then split halves.
	wrapped := new(big.Int).And(v, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	lo := new(big.Int).And(wrapped, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(wrapped, 64)

	return Int128{
		Lo: lo.Uint64(),
		Hi: int64(hi.Uint64()),
	}, nil
}

func (obj Int128) IsNegative() bool {
	return obj.Hi < 0
}

func (obj Int128) IsZero() bool {
	return obj.Lo == 0 && obj.Hi == 0
}

// BigInt returns the exact signed value.
func (obj Int128) BigInt() *big.Int {
	v := new(big.Int).SetInt64(obj.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(obj.Lo))
}

func (obj Int128) String() string {
	return obj.BigInt().String()
}
