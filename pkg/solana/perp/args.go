package perp

import (
	"math/big"

	"lukechampine.com/uint128"
)

// Callers cross the process boundary with decimal strings to avoid
// precision loss. These parsers reject anything that does not fit the
// target width; values are never narrowed or wrapped into range.

// ParseAmount parses a non-negative decimal token amount into a u64.
func ParseAmount(value string) (uint64, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return 0, ErrInvalidArgument
	}
	if parsed.Sign() < 0 || !parsed.IsUint64() {
		return 0, ErrInvalidArgument
	}
	return parsed.Uint64(), nil
}

// ParseTradeSize parses a signed decimal trade size into an i128. The
// sign carries direction; the full two's-complement range is accepted.
func ParseTradeSize(value string) (Int128, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return Int128{}, ErrInvalidArgument
	}
	return NewInt128FromBig(parsed)
}

// ParseUint128 parses a non-negative decimal into a u128.
func ParseUint128(value string) (uint128.Uint128, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return uint128.Zero, ErrInvalidArgument
	}
	if parsed.Sign() < 0 || parsed.BitLen() > 128 {
		return uint128.Zero, ErrInvalidArgument
	}

	lo := new(big.Int).And(parsed, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(parsed, 64)
	return uint128.New(lo.Uint64(), hi.Uint64()), nil
}
