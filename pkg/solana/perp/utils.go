package perp

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"lukechampine.com/uint128"
)

func putKey(dst []byte, v ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], v)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putBool(dst []byte, v bool, offset *int) {
	if v {
		dst[*offset] = 1
	} else {
		dst[*offset] = 0
	}
	*offset += 1
}
func getBool(src []byte, dst *bool, offset *int) {
	*dst = src[*offset] == 1
	*offset += 1
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}
func getUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func putUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}
func getUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}
func getUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putInt64(dst []byte, v int64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], uint64(v))
	*offset += 8
}
func getInt64(src []byte, dst *int64, offset *int) {
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
}

// 128-bit fields travel as two little-endian 64-bit halves, low half
// first. The signed form keeps two's-complement sign in the high half.

func putUint128(dst []byte, v uint128.Uint128, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v.Lo)
	binary.LittleEndian.PutUint64(dst[*offset+8:], v.Hi)
	*offset += 16
}
func getUint128(src []byte, dst *uint128.Uint128, offset *int) {
	*dst = uint128.New(
		binary.LittleEndian.Uint64(src[*offset:]),
		binary.LittleEndian.Uint64(src[*offset+8:]),
	)
	*offset += 16
}

func putInt128(dst []byte, v Int128, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v.Lo)
	binary.LittleEndian.PutUint64(dst[*offset+8:], uint64(v.Hi))
	*offset += 16
}
func getInt128(src []byte, dst *Int128, offset *int) {
	dst.Lo = binary.LittleEndian.Uint64(src[*offset:])
	dst.Hi = int64(binary.LittleEndian.Uint64(src[*offset+8:]))
	*offset += 16
}

func putFeedId(dst []byte, v FeedId, offset *int) {
	copy(dst[*offset:], v[:])
	*offset += FeedIdSize
}
func getFeedId(src []byte, dst *FeedId, offset *int) {
	copy(dst[:], src[*offset:])
	*offset += FeedIdSize
}

func skipPadding(length int, offset *int) {
	*offset += length
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
