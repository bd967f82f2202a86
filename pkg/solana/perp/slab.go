package perp

import (
	"iter"
)

// CheckSlabLen validates the whole buffer against the fixed layout
// before any slot-level access. The slab is a fixed-size account, so
// anything other than an exact match is a layout violation.
func CheckSlabLen(data []byte) error {
	if len(data) != SlabSize {
		return ErrSlabSizeMismatch
	}
	return nil
}

// IsAccountUsed reports whether the bitmap marks the slot occupied.
func IsAccountUsed(data []byte, index uint16) (bool, error) {
	if err := CheckSlabLen(data); err != nil {
		return false, err
	}
	if int(index) >= MaxAccounts {
		return false, ErrIndexOutOfRange
	}
	return isBitSet(data, index), nil
}

func isBitSet(data []byte, index uint16) bool {
	b := data[usedBitmapOffset+int(index)/8]
	return b&(1<<(uint(index)%8)) != 0
}

// GetUsedAccountIndices scans the bitmap and returns the occupied slot
// indices in ascending order. Pure: calling it repeatedly over the same
// buffer yields identical results.
func GetUsedAccountIndices(data []byte) ([]uint16, error) {
	if err := CheckSlabLen(data); err != nil {
		return nil, err
	}

	var indices []uint16
	for i := 0; i < UsedBitmapSize; i++ {
		b := data[usedBitmapOffset+i]
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				indices = append(indices, uint16(8*i+bit))
			}
		}
	}
	return indices, nil
}

// GetAccountAtIndex decodes the slot at index. The second return value
// reports whether the slot is in use; an unused slot yields (nil, false,
// nil), never a zero-filled Account.
func GetAccountAtIndex(data []byte, index uint16) (*Account, bool, error) {
	if err := CheckSlabLen(data); err != nil {
		return nil, false, err
	}
	if int(index) >= MaxAccounts {
		return nil, false, ErrIndexOutOfRange
	}
	if !isBitSet(data, index) {
		return nil, false, nil
	}

	start := accountSlotOffset + int(index)*AccountSlotSize

	var obj Account
	if err := obj.unmarshal(data[start : start+AccountSlotSize]); err != nil {
		return nil, false, err
	}
	return &obj, true, nil
}

// AllUsedAccounts returns a lazy, restartable sequence of (index,
// Account) pairs over every occupied slot, ascending. The buffer is
// fully validated up front, including each occupied slot's kind byte,
// so the returned sequence cannot fail and may be ranged over any
// number of times.
func AllUsedAccounts(data []byte) (iter.Seq2[uint16, Account], error) {
	indices, err := GetUsedAccountIndices(data)
	if err != nil {
		return nil, err
	}

	for _, index := range indices {
		kindOffset := accountSlotOffset + int(index)*AccountSlotSize + 32
		if !AccountKind(data[kindOffset]).isValid() {
			return nil, ErrInvalidSlabData
		}
	}

	return func(yield func(uint16, Account) bool) {
		for _, index := range indices {
			start := accountSlotOffset + int(index)*AccountSlotSize

			var obj Account
			if err := obj.unmarshal(data[start : start+AccountSlotSize]); err != nil {
				return
			}
			if !yield(index, obj) {
				return
			}
		}
	}, nil
}
