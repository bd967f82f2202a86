package perp

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// Account is one occupied slot in the slab's account region. Values are
// copies; the source buffer is never retained. An Account is only ever
// produced for a slot whose bitmap bit is set, so holding one implies
// the slot was in use at decode time.
type Account struct {
	Owner ed25519.PublicKey
	Kind  AccountKind

	// Capital may be transiently negative while losses settle.
	Capital     Int128
	RealizedPnl Int128

	// PositionSize carries direction in its sign.
	PositionSize Int128
	EntryPrice   uint64

	// FeeCredits may go negative.
	FeeCredits int64

	// Lp is set only for AccountKindLp; nil for users. The matcher
	// fields do not exist on the user variant.
	Lp *LpParams
}

// LpParams is the LP-only tail of an account slot.
type LpParams struct {
	MatcherProgram ed25519.PublicKey
	MatcherContext ed25519.PublicKey
}

func (obj *Account) unmarshal(data []byte) error {
	var offset int

	getKey(data, &obj.Owner, &offset)
	getAccountKind(data, &obj.Kind, &offset)
	if !obj.Kind.isValid() {
		return ErrInvalidSlabData
	}
	skipPadding(accountSlotPadding, &offset)
	getInt128(data, &obj.Capital, &offset)
	getInt128(data, &obj.RealizedPnl, &offset)
	getInt128(data, &obj.PositionSize, &offset)
	getUint64(data, &obj.EntryPrice, &offset)
	getInt64(data, &obj.FeeCredits, &offset)

	if obj.Kind == AccountKindLp {
		obj.Lp = &LpParams{}
		getKey(data, &obj.Lp.MatcherProgram, &offset)
		getKey(data, &obj.Lp.MatcherContext, &offset)
	}

	return nil
}

// Marshal produces the full slot bytes. The matcher fields of a user
// slot are zero.
func (obj *Account) Marshal() []byte {
	data := make([]byte, AccountSlotSize)

	var offset int

	putKey(data, obj.Owner, &offset)
	putAccountKind(data, obj.Kind, &offset)
	skipPadding(accountSlotPadding, &offset)
	putInt128(data, obj.Capital, &offset)
	putInt128(data, obj.RealizedPnl, &offset)
	putInt128(data, obj.PositionSize, &offset)
	putUint64(data, obj.EntryPrice, &offset)
	putInt64(data, obj.FeeCredits, &offset)

	if obj.Lp != nil {
		putKey(data, obj.Lp.MatcherProgram, &offset)
		putKey(data, obj.Lp.MatcherContext, &offset)
	}

	return data
}

func (obj *Account) String() string {
	if obj.Lp != nil {
		return fmt.Sprintf(
			"Account{owner=%s,kind=%s,capital=%s,realized_pnl=%s,position_size=%s,entry_price=%d,fee_credits=%d,matcher_program=%s,matcher_context=%s}",
			base58.Encode(obj.Owner),
			obj.Kind.String(),
			obj.Capital.String(),
			obj.RealizedPnl.String(),
			obj.PositionSize.String(),
			obj.EntryPrice,
			obj.FeeCredits,
			base58.Encode(obj.Lp.MatcherProgram),
			base58.Encode(obj.Lp.MatcherContext),
		)
	}

	return fmt.Sprintf(
		"Account{owner=%s,kind=%s,capital=%s,realized_pnl=%s,position_size=%s,entry_price=%d,fee_credits=%d}",
		base58.Encode(obj.Owner),
		obj.Kind.String(),
		obj.Capital.String(),
		obj.RealizedPnl.String(),
		obj.PositionSize.String(),
		obj.EntryPrice,
		obj.FeeCredits,
	)
}
