package perp

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// SlabConfig is the market configuration region. It is written once at
// market initialization except for the admin-push oracle fields, which
// the program updates when the oracle authority pushes a price.
type SlabConfig struct {
	CollateralMint ed25519.PublicKey

	// IndexFeedId selects the external index oracle. The all-zero
	// sentinel means internal mark-price mode; check IsZero before
	// treating this as a real feed.
	IndexFeedId FeedId

	MaxStalenessSlots uint64
	MaxStalenessSecs  uint64
	ConfFilterBps     uint16
	Invert            bool
	UnitScale         uint64
	InitialMarkPrice  uint64

	InitialMarginBps     uint16
	MaintenanceMarginBps uint16
	TradingFeeBps        uint16

	Vault ed25519.PublicKey

	FundingPeriodSlots    uint64
	FundingSensitivityBps uint64
	FundingClampBps       uint64

	OracleAuthority         ed25519.PublicKey
	AuthorityPrice          uint64
	AuthorityPriceTimestamp int64
	LastEffectivePrice      uint64
	PriceCapBps             uint64
}

// GetSlabConfig decodes the config region out of the full slab buffer.
func GetSlabConfig(data []byte) (*SlabConfig, error) {
	if len(data) < slabConfigOffset+SlabConfigSize {
		return nil, ErrSlabSizeMismatch
	}

	var obj SlabConfig
	obj.unmarshal(data[slabConfigOffset:])
	return &obj, nil
}

func (obj *SlabConfig) unmarshal(data []byte) {
	var offset int

	getKey(data, &obj.CollateralMint, &offset)
	getFeedId(data, &obj.IndexFeedId, &offset)
	getUint64(data, &obj.MaxStalenessSlots, &offset)
	getUint64(data, &obj.MaxStalenessSecs, &offset)
	getUint16(data, &obj.ConfFilterBps, &offset)
	getBool(data, &obj.Invert, &offset)
	getUint64(data, &obj.UnitScale, &offset)
	getUint64(data, &obj.InitialMarkPrice, &offset)
	getUint16(data, &obj.InitialMarginBps, &offset)
	getUint16(data, &obj.MaintenanceMarginBps, &offset)
	getUint16(data, &obj.TradingFeeBps, &offset)
	getKey(data, &obj.Vault, &offset)
	getUint64(data, &obj.FundingPeriodSlots, &offset)
	getUint64(data, &obj.FundingSensitivityBps, &offset)
	getUint64(data, &obj.FundingClampBps, &offset)
	getKey(data, &obj.OracleAuthority, &offset)
	getUint64(data, &obj.AuthorityPrice, &offset)
	getInt64(data, &obj.AuthorityPriceTimestamp, &offset)
	getUint64(data, &obj.LastEffectivePrice, &offset)
	getUint64(data, &obj.PriceCapBps, &offset)
}

func (obj *SlabConfig) Marshal() []byte {
	data := make([]byte, SlabConfigSize)

	var offset int

	putKey(data, obj.CollateralMint, &offset)
	putFeedId(data, obj.IndexFeedId, &offset)
	putUint64(data, obj.MaxStalenessSlots, &offset)
	putUint64(data, obj.MaxStalenessSecs, &offset)
	putUint16(data, obj.ConfFilterBps, &offset)
	putBool(data, obj.Invert, &offset)
	putUint64(data, obj.UnitScale, &offset)
	putUint64(data, obj.InitialMarkPrice, &offset)
	putUint16(data, obj.InitialMarginBps, &offset)
	putUint16(data, obj.MaintenanceMarginBps, &offset)
	putUint16(data, obj.TradingFeeBps, &offset)
	putKey(data, obj.Vault, &offset)
	putUint64(data, obj.FundingPeriodSlots, &offset)
	putUint64(data, obj.FundingSensitivityBps, &offset)
	putUint64(data, obj.FundingClampBps, &offset)
	putKey(data, obj.OracleAuthority, &offset)
	putUint64(data, obj.AuthorityPrice, &offset)
	putInt64(data, obj.AuthorityPriceTimestamp, &offset)
	putUint64(data, obj.LastEffectivePrice, &offset)
	putUint64(data, obj.PriceCapBps, &offset)

	return data
}

func (obj *SlabConfig) String() string {
	return fmt.Sprintf(
		"SlabConfig{collateral_mint=%s,index_feed_id=%s,vault=%s,oracle_authority=%s,unit_scale=%d,initial_mark_price=%d,last_effective_price=%d}",
		base58.Encode(obj.CollateralMint),
		obj.IndexFeedId.String(),
		base58.Encode(obj.Vault),
		base58.Encode(obj.OracleAuthority),
		obj.UnitScale,
		obj.InitialMarkPrice,
		obj.LastEffectivePrice,
	)
}
