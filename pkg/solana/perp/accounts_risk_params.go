package perp

import (
	"fmt"

	"lukechampine.com/uint128"
)

// RiskParams is the tunable risk parameter region.
type RiskParams struct {
	WarmupPeriodSlots    uint64
	MaintenanceMarginBps uint16
	InitialMarginBps     uint16
	TradingFeeBps        uint16

	// MaxAccounts is the configured capacity and is always at most the
	// compile-time MaxAccounts the slab is sized for.
	MaxAccounts uint16

	NewAccountFee          uint64
	RiskReductionThreshold uint128.Uint128
	MaintenanceFeePerSlot  uint64
	MaxCrankStalenessSlots uint64

	LiquidationFeeBps    uint16
	LiquidationFeeCap    uint64
	LiquidationBufferBps uint16
	MinLiquidationSize   uint128.Uint128
}

// GetRiskParams decodes the risk parameter region out of the full slab
// buffer.
func GetRiskParams(data []byte) (*RiskParams, error) {
	if len(data) < riskParamsOffset+RiskParamsSize {
		return nil, ErrSlabSizeMismatch
	}

	var obj RiskParams
	obj.unmarshal(data[riskParamsOffset:])
	return &obj, nil
}

func (obj *RiskParams) unmarshal(data []byte) {
	var offset int

	getUint64(data, &obj.WarmupPeriodSlots, &offset)
	getUint16(data, &obj.MaintenanceMarginBps, &offset)
	getUint16(data, &obj.InitialMarginBps, &offset)
	getUint16(data, &obj.TradingFeeBps, &offset)
	getUint16(data, &obj.MaxAccounts, &offset)
	getUint64(data, &obj.NewAccountFee, &offset)
	getUint128(data, &obj.RiskReductionThreshold, &offset)
	getUint64(data, &obj.MaintenanceFeePerSlot, &offset)
	getUint64(data, &obj.MaxCrankStalenessSlots, &offset)
	getUint16(data, &obj.LiquidationFeeBps, &offset)
	getUint64(data, &obj.LiquidationFeeCap, &offset)
	getUint16(data, &obj.LiquidationBufferBps, &offset)
	getUint128(data, &obj.MinLiquidationSize, &offset)
}

func (obj *RiskParams) Marshal() []byte {
	data := make([]byte, RiskParamsSize)

	var offset int

	putUint64(data, obj.WarmupPeriodSlots, &offset)
	putUint16(data, obj.MaintenanceMarginBps, &offset)
	putUint16(data, obj.InitialMarginBps, &offset)
	putUint16(data, obj.TradingFeeBps, &offset)
	putUint16(data, obj.MaxAccounts, &offset)
	putUint64(data, obj.NewAccountFee, &offset)
	putUint128(data, obj.RiskReductionThreshold, &offset)
	putUint64(data, obj.MaintenanceFeePerSlot, &offset)
	putUint64(data, obj.MaxCrankStalenessSlots, &offset)
	putUint16(data, obj.LiquidationFeeBps, &offset)
	putUint64(data, obj.LiquidationFeeCap, &offset)
	putUint16(data, obj.LiquidationBufferBps, &offset)
	putUint128(data, obj.MinLiquidationSize, &offset)

	return data
}

func (obj *RiskParams) String() string {
	return fmt.Sprintf(
		"RiskParams{warmup_period_slots=%d,maintenance_margin_bps=%d,initial_margin_bps=%d,trading_fee_bps=%d,max_accounts=%d,new_account_fee=%d,risk_reduction_threshold=%s,min_liquidation_size=%s}",
		obj.WarmupPeriodSlots,
		obj.MaintenanceMarginBps,
		obj.InitialMarginBps,
		obj.TradingFeeBps,
		obj.MaxAccounts,
		obj.NewAccountFee,
		obj.RiskReductionThreshold.String(),
		obj.MinLiquidationSize.String(),
	)
}
