package perp

import (
	"fmt"

	"lukechampine.com/uint128"
)

// EngineState is the mutable risk-engine bookkeeping region. Decoded
// values are a point-in-time snapshot of whatever buffer the caller
// fetched; comparing two snapshots is how callers observe transitions.
type EngineState struct {
	VaultBalance        uint64
	InsuranceBalance    uint64
	InsuranceFeeRevenue uint64

	CurrentSlot   uint64
	LastCrankSlot uint64

	FundingIndex      Int128
	TotalOpenInterest uint128.Uint128

	SweepStartSlot uint64
	SweepLastSlot  uint64

	LifetimeLiquidations uint64
	LifetimeForceCloses  uint64

	NetLpPosition Int128
	LpAbsExposure uint128.Uint128

	UsedAccounts      uint16
	RiskReductionOnly bool

	PendingProfit uint128.Uint128
	PendingLoss   uint128.Uint128

	WarmupPaused        bool
	TotalWarmingCapital uint128.Uint128

	LossAccumulator uint128.Uint128

	CrankStep uint8

	// PendingEpoch wraps mod 256.
	PendingEpoch uint8

	TotalCapital     uint128.Uint128
	TotalRealizedPnl Int128
}

// GetEngineState decodes the engine region out of the full slab buffer.
func GetEngineState(data []byte) (*EngineState, error) {
	if len(data) < engineStateOffset+EngineStateSize {
		return nil, ErrSlabSizeMismatch
	}

	var obj EngineState
	obj.unmarshal(data[engineStateOffset:])
	return &obj, nil
}

func (obj *EngineState) unmarshal(data []byte) {
	var offset int

	getUint64(data, &obj.VaultBalance, &offset)
	getUint64(data, &obj.InsuranceBalance, &offset)
	getUint64(data, &obj.InsuranceFeeRevenue, &offset)
	getUint64(data, &obj.CurrentSlot, &offset)
	getUint64(data, &obj.LastCrankSlot, &offset)
	getInt128(data, &obj.FundingIndex, &offset)
	getUint128(data, &obj.TotalOpenInterest, &offset)
	getUint64(data, &obj.SweepStartSlot, &offset)
	getUint64(data, &obj.SweepLastSlot, &offset)
	getUint64(data, &obj.LifetimeLiquidations, &offset)
	getUint64(data, &obj.LifetimeForceCloses, &offset)
	getInt128(data, &obj.NetLpPosition, &offset)
	getUint128(data, &obj.LpAbsExposure, &offset)
	getUint16(data, &obj.UsedAccounts, &offset)
	getBool(data, &obj.RiskReductionOnly, &offset)
	getUint128(data, &obj.PendingProfit, &offset)
	getUint128(data, &obj.PendingLoss, &offset)
	getBool(data, &obj.WarmupPaused, &offset)
	getUint128(data, &obj.TotalWarmingCapital, &offset)
	getUint128(data, &obj.LossAccumulator, &offset)
	getUint8(data, &obj.CrankStep, &offset)
	getUint8(data, &obj.PendingEpoch, &offset)
	getUint128(data, &obj.TotalCapital, &offset)
	getInt128(data, &obj.TotalRealizedPnl, &offset)
}

func (obj *EngineState) Marshal() []byte {
	data := make([]byte, EngineStateSize)

	var offset int

	putUint64(data, obj.VaultBalance, &offset)
	putUint64(data, obj.InsuranceBalance, &offset)
	putUint64(data, obj.InsuranceFeeRevenue, &offset)
	putUint64(data, obj.CurrentSlot, &offset)
	putUint64(data, obj.LastCrankSlot, &offset)
	putInt128(data, obj.FundingIndex, &offset)
	putUint128(data, obj.TotalOpenInterest, &offset)
	putUint64(data, obj.SweepStartSlot, &offset)
	putUint64(data, obj.SweepLastSlot, &offset)
	putUint64(data, obj.LifetimeLiquidations, &offset)
	putUint64(data, obj.LifetimeForceCloses, &offset)
	putInt128(data, obj.NetLpPosition, &offset)
	putUint128(data, obj.LpAbsExposure, &offset)
	putUint16(data, obj.UsedAccounts, &offset)
	putBool(data, obj.RiskReductionOnly, &offset)
	putUint128(data, obj.PendingProfit, &offset)
	putUint128(data, obj.PendingLoss, &offset)
	putBool(data, obj.WarmupPaused, &offset)
	putUint128(data, obj.TotalWarmingCapital, &offset)
	putUint128(data, obj.LossAccumulator, &offset)
	putUint8(data, obj.CrankStep, &offset)
	putUint8(data, obj.PendingEpoch, &offset)
	putUint128(data, obj.TotalCapital, &offset)
	putInt128(data, obj.TotalRealizedPnl, &offset)

	return data
}

func (obj *EngineState) String() string {
	return fmt.Sprintf(
		"EngineState{vault_balance=%d,insurance_balance=%d,current_slot=%d,last_crank_slot=%d,funding_index=%s,total_open_interest=%s,net_lp_position=%s,used_accounts=%d,risk_reduction_only=%v,crank_step=%d,pending_epoch=%d}",
		obj.VaultBalance,
		obj.InsuranceBalance,
		obj.CurrentSlot,
		obj.LastCrankSlot,
		obj.FundingIndex.String(),
		obj.TotalOpenInterest.String(),
		obj.NetLpPosition.String(),
		obj.UsedAccounts,
		obj.RiskReductionOnly,
		obj.CrankStep,
		obj.PendingEpoch,
	)
}
