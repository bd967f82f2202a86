package perp

import (
	"crypto/ed25519"

	"lukechampine.com/uint128"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const InitMarketInstructionArgsSize = (FeedIdSize + // index_feed_id
	8 + // max_staleness_slots
	8 + // max_staleness_secs
	2 + // conf_filter_bps
	1 + // invert
	8 + // unit_scale
	8 + // initial_mark_price
	2 + // initial_margin_bps
	2 + // maintenance_margin_bps
	2 + // trading_fee_bps
	8 + // funding_period_slots
	8 + // funding_sensitivity_bps
	8 + // funding_clamp_bps
	8 + // price_cap_bps
	8 + // warmup_period_slots
	2 + // max_accounts
	8 + // new_account_fee
	16 + // risk_reduction_threshold
	8 + // maintenance_fee_per_slot
	8 + // max_crank_staleness_slots
	2 + // liquidation_fee_bps
	8 + // liquidation_fee_cap
	2 + // liquidation_buffer_bps
	16) // min_liquidation_size

// InitMarketInstructionArgs carries the full market configuration and
// risk parameter set. The collateral mint and vault are accounts, not
// args; the oracle authority starts unset.
type InitMarketInstructionArgs struct {
	IndexFeedId       FeedId
	MaxStalenessSlots uint64
	MaxStalenessSecs  uint64
	ConfFilterBps     uint16
	Invert            bool
	UnitScale         uint64
	InitialMarkPrice  uint64

	InitialMarginBps     uint16
	MaintenanceMarginBps uint16
	TradingFeeBps        uint16

	FundingPeriodSlots    uint64
	FundingSensitivityBps uint64
	FundingClampBps       uint64
	PriceCapBps           uint64

	WarmupPeriodSlots      uint64
	MaxAccounts            uint16
	NewAccountFee          uint64
	RiskReductionThreshold uint128.Uint128
	MaintenanceFeePerSlot  uint64
	MaxCrankStalenessSlots uint64
	LiquidationFeeBps      uint16
	LiquidationFeeCap      uint64
	LiquidationBufferBps   uint16
	MinLiquidationSize     uint128.Uint128
}

type InitMarketInstructionAccounts struct {
	Admin          ed25519.PublicKey
	Slab           ed25519.PublicKey
	CollateralMint ed25519.PublicKey
	Vault          ed25519.PublicKey
	VaultAuthority ed25519.PublicKey
}

var InitMarketInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: true},   // admin
	{IsSigner: true, IsWritable: true},   // slab
	{IsSigner: false, IsWritable: false}, // collateral mint
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // vault authority
	{IsSigner: false, IsWritable: false}, // token program
	{IsSigner: false, IsWritable: false}, // system program
	{IsSigner: false, IsWritable: false}, // rent sysvar
}

func NewInitMarketInstruction(
	accounts *InitMarketInstructionAccounts,
	args *InitMarketInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+InitMarketInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionInitMarket, &offset)
	putFeedId(data, args.IndexFeedId, &offset)
	putUint64(data, args.MaxStalenessSlots, &offset)
	putUint64(data, args.MaxStalenessSecs, &offset)
	putUint16(data, args.ConfFilterBps, &offset)
	putBool(data, args.Invert, &offset)
	putUint64(data, args.UnitScale, &offset)
	putUint64(data, args.InitialMarkPrice, &offset)
	putUint16(data, args.InitialMarginBps, &offset)
	putUint16(data, args.MaintenanceMarginBps, &offset)
	putUint16(data, args.TradingFeeBps, &offset)
	putUint64(data, args.FundingPeriodSlots, &offset)
	putUint64(data, args.FundingSensitivityBps, &offset)
	putUint64(data, args.FundingClampBps, &offset)
	putUint64(data, args.PriceCapBps, &offset)
	putUint64(data, args.WarmupPeriodSlots, &offset)
	putUint16(data, args.MaxAccounts, &offset)
	putUint64(data, args.NewAccountFee, &offset)
	putUint128(data, args.RiskReductionThreshold, &offset)
	putUint64(data, args.MaintenanceFeePerSlot, &offset)
	putUint64(data, args.MaxCrankStalenessSlots, &offset)
	putUint16(data, args.LiquidationFeeBps, &offset)
	putUint64(data, args.LiquidationFeeCap, &offset)
	putUint16(data, args.LiquidationBufferBps, &offset)
	putUint128(data, args.MinLiquidationSize, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			InitMarketInstructionSchema,
			accounts.Admin,
			accounts.Slab,
			accounts.CollateralMint,
			accounts.Vault,
			accounts.VaultAuthority,
			SPL_TOKEN_PROGRAM_ID,
			SYSTEM_PROGRAM_ID,
			SYSVAR_RENT_PUBKEY,
		)...,
	)
}

func ParseInitMarketInstructionArgs(data []byte) (*InitMarketInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionInitMarket, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+InitMarketInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args InitMarketInstructionArgs
	getFeedId(data, &args.IndexFeedId, &offset)
	getUint64(data, &args.MaxStalenessSlots, &offset)
	getUint64(data, &args.MaxStalenessSecs, &offset)
	getUint16(data, &args.ConfFilterBps, &offset)
	getBool(data, &args.Invert, &offset)
	getUint64(data, &args.UnitScale, &offset)
	getUint64(data, &args.InitialMarkPrice, &offset)
	getUint16(data, &args.InitialMarginBps, &offset)
	getUint16(data, &args.MaintenanceMarginBps, &offset)
	getUint16(data, &args.TradingFeeBps, &offset)
	getUint64(data, &args.FundingPeriodSlots, &offset)
	getUint64(data, &args.FundingSensitivityBps, &offset)
	getUint64(data, &args.FundingClampBps, &offset)
	getUint64(data, &args.PriceCapBps, &offset)
	getUint64(data, &args.WarmupPeriodSlots, &offset)
	getUint16(data, &args.MaxAccounts, &offset)
	getUint64(data, &args.NewAccountFee, &offset)
	getUint128(data, &args.RiskReductionThreshold, &offset)
	getUint64(data, &args.MaintenanceFeePerSlot, &offset)
	getUint64(data, &args.MaxCrankStalenessSlots, &offset)
	getUint16(data, &args.LiquidationFeeBps, &offset)
	getUint64(data, &args.LiquidationFeeCap, &offset)
	getUint16(data, &args.LiquidationBufferBps, &offset)
	getUint128(data, &args.MinLiquidationSize, &offset)

	return &args, nil
}
