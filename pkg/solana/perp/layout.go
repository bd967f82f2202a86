package perp

// The slab is a single fixed-size account laid out as
//
//	Header | Config | RiskParams | Engine | UsedBitmap | Account[MaxAccounts]
//
// Every field is little-endian and every offset below is a protocol
// constant shared with the on-chain program. There is no tag, length
// prefix, or schema on the wire, so these sums are the contract.

const (
	// MaxAccounts is the compile-time capacity of the account region.
	MaxAccounts = 4096

	// UsedBitmapSize is the packed bit-array marking occupied slots,
	// one bit per slot, LSB-first within each byte.
	UsedBitmapSize = MaxAccounts / 8
)

const (
	SlabHeaderSize = (4 + // version
		32 + // admin
		1) // resolved

	SlabConfigSize = (32 + // collateral_mint
		32 + // index_feed_id
		8 + // max_staleness_slots
		8 + // max_staleness_secs
		2 + // conf_filter_bps
		1 + // invert
		8 + // unit_scale
		8 + // initial_mark_price
		2 + // initial_margin_bps
		2 + // maintenance_margin_bps
		2 + // trading_fee_bps
		32 + // vault
		8 + // funding_period_slots
		8 + // funding_sensitivity_bps
		8 + // funding_clamp_bps
		32 + // oracle_authority
		8 + // authority_price
		8 + // authority_price_timestamp
		8 + // last_effective_price
		8) // price_cap_bps

	RiskParamsSize = (8 + // warmup_period_slots
		2 + // maintenance_margin_bps
		2 + // initial_margin_bps
		2 + // trading_fee_bps
		2 + // max_accounts
		8 + // new_account_fee
		16 + // risk_reduction_threshold
		8 + // maintenance_fee_per_slot
		8 + // max_crank_staleness_slots
		2 + // liquidation_fee_bps
		8 + // liquidation_fee_cap
		2 + // liquidation_buffer_bps
		16) // min_liquidation_size

	EngineStateSize = (8 + // vault_balance
		8 + // insurance_balance
		8 + // insurance_fee_revenue
		8 + // current_slot
		8 + // last_crank_slot
		16 + // funding_index
		16 + // total_open_interest
		8 + // sweep_start_slot
		8 + // sweep_last_slot
		8 + // lifetime_liquidations
		8 + // lifetime_force_closes
		16 + // net_lp_position
		16 + // lp_abs_exposure
		2 + // used_accounts
		1 + // risk_reduction_only
		16 + // pending_profit
		16 + // pending_loss
		1 + // warmup_paused
		16 + // total_warming_capital
		16 + // loss_accumulator
		1 + // crank_step
		1 + // pending_epoch
		16 + // total_capital
		16) // total_realized_pnl

	AccountSlotSize = (32 + // owner
		1 + // kind
		accountSlotPadding +
		16 + // capital
		16 + // realized_pnl
		16 + // position_size
		8 + // entry_price
		8 + // fee_credits
		32 + // matcher_program
		32) // matcher_context

	// Pad after the kind byte so the 128-bit fields sit on 8-byte
	// boundaries and the stride stays a round number.
	accountSlotPadding = 7
)

const (
	slabHeaderOffset  = 0
	slabConfigOffset  = slabHeaderOffset + SlabHeaderSize
	riskParamsOffset  = slabConfigOffset + SlabConfigSize
	engineStateOffset = riskParamsOffset + RiskParamsSize
	usedBitmapOffset  = engineStateOffset + EngineStateSize
	accountSlotOffset = usedBitmapOffset + UsedBitmapSize

	// SlabSize is the exact byte length of a well-formed slab account.
	SlabSize = accountSlotOffset + MaxAccounts*AccountSlotSize
)
