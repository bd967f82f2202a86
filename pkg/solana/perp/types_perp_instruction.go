package perp

// PerpInstruction is the one-byte discriminator leading every
// instruction payload.
type PerpInstruction uint8

const (
	PerpInstructionInitMarket PerpInstruction = iota
	PerpInstructionInitUser
	PerpInstructionInitLp

	PerpInstructionDeposit
	PerpInstructionWithdraw

	PerpInstructionKeeperCrank
	PerpInstructionTradeCpi
	PerpInstructionCloseAccount

	PerpInstructionSetOracleAuthority
	PerpInstructionPushOraclePrice

	PerpInstructionResolveMarket
	PerpInstructionWithdrawInsurance
	PerpInstructionCloseSlab
	PerpInstructionTopUpInsurance
)

func putPerpInstruction(dst []byte, v PerpInstruction, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

// checkPerpInstruction validates the discriminator and advances past it.
func checkPerpInstruction(data []byte, expected PerpInstruction, offset *int) error {
	if len(data) == 0 {
		return ErrInvalidInstructionData
	}
	if PerpInstruction(data[0]) != expected {
		return ErrInvalidInstructionData
	}
	*offset += 1
	return nil
}

func (obj PerpInstruction) String() string {
	switch obj {
	case PerpInstructionInitMarket:
		return "init_market"
	case PerpInstructionInitUser:
		return "init_user"
	case PerpInstructionInitLp:
		return "init_lp"
	case PerpInstructionDeposit:
		return "deposit"
	case PerpInstructionWithdraw:
		return "withdraw"
	case PerpInstructionKeeperCrank:
		return "keeper_crank"
	case PerpInstructionTradeCpi:
		return "trade_cpi"
	case PerpInstructionCloseAccount:
		return "close_account"
	case PerpInstructionSetOracleAuthority:
		return "set_oracle_authority"
	case PerpInstructionPushOraclePrice:
		return "push_oracle_price"
	case PerpInstructionResolveMarket:
		return "resolve_market"
	case PerpInstructionWithdrawInsurance:
		return "withdraw_insurance"
	case PerpInstructionCloseSlab:
		return "close_slab"
	case PerpInstructionTopUpInsurance:
		return "top_up_insurance"
	}
	return "unknown"
}
