package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const TradeCpiInstructionArgsSize = (2 + // lp_index
	2 + // user_index
	16) // size

type TradeCpiInstructionArgs struct {
	LpIndex   uint16
	UserIndex uint16

	// Size carries direction in its sign: positive is user long,
	// negative is user short.
	Size Int128
}

type TradeCpiInstructionAccounts struct {
	Owner          ed25519.PublicKey
	Slab           ed25519.PublicKey
	MatcherProgram ed25519.PublicKey
	MatcherContext ed25519.PublicKey
}

var TradeCpiInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: false}, // matcher program
	{IsSigner: false, IsWritable: true},  // matcher context
}

func NewTradeCpiInstruction(
	accounts *TradeCpiInstructionAccounts,
	args *TradeCpiInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+TradeCpiInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionTradeCpi, &offset)
	putUint16(data, args.LpIndex, &offset)
	putUint16(data, args.UserIndex, &offset)
	putInt128(data, args.Size, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			TradeCpiInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			accounts.MatcherProgram,
			accounts.MatcherContext,
		)...,
	)
}

func ParseTradeCpiInstructionArgs(data []byte) (*TradeCpiInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionTradeCpi, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+TradeCpiInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args TradeCpiInstructionArgs
	getUint16(data, &args.LpIndex, &offset)
	getUint16(data, &args.UserIndex, &offset)
	getInt128(data, &args.Size, &offset)
	return &args, nil
}
