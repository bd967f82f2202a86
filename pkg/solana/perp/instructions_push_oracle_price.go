package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const PushOraclePriceInstructionArgsSize = (8 + // price
	8) // timestamp

type PushOraclePriceInstructionArgs struct {
	Price uint64

	// Timestamp is always supplied by the caller. The encoder never
	// reads the clock; identical args must produce identical bytes.
	Timestamp int64
}

type PushOraclePriceInstructionAccounts struct {
	OracleAuthority ed25519.PublicKey
	Slab            ed25519.PublicKey
}

var PushOraclePriceInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false}, // oracle authority
	{IsSigner: false, IsWritable: true}, // slab
}

func NewPushOraclePriceInstruction(
	accounts *PushOraclePriceInstructionAccounts,
	args *PushOraclePriceInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+PushOraclePriceInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionPushOraclePrice, &offset)
	putUint64(data, args.Price, &offset)
	putInt64(data, args.Timestamp, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			PushOraclePriceInstructionSchema,
			accounts.OracleAuthority,
			accounts.Slab,
		)...,
	)
}

func ParsePushOraclePriceInstructionArgs(data []byte) (*PushOraclePriceInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionPushOraclePrice, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+PushOraclePriceInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args PushOraclePriceInstructionArgs
	getUint64(data, &args.Price, &offset)
	getInt64(data, &args.Timestamp, &offset)
	return &args, nil
}
