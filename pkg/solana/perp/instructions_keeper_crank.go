package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const KeeperCrankInstructionArgsSize = (2 + // caller_index
	1) // allow_panic

type KeeperCrankInstructionArgs struct {
	CallerIndex uint16

	// AllowPanic lets the crank surface engine assertion failures
	// instead of unwinding; used by audit tooling only.
	AllowPanic bool
}

type KeeperCrankInstructionAccounts struct {
	Caller ed25519.PublicKey
	Slab   ed25519.PublicKey

	// IndexFeed is the external oracle account. Markets in internal
	// mark-price mode pass the program id in this position.
	IndexFeed ed25519.PublicKey
}

var KeeperCrankInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // caller
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: false}, // index feed
}

func NewKeeperCrankInstruction(
	accounts *KeeperCrankInstructionAccounts,
	args *KeeperCrankInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+KeeperCrankInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionKeeperCrank, &offset)
	putUint16(data, args.CallerIndex, &offset)
	putBool(data, args.AllowPanic, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			KeeperCrankInstructionSchema,
			accounts.Caller,
			accounts.Slab,
			accounts.IndexFeed,
		)...,
	)
}

func ParseKeeperCrankInstructionArgs(data []byte) (*KeeperCrankInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionKeeperCrank, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+KeeperCrankInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args KeeperCrankInstructionArgs
	getUint16(data, &args.CallerIndex, &offset)
	getBool(data, &args.AllowPanic, &offset)
	return &args, nil
}
