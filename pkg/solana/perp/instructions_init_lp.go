package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

type InitLpInstructionAccounts struct {
	Owner ed25519.PublicKey
	Slab  ed25519.PublicKey

	// The matcher pair is recorded into the claimed slot; it travels as
	// accounts so the program can validate ownership.
	MatcherProgram ed25519.PublicKey
	MatcherContext ed25519.PublicKey
}

var InitLpInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: true},   // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: false}, // matcher program
	{IsSigner: false, IsWritable: false}, // matcher context
	{IsSigner: false, IsWritable: false}, // system program
}

// NewInitLpInstruction claims a free slot as an LP account.
func NewInitLpInstruction(accounts *InitLpInstructionAccounts) solana.Instruction {
	var offset int

	data := make([]byte, 1)
	putPerpInstruction(data, PerpInstructionInitLp, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			InitLpInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			accounts.MatcherProgram,
			accounts.MatcherContext,
			SYSTEM_PROGRAM_ID,
		)...,
	)
}

func ParseInitLpInstructionData(data []byte) error {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionInitLp, &offset); err != nil {
		return err
	}
	if len(data) != 1 {
		return ErrInvalidInstructionData
	}
	return nil
}
