package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

type InitUserInstructionAccounts struct {
	Owner ed25519.PublicKey
	Slab  ed25519.PublicKey
}

var InitUserInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: true},   // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: false}, // system program
}

// NewInitUserInstruction claims a free slot as a user account. The slot
// index is assigned by the program and surfaced through the slab.
func NewInitUserInstruction(accounts *InitUserInstructionAccounts) solana.Instruction {
	var offset int

	data := make([]byte, 1)
	putPerpInstruction(data, PerpInstructionInitUser, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			InitUserInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			SYSTEM_PROGRAM_ID,
		)...,
	)
}

func ParseInitUserInstructionData(data []byte) error {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionInitUser, &offset); err != nil {
		return err
	}
	if len(data) != 1 {
		return ErrInvalidInstructionData
	}
	return nil
}
