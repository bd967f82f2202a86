package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

type CloseSlabInstructionAccounts struct {
	Admin ed25519.PublicKey
	Slab  ed25519.PublicKey
}

var CloseSlabInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: true},  // admin, receives reclaimed rent
	{IsSigner: false, IsWritable: true}, // slab
}

// NewCloseSlabInstruction reclaims an emptied, resolved slab.
func NewCloseSlabInstruction(accounts *CloseSlabInstructionAccounts) solana.Instruction {
	var offset int

	data := make([]byte, 1)
	putPerpInstruction(data, PerpInstructionCloseSlab, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			CloseSlabInstructionSchema,
			accounts.Admin,
			accounts.Slab,
		)...,
	)
}

func ParseCloseSlabInstructionData(data []byte) error {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionCloseSlab, &offset); err != nil {
		return err
	}
	if len(data) != 1 {
		return ErrInvalidInstructionData
	}
	return nil
}
