package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

type ResolveMarketInstructionAccounts struct {
	Admin ed25519.PublicKey
	Slab  ed25519.PublicKey
}

var ResolveMarketInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false}, // admin
	{IsSigner: false, IsWritable: true}, // slab
}

// NewResolveMarketInstruction marks the market resolved at the last
// effective price; trading halts and settlement begins.
func NewResolveMarketInstruction(accounts *ResolveMarketInstructionAccounts) solana.Instruction {
	var offset int

	data := make([]byte, 1)
	putPerpInstruction(data, PerpInstructionResolveMarket, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			ResolveMarketInstructionSchema,
			accounts.Admin,
			accounts.Slab,
		)...,
	)
}

func ParseResolveMarketInstructionData(data []byte) error {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionResolveMarket, &offset); err != nil {
		return err
	}
	if len(data) != 1 {
		return ErrInvalidInstructionData
	}
	return nil
}
