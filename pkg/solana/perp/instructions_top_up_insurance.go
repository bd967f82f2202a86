package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const TopUpInsuranceInstructionArgsSize = 8 // amount

type TopUpInsuranceInstructionArgs struct {
	Amount uint64
}

type TopUpInsuranceInstructionAccounts struct {
	Payer             ed25519.PublicKey
	Slab              ed25519.PublicKey
	PayerTokenAccount ed25519.PublicKey
	Vault             ed25519.PublicKey
}

var TopUpInsuranceInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // payer
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: true},  // payer token account
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // token program
}

// NewTopUpInsuranceInstruction moves collateral from the payer into the
// insurance fund. Permissionless.
func NewTopUpInsuranceInstruction(
	accounts *TopUpInsuranceInstructionAccounts,
	args *TopUpInsuranceInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+TopUpInsuranceInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionTopUpInsurance, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			TopUpInsuranceInstructionSchema,
			accounts.Payer,
			accounts.Slab,
			accounts.PayerTokenAccount,
			accounts.Vault,
			SPL_TOKEN_PROGRAM_ID,
		)...,
	)
}

func ParseTopUpInsuranceInstructionArgs(data []byte) (*TopUpInsuranceInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionTopUpInsurance, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+TopUpInsuranceInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args TopUpInsuranceInstructionArgs
	getUint64(data, &args.Amount, &offset)
	return &args, nil
}
