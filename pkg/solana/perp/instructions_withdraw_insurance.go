package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const WithdrawInsuranceInstructionArgsSize = 8 // amount

type WithdrawInsuranceInstructionArgs struct {
	Amount uint64
}

type WithdrawInsuranceInstructionAccounts struct {
	Admin             ed25519.PublicKey
	Slab              ed25519.PublicKey
	Vault             ed25519.PublicKey
	VaultAuthority    ed25519.PublicKey
	AdminTokenAccount ed25519.PublicKey
}

var WithdrawInsuranceInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // admin
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // vault authority
	{IsSigner: false, IsWritable: true},  // admin token account
	{IsSigner: false, IsWritable: false}, // token program
}

func NewWithdrawInsuranceInstruction(
	accounts *WithdrawInsuranceInstructionAccounts,
	args *WithdrawInsuranceInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+WithdrawInsuranceInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionWithdrawInsurance, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			WithdrawInsuranceInstructionSchema,
			accounts.Admin,
			accounts.Slab,
			accounts.Vault,
			accounts.VaultAuthority,
			accounts.AdminTokenAccount,
			SPL_TOKEN_PROGRAM_ID,
		)...,
	)
}

func ParseWithdrawInsuranceInstructionArgs(data []byte) (*WithdrawInsuranceInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionWithdrawInsurance, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+WithdrawInsuranceInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args WithdrawInsuranceInstructionArgs
	getUint64(data, &args.Amount, &offset)
	return &args, nil
}
