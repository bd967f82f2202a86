package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const DepositInstructionArgsSize = (2 + // account_index
	8) // amount

type DepositInstructionArgs struct {
	AccountIndex uint16
	Amount       uint64
}

type DepositInstructionAccounts struct {
	Owner             ed25519.PublicKey
	Slab              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Vault             ed25519.PublicKey
}

var DepositInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: true},  // owner token account
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // token program
}

func NewDepositInstruction(
	accounts *DepositInstructionAccounts,
	args *DepositInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+DepositInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionDeposit, &offset)
	putUint16(data, args.AccountIndex, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			DepositInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			accounts.OwnerTokenAccount,
			accounts.Vault,
			SPL_TOKEN_PROGRAM_ID,
		)...,
	)
}

func ParseDepositInstructionArgs(data []byte) (*DepositInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionDeposit, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+DepositInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args DepositInstructionArgs
	getUint16(data, &args.AccountIndex, &offset)
	getUint64(data, &args.Amount, &offset)
	return &args, nil
}
