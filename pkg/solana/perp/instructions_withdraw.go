package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const WithdrawInstructionArgsSize = (2 + // account_index
	8) // amount

type WithdrawInstructionArgs struct {
	AccountIndex uint16
	Amount       uint64
}

type WithdrawInstructionAccounts struct {
	Owner             ed25519.PublicKey
	Slab              ed25519.PublicKey
	Vault             ed25519.PublicKey
	VaultAuthority    ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
}

var WithdrawInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // vault authority
	{IsSigner: false, IsWritable: true},  // owner token account
	{IsSigner: false, IsWritable: false}, // token program
}

func NewWithdrawInstruction(
	accounts *WithdrawInstructionAccounts,
	args *WithdrawInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+WithdrawInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionWithdraw, &offset)
	putUint16(data, args.AccountIndex, &offset)
	putUint64(data, args.Amount, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			WithdrawInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			accounts.Vault,
			accounts.VaultAuthority,
			accounts.OwnerTokenAccount,
			SPL_TOKEN_PROGRAM_ID,
		)...,
	)
}

func ParseWithdrawInstructionArgs(data []byte) (*WithdrawInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionWithdraw, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+WithdrawInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args WithdrawInstructionArgs
	getUint16(data, &args.AccountIndex, &offset)
	getUint64(data, &args.Amount, &offset)
	return &args, nil
}
