package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const CloseAccountInstructionArgsSize = 2 // account_index

type CloseAccountInstructionArgs struct {
	AccountIndex uint16
}

type CloseAccountInstructionAccounts struct {
	Owner             ed25519.PublicKey
	Slab              ed25519.PublicKey
	Vault             ed25519.PublicKey
	VaultAuthority    ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
}

var CloseAccountInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false},  // owner
	{IsSigner: false, IsWritable: true},  // slab
	{IsSigner: false, IsWritable: true},  // vault
	{IsSigner: false, IsWritable: false}, // vault authority
	{IsSigner: false, IsWritable: true},  // owner token account
	{IsSigner: false, IsWritable: false}, // token program
}

func NewCloseAccountInstruction(
	accounts *CloseAccountInstructionAccounts,
	args *CloseAccountInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+CloseAccountInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionCloseAccount, &offset)
	putUint16(data, args.AccountIndex, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			CloseAccountInstructionSchema,
			accounts.Owner,
			accounts.Slab,
			accounts.Vault,
			accounts.VaultAuthority,
			accounts.OwnerTokenAccount,
			SPL_TOKEN_PROGRAM_ID,
		)...,
	)
}

func ParseCloseAccountInstructionArgs(data []byte) (*CloseAccountInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionCloseAccount, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+CloseAccountInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args CloseAccountInstructionArgs
	getUint16(data, &args.AccountIndex, &offset)
	return &args, nil
}
