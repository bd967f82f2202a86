package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

const SetOracleAuthorityInstructionArgsSize = 32 // new_authority

type SetOracleAuthorityInstructionArgs struct {
	NewAuthority ed25519.PublicKey
}

type SetOracleAuthorityInstructionAccounts struct {
	Admin ed25519.PublicKey
	Slab  ed25519.PublicKey
}

var SetOracleAuthorityInstructionSchema = []solana.AccountRole{
	{IsSigner: true, IsWritable: false}, // admin
	{IsSigner: false, IsWritable: true}, // slab
}

func NewSetOracleAuthorityInstruction(
	accounts *SetOracleAuthorityInstructionAccounts,
	args *SetOracleAuthorityInstructionArgs,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, 1+SetOracleAuthorityInstructionArgsSize)

	putPerpInstruction(data, PerpInstructionSetOracleAuthority, &offset)
	putKey(data, args.NewAuthority, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		mustAccountMetas(
			SetOracleAuthorityInstructionSchema,
			accounts.Admin,
			accounts.Slab,
		)...,
	)
}

func ParseSetOracleAuthorityInstructionArgs(data []byte) (*SetOracleAuthorityInstructionArgs, error) {
	var offset int
	if err := checkPerpInstruction(data, PerpInstructionSetOracleAuthority, &offset); err != nil {
		return nil, err
	}
	if len(data) != 1+SetOracleAuthorityInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var args SetOracleAuthorityInstructionArgs
	getKey(data, &args.NewAuthority, &offset)
	return &args, nil
}
