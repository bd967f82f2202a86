package solana

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrIncorrectProgram     = errors.New("incorrect program")
	ErrIncorrectInstruction = errors.New("incorrect instruction")
	ErrArityMismatch        = errors.New("account count does not match instruction schema")
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

// AccountRole describes one positional slot in an instruction's account
// list.
type AccountRole struct {
	IsSigner   bool
	IsWritable bool
}

// BuildAccountMetas zips a fixed per-instruction role schema to the
// supplied public keys.
//
// Position is load-bearing: programs address accounts by position, not
// name, so the keys must already be in schema order and no reordering,
// deduplication, padding, or truncation is ever performed here.
func BuildAccountMetas(schema []AccountRole, keys []ed25519.PublicKey) ([]AccountMeta, error) {
	if len(keys) != len(schema) {
		return nil, ErrArityMismatch
	}

	metas := make([]AccountMeta, len(schema))
	for i, role := range schema {
		metas[i] = AccountMeta{
			PublicKey:  keys[i],
			IsSigner:   role.IsSigner,
			IsWritable: role.IsWritable,
		}
	}
	return metas, nil
}

// Instruction represents a transaction instruction.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}
