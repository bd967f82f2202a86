package perp

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidSlabData        = errors.New("unexpected slab data")
	ErrSlabSizeMismatch       = errors.New("slab size does not match the expected layout")
	ErrIndexOutOfRange        = errors.New("account index out of range")
	ErrInvalidArgument        = errors.New("invalid instruction argument")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	// todo: setup real program address
	PROGRAM_ADDRESS = mustBase58Decode("HrAAQrWGqy2bMkk6rsGZFMfjzQonrM1hpKwhQFQeEBEs")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID    = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))

	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)
