package perp

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

var (
	VaultAuthorityPrefix = []byte("vault")
	LpPrefix             = []byte("lp")
)

type GetVaultAuthorityAddressArgs struct {
	Slab ed25519.PublicKey
}

// GetVaultAuthorityAddress derives the PDA that signs for the market's
// collateral vault.
func GetVaultAuthorityAddress(args *GetVaultAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		VaultAuthorityPrefix,
		args.Slab,
	)
}

type GetLpAddressArgs struct {
	Slab    ed25519.PublicKey
	LpIndex uint16
}

// GetLpAddress derives the per-index LP address for a market.
func GetLpAddress(args *GetLpAddressArgs) (ed25519.PublicKey, uint8, error) {
	lpIndexBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(lpIndexBytes, args.LpIndex)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		LpPrefix,
		args.Slab,
		lpIndexBytes,
	)
}
