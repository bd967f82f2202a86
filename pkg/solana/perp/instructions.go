package perp

import (
	"crypto/ed25519"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

// mustAccountMetas routes every instruction constructor through the same
// schema zip used by raw-key callers. The typed accounts structs fix the
// arity at compile time, so a failure here is a schema definition bug.
func mustAccountMetas(schema []solana.AccountRole, keys ...ed25519.PublicKey) []solana.AccountMeta {
	metas, err := solana.BuildAccountMetas(schema, keys)
	if err != nil {
		panic(err)
	}
	return metas
}
