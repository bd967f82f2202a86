package perp

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// SlabHeader is the leading region of the slab.
type SlabHeader struct {
	Version  uint32
	Admin    ed25519.PublicKey
	Resolved bool
}

// GetSlabHeader decodes the header region out of the full slab buffer.
// The returned struct is a value copy; the source buffer is never
// retained.
func GetSlabHeader(data []byte) (*SlabHeader, error) {
	if len(data) < slabHeaderOffset+SlabHeaderSize {
		return nil, ErrSlabSizeMismatch
	}

	var obj SlabHeader
	obj.unmarshal(data[slabHeaderOffset:])
	return &obj, nil
}

func (obj *SlabHeader) unmarshal(data []byte) {
	var offset int

	getUint32(data, &obj.Version, &offset)
	getKey(data, &obj.Admin, &offset)
	getBool(data, &obj.Resolved, &offset)
}

func (obj *SlabHeader) Marshal() []byte {
	data := make([]byte, SlabHeaderSize)

	var offset int

	putUint32(data, obj.Version, &offset)
	putKey(data, obj.Admin, &offset)
	putBool(data, obj.Resolved, &offset)

	return data
}

func (obj *SlabHeader) String() string {
	return fmt.Sprintf(
		"SlabHeader{version=%d,admin=%s,resolved=%v}",
		obj.Version,
		base58.Encode(obj.Admin),
		obj.Resolved,
	)
}
