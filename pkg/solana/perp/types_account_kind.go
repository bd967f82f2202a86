package perp

// AccountKind is the closed set of slab account variants. There are
// exactly two; anything else in the kind byte is corrupt data.
type AccountKind uint8

const (
	AccountKindUser AccountKind = iota
	AccountKindLp
)

func putAccountKind(dst []byte, v AccountKind, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}
func getAccountKind(src []byte, dst *AccountKind, offset *int) {
	*dst = AccountKind(src[*offset])
	*offset += 1
}

func (obj AccountKind) isValid() bool {
	return obj == AccountKindUser || obj == AccountKindLp
}

func (obj AccountKind) String() string {
	switch obj {
	case AccountKindUser:
		return "user"
	case AccountKindLp:
		return "lp"
	}
	return "invalid"
}
