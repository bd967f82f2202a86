package perp

import (
	"encoding/hex"
)

const FeedIdSize = 32

// FeedId identifies the external index oracle feed. The all-zero value
// is a sentinel meaning the market runs in internal mark-price mode with
// no external oracle; it is never a valid feed id.
type FeedId [FeedIdSize]byte

// ParseFeedId decodes a feed id from its hex form. Anything other than
// exactly 64 hex characters fails with ErrInvalidArgument.
func ParseFeedId(value string) (FeedId, error) {
	var feedId FeedId

	if len(value) != 2*FeedIdSize {
		return feedId, ErrInvalidArgument
	}

	decoded, err := hex.DecodeString(value)
	if err != nil {
		return feedId, ErrInvalidArgument
	}

	copy(feedId[:], decoded)
	return feedId, nil
}

// IsZero reports whether this is the no-external-oracle sentinel.
func (obj FeedId) IsZero() bool {
	return obj == FeedId{}
}

func (obj FeedId) String() string {
	if obj.IsZero() {
		return "internal"
	}
	return hex.EncodeToString(obj[:])
}
