package perp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The offsets below are shared with the on-chain program; a drift in any
// region size silently corrupts every downstream read.
func TestSlabLayout(t *testing.T) {
	assert.Equal(t, 37, SlabHeaderSize)
	assert.Equal(t, 225, SlabConfigSize)
	assert.Equal(t, 84, RiskParamsSize)
	assert.Equal(t, 238, EngineStateSize)
	assert.Equal(t, 168, AccountSlotSize)

	assert.Equal(t, 37, slabConfigOffset)
	assert.Equal(t, 262, riskParamsOffset)
	assert.Equal(t, 346, engineStateOffset)
	assert.Equal(t, 584, usedBitmapOffset)
	assert.Equal(t, 1096, accountSlotOffset)

	assert.Equal(t, 689224, SlabSize)
}

func TestRegionMarshalSizes(t *testing.T) {
	assert.Len(t, new(SlabHeader).Marshal(), SlabHeaderSize)
	assert.Len(t, new(SlabConfig).Marshal(), SlabConfigSize)
	assert.Len(t, new(RiskParams).Marshal(), RiskParamsSize)
	assert.Len(t, new(EngineState).Marshal(), EngineStateSize)
	assert.Len(t, new(Account).Marshal(), AccountSlotSize)
}
