package perp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/slabmarkets/slab-client/pkg/solana"
)

func TestInitMarketInstructionRoundTrip(t *testing.T) {
	feedId, err := ParseFeedId("e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43")
	require.NoError(t, err)

	args := &InitMarketInstructionArgs{
		IndexFeedId:            feedId,
		MaxStalenessSlots:      25,
		MaxStalenessSecs:       10,
		ConfFilterBps:          50,
		Invert:                 true,
		UnitScale:              1_000_000,
		InitialMarkPrice:       42_000_000,
		InitialMarginBps:       1_000,
		MaintenanceMarginBps:   500,
		TradingFeeBps:          10,
		FundingPeriodSlots:     216_000,
		FundingSensitivityBps:  100,
		FundingClampBps:        300,
		PriceCapBps:            2_000,
		WarmupPeriodSlots:      7_200,
		MaxAccounts:            MaxAccounts,
		NewAccountFee:          1_000_000,
		RiskReductionThreshold: uint128.New(5, 1),
		MaintenanceFeePerSlot:  3,
		MaxCrankStalenessSlots: 150,
		LiquidationFeeBps:      50,
		LiquidationFeeCap:      10_000_000,
		LiquidationBufferBps:   25,
		MinLiquidationSize:     uint128.From64(1_000),
	}

	instruction := NewInitMarketInstruction(
		&InitMarketInstructionAccounts{
			Admin:          testKey(0x01),
			Slab:           testKey(0x02),
			CollateralMint: testKey(0x03),
			Vault:          testKey(0x04),
			VaultAuthority: testKey(0x05),
		},
		args,
	)

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)
	require.Len(t, instruction.Data, 1+InitMarketInstructionArgsSize)
	assert.EqualValues(t, PerpInstructionInitMarket, instruction.Data[0])
	require.Len(t, instruction.Accounts, len(InitMarketInstructionSchema))
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[1].IsSigner)
	assert.EqualValues(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[5].PublicKey)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[6].PublicKey)
	assert.EqualValues(t, SYSVAR_RENT_PUBKEY, instruction.Accounts[7].PublicKey)

	parsed, err := ParseInitMarketInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestDepositInstructionRoundTrip(t *testing.T) {
	args := &DepositInstructionArgs{
		AccountIndex: 7,
		Amount:       math.MaxUint64,
	}

	instruction := NewDepositInstruction(
		&DepositInstructionAccounts{
			Owner:             testKey(0x01),
			Slab:              testKey(0x02),
			OwnerTokenAccount: testKey(0x03),
			Vault:             testKey(0x04),
		},
		args,
	)

	assert.Equal(
		t,
		[]byte{0x03, 0x07, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		instruction.Data,
	)

	parsed, err := ParseDepositInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestWithdrawInstructionRoundTrip(t *testing.T) {
	args := &WithdrawInstructionArgs{
		AccountIndex: 131,
		Amount:       1,
	}

	instruction := NewWithdrawInstruction(
		&WithdrawInstructionAccounts{
			Owner:             testKey(0x01),
			Slab:              testKey(0x02),
			Vault:             testKey(0x03),
			VaultAuthority:    testKey(0x04),
			OwnerTokenAccount: testKey(0x05),
		},
		args,
	)

	parsed, err := ParseWithdrawInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestKeeperCrankInstructionDeterminism(t *testing.T) {
	accounts := &KeeperCrankInstructionAccounts{
		Caller:    testKey(0x01),
		Slab:      testKey(0x02),
		IndexFeed: testKey(0x03),
	}
	args := &KeeperCrankInstructionArgs{
		CallerIndex: 65535,
		AllowPanic:  false,
	}

	first := NewKeeperCrankInstruction(accounts, args)
	second := NewKeeperCrankInstruction(accounts, args)

	assert.Equal(t, []byte{0x05, 0xff, 0xff, 0x00}, first.Data)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.Accounts, second.Accounts)

	parsed, err := ParseKeeperCrankInstructionArgs(first.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestTradeCpiInstructionRoundTrip(t *testing.T) {
	// i128 minimum: the sign must survive the low/high halves intact.
	args := &TradeCpiInstructionArgs{
		LpIndex:   1,
		UserIndex: 2,
		Size:      Int128{Lo: 0, Hi: math.MinInt64},
	}

	instruction := NewTradeCpiInstruction(
		&TradeCpiInstructionAccounts{
			Owner:          testKey(0x01),
			Slab:           testKey(0x02),
			MatcherProgram: testKey(0x03),
			MatcherContext: testKey(0x04),
		},
		args,
	)

	parsed, err := ParseTradeCpiInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
	assert.Equal(t, "-170141183460469231731687303715884105728", parsed.Size.String())
	assert.True(t, parsed.Size.IsNegative())
}

func TestCloseAccountInstructionRoundTrip(t *testing.T) {
	args := &CloseAccountInstructionArgs{AccountIndex: 4095}

	instruction := NewCloseAccountInstruction(
		&CloseAccountInstructionAccounts{
			Owner:             testKey(0x01),
			Slab:              testKey(0x02),
			Vault:             testKey(0x03),
			VaultAuthority:    testKey(0x04),
			OwnerTokenAccount: testKey(0x05),
		},
		args,
	)

	parsed, err := ParseCloseAccountInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestSetOracleAuthorityInstructionRoundTrip(t *testing.T) {
	args := &SetOracleAuthorityInstructionArgs{
		NewAuthority: testKey(0x09),
	}

	instruction := NewSetOracleAuthorityInstruction(
		&SetOracleAuthorityInstructionAccounts{
			Admin: testKey(0x01),
			Slab:  testKey(0x02),
		},
		args,
	)

	parsed, err := ParseSetOracleAuthorityInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestPushOraclePriceInstructionRoundTrip(t *testing.T) {
	args := &PushOraclePriceInstructionArgs{
		Price:     42_000_000,
		Timestamp: -1,
	}

	instruction := NewPushOraclePriceInstruction(
		&PushOraclePriceInstructionAccounts{
			OracleAuthority: testKey(0x01),
			Slab:            testKey(0x02),
		},
		args,
	)

	parsed, err := ParsePushOraclePriceInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestWithdrawInsuranceInstructionRoundTrip(t *testing.T) {
	args := &WithdrawInsuranceInstructionArgs{Amount: 123}

	instruction := NewWithdrawInsuranceInstruction(
		&WithdrawInsuranceInstructionAccounts{
			Admin:             testKey(0x01),
			Slab:              testKey(0x02),
			Vault:             testKey(0x03),
			VaultAuthority:    testKey(0x04),
			AdminTokenAccount: testKey(0x05),
		},
		args,
	)

	parsed, err := ParseWithdrawInsuranceInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestTopUpInsuranceInstructionRoundTrip(t *testing.T) {
	args := &TopUpInsuranceInstructionArgs{Amount: 456}

	instruction := NewTopUpInsuranceInstruction(
		&TopUpInsuranceInstructionAccounts{
			Payer:             testKey(0x01),
			Slab:              testKey(0x02),
			PayerTokenAccount: testKey(0x03),
			Vault:             testKey(0x04),
		},
		args,
	)

	parsed, err := ParseTopUpInsuranceInstructionArgs(instruction.Data)
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
}

func TestArglessInstructions(t *testing.T) {
	initUser := NewInitUserInstruction(&InitUserInstructionAccounts{
		Owner: testKey(0x01),
		Slab:  testKey(0x02),
	})
	assert.Equal(t, []byte{0x01}, initUser.Data)
	assert.NoError(t, ParseInitUserInstructionData(initUser.Data))

	initLp := NewInitLpInstruction(&InitLpInstructionAccounts{
		Owner:          testKey(0x01),
		Slab:           testKey(0x02),
		MatcherProgram: testKey(0x03),
		MatcherContext: testKey(0x04),
	})
	assert.Equal(t, []byte{0x02}, initLp.Data)
	assert.NoError(t, ParseInitLpInstructionData(initLp.Data))

	resolve := NewResolveMarketInstruction(&ResolveMarketInstructionAccounts{
		Admin: testKey(0x01),
		Slab:  testKey(0x02),
	})
	assert.Equal(t, []byte{0x0a}, resolve.Data)
	assert.NoError(t, ParseResolveMarketInstructionData(resolve.Data))

	closeSlab := NewCloseSlabInstruction(&CloseSlabInstructionAccounts{
		Admin: testKey(0x01),
		Slab:  testKey(0x02),
	})
	assert.Equal(t, []byte{0x0c}, closeSlab.Data)
	assert.NoError(t, ParseCloseSlabInstructionData(closeSlab.Data))

	// Trailing bytes are rejected.
	assert.Equal(t, ErrInvalidInstructionData, ParseInitUserInstructionData([]byte{0x01, 0x00}))
}

func TestParseRejectsWrongDiscriminator(t *testing.T) {
	withdraw := NewWithdrawInstruction(
		&WithdrawInstructionAccounts{
			Owner:             testKey(0x01),
			Slab:              testKey(0x02),
			Vault:             testKey(0x03),
			VaultAuthority:    testKey(0x04),
			OwnerTokenAccount: testKey(0x05),
		},
		&WithdrawInstructionArgs{AccountIndex: 1, Amount: 2},
	)

	// Deposit and withdraw share an argument shape; only the
	// discriminator tells them apart.
	_, err := ParseDepositInstructionArgs(withdraw.Data)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = ParseDepositInstructionArgs(nil)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = ParseDepositInstructionArgs([]byte{0x03, 0x07})
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestInstructionSchemas(t *testing.T) {
	instruction := NewDepositInstruction(
		&DepositInstructionAccounts{
			Owner:             testKey(0x01),
			Slab:              testKey(0x02),
			OwnerTokenAccount: testKey(0x03),
			Vault:             testKey(0x04),
		},
		&DepositInstructionArgs{AccountIndex: 0, Amount: 1},
	)

	require.Len(t, instruction.Accounts, len(DepositInstructionSchema))
	for i, role := range DepositInstructionSchema {
		assert.Equal(t, role.IsSigner, instruction.Accounts[i].IsSigner, i)
		assert.Equal(t, role.IsWritable, instruction.Accounts[i].IsWritable, i)
	}
	assert.EqualValues(t, testKey(0x01), instruction.Accounts[0].PublicKey)
	assert.EqualValues(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[4].PublicKey)

	// Raw-key callers go through the same arity-checked path.
	_, err := solana.BuildAccountMetas(DepositInstructionSchema, nil)
	assert.Equal(t, solana.ErrArityMismatch, err)
}
