package keeper_test

import (
	"testing"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"playchain/x/gamehub/keeper"
	"playchain/x/gamehub/types"
)

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	msgServer    types.MsgServer
	queryServer  types.QueryServer
	addressCodec address.Codec
	authority    string
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	authorityStr, err := addressCodec.BytesToString(authority)
	require.NoError(t, err)

	k := keeper.NewKeeper(
		storeService,
		cdc,
		addressCodec,
		authority,
	)

	require.NoError(t, k.Params.Set(ctx, types.DefaultParams()))

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		msgServer:    keeper.NewMsgServerImpl(k),
		queryServer:  keeper.NewQueryServerImpl(k),
		addressCodec: addressCodec,
		authority:    authorityStr,
	}
}

// testAddress returns a deterministic bech32 address for the given seed.
func (f *fixture) testAddress(t *testing.T, seed string) string {
	t.Helper()
	addr := sdk.AccAddress([]byte(seed))
	addrStr, err := f.addressCodec.BytesToString(addr)
	require.NoError(t, err)
	return addrStr
}

// registerPlayer registers a profile for the address and fails the test on error.
func (f *fixture) registerPlayer(t *testing.T, addr, username string) {
	t.Helper()
	_, err := f.msgServer.RegisterPlayer(f.ctx, &types.MsgRegisterPlayer{
		Creator:  addr,
		Username: username,
	})
	require.NoError(t, err)
}

func TestKeeperAuthority(t *testing.T) {
	f := initFixture(t)
	require.Equal(t, authtypes.NewModuleAddress(types.GovModuleName).Bytes(), f.keeper.GetAuthority())
}

func TestGetBalanceDefaultsToZero(t *testing.T) {
	f := initFixture(t)

	balance, err := f.keeper.GetBalance(f.ctx, f.testAddress(t, "unminted_player_01"))
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestGetParamsDefaultsWhenUnset(t *testing.T) {
	f := initFixture(t)
	require.NoError(t, f.keeper.Params.Remove(f.ctx))

	params, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	f := initFixture(t)
	err := f.keeper.SetParams(f.ctx, types.Params{AchievementWindow: 0})
	require.Error(t, err)
}
