package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"playchain/x/gamehub/types"
)

// Keeper defines the gamehub module keeper. It owns four collections keyed
// by player address (and game/achievement id for the pair-keyed ones); all
// record mutation goes through the message handlers.
type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec
	// authority is the single privileged address allowed to execute admin
	// messages, fixed for the keeper's lifetime.
	authority []byte

	Params       collections.Item[types.Params]
	Profiles     collections.Map[string, types.PlayerProfile]
	Progress     collections.Map[collections.Pair[string, uint64], types.GameProgress]
	Achievements collections.Map[collections.Pair[string, uint64], types.Achievement]
	Balances     collections.Map[string, math.Int]
}

// NewKeeper creates a new gamehub module Keeper instance.
func NewKeeper(
	storeService corestore.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,

		Params:   collections.NewItem(sb, types.ParamsKey, "params", jsonValue[types.Params]{name: "gamehub/Params"}),
		Profiles: collections.NewMap(sb, types.ProfileKeyPrefix, "profiles", collections.StringKey, jsonValue[types.PlayerProfile]{name: "gamehub/PlayerProfile"}),
		Progress: collections.NewMap(
			sb,
			types.ProgressKeyPrefix,
			"progress",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			jsonValue[types.GameProgress]{name: "gamehub/GameProgress"},
		),
		Achievements: collections.NewMap(
			sb,
			types.AchievementKeyPrefix,
			"achievements",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			jsonValue[types.Achievement]{name: "gamehub/Achievement"},
		),
		Balances: collections.NewMap(sb, types.BalanceKeyPrefix, "balances", collections.StringKey, sdk.IntValue),
	}

	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// HasProfile reports whether a profile exists for the player.
func (k Keeper) HasProfile(ctx context.Context, player string) (bool, error) {
	return k.Profiles.Has(ctx, player)
}

// GetBalance returns the reward-token balance for a player, zero when no
// record exists.
func (k Keeper) GetBalance(ctx context.Context, player string) (math.Int, error) {
	balance, err := k.Balances.Get(ctx, player)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return balance, nil
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}
