package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"playchain/x/gamehub/types"
)

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}

	for _, pr := range gs.Players {
		if err := k.Profiles.Set(ctx, pr.Address, pr.Profile); err != nil {
			return err
		}
	}

	for _, rec := range gs.Progress {
		key := collections.Join(rec.Player, rec.Progress.GameId)
		if err := k.Progress.Set(ctx, key, rec.Progress); err != nil {
			return err
		}
	}

	for _, rec := range gs.Achievements {
		key := collections.Join(rec.Player, rec.Achievement.AchievementId)
		if err := k.Achievements.Set(ctx, key, rec.Achievement); err != nil {
			return err
		}
	}

	for _, rec := range gs.Balances {
		if err := k.Balances.Set(ctx, rec.Player, rec.Balance); err != nil {
			return err
		}
	}

	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	gen := *types.DefaultGenesis()

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.GenesisState{}, err
	}
	gen.Params = params

	err = k.Profiles.Walk(ctx, nil, func(address string, profile types.PlayerProfile) (bool, error) {
		gen.Players = append(gen.Players, types.PlayerRecord{Address: address, Profile: profile})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	err = k.Progress.Walk(ctx, nil, func(key collections.Pair[string, uint64], progress types.GameProgress) (bool, error) {
		gen.Progress = append(gen.Progress, types.ProgressRecord{Player: key.K1(), Progress: progress})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	err = k.Achievements.Walk(ctx, nil, func(key collections.Pair[string, uint64], achievement types.Achievement) (bool, error) {
		gen.Achievements = append(gen.Achievements, types.AchievementRecord{Player: key.K1(), Achievement: achievement})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	err = k.Balances.Walk(ctx, nil, func(player string, balance math.Int) (bool, error) {
		gen.Balances = append(gen.Balances, types.BalanceRecord{Player: player, Balance: balance})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	return gen, nil
}
