package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"playchain/x/gamehub/types"
)

func validGenesis() types.GenesisState {
	return types.GenesisState{
		Params: types.DefaultParams(),
		Players: []types.PlayerRecord{
			{Address: "player1", Profile: types.PlayerProfile{Username: "alice", TotalScore: 50, Level: 1, GamesPlayed: 2}},
			{Address: "player2", Profile: types.PlayerProfile{Username: "bob", Level: 1}},
		},
		Progress: []types.ProgressRecord{
			{Player: "player1", Progress: types.GameProgress{GameId: 5, CurrentLevel: 10, ProgressPct: 100, Completed: true}},
		},
		Achievements: []types.AchievementRecord{
			{Player: "player1", Achievement: types.Achievement{AchievementId: 1, Name: "First Win", Description: "Completed level 1", RewardPoints: 50, UnlockedAt: 7}},
		},
		Balances: []types.BalanceRecord{
			{Player: "player1", Balance: math.NewInt(150)},
		},
	}
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
	require.NoError(t, validGenesis().Validate())
}

func TestGenesisValidateRejects(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(gs *types.GenesisState)
		errStr string
	}{
		{
			name: "invalid params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.AchievementWindow = 0
			},
			errStr: "achievement window",
		},
		{
			name: "duplicate player",
			mutate: func(gs *types.GenesisState) {
				gs.Players = append(gs.Players, gs.Players[0])
			},
			errStr: "duplicate address",
		},
		{
			name: "short username",
			mutate: func(gs *types.GenesisState) {
				gs.Players[1].Profile.Username = "ab"
			},
			errStr: "invalid username",
		},
		{
			name: "zero level",
			mutate: func(gs *types.GenesisState) {
				gs.Players[1].Profile.Level = 0
			},
			errStr: "level must be positive",
		},
		{
			name: "duplicate progress",
			mutate: func(gs *types.GenesisState) {
				gs.Progress = append(gs.Progress, gs.Progress[0])
			},
			errStr: "duplicate record",
		},
		{
			name: "inconsistent completed flag",
			mutate: func(gs *types.GenesisState) {
				gs.Progress[0].Progress.Completed = false
			},
			errStr: "completed flag",
		},
		{
			name: "duplicate achievement",
			mutate: func(gs *types.GenesisState) {
				gs.Achievements = append(gs.Achievements, gs.Achievements[0])
			},
			errStr: "duplicate record",
		},
		{
			name: "zero reward points",
			mutate: func(gs *types.GenesisState) {
				gs.Achievements[0].Achievement.RewardPoints = 0
			},
			errStr: "reward points",
		},
		{
			name: "score mismatch",
			mutate: func(gs *types.GenesisState) {
				gs.Players[0].Profile.TotalScore = 51
			},
			errStr: "total score",
		},
		{
			name: "negative balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances[0].Balance = math.NewInt(-1)
			},
			errStr: "non-negative",
		},
		{
			name: "nil balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances[0].Balance = math.Int{}
			},
			errStr: "non-negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(&gs)
			err := gs.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errStr)
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.Error(t, types.Params{AchievementWindow: 0}.Validate())
}
