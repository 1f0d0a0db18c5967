package types

import "cosmossdk.io/math"

// PlayerRecord pairs a player address with their profile for genesis.
type PlayerRecord struct {
	Address string        `json:"address"`
	Profile PlayerProfile `json:"profile"`
}

// ProgressRecord pairs a player address with one game progress record.
type ProgressRecord struct {
	Player   string       `json:"player"`
	Progress GameProgress `json:"progress"`
}

// AchievementRecord pairs a player address with one unlocked achievement.
type AchievementRecord struct {
	Player      string      `json:"player"`
	Achievement Achievement `json:"achievement"`
}

// BalanceRecord pairs a player address with their reward-token balance.
type BalanceRecord struct {
	Player  string   `json:"player"`
	Balance math.Int `json:"balance"`
}

type GenesisState struct {
	Params       Params              `json:"params"`
	Players      []PlayerRecord      `json:"players"`
	Progress     []ProgressRecord    `json:"progress"`
	Achievements []AchievementRecord `json:"achievements"`
	Balances     []BalanceRecord     `json:"balances"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Players:      []PlayerRecord{},
		Progress:     []ProgressRecord{},
		Achievements: []AchievementRecord{},
		Balances:     []BalanceRecord{},
	}
}
