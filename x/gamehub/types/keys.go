package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "gamehub"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	ParamsKey            = collections.NewPrefix("gh_params")
	ProfileKeyPrefix     = collections.NewPrefix("gh_profile")
	ProgressKeyPrefix    = collections.NewPrefix("gh_progress")
	AchievementKeyPrefix = collections.NewPrefix("gh_achievement")
	BalanceKeyPrefix     = collections.NewPrefix("gh_balance")
)
