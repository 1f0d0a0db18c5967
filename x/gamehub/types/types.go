package types

// PlayerProfile is the per-player record created at registration.
// TotalScore always equals the sum of reward points over the player's
// unlocked achievements; it is adjusted incrementally at each unlock and
// never recomputed from scratch.
type PlayerProfile struct {
	Username    string `json:"username"`
	TotalScore  uint64 `json:"total_score"`
	Level       uint32 `json:"level"`
	GamesPlayed uint64 `json:"games_played"`
}

// GameProgress tracks a player's state in one game. Completed is derived
// from the progress percentage at write time and is not settable directly.
type GameProgress struct {
	GameId       uint64 `json:"game_id"`
	CurrentLevel uint32 `json:"current_level"`
	ProgressPct  uint32 `json:"progress_percentage"`
	Completed    bool   `json:"completed"`
}

// Achievement is immutable once created. UnlockedAt records the block
// height at which the achievement was unlocked.
type Achievement struct {
	AchievementId uint64 `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RewardPoints  uint64 `json:"reward_points"`
	UnlockedAt    int64  `json:"unlocked_at"`
}

// NewPlayerProfile returns the profile created at registration.
func NewPlayerProfile(username string) PlayerProfile {
	return PlayerProfile{
		Username:    username,
		TotalScore:  0,
		Level:       1,
		GamesPlayed: 0,
	}
}
