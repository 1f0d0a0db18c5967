package types

import "context"

// MsgRegisterPlayer creates the caller's player profile.
type MsgRegisterPlayer struct {
	Creator  string `json:"creator"`
	Username string `json:"username"`
}

type MsgRegisterPlayerResponse struct{}

// MsgUpdateProgress creates or overwrites the caller's progress record for
// one game and counts the call as a play.
type MsgUpdateProgress struct {
	Creator  string `json:"creator"`
	GameId   uint64 `json:"game_id"`
	Level    uint32 `json:"level"`
	Progress uint32 `json:"progress_percentage"`
}

type MsgUpdateProgressResponse struct {
	Completed   bool   `json:"completed"`
	GamesPlayed uint64 `json:"games_played"`
}

// MsgUnlockAchievement records a one-time achievement unlock and credits
// its reward points to the caller's total score.
type MsgUnlockAchievement struct {
	Creator       string `json:"creator"`
	AchievementId uint64 `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	RewardPoints  uint64 `json:"reward_points"`
}

type MsgUnlockAchievementResponse struct {
	TotalScore uint64 `json:"total_score"`
}

// MsgMintRewardTokens adds tokens to the caller's balance. There is no
// burn or spend counterpart.
type MsgMintRewardTokens struct {
	Creator string `json:"creator"`
	Amount  uint64 `json:"amount"`
}

type MsgMintRewardTokensResponse struct {
	Balance string `json:"balance"`
}

// MsgResetPlayer deletes the target's profile. Authority-gated.
type MsgResetPlayer struct {
	Authority string `json:"authority"`
	Target    string `json:"target"`
}

type MsgResetPlayerResponse struct{}

// MsgServer defines the gamehub message handlers.
type MsgServer interface {
	RegisterPlayer(ctx context.Context, msg *MsgRegisterPlayer) (*MsgRegisterPlayerResponse, error)
	UpdateProgress(ctx context.Context, msg *MsgUpdateProgress) (*MsgUpdateProgressResponse, error)
	UnlockAchievement(ctx context.Context, msg *MsgUnlockAchievement) (*MsgUnlockAchievementResponse, error)
	MintRewardTokens(ctx context.Context, msg *MsgMintRewardTokens) (*MsgMintRewardTokensResponse, error)
	ResetPlayer(ctx context.Context, msg *MsgResetPlayer) (*MsgResetPlayerResponse, error)
}
