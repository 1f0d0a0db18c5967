package types

import (
	"context"

	"cosmossdk.io/math"
)

type QueryProfileRequest struct {
	Player string `json:"player"`
}

type QueryProfileResponse struct {
	Profile PlayerProfile `json:"profile"`
}

type QueryProgressRequest struct {
	Player string `json:"player"`
	GameId uint64 `json:"game_id"`
}

type QueryProgressResponse struct {
	Progress GameProgress `json:"progress"`
}

type QueryAchievementRequest struct {
	Player        string `json:"player"`
	AchievementId uint64 `json:"achievement_id"`
}

type QueryAchievementResponse struct {
	Achievement Achievement `json:"achievement"`
}

type QueryAchievementsRequest struct {
	Player string `json:"player"`
}

// AchievementSlot is one entry in the bounded achievement listing. Found
// distinguishes an unlocked slot from an absent one.
type AchievementSlot struct {
	AchievementId uint64       `json:"achievement_id"`
	Found         bool         `json:"found"`
	Achievement   *Achievement `json:"achievement,omitempty"`
}

type QueryAchievementsResponse struct {
	Achievements []AchievementSlot `json:"achievements"`
}

type QueryBalanceRequest struct {
	Player string `json:"player"`
}

type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryServer defines the gamehub read-only query handlers.
type QueryServer interface {
	Profile(ctx context.Context, req *QueryProfileRequest) (*QueryProfileResponse, error)
	Progress(ctx context.Context, req *QueryProgressRequest) (*QueryProgressResponse, error)
	Achievement(ctx context.Context, req *QueryAchievementRequest) (*QueryAchievementResponse, error)
	Achievements(ctx context.Context, req *QueryAchievementsRequest) (*QueryAchievementsResponse, error)
	Balance(ctx context.Context, req *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
}
