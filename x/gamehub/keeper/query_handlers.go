package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playchain/x/gamehub/types"
)

func (q *queryServer) Profile(ctx context.Context, req *types.QueryProfileRequest) (*types.QueryProfileResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	profile, err := q.k.Profiles.Get(ctx, req.Player)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "profile not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryProfileResponse{Profile: profile}, nil
}

func (q *queryServer) Progress(ctx context.Context, req *types.QueryProgressRequest) (*types.QueryProgressResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	progress, err := q.k.Progress.Get(ctx, collections.Join(req.Player, req.GameId))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "progress not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryProgressResponse{Progress: progress}, nil
}

// Achievement is the general keyed lookup for any achievement id.
func (q *queryServer) Achievement(ctx context.Context, req *types.QueryAchievementRequest) (*types.QueryAchievementResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	achievement, err := q.k.Achievements.Get(ctx, collections.Join(req.Player, req.AchievementId))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "achievement not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAchievementResponse{Achievement: achievement}, nil
}

// Achievements is the bounded convenience listing over the leading
// achievement ids (1..window). It is not a general enumeration; callers
// needing other ids use the keyed Achievement lookup.
func (q *queryServer) Achievements(ctx context.Context, req *types.QueryAchievementsRequest) (*types.QueryAchievementsResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	slots := make([]types.AchievementSlot, 0, params.AchievementWindow)
	for id := uint64(1); id <= uint64(params.AchievementWindow); id++ {
		slot := types.AchievementSlot{AchievementId: id}
		achievement, err := q.k.Achievements.Get(ctx, collections.Join(req.Player, id))
		switch {
		case err == nil:
			slot.Found = true
			slot.Achievement = &achievement
		case errors.Is(err, collections.ErrNotFound):
			// absent slot
		default:
			return nil, status.Error(codes.Internal, err.Error())
		}
		slots = append(slots, slot)
	}
	return &types.QueryAchievementsResponse{Achievements: slots}, nil
}

func (q *queryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	balance, err := q.k.GetBalance(ctx, req.Player)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryBalanceResponse{Balance: balance}, nil
}

func (q *queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}
