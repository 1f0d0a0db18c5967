package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"playchain/x/gamehub/types"
)

// UpdateProgress handles the UpdateProgress message.
// It upserts the caller's progress record for the game and counts the call
// as one play, repeats on the same game included. Both writes commit
// together or not at all.
func (k *msgServer) UpdateProgress(ctx context.Context, msg *types.MsgUpdateProgress) (*types.MsgUpdateProgressResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "empty message")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if !types.ValidGameID(msg.GameId) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "game id must be below %d", types.MaxGameID)
	}
	if !types.ValidLevel(msg.Level) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "level must be 1-%d", types.MaxLevel)
	}
	if !types.ValidProgress(msg.Progress) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "progress percentage must be 0-%d", types.MaxProgressPct)
	}

	profile, err := k.Profiles.Get(ctx, msg.Creator)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, errorsmod.Wrap(types.ErrInvalidPlayer, "player not registered")
		}
		return nil, errorsmod.Wrap(err, "failed to get profile")
	}

	progress := types.GameProgress{
		GameId:       msg.GameId,
		CurrentLevel: msg.Level,
		ProgressPct:  msg.Progress,
		Completed:    msg.Progress == types.MaxProgressPct,
	}
	if err := k.Progress.Set(ctx, collections.Join(msg.Creator, msg.GameId), progress); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store progress")
	}

	profile.GamesPlayed++
	if err := k.Profiles.Set(ctx, msg.Creator, profile); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update profile")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventProgressUpdated,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(msg.GameId, 10)),
			sdk.NewAttribute(types.AttrLevel, strconv.FormatUint(uint64(msg.Level), 10)),
			sdk.NewAttribute(types.AttrProgress, strconv.FormatUint(uint64(msg.Progress), 10)),
			sdk.NewAttribute(types.AttrCompleted, strconv.FormatBool(progress.Completed)),
			sdk.NewAttribute(types.AttrGamesPlayed, strconv.FormatUint(profile.GamesPlayed, 10)),
		),
	)

	return &types.MsgUpdateProgressResponse{
		Completed:   progress.Completed,
		GamesPlayed: profile.GamesPlayed,
	}, nil
}
