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

// UnlockAchievement handles the UnlockAchievement message.
// An achievement id can be unlocked at most once per player; the record is
// immutable and its reward points are credited to the profile total score
// in the same operation. There is deliberately no update path for an
// unlocked achievement, which keeps the unlock height and reward
// accounting tamper-proof.
func (k *msgServer) UnlockAchievement(ctx context.Context, msg *types.MsgUnlockAchievement) (*types.MsgUnlockAchievementResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "empty message")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if !types.ValidAchievementName(msg.Name) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "name must be 1-%d characters", types.MaxAchievementNameLen)
	}
	if !types.ValidDescription(msg.Description) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "description must be 1-%d characters", types.MaxDescriptionLen)
	}
	if msg.RewardPoints == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "reward points must be greater than 0")
	}

	profile, err := k.Profiles.Get(ctx, msg.Creator)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, errorsmod.Wrap(types.ErrInvalidPlayer, "player not registered")
		}
		return nil, errorsmod.Wrap(err, "failed to get profile")
	}

	key := collections.Join(msg.Creator, msg.AchievementId)
	exists, err := k.Achievements.Has(ctx, key)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check achievement")
	}
	if exists {
		return nil, errorsmod.Wrapf(types.ErrAchievementExists, "achievement %d already unlocked", msg.AchievementId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	achievement := types.Achievement{
		AchievementId: msg.AchievementId,
		Name:          msg.Name,
		Description:   msg.Description,
		RewardPoints:  msg.RewardPoints,
		UnlockedAt:    sdkCtx.BlockHeight(),
	}
	if err := k.Achievements.Set(ctx, key, achievement); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store achievement")
	}

	profile.TotalScore += msg.RewardPoints
	if err := k.Profiles.Set(ctx, msg.Creator, profile); err != nil {
		return nil, errorsmod.Wrap(err, "failed to update profile")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventAchievementUnlocked,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrAchievementID, strconv.FormatUint(msg.AchievementId, 10)),
			sdk.NewAttribute(types.AttrRewardPoints, strconv.FormatUint(msg.RewardPoints, 10)),
			sdk.NewAttribute(types.AttrTotalScore, strconv.FormatUint(profile.TotalScore, 10)),
		),
	)

	return &types.MsgUnlockAchievementResponse{TotalScore: profile.TotalScore}, nil
}
