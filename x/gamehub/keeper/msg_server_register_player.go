package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"playchain/x/gamehub/types"
)

// RegisterPlayer handles the RegisterPlayer message.
// It creates the caller's profile; registration happens at most once per address.
func (k *msgServer) RegisterPlayer(ctx context.Context, msg *types.MsgRegisterPlayer) (*types.MsgRegisterPlayerResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "empty message")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if !types.ValidUsername(msg.Username) {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "username must be %d-%d characters", types.MinUsernameLen, types.MaxUsernameLen)
	}

	exists, err := k.HasProfile(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check profile")
	}
	if exists {
		return nil, errorsmod.Wrap(types.ErrInvalidPlayer, "player already registered")
	}

	if err := k.Profiles.Set(ctx, msg.Creator, types.NewPlayerProfile(msg.Username)); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store profile")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPlayerRegistered,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrUsername, msg.Username),
		),
	)

	return &types.MsgRegisterPlayerResponse{}, nil
}
