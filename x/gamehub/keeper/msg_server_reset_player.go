package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"playchain/x/gamehub/types"
)

// ResetPlayer handles the ResetPlayer message.
// Only the module authority may execute it. It removes the target's
// profile and nothing else: progress, achievement and balance records for
// the target survive the reset and stay retrievable.
func (k *msgServer) ResetPlayer(ctx context.Context, msg *types.MsgResetPlayer) (*types.MsgResetPlayerResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "empty message")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Target); err != nil {
		return nil, errorsmod.Wrap(err, "invalid target address")
	}

	authority, err := k.addressCodec.BytesToString(k.authority)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid module authority")
	}
	if msg.Authority != authority {
		return nil, errorsmod.Wrapf(types.ErrNotAuthorized, "expected %s, got %s", authority, msg.Authority)
	}

	exists, err := k.HasProfile(ctx, msg.Target)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to check profile")
	}
	if !exists {
		return nil, errorsmod.Wrap(types.ErrInvalidPlayer, "target not registered")
	}

	if err := k.Profiles.Remove(ctx, msg.Target); err != nil {
		return nil, errorsmod.Wrap(err, "failed to remove profile")
	}

	k.Logger(ctx).Info("player profile reset",
		"authority", msg.Authority,
		"player", msg.Target,
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPlayerReset,
			sdk.NewAttribute(types.AttrAuthority, msg.Authority),
			sdk.NewAttribute(types.AttrPlayer, msg.Target),
		),
	)

	return &types.MsgResetPlayerResponse{}, nil
}
