package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"playchain/x/gamehub/types"
)

// MintRewardTokens handles the MintRewardTokens message.
// Balances are mint-only: the ledger defines no burn or spend path, so a
// balance never decreases.
func (k *msgServer) MintRewardTokens(ctx context.Context, msg *types.MsgMintRewardTokens) (*types.MsgMintRewardTokensResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "empty message")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(err, "invalid creator address")
	}

	if msg.Amount == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidInput, "amount must be greater than 0")
	}

	balance, err := k.GetBalance(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to get balance")
	}

	newBalance := balance.Add(math.NewIntFromUint64(msg.Amount))
	if err := k.Balances.Set(ctx, msg.Creator, newBalance); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store balance")
	}

	k.Logger(ctx).Info("minted reward tokens",
		"player", msg.Creator,
		"amount", msg.Amount,
		"balance", newBalance.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTokensMinted,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrAmount, strconv.FormatUint(msg.Amount, 10)),
			sdk.NewAttribute(types.AttrBalance, newBalance.String()),
		),
	)

	return &types.MsgMintRewardTokensResponse{Balance: newBalance.String()}, nil
}
