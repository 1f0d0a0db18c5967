package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidInput      = errorsmod.Register(ModuleName, 1, "invalid input")
	ErrInvalidPlayer     = errorsmod.Register(ModuleName, 2, "invalid player")
	ErrAchievementExists = errorsmod.Register(ModuleName, 3, "achievement already unlocked")
	ErrNotAuthorized     = errorsmod.Register(ModuleName, 4, "not authorized")

	// Reserved error kinds. No message or query handler triggers these;
	// they keep their codes for forward compatibility.
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 5, "insufficient balance")
	ErrAchievementNotFound = errorsmod.Register(ModuleName, 6, "achievement not found")
	ErrGameNotFound        = errorsmod.Register(ModuleName, 7, "game not found")
)
