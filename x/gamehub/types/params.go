package types

import (
	fmt "fmt"
)

// DefaultAchievementWindow is the number of leading achievement ids
// covered by the bounded Achievements listing query.
const DefaultAchievementWindow uint32 = 5

// Params holds configurable parameters for the gamehub module. Core field
// validation bounds are protocol constants (see validation.go) and are
// deliberately not params.
type Params struct {
	AchievementWindow uint32 `json:"achievement_window"` // ids 1..N served by the bounded listing
}

func DefaultParams() Params {
	return Params{
		AchievementWindow: DefaultAchievementWindow,
	}
}

func (p Params) Validate() error {
	if p.AchievementWindow == 0 {
		return fmt.Errorf("achievement window must be > 0")
	}
	return nil
}
