package types

import (
	"fmt"
)

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	// Keep validation lightweight; address validation happens when initializing.
	seenPlayers := make(map[string]struct{}, len(gs.Players))
	scores := make(map[string]uint64, len(gs.Players))
	for _, pr := range gs.Players {
		if pr.Address == "" {
			return fmt.Errorf("players: address required")
		}
		if _, ok := seenPlayers[pr.Address]; ok {
			return fmt.Errorf("players: duplicate address %q", pr.Address)
		}
		seenPlayers[pr.Address] = struct{}{}
		if !ValidUsername(pr.Profile.Username) {
			return fmt.Errorf("players: invalid username %q for %s", pr.Profile.Username, pr.Address)
		}
		if pr.Profile.Level == 0 {
			return fmt.Errorf("players: level must be positive for %s", pr.Address)
		}
		scores[pr.Address] = 0
	}

	seenProgress := make(map[string]struct{}, len(gs.Progress))
	for _, rec := range gs.Progress {
		if rec.Player == "" {
			return fmt.Errorf("progress: player required")
		}
		key := fmt.Sprintf("%s/%d", rec.Player, rec.Progress.GameId)
		if _, ok := seenProgress[key]; ok {
			return fmt.Errorf("progress: duplicate record for %s", key)
		}
		seenProgress[key] = struct{}{}
		if !ValidGameID(rec.Progress.GameId) {
			return fmt.Errorf("progress: invalid game id %d for %s", rec.Progress.GameId, rec.Player)
		}
		if !ValidLevel(rec.Progress.CurrentLevel) {
			return fmt.Errorf("progress: invalid level %d for %s", rec.Progress.CurrentLevel, rec.Player)
		}
		if !ValidProgress(rec.Progress.ProgressPct) {
			return fmt.Errorf("progress: invalid percentage %d for %s", rec.Progress.ProgressPct, rec.Player)
		}
		if rec.Progress.Completed != (rec.Progress.ProgressPct == MaxProgressPct) {
			return fmt.Errorf("progress: completed flag inconsistent for %s", key)
		}
	}

	seenAchievements := make(map[string]struct{}, len(gs.Achievements))
	for _, rec := range gs.Achievements {
		if rec.Player == "" {
			return fmt.Errorf("achievements: player required")
		}
		key := fmt.Sprintf("%s/%d", rec.Player, rec.Achievement.AchievementId)
		if _, ok := seenAchievements[key]; ok {
			return fmt.Errorf("achievements: duplicate record for %s", key)
		}
		seenAchievements[key] = struct{}{}
		if !ValidAchievementName(rec.Achievement.Name) {
			return fmt.Errorf("achievements: invalid name for %s", key)
		}
		if !ValidDescription(rec.Achievement.Description) {
			return fmt.Errorf("achievements: invalid description for %s", key)
		}
		if rec.Achievement.RewardPoints == 0 {
			return fmt.Errorf("achievements: reward points must be positive for %s", key)
		}
		if _, ok := scores[rec.Player]; ok {
			scores[rec.Player] += rec.Achievement.RewardPoints
		}
	}

	// Total score must equal the sum of unlocked reward points.
	for _, pr := range gs.Players {
		if pr.Profile.TotalScore != scores[pr.Address] {
			return fmt.Errorf("players: total score %d does not match achievement rewards %d for %s",
				pr.Profile.TotalScore, scores[pr.Address], pr.Address)
		}
	}

	seenBalances := make(map[string]struct{}, len(gs.Balances))
	for _, rec := range gs.Balances {
		if rec.Player == "" {
			return fmt.Errorf("balances: player required")
		}
		if _, ok := seenBalances[rec.Player]; ok {
			return fmt.Errorf("balances: duplicate record for %s", rec.Player)
		}
		seenBalances[rec.Player] = struct{}{}
		if rec.Balance.IsNil() || rec.Balance.IsNegative() {
			return fmt.Errorf("balances: balance must be non-negative for %s", rec.Player)
		}
	}

	return nil
}
