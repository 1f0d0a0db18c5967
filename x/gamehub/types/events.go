package types

const (
	EventPlayerRegistered    = "gamehub.player_registered"
	EventProgressUpdated     = "gamehub.progress_updated"
	EventAchievementUnlocked = "gamehub.achievement_unlocked"
	EventTokensMinted        = "gamehub.tokens_minted"
	EventPlayerReset         = "gamehub.player_reset"
)

const (
	AttrPlayer        = "player"
	AttrUsername      = "username"
	AttrGameID        = "game_id"
	AttrLevel         = "level"
	AttrProgress      = "progress_percentage"
	AttrCompleted     = "completed"
	AttrGamesPlayed   = "games_played"
	AttrAchievementID = "achievement_id"
	AttrRewardPoints  = "reward_points"
	AttrTotalScore    = "total_score"
	AttrAmount        = "amount"
	AttrBalance       = "balance"
	AttrAuthority     = "authority"
)
