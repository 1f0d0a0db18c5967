package types

// Field bounds enforced by the validators below. These are fixed protocol
// constants, not params.
const (
	MaxGameID             = 1_000_000
	MaxLevel              = 99
	MaxProgressPct        = 100
	MinUsernameLen        = 3
	MaxUsernameLen        = 50
	MaxAchievementNameLen = 100
	MaxDescriptionLen     = 255
)

// ValidGameID reports whether a game id is within the allowed range.
func ValidGameID(id uint64) bool { return id < MaxGameID }

// ValidLevel reports whether a level is in [1, 99].
func ValidLevel(level uint32) bool { return level >= 1 && level <= MaxLevel }

// ValidProgress reports whether a progress percentage is in [0, 100].
func ValidProgress(pct uint32) bool { return pct <= MaxProgressPct }

// ValidUsername reports whether a username is 3-50 characters.
func ValidUsername(name string) bool {
	return len(name) >= MinUsernameLen && len(name) <= MaxUsernameLen
}

// ValidAchievementName reports whether an achievement name is 1-100 characters.
func ValidAchievementName(name string) bool {
	return len(name) > 0 && len(name) <= MaxAchievementNameLen
}

// ValidDescription reports whether a description is 1-255 characters.
func ValidDescription(desc string) bool {
	return len(desc) > 0 && len(desc) <= MaxDescriptionLen
}
