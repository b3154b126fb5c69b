package tracker

import "github.com/Bhuvantej123/skilltrack-bot/backend/models"

// XP curve: flat 20 XP per completed topic, 100 XP per level.
const (
	XPPerTopic = 20
	XPPerLevel = 100
)

// Badge identifiers. Once stored in a profile a badge is never revoked,
// even if the completed count later drops after a goal deletion.
const (
	BadgeStarter   = "Starter"
	BadgeAchiever  = "Achiever"
	BadgeLoggerPro = "Logger Pro"
	BadgeLevel3    = "Level 3+"
)

// Gamification is the derived XP/level snapshot plus unlocked badges.
type Gamification struct {
	XP            int      `json:"xp"`
	Level         int      `json:"level"`
	XPToNextLevel int      `json:"xpToNextLevel"`
	Achievements  []string `json:"achievements"`
}

// Level returns the level for a total XP amount.
func Level(xp int) int { return xp / XPPerLevel }

// GamificationSnapshot derives the current XP state from the profile.
func GamificationSnapshot(p *models.Profile) Gamification {
	xp := p.TotalCompleted() * XPPerTopic
	return Gamification{
		XP:            xp,
		Level:         Level(xp),
		XPToNextLevel: XPPerLevel - xp%XPPerLevel,
		Achievements:  append([]string{}, p.Achievements...),
	}
}

// UpdateAchievements unlocks any badges whose condition currently holds and
// returns the newly earned ones. Unlocking is idempotent and monotonic:
// conditions are only ever checked to add, never to remove.
func UpdateAchievements(p *models.Profile) []string {
	completed := p.TotalCompleted()

	var earned []string
	unlock := func(badge string, condition bool) {
		if condition && p.Unlock(badge) {
			earned = append(earned, badge)
		}
	}

	unlock(BadgeStarter, completed >= 5)
	unlock(BadgeAchiever, completed >= 10)
	unlock(BadgeLoggerPro, p.DistinctLogDates() >= 7)
	unlock(BadgeLevel3, Level(completed*XPPerTopic) >= 3)
	return earned
}
