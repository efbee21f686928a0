package game

import (
	"math"
	"time"

	"github.com/kanquest/performator/pkg/entity"
)

// ComputeDecay applies the inactivity penalty: 10% of current-level XP per
// missed day, with a level-down unwind when the loss crosses the bottom of the
// current level, and the doom counter accumulating toward a combo reset.
// Pure; a user with no recorded activity, or activity today, decays nothing.
func ComputeDecay(user entity.User, today time.Time) (entity.User, DecayResult) {
	var res DecayResult
	if user.LastActivityDate == nil {
		return user, res
	}
	diffDays := DaysBetween(*user.LastActivityDate, today)
	if diffDays < 1 || SameDay(*user.LastActivityDate, today) {
		return user, res
	}

	decayAmount := int(math.Floor(float64(user.CurrentLevelExp) * DecayRate * float64(diffDays)))
	newCurrentLevelExp := user.CurrentLevelExp - decayAmount

	levelsLost := 0
	for newCurrentLevelExp < 0 && user.Level > 1 {
		// Invert the level-up growth to reconstruct the previous threshold.
		previous := int(math.Floor(float64(user.ExpToNextLevel) / LevelGrowth))
		user.Level--
		user.ExpToNextLevel = previous
		newCurrentLevelExp += previous
		levelsLost++
	}
	if newCurrentLevelExp < 0 {
		newCurrentLevelExp = 0
	}
	user.CurrentLevelExp = newCurrentLevelExp

	user.FailedStreak += diffDays
	if user.FailedStreak >= DoomLimit {
		user.StreakDays = 0
		user.FailedStreak = 0
		res.ComboLost = true
	}

	res.Applied = true
	res.InactiveDays = diffDays
	res.ExpLost = decayAmount
	res.LevelsLost = levelsLost
	res.FailedStreak = user.FailedStreak
	return user, res
}
