package game

import (
	"time"

	"github.com/kanquest/performator/pkg/entity"
)

const (
	// BaseTaskXP is awarded for a slain task when no exp_value was set.
	BaseTaskXP = 25

	// InitialExpToNext is the level 1 -> 2 threshold; each level-up grows it
	// by LevelGrowth, floored.
	InitialExpToNext = 100
	LevelGrowth      = 1.5

	// DecayRate is the fraction of current-level XP lost per inactive day.
	DecayRate = 0.1

	// DoomLimit is how many inactive days the doom counter tolerates before
	// the combo streak resets.
	DoomLimit = 3

	// NoDropChance is the flat percentage bucket in which a reward roll
	// yields no item.
	NoDropChance = 15
)

// DifficultyPercent is the fraction of today's tasks required for the daily
// goal, per difficulty setting.
func DifficultyPercent(d entity.Difficulty) int {
	switch d {
	case entity.DifficultyEasy:
		return 25
	case entity.DifficultyHard:
		return 75
	default:
		return 50
	}
}

type CompletionResult struct {
	Applied     bool `json:"applied"`
	ExpGained   int  `json:"exp_gained"`
	LevelBefore int  `json:"level_before"`
	LevelAfter  int  `json:"level_after"`
	LeveledUp   bool `json:"leveled_up"`
	StreakDays  int  `json:"streak_days"`
}

type DecayResult struct {
	Applied      bool `json:"applied"`
	InactiveDays int  `json:"inactive_days"`
	ExpLost      int  `json:"exp_lost"`
	LevelsLost   int  `json:"levels_lost"`
	ComboLost    bool `json:"combo_lost"`
	FailedStreak int  `json:"failed_streak"`
}

// SameDay reports whether two instants fall on the same calendar day.
// Day granularity matches the activity/goal bookkeeping everywhere.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween is the number of whole days from a to b, ignoring clock time.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
