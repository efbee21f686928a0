package game

import (
	"math"
	"time"

	"github.com/kanquest/performator/pkg/entity"
)

// ApplyTaskCompletion converts a slain task into progression state: XP, levels,
// streak and pomodoro counters. It is pure; the caller persists both returned
// records. A task whose XP was already awarded leaves everything untouched, so
// applying the same completion twice cannot double-credit.
func ApplyTaskCompletion(user entity.User, task entity.Task, today time.Time) (entity.User, entity.Task, CompletionResult) {
	res := CompletionResult{
		LevelBefore: user.Level,
		LevelAfter:  user.Level,
	}
	if task.ExpAwarded {
		return user, task, res
	}

	expGain := task.ExpValue
	if expGain <= 0 {
		expGain = BaseTaskXP
	}

	user = AddExp(user, expGain)
	user.TasksCompleted++

	if user.LastActivityDate == nil || !SameDay(*user.LastActivityDate, today) {
		user.StreakDays++
	}
	day := truncateToDay(today)
	user.LastActivityDate = &day
	user.FailedStreak = 0

	pomodoros := task.CompletedPomodoros
	if pomodoros == 0 {
		pomodoros = task.EstimatedPomodoros
	}
	if pomodoros == 0 {
		pomodoros = 1
	}
	user.TotalPomodoros += pomodoros

	task.ExpAwarded = true

	res.Applied = true
	res.ExpGained = expGain
	res.LevelAfter = user.Level
	res.LeveledUp = user.Level > res.LevelBefore
	res.StreakDays = user.StreakDays
	return user, task, res
}

// AddExp credits XP and walks the level-up loop. A single large award can
// cross several thresholds; each crossing consumes the current threshold and
// grows it by LevelGrowth, floored.
func AddExp(user entity.User, exp int) entity.User {
	user.TotalExp += exp
	user.CurrentLevelExp += exp
	if user.Level < 1 {
		user.Level = 1
	}
	if user.ExpToNextLevel < 1 {
		user.ExpToNextLevel = InitialExpToNext
	}
	for user.CurrentLevelExp >= user.ExpToNextLevel {
		user.CurrentLevelExp -= user.ExpToNextLevel
		user.Level++
		user.ExpToNextLevel = int(math.Floor(float64(user.ExpToNextLevel) * LevelGrowth))
	}
	return user
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
