package game_test

import (
	"testing"
	"time"

	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func tasksForDay(d time.Time, total, completed int) []entity.Task {
	tasks := make([]entity.Task, 0, total)
	for i := 0; i < total; i++ {
		tasks = append(tasks, entity.Task{
			Status:      entity.StatusTodo,
			IsComplete:  i < completed,
			CreatedDate: d,
		})
	}
	return tasks
}

func TestDailyGoalTarget(t *testing.T) {
	testCases := []struct {
		Desc       string
		Tasks      int
		Difficulty entity.Difficulty
		Target     int
	}{
		{"medium half of four", 4, entity.DifficultyMedium, 2},
		{"easy quarter rounds up", 5, entity.DifficultyEasy, 2},
		{"hard three quarters", 4, entity.DifficultyHard, 3},
		{"no tasks no target", 0, entity.DifficultyHard, 0},
		{"single task always counts", 1, entity.DifficultyEasy, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Target, game.DailyGoalTarget(tc.Tasks, tc.Difficulty))
		})
	}
}

func TestEvaluateGoals(t *testing.T) {
	today := day("2026-08-31")
	t.Run("daily complete and claimable", func(t *testing.T) {
		user := baseUser()
		board := game.EvaluateGoals(user, tasksForDay(today, 4, 2), today)
		assert.Equal(t, 2, board.Daily.Target)
		assert.Equal(t, 2, board.Daily.CompletedToday)
		assert.True(t, board.Daily.Complete)
		assert.True(t, board.Daily.CanClaim)
		assert.Equal(t, float64(100), board.Daily.Progress)
	})
	t.Run("zero tasks today is not completable", func(t *testing.T) {
		user := baseUser()
		board := game.EvaluateGoals(user, nil, today)
		assert.Equal(t, 0, board.Daily.Target)
		assert.False(t, board.Daily.Complete)
		assert.False(t, board.Daily.CanClaim)
		assert.Equal(t, float64(0), board.Daily.Progress)
	})
	t.Run("claimed daily cannot be claimed again", func(t *testing.T) {
		user := baseUser()
		user.DailyGoalClaimed = true
		board := game.EvaluateGoals(user, tasksForDay(today, 2, 2), today)
		assert.True(t, board.Daily.Complete)
		assert.False(t, board.Daily.CanClaim)
	})
	t.Run("yesterdays tasks are ignored", func(t *testing.T) {
		user := baseUser()
		tasks := append(tasksForDay(day("2026-08-30"), 3, 3), tasksForDay(today, 2, 0)...)
		board := game.EvaluateGoals(user, tasks, today)
		assert.Equal(t, 2, board.Daily.TasksToday)
		assert.Equal(t, 0, board.Daily.CompletedToday)
	})
	t.Run("weekly and monthly claimability", func(t *testing.T) {
		user := baseUser()
		user.WeeklyGoalsCompleted = 5
		user.MonthlyWeeksCompleted = 2
		board := game.EvaluateGoals(user, nil, today)
		assert.True(t, board.Weekly.CanClaim)
		assert.False(t, board.Monthly.CanClaim)
		user.MonthlyWeeksCompleted = 3
		user.MonthlyRewardClaimed = true
		board = game.EvaluateGoals(user, nil, today)
		assert.False(t, board.Monthly.CanClaim)
	})
}

func TestApplyClaims(t *testing.T) {
	t.Run("daily claim credits difficulty bonus", func(t *testing.T) {
		user := baseUser()
		user.Difficulty = entity.DifficultyHard
		user.FailedStreak = 1
		newUser, bonus := game.ApplyDailyClaim(user)
		assert.Equal(t, 150, bonus)
		assert.True(t, newUser.DailyGoalClaimed)
		assert.Equal(t, 1, newUser.WeeklyGoalsCompleted)
		assert.Equal(t, 0, newUser.FailedStreak)
		// 150 XP crosses the level 1 threshold of 100
		assert.Equal(t, 2, newUser.Level)
		assert.Equal(t, 50, newUser.CurrentLevelExp)
	})
	t.Run("weekly claim feeds monthly counter", func(t *testing.T) {
		user := baseUser()
		newUser := game.ApplyWeeklyClaim(user)
		assert.True(t, newUser.WeeklyRewardClaimed)
		assert.Equal(t, 1, newUser.MonthlyWeeksCompleted)
	})
	t.Run("monthly claim sets flag only", func(t *testing.T) {
		user := baseUser()
		newUser := game.ApplyMonthlyClaim(user)
		assert.True(t, newUser.MonthlyRewardClaimed)
	})
}

func TestRolloverPeriods(t *testing.T) {
	t.Run("new day resets daily flag", func(t *testing.T) {
		user := baseUser()
		user.DailyGoalClaimed = true
		user.DailyPeriod = "2026-08-30"
		user.WeeklyPeriod = "2026-W36"
		user.MonthlyPeriod = "2026-08"
		newUser, changed := game.RolloverPeriods(user, day("2026-08-31"))
		assert.True(t, changed)
		assert.False(t, newUser.DailyGoalClaimed)
		assert.Equal(t, "2026-08-31", newUser.DailyPeriod)
	})
	t.Run("same day changes nothing", func(t *testing.T) {
		user := baseUser()
		user.DailyPeriod = "2026-08-31"
		user.WeeklyPeriod = "2026-W36"
		user.MonthlyPeriod = "2026-08"
		_, changed := game.RolloverPeriods(user, day("2026-08-31"))
		assert.False(t, changed)
	})
	t.Run("new week resets weekly progress", func(t *testing.T) {
		user := baseUser()
		user.WeeklyRewardClaimed = true
		user.WeeklyGoalsCompleted = 5
		user.DailyPeriod = "2026-09-07"
		user.WeeklyPeriod = "2026-W36"
		user.MonthlyPeriod = "2026-09"
		newUser, changed := game.RolloverPeriods(user, day("2026-09-07"))
		assert.True(t, changed)
		assert.False(t, newUser.WeeklyRewardClaimed)
		assert.Equal(t, 0, newUser.WeeklyGoalsCompleted)
		assert.Equal(t, "2026-W37", newUser.WeeklyPeriod)
	})
	t.Run("new month resets monthly progress", func(t *testing.T) {
		user := baseUser()
		user.MonthlyRewardClaimed = true
		user.MonthlyWeeksCompleted = 3
		user.DailyPeriod = "2026-09-01"
		user.WeeklyPeriod = "2026-W36"
		user.MonthlyPeriod = "2026-08"
		newUser, changed := game.RolloverPeriods(user, day("2026-09-01"))
		assert.True(t, changed)
		assert.False(t, newUser.MonthlyRewardClaimed)
		assert.Equal(t, 0, newUser.MonthlyWeeksCompleted)
		assert.Equal(t, "2026-09", newUser.MonthlyPeriod)
	})
}
