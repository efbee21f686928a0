package game

import (
	"fmt"
	"math"
	"time"

	"github.com/kanquest/performator/pkg/entity"
)

const (
	WeeklyGoalTarget  = 5
	MonthlyGoalTarget = 3
)

type DailyGoal struct {
	TasksToday     int     `json:"tasks_today"`
	CompletedToday int     `json:"completed_today"`
	Target         int     `json:"target"`
	Progress       float64 `json:"progress"`
	Complete       bool    `json:"complete"`
	Claimed        bool    `json:"claimed"`
	CanClaim       bool    `json:"can_claim"`
}

type PeriodGoal struct {
	Completed int  `json:"completed"`
	Target    int  `json:"target"`
	Claimed   bool `json:"claimed"`
	CanClaim  bool `json:"can_claim"`
}

type GoalBoard struct {
	Difficulty entity.Difficulty `json:"difficulty"`
	Daily      DailyGoal         `json:"daily"`
	Weekly     PeriodGoal        `json:"weekly"`
	Monthly    PeriodGoal        `json:"monthly"`
}

// TasksCreatedOn filters tasks created on the given calendar day. Goals work
// on calendar days, not rolling 24h windows.
func TasksCreatedOn(tasks []entity.Task, day time.Time) []entity.Task {
	out := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if SameDay(t.CreatedDate, day) {
			out = append(out, t)
		}
	}
	return out
}

// DailyGoalTarget is the number of today's tasks that must be completed for
// the daily goal, per difficulty. Zero tasks today means a zero target, which
// is never completable.
func DailyGoalTarget(tasksToday int, d entity.Difficulty) int {
	return int(math.Ceil(float64(tasksToday*DifficultyPercent(d)) / 100))
}

// EvaluateGoals computes the whole goal board for a user from today's tasks.
// Callers should run RolloverPeriods first so stale claim flags don't leak
// into a new day, week or month.
func EvaluateGoals(user entity.User, tasks []entity.Task, today time.Time) GoalBoard {
	todays := TasksCreatedOn(tasks, today)
	completed := 0
	for _, t := range todays {
		if t.IsComplete {
			completed++
		}
	}
	target := DailyGoalTarget(len(todays), user.Difficulty)

	var progress float64
	if target > 0 {
		progress = math.Min(float64(completed)/float64(target)*100, 100)
	}
	complete := target > 0 && completed >= target

	return GoalBoard{
		Difficulty: user.Difficulty,
		Daily: DailyGoal{
			TasksToday:     len(todays),
			CompletedToday: completed,
			Target:         target,
			Progress:       progress,
			Complete:       complete,
			Claimed:        user.DailyGoalClaimed,
			CanClaim:       complete && !user.DailyGoalClaimed,
		},
		Weekly: PeriodGoal{
			Completed: user.WeeklyGoalsCompleted,
			Target:    WeeklyGoalTarget,
			Claimed:   user.WeeklyRewardClaimed,
			CanClaim:  user.WeeklyGoalsCompleted >= WeeklyGoalTarget && !user.WeeklyRewardClaimed,
		},
		Monthly: PeriodGoal{
			Completed: user.MonthlyWeeksCompleted,
			Target:    MonthlyGoalTarget,
			Claimed:   user.MonthlyRewardClaimed,
			CanClaim:  user.MonthlyWeeksCompleted >= MonthlyGoalTarget && !user.MonthlyRewardClaimed,
		},
	}
}

// DailyClaimBonus is the XP bonus for claiming the daily goal: twice the
// difficulty percentage (50/100/150).
func DailyClaimBonus(d entity.Difficulty) int {
	return DifficultyPercent(d) * 2
}

// ApplyDailyClaim marks the daily goal claimed and credits the difficulty
// bonus through the level-up loop. Eligibility is the caller's check.
func ApplyDailyClaim(user entity.User) (entity.User, int) {
	bonus := DailyClaimBonus(user.Difficulty)
	user = AddExp(user, bonus)
	user.DailyGoalClaimed = true
	user.WeeklyGoalsCompleted++
	user.FailedStreak = 0
	return user, bonus
}

func ApplyWeeklyClaim(user entity.User) entity.User {
	user.WeeklyRewardClaimed = true
	user.MonthlyWeeksCompleted++
	return user
}

func ApplyMonthlyClaim(user entity.User) entity.User {
	user.MonthlyRewardClaimed = true
	return user
}

// RolloverPeriods lazily resets claim flags and period counters when the
// calendar day, ISO week or month recorded on the user has passed. The claim
// flags have no other reset path, so every read or claim of goal state must
// go through here first.
func RolloverPeriods(user entity.User, today time.Time) (entity.User, bool) {
	changed := false

	dayKey := today.Format("2006-01-02")
	if user.DailyPeriod != dayKey {
		user.DailyGoalClaimed = false
		user.DailyPeriod = dayKey
		changed = true
	}

	year, week := today.ISOWeek()
	weekKey := fmt.Sprintf("%04d-W%02d", year, week)
	if user.WeeklyPeriod != weekKey {
		user.WeeklyRewardClaimed = false
		user.WeeklyGoalsCompleted = 0
		user.WeeklyPeriod = weekKey
		changed = true
	}

	monthKey := today.Format("2006-01")
	if user.MonthlyPeriod != monthKey {
		user.MonthlyRewardClaimed = false
		user.MonthlyWeeksCompleted = 0
		user.MonthlyPeriod = monthKey
		changed = true
	}
	return user, changed
}
