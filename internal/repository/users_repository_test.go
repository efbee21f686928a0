package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var userColumnNames = []string{
	"id", "name", "password_hash", "level", "total_exp", "current_level_exp", "exp_to_next_level",
	"tasks_completed", "total_pomodoros", "streak_days", "failed_streak", "last_activity_date", "last_decay_date",
	"difficulty", "daily_goal_claimed", "weekly_reward_claimed", "monthly_reward_claimed",
	"daily_period", "weekly_period", "monthly_period", "weekly_goals_completed", "monthly_weeks_completed",
	"equipped_weapon", "equipped_helmet", "equipped_chest", "equipped_legs", "equipped_boots", "equipped_gloves", "equipped_accessory",
}

func fullUserRow(user *entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumnNames).AddRow(
		user.ID, user.Name, user.PasswordHash, user.Level, user.TotalExp,
		user.CurrentLevelExp, user.ExpToNextLevel, user.TasksCompleted, user.TotalPomodoros,
		user.StreakDays, user.FailedStreak, user.LastActivityDate, user.LastDecayDate,
		user.Difficulty, user.DailyGoalClaimed, user.WeeklyRewardClaimed, user.MonthlyRewardClaimed,
		user.DailyPeriod, user.WeeklyPeriod, user.MonthlyPeriod,
		user.WeeklyGoalsCompleted, user.MonthlyWeeksCompleted,
		user.EquippedWeapon, user.EquippedHelmet, user.EquippedChest, user.EquippedLegs,
		user.EquippedBoots, user.EquippedGloves, user.EquippedAccessory,
	)
}

func fullUser() *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Name:           "test_user",
		PasswordHash:   "test_password_hash",
		Level:          3,
		TotalExp:       420,
		ExpToNextLevel: 225,
		Difficulty:     entity.DifficultyMedium,
		DailyPeriod:    "2026-03-10",
		WeeklyPeriod:   "2026-W11",
		MonthlyPeriod:  "2026-03",
	}
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindUserByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := fullUser()
	query := `(?s)SELECT id, name, password_hash,.+FROM users WHERE name = \$1;`
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(fullUserRow(user))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, *user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := fullUser()
	query := `(?s)SELECT id, name, password_hash,.+FROM users WHERE id = \$1;`
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(fullUserRow(user))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}

func TestUpdateProgress(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := fullUser()
	query := `(?s)UPDATE users SET.+WHERE id = \$27;`
	args := []any{
		user.Level, user.TotalExp, user.CurrentLevelExp, user.ExpToNextLevel,
		user.TasksCompleted, user.TotalPomodoros, user.StreakDays, user.FailedStreak,
		user.LastActivityDate, user.LastDecayDate, user.Difficulty,
		user.DailyGoalClaimed, user.WeeklyRewardClaimed, user.MonthlyRewardClaimed,
		user.DailyPeriod, user.WeeklyPeriod, user.MonthlyPeriod,
		user.WeeklyGoalsCompleted, user.MonthlyWeeksCompleted,
		user.EquippedWeapon, user.EquippedHelmet, user.EquippedChest, user.EquippedLegs,
		user.EquippedBoots, user.EquippedGloves, user.EquippedAccessory,
		user.ID,
	}
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateProgress(ctx, user)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateProgress(ctx, user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		err := repo.UpdateProgress(ctx, user)
		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}
