package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/pkg/cleanup"
	"github.com/kanquest/performator/pkg/entity"
)

const userColumns = `id, name, password_hash, level, total_exp, current_level_exp, exp_to_next_level,
	tasks_completed, total_pomodoros, streak_days, failed_streak, last_activity_date, last_decay_date,
	difficulty, daily_goal_claimed, weekly_reward_claimed, monthly_reward_claimed,
	daily_period, weekly_period, monthly_period, weekly_goals_completed, monthly_weeks_completed,
	equipped_weapon, equipped_helmet, equipped_chest, equipped_legs, equipped_boots, equipped_gloves, equipped_accessory`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID, &user.Name, &user.PasswordHash, &user.Level, &user.TotalExp,
		&user.CurrentLevelExp, &user.ExpToNextLevel, &user.TasksCompleted, &user.TotalPomodoros,
		&user.StreakDays, &user.FailedStreak, &user.LastActivityDate, &user.LastDecayDate,
		&user.Difficulty, &user.DailyGoalClaimed, &user.WeeklyRewardClaimed, &user.MonthlyRewardClaimed,
		&user.DailyPeriod, &user.WeeklyPeriod, &user.MonthlyPeriod,
		&user.WeeklyGoalsCompleted, &user.MonthlyWeeksCompleted,
		&user.EquippedWeapon, &user.EquippedHelmet, &user.EquippedChest, &user.EquippedLegs,
		&user.EquippedBoots, &user.EquippedGloves, &user.EquippedAccessory,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateProgress(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET
		level = $1, total_exp = $2, current_level_exp = $3, exp_to_next_level = $4,
		tasks_completed = $5, total_pomodoros = $6, streak_days = $7, failed_streak = $8,
		last_activity_date = $9, last_decay_date = $10, difficulty = $11,
		daily_goal_claimed = $12, weekly_reward_claimed = $13, monthly_reward_claimed = $14,
		daily_period = $15, weekly_period = $16, monthly_period = $17,
		weekly_goals_completed = $18, monthly_weeks_completed = $19,
		equipped_weapon = $20, equipped_helmet = $21, equipped_chest = $22, equipped_legs = $23,
		equipped_boots = $24, equipped_gloves = $25, equipped_accessory = $26
		WHERE id = $27;`,
		user.Level, user.TotalExp, user.CurrentLevelExp, user.ExpToNextLevel,
		user.TasksCompleted, user.TotalPomodoros, user.StreakDays, user.FailedStreak,
		user.LastActivityDate, user.LastDecayDate, user.Difficulty,
		user.DailyGoalClaimed, user.WeeklyRewardClaimed, user.MonthlyRewardClaimed,
		user.DailyPeriod, user.WeeklyPeriod, user.MonthlyPeriod,
		user.WeeklyGoalsCompleted, user.MonthlyWeeksCompleted,
		user.EquippedWeapon, user.EquippedHelmet, user.EquippedChest, user.EquippedLegs,
		user.EquippedBoots, user.EquippedGloves, user.EquippedAccessory,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
