package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/pkg/cleanup"
	"github.com/kanquest/performator/pkg/entity"
)

const taskColumns = `id, user_id, title, description, status, is_complete, exp_value, exp_awarded,
	estimated_pomodoros, completed_pomodoros, created_date, due_date, completed_at, slain_at,
	checklist_items, master_card_id, tags, color, priority`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for tasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TasksRepository{
		conn: pool,
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	checklist, tags, err := marshalTaskJSON(task)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks
		(user_id, title, description, status, exp_value, estimated_pomodoros, due_date, checklist_items, master_card_id, tags, color, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id;`,
		task.UserID, task.Title, task.Description, task.Status, task.ExpValue,
		task.EstimatedPomodoros, task.DueDate, checklist, task.MasterCardID, tags, task.Color, task.Priority,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: either the owner or the master card is gone
			case "23503":
				if pgErr.ConstraintName == "tasks_master_card_id_fkey" {
					return uuid.UUID{}, errorvalues.ErrMasterNotFound
				}
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	var checklist, tags []byte
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.IsComplete,
		&task.ExpValue, &task.ExpAwarded, &task.EstimatedPomodoros, &task.CompletedPomodoros,
		&task.CreatedDate, &task.DueDate, &task.CompletedAt, &task.SlainAt,
		&checklist, &task.MasterCardID, &tags, &task.Color, &task.Priority,
	)
	if err != nil {
		return nil, err
	}
	if len(checklist) > 0 {
		if err := sonic.Unmarshal(checklist, &task.ChecklistItems); err != nil {
			return nil, errors.New("unmarshalling checklist error: " + err.Error())
		}
	}
	if len(tags) > 0 {
		if err := sonic.Unmarshal(tags, &task.Tags); err != nil {
			return nil, errors.New("unmarshalling tags error: " + err.Error())
		}
	}
	return &task, nil
}

func marshalTaskJSON(task *entity.Task) ([]byte, []byte, error) {
	checklist, err := sonic.Marshal(task.ChecklistItems)
	if err != nil {
		return nil, nil, errors.New("marshalling checklist error: " + err.Error())
	}
	tags, err := sonic.Marshal(task.Tags)
	if err != nil {
		return nil, nil, errors.New("marshalling tags error: " + err.Error())
	}
	return checklist, tags, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1;`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return task, nil
}

func (tr *TasksRepository) GetByUserID(ctx context.Context, uid uuid.UUID, status entity.TaskStatus, limit, offset int) ([]*entity.Task, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != "" {
		rows, err = tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
			WHERE user_id = $1 AND status = $2 ORDER BY created_date DESC LIMIT $3 OFFSET $4;`, uid, status, limit, offset)
	} else {
		rows, err = tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
			WHERE user_id = $1 ORDER BY created_date DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	}
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (tr *TasksRepository) GetCreatedOn(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.Task, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	rows, err := tr.conn.Query(ctx, `SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND created_date >= $2 AND created_date < $3;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting tasks created on day error: " + err.Error())
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		tasks = append(tasks, task)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected task rows error: " + rows.Err().Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	checklist, tags, err := marshalTaskJSON(task)
	if err != nil {
		return err
	}
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET
		title = $1, description = $2, status = $3, is_complete = $4, exp_value = $5, exp_awarded = $6,
		estimated_pomodoros = $7, completed_pomodoros = $8, due_date = $9, completed_at = $10, slain_at = $11,
		checklist_items = $12, master_card_id = $13, tags = $14, color = $15, priority = $16
		WHERE id = $17;`,
		task.Title, task.Description, task.Status, task.IsComplete, task.ExpValue, task.ExpAwarded,
		task.EstimatedPomodoros, task.CompletedPomodoros, task.DueDate, task.CompletedAt, task.SlainAt,
		checklist, task.MasterCardID, tags, task.Color, task.Priority,
		task.ID,
	)
	if err != nil {
		return errors.New("updating task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
