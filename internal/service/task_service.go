package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
)

type TaskService struct {
	tasksRepo repository.TasksRepositoryI
	usersRepo repository.UsersRepositoryI
	now       func() time.Time
}

// NewTaskService wires task CRUD with the progression engine. now is
// injectable for tests; nil means wall clock.
func NewTaskService(tasksRepo repository.TasksRepositoryI, usersRepo repository.UsersRepositoryI, now func() time.Time) *TaskService {
	if tasksRepo == nil || usersRepo == nil {
		log.Fatal("on task service provided nil repos")
	}
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		tasksRepo: tasksRepo,
		usersRepo: usersRepo,
		now:       now,
	}
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}

func (ts *TaskService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = entity.StatusTodo
	}
	estimated := req.EstimatedPomodoros
	if estimated == 0 {
		estimated = 1
	}
	expValue := req.ExpValue
	if expValue == 0 {
		expValue = estimated * game.BaseTaskXP
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if req.MasterCardID != nil {
		master, err := ts.tasksRepo.GetByID(ctx, *req.MasterCardID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrTaskNotFound) {
				return nil, errorvalues.ErrMasterNotFound
			}
			return nil, errors.New("tasks repository error: " + err.Error())
		}
		if master.UserID != uid || master.Status != entity.StatusMaster {
			return nil, errorvalues.ErrMasterNotFound
		}
	}
	t := entity.Task{
		UserID:             uid,
		Title:              req.Title,
		Description:        req.Description,
		Status:             status,
		ExpValue:           expValue,
		EstimatedPomodoros: estimated,
		DueDate:            req.DueDate,
		ChecklistItems:     req.ChecklistItems,
		MasterCardID:       req.MasterCardID,
		Tags:               req.Tags,
		Color:              req.Color,
		Priority:           priority,
	}
	id, err := ts.tasksRepo.Create(ctx, &t)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrMasterNotFound):
			return nil, errorvalues.ErrMasterNotFound
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TaskService) getOwned(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	task, err := ts.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if task.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return task, nil
}

func (ts *TaskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	return ts.getOwned(ctx, taskID, userID)
}

func (ts *TaskService) GetUserTasks(ctx context.Context, uid uuid.UUID, status entity.TaskStatus, pagination PaginationOpts) ([]*entity.Task, error) {
	if status != "" && !status.Valid() {
		return nil, errorvalues.ErrInvalidStatus
	}
	tasks, err := ts.tasksRepo.GetByUserID(ctx, uid, status, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TaskService) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	task, err := ts.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	task.Title = req.Title
	task.Description = req.Description
	task.EstimatedPomodoros = req.EstimatedPomodoros
	if req.ExpValue != 0 {
		task.ExpValue = req.ExpValue
	}
	task.DueDate = req.DueDate
	task.ChecklistItems = req.ChecklistItems
	task.MasterCardID = req.MasterCardID
	task.Tags = req.Tags
	task.Color = req.Color
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if err := ts.tasksRepo.Update(ctx, task); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	if _, err := ts.getOwned(ctx, taskID, userID); err != nil {
		return err
	}
	if err := ts.tasksRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TaskService) ChangeStatus(ctx context.Context, taskID, userID uuid.UUID, status entity.TaskStatus) (*entity.Task, *game.CompletionResult, error) {
	if !status.Valid() {
		return nil, nil, errorvalues.ErrInvalidStatus
	}
	task, err := ts.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, nil, err
	}
	if status != entity.StatusSlain {
		task.Status = status
		task.SlainAt = nil
		if status == entity.StatusDone {
			task.IsComplete = true
			if task.CompletedAt == nil {
				now := ts.now()
				task.CompletedAt = &now
			}
		} else {
			// ExpAwarded survives un-slaying so a later re-slay
			// cannot credit the same card twice.
			task.IsComplete = false
			task.CompletedAt = nil
		}
		if err := ts.tasksRepo.Update(ctx, task); err != nil {
			return nil, nil, errors.New("tasks repository error: " + err.Error())
		}
		return task, nil, nil
	}

	if task.Status == entity.StatusSlain {
		return nil, nil, errorvalues.ErrAlreadySlain
	}
	now := ts.now()
	task.Status = entity.StatusSlain
	task.IsComplete = true
	task.SlainAt = &now

	user, err := ts.usersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, errors.New("users repository error: " + err.Error())
	}
	newUser, newTask, res := game.ApplyTaskCompletion(*user, *task, now)

	// Task first: if the user write then fails, the exp_awarded guard
	// keeps a retried slay from double-crediting.
	if err := ts.tasksRepo.Update(ctx, &newTask); err != nil {
		return nil, nil, errors.New("tasks repository error: " + err.Error())
	}
	if res.Applied {
		if err := ts.usersRepo.UpdateProgress(ctx, &newUser); err != nil {
			return nil, nil, errors.New("users repository error: " + err.Error())
		}
	}
	return &newTask, &res, nil
}

func (ts *TaskService) ToggleComplete(ctx context.Context, taskID, userID uuid.UUID, complete bool) (*entity.Task, error) {
	task, err := ts.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task.Status == entity.StatusSlain {
		return nil, errorvalues.ErrAlreadySlain
	}
	task.IsComplete = complete
	if complete {
		now := ts.now()
		task.CompletedAt = &now
		task.Status = entity.StatusDone
	} else {
		task.CompletedAt = nil
		task.Status = entity.StatusTodo
	}
	if err := ts.tasksRepo.Update(ctx, task); err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TaskService) RecordPomodoro(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	task, err := ts.getOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	task.CompletedPomodoros++
	if err := ts.tasksRepo.Update(ctx, task); err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	user, err := ts.usersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	user.TotalPomodoros++
	if err := ts.usersRepo.UpdateProgress(ctx, user); err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return task, nil
}
