package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateTaskRequest struct {
	Title              string            `validate:"required,max=200"`
	Description        string            `validate:"max=2000"`
	Status             entity.TaskStatus `validate:"omitempty,oneof=master backlog todo in_progress done"`
	EstimatedPomodoros int               `validate:"min=0,max=100"`
	ExpValue           int               `validate:"min=0,max=10000"`
	DueDate            *time.Time
	ChecklistItems     []entity.ChecklistItem
	MasterCardID       *uuid.UUID
	Tags               []string `validate:"max=16,dive,max=50"`
	Color              string   `validate:"omitempty,card_color"`
	Priority           string   `validate:"omitempty,oneof=low medium high critical"`
}

type UpdateTaskRequest struct {
	Title              string `validate:"required,max=200"`
	Description        string `validate:"max=2000"`
	EstimatedPomodoros int    `validate:"min=0,max=100"`
	ExpValue           int    `validate:"min=0,max=10000"`
	DueDate            *time.Time
	ChecklistItems     []entity.ChecklistItem
	MasterCardID       *uuid.UUID
	Tags               []string `validate:"max=16,dive,max=50"`
	Color              string   `validate:"omitempty,card_color"`
	Priority           string   `validate:"omitempty,oneof=low medium high critical"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// Reward is what a goal claim hands back for the notification layer.
type Reward struct {
	Type      string         `json:"type"`
	Exp       int            `json:"exp"`
	Items     []*entity.Item `json:"items"`
	LeveledUp bool           `json:"leveled_up"`
	Level     int            `json:"level"`
}

// InventoryEntry joins an owned record with its catalog item.
type InventoryEntry struct {
	Record *entity.InventoryRecord `json:"record"`
	Item   *entity.Item            `json:"item"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Switches the daily-goal difficulty setting
	SetDifficulty(ctx context.Context, id uuid.UUID, difficulty entity.Difficulty) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type TaskServiceI interface {
	// Creates a task for the user; exp_value defaults to estimated pomodoros x base XP
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)
	GetUserTasks(ctx context.Context, uid uuid.UUID, status entity.TaskStatus, pagination PaginationOpts) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
	// Moves a task between board columns. Moving into slain awards XP once
	// and feeds streak/level progression
	ChangeStatus(ctx context.Context, taskID, userID uuid.UUID, status entity.TaskStatus) (*entity.Task, *game.CompletionResult, error)
	// Checks/unchecks a task: done with completion timestamp, or back to todo
	ToggleComplete(ctx context.Context, taskID, userID uuid.UUID, complete bool) (*entity.Task, error)
	// Credits one finished pomodoro to the task and the user total
	RecordPomodoro(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)
}

type GamificationServiceI interface {
	// Applies inactivity decay at most once per calendar day
	DailyCheck(ctx context.Context, uid uuid.UUID) (*game.DecayResult, error)
	// Rolls claim flags over period boundaries and computes the goal board
	GetGoals(ctx context.Context, uid uuid.UUID) (*game.GoalBoard, error)
	ClaimDaily(ctx context.Context, uid uuid.UUID) (*Reward, error)
	ClaimWeekly(ctx context.Context, uid uuid.UUID) (*Reward, error)
	ClaimMonthly(ctx context.Context, uid uuid.UUID) (*Reward, error)
}

type EquipmentServiceI interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	GetInventory(ctx context.Context, uid uuid.UUID) ([]*InventoryEntry, error)
	// Equips an owned item, unequipping anything else in its slot first
	Equip(ctx context.Context, uid, inventoryID uuid.UUID) (*entity.User, error)
	Unequip(ctx context.Context, uid, inventoryID uuid.UUID) (*entity.User, error)
}
