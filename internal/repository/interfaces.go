package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanquest/performator/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user with starting progression state
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Persists the full progression/equipment state of a user
	UpdateProgress(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TasksRepositoryI interface {
	// Creates new task, returns its generated id
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists tasks owned by user, newest first. Status filters when non-empty
	GetByUserID(ctx context.Context, uid uuid.UUID, status entity.TaskStatus, limit, offset int) ([]*entity.Task, error)
	// Lists the user's tasks created on the given calendar day (goal scope)
	GetCreatedOn(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.Task, error)
	// Updates the whole task row by ID
	Update(ctx context.Context, task *entity.Task) error
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemsRepositoryI interface {
	// Searches catalog item with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// Lists the whole item catalog
	List(ctx context.Context) ([]*entity.Item, error)
	// Lists every catalog item of a rarity, level requirements ignored
	GetByRarity(ctx context.Context, rarity entity.Rarity) ([]*entity.Item, error)
	// Lists catalog items of a rarity whose level requirement the user meets
	GetByRarityUpToLevel(ctx context.Context, rarity entity.Rarity, level int) ([]*entity.Item, error)
}

type InventoryRepositoryI interface {
	// Grants an item to a user, returns the inventory record id
	Create(ctx context.Context, rec *entity.InventoryRecord) (uuid.UUID, error)
	// Searches inventory record with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryRecord, error)
	// Lists everything a user owns
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.InventoryRecord, error)
	// Lists the user's equipped records whose item belongs to a category
	GetEquippedInCategory(ctx context.Context, uid uuid.UUID, category entity.ItemCategory) ([]*entity.InventoryRecord, error)
	// Flips the equipped flag on a record
	SetEquipped(ctx context.Context, id uuid.UUID, equipped bool) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
