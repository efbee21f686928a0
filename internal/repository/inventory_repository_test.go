package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var inventoryColumnNames = []string{"id", "user_id", "item_id", "is_equipped", "acquired_date"}

func fullRecord() *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ID:           uuid.New(),
		UserID:       userID,
		ItemID:       uuid.New(),
		AcquiredDate: time.Now().Truncate(time.Microsecond),
	}
}

func TestGrantItem(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewInventoryRepoWithConn(conn)
	rec := fullRecord()
	query := regexp.QuoteMeta(`INSERT INTO user_inventory (user_id, item_id) VALUES ($1, $2) RETURNING id;`)
	t.Run("granted", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.UserID, rec.ItemID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(rec.ID))
		id, err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, rec.ID, id)
	})
	t.Run("unknown item", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.UserID, rec.ItemID).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "user_inventory_item_id_fkey"})
		_, err := repo.Create(ctx, rec)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.UserID, rec.ItemID).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "user_inventory_user_id_fkey"})
		_, err := repo.Create(ctx, rec)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.UserID, rec.ItemID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, rec)
		assert.Error(t, err)
	})
}

func TestGetRecordByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewInventoryRepoWithConn(conn)
	rec := fullRecord()
	query := regexp.QuoteMeta(`SELECT id, user_id, item_id, is_equipped, acquired_date FROM user_inventory WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.ID).
			WillReturnRows(pgxmock.NewRows(inventoryColumnNames).
				AddRow(rec.ID, rec.UserID, rec.ItemID, rec.IsEquipped, rec.AcquiredDate))
		result, err := repo.GetByID(ctx, rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, *rec, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, rec.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNotInInventory)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(rec.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, rec.ID)
		assert.Error(t, err)
	})
}

func TestGetRecordsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewInventoryRepoWithConn(conn)
	rec := fullRecord()
	query := regexp.QuoteMeta(`SELECT id, user_id, item_id, is_equipped, acquired_date FROM user_inventory WHERE user_id = $1 ORDER BY acquired_date DESC;`)
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(inventoryColumnNames).
				AddRow(rec.ID, rec.UserID, rec.ItemID, rec.IsEquipped, rec.AcquiredDate))
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, *rec, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestGetEquippedInCategory(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewInventoryRepoWithConn(conn)
	rec := fullRecord()
	rec.IsEquipped = true
	query := `(?s)SELECT ui\.id, ui\.user_id,.+FROM user_inventory ui JOIN items i ON i\.id = ui\.item_id.+WHERE ui\.user_id = \$1 AND ui\.is_equipped = true AND i\.category = \$2;`
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, entity.CategoryWeapon).
			WillReturnRows(pgxmock.NewRows(inventoryColumnNames).
				AddRow(rec.ID, rec.UserID, rec.ItemID, rec.IsEquipped, rec.AcquiredDate))
		result, err := repo.GetEquippedInCategory(ctx, userID, entity.CategoryWeapon)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.True(t, result[0].IsEquipped)
	})
	t.Run("nothing equipped", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, entity.CategoryWeapon).
			WillReturnRows(pgxmock.NewRows(inventoryColumnNames))
		result, err := repo.GetEquippedInCategory(ctx, userID, entity.CategoryWeapon)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, entity.CategoryWeapon).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetEquippedInCategory(ctx, userID, entity.CategoryWeapon)
		assert.Error(t, err)
	})
}

func TestSetEquipped(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewInventoryRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE user_inventory SET is_equipped = $1 WHERE id = $2;`)
	t.Run("equipped", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(true, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.SetEquipped(ctx, id, true)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(false, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.SetEquipped(ctx, id, false)
		assert.ErrorIs(t, err, errorvalues.ErrNotInInventory)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(true, id).
			WillReturnError(errors.New("db error"))
		err := repo.SetEquipped(ctx, id, true)
		assert.Error(t, err)
	})
}

func TestInventoryIntegrational(t *testing.T) {
	cfg := setupRepoTestDB(t)
	itemsRepo := repository.NewItemsRepo(cfg)
	invRepo := repository.NewInventoryRepo(cfg)
	ctx := context.Background()
	var sword *entity.Item
	t.Run("seeded catalog", func(t *testing.T) {
		t.Run("list all", func(t *testing.T) {
			items, err := itemsRepo.List(ctx)
			assert.NoError(t, err)
			assert.NotEmpty(t, items)
			for _, item := range items {
				if item.Category == entity.CategoryWeapon && item.Rarity == entity.RarityCommon {
					sword = item
				}
			}
			assert.NotNil(t, sword)
		})
		t.Run("rarity respects level requirement", func(t *testing.T) {
			common, err := itemsRepo.GetByRarityUpToLevel(ctx, entity.RarityCommon, 1)
			assert.NoError(t, err)
			assert.NotEmpty(t, common)
			legendary, err := itemsRepo.GetByRarityUpToLevel(ctx, entity.RarityLegendary, 1)
			assert.NoError(t, err)
			assert.Empty(t, legendary)
		})
		t.Run("get by id", func(t *testing.T) {
			item, err := itemsRepo.GetByID(ctx, sword.ID)
			assert.NoError(t, err)
			assert.Equal(t, sword.Name, item.Name)
		})
	})
	var recID uuid.UUID
	t.Run("grant", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			id, err := invRepo.Create(ctx, &entity.InventoryRecord{UserID: userID, ItemID: sword.ID})
			assert.NoError(t, err)
			recID = id
		})
		t.Run("unknown item error", func(t *testing.T) {
			_, err := invRepo.Create(ctx, &entity.InventoryRecord{UserID: userID, ItemID: uuid.New()})
			assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
		})
		t.Run("unknown user error", func(t *testing.T) {
			_, err := invRepo.Create(ctx, &entity.InventoryRecord{UserID: uuid.New(), ItemID: sword.ID})
			assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		})
	})
	t.Run("equip flow", func(t *testing.T) {
		t.Run("starts unequipped", func(t *testing.T) {
			rec, err := invRepo.GetByID(ctx, recID)
			assert.NoError(t, err)
			assert.False(t, rec.IsEquipped)
		})
		t.Run("set equipped", func(t *testing.T) {
			err := invRepo.SetEquipped(ctx, recID, true)
			assert.NoError(t, err)
			equipped, err := invRepo.GetEquippedInCategory(ctx, userID, entity.CategoryWeapon)
			assert.NoError(t, err)
			assert.Equal(t, 1, len(equipped))
			assert.Equal(t, recID, equipped[0].ID)
		})
		t.Run("other categories untouched", func(t *testing.T) {
			equipped, err := invRepo.GetEquippedInCategory(ctx, userID, entity.CategoryHelmet)
			assert.NoError(t, err)
			assert.Equal(t, 0, len(equipped))
		})
		t.Run("list inventory", func(t *testing.T) {
			records, err := invRepo.GetByUserID(ctx, userID)
			assert.NoError(t, err)
			assert.Equal(t, 1, len(records))
		})
	})
}
