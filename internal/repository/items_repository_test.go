package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemColumnNames = []string{"id", "name", "category", "rarity", "level_requirement", "stats_bonus", "image_url"}

func fullItem() *entity.Item {
	url := "/img/items/rusty_sword.png"
	return &entity.Item{
		ID:               uuid.New(),
		Name:             "Rusty Sword",
		Category:         entity.CategoryWeapon,
		Rarity:           entity.RarityCommon,
		LevelRequirement: 1,
		StatsBonus:       map[string]int{"exp_bonus": 1},
		ImageURL:         &url,
	}
}

func fullItemRow(t *testing.T, item *entity.Item) *pgxmock.Rows {
	bonus, err := sonic.Marshal(item.StatsBonus)
	require.NoError(t, err)
	return pgxmock.NewRows(itemColumnNames).
		AddRow(item.ID, item.Name, item.Category, item.Rarity, item.LevelRequirement, bonus, item.ImageURL)
}

func TestGetItemByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewItemsRepoWithConn(conn)
	item := fullItem()
	query := regexp.QuoteMeta(`SELECT id, name, category, rarity, level_requirement, stats_bonus, image_url FROM items WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.ID).
			WillReturnRows(fullItemRow(t, item))
		result, err := repo.GetByID(ctx, item.ID)
		assert.NoError(t, err)
		assert.Equal(t, *item, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, item.ID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(item.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, item.ID)
		assert.Error(t, err)
	})
}

func TestListItems(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewItemsRepoWithConn(conn)
	item := fullItem()
	query := regexp.QuoteMeta(`SELECT id, name, category, rarity, level_requirement, stats_bonus, image_url FROM items ORDER BY level_requirement, name;`)
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WillReturnRows(fullItemRow(t, item))
		result, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, *item, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestGetItemsByRarity(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewItemsRepoWithConn(conn)
	item := fullItem()
	query := regexp.QuoteMeta(`SELECT id, name, category, rarity, level_requirement, stats_bonus, image_url FROM items WHERE rarity = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.RarityCommon).
			WillReturnRows(fullItemRow(t, item))
		result, err := repo.GetByRarity(ctx, entity.RarityCommon)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, *item, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.RarityCommon).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByRarity(ctx, entity.RarityCommon)
		assert.Error(t, err)
	})
}

func TestGetItemsByRarityUpToLevel(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewItemsRepoWithConn(conn)
	item := fullItem()
	query := regexp.QuoteMeta(`SELECT id, name, category, rarity, level_requirement, stats_bonus, image_url FROM items WHERE rarity = $1 AND level_requirement <= $2;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.RarityCommon, 5).
			WillReturnRows(fullItemRow(t, item))
		result, err := repo.GetByRarityUpToLevel(ctx, entity.RarityCommon, 5)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
	})
	t.Run("nothing unlocked", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.RarityLegendary, 5).
			WillReturnRows(pgxmock.NewRows(itemColumnNames))
		result, err := repo.GetByRarityUpToLevel(ctx, entity.RarityLegendary, 5)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.RarityCommon, 5).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByRarityUpToLevel(ctx, entity.RarityCommon, 5)
		assert.Error(t, err)
	})
}
