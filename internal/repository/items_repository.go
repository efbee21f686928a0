package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/pkg/cleanup"
	"github.com/kanquest/performator/pkg/entity"
)

const itemColumns = `id, name, category, rarity, level_requirement, stats_bonus, image_url`

// ItemsRepository reads the static loot catalog. Rows are seeded by
// migrations; nothing writes here at runtime.
type ItemsRepository struct {
	conn PgConnection
}

func NewItemsRepo(cfg DBConfig) *ItemsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for itemsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for itemsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ItemsRepository{
		conn: pool,
	}
}

func NewItemsRepoWithConn(conn PgConnection) *ItemsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for itemsRepo: " + err.Error())
	}
	return &ItemsRepository{
		conn: conn,
	}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	var bonus []byte
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Rarity, &item.LevelRequirement, &bonus, &item.ImageURL)
	if err != nil {
		return nil, err
	}
	if len(bonus) > 0 {
		if err := sonic.Unmarshal(bonus, &item.StatsBonus); err != nil {
			return nil, errors.New("unmarshalling stats bonus error: " + err.Error())
		}
	}
	return &item, nil
}

func (ir *ItemsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	row := ir.conn.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1;`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting item by id error: " + err.Error())
	}
	return item, nil
}

func (ir *ItemsRepository) List(ctx context.Context) ([]*entity.Item, error) {
	rows, err := ir.conn.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY level_requirement, name;`)
	if err != nil {
		return nil, errors.New("listing items error: " + err.Error())
	}
	defer rows.Close()
	return collectItems(rows)
}

func (ir *ItemsRepository) GetByRarity(ctx context.Context, rarity entity.Rarity) ([]*entity.Item, error) {
	rows, err := ir.conn.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE rarity = $1;`, rarity)
	if err != nil {
		return nil, errors.New("getting items by rarity error: " + err.Error())
	}
	defer rows.Close()
	return collectItems(rows)
}

func (ir *ItemsRepository) GetByRarityUpToLevel(ctx context.Context, rarity entity.Rarity, level int) ([]*entity.Item, error) {
	rows, err := ir.conn.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE rarity = $1 AND level_requirement <= $2;`, rarity, level)
	if err != nil {
		return nil, errors.New("getting items by rarity error: " + err.Error())
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.New("item row parsing error: " + err.Error())
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected item rows error: " + rows.Err().Error())
	}
	return items, nil
}
