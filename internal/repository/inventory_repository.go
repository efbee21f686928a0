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

type InventoryRepository struct {
	conn PgConnection
}

func NewInventoryRepo(cfg DBConfig) *InventoryRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for inventoryRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for inventoryRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &InventoryRepository{
		conn: pool,
	}
}

func NewInventoryRepoWithConn(conn PgConnection) *InventoryRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for inventoryRepo: " + err.Error())
	}
	return &InventoryRepository{
		conn: conn,
	}
}

func (invr *InventoryRepository) Create(ctx context.Context, rec *entity.InventoryRecord) (uuid.UUID, error) {
	var id uuid.UUID
	row := invr.conn.QueryRow(ctx, `INSERT INTO user_inventory (user_id, item_id) VALUES ($1, $2) RETURNING id;`,
		rec.UserID,
		rec.ItemID,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				if pgErr.ConstraintName == "user_inventory_item_id_fkey" {
					return uuid.UUID{}, errorvalues.ErrItemNotFound
				}
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("granting item error: " + err.Error())
	}
	return id, nil
}

func (invr *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	row := invr.conn.QueryRow(ctx,
		`SELECT id, user_id, item_id, is_equipped, acquired_date FROM user_inventory WHERE id = $1;`, id)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.ItemID, &rec.IsEquipped, &rec.AcquiredDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNotInInventory
		}
		return nil, errors.New("getting inventory record error: " + err.Error())
	}
	return &rec, nil
}

func (invr *InventoryRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.InventoryRecord, error) {
	rows, err := invr.conn.Query(ctx,
		`SELECT id, user_id, item_id, is_equipped, acquired_date FROM user_inventory WHERE user_id = $1 ORDER BY acquired_date DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting inventory by uid error: " + err.Error())
	}
	defer rows.Close()
	return collectInventory(rows)
}

func (invr *InventoryRepository) GetEquippedInCategory(ctx context.Context, uid uuid.UUID, category entity.ItemCategory) ([]*entity.InventoryRecord, error) {
	rows, err := invr.conn.Query(ctx,
		`SELECT ui.id, ui.user_id, ui.item_id, ui.is_equipped, ui.acquired_date
		FROM user_inventory ui JOIN items i ON i.id = ui.item_id
		WHERE ui.user_id = $1 AND ui.is_equipped = true AND i.category = $2;`, uid, category)
	if err != nil {
		return nil, errors.New("getting equipped records error: " + err.Error())
	}
	defer rows.Close()
	return collectInventory(rows)
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryRecord, error) {
	records := make([]*entity.InventoryRecord, 0)
	for rows.Next() {
		rec := entity.InventoryRecord{}
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.ItemID, &rec.IsEquipped, &rec.AcquiredDate)
		if err != nil {
			return nil, errors.New("inventory row parsing error: " + err.Error())
		}
		records = append(records, &rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected inventory rows error: " + rows.Err().Error())
	}
	return records, nil
}

func (invr *InventoryRepository) SetEquipped(ctx context.Context, id uuid.UUID, equipped bool) error {
	ct, err := invr.conn.Exec(ctx, `UPDATE user_inventory SET is_equipped = $1 WHERE id = $2;`, equipped, id)
	if err != nil {
		return errors.New("setting equipped flag error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotInInventory
	}
	return nil
}
