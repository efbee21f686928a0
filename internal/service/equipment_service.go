package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
)

type EquipmentService struct {
	usersRepo     repository.UsersRepositoryI
	itemsRepo     repository.ItemsRepositoryI
	inventoryRepo repository.InventoryRepositoryI
}

func NewEquipmentService(
	usersRepo repository.UsersRepositoryI,
	itemsRepo repository.ItemsRepositoryI,
	inventoryRepo repository.InventoryRepositoryI,
) *EquipmentService {
	if usersRepo == nil || itemsRepo == nil || inventoryRepo == nil {
		log.Fatal("on equipment service provided nil repos")
	}
	return &EquipmentService{
		usersRepo:     usersRepo,
		itemsRepo:     itemsRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (es *EquipmentService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := es.itemsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	return items, nil
}

func (es *EquipmentService) GetInventory(ctx context.Context, uid uuid.UUID) ([]*InventoryEntry, error) {
	records, err := es.inventoryRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("inventory repository error: " + err.Error())
	}
	entries := make([]*InventoryEntry, 0, len(records))
	for _, rec := range records {
		item, err := es.itemsRepo.GetByID(ctx, rec.ItemID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrItemNotFound) {
				// Catalog row gone from under the record. Skip rather than
				// fail the whole inventory.
				continue
			}
			return nil, errors.New("items repository error: " + err.Error())
		}
		entries = append(entries, &InventoryEntry{Record: rec, Item: item})
	}
	return entries, nil
}

// getOwnedRecord resolves an inventory record and hides other users' records
// behind ErrNotInInventory.
func (es *EquipmentService) getOwnedRecord(ctx context.Context, uid, inventoryID uuid.UUID) (*entity.InventoryRecord, error) {
	rec, err := es.inventoryRepo.GetByID(ctx, inventoryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotInInventory) {
			return nil, errorvalues.ErrNotInInventory
		}
		return nil, errors.New("inventory repository error: " + err.Error())
	}
	if rec.UserID != uid {
		return nil, errorvalues.ErrNotInInventory
	}
	return rec, nil
}

func (es *EquipmentService) Equip(ctx context.Context, uid, inventoryID uuid.UUID) (*entity.User, error) {
	rec, err := es.getOwnedRecord(ctx, uid, inventoryID)
	if err != nil {
		return nil, err
	}
	item, err := es.itemsRepo.GetByID(ctx, rec.ItemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("items repository error: " + err.Error())
	}
	user, err := es.usersRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	if user.Level < item.LevelRequirement {
		return nil, errorvalues.ErrLevelTooLow
	}

	// One item per slot: anything already worn in this category comes off.
	equipped, err := es.inventoryRepo.GetEquippedInCategory(ctx, uid, item.Category)
	if err != nil {
		return nil, errors.New("inventory repository error: " + err.Error())
	}
	for _, worn := range equipped {
		if worn.ID == rec.ID {
			continue
		}
		if err := es.inventoryRepo.SetEquipped(ctx, worn.ID, false); err != nil {
			return nil, errors.New("inventory repository error: " + err.Error())
		}
	}
	if err := es.inventoryRepo.SetEquipped(ctx, rec.ID, true); err != nil {
		return nil, errors.New("inventory repository error: " + err.Error())
	}

	if slot := user.EquippedSlot(item.Category); slot != nil {
		id := item.ID
		*slot = &id
	}
	if err := es.usersRepo.UpdateProgress(ctx, user); err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (es *EquipmentService) Unequip(ctx context.Context, uid, inventoryID uuid.UUID) (*entity.User, error) {
	rec, err := es.getOwnedRecord(ctx, uid, inventoryID)
	if err != nil {
		return nil, err
	}
	item, err := es.itemsRepo.GetByID(ctx, rec.ItemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("items repository error: " + err.Error())
	}
	user, err := es.usersRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	if err := es.inventoryRepo.SetEquipped(ctx, rec.ID, false); err != nil {
		return nil, errors.New("inventory repository error: " + err.Error())
	}
	if slot := user.EquippedSlot(item.Category); slot != nil {
		*slot = nil
	}
	if err := es.usersRepo.UpdateProgress(ctx, user); err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}
