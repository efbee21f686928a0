package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kanquest/performator/internal/api"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/service"
	"github.com/kanquest/performator/internal/service/mocks"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEquipmentServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EquipmentService: eService,
	})
	t.Run("catalog provided", func(t *testing.T) {
		eService.EXPECT().ListItems(gomock.Any()).Return([]*entity.Item{
			{ID: uuid.New(), Name: "rusty sword", Category: entity.CategoryWeapon, Rarity: entity.RarityCommon},
			{ID: uuid.New(), Name: "knight's helm", Category: entity.CategoryHelmet, Rarity: entity.RarityRare},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
		serv.GetItems(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		eService.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
		serv.GetItems(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEquipmentServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EquipmentService: eService,
	})
	t.Run("inventory provided", func(t *testing.T) {
		eService.EXPECT().GetInventory(gomock.Any(), userID).Return([]*service.InventoryEntry{
			{
				Record: &entity.InventoryRecord{ID: uuid.New(), UserID: userID},
				Item:   &entity.Item{ID: uuid.New(), Name: "rusty sword"},
			},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil))
		serv.GetInventory(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
		serv.GetInventory(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestEquipItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEquipmentServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EquipmentService: eService,
	})
	recordID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				itemID := uuid.New()
				eService.EXPECT().Equip(gomock.Any(), userID, recordID).Return(&entity.User{
					ID:             userID,
					EquippedWeapon: &itemID,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				eService.EXPECT().Equip(gomock.Any(), userID, recordID).
					Return(nil, errorvalues.ErrNotInInventory)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				eService.EXPECT().Equip(gomock.Any(), userID, recordID).
					Return(nil, errorvalues.ErrLevelTooLow)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				eService.EXPECT().Equip(gomock.Any(), userID, recordID).
					Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+recordID.String()+"/equip", nil)
		r.SetPathValue("id", recordID.String())
		r = authorized(r)
		serv.EquipItem(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUnequipItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEquipmentServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EquipmentService: eService,
	})
	recordID := uuid.New()
	t.Run("unequipped", func(t *testing.T) {
		eService.EXPECT().Unequip(gomock.Any(), userID, recordID).Return(&entity.User{
			ID: userID,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/"+recordID.String()+"/unequip", nil)
		r.SetPathValue("id", recordID.String())
		r = authorized(r)
		serv.UnequipItem(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/xxx/unequip", nil)
		r.SetPathValue("id", "xxx")
		r = authorized(r)
		serv.UnequipItem(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
