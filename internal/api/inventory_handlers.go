package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/pkg/httputil"
)

func writeInventoryError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrNotInInventory):
		logger.Error(action + " error: record not in user's inventory")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "item is not in your inventory", nil)
	case errors.Is(err, errorvalues.ErrItemNotFound):
		logger.Error(action + " error: unexist catalog item")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrLevelTooLow):
		logger.Error(action + " error: level requirement not met")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "level too low for this item", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (s *Server) GetItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	items, err := s.equipService.ListItems(ctx)
	if err != nil {
		logger.Error("get items error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": items})
	logger.Info("item catalog provided")
}

func (s *Server) GetInventory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get inventory error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.equipService.GetInventory(ctx, uid)
	if err != nil {
		logger.Error("get inventory error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting inventory", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":       uid.String(),
		"inventory": entries,
	})
	logger.Info("inventory provided")
}

func (s *Server) EquipItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("equip error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("equip error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid inventory id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.equipService.Equip(ctx, uid, id)
	if err != nil {
		writeInventoryError(w, logger, "equip", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("item equipped")
}

func (s *Server) UnequipItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unequip error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("unequip error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid inventory id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.equipService.Unequip(ctx, uid, id)
	if err != nil {
		writeInventoryError(w, logger, "unequip", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("item unequipped")
}
