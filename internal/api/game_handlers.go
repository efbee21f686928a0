package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/service"
	"github.com/kanquest/performator/pkg/httputil"
)

func (s *Server) DailyCheck(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily check error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.gameService.DailyCheck(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDecayChecked):
			logger.Error("daily check error: already checked today")
			httputil.WriteErrorResponse(w, http.StatusConflict, "daily check already done today", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("daily check error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("daily check error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during daily check", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("daily check done")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.gameService.GetGoals(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get goals error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get goals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting goals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("goal board provided")
}

func (s *Server) ClaimGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("claim goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	period := r.PathValue("period")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var reward *service.Reward
	switch period {
	case "daily":
		reward, err = s.gameService.ClaimDaily(ctx, uid)
	case "weekly":
		reward, err = s.gameService.ClaimWeekly(ctx, uid)
	case "monthly":
		reward, err = s.gameService.ClaimMonthly(ctx, uid)
	default:
		logger.Error("claim goal error: unknown period in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown goal period", nil)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotComplete):
			logger.Error("claim goal error: goal not complete", slog.String("period", period))
			httputil.WriteErrorResponse(w, http.StatusConflict, "goal is not complete yet", nil)
		case errors.Is(err, errorvalues.ErrRewardClaimed):
			logger.Error("claim goal error: reward already claimed", slog.String("period", period))
			httputil.WriteErrorResponse(w, http.StatusConflict, "reward already claimed", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("claim goal error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("claim goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while claiming goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
	logger.Info("goal claimed", slog.String("period", period))
}
