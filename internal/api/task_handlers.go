package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/internal/service"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/kanquest/performator/pkg/httputil"
)

type TaskRequest struct {
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Status             string                 `json:"status"`
	EstimatedPomodoros int                    `json:"estimated_pomodoros"`
	ExpValue           int                    `json:"exp_value"`
	DueDate            *time.Time             `json:"due_date"`
	ChecklistItems     []entity.ChecklistItem `json:"checklist_items"`
	MasterCardID       *uuid.UUID             `json:"master_card_id"`
	Tags               []string               `json:"tags"`
	Color              string                 `json:"color"`
	Priority           string                 `json:"priority"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type ToggleCompleteRequest struct {
	IsComplete bool `json:"is_complete"`
}

type GetTasksResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Tasks  []*entity.Task `json:"tasks"`
}

type ChangeStatusResponse struct {
	Task   *entity.Task           `json:"task"`
	Reward *game.CompletionResult `json:"reward,omitempty"`
}

// writeTaskError maps service errors of the task flows to responses. Foreign
// tasks are reported as missing so ids can't be probed.
func writeTaskError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		logger.Error(action + " error: unexist task")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(action + " error: task has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrMasterNotFound):
		logger.Error(action + " error: unexist master card")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "master card doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrInvalidStatus):
		logger.Error(action + " error: unknown status")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown task status", nil)
	case errors.Is(err, errorvalues.ErrAlreadySlain):
		logger.Error(action + " error: task already slain")
		httputil.WriteErrorResponse(w, http.StatusConflict, "task is already slain", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func taskRequestToService(req *TaskRequest) *service.CreateTaskRequest {
	return &service.CreateTaskRequest{
		Title:              req.Title,
		Description:        req.Description,
		Status:             entity.TaskStatus(req.Status),
		EstimatedPomodoros: req.EstimatedPomodoros,
		ExpValue:           req.ExpValue,
		DueDate:            req.DueDate,
		ChecklistItems:     req.ChecklistItems,
		MasterCardID:       req.MasterCardID,
		Tags:               req.Tags,
		Color:              req.Color,
		Priority:           req.Priority,
	}
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.taskService.CreateTask(ctx, uid, taskRequestToService(&req))
	if err != nil {
		writeTaskError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 50
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	status := entity.TaskStatus(r.URL.Query().Get("status"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	tasks, err := s.taskService.GetUserTasks(ctx, uid, status, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeTaskError(w, logger, "get tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTasksResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Tasks:  tasks,
	})
	logger.Info("tasks provided")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.taskService.GetTask(ctx, id, uid)
	if err != nil {
		writeTaskError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task provided")
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req TaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.taskService.UpdateTask(ctx, id, uid, &service.UpdateTaskRequest{
		Title:              req.Title,
		Description:        req.Description,
		EstimatedPomodoros: req.EstimatedPomodoros,
		ExpValue:           req.ExpValue,
		DueDate:            req.DueDate,
		ChecklistItems:     req.ChecklistItems,
		MasterCardID:       req.MasterCardID,
		Tags:               req.Tags,
		Color:              req.Color,
		Priority:           req.Priority,
	})
	if err != nil {
		writeTaskError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.taskService.DeleteTask(ctx, id, uid)
	if err != nil {
		writeTaskError(w, logger, "task deletion", err)
		return
	}
	logger.Info("task deleted")
}

func (s *Server) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("change status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("change status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req ChangeStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("change status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, reward, err := s.taskService.ChangeStatus(ctx, id, uid, entity.TaskStatus(req.Status))
	if err != nil {
		writeTaskError(w, logger, "change status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChangeStatusResponse{
		Task:   task,
		Reward: reward,
	})
	logger.Info("task status changed", slog.String("status", req.Status))
}

func (s *Server) ToggleTaskComplete(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle complete error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle complete error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req ToggleCompleteRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle complete error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.taskService.ToggleComplete(ctx, id, uid, req.IsComplete)
	if err != nil {
		writeTaskError(w, logger, "toggle complete", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task completion toggled")
}

func (s *Server) RecordPomodoro(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record pomodoro error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("record pomodoro error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	task, err := s.taskService.RecordPomodoro(ctx, id, uid)
	if err != nil {
		writeTaskError(w, logger, "record pomodoro", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("pomodoro recorded")
}
