package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kanquest/performator/internal/api"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/internal/service"
	"github.com/kanquest/performator/internal/service/mocks"
	"github.com/kanquest/performator/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				gService.EXPECT().DailyCheck(gomock.Any(), userID).Return(&game.DecayResult{
					Applied:      true,
					InactiveDays: 2,
					ExpLost:      17,
					FailedStreak: 2,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				gService.EXPECT().DailyCheck(gomock.Any(), userID).Return(nil, errorvalues.ErrDecayChecked)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().DailyCheck(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().DailyCheck(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/game/daily-check", nil))
		serv.DailyCheck(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	t.Run("board provided", func(t *testing.T) {
		gService.EXPECT().GetGoals(gomock.Any(), userID).Return(&game.GoalBoard{
			Difficulty: entity.DifficultyMedium,
			Daily: game.DailyGoal{
				TasksToday:     4,
				CompletedToday: 2,
				Target:         2,
				Progress:       100,
				Complete:       true,
				CanClaim:       true,
			},
			Weekly:  game.PeriodGoal{Completed: 3, Target: 5},
			Monthly: game.PeriodGoal{Completed: 1, Target: 3},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/game/goals", nil))
		serv.GetGoals(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var board game.GoalBoard
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&board)
		require.NoError(t, err)
		assert.True(t, board.Daily.CanClaim)
		assert.Equal(t, 5, board.Weekly.Target)
	})
	t.Run("service error", func(t *testing.T) {
		gService.EXPECT().GetGoals(gomock.Any(), userID).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/game/goals", nil))
		serv.GetGoals(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestClaimGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGamificationServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GamificationService: gService,
	})
	claim := func(period string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/game/goals/"+period+"/claim", nil)
		r.SetPathValue("period", period)
		r = authorized(r)
		serv.ClaimGoal(rr, r)
		return rr
	}
	t.Run("daily claimed", func(t *testing.T) {
		gService.EXPECT().ClaimDaily(gomock.Any(), userID).Return(&service.Reward{
			Type: "daily",
			Exp:  100,
			Items: []*entity.Item{
				{ID: uuid.New(), Name: "rusty sword", Rarity: entity.RarityCommon},
			},
			Level: 2,
		}, nil)
		rr := claim("daily")
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var reward service.Reward
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&reward)
		require.NoError(t, err)
		assert.Equal(t, 100, reward.Exp)
		assert.Len(t, reward.Items, 1)
	})
	t.Run("weekly claimed", func(t *testing.T) {
		gService.EXPECT().ClaimWeekly(gomock.Any(), userID).Return(&service.Reward{
			Type:  "weekly",
			Items: []*entity.Item{{}, {}, {}},
		}, nil)
		rr := claim("weekly")
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("monthly claimed", func(t *testing.T) {
		gService.EXPECT().ClaimMonthly(gomock.Any(), userID).Return(&service.Reward{
			Type:  "monthly",
			Items: []*entity.Item{{}},
		}, nil)
		rr := claim("monthly")
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error unknown period", func(t *testing.T) {
		rr := claim("hourly")
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("error goal not complete", func(t *testing.T) {
		gService.EXPECT().ClaimDaily(gomock.Any(), userID).Return(nil, errorvalues.ErrGoalNotComplete)
		rr := claim("daily")
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("error already claimed", func(t *testing.T) {
		gService.EXPECT().ClaimDaily(gomock.Any(), userID).Return(nil, errorvalues.ErrRewardClaimed)
		rr := claim("daily")
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}
