package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/kanquest/performator/internal/error_values"
	"github.com/kanquest/performator/internal/game"
	"github.com/kanquest/performator/internal/repository"
	"github.com/kanquest/performator/pkg/entity"
)

type GamificationService struct {
	usersRepo     repository.UsersRepositoryI
	tasksRepo     repository.TasksRepositoryI
	itemsRepo     repository.ItemsRepositoryI
	inventoryRepo repository.InventoryRepositoryI
	rand          game.RandFunc
	now           func() time.Time
}

// NewGamificationService owns decay, goals and loot. rand must be supplied
// by the caller (main wires math/rand, tests pin rolls); nil now means wall
// clock.
func NewGamificationService(
	usersRepo repository.UsersRepositoryI,
	tasksRepo repository.TasksRepositoryI,
	itemsRepo repository.ItemsRepositoryI,
	inventoryRepo repository.InventoryRepositoryI,
	rand game.RandFunc,
	now func() time.Time,
) *GamificationService {
	if usersRepo == nil || tasksRepo == nil || itemsRepo == nil || inventoryRepo == nil {
		log.Fatal("on gamification service provided nil repos")
	}
	if rand == nil {
		log.Fatal("on gamification service provided nil rand source")
	}
	if now == nil {
		now = time.Now
	}
	return &GamificationService{
		usersRepo:     usersRepo,
		tasksRepo:     tasksRepo,
		itemsRepo:     itemsRepo,
		inventoryRepo: inventoryRepo,
		rand:          rand,
		now:           now,
	}
}

// DailyCheck applies inactivity decay at most once per calendar day. Repeat
// calls on the same day return ErrDecayChecked so clients can tell "already
// ran" from "ran and nothing decayed".
func (gs *GamificationService) DailyCheck(ctx context.Context, uid uuid.UUID) (*game.DecayResult, error) {
	user, err := gs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	today := gs.now()
	if user.LastDecayDate != nil && game.SameDay(*user.LastDecayDate, today) {
		return nil, errorvalues.ErrDecayChecked
	}
	newUser, res := game.ComputeDecay(*user, today)
	checked := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	newUser.LastDecayDate = &checked
	if err := gs.usersRepo.UpdateProgress(ctx, &newUser); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return &res, nil
}

// loadRolledOver fetches the user and lazily rolls stale claim flags over
// day/week/month boundaries, persisting when something reset.
func (gs *GamificationService) loadRolledOver(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.User, error) {
	user, err := gs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	rolled, changed := game.RolloverPeriods(*user, today)
	if changed {
		if err := gs.usersRepo.UpdateProgress(ctx, &rolled); err != nil {
			return nil, errors.New("repository updating error: " + err.Error())
		}
	}
	return &rolled, nil
}

func (gs *GamificationService) evaluate(ctx context.Context, user *entity.User, today time.Time) (*game.GoalBoard, error) {
	tasks, err := gs.tasksRepo.GetCreatedOn(ctx, user.ID, today)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	values := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		values = append(values, *t)
	}
	board := game.EvaluateGoals(*user, values, today)
	return &board, nil
}

func (gs *GamificationService) GetGoals(ctx context.Context, uid uuid.UUID) (*game.GoalBoard, error) {
	today := gs.now()
	user, err := gs.loadRolledOver(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	return gs.evaluate(ctx, user, today)
}

// grantItem draws one item from the candidate list and puts it in the user's
// inventory. An empty list grants nothing and is not an error.
func (gs *GamificationService) grantItem(ctx context.Context, user *entity.User, candidates []*entity.Item) (*entity.Item, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	item := candidates[int(gs.rand()*float64(len(candidates)))%len(candidates)]
	_, err := gs.inventoryRepo.Create(ctx, &entity.InventoryRecord{
		UserID: user.ID,
		ItemID: item.ID,
	})
	if err != nil {
		return nil, errors.New("inventory repository error: " + err.Error())
	}
	return item, nil
}

// grantDrop draws from the rarity bucket the user's level can carry. Random
// drops respect catalog level requirements.
func (gs *GamificationService) grantDrop(ctx context.Context, user *entity.User, rarity entity.Rarity) (*entity.Item, error) {
	candidates, err := gs.itemsRepo.GetByRarityUpToLevel(ctx, rarity, user.Level)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	return gs.grantItem(ctx, user, candidates)
}

// grantGuaranteed draws from the whole rarity bucket. Claim rewards promise
// an item no matter the claimant's level; the equip level gate decides
// whether it can actually be worn.
func (gs *GamificationService) grantGuaranteed(ctx context.Context, user *entity.User, rarity entity.Rarity) (*entity.Item, error) {
	candidates, err := gs.itemsRepo.GetByRarity(ctx, rarity)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	return gs.grantItem(ctx, user, candidates)
}

func (gs *GamificationService) ClaimDaily(ctx context.Context, uid uuid.UUID) (*Reward, error) {
	today := gs.now()
	user, err := gs.loadRolledOver(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	board, err := gs.evaluate(ctx, user, today)
	if err != nil {
		return nil, err
	}
	if board.Daily.Claimed {
		return nil, errorvalues.ErrRewardClaimed
	}
	if !board.Daily.Complete {
		return nil, errorvalues.ErrGoalNotComplete
	}

	levelBefore := user.Level
	claimed, bonus := game.ApplyDailyClaim(*user)

	reward := &Reward{
		Type:      "daily",
		Exp:       bonus,
		Items:     make([]*entity.Item, 0, 1),
		LeveledUp: claimed.Level > levelBefore,
		Level:     claimed.Level,
	}
	if rarity, ok := game.RollDrop(claimed.Level, gs.rand); ok {
		item, err := gs.grantDrop(ctx, &claimed, rarity)
		if err != nil {
			return nil, err
		}
		if item != nil {
			reward.Items = append(reward.Items, item)
		}
	}
	if err := gs.usersRepo.UpdateProgress(ctx, &claimed); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return reward, nil
}

// ClaimWeekly trades a finished week (5 claimed daily goals) for three
// uncommon items and one step of monthly progress.
func (gs *GamificationService) ClaimWeekly(ctx context.Context, uid uuid.UUID) (*Reward, error) {
	today := gs.now()
	user, err := gs.loadRolledOver(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	if user.WeeklyRewardClaimed {
		return nil, errorvalues.ErrRewardClaimed
	}
	if user.WeeklyGoalsCompleted < game.WeeklyGoalTarget {
		return nil, errorvalues.ErrGoalNotComplete
	}
	claimed := game.ApplyWeeklyClaim(*user)
	reward := &Reward{
		Type:  "weekly",
		Items: make([]*entity.Item, 0, 3),
		Level: claimed.Level,
	}
	for i := 0; i < 3; i++ {
		item, err := gs.grantGuaranteed(ctx, &claimed, entity.RarityUncommon)
		if err != nil {
			return nil, err
		}
		if item != nil {
			reward.Items = append(reward.Items, item)
		}
	}
	if err := gs.usersRepo.UpdateProgress(ctx, &claimed); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return reward, nil
}

// ClaimMonthly trades three finished weeks for one epic item.
func (gs *GamificationService) ClaimMonthly(ctx context.Context, uid uuid.UUID) (*Reward, error) {
	today := gs.now()
	user, err := gs.loadRolledOver(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	if user.MonthlyRewardClaimed {
		return nil, errorvalues.ErrRewardClaimed
	}
	if user.MonthlyWeeksCompleted < game.MonthlyGoalTarget {
		return nil, errorvalues.ErrGoalNotComplete
	}
	claimed := game.ApplyMonthlyClaim(*user)
	reward := &Reward{
		Type:  "monthly",
		Items: make([]*entity.Item, 0, 1),
		Level: claimed.Level,
	}
	item, err := gs.grantGuaranteed(ctx, &claimed, entity.RarityEpic)
	if err != nil {
		return nil, err
	}
	if item != nil {
		reward.Items = append(reward.Items, item)
	}
	if err := gs.usersRepo.UpdateProgress(ctx, &claimed); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return reward, nil
}
