package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrTaskNotFound      = errors.New("task doesn't exists")
	ErrWrongOwner        = errors.New("resource has different owner")
	ErrMasterNotFound    = errors.New("master card doesn't exists")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrAlreadySlain      = errors.New("task is already slain")
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	ErrGoalNotComplete = errors.New("goal is not complete yet")
	ErrRewardClaimed   = errors.New("reward already claimed")
	ErrDecayChecked    = errors.New("daily check already done today")
	ErrItemNotFound    = errors.New("item doesn't exists")
	ErrNotInInventory  = errors.New("item is not in inventory")
	ErrLevelTooLow     = errors.New("level requirement not met")
)
