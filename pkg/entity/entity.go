package entity

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusMaster     TaskStatus = "master"
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusSlain      TaskStatus = "slain"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusMaster, StatusBacklog, StatusTodo, StatusInProgress, StatusDone, StatusSlain:
		return true
	}
	return false
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type ItemCategory string

const (
	CategoryWeapon    ItemCategory = "weapon"
	CategoryHelmet    ItemCategory = "helmet"
	CategoryChest     ItemCategory = "chest"
	CategoryLegs      ItemCategory = "legs"
	CategoryBoots     ItemCategory = "boots"
	CategoryGloves    ItemCategory = "gloves"
	CategoryAccessory ItemCategory = "accessory"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryWeapon, CategoryHelmet, CategoryChest, CategoryLegs,
		CategoryBoots, CategoryGloves, CategoryAccessory:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`

	Level           int `json:"level"`
	TotalExp        int `json:"total_exp"`
	CurrentLevelExp int `json:"current_level_exp"`
	ExpToNextLevel  int `json:"exp_to_next_level"`
	TasksCompleted  int `json:"tasks_completed"`
	TotalPomodoros  int `json:"total_pomodoros"`

	StreakDays       int        `json:"streak_days"`
	FailedStreak     int        `json:"failed_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	LastDecayDate    *time.Time `json:"last_decay_date,omitempty"`

	Difficulty            Difficulty `json:"difficulty"`
	DailyGoalClaimed      bool       `json:"daily_goal_claimed"`
	WeeklyRewardClaimed   bool       `json:"weekly_reward_claimed"`
	MonthlyRewardClaimed  bool       `json:"monthly_reward_claimed"`
	DailyPeriod           string     `json:"-"`
	WeeklyPeriod          string     `json:"-"`
	MonthlyPeriod         string     `json:"-"`
	WeeklyGoalsCompleted  int        `json:"weekly_goals_completed"`
	MonthlyWeeksCompleted int        `json:"monthly_weeks_completed"`

	EquippedWeapon    *uuid.UUID `json:"equipped_weapon,omitempty"`
	EquippedHelmet    *uuid.UUID `json:"equipped_helmet,omitempty"`
	EquippedChest     *uuid.UUID `json:"equipped_chest,omitempty"`
	EquippedLegs      *uuid.UUID `json:"equipped_legs,omitempty"`
	EquippedBoots     *uuid.UUID `json:"equipped_boots,omitempty"`
	EquippedGloves    *uuid.UUID `json:"equipped_gloves,omitempty"`
	EquippedAccessory *uuid.UUID `json:"equipped_accessory,omitempty"`
}

// EquippedSlot gives access to the equipped-item field for a category, so
// callers can read or assign the slot without repeating the per-slot switch.
func (u *User) EquippedSlot(c ItemCategory) **uuid.UUID {
	switch c {
	case CategoryWeapon:
		return &u.EquippedWeapon
	case CategoryHelmet:
		return &u.EquippedHelmet
	case CategoryChest:
		return &u.EquippedChest
	case CategoryLegs:
		return &u.EquippedLegs
	case CategoryBoots:
		return &u.EquippedBoots
	case CategoryGloves:
		return &u.EquippedGloves
	default:
		return &u.EquippedAccessory
	}
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	IsComplete  bool       `json:"is_complete"`

	ExpValue           int  `json:"exp_value"`
	ExpAwarded         bool `json:"exp_awarded"`
	EstimatedPomodoros int  `json:"estimated_pomodoros"`
	CompletedPomodoros int  `json:"completed_pomodoros"`

	CreatedDate time.Time  `json:"created_date"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SlainAt     *time.Time `json:"slain_at,omitempty"`

	ChecklistItems []ChecklistItem `json:"checklist_items"`
	MasterCardID   *uuid.UUID      `json:"master_card_id,omitempty"`
	Tags           []string        `json:"tags"`
	Color          string          `json:"color"`
	Priority       string          `json:"priority"`
}

type Item struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Category         ItemCategory   `json:"category"`
	Rarity           Rarity         `json:"rarity"`
	LevelRequirement int            `json:"level_requirement"`
	StatsBonus       map[string]int `json:"stats_bonus"`
	ImageURL         *string        `json:"image_url,omitempty"`
}

type InventoryRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ItemID       uuid.UUID `json:"item_id"`
	IsEquipped   bool      `json:"is_equipped"`
	AcquiredDate time.Time `json:"acquired_date"`
}
