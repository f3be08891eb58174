package stores

import (
	"context"
	"errors"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

// Sentinel errors shared by every backend. Services translate these into
// their own taxonomy; controllers never see them directly.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type MealStore interface {
	CreateMeal(ctx context.Context, meal *models.Meal) error
	FindMealByID(ctx context.Context, id uint) (*models.Meal, error)
	// FindMealsByUserAndDate returns the meals whose LoggedAt falls on the
	// given YYYY-MM-DD day, ordered by LoggedAt ascending.
	FindMealsByUserAndDate(ctx context.Context, userID uint, date string) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, meal *models.Meal) error
	DeleteMeal(ctx context.Context, id uint) error
}

type DailyLogStore interface {
	// FindLogByUserAndDate returns ErrNotFound when no log exists for the key.
	FindLogByUserAndDate(ctx context.Context, userID uint, date string) (*models.DailyLog, error)
	// CreateLog returns ErrConflict when a log already exists for the
	// (user, date) pair. The backend, not the caller, enforces uniqueness.
	CreateLog(ctx context.Context, log *models.DailyLog) error
	UpdateLog(ctx context.Context, log *models.DailyLog) error
	DeleteLog(ctx context.Context, id uint) error
	// ListLogsByUserAndDateRange returns logs with from <= Date <= to,
	// ordered by Date ascending.
	ListLogsByUserAndDateRange(ctx context.Context, userID uint, from, to string) ([]models.DailyLog, error)
}

// Store bundles the three collaborator contracts; both backends satisfy it.
type Store interface {
	UserStore
	MealStore
	DailyLogStore
}
