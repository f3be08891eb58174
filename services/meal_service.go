package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

type MealService struct {
	meals     stores.MealStore
	summaries *DailyLogService
	log       *zap.Logger
}

func NewMealService(meals stores.MealStore, summaries *DailyLogService, log *zap.Logger) *MealService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MealService{meals: meals, summaries: summaries, log: log}
}

// MealRequest is the payload for logging or updating a meal.
type MealRequest struct {
	Name      string                `json:"name" binding:"required"`
	Type      string                `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Nutrients models.NutrientVector `json:"nutrients"`
	Calories  float64               `json:"calories" binding:"gte=0"`
	Servings  float64               `json:"servings" binding:"gt=0"`
	LoggedAt  time.Time             `json:"logged_at" binding:"required"`
}

func (r *MealRequest) validate() error {
	for key, v := range r.Nutrients {
		if v < 0 {
			return fmt.Errorf("nutrient %q must be non-negative", key)
		}
	}
	return nil
}

// LogMeal stores a new meal and refreshes that day's summary if one exists.
func (s *MealService) LogMeal(ctx context.Context, userID uint, req MealRequest) (*models.Meal, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Nutrients: req.Nutrients,
		Calories:  req.Calories,
		Servings:  req.Servings,
		LoggedAt:  req.LoggedAt,
	}
	if meal.Nutrients == nil {
		meal.Nutrients = models.NutrientVector{}
	}
	if err := s.meals.CreateMeal(ctx, meal); err != nil {
		return nil, err
	}

	if err := s.summaries.RefreshForMealChange(ctx, userID, meal.Day()); err != nil {
		s.log.Warn("summary refresh after meal create failed",
			zap.Uint("user_id", userID), zap.String("date", meal.Day()), zap.Error(err))
	}
	return meal, nil
}

// UpdateMeal replaces a meal's name/type/nutrients/calories fields. Ownership
// never changes. Summaries for both the old and new day are refreshed when
// the meal moved across a date boundary.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uint, req MealRequest) (*models.Meal, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	meal, err := s.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	oldDay := meal.Day()
	meal.Name = req.Name
	meal.Type = req.Type
	meal.Nutrients = req.Nutrients
	meal.Calories = req.Calories
	meal.Servings = req.Servings
	meal.LoggedAt = req.LoggedAt
	if meal.Nutrients == nil {
		meal.Nutrients = models.NutrientVector{}
	}

	if err := s.meals.UpdateMeal(ctx, meal); err != nil {
		return nil, err
	}

	for _, day := range affectedDays(oldDay, meal.Day()) {
		if err := s.summaries.RefreshForMealChange(ctx, userID, day); err != nil {
			s.log.Warn("summary refresh after meal update failed",
				zap.Uint("user_id", userID), zap.String("date", day), zap.Error(err))
		}
	}
	return meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	meal, err := s.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return err
	}
	if err := s.meals.DeleteMeal(ctx, mealID); err != nil {
		return err
	}
	if err := s.summaries.RefreshForMealChange(ctx, userID, meal.Day()); err != nil {
		s.log.Warn("summary refresh after meal delete failed",
			zap.Uint("user_id", userID), zap.String("date", meal.Day()), zap.Error(err))
	}
	return nil
}

func (s *MealService) GetMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	return s.ownedMeal(ctx, userID, mealID)
}

// ListMealsByDate returns the day's meals ordered by LoggedAt ascending.
func (s *MealService) ListMealsByDate(ctx context.Context, userID uint, date string) ([]models.Meal, error) {
	return s.meals.FindMealsByUserAndDate(ctx, userID, date)
}

func (s *MealService) ownedMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	meal, err := s.meals.FindMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	// A meal belonging to someone else is indistinguishable from a missing one.
	if meal.UserID != userID {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

func affectedDays(oldDay, newDay string) []string {
	if oldDay == newDay {
		return []string{oldDay}
	}
	return []string{oldDay, newDay}
}
