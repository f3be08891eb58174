package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

// SummaryPatch is a typed partial update for a daily log. Nil fields are left
// untouched. Setting MealIDs replaces the log's meal set and forces a
// recomputation of totals, calories and the wellness score; the other fields
// never trigger one.
type SummaryPatch struct {
	MealIDs      *[]uint `json:"meal_ids"`
	WaterGlasses *int    `json:"water_glasses"`
	Mood         *string `json:"mood"`
	EnergyLevel  *int    `json:"energy_level"`
	Notes        *string `json:"notes"`
}

// DailyLogService owns the daily-log lifecycle: lazy materialization on read,
// explicit create with conflict semantics, recompute-on-meal-change, and
// explicit delete. It never holds locks of its own; the store's create
// primitive is the sole authority on the one-log-per-user-per-day rule.
type DailyLogService struct {
	users stores.UserStore
	meals stores.MealStore
	logs  stores.DailyLogStore
	hub   *RealtimeHub
	log   *zap.Logger
}

func NewDailyLogService(users stores.UserStore, meals stores.MealStore, logs stores.DailyLogStore, hub *RealtimeHub, log *zap.Logger) *DailyLogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DailyLogService{users: users, meals: meals, logs: logs, hub: hub, log: log}
}

// GetOrCreateDailySummary returns the log for (user, date), materializing it
// from the day's meals when absent. Losing a create race is not an error:
// the winner's record is re-read and returned.
func (s *DailyLogService) GetOrCreateDailySummary(ctx context.Context, userID uint, date string) (*models.DailyLog, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.logs.FindLogByUserAndDate(ctx, userID, date)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	fresh, err := s.buildFromMeals(ctx, user, date)
	if err != nil {
		return nil, err
	}
	if err := s.logs.CreateLog(ctx, fresh); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			// A concurrent reader created it first; theirs is authoritative.
			s.log.Debug("lost daily log create race, re-reading",
				zap.Uint("user_id", userID), zap.String("date", date))
			return s.logs.FindLogByUserAndDate(ctx, userID, date)
		}
		return nil, err
	}
	return fresh, nil
}

// CreateDailySummary materializes a log explicitly. Unlike the lazy path, an
// existing record is surfaced to the caller as ErrLogConflict.
func (s *DailyLogService) CreateDailySummary(ctx context.Context, userID uint, date string, initial SummaryPatch) (*models.DailyLog, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.buildFromMeals(ctx, user, date)
	if err != nil {
		return nil, err
	}
	applyDirectFields(log, initial)

	if err := s.logs.CreateLog(ctx, log); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			return nil, ErrLogConflict
		}
		return nil, err
	}
	s.broadcast(log)
	return log, nil
}

// RecomputeSummary refreshes an existing log's meal set, totals, calories and
// score from the meals currently stored for its date.
func (s *DailyLogService) RecomputeSummary(ctx context.Context, userID uint, date string) (*models.DailyLog, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.logs.FindLogByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	meals, err := s.meals.FindMealsByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	s.applyAggregation(log, user, meals)

	if err := s.logs.UpdateLog(ctx, log); err != nil {
		return nil, err
	}
	s.broadcast(log)
	return log, nil
}

// UpdateSummary applies a partial update. Patches that replace the meal set
// recompute the aggregates before persisting, so the store never holds a log
// whose totals disagree with its meals. Water/mood/energy/notes-only patches
// skip the recompute.
func (s *DailyLogService) UpdateSummary(ctx context.Context, userID uint, date string, patch SummaryPatch) (*models.DailyLog, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := s.logs.FindLogByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	applyDirectFields(log, patch)

	if patch.MealIDs != nil {
		meals, err := s.fetchMeals(ctx, user.ID, *patch.MealIDs)
		if err != nil {
			return nil, err
		}
		s.applyAggregation(log, user, meals)
	}

	if err := s.logs.UpdateLog(ctx, log); err != nil {
		return nil, err
	}
	s.broadcast(log)
	return log, nil
}

// DeleteSummary removes the log for (user, date).
func (s *DailyLogService) DeleteSummary(ctx context.Context, userID uint, date string) error {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	log, err := s.logs.FindLogByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	if err := s.logs.DeleteLog(ctx, log.ID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return nil
}

// AddWater increments the day's water count, materializing the log first when
// needed. The count never drops below zero.
func (s *DailyLogService) AddWater(ctx context.Context, userID uint, date string, delta int) (*models.DailyLog, error) {
	log, err := s.GetOrCreateDailySummary(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	glasses := log.WaterGlasses + delta
	if glasses < 0 {
		glasses = 0
	}
	return s.UpdateSummary(ctx, userID, date, SummaryPatch{WaterGlasses: &glasses})
}

// RefreshForMealChange keeps an already-materialized log consistent after a
// meal mutation. Days nobody has summarized yet stay absent; they will be
// computed on first read.
func (s *DailyLogService) RefreshForMealChange(ctx context.Context, userID uint, date string) error {
	_, err := s.RecomputeSummary(ctx, userID, date)
	if errors.Is(err, ErrLogNotFound) {
		return nil
	}
	return err
}

// ---- internals ----

func (s *DailyLogService) requireUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *DailyLogService) buildFromMeals(ctx context.Context, user *models.User, date string) (*models.DailyLog, error) {
	meals, err := s.meals.FindMealsByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	log := &models.DailyLog{UserID: user.ID, Date: date}
	s.applyAggregation(log, user, meals)
	return log, nil
}

// fetchMeals resolves a patched meal set. Meals belonging to another user are
// indistinguishable from absent ones; their nutrients must never leak into a
// log they do not own.
func (s *DailyLogService) fetchMeals(ctx context.Context, userID uint, ids []uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0, len(ids))
	for _, id := range ids {
		meal, err := s.meals.FindMealByID(ctx, id)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
			}
			return nil, err
		}
		if meal.UserID != userID {
			return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
		}
		meals = append(meals, *meal)
	}
	return meals, nil
}

func (s *DailyLogService) applyAggregation(log *models.DailyLog, user *models.User, meals []models.Meal) {
	totals, calories := Aggregate(meals)
	targets := ResolveTargets(user.LifeStage)

	ids := make([]uint, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
	}
	log.MealIDs = ids
	log.TotalNutrients = totals
	log.TotalCalories = calories
	log.WellnessScore = Score(totals, targets)
}

func applyDirectFields(log *models.DailyLog, patch SummaryPatch) {
	if patch.WaterGlasses != nil {
		glasses := *patch.WaterGlasses
		if glasses < 0 {
			glasses = 0
		}
		log.WaterGlasses = glasses
	}
	if patch.Mood != nil {
		log.Mood = *patch.Mood
	}
	if patch.EnergyLevel != nil {
		log.EnergyLevel = *patch.EnergyLevel
	}
	if patch.Notes != nil {
		log.Notes = *patch.Notes
	}
}

func (s *DailyLogService) broadcast(log *models.DailyLog) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastSummary(log.UserID, log)
}
