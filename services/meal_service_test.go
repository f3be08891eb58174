package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

func newMealFixture(t *testing.T) (*MealService, *DailyLogService, *models.User) {
	t.Helper()
	store := stores.NewMemoryStore()
	user := &models.User{Email: "mara@example.com", Password: "x", LifeStage: models.StageTrimester2}
	require.NoError(t, store.CreateUser(context.Background(), user))
	summaries := NewDailyLogService(store, store, store, nil, nil)
	return NewMealService(store, summaries, nil), summaries, user
}

func mealReq(day string, nutrients models.NutrientVector, calories float64) MealRequest {
	loggedAt, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return MealRequest{
		Name:      "oatmeal with berries",
		Type:      models.MealBreakfast,
		Nutrients: nutrients,
		Calories:  calories,
		Servings:  1,
		LoggedAt:  loggedAt.Add(8 * time.Hour),
	}
}

func TestLogMealRefreshesMaterializedSummary(t *testing.T) {
	svc, summaries, user := newMealFixture(t)
	ctx := context.Background()

	// materialize an empty day first
	log, err := summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	require.Zero(t, log.TotalCalories)

	_, err = svc.LogMeal(ctx, user.ID, mealReq(testDate, models.NutrientVector{"iron": 12}, 350))
	require.NoError(t, err)

	log, err = summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	assert.InDelta(t, 350, log.TotalCalories, 1e-9)
	assert.InDelta(t, 12, log.TotalNutrients["iron"], 1e-9)
	assert.Len(t, log.MealIDs, 1)
}

func TestLogMealOnUnsummarizedDayStaysLazy(t *testing.T) {
	svc, summaries, user := newMealFixture(t)
	ctx := context.Background()

	_, err := svc.LogMeal(ctx, user.ID, mealReq(testDate, models.NutrientVector{"iron": 12}, 350))
	require.NoError(t, err)

	// the day was never summarized; first read computes everything
	log, err := summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	assert.InDelta(t, 350, log.TotalCalories, 1e-9)
}

func TestLogMealRejectsNegativeNutrients(t *testing.T) {
	svc, _, user := newMealFixture(t)
	req := mealReq(testDate, models.NutrientVector{"iron": -1}, 350)
	_, err := svc.LogMeal(context.Background(), user.ID, req)
	assert.Error(t, err)
}

func TestUpdateMealAcrossDaysRefreshesBoth(t *testing.T) {
	svc, summaries, user := newMealFixture(t)
	ctx := context.Background()
	otherDate := "2025-01-02"

	meal, err := svc.LogMeal(ctx, user.ID, mealReq(testDate, models.NutrientVector{"iron": 12}, 350))
	require.NoError(t, err)

	// materialize both days
	_, err = summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	_, err = summaries.GetOrCreateDailySummary(ctx, user.ID, otherDate)
	require.NoError(t, err)

	// move the meal to the other day
	_, err = svc.UpdateMeal(ctx, user.ID, meal.ID, mealReq(otherDate, models.NutrientVector{"iron": 12}, 350))
	require.NoError(t, err)

	oldDay, err := summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	newDay, err := summaries.GetOrCreateDailySummary(ctx, user.ID, otherDate)
	require.NoError(t, err)

	assert.Zero(t, oldDay.TotalCalories)
	assert.Empty(t, oldDay.MealIDs)
	assert.InDelta(t, 350, newDay.TotalCalories, 1e-9)
}

func TestDeleteMealRefreshesSummary(t *testing.T) {
	svc, summaries, user := newMealFixture(t)
	ctx := context.Background()

	meal, err := svc.LogMeal(ctx, user.ID, mealReq(testDate, models.NutrientVector{"iron": 12}, 350))
	require.NoError(t, err)
	_, err = summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(ctx, user.ID, meal.ID))

	log, err := summaries.GetOrCreateDailySummary(ctx, user.ID, testDate)
	require.NoError(t, err)
	assert.Zero(t, log.TotalCalories)
	assert.Zero(t, log.WellnessScore)
	assert.Empty(t, log.MealIDs)
}

func TestMealOwnershipEnforced(t *testing.T) {
	svc, _, user := newMealFixture(t)
	ctx := context.Background()

	meal, err := svc.LogMeal(ctx, user.ID, mealReq(testDate, nil, 350))
	require.NoError(t, err)

	// another user can't see, update, or delete it
	otherID := user.ID + 1
	_, err = svc.GetMeal(ctx, otherID, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
	_, err = svc.UpdateMeal(ctx, otherID, meal.ID, mealReq(testDate, nil, 100))
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.ErrorIs(t, svc.DeleteMeal(ctx, otherID, meal.ID), ErrMealNotFound)
}

func TestListMealsOrderedByLoggedAt(t *testing.T) {
	svc, _, user := newMealFixture(t)
	ctx := context.Background()

	dinner := mealReq(testDate, nil, 600)
	dinner.Type = models.MealDinner
	dinner.LoggedAt = dinner.LoggedAt.Add(11 * time.Hour)
	_, err := svc.LogMeal(ctx, user.ID, dinner)
	require.NoError(t, err)

	breakfast := mealReq(testDate, nil, 300)
	_, err = svc.LogMeal(ctx, user.ID, breakfast)
	require.NoError(t, err)

	meals, err := svc.ListMealsByDate(ctx, user.ID, testDate)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, models.MealBreakfast, meals[0].Type)
	assert.Equal(t, models.MealDinner, meals[1].Type)
}
