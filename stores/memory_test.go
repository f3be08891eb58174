package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

func TestMemoryStoreLogCreateConflict(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &models.DailyLog{UserID: 1, Date: "2025-01-01"}
	require.NoError(t, store.CreateLog(ctx, first))

	dup := &models.DailyLog{UserID: 1, Date: "2025-01-01"}
	assert.ErrorIs(t, store.CreateLog(ctx, dup), ErrConflict)

	// other users and other dates are unaffected
	assert.NoError(t, store.CreateLog(ctx, &models.DailyLog{UserID: 2, Date: "2025-01-01"}))
	assert.NoError(t, store.CreateLog(ctx, &models.DailyLog{UserID: 1, Date: "2025-01-02"}))
}

func TestMemoryStoreLogNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.FindLogByUserAndDate(ctx, 1, "2025-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.DeleteLog(ctx, 42), ErrNotFound)
	assert.ErrorIs(t, store.UpdateLog(ctx, &models.DailyLog{}), ErrNotFound)
}

func TestMemoryStoreUpdateDeletedLog(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	log := &models.DailyLog{UserID: 1, Date: "2025-01-01"}
	require.NoError(t, store.CreateLog(ctx, log))
	require.NoError(t, store.DeleteLog(ctx, log.ID))

	// a delete racing a find/update never resurrects the row
	assert.ErrorIs(t, store.UpdateLog(ctx, log), ErrNotFound)
	_, err := store.FindLogByUserAndDate(ctx, 1, "2025-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMealDayFiltering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	late := &models.Meal{UserID: 1, Name: "dinner", LoggedAt: day.Add(19 * time.Hour)}
	early := &models.Meal{UserID: 1, Name: "breakfast", LoggedAt: day.Add(7 * time.Hour)}
	nextDay := &models.Meal{UserID: 1, Name: "tomorrow", LoggedAt: day.Add(25 * time.Hour)}
	otherUser := &models.Meal{UserID: 2, Name: "other", LoggedAt: day.Add(12 * time.Hour)}
	for _, m := range []*models.Meal{late, early, nextDay, otherUser} {
		require.NoError(t, store.CreateMeal(ctx, m))
	}

	meals, err := store.FindMealsByUserAndDate(ctx, 1, "2025-01-01")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	// ascending by LoggedAt
	assert.Equal(t, "breakfast", meals[0].Name)
	assert.Equal(t, "dinner", meals[1].Name)
}

func TestMemoryStoreUserEmailUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &models.User{Email: "a@b.c"}))
	assert.ErrorIs(t, store.CreateUser(ctx, &models.User{Email: "A@B.C"}), ErrConflict)
}

func TestMemoryStoreListLogsRange(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, d := range []string{"2025-01-03", "2025-01-01", "2025-01-05"} {
		require.NoError(t, store.CreateLog(ctx, &models.DailyLog{UserID: 1, Date: d}))
	}

	logs, err := store.ListLogsByUserAndDateRange(ctx, 1, "2025-01-01", "2025-01-04")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-01-01", logs[0].Date)
	assert.Equal(t, "2025-01-03", logs[1].Date)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	log := &models.DailyLog{UserID: 1, Date: "2025-01-01", WaterGlasses: 2}
	require.NoError(t, store.CreateLog(ctx, log))

	got, err := store.FindLogByUserAndDate(ctx, 1, "2025-01-01")
	require.NoError(t, err)
	got.WaterGlasses = 99

	again, err := store.FindLogByUserAndDate(ctx, 1, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, again.WaterGlasses)
}
