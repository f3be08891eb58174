package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

func sampleMeals() []models.Meal {
	return []models.Meal{
		{Nutrients: models.NutrientVector{"iron": 2.1, "calcium": 150, "protein": 15, "fiber": 3}, Calories: 320},
		{Nutrients: models.NutrientVector{"iron": 18, "calcium": 200, "folate": 400}, Calories: 180},
		{Nutrients: models.NutrientVector{"iron": 4.2, "folate": 65, "calcium": 120, "protein": 28, "fiber": 6}, Calories: 540},
	}
}

func TestAggregateSumsNutrientsAndCalories(t *testing.T) {
	totals, calories := Aggregate(sampleMeals())

	assert.InDelta(t, 24.3, totals["iron"], 1e-9)
	assert.InDelta(t, 470, totals["calcium"], 1e-9)
	assert.InDelta(t, 465, totals["folate"], 1e-9)
	assert.InDelta(t, 43, totals["protein"], 1e-9)
	assert.InDelta(t, 9, totals["fiber"], 1e-9)
	assert.Zero(t, totals["dha"])
	assert.InDelta(t, 1040, calories, 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	totals, calories := Aggregate(nil)
	assert.Empty(t, totals)
	assert.Zero(t, calories)
}

func TestAggregateOrderIndependent(t *testing.T) {
	meals := sampleMeals()
	wantTotals, wantCalories := Aggregate(meals)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Meal, len(meals))
		copy(shuffled, meals)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		totals, calories := Aggregate(shuffled)
		assert.Equal(t, wantTotals, totals)
		assert.Equal(t, wantCalories, calories)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	meals := sampleMeals()
	t1, c1 := Aggregate(meals)
	t2, c2 := Aggregate(meals)
	assert.Equal(t, t1, t2)
	assert.Equal(t, c1, c2)
}

func TestScoreScenarioMidPregnancy(t *testing.T) {
	totals, _ := Aggregate(sampleMeals())
	targets := ResolveTargets(models.StageTrimester2)

	// capped ratios: iron 97.2, dha 0, folate 100, calcium 47, protein 57.33,
	// fiber 32.14 -> mean 55.6 -> 56
	assert.Equal(t, 56, Score(totals, targets))
}

func TestScoreEmptyTotalsIsZero(t *testing.T) {
	assert.Equal(t, 0, Score(models.NutrientVector{}, ResolveTargets(models.StageTrimester2)))
}

func TestScoreBounded(t *testing.T) {
	targets := ResolveTargets(models.StageTrimester2)
	cases := []models.NutrientVector{
		{},
		{"iron": 1000, "dha": 1000, "folate": 99999, "calcium": 99999, "protein": 99999, "fiber": 99999},
		{"iron": 0.0001},
		{"iron": 25, "dha": 1.5, "folate": 400, "calcium": 1000, "protein": 75, "fiber": 28},
	}
	for _, totals := range cases {
		got := Score(totals, targets)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestScoreSaturatesPerNutrient(t *testing.T) {
	targets := ResolveTargets(models.StageTrimester2)
	atTarget := models.NutrientVector{"iron": 25}
	overTarget := models.NutrientVector{"iron": 2500}

	// over-consuming a single nutrient never raises the score past the
	// at-target value
	assert.Equal(t, Score(atTarget, targets), Score(overTarget, targets))
}

func TestScoreZeroTargetDenominatorFallback(t *testing.T) {
	targets := models.TargetProfile{"iron": 0} // everything else absent
	totals := models.NutrientVector{"iron": 0.5}

	// target <= 0 means divide by 1, capped at 100: iron contributes 50,
	// the other five contribute min(0/1,1)*100 = 0
	assert.Equal(t, 8, Score(totals, targets)) // round(50/6)
}

func TestProgressCapsPercentages(t *testing.T) {
	targets := models.TargetProfile{"iron": 10, "fiber": 20}
	totals := models.NutrientVector{"iron": 25, "fiber": 5}

	got := Progress(totals, targets)
	assert.Equal(t, 100.0, got["iron"].Percent)
	assert.Equal(t, 25.0, got["fiber"].Percent)
	assert.Equal(t, 25.0, got["iron"].Consumed)
	assert.Equal(t, 10.0, got["iron"].Target)
}
