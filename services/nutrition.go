package services

import (
	"math"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

// ScoredNutrients is the fixed subset the wellness score averages over.
// Extended nutrients (vitamin_d, choline, ...) are tracked for display but
// deliberately excluded from the score.
var ScoredNutrients = []string{
	models.NutrientIron,
	models.NutrientDHA,
	models.NutrientFolate,
	models.NutrientCalcium,
	models.NutrientProtein,
	models.NutrientFiber,
}

// Aggregate sums the nutrient vectors and calories of the given meals.
// An empty input yields an empty (all-zero) vector and zero calories;
// the result does not depend on meal order.
func Aggregate(meals []models.Meal) (models.NutrientVector, float64) {
	totals := make(models.NutrientVector)
	var calories float64
	for _, m := range meals {
		totals.AddInto(m.Nutrients)
		calories += m.Calories
	}
	return totals, calories
}

// Score computes the 0-100 wellness score: each scored nutrient contributes
// min(total/target, 1)*100, and the score is the rounded mean of the six
// contributions. A zero or missing target counts as a denominator of 1, so
// the function stays total over any non-negative input.
func Score(totals models.NutrientVector, targets models.TargetProfile) int {
	var sum float64
	for _, key := range ScoredNutrients {
		target := targets[key]
		if target <= 0 {
			target = 1
		}
		ratio := totals[key] / target
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio * 100
	}
	return int(math.Round(sum / float64(len(ScoredNutrients))))
}

// NutrientProgress is one ring's worth of data: consumed vs. target with a
// capped percentage, mirroring the shape the mobile client renders.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
}

// Progress expands totals against targets for every nutrient in the profile.
func Progress(totals models.NutrientVector, targets models.TargetProfile) map[string]NutrientProgress {
	out := make(map[string]NutrientProgress, len(targets))
	for key, target := range targets {
		out[key] = NutrientProgress{
			Consumed: round2(totals[key]),
			Target:   target,
			Percent:  pct(totals[key], target),
		}
	}
	return out
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		p = 1
	}
	return round2(p * 100)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
