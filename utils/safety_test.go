package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessDailyIntakeNoFindingsForNormalDay(t *testing.T) {
	totals := map[string]float64{"iron": 20, "folate": 450, "calcium": 900}
	assert.Empty(t, AssessDailyIntake(totals))
}

func TestAssessDailyIntakeFlagsExceededLimit(t *testing.T) {
	totals := map[string]float64{"iron": 60}
	ws := AssessDailyIntake(totals)

	if assert.Len(t, ws, 1) {
		assert.Equal(t, "UL_EXCEEDED", ws[0].Code)
		assert.Equal(t, High, ws[0].Severity)
		assert.Equal(t, "iron", ws[0].Metric)
		assert.InDelta(t, 45, ws[0].Limit, 1e-9)
	}
}

func TestAssessDailyIntakeFlagsApproachingLimit(t *testing.T) {
	totals := map[string]float64{"folate": 900} // 90% of the 1000 limit
	ws := AssessDailyIntake(totals)

	if assert.Len(t, ws, 1) {
		assert.Equal(t, "UL_APPROACHING", ws[0].Code)
		assert.Equal(t, Caution, ws[0].Severity)
	}
}

func TestAssessDailyIntakeIgnoresMissingNutrients(t *testing.T) {
	assert.Empty(t, AssessDailyIntake(nil))
	assert.Empty(t, AssessDailyIntake(map[string]float64{"protein": 500}))
}
