package utils

import "fmt"

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding the API can show in the UI.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric,omitempty"`
	Value          float64         `json:"value,omitempty"`
	Limit          float64         `json:"limit,omitempty"`
	PercentOfLimit float64         `json:"percent_of_limit,omitempty"`
}

// Tolerable daily upper intakes during pregnancy and lactation. Units match
// the nutrient keys (iron/zinc/magnesium in mg, folate/vitamin_d choline in
// mcg-equivalents as tracked by the app).
var pregnancyUpperLimits = map[string]float64{
	"iron":      45,
	"folate":    1000,
	"calcium":   2500,
	"vitamin_d": 100,
	"zinc":      40,
	"magnesium": 350, // supplemental magnesium only, used as a conservative flag
	"choline":   3500,
}

// AssessDailyIntake flags nutrients whose daily total has crossed (or is
// approaching) the tolerable upper limit. Only emits findings for nutrients
// that are present; missing data never produces a "missing" note.
func AssessDailyIntake(totals map[string]float64) []Warning {
	warnings := []Warning{}
	for key, limit := range pregnancyUpperLimits {
		value, ok := totals[key]
		if !ok || value <= 0 {
			continue
		}
		pctOfLimit := value / limit * 100

		switch {
		case value > limit:
			warnings = append(warnings, Warning{
				Code:           "UL_EXCEEDED",
				Severity:       High,
				Message:        fmt.Sprintf("Daily %s intake is above the tolerable upper limit; check supplement doses with your provider.", key),
				Metric:         key,
				Value:          value,
				Limit:          limit,
				PercentOfLimit: pctOfLimit,
			})
		case pctOfLimit >= 80:
			warnings = append(warnings, Warning{
				Code:           "UL_APPROACHING",
				Severity:       Caution,
				Message:        fmt.Sprintf("Daily %s intake is close to the tolerable upper limit.", key),
				Metric:         key,
				Value:          value,
				Limit:          limit,
				PercentOfLimit: pctOfLimit,
			})
		}
	}
	return warnings
}
