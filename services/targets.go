package services

import "github.com/themisatsal/hilla-mobile-sub000/models"

// Daily target profiles per life stage. The three trimesters currently share
// one profile. Values follow the app's built-in recommendations; the table is
// fixed at startup and never mutated.
var (
	ttcTargets = models.TargetProfile{
		models.NutrientIron:      18,
		models.NutrientDHA:       1.0,
		models.NutrientFolate:    400,
		models.NutrientCalcium:   1000,
		models.NutrientProtein:   60,
		models.NutrientFiber:     25,
		models.NutrientVitaminD:  15,
		models.NutrientCholine:   425,
		models.NutrientZinc:      8,
		models.NutrientMagnesium: 310,
		models.NutrientOmega3:    1.1,
		models.NutrientB6:        1.3,
	}

	pregnancyTargets = models.TargetProfile{
		models.NutrientIron:      25,
		models.NutrientDHA:       1.5,
		models.NutrientFolate:    400,
		models.NutrientCalcium:   1000,
		models.NutrientProtein:   75,
		models.NutrientFiber:     28,
		models.NutrientVitaminD:  15,
		models.NutrientCholine:   450,
		models.NutrientZinc:      11,
		models.NutrientMagnesium: 350,
		models.NutrientOmega3:    1.4,
		models.NutrientB6:        1.9,
	}

	postpartumTargets = models.TargetProfile{
		models.NutrientIron:      9,
		models.NutrientDHA:       1.3,
		models.NutrientFolate:    500,
		models.NutrientCalcium:   1000,
		models.NutrientProtein:   70,
		models.NutrientFiber:     28,
		models.NutrientVitaminD:  15,
		models.NutrientCholine:   550,
		models.NutrientZinc:      12,
		models.NutrientMagnesium: 310,
		models.NutrientOmega3:    1.3,
		models.NutrientB6:        2.0,
	}
)

// ResolveTargets maps a life stage to its daily target profile. Any
// unrecognised or empty stage resolves to the mid-pregnancy profile: an
// unknown pregnancy stage gets pregnancy targets rather than an error.
// The returned profile is a copy, so callers can't poison the table.
func ResolveTargets(stage string) models.TargetProfile {
	var profile models.TargetProfile
	switch stage {
	case models.StageTTC:
		profile = ttcTargets
	case models.StagePostpartum:
		profile = postpartumTargets
	case models.StageTrimester1, models.StageTrimester2, models.StageTrimester3:
		profile = pregnancyTargets
	default:
		profile = pregnancyTargets
	}

	out := make(models.TargetProfile, len(profile))
	for k, v := range profile {
		out[k] = v
	}
	return out
}
