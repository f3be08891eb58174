package models

// Nutrient keys. The unit is fixed per key (iron/calcium/zinc/magnesium/b6 in mg,
// dha/omega3/protein/fiber in g, folate/vitamin_d/choline in mcg) and is part of
// the key's definition, never stored alongside the value.
const (
	NutrientIron      = "iron"
	NutrientDHA       = "dha"
	NutrientFolate    = "folate"
	NutrientCalcium   = "calcium"
	NutrientProtein   = "protein"
	NutrientFiber     = "fiber"
	NutrientVitaminD  = "vitamin_d"
	NutrientCholine   = "choline"
	NutrientZinc      = "zinc"
	NutrientMagnesium = "magnesium"
	NutrientOmega3    = "omega3"
	NutrientB6        = "vitamin_b6"
)

// NutrientVector maps a nutrient key to a non-negative amount.
// Keys absent from the map count as zero.
type NutrientVector map[string]float64

// Clone returns an independent copy of the vector.
func (v NutrientVector) Clone() NutrientVector {
	out := make(NutrientVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// AddInto accumulates other into v.
func (v NutrientVector) AddInto(other NutrientVector) {
	for k, val := range other {
		v[k] += val
	}
}

// TargetProfile holds required daily amounts, keyed like a NutrientVector.
type TargetProfile map[string]float64
