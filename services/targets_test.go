package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

func TestResolveTargetsKnownStages(t *testing.T) {
	assert.InDelta(t, 18, ResolveTargets(models.StageTTC)["iron"], 1e-9)
	assert.InDelta(t, 25, ResolveTargets(models.StageTrimester2)["iron"], 1e-9)
	assert.InDelta(t, 9, ResolveTargets(models.StagePostpartum)["iron"], 1e-9)
}

func TestResolveTargetsTrimestersShareProfile(t *testing.T) {
	t2 := ResolveTargets(models.StageTrimester2)
	assert.Equal(t, t2, ResolveTargets(models.StageTrimester1))
	assert.Equal(t, t2, ResolveTargets(models.StageTrimester3))
}

func TestResolveTargetsUnknownStageFallsBack(t *testing.T) {
	t2 := ResolveTargets(models.StageTrimester2)
	assert.Equal(t, t2, ResolveTargets("xyz"))
	assert.Equal(t, t2, ResolveTargets(""))
}

func TestResolveTargetsReturnsCopy(t *testing.T) {
	p := ResolveTargets(models.StageTrimester2)
	p["iron"] = 9999
	assert.InDelta(t, 25, ResolveTargets(models.StageTrimester2)["iron"], 1e-9)
}
