package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

type UserService struct {
	users stores.UserStore
}

func NewUserService(users stores.UserStore) *UserService {
	return &UserService{users: users}
}

// ProfileInput carries the editable profile fields. Empty strings and nil
// pointers leave the current value in place.
type ProfileInput struct {
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	LifeStage      string    `json:"life_stage"`
	DueDate        string    `json:"due_date"` // YYYY-MM-DD
	TrackedMetrics *[]string `json:"tracked_metrics"`
	Onboarded      *bool     `json:"onboarded"`
}

var validStages = map[string]bool{
	models.StageTTC:        true,
	models.StageTrimester1: true,
	models.StageTrimester2: true,
	models.StageTrimester3: true,
	models.StagePostpartum: true,
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	dueDate := ""
	if user.DueDate != nil {
		dueDate = user.DueDate.Format("2006-01-02")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"life_stage":      user.LifeStage,
		"due_date":        dueDate,
		"tracked_metrics": user.TrackedMetrics,
		"onboarded":       user.Onboarded,
		"targets":         ResolveTargets(user.LifeStage),
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.LifeStage != "" {
		if !validStages[input.LifeStage] {
			return fmt.Errorf("unknown life stage %q", input.LifeStage)
		}
		user.LifeStage = input.LifeStage
	}
	if input.DueDate != "" {
		due, err := time.Parse("2006-01-02", input.DueDate)
		if err != nil {
			return fmt.Errorf("invalid due_date: %w", err)
		}
		user.DueDate = &due
	}
	if input.TrackedMetrics != nil {
		user.TrackedMetrics = *input.TrackedMetrics
	}
	if input.Onboarded != nil {
		user.Onboarded = *input.Onboarded
	}

	return s.users.UpdateUser(ctx, user)
}
