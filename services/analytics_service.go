package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

// AnalyticsService builds the trend and weekly-overview views from stored
// daily logs. It reads logs as they are; it never materializes missing days.
type AnalyticsService struct {
	users stores.UserStore
	logs  stores.DailyLogStore
}

func NewAnalyticsService(users stores.UserStore, logs stores.DailyLogStore) *AnalyticsService {
	return &AnalyticsService{users: users, logs: logs}
}

// TrendDay is one row of the trend chart.
type TrendDay struct {
	Date          string             `json:"date"`
	HasData       bool               `json:"has_data"`
	WellnessScore int                `json:"wellness_score"`
	TotalCalories float64            `json:"total_calories"`
	WaterGlasses  int                `json:"water_glasses"`
	Percentages   map[string]float64 `json:"percentages"`
}

type TrendSummary struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Days     []TrendDay `json:"days"`
	AvgScore float64    `json:"avg_score"`
}

// Trends returns one row per calendar day in [from, to], gap-filling days
// without a stored log so charts stay continuous.
func (s *AnalyticsService) Trends(ctx context.Context, userID uint, from, to string) (*TrendSummary, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("to must be on/after from")
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	targets := ResolveTargets(user.LifeStage)

	rows, err := s.logs.ListLogsByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]models.DailyLog, len(rows))
	for _, r := range rows {
		idx[r.Date] = r
	}

	out := &TrendSummary{From: from, To: to}
	var scoreSum float64
	var scored int
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := TrendDay{Date: key, Percentages: map[string]float64{}}
		if log, ok := idx[key]; ok {
			day.HasData = true
			day.WellnessScore = log.WellnessScore
			day.TotalCalories = log.TotalCalories
			day.WaterGlasses = log.WaterGlasses
			for _, nutrient := range ScoredNutrients {
				day.Percentages[nutrient] = pct(log.TotalNutrients[nutrient], targets[nutrient])
			}
			scoreSum += float64(log.WellnessScore)
			scored++
		}
		out.Days = append(out.Days, day)
	}
	if scored > 0 {
		out.AvgScore = round2(scoreSum / float64(scored))
	}
	return out, nil
}

// WeeklyOverview is the Mon-Sun trend slice the home screen renders.
func (s *AnalyticsService) WeeklyOverview(ctx context.Context, userID uint, weekStart time.Time) (*TrendSummary, error) {
	from := startOfWeek(weekStart)
	to := from.AddDate(0, 0, 6)
	return s.Trends(ctx, userID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1)) // Monday
}
