package stores

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/themisatsal/hilla-mobile-sub000/models"
)

// GormStore is the production backend. It expects a *gorm.DB opened with
// TranslateError enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ---- users ----

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// ---- meals ----

func (s *GormStore) CreateMeal(ctx context.Context, meal *models.Meal) error {
	return s.db.WithContext(ctx).Create(meal).Error
}

func (s *GormStore) FindMealByID(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *GormStore) FindMealsByUserAndDate(ctx context.Context, userID uint, date string) ([]models.Meal, error) {
	start, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, err
	}
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *GormStore) UpdateMeal(ctx context.Context, meal *models.Meal) error {
	return s.db.WithContext(ctx).Save(meal).Error
}

func (s *GormStore) DeleteMeal(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- daily logs ----

func (s *GormStore) FindLogByUserAndDate(ctx context.Context, userID uint, date string) (*models.DailyLog, error) {
	var log models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (s *GormStore) CreateLog(ctx context.Context, log *models.DailyLog) error {
	err := s.db.WithContext(ctx).Create(log).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (s *GormStore) UpdateLog(ctx context.Context, log *models.DailyLog) error {
	res := s.db.WithContext(ctx).Save(log)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteLog(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.DailyLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListLogsByUserAndDateRange(ctx context.Context, userID uint, from, to string) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}
