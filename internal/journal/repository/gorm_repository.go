package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mirror-backend/internal/journal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates the users and logs tables if they are missing
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Log{})
}

// gormUserRepository implements UserRepository using GORM
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based UserRepository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return findUser(r.db.WithContext(ctx), id)
}

func findUser(db *gorm.DB, id int64) (*domain.User, error) {
	var user domain.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// gormLogRepository implements LogRepository using GORM
type gormLogRepository struct {
	db *gorm.DB
}

// NewGormLogRepository creates a new GORM-based LogRepository
func NewGormLogRepository(db *gorm.DB) LogRepository {
	return &gormLogRepository{db: db}
}

func (r *gormLogRepository) CreateWithUser(ctx context.Context, owner *domain.User, log *domain.Log) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findUser(tx, owner.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			// A concurrent first submission for the same id may win the insert
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(owner)
			if res.Error != nil {
				return fmt.Errorf("provision user %d: %w", owner.ID, res.Error)
			}
			created = res.RowsAffected == 1
		}

		log.UserID = owner.ID
		if log.CreatedAt.IsZero() {
			log.CreatedAt = time.Now().UTC()
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *gormLogRepository) UpdateEnrichment(ctx context.Context, id int64, summary, sentiment *string) error {
	res := r.db.WithContext(ctx).Model(&domain.Log{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"summary":   summary,
			"sentiment": sentiment,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("log %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *gormLogRepository) FindRecentByUserID(ctx context.Context, userID int64, limit int) ([]*domain.Log, error) {
	var logs []*domain.Log
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
