package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Alerts struct {
	db *gorm.DB
}

func NewAlertsRepository(db *gorm.DB) *Alerts {
	return &Alerts{db: db}
}

func (a Alerts) WasAlerted(ctx context.Context, searchID, jobID string) (bool, error) {
	var alerted models.AlertedJob
	err := a.db.WithContext(ctx).
		Where("search_id = ? AND job_id = ?", searchID, jobID).
		First(&alerted).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a Alerts) RecordAlerted(ctx context.Context, searchID, jobID string) error {
	return a.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.AlertedJob{
		SearchID:  searchID,
		JobID:     jobID,
		CreatedAt: time.Now(),
	}).Error
}

func (a Alerts) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := a.db.WithContext(ctx).Delete(&models.AlertedJob{}, "created_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}
