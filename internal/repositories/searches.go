package repositories

import (
	"context"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrSearchNotFound = errors.New("saved search not found")

type Searches struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *Searches {
	return &Searches{db: db}
}

func (repo *Searches) Add(ctx context.Context, search models.SavedSearch) error {
	return repo.db.WithContext(ctx).Create(&search).Error
}

func (repo *Searches) GetAll(ctx context.Context) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&searches).Error; err != nil {
		return nil, err
	}
	return searches, nil
}

func (repo *Searches) GetAlertEnabled(ctx context.Context) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := repo.db.WithContext(ctx).Where("is_alert_enabled = ?", true).
		Order("created_at").Find(&searches).Error; err != nil {
		return nil, err
	}
	return searches, nil
}

func (repo *Searches) GetByID(ctx context.Context, id string) (*models.SavedSearch, error) {
	var search models.SavedSearch
	if err := repo.db.WithContext(ctx).First(&search, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSearchNotFound
		}
		return nil, err
	}
	return &search, nil
}

func (repo *Searches) SetAlertEnabled(ctx context.Context, id string, enabled bool) error {
	res := repo.db.WithContext(ctx).Model(&models.SavedSearch{}).Where("id = ?", id).
		Update("is_alert_enabled", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSearchNotFound
	}
	return nil
}

// Remove deletes the search together with its alert history.
func (repo *Searches) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.SavedSearch{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSearchNotFound
		}
		return tx.Delete(&models.AlertedJob{}, "search_id = ?", id).Error
	})
}
