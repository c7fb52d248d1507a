package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Data is the sqlite-backed key-value store for client state.
type Data struct {
	db *gorm.DB
}

func NewDataRepository(db *gorm.DB) *Data {
	return &Data{db: db}
}

func (repo *Data) Save(ctx context.Context, key string, data []byte) error {
	return repo.db.WithContext(ctx).Save(&models.KeyValue{
		Key:       key,
		Value:     data,
		UpdatedAt: time.Now(),
	}).Error
}

// Load returns nil without error when the key was never written.
func (repo *Data) Load(ctx context.Context, key string) ([]byte, error) {
	data := &models.KeyValue{}
	err := repo.db.WithContext(ctx).First(data, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return data.Value, nil
}

func (repo *Data) Remove(ctx context.Context, key string) error {
	return repo.db.WithContext(ctx).Delete(&models.KeyValue{}, "key = ?", key).Error
}
