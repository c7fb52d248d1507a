package models

import (
	"time"

	"github.com/google/uuid"
)

type SavedSearch struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" validate:"required"`
	Filters        JobFilter `json:"filters" gorm:"serializer:json"`
	IsAlertEnabled bool      `json:"is_alert_enabled"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSavedSearch(name string, filters JobFilter, alertEnabled bool) SavedSearch {
	return SavedSearch{
		ID:             uuid.NewString(),
		Name:           name,
		Filters:        filters,
		IsAlertEnabled: alertEnabled,
		CreatedAt:      time.Now().UTC(),
	}
}

// AlertedJob records that a saved search already raised an alert for a job.
type AlertedJob struct {
	SearchID  string `gorm:"primaryKey"`
	JobID     string `gorm:"primaryKey"`
	CreatedAt time.Time
}

// KeyValue is a row of the durable client-state side-store.
type KeyValue struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}
