package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRecord is one logged service. Records are immutable after creation:
// there is no update path, only owner-scoped deletion.
type ServiceRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name      string    `gorm:"not null"`
	Price     int64     `gorm:"not null"` // CLP, no minor unit
	Timestamp time.Time `gorm:"index;not null"`
}

func (r *ServiceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
