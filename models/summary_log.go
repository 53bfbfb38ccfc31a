package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SummaryLog records one attempt to deliver a daily earnings summary.
type SummaryLog struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date         time.Time `gorm:"not null"` // local midnight of the summarized day
	Total        int64
	Count        int
	Message      string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	Channel      string `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt       time.Time

	gorm.Model
}

func (s *SummaryLog) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
