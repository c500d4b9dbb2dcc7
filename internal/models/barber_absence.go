package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BarberAbsence struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index;not null" json:"barberId"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartAt time.Time `gorm:"not null" json:"startAt"`
	EndAt   time.Time `gorm:"not null" json:"endAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *BarberAbsence) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
