package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Specialties []string `gorm:"serializer:json" json:"specialties"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
