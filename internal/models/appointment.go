package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"clientName"`
	Phone      string `gorm:"size:20;not null" json:"phone"`

	// Appointments are kept after cancellation, so both parents stay
	// referenced for as long as any booking row exists. Handlers that
	// delete a parent either refuse or remove the rows first.
	BarberID string `gorm:"type:uuid;index;not null" json:"barberId"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID string  `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// EndAt is snapshotted from the service duration at booking time,
	// so later duration edits never shift existing intervals.
	StartAt time.Time `gorm:"not null" json:"date"`
	EndAt   time.Time `gorm:"not null" json:"endAt"`

	IsActive    bool       `gorm:"default:true" json:"isActive"`
	CancelledAt *time.Time `json:"deletedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
