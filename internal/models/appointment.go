package models

import "time"

// Appointment is immutable once created; capacity is enforced against the
// DailySchedule of its date, not stored on the row.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"not null;index:idx_salon_start" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	StartTime time.Time `gorm:"not null;index:idx_salon_start" json:"start_time"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}
