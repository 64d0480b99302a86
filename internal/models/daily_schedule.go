package models

import "time"

// DailySchedule declares that a salon operates on a given date with
// NumWorkers staff. No row for a date means the salon is closed that day.
type DailySchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"not null;uniqueIndex:uniq_salon_date" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// YYYY-MM-DD
	Date string `gorm:"size:10;not null;uniqueIndex:uniq_salon_date" json:"date"`

	NumWorkers int `gorm:"not null;default:1" json:"num_workers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
