package models

import "time"

type Salon struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	// HH:MM wall-clock times in the configured app timezone.
	OpeningTime string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:5;default:'21:00'" json:"closing_time"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Salon) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
