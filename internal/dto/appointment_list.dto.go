package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	StartTime     time.Time `json:"start_time"`
	CreatedAt     time.Time `json:"created_at"`
}
