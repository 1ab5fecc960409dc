package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment keeps date and time as fixed-width strings (YYYY-MM-DD, HH:MM)
// so range queries and ordering work lexicographically.
type Appointment struct {
	ID                 string            `json:"id"`
	CustomerCode       string            `json:"customer_code"`
	CustomerName       string            `json:"customer_name"`
	CustomerPhone      string            `json:"customer_phone"`
	Date               string            `json:"date"`
	Time               string            `json:"time"`
	Notes              string            `json:"notes"`
	Status             AppointmentStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
}

// CreateAppointmentRequest represents the request body for scheduling an appointment
type CreateAppointmentRequest struct {
	CustomerCode  string `json:"customer_code"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
}

// CancelAppointmentRequest represents the request body for cancelling an appointment
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}
