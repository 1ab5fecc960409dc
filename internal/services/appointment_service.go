package services

import (
	"context"
	"fmt"

	"salon-backend/internal/events"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
	"salon-backend/internal/timeutil"
)

// AppointmentService schedules and cancels salon appointments.
type AppointmentService struct {
	repo *repositories.AppointmentRepository
	hub  *events.Hub
}

func NewAppointmentService(repo *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

func (s *AppointmentService) publish(eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Publish(eventType, payload)
	}
}

func (s *AppointmentService) Schedule(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	if _, err := timeutil.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidDateRange, req.Date)
	}
	if _, err := timeutil.ParseClock(req.Time); err != nil {
		return nil, fmt.Errorf("%w: time %q", ErrInvalidDateRange, req.Time)
	}

	appointment := &models.Appointment{
		CustomerCode:  req.CustomerCode,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	}
	appointment, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	s.publish("appointment.scheduled", appointment)
	return appointment, nil
}

// Cancel marks an appointment cancelled. Missing or already-cancelled
// appointments are a silent no-op.
func (s *AppointmentService) Cancel(ctx context.Context, id, reason string) error {
	cancelled, ok := s.repo.Cancel(ctx, id, reason)
	if ok {
		s.publish("appointment.cancelled", cancelled)
	}
	return nil
}

func (s *AppointmentService) List(ctx context.Context) ([]*models.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) ListActive(ctx context.Context) ([]*models.Appointment, error) {
	return s.repo.ListActive(ctx)
}

func (s *AppointmentService) ListToday(ctx context.Context) ([]*models.Appointment, error) {
	return s.repo.ListToday(ctx)
}

func (s *AppointmentService) ListUpcoming(ctx context.Context) ([]*models.Appointment, error) {
	return s.repo.ListUpcoming(ctx)
}
