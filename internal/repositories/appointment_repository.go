package repositories

import (
	"context"
	"sort"
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*models.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		appointments: make(map[string]*models.Appointment),
	}
}

func (r *AppointmentRepository) Create(_ context.Context, a *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = uuid.NewString()
	a.Status = models.AppointmentScheduled
	a.CreatedAt = timeutil.Now()

	cp := *a
	r.appointments[a.ID] = &cp

	return a, nil
}

// Cancel flips an appointment to cancelled; missing or already-cancelled ids
// are silent no-ops.
func (r *AppointmentRepository) Cancel(_ context.Context, id, reason string) (*models.Appointment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok || a.Status == models.AppointmentCancelled {
		return nil, false
	}

	now := timeutil.Now()
	a.Status = models.AppointmentCancelled
	a.CancellationReason = reason
	a.CancelledAt = &now

	cp := *a
	return &cp, true
}

func (r *AppointmentRepository) List(_ context.Context) ([]*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		cp := *a
		out = append(out, &cp)
	}
	sortAppointments(out)
	return out, nil
}

func (r *AppointmentRepository) ListActive(ctx context.Context) ([]*models.Appointment, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Appointment, 0, len(all))
	for _, a := range all {
		if a.Status == models.AppointmentScheduled {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListToday returns scheduled appointments for the current date.
func (r *AppointmentRepository) ListToday(ctx context.Context) ([]*models.Appointment, error) {
	today := timeutil.DateString(timeutil.Now())
	active, _ := r.ListActive(ctx)

	out := make([]*models.Appointment, 0)
	for _, a := range active {
		if a.Date == today {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListUpcoming returns scheduled appointments from today onward, ordered by
// date then time.
func (r *AppointmentRepository) ListUpcoming(ctx context.Context) ([]*models.Appointment, error) {
	today := timeutil.DateString(timeutil.Now())
	active, _ := r.ListActive(ctx)

	out := make([]*models.Appointment, 0)
	for _, a := range active {
		if a.Date >= today {
			out = append(out, a)
		}
	}
	return out, nil
}

func sortAppointments(appointments []*models.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
}
