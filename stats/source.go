package stats

import (
	"context"

	"github.com/carewell-org/hospital/appointments"
	"github.com/carewell-org/hospital/doctors"
)

// NewSource adapts the doctors and appointments services into the count
// queries the synthesizer consumes.
func NewSource(doctors doctors.Service, appointments appointments.Service) (Source, error) {
	return &source{
		doctors:      doctors,
		appointments: appointments,
	}, nil
}

type source struct {
	doctors      doctors.Service
	appointments appointments.Service
}

func (s *source) DoctorsOnDuty(ctx context.Context) (int, error) {
	return s.doctors.CountOnDuty(ctx)
}

func (s *source) AppointmentsOn(ctx context.Context, date string) (int, error) {
	return s.appointments.CountByDate(ctx, date)
}
