package appointments

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/carewell-org/hospital/metrics"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
)

type service struct {
	repo      Repository
	generator BookingCodeGenerator
	logger    *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, generator BookingCodeGenerator, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Appointment, error) {
	return s.repo.List(ctx, filter, pagination, sorts)
}

func (s *service) Create(ctx context.Context, appointment Appointment) (*Appointment, error) {
	if appointment.Date == nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, *appointment.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if appointment.Status == nil {
		appointment.Status = pointer.FromAny(StatusRequested)
	} else if !IsValidStatus(*appointment.Status) {
		return nil, ErrInvalidStatus
	}
	if appointment.BookingCode == nil {
		appointment.BookingCode = pointer.FromAny(s.generator.Generate())
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(CollectionName).Inc()
	return created, nil
}

func (s *service) CountByDate(ctx context.Context, date string) (int, error) {
	return s.repo.CountByDate(ctx, date)
}
