package patients

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/metrics"
	"github.com/carewell-org/hospital/pointer"
	"github.com/carewell-org/hospital/store"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Patient, error) {
	return s.repo.List(ctx, filter, pagination, sorts)
}

func (s *service) Create(ctx context.Context, patient Patient) (*Patient, error) {
	if patient.Mrn == nil {
		// medical record numbers are always server-assigned
		patient.Mrn = pointer.FromAny(uuid.NewString())
	}

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(CollectionName).Inc()
	return created, nil
}
