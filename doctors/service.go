package doctors

import (
	"context"

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

func (s *service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Doctor, error) {
	return s.repo.List(ctx, filter, pagination, sorts)
}

func (s *service) Create(ctx context.Context, doctor Doctor) (*Doctor, error) {
	if doctor.OnDuty == nil {
		// doctors are on duty unless explicitly flagged otherwise
		doctor.OnDuty = pointer.FromAny(true)
	}

	created, err := s.repo.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(CollectionName).Inc()
	return created, nil
}

func (s *service) CountOnDuty(ctx context.Context) (int, error) {
	return s.repo.CountOnDuty(ctx)
}
