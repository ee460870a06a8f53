package doctors

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/store"
)

const (
	CollectionName = "doctors"
)

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "onDuty", Value: 1},
			},
			Options: options.Index().
				SetName("DoctorOnDuty"),
		},
		{
			Keys: bson.D{
				{Key: "department", Value: 1},
			},
			Options: options.Index().
				SetName("DoctorDepartment"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Doctor, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	doctor := &Doctor{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(doctor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return doctor, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Doctor, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(store.SortDocument(sorts))

	selector := bson.M{}
	if filter.Department != nil {
		selector["department"] = *filter.Department
	}
	if filter.OnDuty != nil {
		selector["onDuty"] = *filter.OnDuty
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing doctors: %w", err)
	}

	var doctors []*Doctor
	if err = cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("error decoding doctors list: %w", err)
	}

	return doctors, nil
}

func (r *repository) Create(ctx context.Context, doctor Doctor) (*Doctor, error) {
	doctor.Id = nil
	doctor.CreatedTime = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("error creating doctor: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	doctor.Id = &id
	r.logger.Infow("created doctor", "id", id.Hex())

	return &doctor, nil
}

func (r *repository) CountOnDuty(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"onDuty": true})
	if err != nil {
		return 0, fmt.Errorf("error counting on duty doctors: %w", err)
	}
	return int(count), nil
}
