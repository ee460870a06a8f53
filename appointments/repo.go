package appointments

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
	CollectionName = "appointments"
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
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("AppointmentDate"),
		},
		{
			Keys: bson.D{
				{Key: "bookingCode", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueBookingCode").
				SetPartialFilterExpression(bson.D{{Key: "bookingCode", Value: bson.M{"$exists": true}}}),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("AppointmentStatusDate"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Appointment, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	appointment := &Appointment{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(appointment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return appointment, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Appointment, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(store.SortDocument(sorts))

	selector := bson.M{}
	if filter.Date != nil {
		selector["date"] = *filter.Date
	}
	if filter.Status != nil {
		selector["status"] = *filter.Status
	}
	if filter.Department != nil {
		selector["department"] = *filter.Department
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}

	var appointments []*Appointment
	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments list: %w", err)
	}

	return appointments, nil
}

func (r *repository) Create(ctx context.Context, appointment Appointment) (*Appointment, error) {
	appointment.Id = nil
	appointment.CreatedTime = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	appointment.Id = &id
	r.logger.Infow("created appointment", "id", id.Hex())

	return &appointment, nil
}

func (r *repository) CountByDate(ctx context.Context, date string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments on %s: %w", date, err)
	}
	return int(count), nil
}
