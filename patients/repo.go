package patients

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
	CollectionName = "patients"
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
				{Key: "mrn", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniquePatientMrn").
				SetPartialFilterExpression(bson.D{{Key: "mrn", Value: bson.M{"$exists": true}}}),
		},
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetName("PatientEmail").
				SetPartialFilterExpression(bson.D{{Key: "email", Value: bson.M{"$exists": true}}}),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Patient, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	patient := &Patient{}
	err = r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Patient, error) {
	opts := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset)).
		SetSort(store.SortDocument(sorts))

	selector := bson.M{}
	if filter.Email != nil {
		selector["email"] = *filter.Email
	}
	if filter.Mrn != nil {
		selector["mrn"] = *filter.Mrn
	}

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	var patients []*Patient
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return patients, nil
}

func (r *repository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	patient.Id = nil
	patient.CreatedTime = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, patient)
	if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	patient.Id = &id
	r.logger.Infow("created patient", "id", id.Hex())

	return &patient, nil
}
