package patients

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carewell-org/hospital/store"
)

var ErrNotFound = errors.New("patient not found")
var ErrDuplicate = errors.New("patient with the same medical record number already exists")

type Service interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Patient, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
}

type Patient struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   *string             `bson:"firstName,omitempty"`
	LastName    *string             `bson:"lastName,omitempty"`
	Email       *string             `bson:"email,omitempty"`
	Phone       *string             `bson:"phone,omitempty"`
	BirthDate   *string             `bson:"birthDate,omitempty"`
	BloodGroup  *string             `bson:"bloodGroup,omitempty"`
	Mrn         *string             `bson:"mrn,omitempty"`
	CreatedTime time.Time           `bson:"createdTime,omitempty"`
}

type Filter struct {
	Email *string
	Mrn   *string
}
