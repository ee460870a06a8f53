package doctors

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carewell-org/hospital/store"
)

var ErrNotFound = errors.New("doctor not found")

type Service interface {
	Get(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Doctor, error)
	Create(ctx context.Context, doctor Doctor) (*Doctor, error)
	CountOnDuty(ctx context.Context) (int, error)
}

type Doctor struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   *string             `bson:"firstName,omitempty"`
	LastName    *string             `bson:"lastName,omitempty"`
	Department  *string             `bson:"department,omitempty"`
	Email       *string             `bson:"email,omitempty"`
	Phone       *string             `bson:"phone,omitempty"`
	OnDuty      *bool               `bson:"onDuty,omitempty"`
	CreatedTime time.Time           `bson:"createdTime,omitempty"`
}

type Filter struct {
	Department *string
	OnDuty     *bool
}
