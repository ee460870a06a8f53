package appointments

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carewell-org/hospital/store"
)

var ErrNotFound = errors.New("appointment not found")
var ErrInvalidDate = errors.New("appointment date must be a valid YYYY-MM-DD calendar date")
var ErrInvalidStatus = errors.New("invalid appointment status")

const (
	StatusRequested = "requested"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DateLayout is the calendar date format appointments are booked with.
const DateLayout = "2006-01-02"

type Service interface {
	Get(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination, sorts []*store.Sort) ([]*Appointment, error)
	Create(ctx context.Context, appointment Appointment) (*Appointment, error)
	CountByDate(ctx context.Context, date string) (int, error)
}

type Appointment struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	Name        *string             `bson:"name,omitempty"`
	Email       *string             `bson:"email,omitempty"`
	Phone       *string             `bson:"phone,omitempty"`
	Department  *string             `bson:"department,omitempty"`
	Date        *string             `bson:"date,omitempty"`
	Notes       *string             `bson:"notes,omitempty"`
	Status      *string             `bson:"status,omitempty"`
	BookingCode *string             `bson:"bookingCode,omitempty"`
	CreatedFor  *time.Time          `bson:"createdFor,omitempty"`
	CreatedTime time.Time           `bson:"createdTime,omitempty"`
}

type Filter struct {
	Date       *string
	Status     *string
	Department *string
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
