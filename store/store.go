package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

type Pagination struct {
	Offset int
	Limit  int
}

func DefaultPagination() Pagination {
	return Pagination{
		Offset: 0,
		Limit:  20,
	}
}

func (p Pagination) WithLimit(limit int) Pagination {
	p.Limit = limit
	return p
}

type Sort struct {
	Attribute string
	Ascending bool
}

func (s *Sort) Order() int {
	if s.Ascending {
		return 1
	}
	return -1
}

// DefaultSort orders documents by creation time, newest first.
func DefaultSort() []*Sort {
	return []*Sort{{Attribute: "createdTime", Ascending: false}}
}

func SortDocument(sorts []*Sort) bson.D {
	if len(sorts) == 0 {
		sorts = DefaultSort()
	}

	document := bson.D{}
	for _, sort := range sorts {
		document = append(document, bson.E{Key: sort.Attribute, Value: sort.Order()})
	}
	return document
}

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
