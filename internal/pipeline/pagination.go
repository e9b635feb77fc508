package pipeline

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// Pagination is a normalised page request. Page is 1-based.
type Pagination struct {
	Page  int64
	Limit int64
}

// NewPagination clamps page and limit into their valid ranges; non-positive
// values fall back to the defaults.
func NewPagination(page, limit int64) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total / limit).
func (p Pagination) TotalPages(total int64) int64 {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// facetStage counts the full result set and slices one page out of it in a
// single round trip.
func facetStage(p Pagination) bson.D {
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{
			bson.D{{Key: "$count", Value: "total"}},
		}},
		{Key: "items", Value: bson.A{
			bson.D{{Key: "$skip", Value: p.Skip()}},
			bson.D{{Key: "$limit", Value: p.Limit}},
		}},
	}}}
}

// FacetResult is the single document produced by facetStage.
type FacetResult[T any] struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Items []T `bson:"items"`
}

func (r *FacetResult[T]) Total() int64 {
	if len(r.Metadata) == 0 {
		return 0
	}
	return r.Metadata[0].Total
}
