// Package repository holds the MongoDB access for every entity. Methods
// return ErrNotFound for missing single documents and leave ownership and
// validation rules to the services.
package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// findErr normalises single-document lookup errors.
func findErr(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return errors.WithMessage(err, what)
}

func writeErr(err error, what string) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return errors.WithMessage(err, what)
}

// aggregateAll runs pipe and decodes every result. It never returns a nil
// slice so empty lists encode as [].
func aggregateAll[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline) ([]T, error) {
	cur, err := col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, errors.WithMessagef(err, "aggregate %s", col.Name())
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.WithMessagef(err, "decode %s", col.Name())
	}
	return out, nil
}

// aggregatePage runs a pipeline ending in a $facet stage and returns the
// page items with the total match count.
func aggregatePage[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline) ([]T, int64, error) {
	rows, err := aggregateAll[pipeline.FacetResult[T]](ctx, col, pipe)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 || rows[0].Items == nil {
		return []T{}, 0, nil
	}
	return rows[0].Items, rows[0].Total(), nil
}

// exists reports whether any document matches filter.
func exists(ctx context.Context, col *mongo.Collection, filter any) (bool, error) {
	n, err := col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.WithMessagef(err, "count %s", col.Name())
	}
	return n > 0, nil
}
