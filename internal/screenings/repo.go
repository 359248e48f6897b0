package screenings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("batch not found")

type Repository interface {
	Put(ctx context.Context, b Batch) error
	Get(ctx context.Context, id string) (Batch, error)
}
