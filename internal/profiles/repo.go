package profiles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Put(ctx context.Context, p Profile) error
}
