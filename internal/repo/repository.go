package repo

import (
	"context"

	"github.com/hamed0406/servicecheck/internal/domain"
)

// ResultStore holds the latest result per target for the serve mode.
// Snapshot semantics only; historical results are out of scope.
type ResultStore interface {
	Put(ctx context.Context, r domain.Result) error
	Latest(ctx context.Context) ([]domain.Result, error)
}
