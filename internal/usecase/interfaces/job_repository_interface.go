package interfaces

import (
	"context"

	"surface_rejuvenators/internal/domain/entities"
)

// IJobRepository abstracts the in-memory job store.
//
// Conventions:
//   - GetByID and Update return a zero-value Job with a nil error when the
//     id is unknown; callers test ID == "".
//   - Update replaces the stored job wholesale (copy-on-write); there are no
//     partial updates.
//   - Jobs are never deleted.

type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, job entities.Job) (entities.Job, error)
	Count(ctx context.Context) (int, error)
}
