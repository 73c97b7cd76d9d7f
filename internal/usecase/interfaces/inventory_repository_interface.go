package interfaces

import (
	"context"

	"surface_rejuvenators/internal/domain/entities"
)

// IInventoryRepository abstracts the in-memory stock store. GetByID and
// Update follow the same zero-value-on-missing convention as the job
// repository.

type IInventoryRepository interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error)
}
