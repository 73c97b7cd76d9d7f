package repository

import (
	"context"
	"sync"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase/interfaces"
)

type MemoryInventoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]entities.InventoryItem
}

var _ interfaces.IInventoryRepository = (*MemoryInventoryRepository)(nil)

// NewMemoryInventoryRepository builds a repository from the seed list and
// preserves its order for List.
func NewMemoryInventoryRepository(seed []entities.InventoryItem) *MemoryInventoryRepository {
	repo := &MemoryInventoryRepository{
		order: make([]string, 0, len(seed)),
		items: make(map[string]entities.InventoryItem, len(seed)),
	}
	for _, item := range seed {
		if _, exists := repo.items[item.ID]; !exists {
			repo.order = append(repo.order, item.ID)
		}
		repo.items[item.ID] = item
	}
	return repo
}

func (r *MemoryInventoryRepository) List(_ context.Context) ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]entities.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

// GetByID returns the zero value when the id is unknown; callers check
// ID == "".
func (r *MemoryInventoryRepository) GetByID(_ context.Context, id string) (entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

// Update only overwrites known items; a stale write cannot invent stock and
// returns the zero value instead.
func (r *MemoryInventoryRepository) Update(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[item.ID]; !exists {
		return entities.InventoryItem{}, nil
	}
	r.items[item.ID] = item
	return item, nil
}
