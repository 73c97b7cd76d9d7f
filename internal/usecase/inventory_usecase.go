package usecase

import (
	"context"
	"errors"
	"strings"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidInventoryID    = errors.New("invalid inventory item id")
)

// IInventoryUseCase exposes stock operations. AdjustStock is the manual
// admin correction (floored at zero); Consume is the job-completion
// decrement, which may drive stock negative to show an over-consumption
// rather than hide it.

type IInventoryUseCase interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	LowStock(ctx context.Context) ([]entities.InventoryItem, error)
	AdjustStock(ctx context.Context, id string, delta float64) (entities.InventoryItem, error)
	Consume(ctx context.Context, id string, amount float64) (entities.InventoryItem, error)
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) List(ctx context.Context) ([]entities.InventoryItem, error) {
	return u.repo.List(ctx)
}

func (u *InventoryUseCase) LowStock(ctx context.Context) ([]entities.InventoryItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var low []entities.InventoryItem
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (u *InventoryUseCase) AdjustStock(ctx context.Context, id string, delta float64) (entities.InventoryItem, error) {
	item, err := u.getItem(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	item.CurrentStock += delta
	if item.CurrentStock < 0 {
		item.CurrentStock = 0
	}
	return u.repo.Update(ctx, item)
}

func (u *InventoryUseCase) Consume(ctx context.Context, id string, amount float64) (entities.InventoryItem, error) {
	item, err := u.getItem(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	item.CurrentStock -= amount
	return u.repo.Update(ctx, item)
}

func (u *InventoryUseCase) getItem(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == "" {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}
	return item, nil
}
