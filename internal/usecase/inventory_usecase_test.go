package usecase

import (
	"context"
	"errors"
	"testing"

	"surface_rejuvenators/internal/domain/entities"
	mock_interfaces "surface_rejuvenators/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_LowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewInventoryUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.InventoryItem{
		{ID: "chem-sh-12", CurrentStock: 50, Threshold: 10},
		{ID: "chem-eco-surf", CurrentStock: 2, Threshold: 3},
		// Stock exactly at the threshold is not low yet.
		{ID: "chem-degreaser", CurrentStock: 5, Threshold: 5},
	}, nil)

	low, err := uc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("got %d items, want 1", len(low))
	}
	if low[0].ID != "chem-eco-surf" {
		t.Errorf("got %s", low[0].ID)
	}
}

func TestInventoryUseCase_AdjustStock(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewInventoryUseCase(mock_interfaces.NewMockIInventoryRepository(ctrl))

		if _, err := uc.AdjustStock(context.Background(), "  ", 5); !errors.Is(err, ErrInvalidInventoryID) {
			t.Errorf("got %v, want ErrInvalidInventoryID", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chem-unknown").Return(entities.InventoryItem{}, nil)
		if _, err := uc.AdjustStock(context.Background(), "chem-unknown", 5); !errors.Is(err, ErrInventoryItemNotFound) {
			t.Errorf("got %v, want ErrInventoryItemNotFound", err)
		}
	})

	t.Run("positive delta restocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chem-sh-12").Return(entities.InventoryItem{ID: "chem-sh-12", CurrentStock: 10}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryItem{})).DoAndReturn(
			func(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
				return item, nil
			})

		item, err := uc.AdjustStock(context.Background(), "chem-sh-12", 40)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 50 {
			t.Errorf("got stock %.2f, want 50", item.CurrentStock)
		}
	})

	t.Run("manual correction floors at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewInventoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chem-sh-12").Return(entities.InventoryItem{ID: "chem-sh-12", CurrentStock: 3}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryItem{})).DoAndReturn(
			func(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
				return item, nil
			})

		item, err := uc.AdjustStock(context.Background(), "chem-sh-12", -10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 0 {
			t.Errorf("got stock %.2f, want 0", item.CurrentStock)
		}
	})
}

func TestInventoryUseCase_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewInventoryUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "chem-sh-12").Return(entities.InventoryItem{ID: "chem-sh-12", CurrentStock: 2}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryItem{})).DoAndReturn(
		func(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
			return item, nil
		})

	// Over-consumption is visible, not clamped.
	item, err := uc.Consume(context.Background(), "chem-sh-12", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CurrentStock != -3 {
		t.Errorf("got stock %.2f, want -3", item.CurrentStock)
	}
}
