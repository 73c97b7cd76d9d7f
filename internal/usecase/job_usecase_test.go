package usecase

import (
	"context"
	"errors"
	"testing"

	"surface_rejuvenators/internal/domain/entities"
	mock_interfaces "surface_rejuvenators/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testQuoteItem(id string, min, max float64) entities.QuoteItem {
	return entities.QuoteItem{
		ID: id,
		Service: entities.Service{
			ID: "svc-test", Name: "Test Wash", BasePrice: 1,
			Tiers: []entities.Tier{{ID: "tier-x", PriceMultiplier: 1}},
		},
		Quantity:   100,
		Tiers:      []entities.Tier{{ID: "tier-x", PriceMultiplier: 1}},
		PriceRange: entities.PriceRange{Min: min, Max: max},
	}
}

func TestJobUseCase_CreateQuote(t *testing.T) {
	customer := entities.Customer{Name: "John Smith", Address: "123 Oak St"}

	t.Run("rejects missing customer name or address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost/quote")

		if _, err := uc.CreateQuote(context.Background(), entities.Customer{Name: "  "}, []entities.QuoteItem{testQuoteItem("i1", 1, 1)}); !errors.Is(err, ErrInvalidCustomer) {
			t.Errorf("got %v, want ErrInvalidCustomer", err)
		}
	})

	t.Run("rejects an empty quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost/quote")

		if _, err := uc.CreateQuote(context.Background(), customer, nil); !errors.Is(err, ErrNoQuoteItems) {
			t.Errorf("got %v, want ErrNoQuoteItems", err)
		}
	})

	t.Run("derives the job id from the current count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost/quote")

		repo.EXPECT().Count(gomock.Any()).Return(2, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if job.ID != "SR-1003" {
					t.Errorf("got id %s, want SR-1003", job.ID)
				}
				if job.Status != entities.JobStatusQuoted {
					t.Errorf("got status %s, want QUOTED", job.Status)
				}
				if job.QuoteTotalRange.Min != 300 || job.QuoteTotalRange.Max != 450 {
					t.Errorf("got total {%.2f, %.2f}", job.QuoteTotalRange.Min, job.QuoteTotalRange.Max)
				}
				return job, nil
			})

		items := []entities.QuoteItem{testQuoteItem("i1", 100, 150), testQuoteItem("i2", 200, 300)}
		job, err := uc.CreateQuote(context.Background(), customer, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Customer.ID == "" {
			t.Error("expected a generated customer id")
		}
	})

	t.Run("fills in missing item ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost/quote")

		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if job.Items[0].ID == "" {
					t.Error("item id was not generated")
				}
				return job, nil
			})

		item := testQuoteItem("", 10, 10)
		if _, err := uc.CreateQuote(context.Background(), customer, []entities.QuoteItem{item}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		if _, err := uc.GetByID(context.Background(), "   "); !errors.Is(err, ErrInvalidJobID) {
			t.Errorf("got %v, want ErrInvalidJobID", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-9999").Return(entities.Job{}, nil)
		if _, err := uc.GetByID(context.Background(), "SR-9999"); !errors.Is(err, ErrJobNotFound) {
			t.Errorf("got %v, want ErrJobNotFound", err)
		}
	})
}

func TestJobUseCase_UpdateStatus(t *testing.T) {
	t.Run("rejects unknown status values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		if _, err := uc.UpdateStatus(context.Background(), "SR-1001", "SHIPPED"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("got %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("any valid status overwrites the current one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(entities.Job{ID: "SR-1001", Status: entities.JobStatusCompleted}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if job.Status != entities.JobStatusLead {
					t.Errorf("got status %s, want LEAD", job.Status)
				}
				return job, nil
			})

		if _, err := uc.UpdateStatus(context.Background(), "SR-1001", entities.JobStatusLead); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_SendQuote(t *testing.T) {
	t.Run("only a quoted job can be sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost:8080/quote")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(entities.Job{ID: "SR-1001", Status: entities.JobStatusScheduled}, nil)
		if _, err := uc.SendQuote(context.Background(), "SR-1001"); !errors.Is(err, ErrQuoteNotSendable) {
			t.Errorf("got %v, want ErrQuoteNotSendable", err)
		}
	})

	t.Run("sets the public link and awaiting status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "http://localhost:8080/quote/")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(entities.Job{ID: "SR-1001", Status: entities.JobStatusQuoted}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if job.Status != entities.JobStatusAwaitingApproval {
					t.Errorf("got status %s", job.Status)
				}
				if job.PublicQuoteURL != "http://localhost:8080/quote?quoteId=SR-1001" {
					t.Errorf("got url %q", job.PublicQuoteURL)
				}
				return job, nil
			})

		if _, err := uc.SendQuote(context.Background(), "SR-1001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Items(t *testing.T) {
	// Fresh value per subtest: item edits mutate the slice in place.
	base := func() entities.Job {
		return entities.Job{
			ID:     "SR-1001",
			Status: entities.JobStatusQuoted,
			Items:  []entities.QuoteItem{testQuoteItem("i1", 100, 100), testQuoteItem("i2", 50, 80)},
		}
	}

	t.Run("add recomputes the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(base(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if len(job.Items) != 3 {
					t.Errorf("got %d items", len(job.Items))
				}
				if job.QuoteTotalRange.Min != 175 || job.QuoteTotalRange.Max != 210 {
					t.Errorf("got total {%.2f, %.2f}", job.QuoteTotalRange.Min, job.QuoteTotalRange.Max)
				}
				return job, nil
			})

		if _, err := uc.AddItem(context.Background(), "SR-1001", testQuoteItem("i3", 25, 30)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("replace keeps position and id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(base(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if job.Items[0].ID != "i1" {
					t.Errorf("replacement moved or renamed the item: %q", job.Items[0].ID)
				}
				if job.Items[0].PriceRange.Min != 999 {
					t.Errorf("got %v", job.Items[0].PriceRange)
				}
				return job, nil
			})

		if _, err := uc.ReplaceItem(context.Background(), "SR-1001", "i1", testQuoteItem("ignored", 999, 999)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(base(), nil)
		if _, err := uc.RemoveItem(context.Background(), "SR-1001", "i9"); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("got %v, want ErrItemNotFound", err)
		}
	})

	t.Run("remove recomputes the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, "")

		repo.EXPECT().GetByID(gomock.Any(), "SR-1001").Return(base(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, job entities.Job) (entities.Job, error) {
				if len(job.Items) != 1 {
					t.Errorf("got %d items", len(job.Items))
				}
				if job.QuoteTotalRange.Min != 50 || job.QuoteTotalRange.Max != 80 {
					t.Errorf("got total {%.2f, %.2f}", job.QuoteTotalRange.Min, job.QuoteTotalRange.Max)
				}
				return job, nil
			})

		if _, err := uc.RemoveItem(context.Background(), "SR-1001", "i1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
