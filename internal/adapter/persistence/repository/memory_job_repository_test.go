package repository

import (
	"context"
	"testing"

	"surface_rejuvenators/internal/domain/entities"
)

func testJob(id string) entities.Job {
	return entities.Job{
		ID:       id,
		Customer: entities.Customer{ID: "cust-1", Name: "John Smith"},
		Status:   entities.JobStatusQuoted,
		Items: []entities.QuoteItem{
			{
				ID:       "item-1",
				Service:  entities.Service{ID: "svc-vinyl", Name: "Vinyl Siding", BasePrice: 0.28},
				Quantity: 1800,
				Tiers:    []entities.Tier{{ID: "tier-std", Name: "Standard", PriceMultiplier: 1.0}},
			},
		},
		JobSheet: entities.JobSheet{
			Notes: "call ahead",
			Plan: &entities.JobPlan{Steps: []entities.PlanStep{
				{
					Type:            entities.StepChemicalMix,
					Title:           "Mix house wash",
					IngredientUsage: map[string]float64{"chem-sh-12": 2},
				},
			}},
		},
	}
}

func TestMemoryJobRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository([]entities.Job{testJob("SR-1001")})

	t.Run("unknown id returns the zero value", func(t *testing.T) {
		job, err := repo.GetByID(ctx, "SR-9999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ID != "" {
			t.Errorf("got %q, want zero value", job.ID)
		}
	})

	t.Run("returned job is a copy", func(t *testing.T) {
		job, err := repo.GetByID(ctx, "SR-1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job.Items[0].Quantity = 99
		job.JobSheet.Plan.Steps[0].IngredientUsage["chem-sh-12"] = 500
		job.JobSheet.Notes = "scribbled over"

		stored, _ := repo.GetByID(ctx, "SR-1001")
		if stored.Items[0].Quantity != 1800 {
			t.Errorf("stored quantity changed to %v", stored.Items[0].Quantity)
		}
		if stored.JobSheet.Plan.Steps[0].IngredientUsage["chem-sh-12"] != 2 {
			t.Error("stored plan usage changed through the copy")
		}
		if stored.JobSheet.Notes != "call ahead" {
			t.Errorf("stored notes changed to %q", stored.JobSheet.Notes)
		}
	})
}

func TestMemoryJobRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository([]entities.Job{testJob("SR-1001")})

	t.Run("unknown id stores nothing", func(t *testing.T) {
		job, err := repo.Update(ctx, testJob("SR-2000"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ID != "" {
			t.Errorf("got %q, want zero value", job.ID)
		}
		if count, _ := repo.Count(ctx); count != 1 {
			t.Errorf("got count %d, want 1", count)
		}
	})

	t.Run("replaces the stored job wholesale", func(t *testing.T) {
		updated := testJob("SR-1001")
		updated.Status = entities.JobStatusScheduled
		updated.JobSheet.Plan = nil
		if _, err := repo.Update(ctx, updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := repo.GetByID(ctx, "SR-1001")
		if stored.Status != entities.JobStatusScheduled {
			t.Errorf("got status %s", stored.Status)
		}
		if stored.JobSheet.Plan != nil {
			t.Error("plan survived a wholesale replace")
		}
	})

	t.Run("caller's job stays detached after update", func(t *testing.T) {
		job := testJob("SR-1001")
		if _, err := repo.Update(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job.Items[0].Service.Name = "mutated"

		stored, _ := repo.GetByID(ctx, "SR-1001")
		if stored.Items[0].Service.Name != "Vinyl Siding" {
			t.Errorf("got service name %q", stored.Items[0].Service.Name)
		}
	})
}

func TestMemoryJobRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository([]entities.Job{testJob("SR-1002"), testJob("SR-1001")})
	if _, err := repo.Create(ctx, testJob("SR-1003")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jobs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}
	for i, want := range []string{"SR-1001", "SR-1002", "SR-1003"} {
		if jobs[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, jobs[i].ID, want)
		}
	}
}
