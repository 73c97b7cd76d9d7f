// Package repository provides the in-memory persistence layer. Jobs and
// inventory live for the lifetime of the process; every read and write
// works on deep copies so callers can never mutate stored state without
// going through Update.
package repository

import (
	"context"
	"sort"
	"sync"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase/interfaces"
)

type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]entities.Job
}

var _ interfaces.IJobRepository = (*MemoryJobRepository)(nil)

// NewMemoryJobRepository builds a repository pre-populated with the given
// jobs. Seed entries with duplicate ids overwrite earlier ones.
func NewMemoryJobRepository(seed []entities.Job) *MemoryJobRepository {
	repo := &MemoryJobRepository{jobs: make(map[string]entities.Job, len(seed))}
	for _, job := range seed {
		repo.jobs[job.ID] = cloneJob(job)
	}
	return repo
}

func (r *MemoryJobRepository) Create(_ context.Context, job entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = cloneJob(job)
	return cloneJob(job), nil
}

// GetByID returns the zero value when no job with the given id exists;
// callers check ID == "".
func (r *MemoryJobRepository) GetByID(_ context.Context, id string) (entities.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return entities.Job{}, nil
	}
	return cloneJob(job), nil
}

// List returns all jobs ordered by id, which for SR-<n> ids is creation
// order until the counter passes SR-9999.
func (r *MemoryJobRepository) List(_ context.Context) ([]entities.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	jobs := make([]entities.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, cloneJob(job))
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs, nil
}

// Update replaces a stored job wholesale. Updating an unknown id returns the
// zero value without storing anything.
func (r *MemoryJobRepository) Update(_ context.Context, job entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return entities.Job{}, nil
	}
	r.jobs[job.ID] = cloneJob(job)
	return cloneJob(job), nil
}

func (r *MemoryJobRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs), nil
}

func cloneJob(job entities.Job) entities.Job {
	out := job
	out.Items = make([]entities.QuoteItem, len(job.Items))
	for i, item := range job.Items {
		out.Items[i] = cloneItem(item)
	}
	out.JobSheet = cloneSheet(job.JobSheet)
	if job.CustomerSelections != nil {
		out.CustomerSelections = make(entities.CustomerSelections, len(job.CustomerSelections))
		for id, sel := range job.CustomerSelections {
			sel.AddOnIDs = append([]string(nil), sel.AddOnIDs...)
			out.CustomerSelections[id] = sel
		}
	}
	return out
}

func cloneItem(item entities.QuoteItem) entities.QuoteItem {
	out := item
	out.Tiers = append([]entities.Tier(nil), item.Tiers...)
	out.AddOns = append([]entities.AddOn(nil), item.AddOns...)
	out.Service.Tiers = append([]entities.Tier(nil), item.Service.Tiers...)
	out.Service.AddOns = append([]entities.AddOn(nil), item.Service.AddOns...)
	return out
}

func cloneSheet(sheet entities.JobSheet) entities.JobSheet {
	out := sheet
	out.BeforePhotos = append([]string(nil), sheet.BeforePhotos...)
	out.AfterPhotos = append([]string(nil), sheet.AfterPhotos...)
	out.ChemicalUsage = append([]entities.ChemicalUsage(nil), sheet.ChemicalUsage...)
	if sheet.Plan != nil {
		plan := entities.JobPlan{Steps: make([]entities.PlanStep, len(sheet.Plan.Steps))}
		for i, step := range sheet.Plan.Steps {
			step.Ingredients = append([]entities.PlanIngredient(nil), step.Ingredients...)
			if step.IngredientUsage != nil {
				usage := make(map[string]float64, len(step.IngredientUsage))
				for id, amount := range step.IngredientUsage {
					usage[id] = amount
				}
				step.IngredientUsage = usage
			}
			plan.Steps[i] = step
		}
		out.Plan = &plan
	}
	return out
}
