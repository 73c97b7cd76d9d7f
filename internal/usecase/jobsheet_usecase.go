package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"surface_rejuvenators/internal/domain/catalog"
	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/infrastructure/logger"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var (
	ErrPlanExists           = errors.New("job already has a plan")
	ErrPlanGeneration       = errors.New("failed to generate job plan")
	ErrPlannerNotConfigured = errors.New("plan generator not configured")
	ErrNoPlan               = errors.New("job has no plan")
	ErrInvalidStepIndex     = errors.New("invalid plan step")
	ErrDelayReasonRequired  = errors.New("delay reason required")
	ErrPaymentMethodMissing = errors.New("payment method required")
)

// IJobSheetUseCase is the technician side of a job: the AI plan, step
// progress and chemical-amount recording, sheet edits, and the two exit
// paths (complete with payment, or delayed).

type IJobSheetUseCase interface {
	GeneratePlan(ctx context.Context, jobID string) (entities.Job, error)
	UpdateStep(ctx context.Context, jobID string, stepIndex int, completed *bool, usage map[string]float64) (entities.Job, error)
	UpdateSheet(ctx context.Context, jobID string, notes *string, beforePhotos, afterPhotos []string) (entities.Job, error)
	CompleteJob(ctx context.Context, jobID, paymentMethod string) (entities.Job, error)
	MarkDelayed(ctx context.Context, jobID, reason string) (entities.Job, error)
}

type JobSheetUseCase struct {
	jobRepo   interfaces.IJobRepository
	inventory IInventoryUseCase
	planner   interfaces.IPlanGenerator
}

var _ IJobSheetUseCase = (*JobSheetUseCase)(nil)

func NewJobSheetUseCase(jobRepo interfaces.IJobRepository, inventory IInventoryUseCase, planner interfaces.IPlanGenerator) *JobSheetUseCase {
	return &JobSheetUseCase{jobRepo: jobRepo, inventory: inventory, planner: planner}
}

// GeneratePlan asks the generator for a plan once per job. A job that
// already carries a plan is not regenerated; the guard is this check, not a
// lock. On failure nothing is stored and the caller may retry.
func (u *JobSheetUseCase) GeneratePlan(ctx context.Context, jobID string) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.JobSheet.Plan != nil {
		return entities.Job{}, ErrPlanExists
	}
	if u.planner == nil {
		return entities.Job{}, ErrPlannerNotConfigured
	}

	ingredients, err := u.requiredIngredients(ctx, job.Items)
	if err != nil {
		return entities.Job{}, err
	}

	plan, err := u.planner.GeneratePlan(ctx, planServices(job.Items), ingredients)
	if err != nil {
		logger.GetLogger().Warn("job plan generation failed",
			zap.String("job_id", job.ID), zap.Error(err))
		return entities.Job{}, fmt.Errorf("%w: %v", ErrPlanGeneration, err)
	}
	if len(plan.Steps) == 0 {
		return entities.Job{}, ErrPlanGeneration
	}

	job.JobSheet.Plan = &plan
	return u.jobRepo.Update(ctx, job)
}

// UpdateStep toggles a step's completion flag and/or records the actual
// ingredient amounts used on it.
func (u *JobSheetUseCase) UpdateStep(ctx context.Context, jobID string, stepIndex int, completed *bool, usage map[string]float64) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.JobSheet.Plan == nil {
		return entities.Job{}, ErrNoPlan
	}
	if stepIndex < 0 || stepIndex >= len(job.JobSheet.Plan.Steps) {
		return entities.Job{}, ErrInvalidStepIndex
	}

	step := &job.JobSheet.Plan.Steps[stepIndex]
	if completed != nil {
		step.Completed = *completed
	}
	if len(usage) > 0 {
		if step.IngredientUsage == nil {
			step.IngredientUsage = make(map[string]float64, len(usage))
		}
		for id, amount := range usage {
			step.IngredientUsage[id] = amount
		}
	}
	return u.jobRepo.Update(ctx, job)
}

func (u *JobSheetUseCase) UpdateSheet(ctx context.Context, jobID string, notes *string, beforePhotos, afterPhotos []string) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if notes != nil {
		job.JobSheet.Notes = *notes
	}
	if beforePhotos != nil {
		job.JobSheet.BeforePhotos = beforePhotos
	}
	if afterPhotos != nil {
		job.JobSheet.AfterPhotos = afterPhotos
	}
	return u.jobRepo.Update(ctx, job)
}

// CompleteJob aggregates the recorded ingredient amounts across all
// chemical-mix steps, decrements inventory in a single batch, stores the
// usage on the sheet, and marks the job COMPLETED. Consumption happens only
// here; a job in progress draws nothing from stock.
func (u *JobSheetUseCase) CompleteJob(ctx context.Context, jobID, paymentMethod string) (entities.Job, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return entities.Job{}, ErrPaymentMethodMissing
	}
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	totals := map[string]float64{}
	var order []string
	if job.JobSheet.Plan != nil {
		for _, step := range job.JobSheet.Plan.Steps {
			if step.Type != entities.StepChemicalMix {
				continue
			}
			for id, amount := range step.IngredientUsage {
				if amount <= 0 {
					continue
				}
				if _, seen := totals[id]; !seen {
					order = append(order, id)
				}
				totals[id] += amount
			}
		}
	}

	var usage []entities.ChemicalUsage
	for _, id := range order {
		item, err := u.inventory.Consume(ctx, id, totals[id])
		if errors.Is(err, ErrInventoryItemNotFound) {
			// The plan may reference a chemical that was since removed.
			continue
		}
		if err != nil {
			return entities.Job{}, err
		}
		usage = append(usage, entities.ChemicalUsage{ItemID: id, ItemName: item.Name, AmountUsed: totals[id]})
	}

	job.JobSheet.ChemicalUsage = append(job.JobSheet.ChemicalUsage, usage...)
	job.PaymentMethod = paymentMethod
	job.Status = entities.JobStatusCompleted
	return u.jobRepo.Update(ctx, job)
}

// MarkDelayed appends the reason to the sheet notes and flags the job.
func (u *JobSheetUseCase) MarkDelayed(ctx context.Context, jobID, reason string) (entities.Job, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Job{}, ErrDelayReasonRequired
	}
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	job.JobSheet.Notes = strings.TrimSpace(job.JobSheet.Notes + "\n\nDELAYED: " + reason)
	job.Status = entities.JobStatusDelayed
	return u.jobRepo.Update(ctx, job)
}

// requiredIngredients narrows inventory to the chemicals the job's formulas
// call for.
func (u *JobSheetUseCase) requiredIngredients(ctx context.Context, items []entities.QuoteItem) ([]entities.InventoryItem, error) {
	required := catalog.RequiredChemicals(items)
	wanted := make(map[string]struct{}, len(required))
	for _, id := range required {
		wanted[id] = struct{}{}
	}

	stock, err := u.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []entities.InventoryItem
	for _, item := range stock {
		if item.Category != entities.InventoryCategoryChemical {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func planServices(items []entities.QuoteItem) []interfaces.PlanService {
	out := make([]interfaces.PlanService, 0, len(items))
	for _, item := range items {
		label := item.Service.Name
		if len(item.Tiers) > 0 {
			names := make([]string, len(item.Tiers))
			for i, t := range item.Tiers {
				names[i] = t.Name
			}
			label = fmt.Sprintf("%s (%s Tier)", item.Service.Name, strings.Join(names, "/"))
		}
		addOnNames := make([]string, len(item.AddOns))
		for i, a := range item.AddOns {
			addOnNames[i] = a.Name
		}
		out = append(out, interfaces.PlanService{ID: item.Service.ID, Label: label, AddOnNames: addOnNames})
	}
	return out
}

func (u *JobSheetUseCase) getJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}
