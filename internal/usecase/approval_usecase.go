package usecase

import (
	"context"
	"errors"
	"strings"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/domain/pricing"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var (
	ErrSelectionsIncomplete = errors.New("select an option for every service")
	ErrSignatureRequired    = errors.New("signature required to approve")
)

// QuoteBreakdown is the customer-facing recompute of a quote from the
// customer's own selections, independent of the original estimate.
type QuoteBreakdown struct {
	ItemPrices map[string]float64
	FinalPrice float64
	Complete   bool
}

// IApprovalUseCase drives the public quote page: the read-only lookup, the
// running-total preview (no side effects, also used by the admin preview
// mode), and approval itself.

type IApprovalUseCase interface {
	PublicQuote(ctx context.Context, jobID string) (entities.Job, error)
	Preview(ctx context.Context, jobID string, selections entities.CustomerSelections) (QuoteBreakdown, error)
	Approve(ctx context.Context, jobID string, selections entities.CustomerSelections, signature string) (entities.Job, error)
}

type ApprovalUseCase struct {
	repo interfaces.IJobRepository
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(repo interfaces.IJobRepository) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo}
}

func (u *ApprovalUseCase) PublicQuote(ctx context.Context, jobID string) (entities.Job, error) {
	return u.getJob(ctx, jobID)
}

// Preview recomputes the final price from the given selections without
// touching the job.
func (u *ApprovalUseCase) Preview(ctx context.Context, jobID string, selections entities.CustomerSelections) (QuoteBreakdown, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return QuoteBreakdown{}, err
	}
	return breakdown(job.Items, selections), nil
}

// Approve records the customer's selections and signature, collapses the
// estimate range to the recomputed final price, and schedules the job. The
// recompute here is authoritative: whatever range the estimator produced is
// replaced by the price of what the customer actually chose.
func (u *ApprovalUseCase) Approve(ctx context.Context, jobID string, selections entities.CustomerSelections, signature string) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	bd := breakdown(job.Items, selections)
	if !bd.Complete {
		return entities.Job{}, ErrSelectionsIncomplete
	}
	if strings.TrimSpace(signature) == "" {
		return entities.Job{}, ErrSignatureRequired
	}

	job.CustomerSelections = selections
	job.CustomerSignature = signature
	job.QuoteTotalRange = entities.PriceRange{Min: bd.FinalPrice, Max: bd.FinalPrice}
	job.Status = entities.JobStatusScheduled
	return u.repo.Update(ctx, job)
}

func breakdown(items []entities.QuoteItem, selections entities.CustomerSelections) QuoteBreakdown {
	bd := QuoteBreakdown{ItemPrices: make(map[string]float64, len(items)), Complete: true}
	for _, item := range items {
		price, ok := pricing.SelectionPrice(item, selections[item.ID])
		if !ok {
			bd.Complete = false
			continue
		}
		bd.ItemPrices[item.ID] = price
		bd.FinalPrice += price
	}
	return bd
}

func (u *ApprovalUseCase) getJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}
