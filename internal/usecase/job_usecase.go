package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/domain/pricing"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrInvalidCustomer  = errors.New("customer name and address are required")
	ErrNoQuoteItems     = errors.New("quote needs at least one service")
	ErrInvalidStatus    = errors.New("invalid job status")
	ErrItemNotFound     = errors.New("quote item not found")
	ErrQuoteNotSendable = errors.New("only a quoted job can be sent for approval")
)

// Job ids are human-facing and sequential: SR-1001 for the first job, the
// next derived from the current job count.
const jobIDBase = 1001

// IJobUseCase exposes the admin-side quote/job operations: saving a quote as
// a new job, the status pipeline, sending the public quote link, and
// edit-and-replace of line items.

type IJobUseCase interface {
	CreateQuote(ctx context.Context, customer entities.Customer, items []entities.QuoteItem) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	SendQuote(ctx context.Context, id string) (entities.Job, error)
	AddItem(ctx context.Context, jobID string, item entities.QuoteItem) (entities.Job, error)
	ReplaceItem(ctx context.Context, jobID, itemID string, item entities.QuoteItem) (entities.Job, error)
	RemoveItem(ctx context.Context, jobID, itemID string) (entities.Job, error)
}

type JobUseCase struct {
	repo          interfaces.IJobRepository
	publicBaseURL string
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, publicBaseURL string) *JobUseCase {
	return &JobUseCase{repo: repo, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (u *JobUseCase) CreateQuote(ctx context.Context, customer entities.Customer, items []entities.QuoteItem) (entities.Job, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Address) == "" {
		return entities.Job{}, ErrInvalidCustomer
	}
	if len(items) == 0 {
		return entities.Job{}, ErrNoQuoteItems
	}
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return entities.Job{}, err
	}

	job := entities.Job{
		ID:              fmt.Sprintf("SR-%d", jobIDBase+count),
		Customer:        customer,
		Items:           items,
		Status:          entities.JobStatusQuoted,
		QuoteTotalRange: pricing.QuoteTotal(items),
		// Placeholder until the quote is approved and scheduled.
		ScheduledDate: time.Now().UTC(),
		JobSheet:      entities.JobSheet{},
	}
	return u.repo.Create(ctx, job)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return u.getJob(ctx, id)
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.repo.List(ctx)
}

// UpdateStatus overwrites the status unconditionally; there is no transition
// graph. Only the status value itself is validated.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	if !status.IsValid() {
		return entities.Job{}, ErrInvalidStatus
	}
	job, err := u.getJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	job.Status = status
	return u.repo.Update(ctx, job)
}

// SendQuote moves a QUOTED job to AWAITING_APPROVAL and stores the shareable
// public link on it.
func (u *JobUseCase) SendQuote(ctx context.Context, id string) (entities.Job, error) {
	job, err := u.getJob(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.Status != entities.JobStatusQuoted {
		return entities.Job{}, ErrQuoteNotSendable
	}
	job.Status = entities.JobStatusAwaitingApproval
	job.PublicQuoteURL = fmt.Sprintf("%s?quoteId=%s", u.publicBaseURL, job.ID)
	return u.repo.Update(ctx, job)
}

func (u *JobUseCase) AddItem(ctx context.Context, jobID string, item entities.QuoteItem) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	job.Items = append(job.Items, item)
	job.QuoteTotalRange = pricing.QuoteTotal(job.Items)
	return u.repo.Update(ctx, job)
}

// ReplaceItem swaps an edited item in at its original position.
func (u *JobUseCase) ReplaceItem(ctx context.Context, jobID, itemID string, item entities.QuoteItem) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	_, idx := job.ItemByID(itemID)
	if idx < 0 {
		return entities.Job{}, ErrItemNotFound
	}
	item.ID = itemID
	job.Items[idx] = item
	job.QuoteTotalRange = pricing.QuoteTotal(job.Items)
	return u.repo.Update(ctx, job)
}

func (u *JobUseCase) RemoveItem(ctx context.Context, jobID, itemID string) (entities.Job, error) {
	job, err := u.getJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	_, idx := job.ItemByID(itemID)
	if idx < 0 {
		return entities.Job{}, ErrItemNotFound
	}
	job.Items = append(job.Items[:idx], job.Items[idx+1:]...)
	job.QuoteTotalRange = pricing.QuoteTotal(job.Items)
	return u.repo.Update(ctx, job)
}

func (u *JobUseCase) getJob(ctx context.Context, id string) (entities.Job, error) {
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
