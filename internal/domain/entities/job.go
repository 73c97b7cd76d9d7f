package entities

import "time"

// JobStatus is the lifecycle stage of a job.
//
// Domain notes:
//   - There is no enforced transition graph: any status may follow any
//     other. The API only rejects values outside this set.

type JobStatus string

const (
	JobStatusLead             JobStatus = "LEAD"
	JobStatusQuoted           JobStatus = "QUOTED"
	JobStatusAwaitingApproval JobStatus = "AWAITING_APPROVAL"
	JobStatusScheduled        JobStatus = "SCHEDULED"
	JobStatusInProgress       JobStatus = "IN_PROGRESS"
	JobStatusDelayed          JobStatus = "DELAYED"
	JobStatusCompleted        JobStatus = "COMPLETED"
	JobStatusInvoiced         JobStatus = "INVOICED"
	JobStatusPaid             JobStatus = "PAID"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusLead, JobStatusQuoted, JobStatusAwaitingApproval,
		JobStatusScheduled, JobStatusInProgress, JobStatusDelayed,
		JobStatusCompleted, JobStatusInvoiced, JobStatusPaid:
		return true
	}
	return false
}

// PriceRange is a {min,max} estimate spread. Min == Max for definite prices.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QuoteItem is one configured service within a quote. Selecting several
// tiers at once is a deliberate blind estimate: min comes from the cheapest
// tier, max from the most expensive. Items are immutable once added except
// through an explicit edit-and-replace.
type QuoteItem struct {
	ID           string       `json:"id"`
	Service      Service      `json:"service"`
	CustomerType CustomerType `json:"customer_type"`
	Quantity     float64      `json:"quantity"`
	Tiers        []Tier       `json:"tiers"`
	AddOns       []AddOn      `json:"add_ons"`
	Notes        string       `json:"notes,omitempty"`
	PriceRange   PriceRange   `json:"price_range"`
}

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ChemicalUsage is the amount of one inventory chemical consumed on a job,
// recorded in a single batch when the job is marked complete.
type ChemicalUsage struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	AmountUsed float64 `json:"amount_used"`
}

// JobSheet is the technician's working record for a job.
type JobSheet struct {
	BeforePhotos  []string        `json:"before_photos"`
	AfterPhotos   []string        `json:"after_photos"`
	ChemicalUsage []ChemicalUsage `json:"chemical_usage"`
	Notes         string          `json:"notes"`
	Plan          *JobPlan        `json:"plan,omitempty"`
}

// ItemSelection is the customer's final choice for one line item on the
// public quote page: exactly one tier plus zero or more add-ons.
type ItemSelection struct {
	TierID   string   `json:"tier_id"`
	AddOnIDs []string `json:"add_on_ids"`
}

// CustomerSelections maps line-item id (not position, so edits and
// reordering cannot misattribute a choice) to the customer's selection.
type CustomerSelections map[string]ItemSelection

// Job is the quote/work-order aggregate. Jobs are never deleted.
type Job struct {
	ID                 string             `json:"id"`
	Customer           Customer           `json:"customer"`
	Items              []QuoteItem        `json:"items"`
	Status             JobStatus          `json:"status"`
	QuoteTotalRange    PriceRange         `json:"quote_total_range"`
	ScheduledDate      time.Time          `json:"scheduled_date"`
	JobSheet           JobSheet           `json:"job_sheet"`
	PublicQuoteURL     string             `json:"public_quote_url,omitempty"`
	CustomerSignature  string             `json:"customer_signature,omitempty"`
	CustomerSelections CustomerSelections `json:"customer_selections,omitempty"`
	PaymentMethod      string             `json:"payment_method,omitempty"`
}

// ItemByID returns the line item with the given id and its position in the
// item list.
func (j Job) ItemByID(id string) (QuoteItem, int) {
	for i, item := range j.Items {
		if item.ID == id {
			return item, i
		}
	}
	return QuoteItem{}, -1
}
