package response

import (
	"fmt"
	"time"

	"surface_rejuvenators/internal/domain/entities"
)

// PriceRangeResponse renders a {min,max} spread. Display collapses a
// definite price ("$504.00") and spells out a blind estimate
// ("$160.00 - $208.00").
type PriceRangeResponse struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Display string  `json:"display"`
}

func FromPriceRange(r entities.PriceRange) PriceRangeResponse {
	display := fmt.Sprintf("$%.2f", r.Min)
	if r.Max != r.Min {
		display = fmt.Sprintf("$%.2f - $%.2f", r.Min, r.Max)
	}
	return PriceRangeResponse{Min: r.Min, Max: r.Max, Display: display}
}

type TierResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

type AddOnResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	UnitBased   bool    `json:"unit_based"`
}

type QuoteItemResponse struct {
	ID           string             `json:"id"`
	ServiceID    string             `json:"service_id"`
	ServiceName  string             `json:"service_name"`
	Unit         string             `json:"unit"`
	CustomerType string             `json:"customer_type"`
	Quantity     float64            `json:"quantity"`
	Tiers        []TierResponse     `json:"tiers"`
	AddOns       []AddOnResponse    `json:"add_ons"`
	Notes        string             `json:"notes,omitempty"`
	PriceRange   PriceRangeResponse `json:"price_range"`
}

func FromQuoteItem(item entities.QuoteItem) QuoteItemResponse {
	tiers := make([]TierResponse, len(item.Tiers))
	for i, t := range item.Tiers {
		tiers[i] = TierResponse{ID: t.ID, Name: t.Name, Description: t.Description, PriceMultiplier: t.PriceMultiplier}
	}
	addOns := make([]AddOnResponse, len(item.AddOns))
	for i, a := range item.AddOns {
		addOns[i] = AddOnResponse{ID: a.ID, Name: a.Name, Description: a.Description, Price: a.Price, UnitBased: a.UnitBased}
	}
	return QuoteItemResponse{
		ID:           item.ID,
		ServiceID:    item.Service.ID,
		ServiceName:  item.Service.Name,
		Unit:         string(item.Service.Unit),
		CustomerType: string(item.CustomerType),
		Quantity:     item.Quantity,
		Tiers:        tiers,
		AddOns:       addOns,
		Notes:        item.Notes,
		PriceRange:   FromPriceRange(item.PriceRange),
	}
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

type ChemicalUsageResponse struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	AmountUsed float64 `json:"amount_used"`
}

type PlanIngredientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type PlanStepResponse struct {
	Index           int                      `json:"index"`
	Type            string                   `json:"type"`
	Title           string                   `json:"title"`
	Details         string                   `json:"details"`
	Completed       bool                     `json:"completed"`
	Ingredients     []PlanIngredientResponse `json:"ingredients,omitempty"`
	MixRatio        string                   `json:"mix_ratio,omitempty"`
	IngredientUsage map[string]float64       `json:"ingredient_usage,omitempty"`
}

type JobPlanResponse struct {
	Steps        []PlanStepResponse `json:"steps"`
	AllCompleted bool               `json:"all_completed"`
}

type JobSheetResponse struct {
	BeforePhotos  []string                `json:"before_photos"`
	AfterPhotos   []string                `json:"after_photos"`
	ChemicalUsage []ChemicalUsageResponse `json:"chemical_usage"`
	Notes         string                  `json:"notes"`
	Plan          *JobPlanResponse        `json:"plan,omitempty"`
}

type JobResponse struct {
	ID              string              `json:"id"`
	Customer        CustomerResponse    `json:"customer"`
	Items           []QuoteItemResponse `json:"items"`
	Status          string              `json:"status"`
	QuoteTotalRange PriceRangeResponse  `json:"quote_total_range"`
	ScheduledDate   time.Time           `json:"scheduled_date"`
	JobSheet        JobSheetResponse    `json:"job_sheet"`
	PublicQuoteURL  string              `json:"public_quote_url,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	Approved        bool                `json:"approved"`
}

func FromJob(job entities.Job) JobResponse {
	items := make([]QuoteItemResponse, len(job.Items))
	for i, item := range job.Items {
		items[i] = FromQuoteItem(item)
	}
	return JobResponse{
		ID: job.ID,
		Customer: CustomerResponse{
			ID:      job.Customer.ID,
			Name:    job.Customer.Name,
			Email:   job.Customer.Email,
			Phone:   job.Customer.Phone,
			Address: job.Customer.Address,
		},
		Items:           items,
		Status:          string(job.Status),
		QuoteTotalRange: FromPriceRange(job.QuoteTotalRange),
		ScheduledDate:   job.ScheduledDate,
		JobSheet:        fromJobSheet(job.JobSheet),
		PublicQuoteURL:  job.PublicQuoteURL,
		PaymentMethod:   job.PaymentMethod,
		Approved:        job.CustomerSignature != "",
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = FromJob(job)
	}
	return out
}

func fromJobSheet(sheet entities.JobSheet) JobSheetResponse {
	usage := make([]ChemicalUsageResponse, len(sheet.ChemicalUsage))
	for i, u := range sheet.ChemicalUsage {
		usage[i] = ChemicalUsageResponse{ItemID: u.ItemID, ItemName: u.ItemName, AmountUsed: u.AmountUsed}
	}
	out := JobSheetResponse{
		BeforePhotos:  sheet.BeforePhotos,
		AfterPhotos:   sheet.AfterPhotos,
		ChemicalUsage: usage,
		Notes:         sheet.Notes,
	}
	if sheet.Plan != nil {
		plan := JobPlanResponse{
			Steps:        make([]PlanStepResponse, len(sheet.Plan.Steps)),
			AllCompleted: sheet.Plan.AllStepsCompleted(),
		}
		for i, step := range sheet.Plan.Steps {
			ingredients := make([]PlanIngredientResponse, len(step.Ingredients))
			for j, ing := range step.Ingredients {
				ingredients[j] = PlanIngredientResponse{ID: ing.ID, Name: ing.Name, Unit: ing.Unit}
			}
			plan.Steps[i] = PlanStepResponse{
				Index:           i,
				Type:            string(step.Type),
				Title:           step.Title,
				Details:         step.Details,
				Completed:       step.Completed,
				Ingredients:     ingredients,
				MixRatio:        step.MixRatio,
				IngredientUsage: step.IngredientUsage,
			}
		}
		out.Plan = &plan
	}
	return out
}
