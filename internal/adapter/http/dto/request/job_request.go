package request

import (
	"strings"

	"surface_rejuvenators/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address" binding:"required"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// QuoteItemRequest is a complete line-item configuration: the whole wizard
// flow submitted in one shot. Every field is re-validated server side.
type QuoteItemRequest struct {
	CustomerType string   `json:"customer_type" binding:"required"`
	ServiceID    string   `json:"service_id" binding:"required"`
	Quantity     float64  `json:"quantity"`
	TierIDs      []string `json:"tier_ids"`
	AddOnIDs     []string `json:"add_on_ids"`
	Notes        string   `json:"notes"`
}

func (r QuoteItemRequest) ResolveCustomerType() entities.CustomerType {
	return entities.CustomerType(strings.TrimSpace(r.CustomerType))
}

type CreateQuoteRequest struct {
	Customer CustomerRequest    `json:"customer" binding:"required"`
	Items    []QuoteItemRequest `json:"items" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() entities.JobStatus {
	return entities.JobStatus(strings.TrimSpace(r.Status))
}
