// Package quote builds single line items through the guided selection flow:
// customer type, category, subcategory, service, then configuration.
package quote

import (
	"errors"

	"github.com/google/uuid"

	"surface_rejuvenators/internal/domain/catalog"
	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/domain/pricing"
)

type Step int

const (
	StepCustomerType Step = iota + 1
	StepCategory
	StepSubCategory
	StepService
	StepConfigure
)

var (
	ErrWrongStep           = errors.New("selection out of order")
	ErrInvalidCustomerType = errors.New("invalid customer type")
	ErrUnknownCategory     = errors.New("category not available")
	ErrUnknownSubCategory  = errors.New("subcategory not available")
	ErrServiceNotOffered   = errors.New("service not offered for this selection")
	ErrTierRequired        = errors.New("select at least one tier")
)

// Builder walks one service selection from customer type down to a priced
// QuoteItem. It holds no state beyond the in-progress selections; Reset (or
// simply dropping the builder) discards everything with no side effects.
type Builder struct {
	services []entities.Service

	step         Step
	customerType entities.CustomerType
	category     string
	subCategory  string
	service      entities.Service
	haveService  bool

	quantity float64
	tiers    []entities.Tier
	addOns   []entities.AddOn
	notes    string

	editID string
}

// NewBuilder starts a fresh flow at the customer-type step over the given
// catalog slice.
func NewBuilder(services []entities.Service) *Builder {
	return &Builder{services: services, step: StepCustomerType, quantity: 1}
}

// EditBuilder re-enters the flow directly at the configuration step,
// pre-populated from an existing item. Building again keeps the item's id so
// the caller can replace it in place.
func EditBuilder(services []entities.Service, item entities.QuoteItem) *Builder {
	b := &Builder{
		services:     services,
		step:         StepConfigure,
		customerType: item.CustomerType,
		category:     item.Service.Category,
		subCategory:  item.Service.SubCategory,
		service:      item.Service,
		haveService:  true,
		quantity:     item.Quantity,
		notes:        item.Notes,
		editID:       item.ID,
	}
	b.tiers = append(b.tiers, item.Tiers...)
	b.addOns = append(b.addOns, item.AddOns...)
	return b
}

func (b *Builder) Step() Step { return b.step }

func (b *Builder) SelectCustomerType(ct entities.CustomerType) error {
	if !ct.IsValid() {
		return ErrInvalidCustomerType
	}
	b.customerType = ct
	b.category = ""
	b.subCategory = ""
	b.haveService = false
	b.step = StepCategory
	return nil
}

// Categories lists the categories the current customer type can choose from.
func (b *Builder) Categories() ([]string, error) {
	if b.step < StepCategory {
		return nil, ErrWrongStep
	}
	return distinctCategories(b.filtered("", "")), nil
}

func (b *Builder) SelectCategory(category string) error {
	if b.step < StepCategory {
		return ErrWrongStep
	}
	if len(b.filtered(category, "")) == 0 {
		return ErrUnknownCategory
	}
	b.category = category
	b.subCategory = ""
	b.haveService = false
	b.step = StepSubCategory
	return nil
}

func (b *Builder) SubCategories() ([]string, error) {
	if b.step < StepSubCategory {
		return nil, ErrWrongStep
	}
	return distinctSubCategories(b.filtered(b.category, "")), nil
}

func (b *Builder) SelectSubCategory(subCategory string) error {
	if b.step < StepSubCategory {
		return ErrWrongStep
	}
	if len(b.filtered(b.category, subCategory)) == 0 {
		return ErrUnknownSubCategory
	}
	b.subCategory = subCategory
	b.haveService = false
	b.step = StepService
	return nil
}

// Services lists the doubly-narrowed service choices.
func (b *Builder) Services() ([]entities.Service, error) {
	if b.step < StepService {
		return nil, ErrWrongStep
	}
	return b.filtered(b.category, b.subCategory), nil
}

// SelectService picks a service and resets the configuration to defaults.
func (b *Builder) SelectService(id string) error {
	if b.step < StepService {
		return ErrWrongStep
	}
	for _, s := range b.filtered(b.category, b.subCategory) {
		if s.ID == id {
			b.service = s
			b.haveService = true
			b.quantity = 1
			b.tiers = nil
			b.addOns = nil
			b.notes = ""
			b.step = StepConfigure
			return nil
		}
	}
	return ErrServiceNotOffered
}

// SetQuantity floors the quantity at 1.
func (b *Builder) SetQuantity(q float64) error {
	if b.step < StepConfigure {
		return ErrWrongStep
	}
	if q < 1 {
		q = 1
	}
	b.quantity = q
	return nil
}

// SelectTiers replaces the tier selection. Several tiers at once produce a
// blind estimate. Ids must belong to the chosen service.
func (b *Builder) SelectTiers(tierIDs []string) error {
	if b.step < StepConfigure {
		return ErrWrongStep
	}
	tiers, _, err := catalog.ResolveSelections(b.service, tierIDs, nil)
	if err != nil {
		return err
	}
	b.tiers = tiers
	return nil
}

func (b *Builder) SelectAddOns(addOnIDs []string) error {
	if b.step < StepConfigure {
		return ErrWrongStep
	}
	_, addOns, err := catalog.ResolveSelections(b.service, nil, addOnIDs)
	if err != nil {
		return err
	}
	b.addOns = addOns
	return nil
}

func (b *Builder) SetNotes(notes string) error {
	if b.step < StepConfigure {
		return ErrWrongStep
	}
	b.notes = notes
	return nil
}

// PriceRange previews the current configuration's price.
func (b *Builder) PriceRange() entities.PriceRange {
	if !b.haveService {
		return entities.PriceRange{}
	}
	return pricing.ItemRange(b.service, b.quantity, b.tiers, b.addOns)
}

// Build finalizes the item. A tiered service with no tier selected cannot be
// saved.
func (b *Builder) Build() (entities.QuoteItem, error) {
	if b.step < StepConfigure || !b.haveService {
		return entities.QuoteItem{}, ErrWrongStep
	}
	if b.service.HasTiers() && len(b.tiers) == 0 {
		return entities.QuoteItem{}, ErrTierRequired
	}
	id := b.editID
	if id == "" {
		id = uuid.NewString()
	}
	return entities.QuoteItem{
		ID:           id,
		Service:      b.service,
		CustomerType: b.customerType,
		Quantity:     b.quantity,
		Tiers:        b.tiers,
		AddOns:       b.addOns,
		Notes:        b.notes,
		PriceRange:   pricing.ItemRange(b.service, b.quantity, b.tiers, b.addOns),
	}, nil
}

// Reset discards all in-progress selections and returns to the first step.
func (b *Builder) Reset() {
	*b = Builder{services: b.services, step: StepCustomerType, quantity: 1}
}

func (b *Builder) filtered(category, subCategory string) []entities.Service {
	var out []entities.Service
	for _, s := range b.services {
		if !s.AppliesToType(b.customerType) {
			continue
		}
		if category != "" && s.Category != category {
			continue
		}
		if subCategory != "" && s.SubCategory != subCategory {
			continue
		}
		out = append(out, s)
	}
	return out
}

func distinctCategories(in []entities.Service) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range in {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

func distinctSubCategories(in []entities.Service) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range in {
		if _, ok := seen[s.SubCategory]; ok {
			continue
		}
		seen[s.SubCategory] = struct{}{}
		out = append(out, s.SubCategory)
	}
	return out
}

// BuildItem drives a full flow programmatically: the API accepts a complete
// item configuration in one request and still runs it through every wizard
// validation.
func BuildItem(services []entities.Service, ct entities.CustomerType, serviceID string, quantity float64, tierIDs, addOnIDs []string, notes string) (entities.QuoteItem, error) {
	if !ct.IsValid() {
		return entities.QuoteItem{}, ErrInvalidCustomerType
	}
	var svc entities.Service
	found := false
	for _, s := range services {
		if s.ID == serviceID {
			svc, found = s, true
			break
		}
	}
	if !found || !svc.AppliesToType(ct) {
		return entities.QuoteItem{}, ErrServiceNotOffered
	}

	b := NewBuilder(services)
	if err := b.SelectCustomerType(ct); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SelectCategory(svc.Category); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SelectSubCategory(svc.SubCategory); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SelectService(serviceID); err != nil {
		return entities.QuoteItem{}, err
	}
	return configureAndBuild(b, quantity, tierIDs, addOnIDs, notes)
}

// EditItem re-enters the flow at configuration for an existing item and
// rebuilds it with the new settings, keeping its id.
func EditItem(services []entities.Service, item entities.QuoteItem, quantity float64, tierIDs, addOnIDs []string, notes string) (entities.QuoteItem, error) {
	return configureAndBuild(EditBuilder(services, item), quantity, tierIDs, addOnIDs, notes)
}

func configureAndBuild(b *Builder, quantity float64, tierIDs, addOnIDs []string, notes string) (entities.QuoteItem, error) {
	if err := b.SetQuantity(quantity); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SelectTiers(tierIDs); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SelectAddOns(addOnIDs); err != nil {
		return entities.QuoteItem{}, err
	}
	if err := b.SetNotes(notes); err != nil {
		return entities.QuoteItem{}, err
	}
	return b.Build()
}
