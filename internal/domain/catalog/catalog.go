// Package catalog holds the static service, formula, equipment and inventory
// definitions and the lookup/validation API over them.
package catalog

import (
	"errors"
	"time"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/domain/pricing"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrUnknownTier     = errors.New("tier not defined for service")
	ErrUnknownAddOn    = errors.New("add-on not defined for service")
)

// Services returns every catalog service. The returned slice shares the
// underlying reference data; callers must not mutate it.
func Services() []entities.Service {
	return services
}

func ServiceByID(id string) (entities.Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, ErrServiceNotFound
}

// ServicesFor filters the catalog by customer type and, when non-empty, by
// category and subcategory. This is the narrowing the quote wizard walks.
func ServicesFor(ct entities.CustomerType, category, subCategory string) []entities.Service {
	var out []entities.Service
	for _, s := range services {
		if !s.AppliesToType(ct) {
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

// Categories lists the distinct categories available to a customer type, in
// catalog order.
func Categories(ct entities.CustomerType) []string {
	return distinct(ServicesFor(ct, "", ""), func(s entities.Service) string { return s.Category })
}

// SubCategories lists the distinct subcategories within a category for a
// customer type, in catalog order.
func SubCategories(ct entities.CustomerType, category string) []string {
	return distinct(ServicesFor(ct, category, ""), func(s entities.Service) string { return s.SubCategory })
}

func distinct(in []entities.Service, key func(entities.Service) string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		k := key(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// ResolveSelections maps tier and add-on ids onto the tiers and add-ons a
// service actually defines. Ids outside the service's own lists are
// rejected; selections must always be subsets of the catalog entry.
func ResolveSelections(s entities.Service, tierIDs, addOnIDs []string) ([]entities.Tier, []entities.AddOn, error) {
	var tiers []entities.Tier
	for _, id := range tierIDs {
		t, ok := s.TierByID(id)
		if !ok {
			return nil, nil, ErrUnknownTier
		}
		tiers = append(tiers, t)
	}
	var addOns []entities.AddOn
	for _, id := range addOnIDs {
		a, ok := s.AddOnByID(id)
		if !ok {
			return nil, nil, ErrUnknownAddOn
		}
		addOns = append(addOns, a)
	}
	return tiers, addOns, nil
}

// FormulaIngredients returns the inventory ids of the chemicals a formula
// draws from stock. Unknown formulas resolve to nothing.
func FormulaIngredients(formula string) []string {
	return formulaIngredients[formula]
}

// RequiredChemicals resolves the distinct chemical inventory ids a set of
// quote items needs. Tier-level formula lists override the service-level
// list; add-ons contribute through formulas named after them.
func RequiredChemicals(items []entities.QuoteItem) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(formula string) {
		for _, id := range FormulaIngredients(formula) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	for _, item := range items {
		svc, err := ServiceByID(item.Service.ID)
		if err != nil {
			continue
		}
		for _, tier := range item.Tiers {
			formulas := tier.Includes
			if len(formulas) == 0 {
				formulas = svc.Includes
			}
			for _, f := range formulas {
				add(f)
			}
		}
		if len(item.Tiers) == 0 {
			for _, f := range svc.Includes {
				add(f)
			}
		}
		for _, a := range item.AddOns {
			add(a.Name)
		}
	}
	return out
}

// EquipmentFor returns the equipment ids a service needs: the base kit, any
// category-level gear, and service-specific attachments.
func EquipmentFor(s entities.Service) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, key := range []string{"base", s.Category, s.ID} {
		for _, id := range serviceEquipment[key] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// SeedInventory returns a fresh copy of the initial stock list.
func SeedInventory() []entities.InventoryItem {
	out := make([]entities.InventoryItem, len(seedInventory))
	copy(out, seedInventory)
	return out
}

// SeedJobs returns the two demo jobs the system starts with: a scheduled
// single-tier vinyl wash and an in-progress blind-estimate concrete job.
func SeedJobs() []entities.Job {
	return []entities.Job{
		seedJob("SR-1001",
			entities.Customer{ID: "cust-1", Name: "John Smith", Email: "john@example.com", Phone: "555-1234", Address: "123 Oak St, Pleasantville"},
			seedItem("item-1001-1", "svc-vinyl", 1800, []string{"tier-std"}),
			entities.JobStatusScheduled,
			time.Now().AddDate(0, 0, 2),
			"",
		),
		seedJob("SR-1002",
			entities.Customer{ID: "cust-2", Name: "Jane Doe", Email: "jane@example.com", Phone: "555-5678", Address: "456 Maple Ave, Springfield"},
			seedItem("item-1002-1", "svc-broom-concrete", 800, []string{"tier-std", "tier-bst", "tier-pro"}),
			entities.JobStatusInProgress,
			time.Now(),
			"Customer has a dog, be careful with the gate.",
		),
	}
}

func seedJob(id string, customer entities.Customer, item entities.QuoteItem, status entities.JobStatus, scheduled time.Time, sheetNotes string) entities.Job {
	items := []entities.QuoteItem{item}
	return entities.Job{
		ID:              id,
		Customer:        customer,
		Items:           items,
		Status:          status,
		QuoteTotalRange: pricing.QuoteTotal(items),
		ScheduledDate:   scheduled,
		JobSheet:        entities.JobSheet{Notes: sheetNotes},
	}
}

func seedItem(id, serviceID string, quantity float64, tierIDs []string) entities.QuoteItem {
	svc, err := ServiceByID(serviceID)
	if err != nil {
		panic(err)
	}
	tiers, _, err := ResolveSelections(svc, tierIDs, nil)
	if err != nil {
		panic(err)
	}
	return entities.QuoteItem{
		ID:           id,
		Service:      svc,
		CustomerType: entities.CustomerTypeResidential,
		Quantity:     quantity,
		Tiers:        tiers,
		PriceRange:   pricing.ItemRange(svc, quantity, tiers, nil),
	}
}
