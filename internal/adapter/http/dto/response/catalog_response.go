package response

import "surface_rejuvenators/internal/domain/entities"

type ServiceResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	AppliesTo   []string        `json:"applies_to"`
	BasePrice   float64         `json:"base_price"`
	Tiers       []TierResponse  `json:"tiers"`
	AddOns      []AddOnResponse `json:"add_ons"`
}

func FromService(s entities.Service) ServiceResponse {
	appliesTo := make([]string, len(s.AppliesTo))
	for i, ct := range s.AppliesTo {
		appliesTo[i] = string(ct)
	}
	tiers := make([]TierResponse, len(s.Tiers))
	for i, t := range s.Tiers {
		tiers[i] = TierResponse{ID: t.ID, Name: t.Name, Description: t.Description, PriceMultiplier: t.PriceMultiplier}
	}
	addOns := make([]AddOnResponse, len(s.AddOns))
	for i, a := range s.AddOns {
		addOns[i] = AddOnResponse{ID: a.ID, Name: a.Name, Description: a.Description, Price: a.Price, UnitBased: a.UnitBased}
	}
	return ServiceResponse{
		ID:          s.ID,
		Category:    s.Category,
		SubCategory: s.SubCategory,
		Name:        s.Name,
		Description: s.Description,
		Unit:        string(s.Unit),
		AppliesTo:   appliesTo,
		BasePrice:   s.BasePrice,
		Tiers:       tiers,
		AddOns:      addOns,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}
