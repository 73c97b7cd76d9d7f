// Package pricing computes quote prices. All functions are pure: recomputing
// from the same inputs always yields the same result.
package pricing

import "surface_rejuvenators/internal/domain/entities"

// AddOnAmount is the cost one add-on contributes to a line item. Unit-based
// add-ons scale with quantity, flat add-ons do not. Add-on cost never
// depends on the chosen tier.
func AddOnAmount(a entities.AddOn, quantity float64) float64 {
	if a.UnitBased {
		return a.Price * quantity
	}
	return a.Price
}

// TierPrice is the definite price of a service at one tier.
func TierPrice(s entities.Service, quantity float64, t entities.Tier) float64 {
	return s.BasePrice * quantity * t.PriceMultiplier
}

// ItemRange computes the {min,max} estimate for one configured line item.
//
//   - Tierless services are single-price: basePrice x quantity plus add-ons.
//   - With one tier selected, min == max.
//   - With several tiers selected (a blind estimate), min is taken from the
//     cheapest tier and max from the most expensive.
//   - A tiered service with no tier selected prices as {0,0}; the quote
//     builder refuses to save such an item.
//
// Every add-on contributes the same amount to both ends of the range.
func ItemRange(s entities.Service, quantity float64, tiers []entities.Tier, addOns []entities.AddOn) entities.PriceRange {
	if s.HasTiers() && len(tiers) == 0 {
		return entities.PriceRange{}
	}

	var r entities.PriceRange
	if !s.HasTiers() {
		base := s.BasePrice * quantity
		r = entities.PriceRange{Min: base, Max: base}
	} else {
		minMult, maxMult := tiers[0].PriceMultiplier, tiers[0].PriceMultiplier
		for _, t := range tiers[1:] {
			if t.PriceMultiplier < minMult {
				minMult = t.PriceMultiplier
			}
			if t.PriceMultiplier > maxMult {
				maxMult = t.PriceMultiplier
			}
		}
		r = entities.PriceRange{
			Min: s.BasePrice * quantity * minMult,
			Max: s.BasePrice * quantity * maxMult,
		}
	}

	for _, a := range addOns {
		amount := AddOnAmount(a, quantity)
		r.Min += amount
		r.Max += amount
	}
	return r
}

// QuoteTotal aggregates line-item ranges element-wise.
func QuoteTotal(items []entities.QuoteItem) entities.PriceRange {
	var total entities.PriceRange
	for _, item := range items {
		total.Min += item.PriceRange.Min
		total.Max += item.PriceRange.Max
	}
	return total
}

// SelectionPrice computes the definite price of one line item from the
// customer's final selection on the public quote page. The customer chooses
// among the tiers and add-ons the estimator put on the item, so lookups run
// against the item's own lists. It returns false when the item carries tiers
// but the selection names none of them (or an unknown one); such an item
// contributes nothing and leaves the quote incomplete. Items without tier
// options are always complete at their base price.
func SelectionPrice(item entities.QuoteItem, sel entities.ItemSelection) (float64, bool) {
	var total float64
	if len(item.Tiers) > 0 {
		tier, ok := itemTierByID(item, sel.TierID)
		if !ok {
			return 0, false
		}
		total = TierPrice(item.Service, item.Quantity, tier)
	} else {
		total = item.Service.BasePrice * item.Quantity
	}

	for _, id := range sel.AddOnIDs {
		if a, ok := itemAddOnByID(item, id); ok {
			total += AddOnAmount(a, item.Quantity)
		}
	}
	return total, true
}

func itemTierByID(item entities.QuoteItem, id string) (entities.Tier, bool) {
	for _, t := range item.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return entities.Tier{}, false
}

func itemAddOnByID(item entities.QuoteItem, id string) (entities.AddOn, bool) {
	for _, a := range item.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return entities.AddOn{}, false
}

// FinalPrice recomputes the quote total from customer selections,
// independently of the original estimate. Items missing a required tier
// choice contribute zero; the second return value is false until every
// tiered item has a valid selection.
func FinalPrice(items []entities.QuoteItem, selections entities.CustomerSelections) (float64, bool) {
	var total float64
	complete := true
	for _, item := range items {
		price, ok := SelectionPrice(item, selections[item.ID])
		if !ok {
			complete = false
			continue
		}
		total += price
	}
	return total, complete
}
