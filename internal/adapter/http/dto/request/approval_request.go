package request

import "surface_rejuvenators/internal/domain/entities"

type ItemSelectionRequest struct {
	TierID   string   `json:"tier_id"`
	AddOnIDs []string `json:"add_on_ids"`
}

// SelectionsRequest carries the customer's per-item choices keyed by
// line-item id. Used by both the live preview and the approval itself.
type SelectionsRequest struct {
	Selections map[string]ItemSelectionRequest `json:"selections" binding:"required"`
}

type ApproveQuoteRequest struct {
	Selections map[string]ItemSelectionRequest `json:"selections" binding:"required"`
	Signature  string                          `json:"signature"`
}

func toSelections(in map[string]ItemSelectionRequest) entities.CustomerSelections {
	out := make(entities.CustomerSelections, len(in))
	for itemID, sel := range in {
		out[itemID] = entities.ItemSelection{TierID: sel.TierID, AddOnIDs: sel.AddOnIDs}
	}
	return out
}

func (r SelectionsRequest) ToSelections() entities.CustomerSelections {
	return toSelections(r.Selections)
}

func (r ApproveQuoteRequest) ToSelections() entities.CustomerSelections {
	return toSelections(r.Selections)
}
