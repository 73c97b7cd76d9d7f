package response

import "surface_rejuvenators/internal/domain/entities"

type InventoryItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"current_stock"`
	Threshold    float64 `json:"threshold"`
	Unit         string  `json:"unit"`
	LowStock     bool    `json:"low_stock"`
}

func FromInventoryItem(item entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Category:     string(item.Category),
		CurrentStock: item.CurrentStock,
		Threshold:    item.Threshold,
		Unit:         item.Unit,
		LowStock:     item.IsLowStock(),
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		out[i] = FromInventoryItem(item)
	}
	return out
}
