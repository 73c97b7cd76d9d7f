package entities

type InventoryCategory string

const (
	InventoryCategoryChemical  InventoryCategory = "chemical"
	InventoryCategoryEquipment InventoryCategory = "equipment"
)

// InventoryItem tracks stock of a chemical or piece of equipment.
// Consumption decrements CurrentStock; nothing auto-reorders.
type InventoryItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Category     InventoryCategory `json:"category"`
	CurrentStock float64           `json:"current_stock"`
	Threshold    float64           `json:"threshold"`
	Unit         string            `json:"unit"`
}

func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock < i.Threshold
}
