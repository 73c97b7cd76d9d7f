package request

// AdjustStockRequest is a manual stock correction. Delta may be negative;
// the resulting stock is floored at zero.
type AdjustStockRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}
