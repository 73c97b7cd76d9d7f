package request

// UpdateStepRequest updates a single plan step: toggle completion, record
// the actual ingredient amounts used, or both. Nil means "leave unchanged".
type UpdateStepRequest struct {
	Completed       *bool              `json:"completed"`
	IngredientUsage map[string]float64 `json:"ingredient_usage"`
}

// UpdateSheetRequest patches the job sheet. Nil fields are left unchanged;
// an empty (non-nil) photo list clears the corresponding list.
type UpdateSheetRequest struct {
	Notes        *string  `json:"notes"`
	BeforePhotos []string `json:"before_photos"`
	AfterPhotos  []string `json:"after_photos"`
}

type CompleteJobRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type DelayJobRequest struct {
	Reason string `json:"reason" binding:"required"`
}
