package entities

// StepType tags a job-plan step. The generator is instructed to follow the
// prep -> payment sequence but the tag set is not enforced beyond parsing.

type StepType string

const (
	StepPrep        StepType = "prep"
	StepProtection  StepType = "protection"
	StepEquipment   StepType = "equipment"
	StepChemicalMix StepType = "chemical_mix"
	StepApplication StepType = "application"
	StepCleanup     StepType = "cleanup"
	StepWalkthrough StepType = "walkthrough"
	StepPayment     StepType = "payment"
)

// PlanIngredient is one chemical from inventory referenced by a mixing step.
type PlanIngredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// PlanStep is one step of a generated job plan. Chemical-mix steps carry an
// ingredient list and mixing-ratio text; IngredientUsage records the actual
// amounts the technician used, keyed by inventory item id.
type PlanStep struct {
	Type            StepType           `json:"type"`
	Title           string             `json:"title"`
	Details         string             `json:"details"`
	Completed       bool               `json:"completed"`
	Ingredients     []PlanIngredient   `json:"ingredients,omitempty"`
	MixRatio        string             `json:"mix_ratio,omitempty"`
	IngredientUsage map[string]float64 `json:"ingredient_usage,omitempty"`
}

// JobPlan is the AI-generated step-by-step plan attached to a job sheet.
type JobPlan struct {
	Steps []PlanStep `json:"steps"`
}

// AllStepsCompleted reports whether every step has been checked off. A plan
// with no steps is never considered complete.
func (p JobPlan) AllStepsCompleted() bool {
	if len(p.Steps) == 0 {
		return false
	}
	for _, s := range p.Steps {
		if !s.Completed {
			return false
		}
	}
	return true
}
