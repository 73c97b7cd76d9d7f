package interfaces

import (
	"context"

	"surface_rejuvenators/internal/domain/entities"
)

// PlanService is one configured service as presented to the plan generator:
// the display label carries the resolved tier names, AddOnNames the chosen
// extras.
type PlanService struct {
	ID         string
	Label      string
	AddOnNames []string
}

// IPlanGenerator produces a technician job plan from the configured services
// and the chemicals available for mixing. It is an opaque, possibly-failing
// remote call: implementations return either a plan with at least one step
// or an error, never a partial plan.
type IPlanGenerator interface {
	GeneratePlan(ctx context.Context, services []PlanService, ingredients []entities.InventoryItem) (entities.JobPlan, error)
}
