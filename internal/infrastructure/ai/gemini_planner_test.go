package ai

import (
	"errors"
	"strings"
	"testing"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase/interfaces"
)

func TestParsePlan(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		raw := `{"steps":[{"type":"prep","title":"Walk the property","details":"Note fragile items.","completed":false},{"type":"chemical_mix","title":"Mix house wash","details":"Mix in the batch tank.","completed":false,"ingredients":[{"id":"chem-sh-12","name":"Sodium Hypochlorite 12.5%","unit":"gallons"}],"mix_ratio":"1 gallon SH to 4 gallons of water"}]}`
		plan, err := parsePlan(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Steps) != 2 {
			t.Fatalf("got %d steps", len(plan.Steps))
		}
		if plan.Steps[1].Type != entities.StepChemicalMix {
			t.Errorf("got type %s", plan.Steps[1].Type)
		}
		if len(plan.Steps[1].Ingredients) != 1 || plan.Steps[1].Ingredients[0].ID != "chem-sh-12" {
			t.Errorf("got ingredients %+v", plan.Steps[1].Ingredients)
		}
	})

	t.Run("model output wrapped in a code fence is repaired", func(t *testing.T) {
		raw := "```json\n{\"steps\":[{\"type\":\"prep\",\"title\":\"Prep\",\"details\":\"x\",\"completed\":false}]}\n```"
		plan, err := parsePlan(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Steps) != 1 {
			t.Fatalf("got %d steps", len(plan.Steps))
		}
	})

	t.Run("steps always start unchecked", func(t *testing.T) {
		raw := `{"steps":[{"type":"prep","title":"Prep","details":"x","completed":true}]}`
		plan, err := parsePlan(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Steps[0].Completed {
			t.Error("completed flag from the model was kept")
		}
	})

	t.Run("empty output", func(t *testing.T) {
		if _, err := parsePlan("   "); !errors.Is(err, ErrEmptyPlan) {
			t.Errorf("got %v, want ErrEmptyPlan", err)
		}
	})

	t.Run("no steps", func(t *testing.T) {
		if _, err := parsePlan(`{"steps":[]}`); !errors.Is(err, ErrEmptyPlan) {
			t.Errorf("got %v, want ErrEmptyPlan", err)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	services := []interfaces.PlanService{
		{ID: "svc-vinyl", Label: "Vinyl Siding (Standard Tier)", AddOnNames: []string{"Plant Guard"}},
	}
	ingredients := []entities.InventoryItem{
		{ID: "chem-sh-12", Name: "Sodium Hypochlorite 12.5%", Unit: "gallons"},
	}

	prompt := buildPrompt(services, ingredients)
	for _, want := range []string{
		"- Vinyl Siding (Standard Tier) (ID: svc-vinyl) with add-ons: Plant Guard",
		"- Sodium Hypochlorite 12.5% (ID: chem-sh-12, Unit: gallons)",
		"Surface Rejuvenators LLC",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
