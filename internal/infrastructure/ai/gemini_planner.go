// Package ai implements the job-plan generator on Gemini.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"surface_rejuvenators/internal/domain/entities"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var ErrEmptyPlan = errors.New("empty plan response")

type GeminiPlanner struct {
	model *genai.GenerativeModel
}

var _ interfaces.IPlanGenerator = (*GeminiPlanner)(nil)

// planSchema constrains the model to the step structure the job sheet
// renders. Ingredients and mix ratio only appear on chemical_mix steps.
var planSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"steps": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":      {Type: genai.TypeString, Description: "The step type, e.g., 'prep', 'chemical_mix', 'application'."},
					"title":     {Type: genai.TypeString, Description: "A short title for the step."},
					"details":   {Type: genai.TypeString, Description: "Detailed instructions for the technician."},
					"completed": {Type: genai.TypeBoolean, Description: "Default to false."},
					"ingredients": {
						Type:        genai.TypeArray,
						Description: "List of chemical ingredients for a mixing step.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"id":   {Type: genai.TypeString, Description: "The inventory ID of the ingredient."},
								"name": {Type: genai.TypeString, Description: "The name of the ingredient."},
								"unit": {Type: genai.TypeString, Description: "The unit of measurement for the ingredient (e.g., 'gallons', 'lbs')."},
							},
							Required: []string{"id", "name", "unit"},
						},
					},
					"mix_ratio": {Type: genai.TypeString, Description: "The mixing ratio instructions, e.g., '1 gallon of Sodium Hypochlorite and 4 oz of Eco Surfactant to 4 gallons of water'."},
				},
				Required: []string{"type", "title", "details", "completed"},
			},
		},
	},
}

func NewGeminiPlanner(ctx context.Context, apiKey, modelName string) (*GeminiPlanner, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = planSchema
	return &GeminiPlanner{model: model}, nil
}

func (g *GeminiPlanner) GeneratePlan(ctx context.Context, services []interfaces.PlanService, ingredients []entities.InventoryItem) (entities.JobPlan, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(services, ingredients)))
	if err != nil {
		return entities.JobPlan{}, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return entities.JobPlan{}, ErrEmptyPlan
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parsePlan(sb.String())
}

func buildPrompt(services []interfaces.PlanService, ingredients []entities.InventoryItem) string {
	var serviceList strings.Builder
	for _, s := range services {
		fmt.Fprintf(&serviceList, "- %s (ID: %s)", s.Label, s.ID)
		if len(s.AddOnNames) > 0 {
			fmt.Fprintf(&serviceList, " with add-ons: %s", strings.Join(s.AddOnNames, ", "))
		}
		serviceList.WriteString("\n")
	}

	var ingredientList strings.Builder
	for _, i := range ingredients {
		fmt.Fprintf(&ingredientList, "- %s (ID: %s, Unit: %s)\n", i.Name, i.ID, i.Unit)
	}

	return fmt.Sprintf(`ROLE: Expert operations planner for "Surface Rejuvenators LLC", an eco-friendly pressure washing company.

TASK: Generate a structured, step-by-step job plan in JSON format that strictly adheres to the provided schema.

CONTEXT:
- The company uses only non-toxic, biodegradable chemicals.
- Safety (PPE, situational awareness) and property protection (pre-wetting plants, covering outlets) are top priorities.

INPUT DATA:
1. Services to be performed for this job:
%s
2. Chemical ingredients available for mixing:
%s
INSTRUCTIONS:
1. Create a logical sequence of steps for the job.
2. The sequence should generally follow: 'prep', 'protection', 'equipment', 'chemical_mix', 'application', 'cleanup', 'walkthrough', 'payment'.
3. Create a 'chemical_mix' step for each service that requires a chemical application.
4. For each 'chemical_mix' step, you MUST populate the 'ingredients' array with the correct objects from the "Chemical ingredients available" list. Use the provided IDs.
5. Provide clear, concise instructions in the 'details' and 'mix_ratio' fields for the technician.
6. Ensure the final output is a valid JSON object matching the schema.
`, serviceList.String(), ingredientList.String())
}

// parsePlan decodes the model output, running it through json-repair first
// when it is not already valid JSON. New steps always start unchecked.
func parsePlan(raw string) (entities.JobPlan, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.JobPlan{}, ErrEmptyPlan
	}

	var plan entities.JobPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		repaired, repErr := jsonrepair.RepairJSON(raw)
		if repErr != nil {
			return entities.JobPlan{}, fmt.Errorf("parse plan: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
			return entities.JobPlan{}, fmt.Errorf("parse repaired plan: %w", err)
		}
	}
	if len(plan.Steps) == 0 {
		return entities.JobPlan{}, ErrEmptyPlan
	}
	for i := range plan.Steps {
		plan.Steps[i].Completed = false
	}
	return plan, nil
}
