package quote

import (
	"errors"
	"testing"

	"surface_rejuvenators/internal/domain/entities"
)

var testServices = []entities.Service{
	{
		ID: "svc-siding", Category: "Pressure Washing", SubCategory: "Siding", Name: "Siding Wash",
		Unit: entities.UnitSquareFeet, AppliesTo: []entities.CustomerType{entities.CustomerTypeResidential},
		BasePrice: 0.30,
		Tiers: []entities.Tier{
			{ID: "tier-a", Name: "Standard", PriceMultiplier: 1.0},
			{ID: "tier-b", Name: "Heavy", PriceMultiplier: 1.5},
		},
		AddOns: []entities.AddOn{
			{ID: "addon-seal", Name: "Sealant", Price: 0.10, UnitBased: true},
		},
	},
	{
		ID: "svc-gutters", Category: "Pressure Washing", SubCategory: "Gutters", Name: "Gutter Cleaning",
		Unit: entities.UnitLinearFeet, AppliesTo: []entities.CustomerType{entities.CustomerTypeResidential, entities.CustomerTypeCommercial},
		BasePrice: 1.50,
	},
	{
		ID: "svc-fleet", Category: "Fleet Washing", SubCategory: "Trucks", Name: "Fleet Wash",
		Unit: entities.UnitItem, AppliesTo: []entities.CustomerType{entities.CustomerTypeCommercial},
		BasePrice: 40,
	},
}

func TestBuilderFlow(t *testing.T) {
	t.Run("full flow produces a priced item", func(t *testing.T) {
		b := NewBuilder(testServices)
		if err := b.SelectCustomerType(entities.CustomerTypeResidential); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectCategory("Pressure Washing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectSubCategory("Siding"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectService("svc-siding"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SetQuantity(1000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectTiers([]string{"tier-a", "tier-b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectAddOns([]string{"addon-seal"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		item, err := b.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Error("expected a generated item id")
		}
		if item.PriceRange.Min != 400 || item.PriceRange.Max != 550 {
			t.Errorf("got {%.2f, %.2f}, want {400.00, 550.00}", item.PriceRange.Min, item.PriceRange.Max)
		}
	})

	t.Run("steps must run in order", func(t *testing.T) {
		b := NewBuilder(testServices)
		if err := b.SelectCategory("Pressure Washing"); !errors.Is(err, ErrWrongStep) {
			t.Errorf("got %v, want ErrWrongStep", err)
		}
		if _, err := b.Services(); !errors.Is(err, ErrWrongStep) {
			t.Errorf("got %v, want ErrWrongStep", err)
		}
		if err := b.SetQuantity(100); !errors.Is(err, ErrWrongStep) {
			t.Errorf("got %v, want ErrWrongStep", err)
		}
	})

	t.Run("customer type narrows every later list", func(t *testing.T) {
		b := NewBuilder(testServices)
		if err := b.SelectCustomerType(entities.CustomerTypeResidential); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cats, err := b.Categories()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range cats {
			if c == "Fleet Washing" {
				t.Error("commercial-only category offered to a residential customer")
			}
		}
		if err := b.SelectCategory("Fleet Washing"); !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("got %v, want ErrUnknownCategory", err)
		}
	})

	t.Run("invalid customer type is rejected", func(t *testing.T) {
		b := NewBuilder(testServices)
		if err := b.SelectCustomerType("Industrial"); !errors.Is(err, ErrInvalidCustomerType) {
			t.Errorf("got %v, want ErrInvalidCustomerType", err)
		}
	})

	t.Run("quantity floors at one", func(t *testing.T) {
		b := builderAtConfigure(t, "svc-siding")
		if err := b.SetQuantity(-50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectTiers([]string{"tier-a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, err := b.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 1 {
			t.Errorf("got quantity %v, want 1", item.Quantity)
		}
	})

	t.Run("tiered service cannot build without a tier", func(t *testing.T) {
		b := builderAtConfigure(t, "svc-siding")
		if _, err := b.Build(); !errors.Is(err, ErrTierRequired) {
			t.Errorf("got %v, want ErrTierRequired", err)
		}
	})

	t.Run("tierless service builds without tiers", func(t *testing.T) {
		b := NewBuilder(testServices)
		if err := b.SelectCustomerType(entities.CustomerTypeResidential); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectCategory("Pressure Washing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectSubCategory("Gutters"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectService("svc-gutters"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SetQuantity(100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, err := b.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.PriceRange.Min != 150 || item.PriceRange.Max != 150 {
			t.Errorf("got {%.2f, %.2f}, want {150.00, 150.00}", item.PriceRange.Min, item.PriceRange.Max)
		}
	})

	t.Run("reselecting a service resets the configuration", func(t *testing.T) {
		b := builderAtConfigure(t, "svc-siding")
		if err := b.SetQuantity(500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectTiers([]string{"tier-b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := b.SelectService("svc-siding"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.Build(); !errors.Is(err, ErrTierRequired) {
			t.Errorf("got %v, want ErrTierRequired after reset", err)
		}
	})

	t.Run("reset discards everything", func(t *testing.T) {
		b := builderAtConfigure(t, "svc-siding")
		b.Reset()
		if b.Step() != StepCustomerType {
			t.Errorf("got step %v, want StepCustomerType", b.Step())
		}
		if r := b.PriceRange(); r.Min != 0 || r.Max != 0 {
			t.Errorf("got %+v, want zero range after reset", r)
		}
	})
}

func TestBuildItem(t *testing.T) {
	t.Run("builds a complete configuration in one call", func(t *testing.T) {
		item, err := BuildItem(testServices, entities.CustomerTypeResidential, "svc-siding", 1000, []string{"tier-a"}, nil, "gate code 4411")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Notes != "gate code 4411" {
			t.Errorf("got notes %q", item.Notes)
		}
		if item.PriceRange.Min != 300 || item.PriceRange.Max != 300 {
			t.Errorf("got {%.2f, %.2f}, want {300.00, 300.00}", item.PriceRange.Min, item.PriceRange.Max)
		}
	})

	t.Run("service outside the customer type is refused", func(t *testing.T) {
		if _, err := BuildItem(testServices, entities.CustomerTypeResidential, "svc-fleet", 2, nil, nil, ""); !errors.Is(err, ErrServiceNotOffered) {
			t.Errorf("got %v, want ErrServiceNotOffered", err)
		}
	})

	t.Run("unknown service is refused", func(t *testing.T) {
		if _, err := BuildItem(testServices, entities.CustomerTypeResidential, "svc-nope", 2, nil, nil, ""); !errors.Is(err, ErrServiceNotOffered) {
			t.Errorf("got %v, want ErrServiceNotOffered", err)
		}
	})

	t.Run("invalid customer type is reported as such", func(t *testing.T) {
		if _, err := BuildItem(testServices, entities.CustomerType("Industrial"), "svc-siding", 1000, []string{"tier-a"}, nil, ""); !errors.Is(err, ErrInvalidCustomerType) {
			t.Errorf("got %v, want ErrInvalidCustomerType", err)
		}
	})
}

func TestEditItem(t *testing.T) {
	original, err := BuildItem(testServices, entities.CustomerTypeResidential, "svc-siding", 1000, []string{"tier-a"}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edited, err := EditItem(testServices, original, 2000, []string{"tier-b"}, []string{"addon-seal"}, "bigger job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edited.ID != original.ID {
		t.Errorf("edit changed the item id: %q -> %q", original.ID, edited.ID)
	}
	if edited.PriceRange.Min != 1100 || edited.PriceRange.Max != 1100 {
		t.Errorf("got {%.2f, %.2f}, want {1100.00, 1100.00}", edited.PriceRange.Min, edited.PriceRange.Max)
	}
}

func builderAtConfigure(t *testing.T, serviceID string) *Builder {
	t.Helper()
	b := NewBuilder(testServices)
	if err := b.SelectCustomerType(entities.CustomerTypeResidential); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.SelectCategory("Pressure Washing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.SelectSubCategory("Siding"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.SelectService(serviceID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}
