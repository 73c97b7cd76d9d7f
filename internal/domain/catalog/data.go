package catalog

import "surface_rejuvenators/internal/domain/entities"

// Reference data for Surface Rejuvenators LLC. Everything in this file is
// immutable at runtime; accessors in catalog.go hand out copies where a
// caller could otherwise mutate shared state.

var soilTiers = []entities.Tier{
	{ID: "tier-std", Name: "Standard", Description: "Light soil & mildew", PriceMultiplier: 1.0},
	{ID: "tier-bst", Name: "Boost", Description: "Moderate soil & growth", PriceMultiplier: 1.15},
	{ID: "tier-pro", Name: "Pro", Description: "Heavy soil, stains & neglect", PriceMultiplier: 1.30},
}

var (
	plantGuardAddOn   = entities.AddOn{ID: "addon-plantguard", Name: "SRS-PlantGuard", Description: "Protects landscaping from runoff.", Price: 0.05, UnitBased: true}
	shieldAddOn       = entities.AddOn{ID: "addon-shield", Name: "SRS-Shield", Description: "Prevents mildew regrowth.", Price: 0.05, UnitBased: true}
	brightenAddOn     = entities.AddOn{ID: "addon-brighten", Name: "SRW-Brighten", Description: "For rust/efflorescence.", Price: 0.08, UnitBased: true}
	woodBrightenAddOn = entities.AddOn{ID: "addon-wood-brighten", Name: "SRN-Wood Brighten", Description: "Restores color; acid neutralization.", Price: 0.10, UnitBased: true}
	gutterGuardAddOn  = entities.AddOn{ID: "addon-gutter-guard", Name: "With Guards (Add-On)", Description: "Remove / reinstall labor.", Price: 0.35, UnitBased: true}
	screenAddOn       = entities.AddOn{ID: "addon-screen", Name: "Screen Cleaning", Description: "Clean window screens.", Price: 1.00, UnitBased: false}
	trackAddOn        = entities.AddOn{ID: "addon-track", Name: "Track Detailing", Description: "Detail window tracks.", Price: 1.50, UnitBased: false}
)

var (
	residential = []entities.CustomerType{entities.CustomerTypeResidential}
	commercial  = []entities.CustomerType{entities.CustomerTypeCommercial}
	both        = []entities.CustomerType{entities.CustomerTypeResidential, entities.CustomerTypeCommercial}
)

const washCategory = "Pressure & Soft Washing"

var services = []entities.Service{
	// House / Siding
	{ID: "svc-vinyl", Category: washCategory, SubCategory: "House / Siding", Name: "Vinyl Siding", Description: "Soft wash for vinyl siding.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.28, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn, shieldAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{
		ID: "svc-aluminum", Category: washCategory, SubCategory: "House / Siding", Name: "Aluminum Siding",
		Description: "Cleaning for aluminum siding.", Unit: entities.UnitSquareFeet, AppliesTo: residential,
		// Base price is for standard oxidation.
		BasePrice: 0.37,
		Tiers: []entities.Tier{
			{ID: "tier-wash-only", Name: "Wash Only", Description: "Standard clean for light soil, no oxidation removal.", PriceMultiplier: 0.81, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
			{ID: "tier-std-ox", Name: "Standard", Description: "Light oxidation & soil removal.", PriceMultiplier: 1.0},
			{ID: "tier-bst-ox", Name: "Boost", Description: "Moderate oxidation & soil.", PriceMultiplier: 1.16},
			{ID: "tier-pro-ox", Name: "Pro", Description: "Heavy oxidation & neglect.", PriceMultiplier: 1.35},
		},
		AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRW-Brighten", "SRN-Neutralize"},
	},
	{ID: "svc-wood-siding", Category: washCategory, SubCategory: "House / Siding", Name: "Painted Wood / T1-11", Description: "Gentle wash for painted wood.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.33, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-brick", Category: washCategory, SubCategory: "House / Siding", Name: "Brick / Masonry", Description: "Cleaning for brick and masonry.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.31, Tiers: soilTiers, AddOns: []entities.AddOn{shieldAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-stucco", Category: washCategory, SubCategory: "House / Siding", Name: "Stucco / EIFS", Description: "Soft wash for stucco surfaces.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.35, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-hardie", Category: washCategory, SubCategory: "House / Siding", Name: "Fiber Cement / Hardie", Description: "Cleaning for fiber cement siding.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.31, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},

	// Roof Cleaning
	{ID: "svc-asphalt-roof", Category: washCategory, SubCategory: "Roof Cleaning", Name: "Asphalt Shingle", Description: "Soft wash for asphalt shingle roofs.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.38, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-metal-roof", Category: washCategory, SubCategory: "Roof Cleaning", Name: "Metal Roof", Description: "Cleaning for metal roofs.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.43, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-tile-roof", Category: washCategory, SubCategory: "Roof Cleaning", Name: "Tile / Clay Roof", Description: "Soft wash for tile roofs.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.53, Tiers: soilTiers, AddOns: []entities.AddOn{plantGuardAddOn}, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},
	{ID: "svc-cedar-roof", Category: washCategory, SubCategory: "Roof Cleaning", Name: "Cedar Shake / Wood Roof", Description: "Specialized cleaning for wood roofs.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.48, Tiers: soilTiers, AddOns: []entities.AddOn{shieldAddOn}, Includes: []string{"SRS-Wood", "SRN-Wood"}},
	{ID: "svc-flat-roof", Category: washCategory, SubCategory: "Roof Cleaning", Name: "Flat / EPDM Roof", Description: "Cleaning for flat commercial roofs.", Unit: entities.UnitSquareFeet, AppliesTo: commercial, BasePrice: 0.33, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},

	// Deck & Fence Cleaning
	{ID: "svc-pt-wood", Category: washCategory, SubCategory: "Deck & Fence Cleaning", Name: "Pressure-Treated Wood", Description: "Cleaning for PT wood decks/fences.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.28, Tiers: soilTiers, AddOns: []entities.AddOn{woodBrightenAddOn}, Includes: []string{"SRS-Wood", "SRN-Neutralize"}},
	{ID: "svc-cedar-wood", Category: washCategory, SubCategory: "Deck & Fence Cleaning", Name: "Cedar / Redwood", Description: "Gentle cleaning for cedar/redwood.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.33, Tiers: soilTiers, AddOns: []entities.AddOn{woodBrightenAddOn}, Includes: []string{"SRS-Wood", "SRN-Wood"}},
	{ID: "svc-composite", Category: washCategory, SubCategory: "Deck & Fence Cleaning", Name: "Composite Decking", Description: "Cleaning for composite materials.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.30, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRS-Wood", "SRN-Neutralize"}},
	{ID: "svc-painted-wood", Category: washCategory, SubCategory: "Deck & Fence Cleaning", Name: "Painted / Sealed Wood", Description: "Coating-safe gentle wash.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.33, Tiers: []entities.Tier{{ID: "tier-std-only", Name: "Standard", Description: "Gentle coating-safe formula", PriceMultiplier: 1.0}}, AddOns: nil, Includes: []string{"SRS-Finish"}},
	{ID: "svc-vinyl-fence", Category: washCategory, SubCategory: "Deck & Fence Cleaning", Name: "Vinyl Fence", Description: "Softwash for vinyl fencing.", Unit: entities.UnitSquareFeet, AppliesTo: residential, BasePrice: 0.25, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRS-Exterior", "SRN-Neutralize"}},

	// Concrete / Paver Cleaning
	{ID: "svc-broom-concrete", Category: washCategory, SubCategory: "Concrete / Paver Cleaning", Name: "Broom-Finish Concrete", Description: "Standard concrete driveway/patio cleaning.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.20, Tiers: soilTiers, AddOns: []entities.AddOn{brightenAddOn}, Includes: []string{"SRP-Concrete", "SRN-Neutralize"}},
	{ID: "svc-dec-concrete", Category: washCategory, SubCategory: "Concrete / Paver Cleaning", Name: "Decorative Concrete", Description: "Gentle cleaning for stamped/decorative concrete.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.25, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRP-Concrete", "SRN-Neutralize"}},
	{ID: "svc-brick-pavers", Category: washCategory, SubCategory: "Concrete / Paver Cleaning", Name: "Brick / Clay Pavers", Description: "Cleaning for brick/clay pavers.", Unit: entities.UnitSquareFeet, AppliesTo: both, BasePrice: 0.26, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRP-Concrete", "SRN-Neutralize"}},
	{ID: "svc-garage", Category: washCategory, SubCategory: "Concrete / Paver Cleaning", Name: "Garage / Shop Floors", Description: "Interior concrete floor cleaning.", Unit: entities.UnitSquareFeet, AppliesTo: commercial, BasePrice: 0.28, Tiers: soilTiers, AddOns: nil, Includes: []string{"SRP-Concrete", "SRN-Neutralize"}},

	// Gutter & Window Cleaning
	{ID: "svc-gutter-ext", Category: washCategory, SubCategory: "Gutter & Window Cleaning", Name: "Gutter Exterior Brightening", Description: "Exterior brightening of gutters.", Unit: entities.UnitLinearFeet, AppliesTo: both, BasePrice: 1.40, Tiers: nil, AddOns: []entities.AddOn{gutterGuardAddOn}, Includes: []string{"SRW-Brighten", "SRN-Neutralize"}},
	{ID: "svc-gutter-full", Category: washCategory, SubCategory: "Gutter & Window Cleaning", Name: "Gutter Inside & Out", Description: "Debris removal and exterior brightening.", Unit: entities.UnitLinearFeet, AppliesTo: both, BasePrice: 1.60, Tiers: nil, AddOns: []entities.AddOn{gutterGuardAddOn}, Includes: []string{"SRW-Brighten", "SRN-Neutralize"}},
	{ID: "svc-window-ext-1", Category: washCategory, SubCategory: "Gutter & Window Cleaning", Name: "Window Cleaning (Ext, 1st Story)", Description: "Exterior window cleaning, ground level.", Unit: entities.UnitWindow, AppliesTo: both, BasePrice: 5.00, Tiers: nil, AddOns: []entities.AddOn{screenAddOn, trackAddOn}},
	{ID: "svc-window-ext-2", Category: washCategory, SubCategory: "Gutter & Window Cleaning", Name: "Window Cleaning (Ext, 2nd Story)", Description: "Exterior window cleaning, second level.", Unit: entities.UnitWindow, AppliesTo: both, BasePrice: 6.50, Tiers: nil, AddOns: []entities.AddOn{screenAddOn}},
	{ID: "svc-window-int-ext-1", Category: washCategory, SubCategory: "Gutter & Window Cleaning", Name: "Window Cleaning (Int/Ext, 1st Story)", Description: "Full window cleaning, ground level.", Unit: entities.UnitWindow, AppliesTo: residential, BasePrice: 8.00, Tiers: nil, AddOns: []entities.AddOn{trackAddOn}},

	// Other categories
	{ID: "svc-drywall", Category: "Handyman & Light Carpentry", SubCategory: "Repairs", Name: "Minor Drywall Repair", Description: "Patching small holes and cracks.", Unit: entities.UnitHour, AppliesTo: both, BasePrice: 65},
	{ID: "svc-furniture-assembly", Category: "Furniture Assembly", SubCategory: "Assembly", Name: "Standard Item Assembly", Description: "Assembly of flat-pack furniture.", Unit: entities.UnitItem, AppliesTo: residential, BasePrice: 80},
	{ID: "svc-yard-cleanup", Category: "Property Maintenance", SubCategory: "Cleanup", Name: "Yard Debris Cleanup", Description: "Removal of leaves, branches, etc.", Unit: entities.UnitHour, AppliesTo: both, BasePrice: 55},
	{ID: "svc-oil-change", Category: "Mobile Mechanic", SubCategory: "Maintenance", Name: "Standard Oil Change", Description: "Mobile oil and filter change.", Unit: entities.UnitJob, AppliesTo: both, BasePrice: 90},
}

// formulaIngredients maps a formula identifier to the inventory ids of the
// chemicals it needs. Empty means water only, nothing drawn from stock.
var formulaIngredients = map[string][]string{
	"SRS-Exterior":      {"chem-sh-12", "chem-eco-surf"},
	"SRN-Neutralize":    {},
	"SRW-Brighten":      {"chem-rust-remover"},
	"SRS-Wood":          {"chem-wood-cleaner"},
	"SRN-Wood":          {"chem-wood-brightener"},
	"SRS-Finish":        {"chem-coating-safe-cleaner"},
	"SRP-Concrete":      {"chem-sh-12", "chem-degreaser"},
	"SRN-Wood Brighten": {"chem-wood-brightener"},
	"SRS-PlantGuard":    {},
	"SRS-Shield":        {},
}

// serviceEquipment maps a service id or category (plus the "base" kit every
// job carries) to the equipment it needs.
var serviceEquipment = map[string][]string{
	"base":               {"equip-pw-4gpm", "equip-hose-200ft", "equip-wands"},
	washCategory:         {"equip-ladder-24ft"},
	"svc-broom-concrete": {"equip-surface-cleaner"},
	"svc-dec-concrete":   {"equip-surface-cleaner"},
	"svc-brick-pavers":   {"equip-surface-cleaner"},
	"svc-garage":         {"equip-surface-cleaner"},
}

var seedInventory = []entities.InventoryItem{
	{ID: "chem-sh-12", Name: "Sodium Hypochlorite 12.5%", Description: "Bleach for house washing and concrete.", Category: entities.InventoryCategoryChemical, CurrentStock: 50, Threshold: 10, Unit: "gallons"},
	{ID: "chem-eco-surf", Name: "Eco Surfactant", Description: "Eco-friendly soap for better cleaning.", Category: entities.InventoryCategoryChemical, CurrentStock: 5, Threshold: 2, Unit: "gallons"},
	{ID: "chem-degreaser", Name: "Heavy Duty Degreaser", Description: "For oil stains on driveways.", Category: entities.InventoryCategoryChemical, CurrentStock: 2, Threshold: 1, Unit: "gallons"},
	{ID: "chem-rust-remover", Name: "Rust Remover", Description: "For rust stains on concrete.", Category: entities.InventoryCategoryChemical, CurrentStock: 1, Threshold: 0.5, Unit: "gallons"},
	{ID: "chem-wood-brightener", Name: "Wood Brightener", Description: "Neutralizes and brightens wood.", Category: entities.InventoryCategoryChemical, CurrentStock: 3, Threshold: 1, Unit: "gallons"},
	{ID: "chem-wood-cleaner", Name: "Eco Wood Cleaner", Description: "Gentle cleaner for wood surfaces.", Category: entities.InventoryCategoryChemical, CurrentStock: 3, Threshold: 1, Unit: "gallons"},
	{ID: "chem-coating-safe-cleaner", Name: "Coating-Safe Cleaner", Description: "For painted/sealed surfaces.", Category: entities.InventoryCategoryChemical, CurrentStock: 2, Threshold: 1, Unit: "gallons"},

	{ID: "equip-pw-4gpm", Name: "4GPM Pressure Washer", Description: "Main pressure washing unit.", Category: entities.InventoryCategoryEquipment, CurrentStock: 1, Threshold: 1, Unit: "unit"},
	{ID: "equip-surface-cleaner", Name: "20\" Surface Cleaner", Description: "For cleaning large flat surfaces like driveways.", Category: entities.InventoryCategoryEquipment, CurrentStock: 1, Threshold: 1, Unit: "unit"},
	{ID: "equip-hose-200ft", Name: "200ft Pressure Hose", Description: "High-pressure hose.", Category: entities.InventoryCategoryEquipment, CurrentStock: 1, Threshold: 1, Unit: "unit"},
	{ID: "equip-ladder-24ft", Name: "24ft Extension Ladder", Description: "For reaching high areas.", Category: entities.InventoryCategoryEquipment, CurrentStock: 1, Threshold: 1, Unit: "unit"},
	{ID: "equip-wands", Name: "Wands and Nozzles Kit", Description: "Various wands and nozzles.", Category: entities.InventoryCategoryEquipment, CurrentStock: 1, Threshold: 1, Unit: "unit"},
}
