package entities

// CustomerType distinguishes residential from commercial work. A service is
// only offered to the customer types listed in its AppliesTo set.

type CustomerType string

const (
	CustomerTypeResidential CustomerType = "Residential"
	CustomerTypeCommercial  CustomerType = "Commercial"
)

func (c CustomerType) IsValid() bool {
	return c == CustomerTypeResidential || c == CustomerTypeCommercial
}

// UnitOfMeasure is the unit a service is quoted in. Quantity semantics depend
// on it (area, length, count, hours, or a single flat job).

type UnitOfMeasure string

const (
	UnitSquareFeet UnitOfMeasure = "sq ft"
	UnitLinearFeet UnitOfMeasure = "lf"
	UnitWindow     UnitOfMeasure = "window"
	UnitHour       UnitOfMeasure = "hour"
	UnitItem       UnitOfMeasure = "item"
	UnitJob        UnitOfMeasure = "job"
)

// Tier is a pricing variant of a service (soil/severity level). The
// multiplier applies to basePrice x quantity. A tier may override the
// service-level formula list via Includes.
type Tier struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PriceMultiplier float64  `json:"price_multiplier"`
	Includes        []string `json:"includes,omitempty"`
}

// AddOn is an optional extra charged on top of the tier price. Its cost is
// independent of which tier was chosen: unit-based add-ons scale with
// quantity, flat add-ons do not.
type AddOn struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	UnitBased   bool    `json:"unit_based"`
}

// Service is a purchasable unit of work from the catalog. Services are
// immutable reference data and are never mutated at runtime.
type Service struct {
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	SubCategory string         `json:"sub_category"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Unit        UnitOfMeasure  `json:"unit"`
	AppliesTo   []CustomerType `json:"applies_to"`
	BasePrice   float64        `json:"base_price"`
	Tiers       []Tier         `json:"tiers"`
	AddOns      []AddOn        `json:"add_ons"`
	Includes    []string       `json:"includes,omitempty"`
}

// HasTiers reports whether the service defines pricing tiers. Tierless
// services (gutters, windows, hourly work) are single-price: the tier
// multiplier step is skipped entirely.
func (s Service) HasTiers() bool {
	return len(s.Tiers) > 0
}

func (s Service) AppliesToType(ct CustomerType) bool {
	for _, t := range s.AppliesTo {
		if t == ct {
			return true
		}
	}
	return false
}

// TierByID returns the tier with the given id and whether it exists on this
// service. Selections referencing unknown tiers are invalid.
func (s Service) TierByID(id string) (Tier, bool) {
	for _, t := range s.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

func (s Service) AddOnByID(id string) (AddOn, bool) {
	for _, a := range s.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
