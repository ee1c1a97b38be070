package domain

import "time"

type EquipmentCategory string

const (
	CategoryTractors   EquipmentCategory = "Tractors"
	CategoryHarvesters EquipmentCategory = "Harvesters"
	CategoryPlanters   EquipmentCategory = "Planters"
	CategoryTillage    EquipmentCategory = "Tillage Equipment"
	CategoryIrrigation EquipmentCategory = "Irrigation Equipment"
	CategoryHay        EquipmentCategory = "Hay Equipment"
	CategoryTools      EquipmentCategory = "Tools"
	CategorySpraying   EquipmentCategory = "Spraying Equipment"
	CategoryFertilizer EquipmentCategory = "Fertilizer Equipment"
	CategoryLivestock  EquipmentCategory = "Livestock Equipment"
	CategoryOther      EquipmentCategory = "Other"
)

var equipmentCategories = map[EquipmentCategory]bool{
	CategoryTractors:   true,
	CategoryHarvesters: true,
	CategoryPlanters:   true,
	CategoryTillage:    true,
	CategoryIrrigation: true,
	CategoryHay:        true,
	CategoryTools:      true,
	CategorySpraying:   true,
	CategoryFertilizer: true,
	CategoryLivestock:  true,
	CategoryOther:      true,
}

func ValidEquipmentCategory(c EquipmentCategory) bool {
	return equipmentCategories[c]
}

// equipmentTypes is finer-grained than category; the two are validated
// independently, matching the listing form.
var equipmentTypes = map[string]bool{
	"Utility Tractor":        true,
	"Compact Tractor":        true,
	"Row Crop Tractor":       true,
	"Garden Tractor":         true,
	"Combine Harvester":      true,
	"Forage Harvester":       true,
	"Potato Harvester":       true,
	"Sugar Beet Harvester":   true,
	"Seed Drill":             true,
	"Planter":                true,
	"Transplanter":           true,
	"Broadcasting Equipment": true,
	"Plow":                   true,
	"Cultivator":             true,
	"Harrow":                 true,
	"Rotary Tiller":          true,
	"Subsoiler":              true,
	"Irrigation Systems":     true,
	"Sprinkler Systems":      true,
	"Drip Irrigation":        true,
	"Center Pivot":           true,
	"Mower":                  true,
	"Rake":                   true,
	"Baler":                  true,
	"Tedder":                 true,
	"Heavy Equipment":        true,
	"Light Equipment":        true,
	"Hand Tools":             true,
	"Power Tools":            true,
	"Other":                  true,
}

func ValidEquipmentType(t string) bool {
	return equipmentTypes[t]
}

type Equipment struct {
	ID         string            `json:"id"`
	ProviderID string            `json:"providerId"`
	Name       string            `json:"name"`
	Category   EquipmentCategory `json:"category"`
	Type       string            `json:"type"`
	Price      float64           `json:"price"`
	Address    string            `json:"address"`
	Available  bool              `json:"available"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// EquipmentUpdate carries a partial update; nil fields are left untouched.
// ProviderID is deliberately absent: ownership is immutable after creation.
type EquipmentUpdate struct {
	Name      *string            `json:"name,omitempty"`
	Category  *EquipmentCategory `json:"category,omitempty"`
	Type      *string            `json:"type,omitempty"`
	Price     *float64           `json:"price,omitempty"`
	Address   *string            `json:"address,omitempty"`
	Available *bool              `json:"available,omitempty"`
}
