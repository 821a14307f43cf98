package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain"
)

func TestClassifyFacility(t *testing.T) {
	tests := []struct {
		name     string
		typeText string
		category domain.Category
		icon     string
		label    string
	}{
		{"empty defaults to processing", "", domain.CategoryProcessing, domain.IconProcessing, "Processing Facility"},
		{"unrecognized defaults to processing", "Meat Processing; Poultry Processing", domain.CategoryProcessing, domain.IconProcessing, "Processing Facility"},

		{"cattle slaughterhouse", "Cattle Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Cattle Slaughterhouse"},
		{"pig slaughterhouse", "Pig Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Pig Slaughterhouse"},
		{"poultry slaughterhouse", "Poultry Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Poultry Slaughterhouse"},
		{"sheep and lamb", "Sheep & Lamb Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Sheep & Lamb Slaughterhouse"},
		{"goat slaughterhouse", "Goat Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Goat Slaughterhouse"},
		{"horse slaughterhouse", "Horse Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Horse Slaughterhouse"},
		{"other mammal", "Other Mammal Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Other Mammal Slaughterhouse"},
		{"large bird", "Large Bird Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Large Bird Slaughterhouse"},
		{"wild bird", "Wild Bird Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Wild Bird Slaughterhouse"},
		{"wild rabbit", "Wild Rabbit Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Wild Rabbit Slaughterhouse"},
		{"case insensitive subtype", "CATTLE SLAUGHTERHOUSE", domain.CategorySlaughter, domain.IconSlaughter, "Cattle Slaughterhouse"},

		{"mixed slaughterhouse with qualifier", "Mixed Slaughterhouse (Cattle, Pig)", domain.CategorySlaughter, domain.IconSlaughter, "Mixed Slaughterhouse (Cattle, Pig)"},
		{"mixed slaughterhouse bare", "Mixed Slaughterhouse", domain.CategorySlaughter, domain.IconSlaughter, "Mixed Slaughterhouse"},
		{"generic slaughter", "Meat Slaughter", domain.CategorySlaughter, domain.IconSlaughter, "Slaughterhouse"},
		{"embedded slaughter", "Red Meat Slaughter; Processing", domain.CategorySlaughter, domain.IconSlaughter, "Slaughterhouse"},

		{"dairy farm", "Dairy Farm", domain.CategoryBreeder, domain.IconBreeder, "Dairy Farm"},
		{"intensive pig farm", "Intensive Pig Farm", domain.CategoryBreeder, domain.IconBreeder, "Intensive Pig Farm"},
		{"intensive sow pig farm", "Intensive Sow Pig Farm", domain.CategoryBreeder, domain.IconBreeder, "Intensive Sow Pig Farm"},
		{"intensive poultry farm", "Intensive Poultry Farm", domain.CategoryBreeder, domain.IconBreeder, "Intensive Poultry Farm"},
		{"finishing unit", "Finishing Unit", domain.CategoryBreeder, domain.IconBreeder, "Finishing Unit"},

		{"mixed farm with qualifier", "Mixed Farm (Pig, Poultry)", domain.CategoryBreeder, domain.IconBreeder, "Mixed Farm (Pig, Poultry)"},
		{"mixed farm bare", "mixed farm", domain.CategoryBreeder, domain.IconBreeder, "Mixed Farm"},
		{"mixed farm beats slaughter", "Mixed Farm (Pig) Slaughter", domain.CategoryBreeder, domain.IconBreeder, "Mixed Farm (Pig)"},

		{"pig breeding farm", "Pig Breeding Farm", domain.CategoryBreeder, domain.IconBreeder, "Pig Breeding Farm"},
		{"pig farm", "Pig Farm", domain.CategoryBreeder, domain.IconBreeder, "Pig Farm"},
		{"poultry farm", "Poultry Farm", domain.CategoryBreeder, domain.IconBreeder, "Poultry Farm"},
		{"aquaculture", "Aquaculture", domain.CategoryBreeder, domain.IconBreeder, "Aquaculture Facility"},

		{"generic farm with animal token", "Sheep Farm", domain.CategoryBreeder, domain.IconBreeder, "Sheep Farm"},
		{"first animal token wins", "Cattle and Dairy Farm", domain.CategoryBreeder, domain.IconBreeder, "Dairy Farm"},
		{"intensive farm without animal", "Intensive Farm", domain.CategoryBreeder, domain.IconBreeder, "Intensive Farm"},
		{"farm without animal", "Farm", domain.CategoryBreeder, domain.IconBreeder, "Farm"},

		{"animal production", "Animal Production", domain.CategoryBreeder, domain.IconBreeder, "Animal Farm"},
		{"game production", "Animal Production - Game", domain.CategoryBreeder, domain.IconBreeder, "Game/Hunting Facility"},
		{"hunting production", "Hunting Animal Production", domain.CategoryBreeder, domain.IconBreeder, "Game/Hunting Facility"},

		{"exhibition", "Exhibition", domain.CategoryExhibitor, domain.IconExhibitor, "Exhibition Facility"},

		{"aquatic production", "Aquatic Animal Production", domain.CategoryBreeder, domain.IconBreeder, "Aquatic Production Facility"},
		{"aquatic processing", "Aquatic Processing Establishment", domain.CategorySlaughter, domain.IconSlaughter, "Aquatic Processing Facility"},

		{"chicken producer", "Chicken Producer", domain.CategoryBreeder, domain.IconBreeder, "Chicken Producer"},
		{"butcher", "Butcher", domain.CategorySlaughter, domain.IconSlaughter, "Butcher"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.ClassifyFacility(tt.typeText, "")
			assert.Equal(t, tt.category, c.Category)
			assert.Equal(t, tt.icon, c.IconKey)
			assert.Equal(t, tt.label, c.DisplayLabel)
		})
	}
}

func TestClassifyFacilityQualifierKeepsSourceCase(t *testing.T) {
	c := domain.ClassifyFacility("mixed slaughterhouse (Cattle, Pig)", "")
	assert.Equal(t, "Mixed Slaughterhouse (Cattle, Pig)", c.DisplayLabel)
}
