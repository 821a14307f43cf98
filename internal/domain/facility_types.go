package domain

import (
	"regexp"
	"strings"
)

// Named slaughterhouse subtypes. Matched as substrings against the
// lowercased facility type, in this order.
var slaughterhouseSubtypes = []struct {
	keyword string
	label   string
}{
	{"cattle slaughterhouse", "Cattle Slaughterhouse"},
	{"pig slaughterhouse", "Pig Slaughterhouse"},
	{"poultry slaughterhouse", "Poultry Slaughterhouse"},
	{"sheep & lamb slaughterhouse", "Sheep & Lamb Slaughterhouse"},
	{"goat slaughterhouse", "Goat Slaughterhouse"},
	{"horse slaughterhouse", "Horse Slaughterhouse"},
	{"other mammal slaughterhouse", "Other Mammal Slaughterhouse"},
	{"large bird slaughterhouse", "Large Bird Slaughterhouse"},
	{"wild bird slaughterhouse", "Wild Bird Slaughterhouse"},
	{"wild rabbit slaughterhouse", "Wild Rabbit Slaughterhouse"},
}

// Animal tokens scanned for generic "farm" types. Order matters: the first
// token found in the text names the farm.
var farmAnimalTokens = []string{
	"dairy", "pig", "poultry", "cattle", "beef", "sheep", "goat", "chicken",
	"duck", "turkey", "lamb", "horse", "deer", "rabbit", "pheasant", "quail",
	"ostrich", "emu", "bison", "buffalo", "elk", "goose",
}

// Compound farm types with fixed display labels.
var compoundFarmTypes = []struct {
	keyword string
	label   string
}{
	{"dairy farm", "Dairy Farm"},
	{"intensive pig farm", "Intensive Pig Farm"},
	{"intensive poultry farm", "Intensive Poultry Farm"},
	{"intensive sow pig farm", "Intensive Sow Pig Farm"},
	{"finishing unit", "Finishing Unit"},
}

// Spain-sourced compound types. Checked after the slaughter rules so that a
// "pig farm slaughterhouse" is never misfiled as a farm.
var spanishFarmTypes = []struct {
	keyword string
	label   string
}{
	{"pig breeding farm", "Pig Breeding Farm"},
	{"pig farm", "Pig Farm"},
	{"poultry farm", "Poultry Farm"},
	{"aquaculture", "Aquaculture Facility"},
}

var (
	mixedFarmQualifierRe          = regexp.MustCompile(`(?i)mixed farm \(([^)]+)\)`)
	mixedSlaughterhouseQualifierRe = regexp.MustCompile(`(?i)mixed slaughterhouse \(([^)]+)\)`)
)

func slaughterClassification(label string) Classification {
	return Classification{Category: CategorySlaughter, IconKey: IconSlaughter, DisplayLabel: label}
}

func breederClassification(label string) Classification {
	return Classification{Category: CategoryBreeder, IconKey: IconBreeder, DisplayLabel: label}
}

func processingClassification() Classification {
	return Classification{Category: CategoryProcessing, IconKey: IconProcessing, DisplayLabel: "Processing Facility"}
}

// ClassifyFacility maps a raw facility type string to a category, icon and
// display label. The rules are an ordered sequence of case-insensitive
// substring checks and the first match wins; the ordering is load-bearing
// ("Mixed Farm (Pig) Slaughter" must classify as a farm, not a
// slaughterhouse, because the mixed-farm rule runs first). It never fails:
// unrecognized or empty input yields the processing default.
//
// The establishment name is part of the contract for disambiguation but the
// current rules classify on the type text alone.
func ClassifyFacility(typeText, establishmentName string) Classification {
	_ = establishmentName

	if typeText == "" {
		return processingClassification()
	}

	t := strings.ToLower(typeText)

	for _, ft := range compoundFarmTypes {
		if strings.Contains(t, ft.keyword) {
			return breederClassification(ft.label)
		}
	}

	if strings.Contains(t, "mixed farm") {
		// Keep the parenthesized qualifier verbatim from the source text.
		if m := mixedFarmQualifierRe.FindStringSubmatch(typeText); m != nil {
			return breederClassification("Mixed Farm (" + m[1] + ")")
		}
		return breederClassification("Mixed Farm")
	}

	for _, st := range slaughterhouseSubtypes {
		if strings.Contains(t, st.keyword) {
			return slaughterClassification(st.label)
		}
	}

	if strings.Contains(t, "mixed slaughterhouse") {
		if m := mixedSlaughterhouseQualifierRe.FindStringSubmatch(typeText); m != nil {
			return slaughterClassification("Mixed Slaughterhouse (" + m[1] + ")")
		}
		return slaughterClassification("Mixed Slaughterhouse")
	}

	if strings.Contains(t, "meat slaughter") || strings.Contains(t, "slaughter") {
		return slaughterClassification("Slaughterhouse")
	}

	for _, ft := range spanishFarmTypes {
		if strings.Contains(t, ft.keyword) {
			return breederClassification(ft.label)
		}
	}

	if strings.Contains(t, "farm") {
		for _, animal := range farmAnimalTokens {
			if strings.Contains(t, animal) {
				return breederClassification(capitalize(animal) + " Farm")
			}
		}
		if strings.Contains(t, "intensive") {
			return breederClassification("Intensive Farm")
		}
		return breederClassification("Farm")
	}

	if strings.Contains(t, "animal production") {
		if strings.Contains(t, "hunting") || strings.Contains(t, "game") {
			return breederClassification("Game/Hunting Facility")
		}
		return breederClassification("Animal Farm")
	}

	if strings.Contains(t, "exhibition") {
		return Classification{Category: CategoryExhibitor, IconKey: IconExhibitor, DisplayLabel: "Exhibition Facility"}
	}

	if strings.Contains(t, "aquatic") {
		if strings.Contains(t, "processing") {
			return slaughterClassification("Aquatic Processing Facility")
		}
		return breederClassification("Aquatic Production Facility")
	}

	if strings.Contains(t, "chicken producer") {
		return breederClassification("Chicken Producer")
	}
	if strings.Contains(t, "butcher") {
		return slaughterClassification("Butcher")
	}

	return processingClassification()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
