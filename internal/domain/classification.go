package domain

// Category is one of the four facility categories used to partition
// filtered results.
type Category string

const (
	CategorySlaughter  Category = "slaughter"
	CategoryProcessing Category = "processing"
	CategoryBreeder    Category = "breeder"
	CategoryExhibitor  Category = "exhibitor"
)

// Marker icon keys. Labs and dealers have no facility category of their own
// but still render with a distinct icon.
const (
	IconSlaughter  = "slaughter"
	IconProcessing = "processing"
	IconLab        = "lab"
	IconBreeder    = "breeder"
	IconDealer     = "dealer"
	IconExhibitor  = "exhibitor"
)

// Classification is the derived category/label/icon triple computed from a
// facility's free-text type. It is recomputed wherever it is needed and is
// never stored on the record, so a change to the rules takes effect
// everywhere at once.
type Classification struct {
	Category     Category `json:"category"`
	IconKey      string   `json:"icon"`
	DisplayLabel string   `json:"label"`
}
