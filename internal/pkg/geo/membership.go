package geo

import (
	"regexp"
	"strings"
)

// Country codes as used by selectors and URL parameters.
const (
	CountryAll = "all"
	CountryUS  = "US"
	CountryDE  = "DE"
	CountryES  = "ES"
	CountryFR  = "FR"
	CountryCA  = "CA"
	CountryMX  = "MX"
	CountryDK  = "DK"
	CountryUK  = "UK"
	CountryNZ  = "NZ"
)

// IsUSState reports whether the code is a US state, DC or territory.
func IsUSState(stateCode string) bool {
	_, ok := USStateNames[stateCode]
	return ok
}

// IsGermanState reports whether the code is one of the 16 Länder or the
// unknown sentinel.
func IsGermanState(stateCode string) bool {
	_, ok := GermanStateNames[stateCode]
	return ok
}

// IsSpanishState reports whether the value is a Spanish region or the
// unknown sentinel.
func IsSpanishState(stateCode string) bool {
	_, ok := SpanishStateNames[stateCode]
	return ok
}

// IsFrenchState reports whether the code is a French department or the
// unknown sentinel.
func IsFrenchState(stateCode string) bool {
	_, ok := FrenchStateNames[stateCode]
	return ok
}

// IsCanadianProvince reports whether the code is a Canadian province or
// territory.
func IsCanadianProvince(stateCode string) bool {
	_, ok := CanadianProvinceNames[stateCode]
	return ok
}

// IsMexicanState reports whether the value names a Mexican state. The
// source data is inconsistent about case, so lookup is case-insensitive.
func IsMexicanState(stateCode string) bool {
	if stateCode == "" {
		return false
	}
	_, ok := MexicanStateNames[strings.ToUpper(stateCode)]
	return ok
}

// IsNZState always reports false: New Zealand regions are full names that
// would collide with the UK exclusion rule, so NZ membership is resolved
// only through the record's explicit country field.
func IsNZState(stateCode string) bool {
	return false
}

// IsUKState classifies by exclusion: a non-empty state value that belongs
// to no other country's table is UK. The source data carries UK counties
// without any country tag, so there is nothing positive to test against.
func IsUKState(stateCode string) bool {
	if strings.TrimSpace(stateCode) == "" {
		return false
	}
	return !IsUSState(stateCode) &&
		!IsGermanState(stateCode) &&
		!IsSpanishState(stateCode) &&
		!IsFrenchState(stateCode) &&
		!IsCanadianProvince(stateCode) &&
		!IsMexicanState(stateCode) &&
		!IsNZState(stateCode)
}

// CountryForState resolves the country a state/region code belongs to.
// The UK arm is the explicit final fallback over the closed country set;
// adding a country means adding its arm above it.
func CountryForState(stateCode string) string {
	switch {
	case IsUSState(stateCode):
		return CountryUS
	case IsGermanState(stateCode):
		return CountryDE
	case IsSpanishState(stateCode):
		return CountryES
	case IsFrenchState(stateCode):
		return CountryFR
	case IsCanadianProvince(stateCode):
		return CountryCA
	case IsMexicanState(stateCode):
		return CountryMX
	case IsUKState(stateCode):
		return CountryUK
	default:
		return CountryAll
	}
}

// CountryForCode maps a lowercase record country field ("us", "de", ...)
// to the selector code, or "all" when the record carries no tag.
func CountryForCode(code string) string {
	switch code {
	case "us":
		return CountryUS
	case "de":
		return CountryDE
	case "es":
		return CountryES
	case "fr":
		return CountryFR
	case "ca":
		return CountryCA
	case "mx":
		return CountryMX
	case "dk":
		return CountryDK
	case "uk":
		return CountryUK
	case "nz":
		return CountryNZ
	default:
		return CountryAll
	}
}

// StateDisplayName resolves a state/region code to its display name across
// every country table, falling back to the code itself. Empty codes (Danish
// records) yield "".
func StateDisplayName(stateCode string) string {
	if strings.TrimSpace(stateCode) == "" {
		return ""
	}
	if name, ok := USStateNames[stateCode]; ok {
		return name
	}
	if name, ok := GermanStateNames[stateCode]; ok {
		return name
	}
	if name, ok := SpanishStateNames[stateCode]; ok {
		return name
	}
	if name, ok := FrenchStateNames[stateCode]; ok {
		return name
	}
	if name, ok := CanadianProvinceNames[stateCode]; ok {
		return name
	}
	if name, ok := MexicanStateNames[strings.ToUpper(stateCode)]; ok {
		return name
	}
	return stateCode
}

var germanEstablishmentIDRe = regexp.MustCompile(`^(BW|BY|BE|BB|HB|HH|HE|MV|NI|NW|RP|SL|SN|ST|SH|TH)\s`)

// GermanStateFromEstablishmentID parses the Länder prefix German
// establishment IDs start with ("BY 12345" -> "BY"), or "" when the ID has
// no recognizable prefix.
func GermanStateFromEstablishmentID(establishmentID string) string {
	m := germanEstablishmentIDRe.FindStringSubmatch(establishmentID)
	if m == nil {
		return ""
	}
	return m[1]
}
