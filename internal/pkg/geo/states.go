// Package geo holds the per-country state/province lookup tables and the
// membership, display-name and country-inference logic built on them.
package geo

// Synthetic sentinels assigned when a record is known to belong to a country
// but its subdivision could not be determined.
const (
	GermanStateUnknown  = "DE_UNKNOWN"
	SpanishStateUnknown = "ES_UNKNOWN"
	FrenchStateUnknown  = "FR_UNKNOWN"
)

// USStateNames maps US postal codes (states, DC and territories) to display
// names.
var USStateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
	"DC": "District of Columbia", "AS": "American Samoa", "GU": "Guam", "MP": "Northern Mariana Islands",
	"PR": "Puerto Rico", "VI": "U.S. Virgin Islands",
}

// GermanStateNames maps the 16 Länder abbreviations (plus the unknown
// sentinel) to display names.
var GermanStateNames = map[string]string{
	"BW": "Baden-Württemberg", "BY": "Bayern", "BE": "Berlin", "BB": "Brandenburg",
	"HB": "Bremen", "HH": "Hamburg", "HE": "Hessen", "MV": "Mecklenburg-Vorpommern",
	"NI": "Niedersachsen", "NW": "Nordrhein-Westfalen", "RP": "Rheinland-Pfalz",
	"SL": "Saarland", "SN": "Sachsen", "ST": "Sachsen-Anhalt", "SH": "Schleswig-Holstein",
	"TH": "Thüringen",
	GermanStateUnknown: "Deutschland (Unspecified)",
}

// SpanishStateNames maps the region values as they appear in the Spanish
// source data to display names. The "Ililles Balears" key reproduces a typo
// present in the data itself.
var SpanishStateNames = map[string]string{
	"Andalucía":          "Andalucía",
	"Aragón":             "Aragón",
	"Asturias":           "Asturias",
	"Cantabria":          "Cantabria",
	"Castilla-La Mancha": "Castilla-La Mancha",
	"Castilla y León":    "Castilla y León",
	"Cataluña":           "Cataluña",
	"Ceuta":              "Ceuta",
	"Comunidad de Madrid": "Comunidad de Madrid",
	"Comunidad Valenciana": "Comunidad Valenciana",
	"Extremadura":        "Extremadura",
	"Galicia":            "Galicia",
	"Ililles Balears":    "Illes Balears",
	"La Coruña":          "La Coruña",
	"La Rioja":           "La Rioja",
	"Navarra":            "Navarra",
	"País Vasco":         "País Vasco",
	"Región de Murcia":   "Región de Murcia",
	SpanishStateUnknown:  "España (Unspecified)",
}

// FrenchStateNames maps department codes to department names. Source data
// currently ships without department codes, so in practice only the unknown
// sentinel appears; the table is kept complete for when the data improves.
var FrenchStateNames = map[string]string{
	"01": "Ain", "02": "Aisne", "03": "Allier", "04": "Alpes-de-Haute-Provence", "05": "Hautes-Alpes",
	"06": "Alpes-Maritimes", "07": "Ardèche", "08": "Ardennes", "09": "Ariège", "10": "Aube",
	"11": "Aude", "12": "Aveyron", "13": "Bouches-du-Rhône", "14": "Calvados", "15": "Cantal",
	"16": "Charente", "17": "Charente-Maritime", "18": "Cher", "19": "Corrèze", "21": "Côte-d'Or",
	"22": "Côtes-d'Armor", "23": "Creuse", "24": "Dordogne", "25": "Doubs", "26": "Drôme",
	"27": "Eure", "28": "Eure-et-Loir", "29": "Finistère", "30": "Gard", "31": "Haute-Garonne",
	"32": "Gers", "33": "Gironde", "34": "Hérault", "35": "Ille-et-Vilaine", "36": "Indre",
	"37": "Indre-et-Loire", "38": "Isère", "39": "Jura", "40": "Landes", "41": "Loir-et-Cher",
	"42": "Loire", "43": "Haute-Loire", "44": "Loire-Atlantique", "45": "Loiret", "46": "Lot",
	"47": "Lot-et-Garonne", "48": "Lozère", "49": "Maine-et-Loire", "50": "Manche", "51": "Marne",
	"52": "Haute-Marne", "53": "Mayenne", "54": "Meurthe-et-Moselle", "55": "Meuse", "56": "Morbihan",
	"57": "Moselle", "58": "Nièvre", "59": "Nord", "60": "Oise", "61": "Orne",
	"62": "Pas-de-Calais", "63": "Puy-de-Dôme", "64": "Pyrénées-Atlantiques", "65": "Hautes-Pyrénées",
	"66": "Pyrénées-Orientales", "67": "Bas-Rhin", "68": "Haut-Rhin", "69": "Rhône", "70": "Haute-Saône",
	"71": "Saône-et-Loire", "72": "Sarthe", "73": "Savoie", "74": "Haute-Savoie", "75": "Paris",
	"76": "Seine-Maritime", "77": "Seine-et-Marne", "78": "Yvelines", "79": "Deux-Sèvres", "80": "Somme",
	"81": "Tarn", "82": "Tarn-et-Garonne", "83": "Var", "84": "Vaucluse", "85": "Vendée", "86": "Vienne",
	"87": "Haute-Vienne", "88": "Vosges", "89": "Yonne", "90": "Territoire de Belfort",
	"91": "Essonne", "92": "Hauts-de-Seine", "93": "Seine-Saint-Denis", "94": "Val-de-Marne",
	"95": "Val-d'Oise", "971": "Guadeloupe", "972": "Martinique", "973": "Guyane",
	"974": "La Réunion", "976": "Mayotte",
	FrenchStateUnknown: "France (Unspecified)",
}

// CanadianProvinceNames maps province/territory codes to display names.
var CanadianProvinceNames = map[string]string{
	"AB": "Alberta", "BC": "British Columbia", "MB": "Manitoba", "NB": "New Brunswick",
	"NL": "Newfoundland and Labrador", "NS": "Nova Scotia", "NT": "Northwest Territories",
	"NU": "Nunavut", "ON": "Ontario", "PE": "Prince Edward Island", "QC": "Québec",
	"SK": "Saskatchewan", "YT": "Yukon",
}

// MexicanStateNames is keyed by the uppercased state name as it appears in
// the Mexican source data; lookups normalize case first.
var MexicanStateNames = map[string]string{
	"AGUASCALIENTES":      "Aguascalientes",
	"BAJA CALIFORNIA":     "Baja California",
	"BAJA CALIFORNIA SUR": "Baja California Sur",
	"CAMPECHE":            "Campeche",
	"CHIAPAS":             "Chiapas",
	"CHIHUAHUA":           "Chihuahua",
	"CIUDAD DE MÉXICO":    "Ciudad de México",
	"COAHUILA":            "Coahuila",
	"COLIMA":              "Colima",
	"DURANGO":             "Durango",
	"GUANAJUATO":          "Guanajuato",
	"GUERRERO":            "Guerrero",
	"HIDALGO":             "Hidalgo",
	"JALISCO":             "Jalisco",
	"MÉXICO":              "México",
	"MICHOACÁN":           "Michoacán",
	"MORELOS":             "Morelos",
	"NAYARIT":             "Nayarit",
	"NUEVO LEÓN":          "Nuevo León",
	"OAXACA":              "Oaxaca",
	"PUEBLA":              "Puebla",
	"QUERÉTARO":           "Querétaro",
	"QUINTANA ROO":        "Quintana Roo",
	"SAN LUIS POTOSÍ":     "San Luis Potosí",
	"SINALOA":             "Sinaloa",
	"SONORA":              "Sonora",
	"TABASCO":             "Tabasco",
	"TAMAULIPAS":          "Tamaulipas",
	"TLAXCALA":            "Tlaxcala",
	"VERACRUZ":            "Veracruz",
	"YUCATÁN":             "Yucatán",
	"ZACATECAS":           "Zacatecas",
}
