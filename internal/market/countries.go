package market

// countryCanon aligns legacy registry country names with the naming used by
// the boundary dataset. Values never appear as keys, so normalization is
// idempotent.
var countryCanon = map[string]string{
	"United States":                         "United States of America",
	"Congo, The Democratic Republic of the": "Democratic Republic of the Congo",
	"Tanzania, United Republic of":          "United Republic of Tanzania",
	"Lao People's Democratic Republic":      "Laos",
	"Viet Nam":                              "Vietnam",
	"Korea, Republic of":                    "South Korea",
}

// CanonicalCountry maps a legacy country name to the boundary-dataset name.
// Unmapped names pass through unchanged.
func CanonicalCountry(name string) string {
	if canon, ok := countryCanon[name]; ok {
		return canon
	}
	return name
}
