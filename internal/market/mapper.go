package market

import (
	"math"
	"time"
)

// defaultVolume is used for every credit row when the source table carries
// neither a quantity nor a volume column.
const defaultVolume = 100.0

// BuildProject maps one raw projects row into a Project and derives
// implementation year, duration and the scaled emissions-reduction quantity.
// now is the single processing timestamp shared by the whole load pass.
func BuildProject(row Row, now time.Time) Project {
	p := Project{
		ID:          row.Get("project_id"),
		Name:        row.Get("name"),
		Country:     CanonicalCountry(row.Get("country")),
		ProjectType: row.Get("project_type"),
	}

	issuance, hasIssuance := ParseTimestamp(row.Get("first_issuance_at"))
	retirement, hasRetirement := ParseTimestamp(row.Get("first_retirement_at"))
	if !hasIssuance {
		issuance = issuanceSentinel
	}
	if !hasRetirement {
		retirement = now.UTC()
	}
	p.FirstIssuanceAt = issuance
	p.FirstRetirementAt = retirement
	p.HasIssuance = hasIssuance
	p.HasRetirement = hasRetirement

	if hasIssuance {
		p.ImplementationYear = issuance.Year()
		days := retirement.Sub(issuance).Hours() / 24
		duration := int(math.Floor(days / 365.25))
		if duration < 0 {
			duration = 0
		}
		p.ProjectDuration = duration
	} else {
		// Undated projects: year 0 marks "unknown", duration defaults to 1.
		p.ImplementationYear = 0
		p.ProjectDuration = 1
	}

	issued, ok := ParseNumber(row.Get("issued"))
	if !ok {
		issued = 0
	}
	p.Issued = issued
	p.CO2Reduced = issued * 1000
	if p.CO2Reduced < 0 {
		p.CO2Reduced = 0
	}

	return p
}

// BuildCredit maps one raw credits row into a Credit. ordinal is the zero-based
// position of the row in the original credits table; the synthesized price
// depends on it, so rows must be mapped in source order, before any join.
func BuildCredit(row Row, ordinal int, hasVolumeColumn bool) Credit {
	c := Credit{
		ProjectID: row.Get("project_id"),
		Ordinal:   ordinal,
	}

	volume := defaultVolume
	if hasVolumeColumn {
		raw := row.Get("quantity")
		if raw == "" {
			raw = row.Get("volume")
		}
		v, ok := ParseNumber(raw)
		if !ok {
			v = 0
		}
		volume = v
	}
	c.Volume = volume

	// Synthetic placeholder price, NOT a market price. The jitter term keys on
	// the pre-join ordinal so the value is reproducible run to run.
	c.Price = volume*0.1 + 5 + float64(ordinal%100)/100

	if t, ok := ParseTimestamp(row.Get("transaction_date")); ok {
		c.TransactionDate = &t
	}

	return c
}
