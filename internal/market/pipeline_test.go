package market

import (
	"testing"
	"time"
)

func TestCanonicalCountry(t *testing.T) {
	if got := CanonicalCountry("United States"); got != "United States of America" {
		t.Errorf("Expected 'United States of America', got %q", got)
	}
	if got := CanonicalCountry("Brazil"); got != "Brazil" {
		t.Errorf("Unmapped names must pass through, got %q", got)
	}
}

func TestCanonicalCountryIdempotent(t *testing.T) {
	for legacy := range countryCanon {
		canon := CanonicalCountry(legacy)
		if again := CanonicalCountry(canon); again != canon {
			t.Errorf("Normalization not idempotent for %q: %q -> %q", legacy, canon, again)
		}
	}
}

func TestTranslateProjectType(t *testing.T) {
	if got := TranslateProjectType("Wind"); got != "Energia Eólica" {
		t.Errorf("Expected 'Energia Eólica', got %q", got)
	}
	if got := TranslateProjectType("Foo"); got != "Foo" {
		t.Errorf("Unknown types must fall back to themselves, got %q", got)
	}
}

func TestMergeDropsUnmatchedRows(t *testing.T) {
	projects := []Project{{ID: "1", ProjectType: "Wind"}}
	credits := []Credit{
		{ProjectID: "1", Volume: 10},
		{ProjectID: "2", Volume: 5},
	}

	merged := Merge(projects, credits)

	if len(merged) != 1 {
		t.Fatalf("Expected exactly 1 merged row, got %d", len(merged))
	}
	if merged[0].ID != "1" || merged[0].Credit.Volume != 10 {
		t.Errorf("Unexpected merged row: %+v", merged[0])
	}
	if merged[0].ProjectTypePT != "Energia Eólica" {
		t.Errorf("Expected translated project type, got %q", merged[0].ProjectTypePT)
	}
}

func TestMergeCardinality(t *testing.T) {
	projects := []Project{{ID: "A"}, {ID: "B"}}
	credits := []Credit{
		{ProjectID: "A", Ordinal: 0},
		{ProjectID: "A", Ordinal: 1},
		{ProjectID: "B", Ordinal: 2},
		{ProjectID: "C", Ordinal: 3},
	}

	merged := Merge(projects, credits)

	if len(merged) != 3 {
		t.Fatalf("Expected one row per matching (project, credit) pair, got %d", len(merged))
	}
	// Left-preserving order: A's credits in source order, then B's.
	ordinals := []int{merged[0].Credit.Ordinal, merged[1].Credit.Ordinal, merged[2].Credit.Ordinal}
	if ordinals[0] != 0 || ordinals[1] != 1 || ordinals[2] != 2 {
		t.Errorf("Expected ordinals [0 1 2], got %v", ordinals)
	}
}

func TestParseTimestampCoercion(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2021-07-01T10:30:00Z", true},
		{"2021-07-01 10:30:00", true},
		{"2021-07-01", true},
		{"", false},
		{"NaN", false},
		{"garbage", false},
	}

	for _, c := range cases {
		ts, ok := ParseTimestamp(c.in)
		if ok != c.ok {
			t.Errorf("ParseTimestamp(%q): expected ok=%v, got %v", c.in, c.ok, ok)
		}
		if ok && ts.Location() != time.UTC {
			t.Errorf("ParseTimestamp(%q): result must carry UTC", c.in)
		}
	}
}

func TestParseTimestampOffsetToUTC(t *testing.T) {
	ts, ok := ParseTimestamp("2021-07-01T10:30:00+02:00")
	if !ok {
		t.Fatal("Expected offset timestamp to parse")
	}
	if ts.Hour() != 8 {
		t.Errorf("Expected 08:30 UTC, got %v", ts)
	}
}

func TestParseNumber(t *testing.T) {
	if v, ok := ParseNumber("12.5"); !ok || v != 12.5 {
		t.Errorf("Expected 12.5, got %f (ok=%v)", v, ok)
	}
	if _, ok := ParseNumber(""); ok {
		t.Error("Empty input must not parse")
	}
	if _, ok := ParseNumber("nan"); ok {
		t.Error("NaN marker must not parse")
	}
}
