package travel

import (
	"strings"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestBuildPromptContainsQueryFields(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		contains []string
	}{
		{
			name: "basic round trip",
			query: Query{
				DepartureDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
				ReturnDate:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				From:          "SIN",
				To:            "ICN",
				Passengers:    1,
				Airline:       "",
				Cabin:         CabinEconomy,
			},
			contains: []string{"SIN", "ICN", "2025-03-08", "2025-03-11", "Passengers: 1.", "Any", "Economy"},
		},
		{
			name: "preferred airline kept verbatim",
			query: Query{
				DepartureDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				ReturnDate:    time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
				From:          "KUL",
				To:            "NRT",
				Passengers:    3,
				Airline:       "Singapore Airlines",
				Cabin:         CabinBusiness,
			},
			contains: []string{"KUL", "NRT", "Passengers: 3.", "Singapore Airlines", "Business"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.query)
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q\nprompt: %s", want, prompt)
				}
			}
		})
	}
}

func TestBuildPromptEmptyAirlineUsesAnyPlaceholder(t *testing.T) {
	q := Query{
		DepartureDate: mustDate(t, "2025-03-08"),
		ReturnDate:    mustDate(t, "2025-03-11"),
		From:          "SIN",
		To:            "ICN",
		Passengers:    1,
		Cabin:         CabinEconomy,
	}
	prompt := BuildPrompt(q)
	if !strings.Contains(prompt, "Preferred Airline: Any.") {
		t.Errorf("expected Any placeholder for empty airline, got:\n%s", prompt)
	}
}

func TestBuildPromptIncludesSampleURL(t *testing.T) {
	q := Query{Passengers: 1, Cabin: CabinFirst}
	if !strings.Contains(BuildPrompt(q), "pricebreaker.travel/flights?source=webconnect") {
		t.Error("prompt missing the sample url template")
	}
}

func TestParseCabinClass(t *testing.T) {
	for _, c := range CabinClasses {
		parsed, err := ParseCabinClass(c.String())
		if err != nil {
			t.Errorf("ParseCabinClass(%q) returned error: %v", c, err)
		}
		if parsed != c {
			t.Errorf("ParseCabinClass(%q) = %q", c, parsed)
		}
	}

	if _, err := ParseCabinClass("Steerage"); err == nil {
		t.Error("expected error for unknown cabin class")
	}
}
