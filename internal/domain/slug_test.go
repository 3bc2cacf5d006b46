package domain

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain title", input: "Luxury Villa Estate", want: "luxury-villa-estate"},
		{name: "punctuation collapses", input: "Roads, Bridges & Drainage!", want: "roads-bridges-drainage"},
		{name: "diacritics fold", input: "Résumé Café", want: "resume-cafe"},
		{name: "leading and trailing junk", input: "  --Hello World--  ", want: "hello-world"},
		{name: "digits survive", input: "Phase 2 Expansion", want: "phase-2-expansion"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!!!", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
