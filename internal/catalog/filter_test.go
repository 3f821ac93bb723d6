package catalog

import (
	"testing"

	"sydneyplanner/internal/venue"
)

func TestFilterBrunchReturnsOnlyCafes(t *testing.T) {
	got := Filter("best brunch spots")
	if len(got) == 0 {
		t.Fatal("expected at least one result")
	}
	for _, v := range got {
		if v.Category != "Cafe" {
			t.Fatalf("expected only Cafe entries, got %q (%s)", v.Category, v.Name)
		}
	}
}

func TestFilterKeywordGroups(t *testing.T) {
	tests := []struct {
		query    string
		category string
	}{
		{"family friendly beaches", "Beach"},
		{"romantic dinner tonight", "Restaurant"},
		{"somewhere for a walk", "Nature"},
		{"art to see today", "Museum"},
		{"quiet spot to study", "Cafe"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := Filter(tc.query)
			if len(got) == 0 {
				t.Fatal("expected results")
			}
			for _, v := range got {
				if v.Category != tc.category {
					t.Fatalf("query %q: expected category %q, got %q", tc.query, tc.category, v.Category)
				}
			}
		})
	}
}

func TestFilterHiddenGemUsesRatingPredicate(t *testing.T) {
	got := Filter("hidden gems please")
	if len(got) == 0 {
		t.Fatal("expected results")
	}
	for _, v := range got {
		if v.RatingValue() < 4.6 {
			t.Fatalf("expected rating >= 4.6, got %s for %s", v.Rating, v.Name)
		}
	}
}

func TestFilterRuleOrder(t *testing.T) {
	// "brunch at the beach" hits both the cafe and beach groups; the cafe
	// group comes first so it must win.
	got := Filter("brunch at the beach")
	for _, v := range got {
		if v.Category != "Cafe" {
			t.Fatalf("expected Cafe from first matching rule, got %q", v.Category)
		}
	}
}

func TestFilterUnrecognizedFallsBackToTopRated(t *testing.T) {
	got := Filter("xyzzy nothing matches this")
	want := TopRated()

	if len(got) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(got))
	}
	for i := range got {
		if got[i].ID != want[i].ID {
			t.Fatalf("result %d: got %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
	// Rating order, ties preserved in catalog order.
	for i := 1; i < len(got); i++ {
		if got[i].RatingValue() > got[i-1].RatingValue() {
			t.Fatalf("results not sorted by rating: %s before %s", got[i-1].Rating, got[i].Rating)
		}
	}
}

func TestFilterIsBounded(t *testing.T) {
	queries := []string{"", "beach", "food", "hidden", "unmatched query"}
	for _, q := range queries {
		got := Filter(q)
		if len(got) == 0 || len(got) > MaxResults {
			t.Fatalf("query %q: expected between 1 and %d results, got %d", q, MaxResults, len(got))
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	if b := All(); b[0].Name == "mutated" {
		t.Fatal("All must return a copy of the catalog")
	}
}

func TestCatalogEntriesCarryStyles(t *testing.T) {
	for _, v := range All() {
		want := venue.StyleFor(v.Category)
		if v.Style != want {
			t.Errorf("%s: style = %+v, want %+v", v.ID, v.Style, want)
		}
		if v.Style.Color == "" || v.Style.Icon == "" {
			t.Errorf("%s: empty style", v.ID)
		}
	}
}
