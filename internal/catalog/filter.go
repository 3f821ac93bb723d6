package catalog

import (
	"sort"
	"strings"

	"sydneyplanner/internal/venue"
)

// MaxResults bounds every filter result.
const MaxResults = 5

type intentRule struct {
	keywords []string
	match    func(venue.Venue) bool
}

func byCategory(category string) func(venue.Venue) bool {
	return func(v venue.Venue) bool { return v.Category == category }
}

// intentRules maps query keywords to a catalog predicate. Evaluated top to
// bottom; the first group with a keyword hit decides the filter, so order is
// part of the contract ("brunch at the beach" is a Cafe query).
var intentRules = []intentRule{
	{keywords: []string{"brunch", "breakfast", "cafe", "coffee"}, match: byCategory("Cafe")},
	{keywords: []string{"beach", "swim", "surf", "family"}, match: byCategory("Beach")},
	{keywords: []string{"dinner", "restaurant", "romantic", "food"}, match: byCategory("Restaurant")},
	{keywords: []string{"nature", "walk", "hike", "park"}, match: byCategory("Nature")},
	{keywords: []string{"museum", "art", "gallery"}, match: byCategory("Museum")},
	{keywords: []string{"hidden", "gem", "secret"}, match: func(v venue.Venue) bool { return v.RatingValue() >= 4.6 }},
	{keywords: []string{"work", "quiet", "study"}, match: byCategory("Cafe")},
}

// Filter selects at most MaxResults catalog venues for a free-text query.
// An unrecognized query, or a matched filter that selects nothing, falls back
// to the top rated entries.
func Filter(query string) []venue.Venue {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		if !containsAny(q, rule.keywords) {
			continue
		}
		var out []venue.Venue
		for _, v := range venues {
			if rule.match(v) {
				out = append(out, v)
			}
		}
		if len(out) > 0 {
			return truncate(out)
		}
		break
	}
	return TopRated()
}

// TopRated returns the MaxResults highest rated catalog entries, ties broken
// by original catalog order.
func TopRated() []venue.Venue {
	out := All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RatingValue() > out[j].RatingValue()
	})
	return truncate(out)
}

func truncate(vs []venue.Venue) []venue.Venue {
	if len(vs) > MaxResults {
		return vs[:MaxResults]
	}
	return vs
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
