// Package catalog holds the fixed list of sample Sydney venues bundled with
// the app, and the keyword filter the chat flow selects them with. The
// catalog is immutable and process-wide; it never talks to the provider.
package catalog

import "sydneyplanner/internal/venue"

const stockImage = "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800"

var venues = []venue.Venue{
	{
		ID:          "syd_1",
		Name:        "The Grounds of Alexandria",
		Category:    "Cafe",
		Address:     "7a/2 Huntley St, Alexandria NSW 2015",
		Lat:         -33.9105,
		Lng:         151.1938,
		Rating:      "4.5",
		Distance:    "5.2 km",
		Image:       "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800",
		Description: "Sprawling garden cafe with its own bakery, coffee roastery and weekend markets.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_2",
		Name:        "Bondi Beach",
		Category:    "Beach",
		Address:     "Queen Elizabeth Dr, Bondi Beach NSW 2026",
		Lat:         -33.8908,
		Lng:         151.2743,
		Rating:      "4.7",
		Distance:    "7.1 km",
		Image:       "https://images.unsplash.com/photo-1523428096881-5bd79d043006?w=800",
		Description: "Sydney's most famous stretch of sand, with the Icebergs pool at its southern end.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_3",
		Name:        "Icebergs Dining Room",
		Category:    "Restaurant",
		Address:     "1 Notts Ave, Bondi Beach NSW 2026",
		Lat:         -33.8932,
		Lng:         151.2749,
		Rating:      "4.6",
		Distance:    "7.3 km",
		Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
		Description: "Italian dining above the Bondi Icebergs pool with full ocean views.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_4",
		Name:        "Royal Botanic Garden",
		Category:    "Nature",
		Address:     "Mrs Macquaries Rd, Sydney NSW 2000",
		Lat:         -33.8642,
		Lng:         151.2166,
		Rating:      "4.8",
		Distance:    "1.2 km",
		Image:       "https://images.unsplash.com/photo-1624138784614-87fd1b6528f8?w=800",
		Description: "Thirty hectares of gardens wrapping around Farm Cove, minutes from the Opera House.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_5",
		Name:        "Art Gallery of New South Wales",
		Category:    "Museum",
		Address:     "Art Gallery Rd, Sydney NSW 2000",
		Lat:         -33.8688,
		Lng:         151.2173,
		Rating:      "4.7",
		Distance:    "1.5 km",
		Image:       "https://images.unsplash.com/photo-1554907984-15263bfd63bd?w=800",
		Description: "The state gallery, free to enter, with the Sydney Modern wing overlooking the harbour.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_6",
		Name:        "Manly Beach",
		Category:    "Beach",
		Address:     "Marine Parade, Manly NSW 2095",
		Lat:         -33.7971,
		Lng:         151.2882,
		Rating:      "4.6",
		Distance:    "11.4 km",
		Image:       "https://images.unsplash.com/photo-1527431016550-f4cbc3d522ac?w=800",
		Description: "Ocean beach at the end of the Manly ferry ride, with a walkable beachfront corso.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_7",
		Name:        "Single O Surry Hills",
		Category:    "Cafe",
		Address:     "60-64 Reservoir St, Surry Hills NSW 2010",
		Lat:         -33.8832,
		Lng:         151.2107,
		Rating:      "4.4",
		Distance:    "2.1 km",
		Image:       "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800",
		Description: "Pioneering specialty coffee roaster with a compact brunch menu.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_8",
		Name:        "Wendy Whiteley's Secret Garden",
		Category:    "Nature",
		Address:     "Lavender Bay NSW 2060",
		Lat:         -33.8440,
		Lng:         151.2093,
		Rating:      "4.7",
		Distance:    "3.4 km",
		Image:       "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=800",
		Description: "A hidden harbourside garden carved out of overgrown railway land at Lavender Bay.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_9",
		Name:        "Museum of Contemporary Art",
		Category:    "Museum",
		Address:     "140 George St, The Rocks NSW 2000",
		Lat:         -33.8599,
		Lng:         151.2090,
		Rating:      "4.5",
		Distance:    "0.9 km",
		Image:       "https://images.unsplash.com/photo-1518998053901-5348d3961a04?w=800",
		Description: "Contemporary art on Circular Quay with a rooftop cafe facing the Opera House.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_10",
		Name:        "Quay",
		Category:    "Restaurant",
		Address:     "Upper Level, Overseas Passenger Terminal, The Rocks NSW 2000",
		Lat:         -33.8580,
		Lng:         151.2100,
		Rating:      "4.8",
		Distance:    "1.0 km",
		Image:       "https://images.unsplash.com/photo-1550966871-3ed3cdb5ed0c?w=800",
		Description: "Fine dining room over Circular Quay, long regarded as one of Australia's best tables.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_11",
		Name:        "Bronte Beach",
		Category:    "Beach",
		Address:     "Bronte Rd, Bronte NSW 2024",
		Lat:         -33.9036,
		Lng:         151.2688,
		Rating:      "4.5",
		Distance:    "7.8 km",
		Image:       "https://images.unsplash.com/photo-1540448051910-09cfadd5df61?w=800",
		Description: "Family beach with a grassy picnic gully and a rock pool, quieter than Bondi next door.",
		Source:      venue.SourceCatalog,
	},
	{
		ID:          "syd_12",
		Name:        "Sydney Park",
		Category:    "Nature",
		Address:     "Sydney Park Rd, Alexandria NSW 2015",
		Lat:         -33.9090,
		Lng:         151.1850,
		Rating:      "4.3",
		Distance:    "5.6 km",
		Image:       stockImage,
		Description: "Wetlands, cycling tracks and brick kiln chimneys on a reclaimed industrial site.",
		Source:      venue.SourceCatalog,
	},
}

// Display styles are derived from the category rather than hand-written per
// entry, so catalog and provider venues render identically.
func init() {
	for i := range venues {
		venues[i].Style = venue.StyleFor(venues[i].Category)
	}
}

// All returns a copy of the catalog so callers cannot mutate it.
func All() []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)
	return out
}

// ByID looks up a single catalog entry.
func ByID(id string) (venue.Venue, bool) {
	for _, v := range venues {
		if v.ID == id {
			return v, true
		}
	}
	return venue.Venue{}, false
}

// Size reports the number of catalog entries.
func Size() int {
	return len(venues)
}
