package venue

import "strconv"

// Venue origin markers. Catalog entries are bundled with the app, foursquare
// entries come from the places provider.
const (
	SourceCatalog    = "catalog"
	SourceFoursquare = "foursquare"
)

// Sydney CBD centroid, used whenever a record has no geocodes.
const (
	DefaultLat = -33.8688
	DefaultLng = 151.2093
)

// Hours describes a venue's opening hours as reported by the provider.
type Hours struct {
	Display string      `json:"display,omitempty"`
	OpenNow bool        `json:"open_now,omitempty"`
	Regular []HoursSpan `json:"regular,omitempty"`
}

// HoursSpan is one open/close interval on a given weekday.
type HoursSpan struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Venue is the canonical, provider-agnostic venue shape. Catalog entries and
// normalized provider records both use it, so chat filtering, map rendering
// and persistence consume one shape.
//
// Rating is a 1-decimal string on the 0-5 scale ("4.5"); the persisted row
// schema types rating as text, and keeping the canonical field a string means
// the value round-trips without a format decision at every boundary.
type Venue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Rating      string  `json:"rating"`
	Distance    string  `json:"distance"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
	Style       Style   `json:"style"`

	// Provider extras, empty for catalog entries.
	FsqID      string   `json:"fsq_id,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Website    string   `json:"website,omitempty"`
	Hours      *Hours   `json:"hours,omitempty"`
	Photos     []string `json:"photos,omitempty"`
	Tips       []string `json:"tips,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// RatingValue parses the rating string for numeric comparison and sorting.
// Unparseable ratings count as 0.
func (v Venue) RatingValue() float64 {
	f, err := strconv.ParseFloat(v.Rating, 64)
	if err != nil {
		return 0
	}
	return f
}
