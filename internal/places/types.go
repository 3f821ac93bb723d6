// Package places queries the Foursquare places API and normalizes its
// records into the canonical venue shape.
package places

// Place is a raw Foursquare v3 place record, as returned by the search and
// details endpoints. Optional fields are pointers so "absent" is
// distinguishable from a zero value.
type Place struct {
	FsqID       string          `json:"fsq_id"`
	Name        string          `json:"name"`
	Categories  []PlaceCategory `json:"categories,omitempty"`
	Distance    *int            `json:"distance,omitempty"` // meters from the search origin
	Geocodes    *PlaceGeocodes  `json:"geocodes,omitempty"`
	Location    *PlaceLocation  `json:"location,omitempty"`
	Rating      *float64        `json:"rating,omitempty"` // provider native 0-10 scale
	Tel         string          `json:"tel,omitempty"`
	Website     string          `json:"website,omitempty"`
	Description string          `json:"description,omitempty"`
	Hours       *PlaceHours     `json:"hours,omitempty"`
	Photos      []PlacePhoto    `json:"photos,omitempty"`
	Tips        []PlaceTip      `json:"tips,omitempty"`
}

type PlaceCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PlaceGeocodes struct {
	Main PlacePoint `json:"main"`
}

type PlacePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceLocation struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
	Address          string `json:"address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
}

type PlaceHours struct {
	Display string           `json:"display,omitempty"`
	OpenNow bool             `json:"open_now,omitempty"`
	Regular []PlaceHoursSpan `json:"regular,omitempty"`
}

type PlaceHoursSpan struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type PlacePhoto struct {
	ID     string `json:"id"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

type PlaceTip struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

type searchResponse struct {
	Results []Place `json:"results"`
}
