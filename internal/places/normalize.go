package places

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"sydneyplanner/internal/venue"
)

const (
	// IDPrefix keeps provider ids from colliding with catalog ids. The same
	// raw record always normalizes to the same canonical id.
	IDPrefix = "fsq_"

	// mediumPhotoSize is the variant requested for hero and gallery images.
	mediumPhotoSize = "500x500"

	defaultRating     = "4.0"
	defaultDistance   = "Nearby"
	defaultAddress    = "Sydney, NSW"
	fallbackCategory  = "Venue"
	stockImageURL     = "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?w=800"
	descriptionSuffix = " in Sydney, Australia."
)

// ErrNilPlace is returned when Normalize is handed a missing record; a raw
// record with missing optional fields is never an error.
var ErrNilPlace = errors.New("place record is nil")

// Normalize converts a raw provider record into the canonical Venue shape.
// Pure and deterministic: no I/O, same input always yields the same output.
// fallbackImage is used when the record has no photos; pass "" for the stock
// placeholder.
func Normalize(raw *Place, fallbackImage string) (venue.Venue, error) {
	if raw == nil {
		return venue.Venue{}, ErrNilPlace
	}

	v := venue.Venue{
		ID:       IDPrefix + raw.FsqID,
		FsqID:    raw.FsqID,
		Name:     raw.Name,
		Source:   venue.SourceFoursquare,
		Phone:    raw.Tel,
		Website:  raw.Website,
		Rating:   normalizeRating(raw.Rating),
		Distance: normalizeDistance(raw.Distance),
		Address:  normalizeAddress(raw.Location),
	}

	v.Category = fallbackCategory
	if len(raw.Categories) > 0 {
		v.Category = raw.Categories[0].Name
		v.Categories = make([]string, len(raw.Categories))
		for i, c := range raw.Categories {
			v.Categories[i] = c.Name
		}
	}

	v.Style = venue.StyleFor(v.Category)

	v.Lat, v.Lng = venue.DefaultLat, venue.DefaultLng
	if raw.Geocodes != nil {
		v.Lat = raw.Geocodes.Main.Latitude
		v.Lng = raw.Geocodes.Main.Longitude
	}

	if len(raw.Photos) > 0 {
		v.Image = PhotoURL(raw.Photos[0])
		v.Photos = make([]string, len(raw.Photos))
		for i, p := range raw.Photos {
			v.Photos[i] = PhotoURL(p)
		}
	} else if fallbackImage != "" {
		v.Image = fallbackImage
	} else {
		v.Image = stockImageURL
	}

	v.Description = raw.Description
	if v.Description == "" {
		v.Description = v.Category + descriptionSuffix
	}

	if raw.Hours != nil {
		hours := &venue.Hours{Display: raw.Hours.Display, OpenNow: raw.Hours.OpenNow}
		for _, span := range raw.Hours.Regular {
			hours.Regular = append(hours.Regular, venue.HoursSpan(span))
		}
		v.Hours = hours
	}

	for _, tip := range raw.Tips {
		v.Tips = append(v.Tips, tip.Text)
	}

	return v, nil
}

// PhotoURL renders a provider photo at the medium variant.
func PhotoURL(p PlacePhoto) string {
	return p.Prefix + mediumPhotoSize + p.Suffix
}

// normalizeRating halves the provider's 0-10 rating onto the app's 0-5 scale,
// rounded to one decimal. Missing ratings default to "4.0".
func normalizeRating(r *float64) string {
	if r == nil {
		return defaultRating
	}
	return fmt.Sprintf("%.1f", math.Round(*r/2*10)/10)
}

func normalizeDistance(meters *int) string {
	if meters == nil {
		return defaultDistance
	}
	return fmt.Sprintf("%.1f km", float64(*meters)/1000)
}

func normalizeAddress(loc *PlaceLocation) string {
	if loc == nil {
		return defaultAddress
	}
	if loc.FormattedAddress != "" {
		return loc.FormattedAddress
	}
	var parts []string
	for _, p := range []string{loc.Address, loc.Locality, loc.Region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return defaultAddress
	}
	return strings.Join(parts, ", ")
}
