package venue

import "strings"

// Style is the display style a venue category renders with.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var (
	cafeStyle       = Style{Color: "#C08552", Icon: "coffee"}
	restaurantStyle = Style{Color: "#D1495B", Icon: "utensils"}
	beachStyle      = Style{Color: "#2E86AB", Icon: "sun"}
	natureStyle     = Style{Color: "#3A7D44", Icon: "tree"}
	museumStyle     = Style{Color: "#7768AE", Icon: "landmark"}
	barStyle        = Style{Color: "#F18F01", Icon: "beer"}
	defaultStyle    = Style{Color: "#6C757D", Icon: "map-pin"}
)

// exactStyles covers the closed catalog category set.
var exactStyles = map[string]Style{
	"Cafe":       cafeStyle,
	"Restaurant": restaurantStyle,
	"Beach":      beachStyle,
	"Nature":     natureStyle,
	"Museum":     museumStyle,
	"Bar":        barStyle,
}

type styleRule struct {
	keywords []string
	style    Style
}

// fuzzyStyleRules handles free-form provider categories ("Coffee Shop",
// "Seafood Restaurant"). Evaluated top to bottom, first match wins, so the
// order is part of the contract.
var fuzzyStyleRules = []styleRule{
	{keywords: []string{"cafe", "coffee"}, style: cafeStyle},
	{keywords: []string{"restaurant", "dining", "food"}, style: restaurantStyle},
	{keywords: []string{"beach", "swim", "surf"}, style: beachStyle},
	{keywords: []string{"nature", "park", "garden", "walk", "trail"}, style: natureStyle},
	{keywords: []string{"museum", "art", "gallery"}, style: museumStyle},
	{keywords: []string{"bar", "pub", "brewery", "wine"}, style: barStyle},
}

// StyleFor resolves a category label to a display style. Exact match first,
// then case-insensitive substring rules, then a neutral default. Never fails.
func StyleFor(category string) Style {
	if s, ok := exactStyles[category]; ok {
		return s
	}
	lower := strings.ToLower(category)
	for _, rule := range fuzzyStyleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.style
			}
		}
	}
	return defaultStyle
}
