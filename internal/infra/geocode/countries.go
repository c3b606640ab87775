package geocode

import (
	"strings"

	"github.com/paulmach/orb"
)

// addressField names one Location field in a display order.
type addressField int

const (
	fieldName addressField = iota
	fieldAddress
	fieldDistrict
	fieldCity
	fieldState
	fieldCountry
)

// countryProfile is immutable reference data for one supported country.
type countryProfile struct {
	code string
	name string
	// names are lowercase phrases matched on token boundaries.
	names []string
	// abbreviations are matched only as whole tokens.
	abbreviations []string
	centroid      orb.Point
	addressOrder  []addressField
	mapZoom       int
}

const indiaCode = "IN"

// orderStandard is name, address, district, city, state, country. Postal codes are
// stored but never displayed.
var orderStandard = []addressField{fieldName, fieldAddress, fieldDistrict, fieldCity, fieldState, fieldCountry}

// countries fixes the order in which abbreviations are tested. Names are tested
// longest first across all countries; detectCountry documents the full sequence.
var countries = []countryProfile{
	{
		code:          "US",
		name:          "United States",
		names:         []string{"united states of america", "united states"},
		abbreviations: []string{"usa"},
		centroid:      orb.Point{-98.5795, 39.8283},
		addressOrder:  orderStandard,
		mapZoom:       14,
	},
	{
		code:          "GB",
		name:          "United Kingdom",
		names:         []string{"united kingdom", "great britain", "england", "scotland", "wales", "northern ireland", "london"},
		abbreviations: []string{"uk"},
		centroid:      orb.Point{-3.4360, 55.3781},
		addressOrder:  orderStandard,
		mapZoom:       15,
	},
	{
		code:         "CA",
		name:         "Canada",
		names:        []string{"canada", "toronto", "vancouver", "montreal"},
		centroid:     orb.Point{-106.3468, 56.1304},
		addressOrder: orderStandard,
		mapZoom:      14,
	},
	{
		code:          "AU",
		name:          "Australia",
		names:         []string{"australia", "new south wales", "sydney", "melbourne"},
		abbreviations: []string{"aus"},
		centroid:      orb.Point{133.7751, -25.2744},
		addressOrder:  orderStandard,
		mapZoom:       14,
	},
	{
		code:         "DE",
		name:         "Germany",
		names:        []string{"germany", "deutschland", "berlin"},
		centroid:     orb.Point{10.4515, 51.1657},
		addressOrder: orderStandard,
		mapZoom:      15,
	},
	{
		code:         "FR",
		name:         "France",
		names:        []string{"france", "paris"},
		centroid:     orb.Point{2.2137, 46.2276},
		addressOrder: orderStandard,
		mapZoom:      15,
	},
	{
		code:          "SG",
		name:          "Singapore",
		names:         []string{"singapore"},
		abbreviations: []string{"sgp"},
		centroid:      orb.Point{103.8198, 1.3521},
		addressOrder:  orderStandard,
		mapZoom:       16,
	},
	{
		code:          "AE",
		name:          "United Arab Emirates",
		names:         []string{"united arab emirates", "dubai", "abu dhabi", "sharjah"},
		abbreviations: []string{"uae"},
		centroid:      orb.Point{53.8478, 23.4241},
		addressOrder:  orderStandard,
		mapZoom:       15,
	},
	{
		code:         "JP",
		name:         "Japan",
		names:        []string{"japan", "nippon", "tokyo", "osaka"},
		centroid:     orb.Point{138.2529, 36.2048},
		addressOrder: orderStandard,
		mapZoom:      16,
	},
	{
		code:         "NP",
		name:         "Nepal",
		names:        []string{"nepal", "kathmandu"},
		centroid:     orb.Point{84.1240, 28.3949},
		addressOrder: orderStandard,
		mapZoom:      14,
	},
	{
		code:         "BD",
		name:         "Bangladesh",
		names:        []string{"bangladesh", "dhaka"},
		centroid:     orb.Point{90.3563, 23.6850},
		addressOrder: orderStandard,
		mapZoom:      14,
	},
	{
		code:         "LK",
		name:         "Sri Lanka",
		names:        []string{"sri lanka", "colombo"},
		centroid:     orb.Point{80.7718, 7.8731},
		addressOrder: orderStandard,
		mapZoom:      14,
	},
	{
		code:         indiaCode,
		name:         "India",
		names:        []string{"india", "bharat", "hindustan"},
		centroid:     orb.Point{78.9629, 20.5937},
		addressOrder: orderStandard,
		mapZoom:      15,
	},
}

// countryIndex maps lowercase codes and names to their position in countries.
var countryIndex = func() map[string]int {
	idx := make(map[string]int, len(countries)*2)
	for i, c := range countries {
		idx[strings.ToLower(c.code)] = i
		idx[strings.ToLower(c.name)] = i
	}

	return idx
}()

// lookupCountry finds a profile by ISO code or display name.
func lookupCountry(codeOrName string) (countryProfile, bool) {
	i, ok := countryIndex[strings.ToLower(strings.TrimSpace(codeOrName))]
	if !ok {
		return countryProfile{}, false
	}

	return countries[i], true
}
