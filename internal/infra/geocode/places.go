package geocode

import (
	"skillswap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// metroRegion is a rectangular approximation of a metro area used to bucket midpoints.
// Boxes are coarse: a midpoint near an edge can land in the neighbouring region or in
// none. The first containing box in table order wins.
type metroRegion struct {
	city  string
	state string
	bound orb.Bound
}

var metroRegions = []metroRegion{
	// lat 18.89..19.27, lng 72.77..72.99
	{city: "Mumbai", state: "Maharashtra", bound: orb.Bound{Min: orb.Point{72.77, 18.89}, Max: orb.Point{72.99, 19.27}}},
	// lat 28.40..28.88, lng 76.84..77.35
	{city: "Delhi", state: "Delhi", bound: orb.Bound{Min: orb.Point{76.84, 28.40}, Max: orb.Point{77.35, 28.88}}},
	// lat 12.83..13.14, lng 77.46..77.78
	{city: "Bangalore", state: "Karnataka", bound: orb.Bound{Min: orb.Point{77.46, 12.83}, Max: orb.Point{77.78, 13.14}}},
	// lat 12.90..13.23, lng 80.12..80.32
	{city: "Chennai", state: "Tamil Nadu", bound: orb.Bound{Min: orb.Point{80.12, 12.90}, Max: orb.Point{80.32, 13.23}}},
	// lat 17.25..17.60, lng 78.25..78.65
	{city: "Hyderabad", state: "Telangana", bound: orb.Bound{Min: orb.Point{78.25, 17.25}, Max: orb.Point{78.65, 17.60}}},
	// lat 18.40..18.65, lng 73.70..74.00
	{city: "Pune", state: "Maharashtra", bound: orb.Bound{Min: orb.Point{73.70, 18.40}, Max: orb.Point{74.00, 18.65}}},
	// lat 22.45..22.70, lng 88.25..88.45
	{city: "Kolkata", state: "West Bengal", bound: orb.Bound{Min: orb.Point{88.25, 22.45}, Max: orb.Point{88.45, 22.70}}},
	// lat 22.95..23.12, lng 72.48..72.68
	{city: "Ahmedabad", state: "Gujarat", bound: orb.Bound{Min: orb.Point{72.48, 22.95}, Max: orb.Point{72.68, 23.12}}},
}

// centralLocation labels a midpoint outside every metro box.
const centralLocation = "Central Location"

// suggestionTemplate describes one synthetic meetup candidate around a midpoint.
type suggestionTemplate struct {
	name     string // formatted with the bucketed city name
	address  string // formatted with the bucketed city name
	category entity.Category
	dLat     float64
	dLng     float64
}

// Offsets stay within maxJitterDegrees of the midpoint.
var suggestionTemplates = []suggestionTemplate{
	{name: "%s Public Library", address: "Library Road, %s", category: entity.CategoryLibrary, dLat: 0.002, dLng: 0.002},
	{name: "Brew & Books Café, %s", address: "Main Street, %s", category: entity.CategoryCafe, dLat: -0.001, dLng: 0.003},
	{name: "%s Coworking Hub", address: "Business District, %s", category: entity.CategoryCoworking, dLat: 0.003, dLng: -0.001},
	{name: "%s Central Park", address: "Park Avenue, %s", category: entity.CategoryPark, dLat: -0.003, dLng: -0.002},
	{name: "Corner Coffee House, %s", address: "Market Square, %s", category: entity.CategoryCafe, dLat: 0.001, dLng: -0.003},
	{name: "%s Startup Studio", address: "Tech Park, %s", category: entity.CategoryCoworking, dLat: -0.002, dLng: 0.001},
}

const maxJitterDegrees = 0.003

// fallbackTemplates back GetPopularLocations for cities without a curated list.
var fallbackTemplates = []suggestionTemplate{
	{name: "%s Public Library", address: "Central Library, %s", category: entity.CategoryLibrary},
	{name: "Central Café, %s", address: "Main Road, %s", category: entity.CategoryCafe},
	{name: "%s Coworking Space", address: "Business Centre, %s", category: entity.CategoryCoworking},
	{name: "%s City Park", address: "Park Road, %s", category: entity.CategoryPark},
	{name: "%s Food Court", address: "City Mall, %s", category: entity.CategoryOther},
}

// landmark is a curated real place in one of the metros.
type landmark struct {
	name        string
	address     string
	category    entity.Category
	point       orb.Point
	description string
}

// landmarks is keyed by canonical city name from indiaCities.
var landmarks = map[string][]landmark{
	"Mumbai": {
		{name: "David Sassoon Library", address: "Kala Ghoda, Fort", category: entity.CategoryLibrary, point: orb.Point{72.8318, 18.9285}, description: "Heritage reading room near Kala Ghoda"},
		{name: "Kala Ghoda Café", address: "Bharthania Building, Fort", category: entity.CategoryCafe, point: orb.Point{72.8322, 18.9291}},
		{name: "Oval Maidan", address: "Churchgate", category: entity.CategoryPark, point: orb.Point{72.8275, 18.9298}},
		{name: "Jio World Centre", address: "Bandra Kurla Complex", category: entity.CategoryCoworking, point: orb.Point{72.8650, 19.0637}},
		{name: "Carter Road Promenade", address: "Bandra West", category: entity.CategoryPark, point: orb.Point{72.8217, 19.0669}},
	},
	"Delhi": {
		{name: "Delhi Public Library", address: "S.P. Mukherjee Marg, Old Delhi", category: entity.CategoryLibrary, point: orb.Point{77.2287, 28.6579}},
		{name: "Indian Coffee House", address: "Baba Kharak Singh Marg, Connaught Place", category: entity.CategoryCafe, point: orb.Point{77.2131, 28.6280}},
		{name: "Lodhi Garden", address: "Lodhi Road", category: entity.CategoryPark, point: orb.Point{77.2197, 28.5931}},
		{name: "India Habitat Centre", address: "Lodhi Road", category: entity.CategoryOther, point: orb.Point{77.2250, 28.5893}, description: "Cultural centre with open courtyards"},
		{name: "Hauz Khas Village", address: "Hauz Khas", category: entity.CategoryCafe, point: orb.Point{77.1947, 28.5535}},
	},
	"Bangalore": {
		{name: "State Central Library", address: "Cubbon Park", category: entity.CategoryLibrary, point: orb.Point{77.5933, 12.9767}},
		{name: "Cubbon Park", address: "Kasturba Road", category: entity.CategoryPark, point: orb.Point{77.5929, 12.9763}},
		{name: "Indian Coffee House", address: "Church Street", category: entity.CategoryCafe, point: orb.Point{77.6050, 12.9752}},
		{name: "Bangalore International Centre", address: "Domlur", category: entity.CategoryOther, point: orb.Point{77.6474, 12.9591}},
		{name: "Lalbagh Botanical Garden", address: "Mavalli", category: entity.CategoryPark, point: orb.Point{77.5848, 12.9507}},
	},
	"Chennai": {
		{name: "Connemara Public Library", address: "Egmore", category: entity.CategoryLibrary, point: orb.Point{80.2573, 13.0694}},
		{name: "Amethyst Café", address: "Royapettah", category: entity.CategoryCafe, point: orb.Point{80.2582, 13.0540}},
		{name: "Semmozhi Poonga", address: "Teynampet", category: entity.CategoryPark, point: orb.Point{80.2510, 13.0500}},
		{name: "Elliot's Beach", address: "Besant Nagar", category: entity.CategoryPark, point: orb.Point{80.2721, 12.9989}},
	},
	"Hyderabad": {
		{name: "State Central Library", address: "Afzal Gunj", category: entity.CategoryLibrary, point: orb.Point{78.4767, 17.3731}},
		{name: "Lamakaan", address: "Banjara Hills", category: entity.CategoryCafe, point: orb.Point{78.4423, 17.4185}, description: "Open cultural space with a canteen"},
		{name: "KBR National Park", address: "Jubilee Hills", category: entity.CategoryPark, point: orb.Point{78.4210, 17.4239}},
		{name: "T-Hub", address: "Raidurg, HITEC City", category: entity.CategoryCoworking, point: orb.Point{78.3776, 17.4330}},
	},
	"Pune": {
		{name: "Jaykar Library", address: "Savitribai Phule Pune University", category: entity.CategoryLibrary, point: orb.Point{73.8253, 18.5537}},
		{name: "Vohuman Café", address: "Sassoon Road", category: entity.CategoryCafe, point: orb.Point{73.8747, 18.5289}},
		{name: "Empress Garden", address: "Camp", category: entity.CategoryPark, point: orb.Point{73.8956, 18.5069}},
		{name: "Koregaon Park Lane 7", address: "Koregaon Park", category: entity.CategoryCafe, point: orb.Point{73.8950, 18.5362}},
	},
}
