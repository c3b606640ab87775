package geocode

import (
	"github.com/paulmach/orb"
)

// cityEntry is one known city of a country with tables.
type cityEntry struct {
	name     string
	centroid orb.Point
	state    string
	district string
	aliases  []string
}

// stateEntry is the centroid fallback for a state or union territory.
type stateEntry struct {
	name     string
	centroid orb.Point
	aliases  []string
}

// regionTable holds the city and state tables for one country.
type regionTable struct {
	cities []cityEntry
	states []stateEntry
	// keywords are address conventions that mark an address as belonging to the country.
	keywords []string
}

var indiaCities = []cityEntry{
	{name: "Mumbai", centroid: orb.Point{72.8777, 19.0760}, state: "Maharashtra", district: "Mumbai", aliases: []string{"bombay"}},
	{name: "Delhi", centroid: orb.Point{77.1025, 28.7041}, state: "Delhi", district: "Central Delhi", aliases: []string{"new delhi", "dilli"}},
	{name: "Bangalore", centroid: orb.Point{77.5946, 12.9716}, state: "Karnataka", district: "Bangalore Urban", aliases: []string{"bengaluru", "bangaluru"}},
	{name: "Hyderabad", centroid: orb.Point{78.4867, 17.3850}, state: "Telangana", district: "Hyderabad", aliases: []string{"cyberabad"}},
	{name: "Chennai", centroid: orb.Point{80.2707, 13.0827}, state: "Tamil Nadu", district: "Chennai", aliases: []string{"madras"}},
	{name: "Kolkata", centroid: orb.Point{88.3639, 22.5726}, state: "West Bengal", district: "Kolkata", aliases: []string{"calcutta"}},
	{name: "Pune", centroid: orb.Point{73.8567, 18.5204}, state: "Maharashtra", district: "Pune", aliases: []string{"poona"}},
	{name: "Ahmedabad", centroid: orb.Point{72.5714, 23.0225}, state: "Gujarat", district: "Ahmedabad", aliases: []string{"amdavad"}},
	{name: "Jaipur", centroid: orb.Point{75.7873, 26.9124}, state: "Rajasthan", district: "Jaipur", aliases: []string{"pink city"}},
	{name: "Surat", centroid: orb.Point{72.8311, 21.1702}, state: "Gujarat", district: "Surat"},
	{name: "Lucknow", centroid: orb.Point{80.9462, 26.8467}, state: "Uttar Pradesh", district: "Lucknow"},
	{name: "Kanpur", centroid: orb.Point{80.3319, 26.4499}, state: "Uttar Pradesh", district: "Kanpur Nagar", aliases: []string{"cawnpore"}},
	{name: "Nagpur", centroid: orb.Point{79.0882, 21.1458}, state: "Maharashtra", district: "Nagpur"},
	{name: "Indore", centroid: orb.Point{75.8577, 22.7196}, state: "Madhya Pradesh", district: "Indore"},
	{name: "Thane", centroid: orb.Point{72.9781, 19.2183}, state: "Maharashtra", district: "Thane"},
	{name: "Navi Mumbai", centroid: orb.Point{73.0297, 19.0330}, state: "Maharashtra", district: "Thane", aliases: []string{"new bombay"}},
	{name: "Bhopal", centroid: orb.Point{77.4126, 23.2599}, state: "Madhya Pradesh", district: "Bhopal"},
	{name: "Visakhapatnam", centroid: orb.Point{83.2185, 17.6868}, state: "Andhra Pradesh", district: "Visakhapatnam", aliases: []string{"vizag", "vishakhapatnam"}},
	{name: "Patna", centroid: orb.Point{85.1376, 25.5941}, state: "Bihar", district: "Patna"},
	{name: "Vadodara", centroid: orb.Point{73.1812, 22.3072}, state: "Gujarat", district: "Vadodara", aliases: []string{"baroda"}},
	{name: "Ghaziabad", centroid: orb.Point{77.4538, 28.6692}, state: "Uttar Pradesh", district: "Ghaziabad"},
	{name: "Ludhiana", centroid: orb.Point{75.8573, 30.9010}, state: "Punjab", district: "Ludhiana"},
	{name: "Agra", centroid: orb.Point{78.0081, 27.1767}, state: "Uttar Pradesh", district: "Agra"},
	{name: "Nashik", centroid: orb.Point{73.7898, 19.9975}, state: "Maharashtra", district: "Nashik", aliases: []string{"nasik"}},
	{name: "Faridabad", centroid: orb.Point{77.3178, 28.4089}, state: "Haryana", district: "Faridabad"},
	{name: "Meerut", centroid: orb.Point{77.7064, 28.9845}, state: "Uttar Pradesh", district: "Meerut"},
	{name: "Rajkot", centroid: orb.Point{70.8022, 22.3039}, state: "Gujarat", district: "Rajkot"},
	{name: "Varanasi", centroid: orb.Point{82.9739, 25.3176}, state: "Uttar Pradesh", district: "Varanasi", aliases: []string{"banaras", "benares", "kashi"}},
	{name: "Srinagar", centroid: orb.Point{74.7973, 34.0837}, state: "Jammu and Kashmir", district: "Srinagar"},
	{name: "Aurangabad", centroid: orb.Point{75.3433, 19.8762}, state: "Maharashtra", district: "Chhatrapati Sambhajinagar", aliases: []string{"sambhajinagar", "chhatrapati sambhajinagar"}},
	{name: "Amritsar", centroid: orb.Point{74.8723, 31.6340}, state: "Punjab", district: "Amritsar"},
	{name: "Prayagraj", centroid: orb.Point{81.8463, 25.4358}, state: "Uttar Pradesh", district: "Prayagraj", aliases: []string{"allahabad"}},
	{name: "Ranchi", centroid: orb.Point{85.3096, 23.3441}, state: "Jharkhand", district: "Ranchi"},
	{name: "Coimbatore", centroid: orb.Point{76.9558, 11.0168}, state: "Tamil Nadu", district: "Coimbatore", aliases: []string{"kovai"}},
	{name: "Jodhpur", centroid: orb.Point{73.0243, 26.2389}, state: "Rajasthan", district: "Jodhpur"},
	{name: "Madurai", centroid: orb.Point{78.1198, 9.9252}, state: "Tamil Nadu", district: "Madurai"},
	{name: "Raipur", centroid: orb.Point{81.6296, 21.2514}, state: "Chhattisgarh", district: "Raipur"},
	{name: "Kota", centroid: orb.Point{75.8648, 25.2138}, state: "Rajasthan", district: "Kota"},
	{name: "Guwahati", centroid: orb.Point{91.7362, 26.1445}, state: "Assam", district: "Kamrup Metropolitan", aliases: []string{"gauhati"}},
	{name: "Chandigarh", centroid: orb.Point{76.7794, 30.7333}, state: "Chandigarh", district: "Chandigarh"},
	{name: "Mysore", centroid: orb.Point{76.6394, 12.2958}, state: "Karnataka", district: "Mysuru", aliases: []string{"mysuru"}},
	{name: "Thiruvananthapuram", centroid: orb.Point{76.9366, 8.5241}, state: "Kerala", district: "Thiruvananthapuram", aliases: []string{"trivandrum"}},
	{name: "Kochi", centroid: orb.Point{76.2673, 9.9312}, state: "Kerala", district: "Ernakulam", aliases: []string{"cochin", "ernakulam"}},
	{name: "Bhubaneswar", centroid: orb.Point{85.8245, 20.2961}, state: "Odisha", district: "Khordha", aliases: []string{"bhubaneshwar"}},
	{name: "Dehradun", centroid: orb.Point{78.0322, 30.3165}, state: "Uttarakhand", district: "Dehradun", aliases: []string{"dehra dun"}},
	{name: "Gurgaon", centroid: orb.Point{77.0266, 28.4595}, state: "Haryana", district: "Gurugram", aliases: []string{"gurugram"}},
	{name: "Noida", centroid: orb.Point{77.3910, 28.5355}, state: "Uttar Pradesh", district: "Gautam Buddh Nagar"},
	{name: "Mangalore", centroid: orb.Point{74.8560, 12.9141}, state: "Karnataka", district: "Dakshina Kannada", aliases: []string{"mangaluru"}},
	{name: "Vijayawada", centroid: orb.Point{80.6480, 16.5062}, state: "Andhra Pradesh", district: "NTR", aliases: []string{"bezawada"}},
	{name: "Panaji", centroid: orb.Point{73.8278, 15.4909}, state: "Goa", district: "North Goa", aliases: []string{"panjim"}},
	{name: "Shimla", centroid: orb.Point{77.1734, 31.1048}, state: "Himachal Pradesh", district: "Shimla", aliases: []string{"simla"}},
	{name: "Jammu", centroid: orb.Point{74.8570, 32.7266}, state: "Jammu and Kashmir", district: "Jammu"},
	{name: "Udaipur", centroid: orb.Point{73.7125, 24.5854}, state: "Rajasthan", district: "Udaipur"},
	{name: "Hubli", centroid: orb.Point{75.1240, 15.3647}, state: "Karnataka", district: "Dharwad", aliases: []string{"hubballi", "hubli-dharwad"}},
	{name: "Tiruchirappalli", centroid: orb.Point{78.7047, 10.7905}, state: "Tamil Nadu", district: "Tiruchirappalli", aliases: []string{"trichy", "tiruchi"}},
	{name: "Gwalior", centroid: orb.Point{78.1828, 26.2183}, state: "Madhya Pradesh", district: "Gwalior"},
	{name: "Jabalpur", centroid: orb.Point{79.9864, 23.1815}, state: "Madhya Pradesh", district: "Jabalpur"},
	{name: "Howrah", centroid: orb.Point{88.2636, 22.5958}, state: "West Bengal", district: "Howrah"},
	{name: "Secunderabad", centroid: orb.Point{78.4983, 17.4399}, state: "Telangana", district: "Hyderabad"},
	{name: "Gangtok", centroid: orb.Point{88.6065, 27.3389}, state: "Sikkim", district: "Gangtok"},
	{name: "Shillong", centroid: orb.Point{91.8933, 25.5788}, state: "Meghalaya", district: "East Khasi Hills"},
	{name: "Imphal", centroid: orb.Point{93.9368, 24.8170}, state: "Manipur", district: "Imphal West"},
	{name: "Puducherry", centroid: orb.Point{79.8083, 11.9416}, state: "Puducherry", district: "Puducherry", aliases: []string{"pondicherry", "pondy"}},
}

var indiaStates = []stateEntry{
	{name: "Andhra Pradesh", centroid: orb.Point{79.7400, 15.9129}},
	{name: "Arunachal Pradesh", centroid: orb.Point{94.7278, 28.2180}},
	{name: "Assam", centroid: orb.Point{92.9376, 26.2006}},
	{name: "Bihar", centroid: orb.Point{85.3131, 25.0961}},
	{name: "Chhattisgarh", centroid: orb.Point{81.8661, 21.2787}, aliases: []string{"chattisgarh"}},
	{name: "Goa", centroid: orb.Point{74.1240, 15.2993}},
	{name: "Gujarat", centroid: orb.Point{71.1924, 22.2587}},
	{name: "Haryana", centroid: orb.Point{76.0856, 29.0588}},
	{name: "Himachal Pradesh", centroid: orb.Point{77.1734, 31.1048}},
	{name: "Jharkhand", centroid: orb.Point{85.2799, 23.6102}},
	{name: "Karnataka", centroid: orb.Point{75.7139, 15.3173}},
	{name: "Kerala", centroid: orb.Point{76.2711, 10.8505}},
	{name: "Madhya Pradesh", centroid: orb.Point{78.6569, 22.9734}},
	{name: "Maharashtra", centroid: orb.Point{75.7139, 19.7515}},
	{name: "Manipur", centroid: orb.Point{93.9063, 24.6637}},
	{name: "Meghalaya", centroid: orb.Point{91.3662, 25.4670}},
	{name: "Mizoram", centroid: orb.Point{92.9376, 23.1645}},
	{name: "Nagaland", centroid: orb.Point{94.5624, 26.1584}},
	{name: "Odisha", centroid: orb.Point{85.0985, 20.9517}, aliases: []string{"orissa"}},
	{name: "Punjab", centroid: orb.Point{75.3412, 31.1471}},
	{name: "Rajasthan", centroid: orb.Point{74.2179, 27.0238}},
	{name: "Sikkim", centroid: orb.Point{88.5122, 27.5330}},
	{name: "Tamil Nadu", centroid: orb.Point{78.6569, 11.1271}},
	{name: "Telangana", centroid: orb.Point{79.0193, 18.1124}},
	{name: "Tripura", centroid: orb.Point{91.9882, 23.9408}},
	{name: "Uttar Pradesh", centroid: orb.Point{80.9462, 26.8467}},
	{name: "Uttarakhand", centroid: orb.Point{79.0193, 30.0668}, aliases: []string{"uttaranchal"}},
	{name: "West Bengal", centroid: orb.Point{87.8550, 22.9868}},
	{name: "Andaman and Nicobar Islands", centroid: orb.Point{92.6586, 11.7401}, aliases: []string{"andaman"}},
	{name: "Dadra and Nagar Haveli and Daman and Diu", centroid: orb.Point{72.8328, 20.3974}, aliases: []string{"daman", "silvassa"}},
	{name: "Jammu and Kashmir", centroid: orb.Point{76.5762, 33.7782}, aliases: []string{"kashmir"}},
	{name: "Ladakh", centroid: orb.Point{77.5771, 34.1526}, aliases: []string{"leh"}},
	{name: "Lakshadweep", centroid: orb.Point{72.6417, 10.5667}},
	{name: "Puducherry", centroid: orb.Point{79.8083, 11.9416}},
	{name: "Chandigarh", centroid: orb.Point{76.7794, 30.7333}},
	{name: "Delhi", centroid: orb.Point{77.1025, 28.7041}, aliases: []string{"nct"}},
}

// regionTables is keyed by country code. Only countries listed here get
// city and state resolution; every other country resolves to its centroid.
var regionTables = map[string]*regionTable{
	indiaCode: {
		cities:   indiaCities,
		states:   indiaStates,
		keywords: []string{"nagar", "marg", "chowk", "mohalla", "gali", "taluka", "tehsil", "pincode", "pin code"},
	},
}
