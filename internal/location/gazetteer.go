// Package location extracts a best-guess location from resume text and
// classifies proximity between a resume location and a job's location text.
package location

// cities is the curated city gazetteer: major US cities, tech hubs and
// international cities.
var cities = []string{
	// Major US cities
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
	"Fort Worth", "Columbus", "Charlotte", "San Francisco", "Indianapolis",
	"Seattle", "Denver", "Washington DC", "Boston", "Nashville", "Baltimore",
	"Oklahoma City", "Louisville", "Portland", "Las Vegas", "Memphis", "Detroit",
	"Milwaukee", "Albuquerque", "Tucson", "Fresno", "Sacramento", "Kansas City",
	"Mesa", "Atlanta", "Colorado Springs", "Raleigh", "Omaha", "Miami", "Oakland",
	"Minneapolis", "Tulsa", "Cleveland", "Wichita", "Arlington", "Tampa",

	// Tech hubs
	"Silicon Valley", "Palo Alto", "Mountain View", "Cupertino", "Redmond",
	"Cambridge", "Boulder", "Research Triangle", "Ann Arbor",

	// International cities
	"Toronto", "Vancouver", "Montreal", "Ottawa", "Calgary", "London", "Manchester",
	"Edinburgh", "Dublin", "Berlin", "Munich", "Amsterdam", "Stockholm", "Copenhagen",
	"Helsinki", "Oslo", "Zurich", "Geneva", "Paris", "Lyon", "Madrid", "Barcelona",
	"Rome", "Milan", "Vienna", "Prague", "Warsaw", "Budapest", "Bucharest",
	"Sofia", "Athens", "Istanbul", "Tel Aviv", "Dubai", "Riyadh", "Kuwait City",
	"Doha", "Abu Dhabi", "Cairo", "Casablanca", "Lagos", "Nairobi", "Cape Town",
	"Johannesburg", "Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
	"Pune", "Kolkata", "Ahmedabad", "Surat", "Jaipur", "Lucknow", "Kanpur",
	"Nagpur", "Indore", "Thane", "Bhopal", "Visakhapatnam", "Patna",
	"Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik", "Faridabad",
	"Meerut", "Rajkot", "Varanasi", "Srinagar", "Aurangabad",
	"Amritsar", "Navi Mumbai", "Allahabad", "Ranchi", "Howrah",
	"Coimbatore", "Jabalpur", "Gwalior", "Vijayawada", "Jodhpur", "Madurai",
	"Raipur", "Kota", "Guwahati", "Chandigarh", "Solapur", "Tiruchirappalli",
	"Bareilly", "Mysore", "Gurgaon", "Aligarh", "Jalandhar", "Bhubaneswar",
	"Salem", "Warangal", "Guntur", "Saharanpur", "Gorakhpur",
	"Bikaner", "Amravati", "Noida", "Jamshedpur", "Bhilai", "Cuttack",
	"Kochi", "Nellore", "Bhavnagar", "Dehradun", "Durgapur", "Asansol",
	"Rourkela", "Nanded", "Kolhapur", "Ajmer", "Akola", "Jamnagar",
	"Ujjain", "Siliguri", "Jhansi", "Jammu", "Sangli",
	"Mangalore", "Erode", "Belgaum", "Tirunelveli",
	"Gaya", "Jalgaon", "Udaipur", "Beijing", "Shanghai", "Guangzhou",
	"Shenzhen", "Chengdu", "Hangzhou", "Wuhan", "Xian", "Suzhou", "Zhengzhou",
	"Tokyo", "Osaka", "Yokohama", "Nagoya", "Sapporo", "Fukuoka", "Kobe",
	"Seoul", "Busan", "Incheon", "Daegu", "Daejeon", "Gwangju", "Suwon",
	"Bangkok", "Ho Chi Minh City", "Hanoi", "Manila", "Quezon City", "Davao",
	"Cebu City", "Jakarta", "Surabaya", "Bandung", "Medan", "Semarang",
	"Palembang", "Makassar", "Kuala Lumpur", "George Town", "Ipoh", "Shah Alam",
	"Singapore", "Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide",
	"Gold Coast", "Newcastle", "Canberra", "Auckland", "Wellington", "Christchurch",
	"Hamilton", "Tauranga", "São Paulo", "Rio de Janeiro", "Brasília", "Salvador",
	"Fortaleza", "Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre",
	"Buenos Aires", "Córdoba", "Rosario", "Mendoza", "La Plata", "Santiago",
	"Valparaíso", "Concepción", "Lima", "Arequipa", "Trujillo", "Chiclayo",
	"Bogotá", "Medellín", "Cali", "Barranquilla", "Cartagena", "Caracas",
	"Maracaibo", "Valencia", "Barquisimeto", "Mexico City", "Guadalajara",
	"Monterrey", "Puebla", "Tijuana", "León", "Juárez", "Torreón", "Querétaro",
}

// states covers US states, Canadian provinces and Indian states.
var states = []string{
	// US states
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",

	// Canadian provinces
	"Alberta", "British Columbia", "Manitoba", "New Brunswick", "Newfoundland and Labrador",
	"Northwest Territories", "Nova Scotia", "Nunavut", "Ontario", "Prince Edward Island",
	"Quebec", "Saskatchewan", "Yukon",

	// Indian states
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa",
	"Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
	"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
}

var countries = []string{
	"United States", "USA", "US", "Canada", "United Kingdom", "UK", "England", "Scotland",
	"Wales", "Northern Ireland", "Ireland", "Germany", "France", "Italy", "Spain",
	"Netherlands", "Belgium", "Switzerland", "Austria", "Sweden", "Norway", "Denmark",
	"Finland", "Poland", "Czech Republic", "Hungary", "Romania", "Bulgaria", "Greece",
	"Portugal", "Croatia", "Slovenia", "Slovakia", "Estonia", "Latvia", "Lithuania",
	"Luxembourg", "Malta", "Cyprus", "Russia", "Ukraine", "Belarus", "Turkey", "Israel",
	"Saudi Arabia", "UAE", "Qatar", "Kuwait", "Bahrain", "Oman", "Jordan", "Lebanon",
	"Egypt", "Morocco", "Tunisia", "Algeria", "Libya", "Sudan", "Ethiopia", "Kenya",
	"Tanzania", "Uganda", "Rwanda", "Ghana", "Nigeria", "South Africa", "Botswana",
	"Namibia", "Zambia", "Zimbabwe", "Mozambique", "Madagascar", "Mauritius", "India",
	"Pakistan", "Bangladesh", "Sri Lanka", "Nepal", "Bhutan", "Maldives", "Afghanistan",
	"Iran", "Iraq", "China", "Japan", "South Korea", "North Korea", "Mongolia", "Taiwan",
	"Hong Kong", "Macau", "Thailand", "Vietnam", "Cambodia", "Laos", "Myanmar", "Malaysia",
	"Singapore", "Indonesia", "Philippines", "Brunei", "East Timor", "Papua New Guinea",
	"Australia", "New Zealand", "Fiji", "Samoa", "Tonga", "Vanuatu", "Solomon Islands",
	"Brazil", "Argentina", "Chile", "Peru", "Colombia", "Venezuela", "Ecuador", "Bolivia",
	"Paraguay", "Uruguay", "Guyana", "Suriname", "French Guiana", "Mexico", "Guatemala",
	"Belize", "El Salvador", "Honduras", "Nicaragua", "Costa Rica", "Panama", "Cuba",
	"Jamaica", "Haiti", "Dominican Republic", "Puerto Rico", "Trinidad and Tobago",
	"Barbados", "Bahamas", "Grenada", "Saint Lucia", "Saint Vincent and the Grenadines",
	"Antigua and Barbuda", "Dominica", "Saint Kitts and Nevis",
}

// techHubs pairs a well-known tech metro with its commuter-distance
// satellites. Matching in either direction counts as regional proximity.
var techHubs = map[string][]string{
	"silicon valley": {"san francisco", "san jose", "palo alto", "mountain view", "cupertino"},
	"seattle":        {"redmond", "bellevue", "tacoma"},
	"boston":         {"cambridge", "somerville"},
	"new york":       {"jersey city", "brooklyn", "queens"},
	"austin":         {"round rock", "cedar park"},
	"denver":         {"boulder", "fort collins"},
}
