package faker

// Reference tables. Fixed order, never mutated: generation indexes into
// these slices, so reordering entries changes every seeded output.

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Christopher",
	"Nancy", "Daniel", "Lisa", "Matthew", "Margaret", "Anthony", "Betty",
	"Mark", "Sandra", "Donald", "Ashley", "Steven", "Dorothy", "Paul",
	"Kimberly", "Andrew", "Emily", "Joshua", "Donna", "Kenneth", "Michelle",
	"Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Edward",
	"Deborah", "Ronald", "Stephanie", "Timothy", "Rebecca", "Jason", "Laura",
	"Jeffrey", "Sharon", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary",
	"Amy", "Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris",
	"Morales", "Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan",
}

var emailDomains = []string{
	"example.com", "gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
	"mail.com", "icloud.com", "protonmail.com",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
	"Hill", "Park", "Walnut", "Sunset", "Lincoln", "Jackson", "Church",
	"River", "Willow", "Jefferson", "Center", "Highland", "Forest",
	"Madison", "Chestnut", "Spring", "Ridge", "Meadow", "Franklin", "Spruce",
	"Birch", "Valley", "Cherry", "Dogwood", "Hickory", "Magnolia", "Sycamore",
}

var streetTypes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Pl", "Way", "Ter",
}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
	"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Dover", "Oxford", "Jackson", "Burlington", "Manchester", "Milton",
	"Newport", "Auburn", "Centerville", "Clayton", "Dayton", "Lexington",
	"Milford", "Winchester", "Clinton", "Hudson", "Kingston", "Marion",
	"Monroe",
}

var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY",
}

var companyPrefixes = []string{
	"Global", "United", "Apex", "Summit", "Pioneer", "Vanguard", "Sterling",
	"Crestwood", "Meridian", "Pinnacle", "Nova", "Atlas", "Quantum",
	"Horizon", "Cascade",
}

var companyCores = []string{
	"Systems", "Dynamics", "Industries", "Works", "Networks", "Logistics",
	"Analytics", "Technologies", "Ventures", "Media", "Energy", "Data",
	"Materials", "Capital", "Robotics",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Corp", "Co", "Ltd", "Partners", "Holdings",
	"Labs", "Solutions",
}
