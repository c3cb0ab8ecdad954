package categorizer

import "fjacquet/expense-categorizer/internal/models"

// DefaultTables returns a fresh copy of the built-in keyword, pattern and
// prior tables. Callers may modify the result before building a store.
func DefaultTables() Tables {
	return Tables{
		Keywords:         defaultKeywords(),
		PriorityKeywords: defaultPriorityKeywords(),
		StrongIndicators: defaultStrongIndicators(),
		SemanticPatterns: defaultSemanticPatterns(),
		ContextPatterns:  defaultContextPatterns(),
		Brands:           defaultBrands(),
		AmountRanges:     defaultAmountRanges(),
		TermFloors:       defaultTermFloors(),
		ContextRules:     defaultContextRules(),
	}
}

func defaultKeywords() map[models.Category][]string {
	return map[models.Category][]string{
		models.CategoryFood: {
			// chains
			"mcdonalds", "burger king", "subway", "starbucks", "kfc", "taco bell", "pizza hut",
			"dominos", "chipotle", "panera", "dunkin", "wendys", "arbys", "sonic", "chick-fil-a",
			"in-n-out", "five guys", "shake shack", "popeyes", "dairy queen", "white castle",
			"jack in the box", "carl jr", "hardees", "del taco", "qdoba", "moes", "panda express",
			"pf changs", "olive garden", "red lobster", "applebees", "chilis", "outback steakhouse",
			"texas roadhouse", "dennys", "ihop", "cracker barrel", "cheesecake factory", "buffalo wild wings",
			// drinks
			"dunkin donuts", "coffee", "tea", "latte", "cappuccino", "espresso",
			"frappuccino", "macchiato", "americano", "mocha", "cold brew", "iced coffee", "hot chocolate",
			"chai", "matcha", "smoothie", "juice", "milkshake", "bubble tea", "boba", "cafe", "coffeehouse",
			// meals and venues
			"food", "eat", "eating", "meal", "lunch", "dinner", "breakfast", "brunch", "snack", "appetizer",
			"entree", "dessert", "drink", "beverage", "wine", "beer", "alcohol", "cocktail", "bar", "pub",
			"restaurant", "diner", "bistro", "grill", "kitchen", "eatery", "dining", "takeout", "delivery",
			// groceries
			"walmart", "target", "kroger", "safeway", "publix", "whole foods", "trader joes", "costco",
			"sams club", "bjs", "grocery", "groceries", "supermarket", "market", "food store", "deli",
			"butcher", "bakery", "produce", "organic", "fresh", "meat", "seafood", "dairy", "frozen",
			"aldi", "lidl", "wegmans", "giant", "stop shop", "food lion", "harris teeter", "meijer",
			// dishes and produce
			"pizza", "burger", "hamburger", "cheeseburger", "sandwich", "sub", "hoagie", "wrap", "burrito",
			"taco", "quesadilla", "nachos", "salad", "soup", "pasta", "spaghetti", "lasagna",
			"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "lobster", "crab", "steak",
			"rice", "bread", "bagel", "muffin", "croissant", "donut", "cookie", "cake", "pie", "ice cream",
			"milk", "cheese", "yogurt", "butter", "eggs", "cereal", "oatmeal", "granola", "fruit", "apple",
			"banana", "orange", "grape", "strawberry", "vegetable", "carrot", "broccoli", "spinach", "potato",
			"curry",
			// delivery
			"uber eats", "doordash", "grubhub", "postmates", "seamless", "deliveroo", "foodpanda",
			"takeaway", "pickup", "order online", "food delivery", "meal delivery",
		},
		models.CategoryTransport: {
			// ride services
			"uber", "lyft", "taxi", "cab", "ola", "grab", "didi", "via", "juno", "rideshare", "ride share",
			"car service", "chauffeur", "limo", "limousine", "shuttle", "airport shuttle", "ride",
			// public transport
			"bus", "metro", "subway", "train", "rail", "railway", "transit", "public transport",
			"mta", "bart", "cta", "mbta", "wmata", "septa", "muni", "trimet", "sound transit",
			"light rail", "streetcar", "tram", "trolley", "ferry", "boat", "water taxi",
			// air
			"airline", "flight", "airplane", "plane", "air travel", "aviation", "airport",
			"american airlines", "delta", "united", "southwest", "jetblue", "alaska", "frontier",
			"spirit", "allegiant", "hawaiian", "virgin", "british airways", "lufthansa", "emirates",
			"qatar", "singapore airlines", "cathay pacific", "air france", "klm", "turkish airlines",
			// fuel
			"gas", "gasoline", "petrol", "diesel", "fuel", "refuel", "fill up", "gas station",
			"shell", "bp", "exxon", "mobil", "chevron", "texaco", "sunoco", "marathon", "speedway",
			"wawa", "7-eleven", "circle k", "casey", "pilot", "loves", "flying j",
			// vehicles
			"car", "auto", "vehicle", "automotive", "parking", "valet", "garage", "lot", "meter",
			"toll", "bridge", "tunnel", "highway", "turnpike", "express lane", "ez pass", "fastrak",
			"repair", "service", "maintenance", "oil change", "tire", "brake", "battery", "mechanic",
			"car wash", "detailing", "inspection", "registration", "insurance", "aaa", "roadside",
			// regional
			"rickshaw", "auto rickshaw", "autorickshaw", "rikshaw", "rick",
			"shared auto", "tempo", "matador", "jeep", "sumo", "innova", "indica", "swift",
			"bus fare", "bus ticket", "bus pass", "city bus", "volvo", "govt bus", "private bus",
			"local train", "train ticket", "train fare", "irctc", "station",
			"metro card", "metro token", "metro fare", "delhi metro", "bangalore metro",
			"travel", "journey", "trip", "commute", "transport", "transportation",
		},
		models.CategoryShopping: {
			// retailers
			"amazon", "walmart", "target", "costco", "best buy", "home depot", "lowes", "macys",
			"nordstrom", "kohls", "jcpenney", "sears", "tj maxx", "marshall", "ross", "burlington",
			"bed bath beyond", "bath body works", "victoria secret", "gap", "old navy", "banana republic",
			"forever 21", "h&m", "zara", "uniqlo", "urban outfitters", "american eagle", "hollister",
			"abercrombie", "express", "ann taylor", "loft", "chicos", "talbots", "lane bryant",
			// online
			"ebay", "etsy", "aliexpress", "alibaba", "wish", "overstock", "wayfair", "zappos",
			"chewy", "petco", "petsmart", "sephora", "ulta", "sally beauty", "cvs", "walgreens",
			// terms
			"shopping", "purchase", "buy", "bought", "order", "checkout", "payment", "sale", "discount",
			"clearance", "deal", "bargain", "coupon", "promo", "black friday", "cyber monday", "prime day",
			// clothing
			"clothes", "clothing", "apparel", "fashion", "dress", "shirt", "blouse", "top", "sweater",
			"cardigan", "jacket", "coat", "blazer", "pants", "jeans", "shorts", "skirt", "leggings",
			"shoes", "boots", "sneakers", "sandals", "heels", "flats", "accessories", "jewelry",
			"watch", "necklace", "earrings", "bracelet", "ring", "bag", "purse", "wallet", "backpack",
			// home
			"furniture", "home", "decor", "decoration", "garden", "yard", "patio", "kitchen", "bedroom",
			"bathroom", "living room", "dining room", "office", "appliance", "washer", "dryer",
			"refrigerator", "dishwasher", "microwave", "oven", "stove", "vacuum", "tools", "hardware",
		},
		models.CategoryEntertainment: {
			// streaming
			"netflix", "hulu", "disney", "disney plus", "amazon prime", "prime video", "hbo", "hbo max",
			"showtime", "starz", "paramount", "peacock", "apple tv", "youtube", "youtube premium",
			"spotify", "apple music", "amazon music", "pandora", "tidal", "deezer", "soundcloud",
			// gaming
			"steam", "epic games", "playstation", "xbox", "nintendo", "switch", "ps5", "ps4", "xbox one",
			"gaming", "video game", "game", "fortnite", "minecraft", "call of duty", "fifa", "madden",
			"pokemon", "zelda", "mario", "sonic", "twitch", "discord", "roblox", "among us",
			// film
			"movie", "film", "cinema", "theater", "theatre", "amc", "regal", "cinemark", "imax",
			"ticket", "tickets", "matinee", "premiere", "screening", "box office", "fandango",
			// music and events
			"concert", "music", "band", "artist", "album", "song", "festival", "show", "performance",
			"venue", "arena", "stadium", "amphitheater", "ticketmaster", "stubhub", "vivid seats",
			// sport
			"gym", "fitness", "workout", "exercise", "yoga", "pilates", "crossfit", "zumba", "spin",
			"planet fitness", "la fitness", "lifetime", "equinox", "orange theory", "pure barre",
			"sports", "match", "tournament", "season", "playoffs", "championship",
			"golf", "tennis", "basketball", "football", "baseball", "soccer", "hockey", "swimming",
		},
		models.CategoryTechnology: {
			// brands
			"apple", "samsung", "google", "microsoft", "amazon", "facebook", "meta", "tesla",
			"sony", "lg", "panasonic", "sharp", "toshiba", "hp", "dell", "lenovo", "asus",
			"acer", "msi", "alienware", "razer", "corsair", "logitech", "nvidia", "amd", "intel",
			// devices
			"iphone", "ipad", "macbook", "imac", "mac", "android", "smartphone", "phone", "mobile",
			"tablet", "laptop", "computer", "desktop", "pc", "chromebook", "surface", "kindle",
			"echo", "alexa", "google home", "nest", "ring", "arlo", "fitbit", "apple watch",
			"smartwatch", "airpods", "headphones", "earbuds", "speaker", "bluetooth", "wireless",
			// electronics
			"monitor", "display", "screen", "tv", "television", "projector", "keyboard", "mouse",
			"webcam", "camera", "dslr", "gopro", "drone", "printer", "scanner", "router", "modem",
			"charger", "cable", "adapter", "battery", "powerbank", "case", "cover", "stand",
			// software
			"software", "app", "application", "program", "subscription", "license", "microsoft office",
			"adobe", "photoshop", "illustrator", "premiere", "after effects", "creative cloud",
			"antivirus", "norton", "mcafee", "kaspersky", "malwarebytes", "vpn", "nordvpn",
			"cloud", "storage", "backup", "dropbox", "google drive", "icloud", "onedrive",
		},
		models.CategoryBills: {
			// utilities
			"electric", "electricity", "power", "energy", "gas", "natural gas", "water", "sewer",
			"trash", "garbage", "recycling", "waste", "sanitation", "utility", "utilities",
			"pge", "con edison", "duke energy", "florida power", "southern company", "xcel energy",
			// telecom
			"internet", "wifi", "broadband", "cable", "satellite", "fiber", "dsl", "comcast",
			"xfinity", "verizon", "att", "spectrum", "cox", "optimum", "centurylink", "frontier",
			"phone", "cell phone", "mobile", "wireless", "landline", "home phone", "voip", "bill",
			// insurance
			"insurance", "premium", "policy", "coverage", "deductible", "claim", "auto insurance",
			"car insurance", "vehicle insurance", "health insurance", "medical insurance",
			"dental insurance", "vision insurance", "life insurance", "term life", "whole life",
			"home insurance", "homeowners", "renters insurance", "umbrella insurance",
			"geico", "state farm", "allstate", "progressive", "usaa", "farmers", "liberty mutual",
			// banking
			"bank", "banking", "checking", "savings", "account", "fee", "service fee", "maintenance fee",
			"overdraft", "atm fee", "wire transfer", "credit card", "debit card", "loan", "mortgage",
			"auto loan", "personal loan", "student loan", "refinance", "payment", "installment",
			"emi", "interest", "finance charge", "late fee", "penalty", "fine", "tax", "taxes",
			"irs", "property tax", "income tax", "sales tax", "rent",
		},
		models.CategoryHealthcare: {
			// facilities
			"hospital", "clinic", "medical center", "health center", "urgent care", "emergency room",
			"doctor", "physician", "specialist", "primary care", "family doctor", "internist",
			"dentist", "dental", "orthodontist", "endodontist", "periodontist", "oral surgeon",
			"eye doctor", "optometrist", "ophthalmologist", "dermatologist", "cardiologist",
			"neurologist", "orthopedic", "podiatrist", "chiropractor", "physical therapist",
			// services
			"checkup", "exam", "examination", "consultation", "visit", "appointment", "screening",
			"test", "lab", "blood test", "urine test", "xray", "x-ray", "mri", "ct scan", "ultrasound",
			"mammogram", "colonoscopy", "endoscopy", "biopsy", "surgery", "operation", "procedure",
			"treatment", "therapy", "rehabilitation", "physical therapy", "occupational therapy",
			// pharmacy
			"pharmacy", "drugstore", "cvs", "walgreens", "rite aid", "walmart pharmacy", "costco pharmacy",
			"prescription", "medication", "medicine", "drug", "pill", "tablet", "capsule", "syrup",
			"injection", "vaccine", "vaccination", "immunization", "flu shot", "covid vaccine",
			// wellness
			"medical", "health", "healthcare", "wellness", "nutrition", "vitamin", "supplement",
			"first aid", "bandage", "thermometer", "blood pressure", "glucose", "diabetic",
			"mental health", "counseling", "psychiatrist", "psychologist", "counselor",
		},
		models.CategoryTravel: {
			// air
			"airline", "flight", "airplane", "plane", "air travel", "aviation", "airport",
			"american airlines", "delta", "united", "southwest", "jetblue", "alaska", "frontier",
			"spirit", "allegiant", "hawaiian", "virgin atlantic", "british airways", "lufthansa",
			"emirates", "qatar airways", "singapore airlines", "cathay pacific", "air france",
			// lodging
			"hotel", "motel", "inn", "lodge", "resort", "suite", "room", "accommodation", "stay",
			"marriott", "hilton", "hyatt", "sheraton", "westin", "doubletree", "hampton inn",
			"holiday inn", "best western", "la quinta", "comfort inn", "fairfield inn", "residence inn",
			"airbnb", "vrbo", "booking", "expedia", "hotels.com", "priceline", "kayak", "trivago",
			// services
			"travel", "trip", "vacation", "holiday", "tour", "cruise", "excursion", "sightseeing",
			"itinerary", "package", "deal", "getaway", "weekend", "business trip", "conference",
			"convention", "visa", "passport", "customs", "immigration", "baggage", "luggage",
			// ground
			"rental car", "car rental", "hertz", "enterprise", "budget", "avis", "national", "alamo",
			"train", "amtrak", "bus", "greyhound", "megabus", "ferry", "cruise ship", "taxi",
			"shuttle", "transfer", "limousine", "uber", "lyft",
		},
		models.CategoryEducation: {
			// institutions
			"school", "college", "university", "academy", "institute", "education", "learning",
			"campus", "classroom", "lecture", "seminar", "workshop", "conference", "symposium",
			"elementary", "middle school", "high school", "undergraduate", "graduate", "phd",
			// expenses
			"tuition", "fees", "registration", "admission", "enrollment", "application", "transcript",
			"books", "textbook", "workbook", "manual", "supplies", "materials", "stationery",
			"notebook", "binder", "pen", "pencil", "paper", "calculator", "backpack", "laptop",
			// online
			"coursera", "udemy", "edx", "khan academy", "skillshare", "masterclass", "pluralsight",
			"linkedin learning", "codecademy", "duolingo", "rosetta stone", "online course",
			"certification", "certificate", "training", "bootcamp", "webinar", "tutorial", "course",
			// academic
			"tutoring", "tutor", "test prep", "sat", "act", "gre", "gmat", "lsat", "mcat",
			"exam", "quiz", "homework", "assignment", "project", "thesis", "dissertation",
			"research", "study", "library", "database", "journal", "publication",
		},
		models.CategoryBusiness: {
			// office
			"office", "supplies", "business", "corporate", "professional", "commercial",
			"staples", "office depot", "best buy business", "amazon business", "costco business",
			"paper", "printer", "ink", "toner", "cartridge", "pen", "pencil", "marker",
			"folder", "binder", "filing", "storage", "desk", "chair", "cabinet", "bookshelf",
			// services
			"consulting", "consultant", "advisor", "legal", "lawyer", "attorney", "law firm",
			"accounting", "accountant", "cpa", "bookkeeping", "payroll", "tax preparation",
			"financial", "insurance", "banking", "loan", "credit", "investment", "broker",
			// equipment
			"computer", "laptop", "desktop", "monitor", "scanner", "copier", "fax",
			"phone", "telephone", "conference", "video call", "zoom", "teams", "slack",
			"software", "license", "subscription", "saas", "cloud", "server", "hosting",
			// marketing
			"advertising", "marketing", "promotion", "campaign", "branding", "design", "graphic",
			"website", "domain", "seo", "social media", "facebook", "google ads",
			"linkedin", "twitter", "instagram", "youtube", "email marketing", "newsletter",
		},
		models.CategoryOther: {
			"miscellaneous", "misc", "other", "unknown", "unspecified", "various", "general",
			"cash", "atm", "withdrawal", "deposit", "transfer", "wire", "check", "money order",
			"fee", "charge", "service charge", "processing fee", "convenience fee", "surcharge",
			"refund", "return", "exchange", "adjustment", "correction", "dispute", "chargeback",
			"tip", "gratuity", "donation", "charity", "gift", "present", "contribution",
			"membership", "subscription", "renewal", "registration", "application", "processing",
		},
	}
}

func defaultPriorityKeywords() map[models.Category][]string {
	return map[models.Category][]string{
		models.CategoryTransport: {
			"bus", "auto", "taxi", "cab", "rickshaw", "uber", "lyft", "train", "metro", "flight",
			"gas", "petrol", "fuel", "diesel", "parking", "toll", "fare", "ride", "transport",
			"car", "bike", "scooter", "motorcycle", "vehicle", "drive", "driving",
		},
		models.CategoryTechnology: {
			"phone", "mobile", "smartphone", "iphone", "android", "laptop", "computer", "tablet",
			"ipad", "software", "app", "internet", "wifi", "data", "tech", "electronic",
		},
		models.CategoryHealthcare: {
			"doctor", "hospital", "medical", "medicine", "pharmacy", "health", "clinic",
			"dental", "dentist", "prescription", "tablet", "syrup", "injection",
		},
		models.CategoryEntertainment: {
			"movie", "cinema", "theater", "netflix", "spotify", "game", "gaming", "music",
			"concert", "show", "gym", "sport", "cricket", "football",
		},
		models.CategoryBills: {
			"electricity", "electric", "water", "gas", "internet", "phone", "mobile",
			"bill", "utility", "insurance", "rent", "emi", "loan",
		},
	}
}

func defaultStrongIndicators() map[models.Category][]string {
	return map[models.Category][]string{
		models.CategoryFood: {
			"chicken", "food", "restaurant", "grocery", "eat", "meal", "dining", "lunch", "dinner", "breakfast",
			"coffee", "tea", "pizza", "burger", "sandwich", "rice", "bread", "milk", "meat", "fish", "vegetable",
			"fruit", "snack", "drink", "juice", "water", "beer", "wine", "cafe", "kitchen", "cook", "cooking",
			"order", "delivery", "takeout", "buffet", "menu", "dish", "curry", "soup", "salad", "pasta",
		},
		models.CategoryTransport: {
			"gas", "fuel", "uber", "lyft", "taxi", "car", "bus", "train", "ride", "auto", "rickshaw", "metro",
			"subway", "transport", "travel", "drive", "driving", "parking", "toll", "petrol", "diesel",
			"vehicle", "bike", "bicycle", "motorcycle", "scooter", "flight", "plane", "airline", "airport",
			"station", "stop", "journey", "trip", "commute", "pickup", "drop", "fare", "ticket",
		},
		models.CategoryShopping: {
			"shop", "shopping", "store", "buy", "purchase", "amazon", "walmart", "target", "mall", "market",
			"clothes", "shirt", "pants", "shoes", "dress", "bag", "phone", "laptop", "book", "pen", "paper",
			"grocery", "supermarket", "retail", "sale", "discount", "offer", "deal", "cart", "checkout",
			"order", "online", "delivery", "item", "product", "goods", "merchandise", "clothing", "apparel",
		},
		models.CategoryEntertainment: {
			"movie", "theater", "cinema", "netflix", "spotify", "gym", "game", "gaming", "music", "concert",
			"show", "entertainment", "fun", "play", "sport", "cricket", "football", "tennis", "swimming",
			"party", "club", "bar", "pub", "dance", "festival", "event", "ticket", "subscription", "streaming",
			"youtube", "video", "tv", "television", "radio", "podcast", "book", "reading", "hobby",
		},
		models.CategoryTechnology: {
			"apple", "samsung", "computer", "phone", "iphone", "laptop", "tech", "software", "app", "internet",
			"wifi", "data", "mobile", "smartphone", "tablet", "ipad", "android", "windows", "mac", "google",
			"microsoft", "adobe", "subscription", "license", "cloud", "storage", "backup", "antivirus",
			"camera", "headphones", "speaker", "charger", "cable", "bluetooth", "electronic", "digital",
		},
		models.CategoryBills: {
			"bill", "electric", "electricity", "gas", "water", "internet", "phone", "insurance", "rent",
			"utility", "payment", "monthly", "recurring", "service", "maintenance", "repair", "cable",
			"broadband", "wifi", "landline", "mobile", "postpaid", "prepaid", "recharge", "top-up",
			"bank", "loan", "emi", "credit", "debit", "fee", "charge", "tax", "fine", "penalty",
		},
		models.CategoryHealthcare: {
			"doctor", "hospital", "medical", "pharmacy", "health", "dental", "medicine", "tablet", "syrup",
			"injection", "vaccine", "checkup", "consultation", "treatment", "therapy", "surgery", "test",
			"scan", "xray", "blood", "urine", "prescription", "drug", "clinic", "nursing", "ambulance",
			"emergency", "first-aid", "wellness", "fitness", "yoga", "meditation", "counseling",
		},
		models.CategoryTravel: {
			"hotel", "flight", "travel", "vacation", "trip", "airline", "booking", "ticket", "tour", "holiday",
			"resort", "accommodation", "stay", "room", "suite", "lodge", "guest", "check-in", "checkout",
			"luggage", "baggage", "passport", "visa", "customs", "immigration", "departure", "arrival",
			"journey", "destination", "sightseeing", "cruise", "safari", "adventure", "excursion",
		},
		models.CategoryEducation: {
			"school", "college", "university", "education", "course", "book", "study", "learning", "class",
			"teacher", "student", "tuition", "fees", "admission", "exam", "test", "assignment", "project",
			"homework", "notebook", "pen", "pencil", "stationery", "library", "research", "degree",
			"diploma", "certificate", "training", "workshop", "seminar", "lecture", "tutorial",
		},
		models.CategoryBusiness: {
			"office", "business", "professional", "consulting", "supplies", "meeting", "conference", "client",
			"customer", "project", "work", "job", "career", "salary", "bonus", "commission", "expense",
			"report", "presentation", "document", "file", "printer", "computer", "software", "license",
			"marketing", "advertising", "promotion", "brand", "company", "corporate", "enterprise",
		},
	}
}

func defaultSemanticPatterns() map[models.Category][]string {
	return map[models.Category][]string{
		models.CategoryFood: {
			`\b(restaurant|cafe|coffee|food|eat|dining|meal|lunch|dinner|breakfast)\b`,
			`\b(starbucks|mcdonalds|pizza|burger|sandwich|delivery|takeout)\b`,
			`\b(grocery|supermarket|market|walmart|target|costco).*food\b`,
			`\b(uber\s*eats|door\s*dash|grub\s*hub|postmates|seamless)\b`,
			`\b(chicken|beef|pork|fish|seafood|meat|vegetarian|vegan)\b`,
			`\b(italian|chinese|mexican|thai|indian|japanese|french|mediterranean)\b`,
		},
		models.CategoryTransport: {
			`\b(uber|lyft|taxi|cab|ride|rideshare|car\s*service)\b`,
			`\b(gas|fuel|gasoline|petrol|diesel|shell|bp|exxon|chevron)\b`,
			`\b(flight|airline|airplane|plane|airport|delta|united|american)\b`,
			`\b(bus|train|metro|subway|transit|public\s*transport)\b`,
			`\b(parking|toll|bridge|highway|car\s*wash|oil\s*change)\b`,
			`\b(repair|maintenance|mechanic|tire|brake|auto\s*service)\b`,
		},
		models.CategoryShopping: {
			`\b(amazon|ebay|walmart|target|costco|shopping|purchase|buy|order)\b`,
			`\b(clothes|clothing|shoes|fashion|dress|shirt|pants|jacket)\b`,
			`\b(electronics|phone|laptop|computer|tv|camera|headphones)\b`,
			`\b(furniture|home|decor|kitchen|bedroom|bathroom|appliance)\b`,
			`\b(jewelry|watch|bag|purse|wallet|accessories)\b`,
			`\b(makeup|cosmetics|beauty|skincare|perfume|cologne)\b`,
		},
		models.CategoryEntertainment: {
			`\b(netflix|spotify|gaming|game|movie|cinema|theater|concert)\b`,
			`\b(gym|fitness|yoga|pilates|workout|exercise|sports)\b`,
			`\b(subscription|streaming|music|entertainment|show|series)\b`,
			`\b(xbox|playstation|nintendo|steam|twitch|youtube)\b`,
			`\b(ticket|event|festival|performance|venue|arena)\b`,
			`\b(golf|tennis|basketball|football|baseball|soccer|hockey)\b`,
		},
		models.CategoryTechnology: {
			`\b(apple|samsung|google|microsoft|iphone|android|laptop|computer)\b`,
			`\b(software|app|tech|electronic|device|gadget|digital)\b`,
			`\b(camera|headphone|speaker|tablet|smartwatch|airpods)\b`,
			`\b(subscription|license|cloud|storage|backup|antivirus)\b`,
			`\b(monitor|keyboard|mouse|printer|router|charger|cable)\b`,
			`\b(adobe|microsoft\s*office|photoshop|zoom|teams|slack)\b`,
		},
		models.CategoryBills: {
			`\b(electric|electricity|gas|water|internet|phone|cable|utility)\b`,
			`\b(bill|payment|monthly|recurring|service|fee|charge)\b`,
			`\b(insurance|premium|policy|coverage|auto|health|home)\b`,
			`\b(bank|credit\s*card|loan|mortgage|rent|emi|installment)\b`,
			`\b(tax|taxes|irs|property\s*tax|income\s*tax|penalty)\b`,
			`\b(comcast|verizon|att|spectrum|cox|optimum|centurylink)\b`,
		},
		models.CategoryHealthcare: {
			`\b(doctor|hospital|medical|clinic|health|pharmacy|dentist)\b`,
			`\b(prescription|medication|medicine|drug|vaccine|shot)\b`,
			`\b(checkup|exam|test|xray|mri|ultrasound|surgery|treatment)\b`,
			`\b(cvs|walgreens|rite\s*aid|urgent\s*care|emergency)\b`,
			`\b(dental|vision|therapy|counseling|mental\s*health)\b`,
			`\b(specialist|cardiologist|dermatologist|orthopedic|neurologist)\b`,
		},
		models.CategoryTravel: {
			`\b(flight|hotel|travel|vacation|trip|cruise|airline|airport)\b`,
			`\b(marriott|hilton|hyatt|airbnb|booking|expedia|priceline)\b`,
			`\b(rental\s*car|car\s*rental|hertz|enterprise|budget|avis)\b`,
			`\b(train|bus|ferry|shuttle|transfer|transportation)\b`,
			`\b(resort|suite|accommodation|stay|check.*in|luggage)\b`,
			`\b(tour|excursion|sightseeing|package|itinerary|visa)\b`,
		},
		models.CategoryEducation: {
			`\b(school|college|university|education|tuition|course|class)\b`,
			`\b(books|textbook|supplies|materials|notebook|pen|pencil)\b`,
			`\b(coursera|udemy|online\s*course|certification|training)\b`,
			`\b(exam|test|quiz|homework|assignment|project|study)\b`,
			`\b(library|research|academic|degree|diploma|graduation)\b`,
			`\b(tutoring|tutor|sat|act|gre|gmat|lsat|mcat)\b`,
		},
		models.CategoryBusiness: {
			`\b(office|business|professional|corporate|commercial|work)\b`,
			`\b(supplies|equipment|furniture|desk|chair|computer|printer)\b`,
			`\b(consulting|legal|accounting|marketing|advertising|design)\b`,
			`\b(software|license|subscription|saas|cloud|hosting)\b`,
			`\b(meeting|conference|travel|expense|reimbursement)\b`,
			`\b(website|domain|seo|social\s*media|email\s*marketing)\b`,
		},
	}
}

func defaultContextPatterns() map[models.Category][]WeightedPattern {
	return map[models.Category][]WeightedPattern{
		models.CategoryFood: {
			{Pattern: `\b(eat|ate|food|meal|restaurant|cafe)\b`, Weight: 0.3},
			{Pattern: `\b(delivery|takeout|pickup)\b`, Weight: 0.25},
			{Pattern: `\b(breakfast|lunch|dinner|brunch|snack)\b`, Weight: 0.2},
		},
		models.CategoryTransport: {
			{Pattern: `\b(ride|trip|travel|transport)\b`, Weight: 0.3},
			{Pattern: `\b(airport|station|terminal)\b`, Weight: 0.25},
			{Pattern: `\b(fuel|gas|parking|toll)\b`, Weight: 0.2},
		},
		models.CategoryShopping: {
			{Pattern: `\b(buy|bought|purchase|order|shop)\b`, Weight: 0.3},
			{Pattern: `\b(store|mall|online|website)\b`, Weight: 0.25},
			{Pattern: `\b(sale|discount|deal|coupon)\b`, Weight: 0.2},
		},
		models.CategoryEntertainment: {
			{Pattern: `\b(watch|play|game|music|show)\b`, Weight: 0.3},
			{Pattern: `\b(ticket|event|concert|movie)\b`, Weight: 0.25},
			{Pattern: `\b(subscription|streaming|monthly)\b`, Weight: 0.2},
		},
	}
}

func defaultBrands() []BrandEntry {
	return []BrandEntry{
		{Token: "starbucks", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "mcdonalds", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "subway", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "pizza hut", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "dominos", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "kfc", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "taco bell", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "burger king", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "chipotle", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "dunkin", Category: models.CategoryFood, Confidence: 0.98},
		{Token: "whole foods", Category: models.CategoryFood, Confidence: 0.97},
		{Token: "trader joes", Category: models.CategoryFood, Confidence: 0.97},
		{Token: "uber eats", Category: models.CategoryFood, Confidence: 0.97},
		{Token: "doordash", Category: models.CategoryFood, Confidence: 0.97},
		{Token: "grubhub", Category: models.CategoryFood, Confidence: 0.97},

		{Token: "uber", Category: models.CategoryTransport, Confidence: 0.98},
		{Token: "lyft", Category: models.CategoryTransport, Confidence: 0.98},
		{Token: "shell", Category: models.CategoryTransport, Confidence: 0.96},
		{Token: "bp", Category: models.CategoryTransport, Confidence: 0.96},
		{Token: "exxon", Category: models.CategoryTransport, Confidence: 0.96},
		{Token: "chevron", Category: models.CategoryTransport, Confidence: 0.96},
		{Token: "delta", Category: models.CategoryTransport, Confidence: 0.95},
		{Token: "american airlines", Category: models.CategoryTransport, Confidence: 0.95},
		{Token: "united", Category: models.CategoryTransport, Confidence: 0.95},
		{Token: "southwest", Category: models.CategoryTransport, Confidence: 0.95},

		{Token: "amazon", Category: models.CategoryShopping, Confidence: 0.95},
		{Token: "walmart", Category: models.CategoryShopping, Confidence: 0.95},
		{Token: "target", Category: models.CategoryShopping, Confidence: 0.95},
		{Token: "costco", Category: models.CategoryShopping, Confidence: 0.95},
		{Token: "best buy", Category: models.CategoryShopping, Confidence: 0.94},
		{Token: "home depot", Category: models.CategoryShopping, Confidence: 0.94},
		{Token: "macys", Category: models.CategoryShopping, Confidence: 0.94},
		{Token: "nordstrom", Category: models.CategoryShopping, Confidence: 0.94},

		{Token: "netflix", Category: models.CategoryEntertainment, Confidence: 0.98},
		{Token: "spotify", Category: models.CategoryEntertainment, Confidence: 0.98},
		{Token: "hulu", Category: models.CategoryEntertainment, Confidence: 0.98},
		{Token: "disney", Category: models.CategoryEntertainment, Confidence: 0.98},
		{Token: "youtube", Category: models.CategoryEntertainment, Confidence: 0.97},
		{Token: "steam", Category: models.CategoryEntertainment, Confidence: 0.96},
		{Token: "xbox", Category: models.CategoryEntertainment, Confidence: 0.96},
		{Token: "playstation", Category: models.CategoryEntertainment, Confidence: 0.96},

		{Token: "apple", Category: models.CategoryTechnology, Confidence: 0.96},
		{Token: "samsung", Category: models.CategoryTechnology, Confidence: 0.96},
		{Token: "google", Category: models.CategoryTechnology, Confidence: 0.95},
		{Token: "microsoft", Category: models.CategoryTechnology, Confidence: 0.95},
		{Token: "sony", Category: models.CategoryTechnology, Confidence: 0.94},
		{Token: "lg", Category: models.CategoryTechnology, Confidence: 0.94},

		{Token: "cvs", Category: models.CategoryHealthcare, Confidence: 0.97},
		{Token: "walgreens", Category: models.CategoryHealthcare, Confidence: 0.97},
		{Token: "rite aid", Category: models.CategoryHealthcare, Confidence: 0.97},

		{Token: "marriott", Category: models.CategoryTravel, Confidence: 0.96},
		{Token: "hilton", Category: models.CategoryTravel, Confidence: 0.96},
		{Token: "hyatt", Category: models.CategoryTravel, Confidence: 0.96},
		{Token: "airbnb", Category: models.CategoryTravel, Confidence: 0.95},
		{Token: "expedia", Category: models.CategoryTravel, Confidence: 0.95},
		{Token: "booking", Category: models.CategoryTravel, Confidence: 0.95},
	}
}

func defaultAmountRanges() map[models.Category]AmountRange {
	return map[models.Category]AmountRange{
		models.CategoryFood:          {TypicalMin: 3, TypicalMax: 150, PeakMin: 8, PeakMax: 60, Boost: 0.15, Penalty: 0.08},
		models.CategoryTransport:     {TypicalMin: 5, TypicalMax: 500, PeakMin: 15, PeakMax: 200, Boost: 0.12, Penalty: 0.06},
		models.CategoryShopping:      {TypicalMin: 10, TypicalMax: 2000, PeakMin: 25, PeakMax: 500, Boost: 0.1, Penalty: 0.05},
		models.CategoryEntertainment: {TypicalMin: 5, TypicalMax: 300, PeakMin: 10, PeakMax: 100, Boost: 0.12, Penalty: 0.06},
		models.CategoryTechnology:    {TypicalMin: 50, TypicalMax: 5000, PeakMin: 200, PeakMax: 2000, Boost: 0.18, Penalty: 0.1},
		models.CategoryBills:         {TypicalMin: 25, TypicalMax: 1000, PeakMin: 50, PeakMax: 400, Boost: 0.15, Penalty: 0.08},
		models.CategoryHealthcare:    {TypicalMin: 20, TypicalMax: 2000, PeakMin: 50, PeakMax: 500, Boost: 0.12, Penalty: 0.06},
		models.CategoryTravel:        {TypicalMin: 100, TypicalMax: 5000, PeakMin: 300, PeakMax: 2000, Boost: 0.15, Penalty: 0.08},
		models.CategoryEducation:     {TypicalMin: 25, TypicalMax: 10000, PeakMin: 100, PeakMax: 2000, Boost: 0.12, Penalty: 0.06},
		models.CategoryBusiness:      {TypicalMin: 20, TypicalMax: 5000, PeakMin: 50, PeakMax: 1000, Boost: 0.1, Penalty: 0.05},
	}
}

func defaultTermFloors() []TermFloor {
	floor := func(c models.Category, min float64, terms ...string) []TermFloor {
		out := make([]TermFloor, 0, len(terms))
		for _, t := range terms {
			out = append(out, TermFloor{Term: t, Category: c, Floor: min})
		}
		return out
	}

	var floors []TermFloor
	floors = append(floors, floor(models.CategoryFood, 0.92, "chicken", "chicken curry")...)
	floors = append(floors, floor(models.CategoryFood, 0.88, "food", "coffee", "lunch", "dinner", "grocery")...)
	floors = append(floors, floor(models.CategoryTransport, 0.92,
		"bus", "bus fare", "bus ticket", "auto", "auto rickshaw", "autorickshaw", "rickshaw")...)
	floors = append(floors, floor(models.CategoryTransport, 0.90, "taxi", "cab", "train", "metro")...)
	floors = append(floors, floor(models.CategoryTransport, 0.88, "gas", "petrol", "fuel", "travel", "transport")...)
	floors = append(floors, floor(models.CategoryEntertainment, 0.88, "movie")...)
	floors = append(floors, floor(models.CategoryHealthcare, 0.88, "doctor", "medicine")...)
	floors = append(floors, floor(models.CategoryShopping, 0.88, "shopping")...)
	floors = append(floors, floor(models.CategoryTechnology, 0.85, "phone")...)
	floors = append(floors, floor(models.CategoryBills, 0.85, "internet", "electricity", "water")...)
	return floors
}

func defaultContextRules() []ContextRule {
	return []ContextRule{
		{
			Name:  "airport",
			Terms: []string{"airport"},
			Boosts: map[models.Category]float64{
				models.CategoryTravel: 0.25, models.CategoryFood: 0.15, models.CategoryTransport: 0.2,
			},
		},
		{
			Name:  "online",
			Terms: []string{"online", "website", "com"},
			Boosts: map[models.Category]float64{
				models.CategoryShopping: 0.2, models.CategoryEntertainment: 0.15, models.CategoryTechnology: 0.1,
			},
		},
		{
			Name:  "recurring",
			Terms: []string{"monthly", "subscription", "recurring"},
			Boosts: map[models.Category]float64{
				models.CategoryEntertainment: 0.2, models.CategoryBills: 0.25, models.CategoryTechnology: 0.15,
			},
		},
		{
			Name:   "large amount",
			Amount: &AmountCondition{Above: 500},
			Boosts: map[models.Category]float64{
				models.CategoryTechnology: 0.15, models.CategoryTravel: 0.12, models.CategoryShopping: 0.1,
			},
		},
		{
			Name:   "small amount",
			Amount: &AmountCondition{Above: 0, Below: 10},
			Boosts: map[models.Category]float64{
				models.CategoryFood: 0.2, models.CategoryTransport: 0.1,
			},
		},
	}
}
