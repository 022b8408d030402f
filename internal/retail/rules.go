package retail

import "strings"

// ItemRule maps keyword hits on an item name/title to a ledger category and
// subcategory. Rules are ordered, specific before general, first match wins.
type ItemRule struct {
	LedgerCategory string
	Subcategory    string
	Keywords       []string
}

// walmartRules categorize Walmart order items by product name. Walmart
// exports carry no category column, so keywords are the only signal.
var walmartRules = []ItemRule{
	{"Transport", "Fuel", []string{"gasoline", "unleaded", "fuel pump"}},

	// Kitchen appliances before food: "ninja" etc. would false-match there.
	{"Shopping", "Appliances", []string{"ninja", "air fryer", "instant pot", "coffee maker", "toaster", "microwave", "blender", "mixer", "slow cooker", "rice cooker", "waffle maker", "juicer", "stand mixer", "keurig", "nespresso", "air purifier", "humidifier", "dehumidifier", "space heater", "fan "}},

	{"Food", "Grocery", []string{"food", "snack", "chip", "cracker", "juice", "water", "coffee", "tea", "soda", "candy", "chocolate", "granola", "cereal", "soup", "sauce", "condiment", "spice", "seasoning", "pasta", "rice", "bread", "butter", "cheese", "milk", "egg", "cookie", "muffin", "croissant", "bagel", "chicken breast", "beef", "pork fish", "shrimp", "meat", "produce", "vegetable", "fruit", "frozen meal", "flour", "sugar", "salt", "pepper", "oil", "vinegar", "dressing", "mayo", "mustard", "ketchup", "honey", "jam", "jelly", "peanut butter", "pretzel", "popcorn", "tortilla", "salsa", "hummus", "yogurt", "cream", "protein bar", "energy bar", "gatorade", "vitamin water", "kombucha", "olipop", "broth", "stock", "canned", "bean", "oat", "banana", "blueberr", "avocado", "orange", "lime", "onion", "mushroom", "broccoli", "salad kit", "marketside", "prima della", "marshmallow", "aquaphor lip", "fresh hass", "fresh navel", "fresh whole", "fresh organic", "fresh banana", "fresh yellow", "applegate", "chicken tenders"}},

	{"Healthcare", "Health & Beauty", []string{"vitamin", "supplement", "medicine", "pain relief", "tylenol", "advil", "ibuprofen", "allergy", "cold", "flu", "bandage", "first aid", "shampoo", "conditioner", "body wash", "lotion", "moisturizer", "sunscreen", "deodorant", "toothbrush", "toothpaste", "floss", "mouthwash", "razor", "shave", "makeup", "mascara", "lipstick", "foundation", "skincare", "face wash", "toner", "serum", "nail polish", "perfume", "cologne", "feminine", "tampon", "pad", "pregnancy", "eye drop", "systane", "dry eye", "tiger balm", "pain relieving patch", "lip repair", "lip balm", "lip stick", "wound", "ointment", "antiseptic"}},

	{"Healthcare", "Health & Beauty", []string{"condom", "trojan", "durex", "lubricated"}},

	{"Shopping", "Kids Clothing", []string{"girls ", "boys ", "justice ", "leotard", "ballet", "winnie the pooh girls", "winnie the pooh boys", "kids shirt", "children's shirt", "toddler shirt", "youth shirt", "kids pants", "girls pants", "boys pants", "girls dress", "little girls", "little boys"}},

	{"Shopping", "Kids & Baby", []string{"baby doll", "rocking crib", "baby toy", "toddler toy", "infant toy", "nursery", "diaper", "baby wipe", "formula", "sippy", "pacifier", "stroller", "baby monitor", "baby gate", "playpen", "bassinet", "highchair", "bouncer", "swing", "baby carrier"}},

	{"Shopping", "Toys & Games", []string{"toy ", "lego ", "action figure", "board game", "card game", "stuffed animal", "plush", "fidget", "slime", "craft kit", "coloring book", "disney stitch", "bubble machine", "musical toy", "play set"}},

	{"Entertainment", "Celebrations", []string{"party", "birthday", "balloon", "party banner", "confetti", "streamer", "gift wrap", "tissue paper", "gift bag", "party bow", "party ribbon", "party cup", "party plate", "tablecloth", "pinata", "halloween", "christmas", "holiday decor", "seasonal decor", "easter", "valentine", "capybara gift", "snow roll decoration", "gift card holder"}},

	{"Shopping", "Pet Supplies", []string{"dog food", "cat food", "pet food", "dog treat", "cat treat", "puppy", "kitten", "bird food", "fish food", "hamster", "pet bed", "dog bed", "cat bed", "leash", "collar", "pet toy", "cat litter", "pet cage", "pet bowl", "pet grooming", "flea", "heartworm", "aquarium"}},

	{"Shopping", "Garden", []string{"garden", "plant seed", "soil", "garden pot", "planter", "fertilizer", "garden hose", "garden tool", "lawn", "grass seed", "outdoor furniture", "patio", "grill", "bbq", "camping", "garden glove"}},

	{"Education", "Supplies", []string{"pen ", "pencil", "marker", "highlighter", "notebook", "loose leaf", "paper ream", "binder", "folder", "stapler", "tape dispenser", "scissors", "glue stick", "eraser", "ruler", "backpack", "poster board", "pen+gear", "monofilament cord", "jewelry making", "stamp pad", "ink pad", "index card", "flash card"}},

	{"Shopping", "Electronics", []string{"phone case", "phone charger", "charging cable", "usb cable", "hdmi", "aa battery", "aaa battery", "d battery", "bluetooth", "headphone", "earphone", "earbud", "speaker", "webcam", "keyboard", "mouse pad", "tablet case", "remote control", "smart plug", "power bank", "surge protector", "extension cord", "led strip", "ring light"}},

	{"Housing", "Household", []string{"cleaning spray", "all-purpose cleaner", "disinfectant", "bleach", "toilet bowl", "bathroom cleaner", "glass cleaner", "floor cleaner", "mop", "broom", "dustpan", "vacuum bag", "trash bag", "garbage bag", "ziploc", "storage bag", "sandwich bag", "plastic wrap", "aluminum foil", "paper towel", "toilet paper", "tissue box", "facial tissue", "napkin", "sponge", "scrub pad", "laundry detergent", "fabric softener", "dryer sheet", "dish soap", "hand soap", "hand sanitizer", "air freshener", "febreze", "scented candle", "storage container", "food container", "tupperware"}},

	{"Shopping", "Home Decor", []string{"throw blanket", "fleece throw", "pillow cover", "decorative pillow", "curtain", "window curtain", "rug", "area rug", "wall art", "picture frame", "mirror", "lamp", "night light", "wax melt", "scented wax", "vase", "plant pot", "shelf", "floating shelf", "hooks", "towel bar", "shower curtain", "bath mat", "scallop flange", "home decor collection", "floral arrangement", "artificial flower"}},

	{"Shopping", "Clothing", []string{"shirt", "pants", "shorts", "dress", "skirt", "jacket", "coat", "hoodie", "sweater", "sock", "underwear", "bra ", "shoe", "sandal", "boot", "hat ", "beanie", "scarf", "glove", "belt", "legging", "jeans", "denim", "flannel shirt", "half slip", "reebok", "women's shirt", "men's shirt", "apparel", "george men", "vanity fair", "activewear", "athletic wear", "sports bra", "compression", "swimsuit", "pajama", "sleepwear", "robe"}},

	// Produce often just says "Fresh X": generic grocery catchall last.
	{"Food", "Grocery", []string{"fresh ", "organic ", "cage-free", "free-range", "wild-caught", "grass-fed"}},
}

// amazonCategoryMap maps Amazon's ALL_CAPS category codes to ledger
// categories. Checked before title keywords: fast and reliable when present.
var amazonCategoryMap = map[string]struct{ LedgerCategory, Subcategory string }{
	"ABIS_BOOK":        {"Entertainment", "Books"},
	"ABIS_MUSIC":       {"Entertainment", "Music"},
	"ABIS_VIDEO":       {"Entertainment", "Video/Movies"},
	"ABIS_VIDEO_GAMES": {"Entertainment", "Video Games"},
	"VIDEO_GAMES":      {"Entertainment", "Video Games"},
	"SOFTWARE":         {"Entertainment", "Software"},
	"Audible":          {"Entertainment", "Audiobooks"},

	"ELECTRONICS": {"Shopping", "Electronics"},
	"COMPUTERS":   {"Shopping", "Electronics"},

	"CLOTHING": {"Shopping", "Clothing"},
	"SHOES":    {"Shopping", "Clothing"},
	"LUGGAGE":  {"Shopping", "Clothing"},
	"WATCHES":  {"Shopping", "Clothing"},

	"HOME":             {"Shopping", "Home & Decor"},
	"HOME_IMPROVEMENT": {"Housing", "Home Improvement"},
	"KITCHEN":          {"Shopping", "Kitchen"},
	"TOOLS":            {"Housing", "Home Improvement"},

	"BEAUTY":               {"Healthcare", "Health & Beauty"},
	"HEALTH_PERSONAL_CARE": {"Healthcare", "Health & Beauty"},

	"GROCERY": {"Food", "Grocery"},

	"BABY":           {"Shopping", "Kids & Baby"},
	"TOYS_AND_GAMES": {"Shopping", "Toys & Games"},

	"AUTOMOTIVE":      {"Transport", "Auto Parts"},
	"SPORTS":          {"Healthcare", "Sports & Fitness"},
	"OFFICE_PRODUCTS": {"Education", "Office Supplies"},
	"PET_SUPPLIES":    {"Shopping", "Pet Supplies"},
}

// amazonTitleRules is the fallback for items whose category code is missing
// or unmapped.
var amazonTitleRules = []ItemRule{
	{"Entertainment", "Books", []string{"book", "novel", "guide", "handbook", "textbook", "workbook", "journal ", "diary", "coloring book", "activity book", "puzzle book"}},
	{"Entertainment", "Video Games", []string{"video game", "nintendo", "playstation", "xbox", "gaming", "steam"}},
	{"Entertainment", "Streaming/Sub", []string{"subscription", "prime", "audible", "kindle", "echo", "alexa", "fire tv", "fire tablet"}},
	{"Shopping", "Electronics", []string{"cable", "charger", "usb", "hdmi", "battery", "batteries", "bluetooth", "speaker", "headphone", "earphone", "earbud", "keyboard", "mouse", "monitor", "laptop", "tablet", "phone case", "smart plug", "power bank", "ring light", "webcam", "printer", "ink cartridge", "router", "wifi", "surge protector", "extension cord", "remote", "led strip", "security camera"}},
	{"Food", "Grocery", []string{"food", "snack", "coffee", "tea", "supplement", "protein", "vitamin", "grocery", "candy", "chocolate", "chips", "crackers", "drink", "juice", "water bottle", "protein bar", "energy bar", "gummy", "multivitamin"}},
	{"Healthcare", "Health & Beauty", []string{"shampoo", "conditioner", "lotion", "moisturizer", "sunscreen", "vitamin", "supplement", "bandage", "first aid", "razor", "skincare", "toothpaste", "toothbrush", "deodorant", "face wash", "serum", "hair care", "nail", "mascara", "eyeliner", "foundation", "perfume", "cologne", "eye drop", "ibuprofen", "tylenol", "advil"}},
	{"Shopping", "Clothing", []string{"shirt", "pants", "dress", "shorts", "jacket", "hoodie", "shoes", "sneakers", "boots", "sandals", "socks", "underwear", "bra", "leggings", "jeans", "coat", "sweater", "hat ", "beanie", "gloves", "scarf"}},
	{"Shopping", "Kids & Baby", []string{"baby", "infant", "toddler", "kids ", "children", "diaper", "wipe", "formula", "stroller", "car seat", "baby monitor"}},
	{"Shopping", "Toys & Games", []string{"lego", "toy ", "toys ", "action figure", "doll", "board game", "card game", "puzzle", "playset", "stuffed", "plush"}},
	{"Shopping", "Kitchen", []string{"cookware", "pan", "pot ", "knife", "cutting board", "spatula", "whisk", "bowl", "plate", "cup ", "mug", "storage container", "food container", "coffee maker", "air fryer", "instant pot", "blender", "toaster", "kitchen"}},
	{"Shopping", "Home & Decor", []string{"pillow", "blanket", "throw", "curtain", "rug", "lamp", "candle", "picture frame", "wall art", "mirror", "shower curtain", "bath mat", "towel", "bedding", "sheet set", "duvet", "comforter", "mattress", "furniture", "shelf", "organizer", "storage bin", "drawer"}},
	{"Housing", "Home Improvement", []string{"drill", "hammer", "screwdriver", "tool set", "paint", "caulk", "tape measure", "level ", "power tool", "ladder", "plumbing", "electrical", "light bulb", "outlet", "switch", "insulation", "weather strip"}},
	{"Shopping", "Pet Supplies", []string{"dog food", "cat food", "pet food", "dog treat", "cat treat", "dog toy", "cat toy", "leash", "collar", "cat litter", "pet bed", "aquarium", "bird food", "fish food"}},
	{"Education", "Office Supplies", []string{"pen ", "pencil", "marker", "notebook", "folder", "binder", "stapler", "tape ", "scissors", "printer paper", "sticky note", "planner", "calendar", "whiteboard", "desk"}},
	{"Transport", "Auto Parts", []string{"car ", "auto ", "tire", "motor oil", "wiper", "windshield", "floor mat", "car seat", "car charger", "dash cam", "jumper cable"}},
	{"Shopping", "Sports & Fitness", []string{"yoga", "dumbbell", "resistance band", "workout", "exercise", "gym", "running", "bicycle", "camping", "hiking", "fishing", "hunting", "golf", "tennis", "basketball", "football", "soccer"}},
}

// matchItemRules scans ordered rules and returns the first whose keyword
// appears in the lower-cased name.
func matchItemRules(lowerName string, rules []ItemRule) (ItemRule, bool) {
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lowerName, kw) {
				return r, true
			}
		}
	}
	return ItemRule{}, false
}
