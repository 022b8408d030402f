package categorize

// MerchantEntry maps a lower-cased description substring to a category.
// Entries are ordered: when several substrings could match one description,
// the earliest entry wins.
type MerchantEntry struct {
	Substring string
	Category  string
}

// KeywordRule is one ordered keyword group tagged with a category.
type KeywordRule struct {
	Category string
	Keywords []string
}

// Ruleset is the immutable configuration the engine runs against. Build one
// at startup (DefaultRuleset or from config) and inject it; the engine never
// mutates it.
type Ruleset struct {
	// Exact merchant substrings, checked before any keyword rule.
	MerchantMap []MerchantEntry
	// Income keyword groups, evaluated only for positive amounts.
	IncomeRules []KeywordRule
	// Positive-amount descriptions that look like income but are internal
	// transfers; matched before income rules.
	SavingsTransferKeywords []string
	SavingsTransferCategory string
	// Expense keyword groups, evaluated last.
	ExpenseRules []KeywordRule
	// Category IDs that count as income, used to derive IsIncome.
	IncomeCategoryIDs []string
	// Assigned when nothing matches.
	DefaultCategory string
}

// DefaultRuleset returns the built-in rule tables, derived from real
// transaction history.
func DefaultRuleset() Ruleset {
	return Ruleset{
		MerchantMap:             defaultMerchantMap,
		IncomeRules:             defaultIncomeRules,
		SavingsTransferKeywords: defaultSavingsTransferKeywords,
		SavingsTransferCategory: "Savings Transfer",
		ExpenseRules:            defaultExpenseRules,
		IncomeCategoryIDs:       []string{"W2 Payroll", "Side Income", "Transfer Received", "Interest/Dividends", "Income"},
		DefaultCategory:         "Other",
	}
}

var defaultMerchantMap = []MerchantEntry{
	// Coffee / Tea
	{"nespresso usa", "Coffee / Tea"},
	{"tea be honest", "Coffee / Tea"},
	{"buena matcha", "Coffee / Tea"},
	{"dutch bros", "Coffee / Tea"},
	{"koffi", "Coffee / Tea"},
	// Landscape
	{"cortez landscape", "Landscape"},
	// Utilities
	{"nexgen air conditioning", "Utilities"},
	{"scgc", "Utilities"},
	{"so cal edison", "Utilities"},
	{"coachella valley water", "Utilities"},
	{"coachella valley billpay", "Utilities"},
	// Food, local merchants
	{"aldi ", "Food"},
	{"staterbros", "Food"},
	{"alkobar quick stop", "Food"},
	{"otori japanese", "Food"},
	{"pier 88", "Food"},
	{"rubios", "Food"},
	{"baskin", "Food"},
	{"nayax vending", "Food"},
	{"hamachi cathedral", "Food"},
	{"el pollo loco", "Food"},
	{"habit cathedral", "Food"},
	{"beach house yogurt", "Food"},
	{"brandini toffee", "Food"},
	{"thrive market", "Food"},
	{"thrivemarke", "Food"},
	{"p.f. chang", "Food"},
	{"pf chang", "Food"},
	{"wm supercenter", "Food"},
	{"longhorn stk", "Food"},
	{"da andrea", "Food"},
	{"chick-fil-a", "Food"},
	{"in-n-out", "Food"},
	// Entertainment
	{"cinemark", "Entertainment"},
	{"spo cacsports", "Entertainment"},
	{"palm spring lanes", "Entertainment"},
	{"desertcrossing", "Entertainment"},
	{"tiqets", "Entertainment"},
	{"nintendo", "Entertainment"},
	{"big league dreams", "Entertainment"},
	// Shopping
	{"homegoods", "Shopping"},
	{"hobby-lobby", "Shopping"},
	{"hobby lobby", "Shopping"},
	{"ulta ", "Shopping"},
	{"sephora", "Shopping"},
	{"anthropologie", "Shopping"},
	{"thursday boot", "Shopping"},
	{"pypl payin4", "Shopping"},
	{"sheinusserv", "Shopping"},
	{"oldnavy.com", "Shopping"},
	{"children's place", "Shopping"},
	{"world market", "Shopping"},
	{"kiehls", "Shopping"},
	{"kiehl's", "Shopping"},
	{"www.boxlunchgives", "Shopping"},
	{"etsy ", "Shopping"},
	{"marshalls", "Shopping"},
	{"teamfanshop", "Shopping"},
	{"untuckit", "Shopping"},
	{"mathis home", "Shopping"},
	{"calvin klein", "Shopping"},
	{"daiso", "Shopping"},
	{"sp *casely", "Shopping"},
	{"sp+aff brighton", "Shopping"},
	{"sp+aff mattel", "Shopping"},
	// Transport
	{"tmna subscription", "Transport"},
	{"mohica towing", "Transport"},
	{"the toll roads", "Transport"},
	// Giving
	{"tithe.ly", "Giving"},
	{"reveal churc", "Giving"},
	{"thegardenfellowship", "Giving"},
	{"nbs*king's", "Giving"},
	{"99pledg", "Giving"},
	// CC Payment
	{"payment thank you", "CC Payment"},
	{"returned payment", "CC Payment"},
	{"automatic payment", "CC Payment"},
	{"target card srvc", "CC Payment"},
	{"target card payment", "CC Payment"},
	{"target card services", "CC Payment"},
	{"discover e-payment", "CC Payment"},
	{"wf credit card", "CC Payment"},
	{"chase credit card", "CC Payment"},
	{"citi autopay", "CC Payment"},
	// Side Income
	{"atm cash deposit", "Side Income"},
}

var defaultIncomeRules = []KeywordRule{
	{Category: "W2 Payroll", Keywords: []string{
		"payroll", "direct deposit", "kings sch", "best western", "1-hr service", "1-hr serv",
		"ach credit payroll", "salary", "wage", "dir dep",
	}},
	{Category: "Interest/Dividends", Keywords: []string{
		"interest paid", "interest earned", "dividend", "rewards credit",
	}},
	{Category: "Transfer Received", Keywords: []string{
		"zelle money received", "paypal from", "venmo from",
	}},
	{Category: "Side Income", Keywords: []string{
		"check deposit", "mobile deposit", "cash deposit",
	}},
}

// Positive-amount descriptions that are internal transfers, not income.
var defaultSavingsTransferKeywords = []string{
	"deposit from 360", "withdrawal from 360", "from 360 performance",
	"car charger investment", "property tax", "final yard payment",
	"deposit from capital one savings", "transfer from savings",
	"zelle money received from alexa", // self-transfer
}

var defaultExpenseRules = []KeywordRule{
	{Category: "Housing", Keywords: []string{
		"newrez", "shellpoint", "mortgage", "coachella valley billpay", "le campanile col",
		"socalgas", "scgc", "so cal edison", "sce ", "edison co", "pg&e", "water bill", "sewer",
		"trash", "waste", "rent", "hoa ", "home insurance", "renters",
	}},
	{Category: "Transport", Keywords: []string{
		"toyota ach", "car payment", "auto loan", "shell", "chevron", "bp ", "exxon", "mobil",
		"arco", "circle k", "wawa", "speedway", "fuel", "gas station", "ca dmv", "dmv",
		"uber", "lyft", "parking", "toll", "autozone", "jiffy lube", "firestone", "goodyear",
		"mohica towing", "towing", "airline", "southwest air", "delta", "united air", "american air",
	}},
	{Category: "Food", Keywords: []string{
		"mcdonald", "starbucks", "cardenas", "doordash", "ubereats", "grubhub", "pizza",
		"koffi", "castaneda", "vienna donut", "bakery", "deli", "firehouse", "taco bell",
		"del taco", "chipotle", "panera", "subway", "chick-fil", "in-n-out", "jack in the box",
		"sonic", "applebee", "olive garden", "ihop", "denny", "waffle house", "wendys",
		"burger king", "five guys", "shake shack", "panda", "da andrea", "restaurant",
		"dining", "cafe ", "coffee", "costco", "trader joe", "sprouts farmers", "safeway",
		"kroger", "whole foods", "vons", "ralphs", "albertson", "food 4 less", "smart final",
		"grocery", "groceries",
	}},
	{Category: "Healthcare", Keywords: []string{
		"fit in 42", "kp scal", "kaiser", "doctor", "hospital", "pharmacy", "cvs", "walgreens",
		"rite aid", "dental", "vision", "optometrist", "medical", "urgent care", "clinic",
		"labcorp", "therapist", "counseling", "chiropractor", "physical therapy",
	}},
	{Category: "Shopping", Keywords: []string{
		"amazon", "walmart", "wal-mart", "target", "best buy", "apple store", "apple.com",
		"nordstrom", "macy", "gap", "old navy", "h&m", "zara", "forever 21", "urban outfitter",
		"marshalls", "tj maxx", "ross dress", "five below", "michaels", "hobby lobby",
		"home depot", "lowes", "ikea", "wayfair", "ebay", "etsy", "chewy", "petco", "petsmart",
		"calvin klein", "columbia", "estee lauder", "untuckit", "teamfanshop", "mathis home",
	}},
	{Category: "Entertainment", Keywords: []string{
		"netflix", "spotify", "hulu", "disney+", "hbo", "max", "peacock", "paramount",
		"apple tv", "youtube premium", "amazon prime", "gaming", "steam", "playstation",
		"xbox", "nintendo", "movie", "theater", "amc", "regal", "concert", "ticketmaster",
		"tiqets", "desertcrossing", "wf*desert",
	}},
	{Category: "Phone/Internet", Keywords: []string{
		"verizon", "at&t", "t-mobile", "spectrum mobile", "cricket", "metro pcs",
	}},
	{Category: "Insurance", Keywords: []string{
		"drive ins", "ins prem", "insurance prem", "geico", "state farm", "allstate", "progressive",
	}},
	{Category: "Education", Keywords: []string{
		"scholarshare", "kings school", "le campanile", "king's schools facts",
	}},
	{Category: "Giving", Keywords: []string{
		"tithe.ly", "reveal churc", "church", "charity", "donation",
	}},
	{Category: "Savings Transfer", Keywords: []string{
		"360 performance savings", "withdrawal to 360", "transfer to savings",
	}},
	{Category: "CC Payment", Keywords: []string{
		"wf credit card auto pay", "chase credit crd", "discover e-payment", "citi card online",
		"target card srvc", "applecard gsbank", "online transfer ref", "payment - thank you",
		"automatic payment", "internet payment - thank you", "directpay full balance",
	}},
}
