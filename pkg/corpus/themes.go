package corpus

// Built-in word lists. Order is fixed: generation indexes into these slices,
// so reordering words changes every seeded output.
var builtin = map[string][]string{
	"lorem": {
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
		"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
		"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
		"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
		"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
		"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "eu",
		"fugiat", "nulla", "pariatur", "excepteur", "sint", "occaecat",
		"cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
		"deserunt", "mollit", "anim", "id", "est", "laborum",
	},

	"bacon": {
		"bacon", "pork", "belly", "ribeye", "chuck", "brisket", "loin",
		"tenderloin", "shank", "shoulder", "jowl", "ham", "hock", "sausage",
		"bresaola", "pancetta", "meatball", "meatloaf", "salami", "prosciutto",
		"turducken", "drumstick", "sirloin", "flank", "rump", "spare", "ribs",
		"kielbasa", "chicken", "turkey", "beef", "jerky", "andouille",
		"porchetta", "capicola", "frankfurter", "hamburger", "landjaeger",
		"biltong", "pastrami", "corned", "venison", "tongue", "strip", "steak",
		"fatback", "leberkas", "cupim", "picanha", "alcatra", "swine",
		"boudin", "burgdoggen", "filet", "mignon", "shankle", "tail",
	},

	"hipster": {
		"artisan", "aesthetic", "authentic", "banjo", "bespoke", "bicycle",
		"biodiesel", "bitters", "brooklyn", "brunch", "bushwick", "cardigan",
		"chambray", "chia", "cliche", "cornhole", "craft", "cronut", "denim",
		"distillery", "dreamcatcher", "ethical", "fixie", "flannel", "forage",
		"freegan", "gastropub", "gentrify", "heirloom", "hoodie", "humblebrag",
		"irony", "kale", "kinfolk", "kombucha", "letterpress", "locavore",
		"lomo", "lumbersexual", "mixtape", "mustache", "narwhal", "normcore",
		"organic", "paleo", "pickled", "pitchfork", "polaroid", "quinoa",
		"retro", "selvage", "shoreditch", "skateboard", "sriracha",
		"succulents", "sustainable", "tattooed", "tofu", "tote", "typewriter",
		"umami", "unicorn", "vegan", "vinyl", "wayfarers", "yoga",
	},

	"corporate": {
		"agile", "alignment", "bandwidth", "benchmark", "brainstorm",
		"cadence", "capacity", "cloud", "convergence", "core", "deliverable",
		"dialogue", "disrupt", "ecosystem", "empower", "engagement",
		"enterprise", "framework", "granular", "growth", "holistic", "ideate",
		"impact", "incentivize", "innovation", "leverage", "metrics",
		"milestone", "mindshare", "offline", "onboarding", "optics",
		"optimize", "paradigm", "pipeline", "pivot", "proactive", "quarter",
		"roadmap", "robust", "scalable", "scope", "stakeholder", "strategic",
		"streamline", "sustainable", "synergy", "takeaway", "touchpoint",
		"traction", "transformation", "vertical", "visibility", "workflow",
		"workshop", "upskill", "baseline", "turnkey", "champion",
	},

	"tech": {
		"algorithm", "api", "backend", "bandwidth", "binary", "blockchain",
		"bootstrap", "buffer", "byte", "cache", "cloud", "cluster",
		"codebase", "compiler", "container", "database", "debug", "deploy",
		"devops", "encryption", "endpoint", "firewall", "firmware",
		"framework", "frontend", "function", "git", "hash", "index",
		"instance", "interface", "kernel", "kubernetes", "lambda", "latency",
		"library", "microservice", "middleware", "module", "namespace",
		"network", "node", "packet", "parser", "payload", "pipeline",
		"protocol", "proxy", "query", "queue", "refactor", "registry",
		"repository", "runtime", "schema", "script", "server", "serverless",
		"shell", "stack", "syntax", "terminal", "thread", "throughput",
		"token", "webhook",
	},

	"pirate": {
		"ahoy", "anchor", "avast", "aye", "barnacle", "bilge", "blimey",
		"booty", "bounty", "broadside", "buccaneer", "cannon", "captain",
		"cargo", "chest", "compass", "crew", "cutlass", "deck", "doubloon",
		"galleon", "gangplank", "grog", "harbor", "hearties", "helm", "hook",
		"island", "jolly", "keelhaul", "kraken", "landlubber", "lookout",
		"loot", "mast", "matey", "mutiny", "parley", "parrot", "pegleg",
		"pirate", "plank", "plunder", "privateer", "quarterdeck", "rigging",
		"rum", "sail", "scallywag", "schooner", "scurvy", "seadog", "shanty",
		"ship", "shipmate", "skull", "spyglass", "squall", "starboard",
		"swab", "swashbuckler", "tide", "treasure", "vessel", "voyage",
		"yardarm",
	},
}
