package scoring

// Word lists used by the sentiment scorer. Multi-word entries are joined
// with hyphens to match the tokenizer, which keeps hyphenated words whole.
var (
	positiveWords = toSet(
		"amazing", "awesome", "best", "brilliant", "excellent", "exceptional",
		"fantastic", "great", "incredible", "outstanding", "perfect", "remarkable",
		"stunning", "superb", "wonderful", "beautiful", "elegant", "impressive",
		"innovative", "professional", "quality", "reliable", "successful", "trusted",
		"valuable", "premium", "exclusive", "leading", "proven", "guaranteed",
		"certified", "award-winning", "top-rated", "highly-rated", "recommended",
		"popular", "favorite", "loved", "easy", "simple", "fast", "quick", "instant",
		"free", "save", "discount", "affordable", "efficient", "effective",
		"powerful", "advanced", "modern", "cutting-edge", "revolutionary",
	)

	negativeWords = toSet(
		"bad", "terrible", "awful", "horrible", "poor", "worst", "disappointing",
		"frustrating", "annoying", "difficult", "complicated", "confusing",
		"expensive", "overpriced", "slow", "broken", "failed", "error", "problem",
		"issue", "bug", "crash", "spam", "scam", "fake", "cheap", "low-quality",
		"unreliable", "risky", "dangerous", "harmful", "boring", "ugly", "outdated",
	)

	powerWords = toSet(
		// urgency
		"now", "today", "instant", "immediately", "hurry", "limited", "deadline",
		"last-chance", "dont-miss", "act-now", "urgent",
		// exclusivity
		"exclusive", "premium", "vip", "members-only", "insider", "secret",
		"limited-edition", "rare", "unique", "special",
		// trust
		"guaranteed", "proven", "certified", "official", "authentic", "verified",
		"trusted", "secure", "safe", "protected", "backed",
		// value
		"free", "bonus", "save", "discount", "deal", "bargain", "value", "worth",
		"affordable", "budget-friendly",
		// results
		"results", "success", "achieve", "transform", "improve", "boost", "increase",
		"maximize", "optimize", "accelerate",
	)

	emotionalTriggers = toSet(
		"dont-miss", "limited-time", "exclusive", "last-chance", "ending-soon",
		"discover", "reveal", "secret", "hidden", "surprising", "unexpected",
		"little-known", "insider",
		"proven", "guaranteed", "backed", "certified", "official", "trusted",
		"dream", "imagine", "achieve", "unlock", "transform", "revolutionize",
		"popular", "trending", "best-selling", "top-rated", "award-winning",
		"recommended", "loved",
	)
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
