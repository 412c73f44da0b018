package goquery

import "github.com/fwojciec/siterank"

// stopWords are discarded by keyword tokenization.
var stopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"could", "should", "may", "might", "must", "shall", "can", "need",
	"this", "that", "these", "those", "i", "you", "he", "she", "it",
	"we", "they", "what", "which", "who", "when", "where", "why", "how",
	"all", "each", "every", "both", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "just", "also", "now", "here", "there",
	"then", "once", "any", "about", "into", "through", "during",
	"before", "after", "above", "below", "between", "under", "again",
	"further", "because", "if", "else", "until", "while", "our", "your",
)

// categoryIndicators lists, per business category, the terms whose presence
// in a page's signal text votes for that category. Terms are matched as
// substrings of the lower-cased text.
var categoryIndicators = map[siterank.BusinessCategory][]string{
	siterank.BusinessEcommerce: {
		"cart", "checkout", "buy", "shop", "store", "product", "price",
		"add to cart", "purchase", "order", "shipping", "payment",
		"catalog", "inventory", "sale", "discount", "coupon",
	},
	siterank.BusinessSaaS: {
		"saas", "software", "platform", "dashboard", "api", "integration",
		"subscription", "trial", "demo", "features", "pricing", "plans",
		"enterprise", "startup", "cloud", "automation", "workflow",
	},
	siterank.BusinessBlog: {
		"blog", "article", "post", "author", "published", "read more",
		"comments", "tags", "category", "archive", "recent posts",
	},
	siterank.BusinessPortfolio: {
		"portfolio", "projects", "work", "case study", "client",
		"designer", "developer", "freelance", "hire me", "about me",
	},
	siterank.BusinessService: {
		"service", "consulting", "solutions", "expertise", "professional",
		"team", "approach", "methodology", "process", "engagement",
		"migration", "assessment", "audit", "implementation",
	},
	siterank.BusinessAgency: {
		"agency", "creative", "marketing", "branding", "campaigns",
		"clients", "results", "strategy", "digital", "media",
	},
	siterank.BusinessLocalBusiness: {
		"location", "address", "hours", "visit us", "directions",
		"local", "near", "store hours", "call us", "contact",
	},
	siterank.BusinessRestaurant: {
		"menu", "restaurant", "dining", "reservation", "food",
		"cuisine", "chef", "table", "delivery", "takeout", "order online",
	},
	siterank.BusinessEducation: {
		"course", "learn", "student", "teacher", "education",
		"training", "curriculum", "enroll", "class", "lesson",
		"certification", "degree", "workshop",
	},
	siterank.BusinessHealthcare: {
		"health", "medical", "doctor", "patient", "clinic",
		"hospital", "treatment", "appointment", "care", "wellness",
		"diagnosis", "symptoms", "therapy",
	},
	siterank.BusinessRealEstate: {
		"property", "real estate", "home", "house", "apartment",
		"listing", "rent", "sale", "mortgage", "agent", "broker",
		"bedroom", "bathroom", "sqft",
	},
	siterank.BusinessTechnology: {
		"technology", "tech", "innovation", "engineering", "development",
		"infrastructure", "security", "data", "ai", "machine learning",
		"blockchain", "cloud computing", "devops",
	},
	siterank.BusinessNonProfit: {
		"nonprofit", "charity", "donate", "volunteer", "mission",
		"cause", "foundation", "community", "impact", "support",
	},
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
