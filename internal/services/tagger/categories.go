// File: internal/services/tagger/categories.go
package tagger

import (
	"regexp"
	"strings"
)

// CategoryGeneral is returned when nothing scores above zero.
const CategoryGeneral = "general"

const (
	filenameBonus = 1
	currencyBonus = 5
	contactBonus  = 5
)

type categoryRule struct {
	Name     string
	Weight   int
	Keywords []string
}

// categoryRules is a slice, not a map: scoring ties break toward the first
// rule declared here, and that order is part of the behavior.
var categoryRules = []categoryRule{
	{"hours", 3, []string{"hours", "timing", "timings", "open", "closed", "weekday", "weekend", "holiday"}},
	{"contact", 3, []string{"contact", "phone", "whatsapp", "email", "address", "reach", "call us"}},
	{"pricing", 3, []string{"price", "pricing", "cost", "fee", "fees", "rate", "charges", "discount"}},
	{"menu", 2, []string{"menu", "dish", "cuisine", "appetizer", "dessert", "beverage", "breakfast", "lunch", "dinner"}},
	{"services", 2, []string{"service", "services", "consultation", "repair", "maintenance", "installation"}},
	{"products", 2, []string{"product", "products", "catalog", "brand", "stock", "inventory"}},
	{"booking", 2, []string{"booking", "appointment", "reserve", "reservation", "schedule", "slot"}},
	{"delivery", 2, []string{"delivery", "shipping", "courier", "dispatch", "tracking"}},
	{"returns", 2, []string{"return", "refund", "exchange", "cancellation", "warranty"}},
	{"admissions", 2, []string{"admission", "admissions", "enroll", "enrollment", "eligibility", "application"}},
	{"courses", 2, []string{"course", "courses", "curriculum", "syllabus", "batch", "training"}},
	{"offers", 2, []string{"offer", "offers", "deal", "sale", "promo", "coupon"}},
	{"payment", 2, []string{"payment", "payments", "upi", "invoice", "billing", "installment"}},
	{"location", 2, []string{"location", "directions", "landmark", "parking", "branch"}},
	{"about", 1, []string{"about us", "history", "mission", "vision", "founded", "our story"}},
	{"faq", 1, []string{"faq", "frequently asked", "questions", "answers"}},
	{"policies", 1, []string{"policy", "policies", "terms", "conditions", "privacy"}},
	{"events", 1, []string{"event", "events", "workshop", "webinar", "seminar", "festival"}},
	{"staff", 1, []string{"staff", "doctor", "teacher", "trainer", "stylist", "technician"}},
	{"testimonials", 1, []string{"testimonial", "review", "reviews", "rating", "feedback"}},
}

var currencySymbols = []string{"₹", "$", "€", "£"}

var (
	phoneHint = regexp.MustCompile(`tel:|\+\d{7,}|\b\d{10}\b`)
	emailHint = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// Categorize classifies text into one of the fixed weighted categories.
// Per-keyword contribution is (occurrences in body + 1 if the keyword also
// appears in the filename) × category weight. Currency symbols add a fixed
// bonus to pricing; phone/email patterns add one to contact. The strictly
// highest score wins; zero everywhere falls back to "general".
func Categorize(text, filename string) string {
	body := strings.ToLower(text)
	fname := strings.ToLower(filename)

	best := CategoryGeneral
	bestScore := 0
	for _, rule := range categoryRules {
		score := 0
		for _, kw := range rule.Keywords {
			count := strings.Count(body, kw)
			bonus := 0
			if strings.Contains(fname, kw) {
				bonus = filenameBonus
			}
			if count > 0 || bonus > 0 {
				score += (count + bonus) * rule.Weight
			}
		}

		switch rule.Name {
		case "pricing":
			for _, symbol := range currencySymbols {
				if strings.Contains(body, symbol) {
					score += currencyBonus
					break
				}
			}
		case "contact":
			if phoneHint.MatchString(body) {
				score += contactBonus
			}
			if emailHint.MatchString(body) {
				score += contactBonus
			}
		}

		if score > bestScore {
			bestScore = score
			best = rule.Name
		}
	}
	return best
}
