// File: internal/services/contact/contact.go
package contact

import (
	"regexp"
	"strings"
)

// Sentinel markers wrapping the synthesized card. Retrieval scores on the
// start marker, so both must stay stable.
const (
	CardStart = "=== CONTACT_CARD ==="
	CardEnd   = "=== END_CONTACT_CARD ==="
)

// minPhoneDigits rejects short numeric runs (prices, years) that would
// otherwise be misdetected as phone numbers.
const minPhoneDigits = 10

var contactHeaders = []string{
	"CONTACT", "CONTACT US", "CONTACT & LOCATION", "CONTACT DETAILS",
	"CONTACT INFORMATION", "CONTACT INFO", "GET IN TOUCH", "REACH US",
}

// Hours headers are a distinct family, searched independently of the
// contact section.
var hoursHeaders = []string{
	"HOURS", "OPENING HOURS", "BUSINESS HOURS", "WORKING HOURS",
	"TIMINGS", "HOURS OF OPERATION", "OPEN HOURS",
}

// Ordered label patterns for phone numbers; combined forms first so
// "Phone/WhatsApp:" isn't half-consumed by the plain "Phone:" pattern.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*phone\s*/\s*whatsapp\s*[:\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*whatsapp\s*[:\-]\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*(?:phone|tel|telephone|mobile|call)\s*[:\-]\s*(.+)$`),
}

var (
	loosePhone   = regexp.MustCompile(`\+?\d[\d\s\-().]{8,}\d`)
	emailLabel   = regexp.MustCompile(`(?im)^\s*e-?mail\s*[:\-]\s*(\S+@\S+)`)
	looseEmail   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	addressLabel = regexp.MustCompile(`(?im)^\s*(?:address|location)\s*[:\-]\s*(.+)$`)
	websiteLabel = regexp.MustCompile(`(?im)^\s*(?:website|web\s?site|site|url)\s*[:\-]\s*(.+)$`)
	looseWebsite = regexp.MustCompile(`https?://[^\s,]+|www\.[^\s,]+`)
)

// Info holds the contact-like fields found in a document's text.
type Info struct {
	Phones  []string
	Email   string
	Address string
	Website string
	Hours   []string
}

// IsEmpty reports whether no field at all was found.
func (i *Info) IsEmpty() bool {
	return len(i.Phones) == 0 && i.Email == "" && i.Address == "" &&
		i.Website == "" && len(i.Hours) == 0
}

// ExtractInfo scans text for contact-like fields. The contact section is
// searched first; each field falls back to the whole text when the section
// yields nothing. Returns nil when no field at all was found.
func ExtractInfo(text string) *Info {
	lines := strings.Split(text, "\n")

	// Scope the primary search to the contact section when one exists.
	scope := text
	if start, end := findSection(lines, contactHeaders); start >= 0 {
		scope = strings.Join(lines[start:end], "\n")
	}

	info := &Info{
		Phones:  extractPhones(scope, text),
		Email:   firstCapture(emailLabel, scope, text),
		Address: firstCapture(addressLabel, scope, text),
		Website: firstCapture(websiteLabel, scope, text),
		Hours:   extractHours(lines),
	}
	if info.Email == "" {
		info.Email = firstMatch(looseEmail, scope, text)
	}
	if info.Website == "" {
		info.Website = firstMatch(looseWebsite, scope, text)
	}

	if info.IsEmpty() {
		return nil
	}
	return info
}

// AddContactCard prepends a synthesized card when any contact field is found.
// Prepended, not appended: chunking favors early text, so the card must land
// in the first chunk. No-op when nothing was found.
func AddContactCard(text string) string {
	info := ExtractInfo(text)
	if info == nil {
		return text
	}
	return BuildCard(info) + "\n\n" + text
}

// BuildCard renders the fixed-format sentinel-delimited card, emitting only
// the fields present.
func BuildCard(info *Info) string {
	var b strings.Builder
	b.WriteString(CardStart)
	b.WriteString("\n")
	if len(info.Phones) > 0 {
		b.WriteString("Phone: ")
		b.WriteString(strings.Join(info.Phones, ", "))
		b.WriteString("\n")
	}
	if info.Email != "" {
		b.WriteString("Email: " + info.Email + "\n")
	}
	if info.Address != "" {
		b.WriteString("Address: " + info.Address + "\n")
	}
	if info.Website != "" {
		b.WriteString("Website: " + info.Website + "\n")
	}
	if len(info.Hours) > 0 {
		b.WriteString("Hours:\n")
		for _, line := range info.Hours {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(CardEnd)
	return b.String()
}

// extractPhones tries the ordered label patterns against the section scope,
// then the loose digit-run regex against the scope and finally the whole
// text. Candidates are normalized and deduplicated, and must carry at least
// minPhoneDigits digits to survive.
func extractPhones(scope, text string) []string {
	var candidates []string
	for _, pattern := range phonePatterns {
		for _, m := range pattern.FindAllStringSubmatch(scope, -1) {
			candidates = append(candidates, m[1])
		}
	}
	if len(candidates) == 0 {
		candidates = loosePhone.FindAllString(scope, -1)
	}
	if len(candidates) == 0 {
		candidates = loosePhone.FindAllString(text, -1)
	}

	var phones []string
	seen := make(map[string]bool)
	for _, raw := range candidates {
		normalized := NormalizePhone(raw)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		phones = append(phones, normalized)
	}
	return phones
}

// NormalizePhone strips everything but digits and a leading plus, collapses
// a leading "00" into "+", and rejects numbers with fewer than
// minPhoneDigits digits.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var digits strings.Builder
	hasPlus := strings.HasPrefix(raw, "+")
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if strings.HasPrefix(number, "00") {
		hasPlus = true
		number = strings.TrimLeft(number, "0")
	}
	if len(number) < minPhoneDigits {
		return ""
	}
	if hasPlus {
		return "+" + number
	}
	return number
}

// extractHours finds an hours-family section anywhere in the text and
// captures its lines until the next blank line or ALL-CAPS header.
func extractHours(lines []string) []string {
	start, end := findSection(lines, hoursHeaders)
	if start < 0 {
		return nil
	}
	var hours []string
	for _, line := range lines[start:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			hours = append(hours, trimmed)
		}
	}
	return hours
}

// firstCapture returns the first submatch of pattern in scope, falling back
// to the whole text.
func firstCapture(pattern *regexp.Regexp, scope, text string) string {
	if m := pattern.FindStringSubmatch(scope); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := pattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// firstMatch returns the first whole match of pattern in scope, falling back
// to the whole text.
func firstMatch(pattern *regexp.Regexp, scope, text string) string {
	if m := pattern.FindString(scope); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(pattern.FindString(text))
}
