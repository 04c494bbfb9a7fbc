// Package extract applies the pattern library to fetched page HTML and
// produces candidate lists of emails, phones, names and social links, plus
// profession-specific fields for medical pages. All lists have set
// semantics: deduplicated, order not significant.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/mcnijman/go-emailaddress"

	"contactscraper/internal/domain"
	"contactscraper/internal/patterns"
)

// Extractor pulls candidate contact fields out of raw page text.
type Extractor struct {
	profession string
	medical    bool
}

func New(profession string) *Extractor {
	return &Extractor{
		profession: profession,
		medical:    domain.IsMedicalProfession(profession),
	}
}

// Extract runs every sub-extractor over the page and returns the candidate
// bundle. Medical fields are populated only for the medical profession.
func (e *Extractor) Extract(html string) *domain.Bundle {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		doc = nil
	}

	b := &domain.Bundle{
		Emails:    e.emails(html),
		Phones:    e.phones(html),
		LinkedIn:  socialProfiles(patterns.LinkedIn, html),
		Instagram: socialProfiles(patterns.Instagram, html),
		Twitter:   socialProfiles(patterns.Twitter, html),
		Names:     e.names(html, doc),
	}
	if e.medical {
		b.Medical = extractMedical(html)
	}
	return b
}

// emails returns the filtered, lower-cased, deduplicated email candidates.
func (e *Extractor) emails(html string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, match := range patterns.Email.FindAllString(html, -1) {
		if len(match) < 5 {
			continue
		}
		lower := strings.ToLower(match)

		if hasGenericPrefix(lower) || hasDisposableDomain(lower) {
			continue
		}
		if _, err := emailaddress.Parse(lower); err != nil {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}

func hasGenericPrefix(email string) bool {
	for _, prefix := range patterns.GenericEmailPrefixes {
		if strings.HasPrefix(email, prefix) {
			return true
		}
	}
	return false
}

func hasDisposableDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return true
	}
	domainPart := email[at+1:]
	for _, disposable := range patterns.DisposableEmailDomains {
		if strings.Contains(domainPart, disposable) {
			return true
		}
	}
	return false
}

// phones unions the matches of all four phone patterns and keeps only
// candidates that normalize to a canonical form.
func (e *Extractor) phones(html string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, re := range patterns.Phones {
		for _, match := range re.FindAllString(html, -1) {
			phone, ok := NormalizePhone(match)
			if !ok {
				continue
			}
			if _, dup := seen[phone]; dup {
				continue
			}
			seen[phone] = struct{}{}
			out = append(out, phone)
		}
	}
	return out
}

func socialProfiles(re *regexp.Regexp, html string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, match := range re.FindAllString(html, -1) {
		if !strings.HasPrefix(match, "http") {
			match = "https://" + match
		}
		if _, dup := seen[match]; dup {
			continue
		}
		seen[match] = struct{}{}
		out = append(out, match)
	}
	return out
}

// names unions three strategies: the generic capitalized-words regex,
// heading elements that look like names, and (for medical pages) an
// honorific-anchored regex.
func (e *Extractor) names(html string, doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, match := range patterns.Name.FindAllString(html, -1) {
		name := strings.TrimSpace(match)
		if len(name) >= 8 && len(name) <= 40 {
			add(name)
		}
	}

	if doc != nil {
		doc.Find("h1, h2, h3, h4, h5").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) < 8 || len(text) > 40 {
				return
			}
			words := strings.Fields(text)
			if len(words) < 2 || len(words) > 5 {
				return
			}
			for _, w := range words {
				if !unicode.IsUpper([]rune(w)[0]) {
					return
				}
			}
			add(text)
		})
	}

	if e.medical {
		for _, m := range patterns.HonorificName.FindAllStringSubmatch(html, -1) {
			add("Dr. " + m[1])
		}
	}
	return out
}

// extractMedical pulls the profession-specific fields for medical pages.
// Unmatched fields stay empty; the persistence layer writes the sentinel.
func extractMedical(html string) *domain.MedicalInfo {
	info := &domain.MedicalInfo{}

	if quals := patterns.Qualification.FindAllString(html, -1); len(quals) > 0 {
		seen := make(map[string]struct{})
		var distinct []string
		for _, q := range quals {
			if _, dup := seen[q]; !dup {
				seen[q] = struct{}{}
				distinct = append(distinct, q)
			}
		}
		info.Qualification = strings.Join(distinct, ", ")
	}

	if m := patterns.Specialization.FindStringSubmatch(html); m != nil {
		info.Specialization = strings.TrimSpace(m[1])
	}
	if m := patterns.Designation.FindString(html); m != "" {
		info.Designation = strings.TrimSpace(m)
	}
	if m := patterns.Experience.FindStringSubmatch(html); m != nil {
		info.Experience = m[1] + " years"
	}

	if m := patterns.Address.FindStringSubmatch(html); m != nil {
		info.Address = strings.TrimSpace(m[1])
		info.ClinicHospital = clinicBeforeAddress(html, m[1])
	}
	return info
}

// clinicBeforeAddress treats the line immediately preceding the address
// occurrence as a clinic or hospital name when its length is plausible.
func clinicBeforeAddress(html, address string) string {
	lines := strings.Split(html, "\n")
	for i, line := range lines {
		if i > 0 && strings.Contains(line, address) {
			candidate := strings.TrimSpace(lines[i-1])
			if len(candidate) >= 3 && len(candidate) <= 50 {
				return candidate
			}
		}
	}
	return ""
}
