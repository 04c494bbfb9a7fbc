package scraper

import "contactscraper/internal/domain"

// maxRecordsPerPage bounds the noise from pages with many loosely-related
// matches.
const maxRecordsPerPage = 5

// assemble zips the candidate lists of one page into contact records by
// index. The i-th name is paired with the i-th email and phone. This is an
// approximation: nothing guarantees that the i-th entries of unrelated
// lists co-refer on a page. Records with no name, email or phone are
// dropped.
func assemble(b *domain.Bundle, profession, city, state, pageDomain, sourceURL string) []domain.Record {
	if b.Empty() {
		return nil
	}
	n := maxLen(b.Names, b.Emails, b.Phones, b.LinkedIn, b.Instagram, b.Twitter)
	if n > maxRecordsPerPage {
		n = maxRecordsPerPage
	}

	var records []domain.Record
	for i := 0; i < n; i++ {
		rec := domain.Record{
			Name:       at(b.Names, i),
			Email:      at(b.Emails, i),
			Phone:      at(b.Phones, i),
			LinkedIn:   at(b.LinkedIn, i),
			Instagram:  at(b.Instagram, i),
			Twitter:    at(b.Twitter, i),
			Profession: profession,
			City:       city,
			State:      state,
			Domain:     pageDomain,
			SourceURL:  sourceURL,
			Medical:    b.Medical,
		}
		if rec.HasIdentity() {
			records = append(records, rec)
		}
	}
	return records
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}

func maxLen(lists ...[]string) int {
	n := 0
	for _, l := range lists {
		if len(l) > n {
			n = len(l)
		}
	}
	return n
}
