package domain

import "strings"

// medicalTrigger is the profession that unlocks the specialization-specific
// queries, extraction fields and output columns.
const medicalTrigger = "doctor"

// IsMedicalProfession reports whether profession matches the medical
// trigger, case-insensitively.
func IsMedicalProfession(profession string) bool {
	return strings.EqualFold(profession, medicalTrigger)
}

// Record is one assembled contact row: identity and contact fields plus
// provenance for where they were found. Absent fields are empty strings;
// the persistence layer converts them to its sentinel on write.
type Record struct {
	Name      string
	Email     string
	Phone     string
	LinkedIn  string
	Instagram string
	Twitter   string

	Profession string
	City       string
	State      string
	Domain     string
	SourceURL  string

	Medical *MedicalInfo
}

// HasIdentity reports whether the record carries at least one of the three
// fields that make it worth keeping.
func (r *Record) HasIdentity() bool {
	return r.Name != "" || r.Email != "" || r.Phone != ""
}

// MedicalInfo holds the profession-specific fields extracted for medical
// practitioners.
type MedicalInfo struct {
	Designation    string
	Qualification  string
	Specialization string
	ClinicHospital string
	Address        string
	Experience     string
}

// Bundle is the raw candidate lists extracted from a single page, prior to
// record assembly. List order within each list is not significant.
type Bundle struct {
	Names     []string
	Emails    []string
	Phones    []string
	LinkedIn  []string
	Instagram []string
	Twitter   []string
	Medical   *MedicalInfo
}

// Empty reports whether the bundle yielded no candidates at all.
func (b *Bundle) Empty() bool {
	return len(b.Names) == 0 && len(b.Emails) == 0 && len(b.Phones) == 0 &&
		len(b.LinkedIn) == 0 && len(b.Instagram) == 0 && len(b.Twitter) == 0
}

// ScrapeResult is the outcome of scraping one directly supplied URL.
type ScrapeResult struct {
	Success bool
	Records int
	Err     error
}
