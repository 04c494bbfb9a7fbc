// Package patterns holds the fixed set of regular expressions and blocklists
// used to pull contact information out of raw page text. It is pure data plus
// matching helpers; nothing here carries state.
package patterns

import "regexp"

// Email matches standard email syntax.
var Email = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Phone patterns. All four run over the page text and their matches are
// unioned; normalization happens downstream.
var (
	PhoneLoose     = regexp.MustCompile(`(?:\+?91[-\s]*)?(?:0?)?[6-9][0-9\s\-]{8,11}`)
	PhoneStrict    = regexp.MustCompile(`(?:\+?91)?[-\s]*[6-9][0-9]{9}`)
	PhoneHyphen334 = regexp.MustCompile(`[0-9]{3}[-\s][0-9]{3}[-\s][0-9]{4}`)
	PhoneHyphen55  = regexp.MustCompile(`[0-9]{5}[-\s][0-9]{5}`)
)

// Phones lists the phone patterns in the order they are applied.
var Phones = []*regexp.Regexp{PhoneLoose, PhoneStrict, PhoneHyphen334, PhoneHyphen55}

// Social profile URLs, with or without scheme.
var (
	LinkedIn  = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/(?:in|company)/[a-zA-Z0-9_-]+`)
	Instagram = regexp.MustCompile(`(?:https?://)?(?:www\.)?instagram\.com/[a-zA-Z0-9_.]+`)
	Twitter   = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:twitter|x)\.com/[a-zA-Z0-9_]+`)
)

// Name matches capitalized multi-word person names.
var Name = regexp.MustCompile(`[A-Z][a-z]+(?:\s[A-Z][a-z]+){1,3}`)

// HonorificName anchors on a medical honorific; the first capture group is
// the bare name.
var HonorificName = regexp.MustCompile(`Dr\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`)

// Profession-specific patterns for medical practitioners.
var (
	Designation    = regexp.MustCompile(`(?:Dr\.|Prof\.|Doctor|Professor|MD|MBBS|MS|MDS|DM|DNB|MCh)[,\s]+[A-Z][a-zA-Z\s.]+`)
	Specialization = regexp.MustCompile(`(?:Specialist|Speciality|Specialization)[\s:]+([A-Za-z\s&]+)`)
	Qualification  = regexp.MustCompile(`(?:MBBS|MD|MS|DNB|DM|MCh|BDS|MDS|DO|DCH|DTCD|FRCS|MRCP)(?:\([A-Za-z]+\))?`)
	Experience     = regexp.MustCompile(`(?i)([0-9]+)\+?\s+years\s+(?:of\s+)?experience`)
	Address        = regexp.MustCompile(`(?i)(?:Address|Location|Clinic)[\s:]+([A-Za-z0-9\s,\-#.()]+)(?:[\n.,]|Phone)`)
)

// DisposableEmailDomains are throwaway or placeholder address providers.
// An email whose domain contains any of these is dropped.
var DisposableEmailDomains = []string{
	"mailinator.com", "yopmail.com", "10minutemail.com", "guerrillamail.com",
	"tempmail.com", "example.com", "test.com",
}

// GenericEmailPrefixes mark addresses that are almost never a person.
var GenericEmailPrefixes = []string{"test", "example", "user", "admin", "info@"}
