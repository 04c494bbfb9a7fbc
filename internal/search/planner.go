package search

import (
	"fmt"

	"contactscraper/internal/domain"
)

// PlanQueries produces the ordered query sequence for a location/profession
// triple. The same inputs always yield the same sequence; broader phrasings
// come before narrower ones, and callers process them in order.
func PlanQueries(state, city, profession string) []string {
	queries := []string{
		fmt.Sprintf("%s in %s %s India contact", profession, city, state),
		fmt.Sprintf("%s %s %s email phone", profession, city, state),
		fmt.Sprintf("top %s in %s %s contact information", profession, city, state),
		fmt.Sprintf("%s %s %s directory", city, state, profession),
		fmt.Sprintf("%s association members %s %s", profession, city, state),
		fmt.Sprintf("contact details of %s in %s %s", profession, city, state),
	}

	if domain.IsMedicalProfession(profession) {
		queries = append(queries,
			fmt.Sprintf("medical practitioners in %s %s contact details", city, state),
			fmt.Sprintf("specialist doctors in %s %s", city, state),
			fmt.Sprintf("hospitals in %s %s doctors contact", city, state),
			fmt.Sprintf("clinics in %s %s doctor information", city, state),
		)
	}

	return queries
}
