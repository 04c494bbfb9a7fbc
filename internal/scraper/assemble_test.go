package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"contactscraper/internal/domain"
)

func TestAssembleBalancesUnequalLists(t *testing.T) {
	b := &domain.Bundle{
		Names:  []string{"Asha Rao", "Priya Sharma", "Ravi Kumar"},
		Emails: []string{"asha@clinic.in"},
	}

	records := assemble(b, "Doctor", "Bangalore", "Karnataka", "clinic.in", "https://clinic.in/team")
	require.Len(t, records, 3)

	// The single email attaches only to the first record.
	require.Equal(t, "asha@clinic.in", records[0].Email)
	require.Empty(t, records[1].Email)
	require.Empty(t, records[2].Email)

	for i, name := range []string{"Asha Rao", "Priya Sharma", "Ravi Kumar"} {
		require.Equal(t, name, records[i].Name)
		require.Empty(t, records[i].Phone)
		require.Equal(t, "clinic.in", records[i].Domain)
		require.Equal(t, "https://clinic.in/team", records[i].SourceURL)
	}
}

func TestAssembleEmptyBundle(t *testing.T) {
	records := assemble(&domain.Bundle{}, "Doctor", "Bangalore", "Karnataka", "x.in", "https://x.in")
	require.Empty(t, records)
}

func TestAssembleCapsRecordsPerPage(t *testing.T) {
	b := &domain.Bundle{
		Names: []string{"Aaaa Bbbb", "Cccc Dddd", "Eeee Ffff", "Gggg Hhhh", "Iiii Jjjj", "Kkkk Llll", "Mmmm Nnnn"},
	}

	records := assemble(b, "lawyer", "Bangalore", "Karnataka", "x.in", "https://x.in")
	require.Len(t, records, maxRecordsPerPage)
}

func TestAssembleDropsRecordsWithoutIdentity(t *testing.T) {
	// Only social links at index 1 and beyond: those records carry no
	// name, email or phone and are discarded.
	b := &domain.Bundle{
		Names:    []string{"Asha Rao"},
		LinkedIn: []string{"https://linkedin.com/in/a", "https://linkedin.com/in/b"},
	}

	records := assemble(b, "lawyer", "Bangalore", "Karnataka", "x.in", "https://x.in")
	require.Len(t, records, 1)
	require.Equal(t, "Asha Rao", records[0].Name)
}
