package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanQueries(t *testing.T) {
	tests := []struct {
		name       string
		profession string
		wantLen    int
	}{
		{name: "generic profession", profession: "lawyer", wantLen: 6},
		{name: "doctor lowercase", profession: "doctor", wantLen: 10},
		{name: "doctor mixed case", profession: "Doctor", wantLen: 10},
		{name: "doctor uppercase", profession: "DOCTOR", wantLen: 10},
		{name: "empty profession", profession: "", wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanQueries("Karnataka", "Bangalore", tt.profession)
			require.Len(t, got, tt.wantLen)
		})
	}
}

func TestPlanQueriesDeterministic(t *testing.T) {
	first := PlanQueries("Karnataka", "Bangalore", "Doctor")
	second := PlanQueries("Karnataka", "Bangalore", "Doctor")
	require.Equal(t, first, second)
}

func TestPlanQueriesOrder(t *testing.T) {
	got := PlanQueries("Karnataka", "Bangalore", "Doctor")

	// Broader generic phrasings come first, in a fixed order.
	require.Equal(t, "Doctor in Bangalore Karnataka India contact", got[0])
	require.Equal(t, "Doctor Bangalore Karnataka email phone", got[1])

	// The four medical phrasings are appended after the six generic ones.
	require.Equal(t, "medical practitioners in Bangalore Karnataka contact details", got[6])
	require.Equal(t, "clinics in Bangalore Karnataka doctor information", got[9])
}
