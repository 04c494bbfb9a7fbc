package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "bare ten digit mobile", raw: "9876543210", want: "+919876543210", ok: true},
		{name: "country code without plus", raw: "919876543210", want: "+919876543210", ok: true},
		{name: "already canonical", raw: "+919876543210", want: "+919876543210", ok: true},
		{name: "spaced with plus", raw: "+91 98765 43210", want: "+919876543210", ok: true},
		{name: "hyphenated", raw: "987-654-3210", want: "+919876543210", ok: true},
		{name: "leading zero", raw: "09876543210", want: "+919876543210", ok: true},
		{name: "too short", raw: "98765", ok: false},
		{name: "ten digits with landline prefix", raw: "1234567890", ok: false},
		{name: "exponent marker rejected", raw: "9.19876543e+11", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw)
			require.Equal(t, tt.ok, ok, "NormalizePhone(%q)", tt.raw)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
