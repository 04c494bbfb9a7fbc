package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMedicalProfession(t *testing.T) {
	require.True(t, IsMedicalProfession("doctor"))
	require.True(t, IsMedicalProfession("Doctor"))
	require.True(t, IsMedicalProfession("DOCTOR"))
	require.False(t, IsMedicalProfession("lawyer"))
	require.False(t, IsMedicalProfession(""))
}

func TestRecordHasIdentity(t *testing.T) {
	require.True(t, (&Record{Name: "Asha Rao"}).HasIdentity())
	require.True(t, (&Record{Email: "a@b.in"}).HasIdentity())
	require.True(t, (&Record{Phone: "+919876543210"}).HasIdentity())
	require.False(t, (&Record{LinkedIn: "https://linkedin.com/in/a"}).HasIdentity())
	require.False(t, (&Record{}).HasIdentity())
}

func TestBundleEmpty(t *testing.T) {
	require.True(t, (&Bundle{}).Empty())
	require.True(t, (&Bundle{Medical: &MedicalInfo{Qualification: "MBBS"}}).Empty())
	require.False(t, (&Bundle{Names: []string{"Asha Rao"}}).Empty())
	require.False(t, (&Bundle{Twitter: []string{"https://x.com/a"}}).Empty())
}
