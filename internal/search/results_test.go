package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverFirstSelectorWins(t *testing.T) {
	// Both the result-block selector and the generic external-anchor
	// fallback would match here; only the first must be used.
	html := `<html><body>
		<div class="yuRUbf"><a href="https://clinic.example.in/team">Team</a></div>
		<a href="https://unrelated.example.com/ad">Ad</a>
	</body></html>`

	p := NewResultParser("google.com")
	got := p.Discover(html)
	require.Equal(t, []string{"https://clinic.example.in/team"}, got)
}

func TestDiscoverExcludesEngineDomain(t *testing.T) {
	html := `<html><body>
		<div class="yuRUbf"><a href="https://www.google.com/maps">Maps</a></div>
		<a href="https://support.google.com/help">Help</a>
	</body></html>`

	p := NewResultParser("google.com")
	require.Empty(t, p.Discover(html))
}

func TestDiscoverUnwrapsRedirectLinks(t *testing.T) {
	html := `<html><body>
		<a href="/url?q=https://doctors.example.in/dr-rao&sa=U&ved=xyz">Result</a>
		<a href="/url?q=https://www.google.com/policies&sa=U">Policies</a>
	</body></html>`

	p := NewResultParser("google.com")
	got := p.Discover(html)
	require.Equal(t, []string{"https://doctors.example.in/dr-rao"}, got)
}

func TestDiscoverDeduplicates(t *testing.T) {
	html := `<html><body>
		<div class="yuRUbf"><a href="https://clinic.example.in/">Clinic</a></div>
		<div class="yuRUbf"><a href="https://clinic.example.in/">Clinic again</a></div>
	</body></html>`

	p := NewResultParser("google.com")
	require.Equal(t, []string{"https://clinic.example.in/"}, p.Discover(html))
}

func TestDiscoverEmptyIsNormal(t *testing.T) {
	p := NewResultParser("google.com")
	require.Empty(t, p.Discover(""))
	require.Empty(t, p.Discover("<html><body><p>no links here</p></body></html>"))
}
