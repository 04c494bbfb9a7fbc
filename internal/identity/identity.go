package identity

import (
	"math/rand"
	"sync"
	"time"
)

// Pool hands out rotating browser identity header sets to reduce
// fingerprinting across requests.
type Pool struct {
	userAgents []string
	mu         sync.Mutex
	rng        *rand.Rand
}

// NewPool returns a pool seeded with a fixed set of common desktop browsers.
func NewPool() *Pool {
	return &Pool{
		userAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
			"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.101 Safari/537.36",
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Headers returns one full identity header set with a pseudo-randomly
// selected user agent.
func (p *Pool) Headers() map[string]string {
	p.mu.Lock()
	ua := p.userAgents[p.rng.Intn(len(p.userAgents))]
	p.mu.Unlock()

	return map[string]string{
		"User-Agent":                ua,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Referer":                   "https://www.google.com/",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}
