// Package scraper owns the run-scoped state of one extraction session and
// the orchestration that drives planner, fetcher, parser and extractor in
// sequence. A session is single-threaded and exclusively owned by its run;
// only the counters are safe to read from another goroutine.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/domain"
	"contactscraper/internal/extract"
	"contactscraper/internal/fetcher"
	"contactscraper/internal/monitoring"
	"contactscraper/internal/search"
	"contactscraper/internal/storage"
)

// Session is the run-scoped state of one scraping run: target triple,
// visited-URL guard, accumulated records and progress counters.
type Session struct {
	cfg       *config.Config
	fetcher   *fetcher.Client
	parser    *search.ResultParser
	extractor *extract.Extractor
	store     *storage.Store
	metrics   *monitoring.Metrics
	logger    *zap.Logger

	state      string
	city       string
	profession string
	outputPath string

	// visited is owned by the run goroutine. The mutex guards only the
	// counters and the accumulator, which the API daemon polls.
	visited map[string]struct{}

	mu             sync.Mutex
	contacts       []domain.Record
	searchAttempts int
	fetchSuccesses int
}

// Stats is a read-only progress snapshot for callers reporting progress.
type Stats struct {
	SearchAttempts int `json:"search_attempts"`
	FetchSuccesses int `json:"fetch_successes"`
	Contacts       int `json:"contacts"`
}

// New constructs a session for the given target triple. An empty outputPath
// defaults to <state>_<city>_<profession>_contacts.csv inside the configured
// output directory.
func New(cfg *config.Config, m *monitoring.Metrics, logger *zap.Logger, state, city, profession, outputPath string) *Session {
	if outputPath == "" {
		name := fmt.Sprintf("%s_%s_%s_contacts.csv", state, city, profession)
		outputPath = filepath.Join(cfg.OutputDir, name)
	}
	return &Session{
		cfg:        cfg,
		fetcher:    fetcher.NewClient(cfg, m, logger),
		parser:     search.NewResultParser(cfg.EngineDomain),
		extractor:  extract.New(profession),
		store:      storage.NewStore(logger),
		metrics:    m,
		logger:     logger,
		state:      state,
		city:       city,
		profession: profession,
		outputPath: outputPath,
		visited:    make(map[string]struct{}),
	}
}

// PlanQueries returns the ordered query sequence for this session's target.
func (s *Session) PlanQueries() []string {
	return search.PlanQueries(s.state, s.city, s.profession)
}

// FetchResultsPage fetches one search-result page for query, starting at
// the given result offset.
func (s *Session) FetchResultsPage(ctx context.Context, query string, start int) (string, error) {
	u := fmt.Sprintf("%s?q=%s&start=%d", s.cfg.SearchBase, url.QueryEscape(query), start)

	s.mu.Lock()
	s.searchAttempts++
	s.mu.Unlock()

	html, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.fetchSuccesses++
	s.mu.Unlock()
	return html, nil
}

// DiscoverURLs extracts candidate result URLs from search-result HTML.
func (s *Session) DiscoverURLs(html string) []string {
	urls := s.parser.Discover(html)
	s.metrics.PagesParsed.Inc()
	return urls
}

// ExtractFromPage visits pageURL, extracts its candidate bundle and appends
// the assembled records to the session accumulator. A URL already visited
// in this run is skipped without a fetch and yields a nil bundle.
func (s *Session) ExtractFromPage(ctx context.Context, pageURL string) (*domain.Bundle, error) {
	if _, dup := s.visited[pageURL]; dup {
		return nil, nil
	}
	s.visited[pageURL] = struct{}{}

	s.logger.Info("visiting", zap.String("url", pageURL))
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.fetchSuccesses++
	s.mu.Unlock()

	bundle := s.extractor.Extract(html)
	records := assemble(bundle, s.profession, s.city, s.state, domainName(pageURL), pageURL)

	s.mu.Lock()
	s.contacts = append(s.contacts, records...)
	s.mu.Unlock()
	s.metrics.ContactsTotal.Add(float64(len(records)))

	return bundle, nil
}

// ScrapeSingleURL extracts contact records directly from one supplied URL,
// bypassing search. A missing scheme defaults to https.
func (s *Session) ScrapeSingleURL(ctx context.Context, rawURL string) domain.ScrapeResult {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	before := s.Stats().Contacts
	if _, err := s.ExtractFromPage(ctx, rawURL); err != nil {
		s.metrics.IncErrors("fetch_failed")
		return domain.ScrapeResult{Success: false, Err: err}
	}
	return domain.ScrapeResult{Success: true, Records: s.Stats().Contacts - before}
}

// Run executes the full scrape and always attempts to persist whatever has
// accumulated, even when the scrape aborts or the context is canceled.
// It returns the number of contacts found.
func (s *Session) Run(ctx context.Context) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run aborted: %v", r)
		}
		if perr := s.Persist(); perr != nil {
			s.metrics.IncErrors("persist_failed")
			if err == nil {
				err = perr
			}
		}
		n = s.Stats().Contacts
	}()

	err = s.scrape(ctx)
	return n, err
}

func (s *Session) scrape(ctx context.Context) error {
	maxPages := s.cfg.MaxPages
	if maxPages <= 0 || maxPages > s.cfg.HardPageCap {
		maxPages = s.cfg.HardPageCap
	}

	pagesProcessed, urlsFound := 0, 0

	for _, query := range s.PlanQueries() {
		s.logger.Info("processing query", zap.String("query", query))

		emptyPages := 0
		for page := 0; page < maxPages && emptyPages < s.cfg.MaxEmptyPages; page++ {
			if ctx.Err() != nil {
				s.logSummary(pagesProcessed, urlsFound)
				return ctx.Err()
			}

			html, err := s.FetchResultsPage(ctx, query, page*10)
			if err != nil {
				// The fetcher already backed off; advance to the next
				// page rather than re-issuing the same request.
				emptyPages++
				continue
			}

			urls := s.DiscoverURLs(html)
			if len(urls) == 0 {
				s.logger.Info("no result URLs on page",
					zap.String("query", query), zap.Int("page", page+1))
				emptyPages++
				continue
			}

			emptyPages = 0
			pagesProcessed++
			urlsFound += len(urls)

			limit := s.cfg.URLsPerPage
			if limit > len(urls) {
				limit = len(urls)
			}
			for _, u := range urls[:limit] {
				if ctx.Err() != nil {
					s.logSummary(pagesProcessed, urlsFound)
					return ctx.Err()
				}
				if _, err := s.ExtractFromPage(ctx, u); err != nil {
					s.metrics.IncErrors("fetch_failed")
				}
				min, max := s.cfg.VisitDelay()
				s.fetcher.Pause(ctx, min, max)
			}

			min, max := s.cfg.PageDelay()
			s.fetcher.Pause(ctx, min, max)
		}
	}

	s.logSummary(pagesProcessed, urlsFound)
	return nil
}

func (s *Session) logSummary(pages, urls int) {
	stats := s.Stats()
	s.logger.Info("scrape summary",
		zap.Int("search_attempts", stats.SearchAttempts),
		zap.Int("fetch_successes", stats.FetchSuccesses),
		zap.Int("pages_processed", pages),
		zap.Int("urls_found", urls),
		zap.Int("contacts", stats.Contacts),
	)
}

// Persist writes the accumulated records to the session's output path.
func (s *Session) Persist() error {
	return s.store.Write(s.outputPath, s.Contacts(), s.profession)
}

// Contacts returns a copy of the accumulated records.
func (s *Session) Contacts() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Stats returns a snapshot of the session's progress counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		SearchAttempts: s.searchAttempts,
		FetchSuccesses: s.fetchSuccesses,
		Contacts:       len(s.contacts),
	}
}

// OutputPath is where Persist writes this session's records.
func (s *Session) OutputPath() string {
	return s.outputPath
}

func domainName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
