// Package scrape orchestrates the extraction pipelines: it validates
// query keys, builds upstream URLs, rate-limits and issues fetches,
// and delegates HTML parsing to the goquery package.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/mkaravias/eortologio"
	"github.com/mkaravias/eortologio/goquery"
)

// DefaultBaseURL is the upstream nameday site.
const DefaultBaseURL = "https://www.eortologio.net"

// Ensure Service implements the domain services at compile time.
var (
	_ eortologio.MonthService = (*Service)(nil)
	_ eortologio.NameService  = (*Service)(nil)
)

// Service implements eortologio.MonthService and eortologio.NameService
// against the upstream site.
type Service struct {
	fetcher eortologio.Fetcher
	baseURL string
	logger  *slog.Logger

	// Limiter bounds outbound request rate. Optional; nil means
	// unlimited.
	Limiter *Limiter

	// Now is the clock used for the default-year rule on name pages.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a Service. baseURL falls back to DefaultBaseURL
// when empty.
func NewService(fetcher eortologio.Fetcher, baseURL string, logger *slog.Logger) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
		Now:     time.Now,
	}
}

// MonthEntries fetches and parses the month page for month (1-12).
func (s *Service) MonthEntries(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
	name, ok := eortologio.MonthNominative(month)
	if !ok {
		return nil, eortologio.Errorf(eortologio.EINVALID, "month must be between 1 and 12")
	}

	u := fmt.Sprintf("%s/month/%d/%s", s.baseURL, month, url.PathEscape(name))
	html, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	return goquery.ParseMonth(html, month, s.logger)
}

// CelebrationDates fetches and parses the lookup page for name.
func (s *Service) CelebrationDates(ctx context.Context, name string) ([]eortologio.CelebrationDate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, eortologio.Errorf(eortologio.EINVALID, "name must not be empty")
	}

	u := fmt.Sprintf("%s/pote_giortazei/%s", s.baseURL, url.PathEscape(name))
	html, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	// The upstream page omits the year for the current cycle; those
	// dates belong to the next calendar year.
	defaultYear := s.now().Year() + 1
	return goquery.ParseNameDates(html, name, s.baseURL, defaultYear, s.logger)
}

func (s *Service) fetch(ctx context.Context, url string) (string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.fetcher.Fetch(ctx, url)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
