// scraper.go ties the http client, the json decoders and the detail page
// extractor together, it is the only place that reports failures.

package mssos

import (
	"context"
	"fmt"
	"mssos-scraper/internal/components/assert"
	"mssos-scraper/internal/components/telemetry"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	report_scraper_search    = "scraper.search"
	report_scraper_details   = "scraper.details"
	report_scraper_documents = "scraper.documents"
	report_scraper_lookup    = "scraper.lookup"
)

// Scraper is safe for concurrent use, every call makes its own requests and
// builds its own records.
type Scraper struct {
	state   string
	baseUrl string
	client  client
	tel     telemetry.API
}

func NewScraper(opts Options, tel telemetry.API) (Scraper, error) {
	assert.NotNil(tel)
	assert.NotEmptyStr(opts.State, "state")

	if opts.BaseUrl == "" {
		opts.BaseUrl = DEFAULT_BASE_URL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return Scraper{}, fmt.Errorf("parse base url: %w", err)
	}
	if parsedBaseUrl.Scheme == "" || parsedBaseUrl.Host == "" {
		return Scraper{}, fmt.Errorf("base url %q is not absolute", opts.BaseUrl)
	}

	tel = telemetry.NewScopedAPI("mssos_scraper", tel)

	return Scraper{
		state:   opts.State,
		baseUrl: strings.TrimSuffix(opts.BaseUrl, "/"),
		client:  newClient(opts, parsedBaseUrl.Hostname(), tel),
		tel:     tel,
	}, nil
}

// Search returns the businesses whose name starts with query, in the order
// the portal returns them. Failures are reported and yield an empty list.
func (s Scraper) Search(ctx context.Context, query string) []BusinessSummary {
	body, err := s.client.request(
		ctx,
		http.MethodPost,
		s.baseUrl+SEARCH_ENDPOINT,
		newSearchRequest(query),
	)
	if err != nil {
		s.tel.ReportBroken(report_scraper_search, fmt.Errorf("fetch: %w", err), query)
		return []BusinessSummary{}
	}

	results, err := DecodeSearchResponse(s.state, s.baseUrl, []byte(body))
	if err != nil {
		s.tel.ReportBroken(report_scraper_search, err, query)
		return []BusinessSummary{}
	}
	s.tel.ReportCount(report_scraper_search, int64(len(results)))
	return results
}

// Details fetches and extracts the detail page at link, then fetches the
// filed documents of the business. The second return value is false (with a
// zero BusinessDetail) when the page could not be fetched or read.
func (s Scraper) Details(ctx context.Context, link string) (BusinessDetail, bool) {
	body, err := s.client.request(ctx, http.MethodGet, link, nil)
	if err != nil {
		s.tel.ReportBroken(report_scraper_details, fmt.Errorf("fetch: %w", err), link)
		return BusinessDetail{}, false
	}

	detail, err := ExtractDetail(s.state, []byte(body), s.tel)
	if err != nil {
		s.tel.ReportBroken(report_scraper_details, err, link)
		return BusinessDetail{}, false
	}

	if detail.RegistrationNumber == nil || *detail.RegistrationNumber == "" {
		s.tel.ReportWarning(
			report_scraper_documents,
			fmt.Errorf("no registration number on detail page, skipping documents"),
			link,
		)
		return detail, true
	}
	detail.Documents = s.Documents(ctx, *detail.RegistrationNumber)
	return detail, true
}

// Documents returns the reference filings of the business with the given
// registration number. Failures are reported and yield an empty list.
func (s Scraper) Documents(ctx context.Context, fileNumber string) []DocumentRecord {
	body, err := s.client.request(
		ctx,
		http.MethodPost,
		s.baseUrl+DOCUMENTS_ENDPOINT,
		documentsRequest{FileNumber: fileNumber},
	)
	if err != nil {
		s.tel.ReportBroken(report_scraper_documents, fmt.Errorf("fetch: %w", err), fileNumber)
		return []DocumentRecord{}
	}

	documents, err := DecodeDocumentsResponse(s.baseUrl, []byte(body))
	if err != nil {
		s.tel.ReportBroken(report_scraper_documents, err, fileNumber)
		return []DocumentRecord{}
	}
	s.tel.ReportCount(report_scraper_documents, int64(len(documents)))
	return documents
}
