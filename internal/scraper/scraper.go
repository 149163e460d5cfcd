// Package scraper fetches a URL, extracts data from the returned markup
// and writes the results to an output sink. A run is a single synchronous
// fetch; errors abort the run and leave no partial output behind.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fjacquet/autokit/internal/config"
	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Page is a fetched and parsed document, kept around until the sink has
// consumed it.
type Page struct {
	URL       string
	Doc       *goquery.Document
	Raw       []byte
	FetchedAt time.Time
}

// Rules are the user-supplied extraction rules applied on top of the
// built-in link/image/heading extractors.
type Rules struct {
	Selectors []string
	XPaths    []string
}

// Scraper performs single-page fetches with bounded retries.
type Scraper struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	logger     logging.Logger
}

// New wires a scraper from configuration. A nil client gets a default
// with the configured timeout. Values below the valid range are clamped
// so a fetch always makes at least one bounded attempt; flag overrides
// reach this constructor without passing config validation.
func New(cfg *config.Config, client *http.Client, logger logging.Logger) *Scraper {
	maxRetries := cfg.Scraper.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	if client == nil {
		timeout := time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Scraper{
		client:     client,
		userAgent:  cfg.Scraper.UserAgent,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Fetch retrieves pageURL, retrying transient failures with exponential
// backoff (1s, 2s, 4s, ...). A non-2xx response counts as a failure.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	var lastErr error

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			s.logger.WithFields(
				logging.Field{Key: logging.FieldURL, Value: pageURL},
				logging.Field{Key: logging.FieldAttempt, Value: attempt + 1},
				logging.Field{Key: "wait", Value: wait.String()},
			).Warn("Retrying fetch")
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		page, err := s.fetchOnce(ctx, pageURL)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	s.logger.WithError(lastErr).WithField(logging.FieldURL, pageURL).Error("Max retries reached, failed to fetch page")
	return nil, lastErr
}

func (s *Scraper) fetchOnce(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &ParseError{URL: pageURL, Err: err}
	}

	s.logger.WithField(logging.FieldURL, pageURL).Info("Page fetched")
	return &Page{
		URL:       pageURL,
		Doc:       doc,
		Raw:       raw,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Extract applies the built-in extractors and any user-supplied rules to
// a fetched page.
func (s *Scraper) Extract(page *Page, rules Rules) (*models.PageReport, error) {
	base, err := url.Parse(page.URL)
	if err != nil {
		return nil, &ParseError{URL: page.URL, Err: err}
	}

	report := &models.PageReport{
		URL:       page.URL,
		Title:     strings.TrimSpace(page.Doc.Find("title").First().Text()),
		FetchedAt: page.FetchedAt,
		Links:     extractLinks(page.Doc, base),
		Images:    extractImages(page.Doc, base),
		Headings:  extractHeadings(page.Doc),
	}
	report.TotalLinks = len(report.Links)
	report.TotalImages = len(report.Images)

	for _, selector := range rules.Selectors {
		extracts, err := extractSelector(page.Doc, selector)
		if err != nil {
			return nil, &ParseError{URL: page.URL, Err: err}
		}
		report.Extracts = append(report.Extracts, extracts...)
	}

	for _, xpath := range rules.XPaths {
		extracts, err := extractXPath(page.Raw, xpath)
		if err != nil {
			return nil, &ParseError{URL: page.URL, Err: err}
		}
		report.Extracts = append(report.Extracts, extracts...)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldURL, Value: page.URL},
		logging.Field{Key: "links", Value: report.TotalLinks},
		logging.Field{Key: "images", Value: report.TotalImages},
		logging.Field{Key: "extracts", Value: len(report.Extracts)},
	).Info("Extraction complete")

	return report, nil
}

func extractLinks(doc *goquery.Document, base *url.URL) []models.Link {
	var links []models.Link
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, models.Link{
			Text: strings.TrimSpace(sel.Text()),
			URL:  absoluteURL(base, href),
		})
	})
	return links
}

func extractImages(doc *goquery.Document, base *url.URL) []models.Image {
	var images []models.Image
	doc.Find("img[src]").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		images = append(images, models.Image{
			Alt: alt,
			URL: absoluteURL(base, src),
		})
	})
	return images
}

// extractHeadings walks h1-h3 in document order.
func extractHeadings(doc *goquery.Document) []models.Heading {
	var headings []models.Heading
	doc.Find("h1, h2, h3").Each(func(i int, sel *goquery.Selection) {
		headings = append(headings, models.Heading{
			Level: int(goquery.NodeName(sel)[1] - '0'),
			Text:  strings.TrimSpace(sel.Text()),
		})
	})
	return headings
}

func extractSelector(doc *goquery.Document, selector string) ([]models.Extract, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("empty selector")
	}
	var extracts []models.Extract
	doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
		extracts = append(extracts, models.Extract{
			Rule:  selector,
			Value: strings.TrimSpace(sel.Text()),
		})
	})
	return extracts, nil
}

// absoluteURL resolves href against the page URL; unparsable hrefs are
// kept verbatim.
func absoluteURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
