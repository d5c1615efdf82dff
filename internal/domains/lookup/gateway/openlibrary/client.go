package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"shelftrack-backend/internal/config"
	bookmodel "shelftrack-backend/internal/domains/book/model"
	"shelftrack-backend/internal/domains/lookup/gateway"
	"shelftrack-backend/internal/domains/lookup/model"
)

const coverURLFormat = "https://covers.openlibrary.org/b/id/%d-L.jpg"

// Client resolves ISBNs against the Open Library editions API, with a
// client-side rate limiter so burst lookups stay polite.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewClient(cfg *config.LookupConfig) gateway.Provider {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) Name() string {
	return "openlibrary"
}

// editionResponse is the subset of the /isbn/{isbn}.json payload we use.
type editionResponse struct {
	Title          string   `json:"title"`
	Publishers     []string `json:"publishers"`
	PublishDate    string   `json:"publish_date"`
	PhysicalFormat string   `json:"physical_format"`
	Covers         []int    `json:"covers"`
	ISBN13         []string `json:"isbn_13"`
	ISBN10         []string `json:"isbn_10"`
	Authors        []struct {
		Key string `json:"key"`
	} `json:"authors"`
}

type authorResponse struct {
	Name string `json:"name"`
}

func (c *Client) getJSON(ctx context.Context, url string, dest interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrProviderDown, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.ErrNoMatch
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", model.ErrProviderDown, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode: %v", model.ErrProviderDown, err)
	}
	return nil
}

// LookupByISBN fetches the edition and resolves author names with follow-up
// requests. Open Library has no country bias; countryCode is ignored here.
func (c *Client) LookupByISBN(ctx context.Context, isbn, countryCode string) (*model.BookMetadata, error) {
	var edition editionResponse
	url := fmt.Sprintf("%s/isbn/%s.json", c.baseURL, isbn)
	if err := c.getJSON(ctx, url, &edition); err != nil {
		return nil, err
	}
	if edition.Title == "" {
		return nil, model.ErrNoMatch
	}

	meta := &model.BookMetadata{
		Title:           edition.Title,
		Authors:         c.resolveAuthors(ctx, edition),
		PublicationYear: extractYear(edition.PublishDate),
		Binding:         InferBinding(edition.PhysicalFormat),
		ISBN:            preferISBN13(edition, isbn),
		Source:          c.Name(),
	}
	if len(edition.Publishers) > 0 {
		meta.Publisher = edition.Publishers[0]
	}
	if len(edition.Covers) > 0 {
		meta.CoverURL = fmt.Sprintf(coverURLFormat, edition.Covers[0])
	}

	return meta, nil
}

// resolveAuthors fetches each author record; a failed author fetch drops
// that author rather than failing the whole lookup.
func (c *Client) resolveAuthors(ctx context.Context, edition editionResponse) []string {
	authors := make([]string, 0, len(edition.Authors))
	for _, ref := range edition.Authors {
		var author authorResponse
		url := fmt.Sprintf("%s%s.json", c.baseURL, ref.Key)
		if err := c.getJSON(ctx, url, &author); err != nil {
			continue
		}
		if author.Name != "" {
			authors = append(authors, author.Name)
		}
	}
	return authors
}

// preferISBN13 picks the 13-digit identifier when the edition carries
// several, falling back to ISBN-10 and finally the queried ISBN.
func preferISBN13(edition editionResponse, queried string) string {
	if len(edition.ISBN13) > 0 {
		return edition.ISBN13[0]
	}
	if len(edition.ISBN10) > 0 {
		return edition.ISBN10[0]
	}
	return queried
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

func extractYear(publishDate string) *int {
	match := yearPattern.FindString(publishDate)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

// InferBinding maps a free-text physical format onto the binding
// enumeration. Unknown formats land on Other.
func InferBinding(physicalFormat string) bookmodel.Binding {
	f := strings.ToLower(strings.TrimSpace(physicalFormat))
	switch {
	case f == "":
		return bookmodel.BindingOther
	case strings.Contains(f, "hardcover"), strings.Contains(f, "hardback"):
		return bookmodel.BindingHardcover
	case strings.Contains(f, "mass market"):
		return bookmodel.BindingMassMarket
	case strings.Contains(f, "trade"):
		return bookmodel.BindingTradePaperback
	case strings.Contains(f, "paperback"), strings.Contains(f, "softcover"):
		return bookmodel.BindingPaperback
	case strings.Contains(f, "spiral"), strings.Contains(f, "library"), strings.Contains(f, "leather"):
		return bookmodel.BindingSpecialty
	default:
		return bookmodel.BindingOther
	}
}
