package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shelftrack-backend/internal/config"
	"shelftrack-backend/internal/domains/pricing/gateway"
	"shelftrack-backend/internal/domains/pricing/model"
)

// Client asks an OpenAI-compatible chat-completions endpoint for a market
// price and parses a single number out of the reply.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.PricingConfig) gateway.Estimator {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) Name() string {
	return "openai"
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const systemPrompt = `You are a used-book pricing assistant. Given a book and its condition,
reply with a single fair market price in USD as a plain number, e.g. 12.50.
No currency symbol, no explanation.`

func buildUserPrompt(req model.EstimateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", req.Title)
	if len(req.Authors) > 0 {
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(req.Authors, ", "))
	}
	if req.ISBN != "" {
		fmt.Fprintf(&b, "ISBN: %s\n", req.ISBN)
	}
	fmt.Fprintf(&b, "Condition: %s\n", req.Condition)
	return b.String()
}

func (c *Client) Estimate(ctx context.Context, req model.EstimateRequest) (decimal.Decimal, error) {
	if c.apiKey == "" {
		return decimal.Zero, model.ErrEstimatorDisabled
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("marshal estimate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", model.ErrEstimatorDown, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: unexpected status %d", model.ErrEstimatorDown, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decode: %v", model.ErrEstimatorDown, err)
	}
	if len(chat.Choices) == 0 {
		return decimal.Zero, model.ErrUnusableEstimate
	}

	return ParsePrice(chat.Choices[0].Message.Content)
}

var pricePattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParsePrice extracts the first non-negative number from a model reply.
// Currency symbols and surrounding prose are tolerated; a reply with no
// number at all is an ErrUnusableEstimate.
func ParsePrice(reply string) (decimal.Decimal, error) {
	match := pricePattern.FindString(reply)
	if match == "" {
		return decimal.Zero, model.ErrUnusableEstimate
	}

	price, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, model.ErrUnusableEstimate
	}
	if price.IsNegative() {
		return decimal.Zero, model.ErrUnusableEstimate
	}
	return price, nil
}
