package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack-backend/internal/config"
	"shelftrack-backend/internal/domains/pricing/model"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{"12.50", "12.50"},
		{"$12.50", "12.50"},
		{"Around 8 dollars", "8"},
		{"I'd estimate $15.99 for this copy.", "15.99"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.reply)
		require.NoError(t, err, tt.reply)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), tt.reply)
	}
}

func TestParsePriceUnusable(t *testing.T) {
	for _, reply := range []string{"", "no idea", "priceless"} {
		_, err := ParsePrice(reply)
		assert.ErrorIs(t, err, model.ErrUnusableEstimate, reply)
	}
}

func testEstimator(baseURL, apiKey string) *Client {
	return NewClient(&config.PricingConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}).(*Client)
}

func estimateRequest() model.EstimateRequest {
	return model.EstimateRequest{
		Title:     "Good Omens",
		Authors:   []string{"Terry Pratchett"},
		ISBN:      "9780575048005",
		Condition: "Very Good",
	}
}

func TestEstimateDisabledWithoutAPIKey(t *testing.T) {
	_, err := testEstimator("http://unused", "").Estimate(context.Background(), estimateRequest())
	assert.ErrorIs(t, err, model.ErrEstimatorDisabled)
}

func TestEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "$11.25"}}]}`))
	}))
	defer srv.Close()

	price, err := testEstimator(srv.URL, "test-key").Estimate(context.Background(), estimateRequest())
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("11.25")))
}

func TestEstimateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testEstimator(srv.URL, "test-key").Estimate(context.Background(), estimateRequest())
	assert.ErrorIs(t, err, model.ErrEstimatorDown)
}

func TestEstimateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := testEstimator(srv.URL, "test-key").Estimate(context.Background(), estimateRequest())
	assert.ErrorIs(t, err, model.ErrUnusableEstimate)
}
