package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack-backend/internal/domains/pricing/model"
)

type fakeEstimator struct {
	price decimal.Decimal
	err   error
	calls int
}

func (f *fakeEstimator) Name() string { return "fake" }

func (f *fakeEstimator) Estimate(ctx context.Context, req model.EstimateRequest) (decimal.Decimal, error) {
	f.calls++
	return f.price, f.err
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (f *fakeCache) Ping(ctx context.Context) error                          { return nil }

func TestEstimateCachesByISBNAndCondition(t *testing.T) {
	estimator := &fakeEstimator{price: decimal.RequireFromString("12.50")}
	svc := NewService(estimator, newFakeCache(), time.Hour)

	req := model.EstimateRequest{Title: "Good Omens", ISBN: "978-0575048005", Condition: "Very Good"}

	first, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first.Estimate.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "USD", first.Currency)
	assert.Equal(t, "fake", first.Source)

	// Same ISBN with different formatting hits the cache.
	req.ISBN = "9780575048005"
	second, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Estimate.Equal(first.Estimate))
	assert.Equal(t, 1, estimator.calls)

	// A different condition is a different price.
	req.Condition = "Acceptable"
	_, err = svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, estimator.calls)
}

func TestEstimateFallsBackToTitleKey(t *testing.T) {
	estimator := &fakeEstimator{price: decimal.NewFromInt(5)}
	svc := NewService(estimator, newFakeCache(), time.Hour)

	req := model.EstimateRequest{Title: "Good Omens", ISBN: "N/A", Condition: "Good"}
	_, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, estimator.calls)
}

func TestEstimatePropagatesEstimatorErrors(t *testing.T) {
	estimator := &fakeEstimator{err: model.ErrEstimatorDown}
	svc := NewService(estimator, newFakeCache(), time.Hour)

	_, err := svc.Estimate(context.Background(), model.EstimateRequest{Title: "x", Condition: "Good"})
	assert.ErrorIs(t, err, model.ErrEstimatorDown)
}
