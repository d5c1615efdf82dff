package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "shelftrack-backend/internal/domains/book/model"
	copymodel "shelftrack-backend/internal/domains/copy/model"
	"shelftrack-backend/internal/domains/lookup/model"
)

type fakeProvider struct {
	meta  *model.BookMetadata
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) LookupByISBN(ctx context.Context, isbn, countryCode string) (*model.BookMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

// fakeBookRepo only implements the lookup path; the remaining repository
// methods are unused here.
type fakeBookRepo struct {
	byISBN map[string]*bookmodel.Book
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, ownerID uuid.UUID, normalizedISBN string) (*bookmodel.Book, error) {
	return f.byISBN[normalizedISBN], nil
}

func (f *fakeBookRepo) ListBooks(ctx context.Context, ownerID uuid.UUID) ([]bookmodel.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) GetBookByID(ctx context.Context, ownerID, bookID uuid.UUID) (*bookmodel.Book, error) {
	return nil, bookmodel.ErrBookNotFound
}

func (f *fakeBookRepo) GetOwner(ctx context.Context, bookID uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, bookmodel.ErrBookNotFound
}

func (f *fakeBookRepo) CreateBook(ctx context.Context, ownerID uuid.UUID, req bookmodel.CreateBookRequest) (*bookmodel.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) UpdateBookFields(ctx context.Context, ownerID, bookID uuid.UUID, req bookmodel.UpdateBookRequest) (*bookmodel.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error { return nil }

func (f *fakeBookRepo) ListBookIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeBookRepo) ReorderBooks(ctx context.Context, ownerID uuid.UUID, pairs []bookmodel.SortIndexPair) error {
	return nil
}

// fakeCopyRepo only answers copy counts for duplicate hits.
type fakeCopyRepo struct {
	counts map[uuid.UUID]int
}

func (f *fakeCopyRepo) CountByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	return f.counts[bookID], nil
}

func (f *fakeCopyRepo) GetCopy(ctx context.Context, copyID uuid.UUID) (*copymodel.Copy, error) {
	return nil, copymodel.ErrCopyNotFound
}

func (f *fakeCopyRepo) UpsertCopy(ctx context.Context, row copymodel.CopyRow, sortIndexProvided bool) (*copymodel.Copy, error) {
	return nil, nil
}

func (f *fakeCopyRepo) DeleteCopy(ctx context.Context, copyID uuid.UUID) error { return nil }

func (f *fakeCopyRepo) ListCopyIDs(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeCopyRepo) ReorderCopies(ctx context.Context, bookID uuid.UUID, orderedIDs []uuid.UUID) error {
	return nil
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

func TestLookupLocalDuplicateSkipsProvider(t *testing.T) {
	ownerID := uuid.New()
	existing := &bookmodel.Book{ID: uuid.New(), OwnerID: ownerID, Title: "Good Omens", ISBN: "978-0-575-04800-5"}
	repo := &fakeBookRepo{byISBN: map[string]*bookmodel.Book{"9780575048005": existing}}
	provider := &fakeProvider{}
	copies := &fakeCopyRepo{counts: map[uuid.UUID]int{existing.ID: 2}}
	svc := NewService(provider, repo, copies, newFakeCache(), time.Hour)

	// Hyphenated input matches the stored hyphenated ISBN.
	resp, err := svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "978-0575-04800-5"})
	require.NoError(t, err)
	assert.True(t, resp.Duplicate)
	assert.Equal(t, existing.ID, resp.Book.ID)
	assert.Equal(t, 2, resp.CopyCount)
	assert.Nil(t, resp.Metadata)
	assert.Equal(t, 0, provider.calls)
}

func TestLookupNewBookReturnsMetadata(t *testing.T) {
	ownerID := uuid.New()
	provider := &fakeProvider{meta: &model.BookMetadata{Title: "Good Omens", ISBN: "9780575048005"}}
	svc := NewService(provider, &fakeBookRepo{byISBN: map[string]*bookmodel.Book{}}, &fakeCopyRepo{}, newFakeCache(), time.Hour)

	resp, err := svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "9780575048005"})
	require.NoError(t, err)
	assert.False(t, resp.Duplicate)
	assert.Zero(t, resp.CopyCount)
	assert.Nil(t, resp.Book)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "Good Omens", resp.Metadata.Title)
	assert.Equal(t, 1, provider.calls)
}

func TestLookupRechecksProviderCorrectedISBN(t *testing.T) {
	// The user scans an ISBN-10; the provider normalizes to ISBN-13; the
	// collection already holds the book under the ISBN-13.
	ownerID := uuid.New()
	existing := &bookmodel.Book{ID: uuid.New(), OwnerID: ownerID, ISBN: "9780575048005"}
	repo := &fakeBookRepo{byISBN: map[string]*bookmodel.Book{"9780575048005": existing}}
	provider := &fakeProvider{meta: &model.BookMetadata{Title: "Good Omens", ISBN: "9780575048005"}}
	copies := &fakeCopyRepo{counts: map[uuid.UUID]int{existing.ID: 1}}
	svc := NewService(provider, repo, copies, newFakeCache(), time.Hour)

	resp, err := svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "0575048005"})
	require.NoError(t, err)
	assert.True(t, resp.Duplicate)
	assert.Equal(t, existing.ID, resp.Book.ID)
	assert.Equal(t, 1, resp.CopyCount)
	assert.NotNil(t, resp.Metadata)
}

func TestLookupCachesMetadata(t *testing.T) {
	ownerID := uuid.New()
	provider := &fakeProvider{meta: &model.BookMetadata{Title: "Good Omens", ISBN: "9780575048005"}}
	svc := NewService(provider, &fakeBookRepo{byISBN: map[string]*bookmodel.Book{}}, &fakeCopyRepo{}, newFakeCache(), time.Hour)

	_, err := svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "9780575048005"})
	require.NoError(t, err)
	_, err = svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "9780575048005"})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestLookupPropagatesProviderErrors(t *testing.T) {
	ownerID := uuid.New()
	provider := &fakeProvider{err: model.ErrNoMatch}
	svc := NewService(provider, &fakeBookRepo{byISBN: map[string]*bookmodel.Book{}}, &fakeCopyRepo{}, newFakeCache(), time.Hour)

	_, err := svc.Lookup(context.Background(), ownerID, model.LookupRequest{ISBN: "9780575048005"})
	assert.ErrorIs(t, err, model.ErrNoMatch)
}
