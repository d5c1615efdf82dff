package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack-backend/internal/domains/book/model"
)

// fakeCache is an in-memory cache.Cache with JSON round-tripping so cached
// values behave like the redis implementation does.
type fakeCache struct {
	data    map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

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
		f.deletes = append(f.deletes, k)
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (f *fakeCache) Ping(ctx context.Context) error                          { return nil }

// fakeBookRepo counts list calls so cache hits are observable.
type fakeBookRepo struct {
	books     []model.Book
	ids       []uuid.UUID
	listCalls int
	pairs     []model.SortIndexPair
}

func (f *fakeBookRepo) ListBooks(ctx context.Context, ownerID uuid.UUID) ([]model.Book, error) {
	f.listCalls++
	return f.books, nil
}

func (f *fakeBookRepo) GetBookByID(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error) {
	for i := range f.books {
		if f.books[i].ID == bookID {
			return &f.books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) GetOwner(ctx context.Context, bookID uuid.UUID) (uuid.UUID, error) {
	for i := range f.books {
		if f.books[i].ID == bookID {
			return f.books[i].OwnerID, nil
		}
	}
	return uuid.Nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error) {
	book := model.Book{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     req.Title,
		Authors:   req.Authors,
		SortIndex: len(f.books),
	}
	f.books = append(f.books, book)
	return &book, nil
}

func (f *fakeBookRepo) UpdateBookFields(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error) {
	return f.GetBookByID(ctx, ownerID, bookID)
}

func (f *fakeBookRepo) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	return nil
}

func (f *fakeBookRepo) ListBookIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return f.ids, nil
}

func (f *fakeBookRepo) ReorderBooks(ctx context.Context, ownerID uuid.UUID, pairs []model.SortIndexPair) error {
	f.pairs = pairs
	return nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, ownerID uuid.UUID, normalizedISBN string) (*model.Book, error) {
	return nil, nil
}

func TestListBooksUsesCacheOnSecondCall(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeBookRepo{books: []model.Book{{ID: uuid.New(), OwnerID: ownerID, Title: "Dune"}}}
	svc := NewService(repo, newFakeCache())

	first, err := svc.ListBooks(context.Background(), ownerID, model.ListBooksRequest{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListBooks(context.Background(), ownerID, model.ListBooksRequest{})
	require.NoError(t, err)
	assert.Equal(t, first[0].Title, second[0].Title)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCreateBookInvalidatesCache(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeBookRepo{}
	c := newFakeCache()
	svc := NewService(repo, c)

	_, err := svc.ListBooks(context.Background(), ownerID, model.ListBooksRequest{})
	require.NoError(t, err)

	_, err = svc.CreateBook(context.Background(), ownerID, model.CreateBookRequest{Title: "Dune", Authors: []string{"Frank Herbert"}})
	require.NoError(t, err)
	assert.Contains(t, c.deletes, model.ListCacheKey(ownerID))

	// Next list hits the repository again.
	_, err = svc.ListBooks(context.Background(), ownerID, model.ListBooksRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestUpdateBookRejectsEmptyPatch(t *testing.T) {
	svc := NewService(&fakeBookRepo{}, newFakeCache())
	_, err := svc.UpdateBook(context.Background(), uuid.New(), uuid.New(), model.UpdateBookRequest{})
	assert.ErrorIs(t, err, model.ErrEmptyUpdate)
}

func TestReorderBooksWritesDenseIndexes(t *testing.T) {
	ownerID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	repo := &fakeBookRepo{ids: []uuid.UUID{a, b, c}}
	svc := NewService(repo, newFakeCache())

	order, err := svc.ReorderBooks(context.Background(), ownerID, a, c)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b, c, a}, order)

	require.Len(t, repo.pairs, 3)
	assert.Equal(t, model.SortIndexPair{ID: b, SortIndex: 0}, repo.pairs[0])
	assert.Equal(t, model.SortIndexPair{ID: c, SortIndex: 1}, repo.pairs[1])
	assert.Equal(t, model.SortIndexPair{ID: a, SortIndex: 2}, repo.pairs[2])
}

func TestReorderBooksUnknownDraggedIDKeepsOrder(t *testing.T) {
	ownerID := uuid.New()
	a, b := uuid.New(), uuid.New()
	repo := &fakeBookRepo{ids: []uuid.UUID{a, b}}
	svc := NewService(repo, newFakeCache())

	order, err := svc.ReorderBooks(context.Background(), ownerID, uuid.New(), b)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, order)
}
