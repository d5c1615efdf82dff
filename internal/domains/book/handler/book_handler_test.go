package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack-backend/internal/domains/book/model"
)

type stubService struct {
	books    []model.Book
	book     *model.Book
	order    []uuid.UUID
	err      error
	lastList model.ListBooksRequest
}

func (s *stubService) ListBooks(ctx context.Context, ownerID uuid.UUID, req model.ListBooksRequest) ([]model.Book, error) {
	s.lastList = req
	return s.books, s.err
}

func (s *stubService) GetBook(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubService) CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubService) UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error) {
	return s.book, s.err
}

func (s *stubService) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	return s.err
}

func (s *stubService) ReorderBooks(ctx context.Context, ownerID, draggedID, targetID uuid.UUID) ([]uuid.UUID, error) {
	return s.order, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(svc *stubService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set("userID", uuid.New())
		})
	}

	h := NewHandler(svc)
	r.GET("/v1/books", h.ListBooks)
	r.GET("/v1/books/:id", h.GetBook)
	r.POST("/v1/books", h.CreateBook)
	r.PATCH("/v1/books/:id", h.UpdateBook)
	r.DELETE("/v1/books/:id", h.DeleteBook)
	r.POST("/v1/books/reorder", h.ReorderBooks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListBooksRequiresAuth(t *testing.T) {
	r := setupRouter(&stubService{}, false)
	w, env := doJSON(t, r, http.MethodGet, "/v1/books", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestListBooksParsesViewParams(t *testing.T) {
	svc := &stubService{books: []model.Book{}}
	r := setupRouter(svc, true)

	w, env := doJSON(t, r, http.MethodGet, "/v1/books?listedOnly=true&q=dune&sort=title_asc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.True(t, svc.lastList.ListedOnly)
	assert.Equal(t, "dune", svc.lastList.Query)
	assert.Equal(t, model.SortTitleAsc, svc.lastList.Sort)
}

func TestListBooksRejectsUnknownSort(t *testing.T) {
	r := setupRouter(&stubService{}, true)
	w, _ := doJSON(t, r, http.MethodGet, "/v1/books?sort=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookInvalidID(t *testing.T) {
	r := setupRouter(&stubService{}, true)
	w, _ := doJSON(t, r, http.MethodGet, "/v1/books/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookNotFound(t *testing.T) {
	r := setupRouter(&stubService{err: model.ErrBookNotFound}, true)
	w, env := doJSON(t, r, http.MethodGet, "/v1/books/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
}

func TestCreateBook(t *testing.T) {
	book := &model.Book{ID: uuid.New(), Title: "Dune"}
	r := setupRouter(&stubService{book: book}, true)

	w, env := doJSON(t, r, http.MethodPost, "/v1/books", gin.H{
		"title":   "Dune",
		"authors": []string{"Frank Herbert"},
		"binding": "Paperback",
		"isbn":    "9780441013593",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
}

func TestCreateBookValidationFailure(t *testing.T) {
	r := setupRouter(&stubService{}, true)
	w, _ := doJSON(t, r, http.MethodPost, "/v1/books", gin.H{
		"title":   "Dune",
		"authors": []string{"Frank Herbert"},
		"binding": "Stapled",
		"isbn":    "9780441013593",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookEmptyPatch(t *testing.T) {
	r := setupRouter(&stubService{err: model.ErrEmptyUpdate}, true)
	w, _ := doJSON(t, r, http.MethodPatch, "/v1/books/"+uuid.NewString(), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderBooksReturnsNewOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	r := setupRouter(&stubService{order: []uuid.UUID{b, a}}, true)

	w, env := doJSON(t, r, http.MethodPost, "/v1/books/reorder", gin.H{
		"draggedId": a.String(),
		"targetId":  b.String(),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Order []uuid.UUID `json:"order"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []uuid.UUID{b, a}, data.Order)
}

func TestReorderBooksRejectsBadIDs(t *testing.T) {
	r := setupRouter(&stubService{}, true)
	w, _ := doJSON(t, r, http.MethodPost, "/v1/books/reorder", gin.H{
		"draggedId": "x",
		"targetId":  "y",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
