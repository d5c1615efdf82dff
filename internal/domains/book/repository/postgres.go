package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelftrack-backend/internal/domains/book/model"
	copymodel "shelftrack-backend/internal/domains/copy/model"
	"shelftrack-backend/pkg/database"
)

// postgresRepository - raw SQL with pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, owner_id, title, authors, publication_year, publisher,
	binding, isbn, cover_image_url, sort_index, created_at, updated_at`

const copyColumns = `id, book_id, condition, purchase_price, market_price,
	to_char(acquired_date, 'YYYY-MM-DD'), purchase_location, notes, is_listed,
	sort_index, created_at, updated_at`

func scanBookRow(row pgx.Row, r *model.BookRow) error {
	return row.Scan(
		&r.ID, &r.OwnerID, &r.Title, &r.Authors, &r.PublicationYear, &r.Publisher,
		&r.Binding, &r.ISBN, &r.CoverImageURL, &r.SortIndex, &r.CreatedAt, &r.UpdatedAt,
	)
}

func scanCopyRow(row pgx.Row, r *copymodel.CopyRow) error {
	return row.Scan(
		&r.ID, &r.BookID, &r.Condition, &r.PurchasePrice, &r.MarketPrice,
		&r.AcquiredDate, &r.PurchaseLocation, &r.Notes, &r.IsListed,
		&r.SortIndex, &r.CreatedAt, &r.UpdatedAt,
	)
}

// ListBooks fetches the owner's books and their copies in two queries,
// grouping copies onto their book in Go.
func (r *postgresRepository) ListBooks(ctx context.Context, ownerID uuid.UUID) ([]model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE owner_id = $1 ORDER BY sort_index ASC`, bookColumns)

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	bookRows := make([]model.BookRow, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var br model.BookRow
		if err := scanBookRow(rows, &br); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		bookRows = append(bookRows, br)
		ids = append(ids, br.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books rows: %w", err)
	}

	copiesByBook, err := r.copiesForBooks(ctx, ids)
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(bookRows))
	for _, br := range bookRows {
		br.Copies = copiesByBook[br.ID]
		books = append(books, model.BookFromRow(br))
	}
	return books, nil
}

func (r *postgresRepository) copiesForBooks(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]copymodel.CopyRow, error) {
	grouped := make(map[uuid.UUID][]copymodel.CopyRow, len(bookIDs))
	if len(bookIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM copies WHERE book_id = ANY($1) ORDER BY book_id, sort_index ASC`, copyColumns)

	rows, err := r.pool.Query(ctx, query, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("list copies query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cr copymodel.CopyRow
		if err := scanCopyRow(rows, &cr); err != nil {
			return nil, fmt.Errorf("scan copy row: %w", err)
		}
		grouped[cr.BookID] = append(grouped[cr.BookID], cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list copies rows: %w", err)
	}
	return grouped, nil
}

func (r *postgresRepository) GetBookByID(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1 AND owner_id = $2`, bookColumns)

	var br model.BookRow
	err := scanBookRow(r.pool.QueryRow(ctx, query, bookID, ownerID), &br)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book failed: %w", err)
	}

	copies, err := r.copiesForBooks(ctx, []uuid.UUID{br.ID})
	if err != nil {
		return nil, err
	}
	br.Copies = copies[br.ID]

	book := model.BookFromRow(br)
	return &book, nil
}

func (r *postgresRepository) GetOwner(ctx context.Context, bookID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT owner_id FROM books WHERE id = $1`, bookID).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, model.ErrBookNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("get book owner failed: %w", err)
	}
	return ownerID, nil
}

// CreateBook assigns sort_index = COALESCE(MAX+1, 0) and inserts, both
// inside one transaction so concurrent creates cannot collide on the index.
func (r *postgresRepository) CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error) {
	row := model.BookRow{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Title:           req.Title,
		Authors:         model.JoinAuthors(req.Authors),
		PublicationYear: req.PublicationYear,
		Publisher:       req.Publisher,
		Binding:         req.Binding,
		ISBN:            req.ISBN,
		CoverImageURL:   req.CoverURL,
	}

	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (model.BookRow, error) {
		err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(sort_index) + 1, 0) FROM books WHERE owner_id = $1`,
			ownerID,
		).Scan(&row.SortIndex)
		if err != nil {
			return row, fmt.Errorf("next sort index failed: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO books (id, owner_id, title, authors, publication_year, publisher,
			                   binding, isbn, cover_image_url, sort_index)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at, updated_at
		`, row.ID, row.OwnerID, row.Title, row.Authors, row.PublicationYear, row.Publisher,
			row.Binding, row.ISBN, row.CoverImageURL, row.SortIndex,
		).Scan(&row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			return row, fmt.Errorf("insert book failed: %w", err)
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}

	book := model.BookFromRow(created)
	return &book, nil
}

// UpdateBookFields builds a dynamic SET clause from the non-nil fields so
// unspecified columns are never clobbered.
func (r *postgresRepository) UpdateBookFields(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error) {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 10)
	argIndex := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Authors != nil {
		addSet("authors", model.JoinAuthors(*req.Authors))
	}
	if req.PublicationYear != nil {
		addSet("publication_year", *req.PublicationYear)
	}
	if req.Publisher != nil {
		addSet("publisher", *req.Publisher)
	}
	if req.Binding != nil {
		addSet("binding", *req.Binding)
	}
	if req.ISBN != nil {
		addSet("isbn", *req.ISBN)
	}
	if req.CoverURL != nil {
		addSet("cover_image_url", *req.CoverURL)
	}

	if len(sets) == 0 {
		return nil, model.ErrEmptyUpdate
	}
	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf(
		`UPDATE books SET %s WHERE id = $%d AND owner_id = $%d`,
		strings.Join(sets, ", "), argIndex, argIndex+1,
	)
	args = append(args, bookID, ownerID)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update book failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrBookNotFound
	}

	return r.GetBookByID(ctx, ownerID, bookID)
}

// DeleteBook removes the row; ON DELETE CASCADE on copies.book_id removes
// every owned copy atomically, so no success path leaves orphans.
func (r *postgresRepository) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1 AND owner_id = $2`, bookID, ownerID)
	if err != nil {
		return fmt.Errorf("delete book failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) ListBookIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM books WHERE owner_id = $1 ORDER BY sort_index ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list book ids failed: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan book id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReorderBooks bulk-writes the new sort indices in one transaction.
func (r *postgresRepository) ReorderBooks(ctx context.Context, ownerID uuid.UUID, pairs []model.SortIndexPair) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range pairs {
			batch.Queue(
				`UPDATE books SET sort_index = $1, updated_at = now() WHERE id = $2 AND owner_id = $3`,
				p.SortIndex, p.ID, ownerID,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range pairs {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("reorder books failed: %w", err)
			}
		}
		return nil
	})
}

// FindByISBN matches hyphen-insensitively on both sides.
func (r *postgresRepository) FindByISBN(ctx context.Context, ownerID uuid.UUID, normalizedISBN string) (*model.Book, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM books WHERE owner_id = $1 AND replace(replace(isbn, '-', ''), ' ', '') = $2`,
		bookColumns,
	)

	var br model.BookRow
	err := scanBookRow(r.pool.QueryRow(ctx, query, ownerID, normalizedISBN), &br)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by isbn failed: %w", err)
	}

	copies, err := r.copiesForBooks(ctx, []uuid.UUID{br.ID})
	if err != nil {
		return nil, err
	}
	br.Copies = copies[br.ID]

	book := model.BookFromRow(br)
	return &book, nil
}
