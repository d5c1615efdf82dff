package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelftrack-backend/internal/domains/copy/model"
	"shelftrack-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const copyColumns = `id, book_id, condition, purchase_price, market_price,
	to_char(acquired_date, 'YYYY-MM-DD'), purchase_location, notes, is_listed,
	sort_index, created_at, updated_at`

func scanCopy(row pgx.Row) (*model.Copy, error) {
	var cr model.CopyRow
	err := row.Scan(
		&cr.ID, &cr.BookID, &cr.Condition, &cr.PurchasePrice, &cr.MarketPrice,
		&cr.AcquiredDate, &cr.PurchaseLocation, &cr.Notes, &cr.IsListed,
		&cr.SortIndex, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c := model.CopyFromRow(cr)
	return &c, nil
}

func (r *postgresRepository) GetCopy(ctx context.Context, copyID uuid.UUID) (*model.Copy, error) {
	query := fmt.Sprintf(`SELECT %s FROM copies WHERE id = $1`, copyColumns)

	c, err := scanCopy(r.pool.QueryRow(ctx, query, copyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCopyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get copy failed: %w", err)
	}
	return c, nil
}

// UpsertCopy replaces the row wholesale by id. The owning book id is always
// taken from the argument, never from the stored row. When the caller did
// not pick a sort index for a new copy, max+1 within the book is assigned;
// the whole operation runs in one transaction.
func (r *postgresRepository) UpsertCopy(ctx context.Context, row model.CopyRow, sortIndexProvided bool) (*model.Copy, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Copy, error) {
		if !sortIndexProvided {
			// Only new rows get an assigned index; an existing row keeps its own.
			var existing *int
			err := tx.QueryRow(ctx, `SELECT sort_index FROM copies WHERE id = $1`, row.ID).Scan(&existing)
			if err != nil && !errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("check existing copy failed: %w", err)
			}
			if existing != nil {
				row.SortIndex = *existing
			} else {
				err = tx.QueryRow(ctx,
					`SELECT COALESCE(MAX(sort_index) + 1, 0) FROM copies WHERE book_id = $1`,
					row.BookID,
				).Scan(&row.SortIndex)
				if err != nil {
					return nil, fmt.Errorf("next copy sort index failed: %w", err)
				}
			}
		}

		query := fmt.Sprintf(`
			INSERT INTO copies (id, book_id, condition, purchase_price, market_price,
			                    acquired_date, purchase_location, notes, is_listed, sort_index)
			VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				book_id = EXCLUDED.book_id,
				condition = EXCLUDED.condition,
				purchase_price = EXCLUDED.purchase_price,
				market_price = EXCLUDED.market_price,
				acquired_date = EXCLUDED.acquired_date,
				purchase_location = EXCLUDED.purchase_location,
				notes = EXCLUDED.notes,
				is_listed = EXCLUDED.is_listed,
				sort_index = EXCLUDED.sort_index,
				updated_at = now()
			RETURNING %s
		`, copyColumns)

		c, err := scanCopy(tx.QueryRow(ctx, query,
			row.ID, row.BookID, row.Condition, row.PurchasePrice, row.MarketPrice,
			row.AcquiredDate, row.PurchaseLocation, row.Notes, row.IsListed, row.SortIndex,
		))
		if err != nil {
			return nil, fmt.Errorf("upsert copy failed: %w", err)
		}
		return c, nil
	})
}

func (r *postgresRepository) DeleteCopy(ctx context.Context, copyID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM copies WHERE id = $1`, copyID)
	if err != nil {
		return fmt.Errorf("delete copy failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCopyNotFound
	}
	return nil
}

func (r *postgresRepository) ListCopyIDs(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM copies WHERE book_id = $1 ORDER BY sort_index ASC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("list copy ids failed: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan copy id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReorderCopies assigns dense 0..n-1 indices by array position.
func (r *postgresRepository) ReorderCopies(ctx context.Context, bookID uuid.UUID, orderedIDs []uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, id := range orderedIDs {
			batch.Queue(
				`UPDATE copies SET sort_index = $1, updated_at = now() WHERE id = $2 AND book_id = $3`,
				i, id, bookID,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range orderedIDs {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("reorder copies failed: %w", err)
			}
		}
		return nil
	})
}

func (r *postgresRepository) CountByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM copies WHERE book_id = $1`, bookID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count copies failed: %w", err)
	}
	return count, nil
}
