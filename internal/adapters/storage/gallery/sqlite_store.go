package gallery

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/gallery"
)

// SQLiteStore is the dev-mode gallery accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const itemColumns = `id, title, description, image_url, category, ord, is_active, metadata, created_at, updated_at`

// List returns all gallery items ordered by their order key.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM gallery_item ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts a gallery item, assigning an ID and creation timestamp.
func (s *SQLiteStore) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.ID == "" {
		item.ID = s.GenerateID()
	}
	item.CreatedAt = s.Now()
	item.UpdatedAt = time.Time{}

	metadata, err := storage.MarshalJSONColumn(item.Meta)
	if err != nil {
		return domain.Item{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO gallery_item (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		item.ID, item.Title, item.Description, item.ImageURL, item.Category,
		item.Order, storage.BoolToInt(item.IsActive), metadata,
		item.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// Update rewrites an existing gallery item's fields.
func (s *SQLiteStore) Update(ctx context.Context, id string, item domain.Item) (domain.Item, error) {
	item.ID = id
	item.UpdatedAt = s.Now()

	metadata, err := storage.MarshalJSONColumn(item.Meta)
	if err != nil {
		return domain.Item{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE gallery_item SET title=?, description=?, image_url=?, category=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		item.Title, item.Description, item.ImageURL, item.Category,
		item.Order, storage.BoolToInt(item.IsActive), metadata,
		item.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Item{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Item{}, storage.ErrNotFound
	}
	return item, nil
}

// Delete removes a gallery item by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM gallery_item WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the gallery item's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE gallery_item SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanItem(rows *sql.Rows) (domain.Item, error) {
	var item domain.Item
	var metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL, &item.Category,
		&item.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.Item{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &item.Meta); err != nil {
		return domain.Item{}, err
	}
	item.IsActive = isActive != 0
	item.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		item.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return item, nil
}
