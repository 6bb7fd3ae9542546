package faq

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/faq"
)

// SQLiteStore is the dev-mode FAQ accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const faqColumns = `id, question, answer, category, ord, is_active, metadata, created_at, updated_at`

// List returns all FAQs ordered by their order key.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.FAQ, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+faqColumns+` FROM faq ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []domain.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// Create inserts a FAQ, assigning an ID and creation timestamp.
func (s *SQLiteStore) Create(ctx context.Context, f domain.FAQ) (domain.FAQ, error) {
	if f.ID == "" {
		f.ID = s.GenerateID()
	}
	f.CreatedAt = s.Now()
	f.UpdatedAt = time.Time{}

	metadata, err := storage.MarshalJSONColumn(f.Meta)
	if err != nil {
		return domain.FAQ{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO faq (`+faqColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		f.ID, f.Question, f.Answer, f.Category,
		f.Order, storage.BoolToInt(f.IsActive), metadata,
		f.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.FAQ{}, err
	}
	return f, nil
}

// Update rewrites an existing FAQ's fields.
func (s *SQLiteStore) Update(ctx context.Context, id string, f domain.FAQ) (domain.FAQ, error) {
	f.ID = id
	f.UpdatedAt = s.Now()

	metadata, err := storage.MarshalJSONColumn(f.Meta)
	if err != nil {
		return domain.FAQ{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE faq SET question=?, answer=?, category=?, ord=?, is_active=?, metadata=?,
		   updated_at=? WHERE id=?`,
		f.Question, f.Answer, f.Category, f.Order, storage.BoolToInt(f.IsActive), metadata,
		f.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.FAQ{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.FAQ{}, storage.ErrNotFound
	}
	return f, nil
}

// Delete removes a FAQ by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM faq WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the FAQ's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE faq SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanFAQ(rows *sql.Rows) (domain.FAQ, error) {
	var f domain.FAQ
	var metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category,
		&f.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.FAQ{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &f.Meta); err != nil {
		return domain.FAQ{}, err
	}
	f.IsActive = isActive != 0
	f.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		f.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return f, nil
}
