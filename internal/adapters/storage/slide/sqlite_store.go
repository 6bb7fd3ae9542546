package slide

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/slide"
)

// SQLiteStore is the dev-mode hero-slide accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const slideColumns = `id, title, subtitle, image_url, cta_label, cta_url, ord, is_active, metadata, created_at, updated_at`

// List returns all slides ordered by their order key.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Slide, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+slideColumns+` FROM slide ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []domain.Slide
	for rows.Next() {
		sl, err := scanSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, sl)
	}
	return slides, rows.Err()
}

// Create inserts a slide, assigning an ID and creation timestamp.
func (s *SQLiteStore) Create(ctx context.Context, sl domain.Slide) (domain.Slide, error) {
	if sl.ID == "" {
		sl.ID = s.GenerateID()
	}
	sl.CreatedAt = s.Now()
	sl.UpdatedAt = time.Time{}

	metadata, err := storage.MarshalJSONColumn(sl.Meta)
	if err != nil {
		return domain.Slide{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slide (`+slideColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		sl.ID, sl.Title, sl.Subtitle, sl.ImageURL, sl.CTALabel, sl.CTAURL,
		sl.Order, storage.BoolToInt(sl.IsActive), metadata,
		sl.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Slide{}, err
	}
	return sl, nil
}

// Update rewrites an existing slide's fields.
func (s *SQLiteStore) Update(ctx context.Context, id string, sl domain.Slide) (domain.Slide, error) {
	sl.ID = id
	sl.UpdatedAt = s.Now()

	metadata, err := storage.MarshalJSONColumn(sl.Meta)
	if err != nil {
		return domain.Slide{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE slide SET title=?, subtitle=?, image_url=?, cta_label=?, cta_url=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		sl.Title, sl.Subtitle, sl.ImageURL, sl.CTALabel, sl.CTAURL,
		sl.Order, storage.BoolToInt(sl.IsActive), metadata,
		sl.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Slide{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Slide{}, storage.ErrNotFound
	}
	return sl, nil
}

// Delete removes a slide by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM slide WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the slide's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE slide SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSlide(rows *sql.Rows) (domain.Slide, error) {
	var sl domain.Slide
	var metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&sl.ID, &sl.Title, &sl.Subtitle, &sl.ImageURL, &sl.CTALabel, &sl.CTAURL,
		&sl.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.Slide{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &sl.Meta); err != nil {
		return domain.Slide{}, err
	}
	sl.IsActive = isActive != 0
	sl.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		sl.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return sl, nil
}
