package segment

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/segment"
)

// SQLiteStore is the dev-mode segment accessor. It satisfies the same
// contract as the remote API store.
type SQLiteStore struct {
	db storage.SQLDB

	// Overridable for deterministic tests.
	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const segmentColumns = `id, title, slug, description, category, icon, features, ord, is_active, metadata, created_at, updated_at`

// List returns all segments ordered by their order key.
// PRE: none
// POST: Returns segments ordered by ord ASC, created_at ASC
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Segment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+segmentColumns+` FROM segment ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []domain.Segment
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// Create inserts a segment, assigning an ID and creation timestamp.
// PRE: seg has been validated and normalized
// POST: Returns the stored record with ID and CreatedAt set
func (s *SQLiteStore) Create(ctx context.Context, seg domain.Segment) (domain.Segment, error) {
	if seg.ID == "" {
		seg.ID = s.GenerateID()
	}
	seg.CreatedAt = s.Now()
	seg.UpdatedAt = time.Time{}

	features, err := storage.MarshalJSONColumn(seg.Features)
	if err != nil {
		return domain.Segment{}, err
	}
	metadata, err := storage.MarshalJSONColumn(seg.Meta)
	if err != nil {
		return domain.Segment{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO segment (`+segmentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		seg.ID, seg.Title, seg.Slug, seg.Description, seg.Category, seg.Icon,
		features, seg.Order, storage.BoolToInt(seg.IsActive), metadata,
		seg.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Segment{}, err
	}
	return seg, nil
}

// Update rewrites an existing segment's fields. The creation timestamp is
// never touched.
// PRE: seg has been validated and normalized
// POST: Returns the stored record, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, id string, seg domain.Segment) (domain.Segment, error) {
	seg.ID = id
	seg.UpdatedAt = s.Now()

	features, err := storage.MarshalJSONColumn(seg.Features)
	if err != nil {
		return domain.Segment{}, err
	}
	metadata, err := storage.MarshalJSONColumn(seg.Meta)
	if err != nil {
		return domain.Segment{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE segment SET title=?, slug=?, description=?, category=?, icon=?, features=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		seg.Title, seg.Slug, seg.Description, seg.Category, seg.Icon, features,
		seg.Order, storage.BoolToInt(seg.IsActive), metadata,
		seg.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Segment{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Segment{}, storage.ErrNotFound
	}
	return seg, nil
}

// Delete removes a segment by ID.
// PRE: id is non-empty
// POST: Row is removed, or storage.ErrNotFound
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM segment WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the segment's activation flag.
// PRE: id is non-empty
// POST: is_active is inverted, or storage.ErrNotFound
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE segment SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSegment(rows *sql.Rows) (domain.Segment, error) {
	var seg domain.Segment
	var features, metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&seg.ID, &seg.Title, &seg.Slug, &seg.Description, &seg.Category,
		&seg.Icon, &features, &seg.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.Segment{}, err
	}
	if err := storage.UnmarshalJSONColumn(features, &seg.Features); err != nil {
		return domain.Segment{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &seg.Meta); err != nil {
		return domain.Segment{}, err
	}
	seg.IsActive = isActive != 0
	seg.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		seg.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return seg, nil
}
