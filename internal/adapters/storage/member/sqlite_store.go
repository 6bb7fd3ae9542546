package member

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/member"
)

// SQLiteStore is the dev-mode member accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const memberColumns = `id, name, role, email, image_url, year, socials, ord, is_active, metadata, created_at, updated_at`

// List returns all members ordered by their order key.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM member ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Create inserts a member, assigning an ID and creation timestamp.
func (s *SQLiteStore) Create(ctx context.Context, m domain.Member) (domain.Member, error) {
	if m.ID == "" {
		m.ID = s.GenerateID()
	}
	m.CreatedAt = s.Now()
	m.UpdatedAt = time.Time{}

	socials, err := storage.MarshalJSONColumn(m.Socials)
	if err != nil {
		return domain.Member{}, err
	}
	metadata, err := storage.MarshalJSONColumn(m.Meta)
	if err != nil {
		return domain.Member{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO member (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		m.ID, m.Name, m.Role, m.Email, m.ImageURL, m.Year, socials,
		m.Order, storage.BoolToInt(m.IsActive), metadata,
		m.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

// Update rewrites an existing member's fields.
func (s *SQLiteStore) Update(ctx context.Context, id string, m domain.Member) (domain.Member, error) {
	m.ID = id
	m.UpdatedAt = s.Now()

	socials, err := storage.MarshalJSONColumn(m.Socials)
	if err != nil {
		return domain.Member{}, err
	}
	metadata, err := storage.MarshalJSONColumn(m.Meta)
	if err != nil {
		return domain.Member{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE member SET name=?, role=?, email=?, image_url=?, year=?, socials=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		m.Name, m.Role, m.Email, m.ImageURL, m.Year, socials,
		m.Order, storage.BoolToInt(m.IsActive), metadata,
		m.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Member{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Member{}, storage.ErrNotFound
	}
	return m, nil
}

// Delete removes a member by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM member WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the member's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE member SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanMember(rows *sql.Rows) (domain.Member, error) {
	var m domain.Member
	var socials, metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.ImageURL, &m.Year, &socials,
		&m.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.Member{}, err
	}
	if err := storage.UnmarshalJSONColumn(socials, &m.Socials); err != nil {
		return domain.Member{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &m.Meta); err != nil {
		return domain.Member{}, err
	}
	m.IsActive = isActive != 0
	m.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		m.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return m, nil
}
