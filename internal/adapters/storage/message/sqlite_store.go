package message

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/message"
)

// SQLiteStore is the dev-mode message accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const messageColumns = `id, type, author_name, author_role, body, image_url, ord, is_active, metadata, created_at, updated_at`

// List returns all messages ordered by their order key.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM message ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create inserts a message, assigning an ID and creation timestamp.
func (s *SQLiteStore) Create(ctx context.Context, m domain.Message) (domain.Message, error) {
	if m.ID == "" {
		m.ID = s.GenerateID()
	}
	m.CreatedAt = s.Now()
	m.UpdatedAt = time.Time{}

	metadata, err := storage.MarshalJSONColumn(m.Meta)
	if err != nil {
		return domain.Message{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO message (`+messageColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		m.ID, m.Type, m.AuthorName, m.AuthorRole, m.Body, m.ImageURL,
		m.Order, storage.BoolToInt(m.IsActive), metadata,
		m.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

// Update rewrites an existing message's fields.
func (s *SQLiteStore) Update(ctx context.Context, id string, m domain.Message) (domain.Message, error) {
	m.ID = id
	m.UpdatedAt = s.Now()

	metadata, err := storage.MarshalJSONColumn(m.Meta)
	if err != nil {
		return domain.Message{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE message SET type=?, author_name=?, author_role=?, body=?, image_url=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		m.Type, m.AuthorName, m.AuthorRole, m.Body, m.ImageURL,
		m.Order, storage.BoolToInt(m.IsActive), metadata,
		m.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Message{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Message{}, storage.ErrNotFound
	}
	return m, nil
}

// Delete removes a message by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM message WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the message's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE message SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanMessage(rows *sql.Rows) (domain.Message, error) {
	var m domain.Message
	var metadata, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&m.ID, &m.Type, &m.AuthorName, &m.AuthorRole, &m.Body, &m.ImageURL,
		&m.Order, &isActive, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return domain.Message{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &m.Meta); err != nil {
		return domain.Message{}, err
	}
	m.IsActive = isActive != 0
	m.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		m.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return m, nil
}
