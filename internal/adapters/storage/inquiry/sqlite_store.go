package inquiry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/inquiry"
)

// SQLiteStore persists contact-form submissions. The collection is
// append-only; there is no update, toggle, or ordering.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

// Save inserts an inquiry, assigning an ID and submission timestamp.
// PRE: inq has been validated
// POST: Returns the stored record with ID and CreatedAt set
func (s *SQLiteStore) Save(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	if inq.ID == "" {
		inq.ID = s.GenerateID()
	}
	inq.CreatedAt = s.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiry (id, name, email, subject, body, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Subject, inq.Body,
		inq.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Inquiry{}, err
	}
	return inq, nil
}

// List returns inquiries newest first, up to limit. A non-positive limit
// returns everything.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	query := `SELECT id, name, email, subject, body, created_at FROM inquiry ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.Inquiry
	for rows.Next() {
		var inq domain.Inquiry
		var createdAt string
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Subject, &inq.Body, &createdAt); err != nil {
			return nil, err
		}
		inq.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}
