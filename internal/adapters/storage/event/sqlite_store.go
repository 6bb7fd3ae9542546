package event

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"nexus/internal/adapters/storage"
	domain "nexus/internal/domain/event"
)

// SQLiteStore is the dev-mode event accessor.
type SQLiteStore struct {
	db storage.SQLDB

	GenerateID func() string
	Now        func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, GenerateID: uuid.NewString, Now: time.Now}
}

const eventColumns = `id, title, slug, description, body, category, date, start_time, end_time,
		venue, image_url, agenda, speakers, capacity, ord, is_active, metadata, created_at, updated_at`

// List returns all events ordered by their order key.
// PRE: none
// POST: Returns events ordered by ord ASC, created_at ASC
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM event ORDER BY ord ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Create inserts an event, assigning an ID and creation timestamp.
// PRE: e has been validated and normalized
// POST: Returns the stored record with ID and CreatedAt set
func (s *SQLiteStore) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	if e.ID == "" {
		e.ID = s.GenerateID()
	}
	e.CreatedAt = s.Now()
	e.UpdatedAt = time.Time{}

	agenda, err := storage.MarshalJSONColumn(e.Agenda)
	if err != nil {
		return domain.Event{}, err
	}
	speakers, err := storage.MarshalJSONColumn(e.Speakers)
	if err != nil {
		return domain.Event{}, err
	}
	metadata, err := storage.MarshalJSONColumn(e.Meta)
	if err != nil {
		return domain.Event{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO event (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		e.ID, e.Title, e.Slug, e.Description, e.Body, e.Category,
		e.Date.Format(storage.TimeLayout), e.StartTime, e.EndTime,
		e.Venue, e.ImageURL, agenda, speakers, e.Capacity,
		e.Order, storage.BoolToInt(e.IsActive), metadata,
		e.CreatedAt.Format(storage.TimeLayout))
	if err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

// Update rewrites an existing event's fields.
// PRE: e has been validated and normalized
// POST: Returns the stored record, or storage.ErrNotFound
func (s *SQLiteStore) Update(ctx context.Context, id string, e domain.Event) (domain.Event, error) {
	e.ID = id
	e.UpdatedAt = s.Now()

	agenda, err := storage.MarshalJSONColumn(e.Agenda)
	if err != nil {
		return domain.Event{}, err
	}
	speakers, err := storage.MarshalJSONColumn(e.Speakers)
	if err != nil {
		return domain.Event{}, err
	}
	metadata, err := storage.MarshalJSONColumn(e.Meta)
	if err != nil {
		return domain.Event{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE event SET title=?, slug=?, description=?, body=?, category=?, date=?,
		   start_time=?, end_time=?, venue=?, image_url=?, agenda=?, speakers=?, capacity=?,
		   ord=?, is_active=?, metadata=?, updated_at=? WHERE id=?`,
		e.Title, e.Slug, e.Description, e.Body, e.Category,
		e.Date.Format(storage.TimeLayout), e.StartTime, e.EndTime,
		e.Venue, e.ImageURL, agenda, speakers, e.Capacity,
		e.Order, storage.BoolToInt(e.IsActive), metadata,
		e.UpdatedAt.Format(storage.TimeLayout), id)
	if err != nil {
		return domain.Event{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Event{}, storage.ErrNotFound
	}
	return e, nil
}

// Delete removes an event by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM event WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ToggleActive flips the event's activation flag.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE event SET is_active = 1 - is_active, updated_at = ? WHERE id = ?`,
		s.Now().Format(storage.TimeLayout), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanEvent(rows *sql.Rows) (domain.Event, error) {
	var e domain.Event
	var agenda, speakers, metadata, date, createdAt string
	var isActive int
	var updatedAt sql.NullString

	err := rows.Scan(&e.ID, &e.Title, &e.Slug, &e.Description, &e.Body, &e.Category,
		&date, &e.StartTime, &e.EndTime, &e.Venue, &e.ImageURL,
		&agenda, &speakers, &e.Capacity, &e.Order, &isActive, &metadata,
		&createdAt, &updatedAt)
	if err != nil {
		return domain.Event{}, err
	}
	if err := storage.UnmarshalJSONColumn(agenda, &e.Agenda); err != nil {
		return domain.Event{}, err
	}
	if err := storage.UnmarshalJSONColumn(speakers, &e.Speakers); err != nil {
		return domain.Event{}, err
	}
	if err := storage.UnmarshalJSONColumn(metadata, &e.Meta); err != nil {
		return domain.Event{}, err
	}
	e.IsActive = isActive != 0
	e.Date, _ = time.Parse(storage.TimeLayout, date)
	e.CreatedAt, _ = time.Parse(storage.TimeLayout, createdAt)
	if updatedAt.Valid {
		e.UpdatedAt, _ = time.Parse(storage.TimeLayout, updatedAt.String)
	}
	return e, nil
}
