// Package store implements the SQLite event store adapter. It owns the
// events schema and exposes the two operations the scheduler needs
// (due-window selection and occurrence updates) plus the CRUD surface
// the CLI commands are built on.
//
// Timestamps are persisted as RFC 3339 text so the stored offset
// survives round-trips; due-window matching normalizes to UTC inside
// SQLite, which is minute-equivalent to local matching since all real
// timezone offsets are whole minutes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/notifyme/notifyme/internal/event"
)

// Error wraps any failure crossing the store boundary, tagged with the
// operation that failed. Unknown recurrence words read from a row are
// reported this way too, never as a panic.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

const schema = `CREATE TABLE IF NOT EXISTS events (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	message         TEXT NOT NULL DEFAULT '',
	recurrence      TEXT NOT NULL DEFAULT 'once',
	occurrence_date TEXT NOT NULL,
	deleted_at      TEXT DEFAULT NULL
)`

// minuteFormat is the SQLite strftime('%Y-%m-%d %H:%M') shape used for
// due-window matching at minute resolution.
const minuteFormat = "2006-01-02 15:04"

// Store is a handle on the events database. It is safe for concurrent
// use by the scheduler and the CLI commands; SQLite serializes writes
// for a given row.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the events database at path and
// bootstraps the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storeErr("open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, storeErr("migrate", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SelectDue returns all non-deleted events whose occurrence date,
// truncated to the minute, equals now's minute or (now+lead)'s minute.
// The lead match gives the user an upcoming pre-alert ahead of the
// at-time alert. Returns an empty slice, not an error, when nothing is
// due. Rows come back in primary-key order.
func (s *Store) SelectDue(ctx context.Context, now time.Time, lead time.Duration) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, message, recurrence, occurrence_date, deleted_at
		FROM events
		WHERE deleted_at IS NULL
		  AND (strftime('%Y-%m-%d %H:%M', occurrence_date) = ?1
		    OR strftime('%Y-%m-%d %H:%M', occurrence_date) = ?2)
		ORDER BY id ASC`,
		now.UTC().Format(minuteFormat),
		now.Add(lead).UTC().Format(minuteFormat),
	)
	if err != nil {
		return nil, storeErr("select_due", err)
	}
	return collectEvents("select_due", rows)
}

// UpdateOccurrence persists an advanced occurrence date for one event.
func (s *Store) UpdateOccurrence(ctx context.Context, id int64, next time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE events SET occurrence_date = ?1 WHERE id = ?2`,
		next.Format(time.RFC3339), id)
	if err != nil {
		return storeErr("update_occurrence", err)
	}
	return nil
}

// Create inserts a new event and returns its store-assigned id.
func (s *Store) Create(ctx context.Context, name, message string, r event.Recurrence, at time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO events (name, message, recurrence, occurrence_date)
		VALUES (?1, ?2, ?3, ?4)`,
		name, message, string(r), at.Format(time.RFC3339))
	if err != nil {
		return 0, storeErr("create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("create", err)
	}
	return id, nil
}

// Update rewrites the mutable fields of an existing event.
func (s *Store) Update(ctx context.Context, ev event.Event) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET name = ?1, message = ?2, recurrence = ?3, occurrence_date = ?4
		WHERE id = ?5 AND deleted_at IS NULL`,
		ev.Name, ev.Message, string(ev.Recurrence),
		ev.OccurrenceDate.Format(time.RFC3339), ev.ID)
	if err != nil {
		return storeErr("update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("update", err)
	}
	if n == 0 {
		return storeErr("update", fmt.Errorf("no event with id %d", ev.ID))
	}
	return nil
}

// SoftDelete marks an event deleted without removing its row. The
// scheduler ignores soft-deleted events from that point on.
func (s *Store) SoftDelete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET deleted_at = ?1 WHERE id = ?2 AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return storeErr("soft_delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("soft_delete", err)
	}
	if n == 0 {
		return storeErr("soft_delete", fmt.Errorf("no event with id %d", id))
	}
	return nil
}

// ListDay returns the non-deleted events falling on the given local
// calendar day, earliest first.
func (s *Store) ListDay(ctx context.Context, day time.Time) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, message, recurrence, occurrence_date, deleted_at
		FROM events
		WHERE deleted_at IS NULL
		  AND strftime('%Y-%m-%d', occurrence_date, 'localtime') = ?1
		ORDER BY occurrence_date ASC, id ASC`,
		day.Format("2006-01-02"))
	if err != nil {
		return nil, storeErr("list_day", err)
	}
	return collectEvents("list_day", rows)
}

// List returns every non-deleted event in primary-key order.
func (s *Store) List(ctx context.Context) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, message, recurrence, occurrence_date, deleted_at
		FROM events
		WHERE deleted_at IS NULL
		ORDER BY id ASC`)
	if err != nil {
		return nil, storeErr("list", err)
	}
	return collectEvents("list", rows)
}

// Get returns one event by id, soft-deleted or not.
func (s *Store) Get(ctx context.Context, id int64) (event.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, message, recurrence, occurrence_date, deleted_at
		FROM events WHERE id = ?1`, id)
	ev, err := scanEvent(row)
	if err != nil {
		return event.Event{}, storeErr("get", err)
	}
	return ev, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(r rowScanner) (event.Event, error) {
	var (
		ev         event.Event
		recurrence string
		occurrence string
		deletedAt  sql.NullString
	)
	if err := r.Scan(&ev.ID, &ev.Name, &ev.Message, &recurrence, &occurrence, &deletedAt); err != nil {
		return event.Event{}, err
	}
	rec, err := event.ParseRecurrence(recurrence)
	if err != nil {
		return event.Event{}, err
	}
	ev.Recurrence = rec
	at, err := time.Parse(time.RFC3339, occurrence)
	if err != nil {
		return event.Event{}, fmt.Errorf("occurrence_date: %w", err)
	}
	ev.OccurrenceDate = at.In(time.Local)
	if deletedAt.Valid {
		del, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return event.Event{}, fmt.Errorf("deleted_at: %w", err)
		}
		del = del.UTC()
		ev.DeletedAt = &del
	}
	return ev, nil
}

func collectEvents(op string, rows *sql.Rows) ([]event.Event, error) {
	defer rows.Close()
	events := []event.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return events, nil
}
