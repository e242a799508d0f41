// Package event provides the reminder data model shared by the store,
// the scheduler and the CLI: the Event row type, the closed Recurrence
// vocabulary persisted by the store, and the next-occurrence calculator
// used to advance recurring events after they fire.
package event

import (
	"errors"
	"fmt"
	"time"
)

// Recurrence is the closed set of cadences an event can repeat on.
// It is persisted as one of four lowercase words; anything else read
// from the store is rejected at the store boundary.
type Recurrence string

const (
	Once    Recurrence = "once"
	Daily   Recurrence = "daily"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
)

// ErrNotRecurring is returned by NextOccurrence when called for a
// once-only event. Callers are expected to guard against this; a
// once event's occurrence date is never advanced.
var ErrNotRecurring = errors.New("event does not recur")

// ErrUnknownRecurrence is returned when a recurrence word outside the
// stored vocabulary is parsed.
var ErrUnknownRecurrence = errors.New("unknown recurrence")

// ParseRecurrence maps a stored (or user-supplied) word onto the
// Recurrence vocabulary. Unknown words are an error, not a fallback.
func ParseRecurrence(s string) (Recurrence, error) {
	switch Recurrence(s) {
	case Once, Daily, Weekly, Monthly:
		return Recurrence(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecurrence, s)
	}
}

// Event is a single reminder row.
type Event struct {
	// ID is the store-assigned identifier, never reused.
	ID int64
	// Name is the notification title.
	Name string
	// Message is the notification body, may be empty.
	Message string
	// OccurrenceDate is the next time the event should fire, in local time.
	// The scheduler advances it for recurring events after a successful
	// notification.
	OccurrenceDate time.Time
	// Recurrence governs whether and how OccurrenceDate advances.
	Recurrence Recurrence
	// DeletedAt marks the event soft-deleted when non-nil. Soft-deleted
	// events are excluded from all scheduling.
	DeletedAt *time.Time
}

// String renders the event the way the "today" listing prints it.
func (e Event) String() string {
	return fmt.Sprintf("Event: %s\nAt: %s\nRecurrence: %s",
		e.Name, e.OccurrenceDate.Format("2006-01-02 15:04"), e.Recurrence)
}

// NextOccurrence computes the occurrence date following t for a
// recurring cadence. Pure and deterministic; it never touches the store.
//
//   - Daily adds one calendar day, preserving time-of-day.
//   - Weekly adds seven calendar days.
//   - Monthly advances the month by one, wrapping December into January
//     of the next year. When the target month has no such day-of-month
//     (e.g. Jan 31 -> February) the date is returned unchanged, so the
//     event stays put until a long enough month recurs.
//
// Calling it with Once is a programming error and yields ErrNotRecurring.
func NextOccurrence(t time.Time, r Recurrence) (time.Time, error) {
	switch r {
	case Daily:
		return t.AddDate(0, 0, 1), nil
	case Weekly:
		return t.AddDate(0, 0, 7), nil
	case Monthly:
		next := time.Date(t.Year(), t.Month()+1, t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		// time.Date normalizes an invalid day-of-month into the month
		// after (Feb 31 becomes Mar 2/3); detect that instead of
		// accepting the shifted date.
		if next.Day() != t.Day() {
			return t, nil
		}
		return next, nil
	case Once:
		return time.Time{}, ErrNotRecurring
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownRecurrence, r)
	}
}
