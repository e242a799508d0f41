package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/notifyme/notifyme/internal/event"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreate(t *testing.T, s *Store, name string, r event.Recurrence, at time.Time) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), name, "body of "+name, r, at)
	if err != nil {
		t.Fatalf("Create(%s): %v", name, err)
	}
	return id
}

func TestSelectDue_MatchesCurrentMinute(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, time.May, 10, 9, 0, 30, 0, time.Local)

	// Seconds differ from now's; the minute is what must match.
	id := mustCreate(t, s, "standup", event.Once, now.Add(-25*time.Second))

	due, err := s.SelectDue(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatalf("SelectDue: %v", err)
	}
	if len(due) != 1 || due[0].ID != id {
		t.Fatalf("got %v, want single event %d", due, id)
	}
}

func TestSelectDue_MatchesLeadMinute(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)
	id := mustCreate(t, s, "upcoming", event.Daily, now.Add(10*time.Minute))

	due, err := s.SelectDue(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatalf("SelectDue: %v", err)
	}
	if len(due) != 1 || due[0].ID != id {
		t.Fatalf("got %v, want single event %d", due, id)
	}
}

func TestSelectDue_EmptyWhenMinuteDoesNotMatch(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)
	mustCreate(t, s, "later", event.Once, now.Add(5*time.Minute))
	mustCreate(t, s, "earlier", event.Once, now.Add(-1*time.Minute))

	due, err := s.SelectDue(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatalf("SelectDue: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("got %d events, want none", len(due))
	}
}

func TestSelectDue_ExcludesSoftDeleted(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)
	id := mustCreate(t, s, "cancelled", event.Weekly, now)

	if err := s.SoftDelete(context.Background(), id); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	due, err := s.SelectDue(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatalf("SelectDue: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("soft-deleted event still selected: %v", due)
	}
}

func TestSelectDue_ReturnsRowsInIDOrder(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.Local)
	first := mustCreate(t, s, "a", event.Once, now.Add(10*time.Minute))
	second := mustCreate(t, s, "b", event.Once, now)

	due, err := s.SelectDue(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatalf("SelectDue: %v", err)
	}
	if len(due) != 2 || due[0].ID != first || due[1].ID != second {
		t.Fatalf("got %v, want ids [%d %d]", due, first, second)
	}
}

func TestUpdateOccurrence_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2024, time.January, 31, 9, 0, 0, 0, time.Local)
	id := mustCreate(t, s, "rent", event.Monthly, at)

	next := at.AddDate(0, 0, 29)
	if err := s.UpdateOccurrence(context.Background(), id, next); err != nil {
		t.Fatalf("UpdateOccurrence: %v", err)
	}
	ev, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ev.OccurrenceDate.Equal(next) {
		t.Fatalf("got %v, want %v", ev.OccurrenceDate, next)
	}
	if ev.Recurrence != event.Monthly {
		t.Fatalf("recurrence got %q, want monthly", ev.Recurrence)
	}
}

func TestUpdate_RewritesFields(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	id := mustCreate(t, s, "old name", event.Once, at)

	ev := event.Event{
		ID:             id,
		Name:           "new name",
		Message:        "new message",
		Recurrence:     event.Weekly,
		OccurrenceDate: at.AddDate(0, 0, 1),
	}
	if err := s.Update(context.Background(), ev); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "new name" || got.Message != "new message" || got.Recurrence != event.Weekly {
		t.Fatalf("fields not rewritten: %+v", got)
	}
}

func TestUpdate_MissingEvent(t *testing.T) {
	s := openTestStore(t)
	err := s.Update(context.Background(), event.Event{
		ID:             42,
		Name:           "ghost",
		Recurrence:     event.Once,
		OccurrenceDate: time.Now(),
	})
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want store Error", err)
	}
}

func TestScan_UnknownRecurrenceIsStoreError(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	_, err := s.db.Exec(`
		INSERT INTO events (name, message, recurrence, occurrence_date)
		VALUES ('bad', '', 'fortnightly', ?1)`, at.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	_, err = s.List(context.Background())
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want store Error", err)
	}
	if !errors.Is(err, event.ErrUnknownRecurrence) {
		t.Fatalf("got %v, want wrapped ErrUnknownRecurrence", err)
	}
}

func TestListDay(t *testing.T) {
	s := openTestStore(t)
	day := time.Date(2024, time.July, 4, 12, 0, 0, 0, time.Local)
	late := mustCreate(t, s, "evening", event.Once, day.Add(6*time.Hour))
	early := mustCreate(t, s, "morning", event.Once, day.Add(-3*time.Hour))
	mustCreate(t, s, "tomorrow", event.Once, day.AddDate(0, 0, 1))

	got, err := s.ListDay(context.Background(), day)
	if err != nil {
		t.Fatalf("ListDay: %v", err)
	}
	if len(got) != 2 || got[0].ID != early || got[1].ID != late {
		t.Fatalf("got %v, want [%d %d] earliest first", got, early, late)
	}
}

func TestSoftDelete_MissingEvent(t *testing.T) {
	s := openTestStore(t)
	if err := s.SoftDelete(context.Background(), 7); err == nil {
		t.Fatal("expected error for missing event")
	}
}
